package nano

import (
	"encoding/json"
	"fmt"
)

// Kind identifies which resource schema an API object carries. The catalog
// is closed: every object the API returns names one of these kinds in its
// "type" field, and an unrecognized name is a decode failure.
type Kind int

const (
	KindBadge Kind = iota
	KindChallenge
	KindDailyAggregate
	KindFavoriteAuthor
	KindFavoriteBook
	KindGenre
	KindGroup
	KindGroupExternalLink
	KindLocation
	KindNanoMessage
	KindNotification
	KindPage
	KindPost
	KindProject
	KindProjectSession
	KindStopWatch
	KindTimer
	KindUser
	KindWritingLocation
	KindWritingMethod
	KindGroupUser
	KindLocationGroup
	KindProjectChallenge
	KindUserBadge

	kindCount
)

// kindNames maps each kind to its two wire spellings: the plural form used
// in collection paths, "type" discriminants and include= lists, and the
// unique form used as the key of a one-to-one relationship.
var kindNames = [kindCount]struct {
	plural string
	unique string
}{
	KindBadge:             {"badges", "badge"},
	KindChallenge:         {"challenges", "challenge"},
	KindDailyAggregate:    {"daily-aggregates", "daily-aggregate"},
	KindFavoriteAuthor:    {"favorite-authors", "favorite-author"},
	KindFavoriteBook:      {"favorite-books", "favorite-book"},
	KindGenre:             {"genres", "genre"},
	KindGroup:             {"groups", "group"},
	KindGroupExternalLink: {"group-external-links", "group-external-link"},
	KindLocation:          {"locations", "location"},
	KindNanoMessage:       {"nanomessages", "nanomessage"},
	KindNotification:      {"notifications", "notification"},
	KindPage:              {"pages", "page"},
	KindPost:              {"posts", "post"},
	KindProject:           {"projects", "project"},
	KindProjectSession:    {"project-sessions", "project-session"},
	KindStopWatch:         {"stopwatches", "stopwatch"},
	KindTimer:             {"timers", "timer"},
	KindUser:              {"users", "user"},
	KindWritingLocation:   {"writing-locations", "writing-location"},
	KindWritingMethod:     {"writing-methods", "writing-method"},
	KindGroupUser:         {"group-users", "group-user"},
	KindLocationGroup:     {"location-groups", "location-group"},
	KindProjectChallenge:  {"project-challenges", "project-challenge"},
	KindUserBadge:         {"user-badges", "user-badge"},
}

var kindsByName = func() map[string]Kind {
	byName := make(map[string]Kind, 2*int(kindCount))
	for kind, names := range kindNames {
		byName[names.plural] = Kind(kind)
		byName[names.unique] = Kind(kind)
	}

	return byName
}()

// Name returns the plural wire name of the kind, e.g. "project-challenges".
func (k Kind) Name() string {
	return kindNames[k].plural
}

// UniqueName returns the singular wire name of the kind, e.g.
// "project-challenge".
func (k Kind) UniqueName() string {
	return kindNames[k].unique
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// String implements fmt.Stringer using the plural wire name.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return k.Name()
}

// KindFromName resolves a wire name, plural or unique, back to its kind.
func KindFromName(name string) (Kind, error) {
	kind, ok := kindsByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}

	return kind, nil
}

// Kinds returns every declared kind in declaration order.
func Kinds() []Kind {
	all := make([]Kind, kindCount)
	for i := range all {
		all[i] = Kind(i)
	}

	return all
}

// MarshalJSON encodes the kind as its plural wire name.
func (k Kind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}

	return json.Marshal(k.Name())
}

// UnmarshalJSON decodes a wire name into a kind.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var name string

	err := json.Unmarshal(data, &name)
	if err != nil {
		return fmt.Errorf("decoding kind: %w", err)
	}

	kind, err := KindFromName(name)
	if err != nil {
		return err
	}

	*k = kind

	return nil
}
