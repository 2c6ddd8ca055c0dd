package nano

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Object is one typed API resource: a kind discriminant, an identity, and
// the relationship and link blocks shared by every kind. The concrete
// attribute data lives on the per-kind struct.
type Object interface {
	// Kind names the resource schema this object carries.
	Kind() Kind
	// GetID returns the object's identifier, or 0 for an object that has
	// not been submitted yet.
	GetID() ID
	// GetRelationships returns the relationships block, or nil.
	GetRelationships() *RelationInfo
	// GetLinks returns the links block, or nil.
	GetLinks() *LinkInfo
}

// ObjectCommon is the kind-independent part of every object. Concrete
// object types embed it.
type ObjectCommon struct {
	ID            ID
	Relationships *RelationInfo
	Links         *LinkInfo
}

// GetID implements Object.
func (c *ObjectCommon) GetID() ID { return c.ID }

// GetRelationships implements Object.
func (c *ObjectCommon) GetRelationships() *RelationInfo { return c.Relationships }

// GetLinks implements Object.
func (c *ObjectCommon) GetLinks() *LinkInfo { return c.Links }

// objectShell is the wire frame every object travels in. The id is
// omitted when zero so that not-yet-created objects submit without one.
// Type is a pointer so that an absent discriminant is distinguishable
// from any declared kind.
type objectShell struct {
	ID            ID              `json:"id,omitempty"`
	Type          *Kind           `json:"type"`
	Attributes    json.RawMessage `json:"attributes,omitempty"`
	Relationships *RelationInfo   `json:"relationships,omitempty"`
	Links         *LinkInfo       `json:"links,omitempty"`
}

func marshalObject(common *ObjectCommon, kind Kind, attrs any) ([]byte, error) {
	raw, err := json.Marshal(attrs)
	if err != nil {
		return nil, fmt.Errorf("encoding %s attributes: %w", kind, err)
	}

	return json.Marshal(objectShell{
		ID:            common.ID,
		Type:          &kind,
		Attributes:    raw,
		Relationships: common.Relationships,
		Links:         common.Links,
	})
}

// unmarshalObject decodes one object frame, verifying the discriminant
// and routing the attributes into attrs. Strict decoding rejects
// attributes the schema does not declare; the lookup-style kinds the API
// extends without notice decode leniently instead.
func unmarshalObject(data []byte, kind Kind, common *ObjectCommon, attrs any, strict bool) error {
	var shell objectShell

	err := json.Unmarshal(data, &shell)
	if err != nil {
		return WrapDecode(err)
	}

	if shell.Type == nil {
		return &DecodeError{Path: "type", Err: ErrMissingKey}
	}

	if *shell.Type != kind {
		return fmt.Errorf("%w: got %s, want %s", ErrKindMismatch, *shell.Type, kind)
	}

	if len(shell.Attributes) > 0 {
		dec := json.NewDecoder(bytes.NewReader(shell.Attributes))
		if strict {
			dec.DisallowUnknownFields()
		}

		err = dec.Decode(attrs)
		if err != nil {
			return PrependDecodePath("attributes", err)
		}
	}

	common.ID = shell.ID
	common.Relationships = shell.Relationships
	common.Links = shell.Links

	return nil
}

// BadgeObject is an object of kind badges.
type BadgeObject struct {
	ObjectCommon
	Data BadgeData
}

// Kind implements Object.
func (o *BadgeObject) Kind() Kind { return KindBadge }

// MarshalJSON implements json.Marshaler.
func (o BadgeObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindBadge, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *BadgeObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindBadge, &o.ObjectCommon, &o.Data, true)
}

// ChallengeObject is an object of kind challenges.
type ChallengeObject struct {
	ObjectCommon
	Data ChallengeData
}

// Kind implements Object.
func (o *ChallengeObject) Kind() Kind { return KindChallenge }

// MarshalJSON implements json.Marshaler.
func (o ChallengeObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindChallenge, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *ChallengeObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindChallenge, &o.ObjectCommon, &o.Data, true)
}

// DailyAggregateObject is an object of kind daily-aggregates.
type DailyAggregateObject struct {
	ObjectCommon
	Data DailyAggregateData
}

// Kind implements Object.
func (o *DailyAggregateObject) Kind() Kind { return KindDailyAggregate }

// MarshalJSON implements json.Marshaler.
func (o DailyAggregateObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindDailyAggregate, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *DailyAggregateObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindDailyAggregate, &o.ObjectCommon, &o.Data, true)
}

// FavoriteAuthorObject is an object of kind favorite-authors.
type FavoriteAuthorObject struct {
	ObjectCommon
	Data FavoriteAuthorData
}

// Kind implements Object.
func (o *FavoriteAuthorObject) Kind() Kind { return KindFavoriteAuthor }

// MarshalJSON implements json.Marshaler.
func (o FavoriteAuthorObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindFavoriteAuthor, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *FavoriteAuthorObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindFavoriteAuthor, &o.ObjectCommon, &o.Data, true)
}

// FavoriteBookObject is an object of kind favorite-books.
type FavoriteBookObject struct {
	ObjectCommon
	Data FavoriteBookData
}

// Kind implements Object.
func (o *FavoriteBookObject) Kind() Kind { return KindFavoriteBook }

// MarshalJSON implements json.Marshaler.
func (o FavoriteBookObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindFavoriteBook, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *FavoriteBookObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindFavoriteBook, &o.ObjectCommon, &o.Data, true)
}

// GenreObject is an object of kind genres.
type GenreObject struct {
	ObjectCommon
	Data GenreData
}

// Kind implements Object.
func (o *GenreObject) Kind() Kind { return KindGenre }

// MarshalJSON implements json.Marshaler.
func (o GenreObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindGenre, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *GenreObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindGenre, &o.ObjectCommon, &o.Data, true)
}

// GroupObject is an object of kind groups.
type GroupObject struct {
	ObjectCommon
	Data GroupData
}

// Kind implements Object.
func (o *GroupObject) Kind() Kind { return KindGroup }

// MarshalJSON implements json.Marshaler.
func (o GroupObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindGroup, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *GroupObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindGroup, &o.ObjectCommon, &o.Data, true)
}

// GroupExternalLinkObject is an object of kind group-external-links.
type GroupExternalLinkObject struct {
	ObjectCommon
	Data GroupExternalLinkData
}

// Kind implements Object.
func (o *GroupExternalLinkObject) Kind() Kind { return KindGroupExternalLink }

// MarshalJSON implements json.Marshaler.
func (o GroupExternalLinkObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindGroupExternalLink, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *GroupExternalLinkObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindGroupExternalLink, &o.ObjectCommon, &o.Data, true)
}

// LocationObject is an object of kind locations. Its attributes decode
// leniently.
type LocationObject struct {
	ObjectCommon
	Data LocationData
}

// Kind implements Object.
func (o *LocationObject) Kind() Kind { return KindLocation }

// MarshalJSON implements json.Marshaler.
func (o LocationObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindLocation, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *LocationObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindLocation, &o.ObjectCommon, &o.Data, false)
}

// NanoMessageObject is an object of kind nanomessages.
type NanoMessageObject struct {
	ObjectCommon
	Data NanoMessageData
}

// Kind implements Object.
func (o *NanoMessageObject) Kind() Kind { return KindNanoMessage }

// MarshalJSON implements json.Marshaler.
func (o NanoMessageObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindNanoMessage, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *NanoMessageObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindNanoMessage, &o.ObjectCommon, &o.Data, true)
}

// NotificationObject is an object of kind notifications.
type NotificationObject struct {
	ObjectCommon
	Data NotificationData
}

// Kind implements Object.
func (o *NotificationObject) Kind() Kind { return KindNotification }

// MarshalJSON implements json.Marshaler.
func (o NotificationObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindNotification, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *NotificationObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindNotification, &o.ObjectCommon, &o.Data, true)
}

// PageObject is an object of kind pages.
type PageObject struct {
	ObjectCommon
	Data PageData
}

// Kind implements Object.
func (o *PageObject) Kind() Kind { return KindPage }

// MarshalJSON implements json.Marshaler.
func (o PageObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindPage, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *PageObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindPage, &o.ObjectCommon, &o.Data, true)
}

// PostObject is an object of kind posts.
type PostObject struct {
	ObjectCommon
	Data PostData
}

// Kind implements Object.
func (o *PostObject) Kind() Kind { return KindPost }

// MarshalJSON implements json.Marshaler.
func (o PostObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindPost, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *PostObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindPost, &o.ObjectCommon, &o.Data, true)
}

// ProjectObject is an object of kind projects.
type ProjectObject struct {
	ObjectCommon
	Data ProjectData
}

// Kind implements Object.
func (o *ProjectObject) Kind() Kind { return KindProject }

// MarshalJSON implements json.Marshaler.
func (o ProjectObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindProject, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *ProjectObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindProject, &o.ObjectCommon, &o.Data, true)
}

// ProjectSessionObject is an object of kind project-sessions.
type ProjectSessionObject struct {
	ObjectCommon
	Data ProjectSessionData
}

// Kind implements Object.
func (o *ProjectSessionObject) Kind() Kind { return KindProjectSession }

// MarshalJSON implements json.Marshaler.
func (o ProjectSessionObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindProjectSession, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *ProjectSessionObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindProjectSession, &o.ObjectCommon, &o.Data, true)
}

// StopWatchObject is an object of kind stopwatches.
type StopWatchObject struct {
	ObjectCommon
	Data StopWatchData
}

// Kind implements Object.
func (o *StopWatchObject) Kind() Kind { return KindStopWatch }

// MarshalJSON implements json.Marshaler.
func (o StopWatchObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindStopWatch, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *StopWatchObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindStopWatch, &o.ObjectCommon, &o.Data, true)
}

// TimerObject is an object of kind timers.
type TimerObject struct {
	ObjectCommon
	Data TimerData
}

// Kind implements Object.
func (o *TimerObject) Kind() Kind { return KindTimer }

// MarshalJSON implements json.Marshaler.
func (o TimerObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindTimer, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *TimerObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindTimer, &o.ObjectCommon, &o.Data, true)
}

// UserObject is an object of kind users. Its attributes decode leniently;
// the profile surface changes often and the settings groups come and go
// with the viewer's authorization.
type UserObject struct {
	ObjectCommon
	Data UserData
}

// Kind implements Object.
func (o *UserObject) Kind() Kind { return KindUser }

// MarshalJSON implements json.Marshaler.
func (o UserObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindUser, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *UserObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindUser, &o.ObjectCommon, &o.Data, false)
}

// WritingLocationObject is an object of kind writing-locations. Its
// attributes decode leniently.
type WritingLocationObject struct {
	ObjectCommon
	Data WritingLocationData
}

// Kind implements Object.
func (o *WritingLocationObject) Kind() Kind { return KindWritingLocation }

// MarshalJSON implements json.Marshaler.
func (o WritingLocationObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindWritingLocation, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *WritingLocationObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindWritingLocation, &o.ObjectCommon, &o.Data, false)
}

// WritingMethodObject is an object of kind writing-methods. Its
// attributes decode leniently.
type WritingMethodObject struct {
	ObjectCommon
	Data WritingMethodData
}

// Kind implements Object.
func (o *WritingMethodObject) Kind() Kind { return KindWritingMethod }

// MarshalJSON implements json.Marshaler.
func (o WritingMethodObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindWritingMethod, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *WritingMethodObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindWritingMethod, &o.ObjectCommon, &o.Data, false)
}

// GroupUserObject is an object of kind group-users.
type GroupUserObject struct {
	ObjectCommon
	Data GroupUserData
}

// Kind implements Object.
func (o *GroupUserObject) Kind() Kind { return KindGroupUser }

// MarshalJSON implements json.Marshaler.
func (o GroupUserObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindGroupUser, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *GroupUserObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindGroupUser, &o.ObjectCommon, &o.Data, true)
}

// LocationGroupObject is an object of kind location-groups.
type LocationGroupObject struct {
	ObjectCommon
	Data LocationGroupData
}

// Kind implements Object.
func (o *LocationGroupObject) Kind() Kind { return KindLocationGroup }

// MarshalJSON implements json.Marshaler.
func (o LocationGroupObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindLocationGroup, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *LocationGroupObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindLocationGroup, &o.ObjectCommon, &o.Data, true)
}

// ProjectChallengeObject is an object of kind project-challenges.
type ProjectChallengeObject struct {
	ObjectCommon
	Data ProjectChallengeData
}

// Kind implements Object.
func (o *ProjectChallengeObject) Kind() Kind { return KindProjectChallenge }

// MarshalJSON implements json.Marshaler.
func (o ProjectChallengeObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindProjectChallenge, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *ProjectChallengeObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindProjectChallenge, &o.ObjectCommon, &o.Data, true)
}

// UserBadgeObject is an object of kind user-badges.
type UserBadgeObject struct {
	ObjectCommon
	Data UserBadgeData
}

// Kind implements Object.
func (o *UserBadgeObject) Kind() Kind { return KindUserBadge }

// MarshalJSON implements json.Marshaler.
func (o UserBadgeObject) MarshalJSON() ([]byte, error) {
	return marshalObject(&o.ObjectCommon, KindUserBadge, o.Data)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *UserBadgeObject) UnmarshalJSON(data []byte) error {
	return unmarshalObject(data, KindUserBadge, &o.ObjectCommon, &o.Data, true)
}

// objectFactories builds the empty concrete object for each kind, used
// when decoding a document whose kind is only known at runtime.
var objectFactories = [kindCount]func() Object{
	KindBadge:             func() Object { return &BadgeObject{} },
	KindChallenge:         func() Object { return &ChallengeObject{} },
	KindDailyAggregate:    func() Object { return &DailyAggregateObject{} },
	KindFavoriteAuthor:    func() Object { return &FavoriteAuthorObject{} },
	KindFavoriteBook:      func() Object { return &FavoriteBookObject{} },
	KindGenre:             func() Object { return &GenreObject{} },
	KindGroup:             func() Object { return &GroupObject{} },
	KindGroupExternalLink: func() Object { return &GroupExternalLinkObject{} },
	KindLocation:          func() Object { return &LocationObject{} },
	KindNanoMessage:       func() Object { return &NanoMessageObject{} },
	KindNotification:      func() Object { return &NotificationObject{} },
	KindPage:              func() Object { return &PageObject{} },
	KindPost:              func() Object { return &PostObject{} },
	KindProject:           func() Object { return &ProjectObject{} },
	KindProjectSession:    func() Object { return &ProjectSessionObject{} },
	KindStopWatch:         func() Object { return &StopWatchObject{} },
	KindTimer:             func() Object { return &TimerObject{} },
	KindUser:              func() Object { return &UserObject{} },
	KindWritingLocation:   func() Object { return &WritingLocationObject{} },
	KindWritingMethod:     func() Object { return &WritingMethodObject{} },
	KindGroupUser:         func() Object { return &GroupUserObject{} },
	KindLocationGroup:     func() Object { return &LocationGroupObject{} },
	KindProjectChallenge:  func() Object { return &ProjectChallengeObject{} },
	KindUserBadge:         func() Object { return &UserBadgeObject{} },
}

// NewObject returns an empty object of the given kind.
func NewObject(kind Kind) (Object, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	return objectFactories[kind](), nil
}

// AnyObject holds an object whose kind is only known at decode time. It
// reads the "type" discriminant first and then decodes the matching
// concrete type, so Object can be type-switched afterwards.
type AnyObject struct {
	Object
}

// MarshalJSON implements json.Marshaler.
func (a AnyObject) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Object)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *AnyObject) UnmarshalJSON(data []byte) error {
	var head struct {
		Type *Kind `json:"type"`
	}

	err := json.Unmarshal(data, &head)
	if err != nil {
		return WrapDecode(err)
	}

	if head.Type == nil {
		return &DecodeError{Path: "type", Err: ErrMissingKey}
	}

	obj := objectFactories[*head.Type]()

	err = json.Unmarshal(data, obj)
	if err != nil {
		return err
	}

	a.Object = obj

	return nil
}

// ObjectAs asserts obj to a concrete object type, turning a failed
// assertion into ErrKindMismatch instead of a panic or a silent zero.
func ObjectAs[T Object](obj Object) (T, error) {
	typed, ok := obj.(T)
	if !ok {
		var zero T

		return zero, fmt.Errorf("%w: have %s", ErrKindMismatch, obj.Kind())
	}

	return typed, nil
}
