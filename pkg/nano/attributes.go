package nano

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Attribute structs carry the kind-specific data of each object. Field
// names follow the API's kebab-case spelling. Decoding is strict (an
// unrecognized attribute fails the decode) except where the API is known
// to grow fields without notice: user, location and the writing-location/
// writing-method lookups.

// BadgeData describes one earnable badge.
type BadgeData struct {
	Active             bool      `json:"active"`
	AdheresTo          AdheresTo `json:"adheres-to"`
	Awarded            string    `json:"awarded"`
	AwardedDescription string    `json:"awarded-description"`
	BadgeType          BadgeType `json:"badge-type"`
	Description        string    `json:"description"`
	GenericDescription string    `json:"generic-description"`
	ListOrder          uint64    `json:"list-order"`
	Suborder           *uint64   `json:"suborder"`
	Title              string    `json:"title"`
	Unawarded          string    `json:"unawarded"`
	Winner             bool      `json:"winner"`
}

// ChallengeData describes a challenge: the November event, a camp, or a
// user-created one. The optional fields are generally populated for the
// official events and null for custom challenges, though the API does not
// guarantee it.
type ChallengeData struct {
	DefaultGoal  uint64      `json:"default-goal"`
	EndsAt       Date        `json:"ends-at"`
	EventType    *EventType  `json:"event-type"`
	FlexibleGoal *bool       `json:"flexible-goal"`
	Name         string      `json:"name"`
	PrepStartsAt *Date       `json:"prep-starts-at"`
	StartsAt     Date        `json:"starts-at"`
	UnitType     UnitType    `json:"unit-type"`
	UserID       uint64      `json:"user-id"`
	WinAllowedAt *Date       `json:"win-allowed-at"`
	WritingType  WritingType `json:"writing-type"`
}

// DailyAggregateData is one day's total count for a project challenge.
type DailyAggregateData struct {
	Count     uint64   `json:"count"`
	Day       Date     `json:"day"`
	ProjectID uint64   `json:"project-id"`
	UnitType  UnitType `json:"unit-type"`
	UserID    *uint64  `json:"user-id"`
}

// FavoriteAuthorData is an author a user lists as a favorite.
type FavoriteAuthorData struct {
	Name   string `json:"name"`
	UserID uint64 `json:"user-id"`
}

// FavoriteBookData is a book a user lists as a favorite.
type FavoriteBookData struct {
	Title  string `json:"title"`
	UserID uint64 `json:"user-id"`
}

// GenreData is a genre label created by a user.
type GenreData struct {
	Name   string `json:"name"`
	UserID uint64 `json:"user-id"`
}

// GroupData describes a group: a region, a buddy list, an event, or the
// site-wide everyone group.
type GroupData struct {
	ApprovedByID   uint64       `json:"approved-by-id"`
	Avatar         *string      `json:"avatar"`
	CancelledByID  uint64       `json:"cancelled-by-id"`
	CreatedAt      time.Time    `json:"created-at"`
	Description    *string      `json:"description"`
	EndDT          *time.Time   `json:"end-dt"`
	ForumLink      *string      `json:"forum-link"`
	GroupID        *uint64      `json:"group-id"`
	GroupType      GroupType    `json:"group-type"`
	JoiningRule    *JoiningRule `json:"joining-rule"`
	Latitude       *float64     `json:"latitude"`
	Longitude      *float64     `json:"longitude"`
	MaxMemberCount *uint64      `json:"max-member-count"`
	MemberCount    *uint64      `json:"member-count"`
	Name           string       `json:"name"`
	Plate          *string      `json:"plate"`
	Slug           string       `json:"slug"`
	StartDT        *time.Time   `json:"start-dt"`
	TimeZone       *string      `json:"time-zone"`
	UpdatedAt      time.Time    `json:"updated-at"`
	URL            *string      `json:"url"`
	UserID         *uint64      `json:"user-id"`
}

// GroupExternalLinkData is an external link attached to a group.
type GroupExternalLinkData struct {
	GroupID uint64  `json:"group-id"`
	Label   *string `json:"label"`
	URL     string  `json:"url"`
}

// LocationData is a physical place, used for regions and events.
type LocationData struct {
	City             string   `json:"city"`
	Country          string   `json:"country"`
	County           *string  `json:"county"`
	FormattedAddress *string  `json:"formatted-address"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	MapURL           *string  `json:"map-url"`
	Municipality     *string  `json:"municipality"`
	Name             string   `json:"name"`
	Neighborhood     *string  `json:"neighborhood"`
	PostalCode       OptID    `json:"postal-code"`
	State            string   `json:"state"`
	Street1          *string  `json:"street1"`
	Street2          *string  `json:"street2"`
	UTCOffset        *int64   `json:"utc-offset"`
}

// NanoMessageData is one message in a group's message feed.
type NanoMessageData struct {
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"created-at"`
	GroupID         uint64    `json:"group-id"`
	Official        bool      `json:"official"`
	SendEmail       *bool     `json:"send-email"`
	SenderAvatarURL *string   `json:"sender-avatar-url"`
	SenderName      *string   `json:"sender-name"`
	SenderSlug      *string   `json:"sender-slug"`
	UpdatedAt       time.Time `json:"updated-at"`
	UserID          uint64    `json:"user-id"`
}

// NotificationData is one notification shown to a user.
type NotificationData struct {
	ActionID      *uint64       `json:"action-id"`
	ActionType    ActionType    `json:"action-type"`
	Content       string        `json:"content"`
	CreatedAt     time.Time     `json:"created-at"`
	DataCount     *uint64       `json:"data-count"`
	DisplayAt     time.Time     `json:"display-at"`
	DisplayStatus DisplayStatus `json:"display-status"`
	Headline      string        `json:"headline"`
	ImageURL      *string       `json:"image-url"`
	LastViewedAt  *time.Time    `json:"last-viewed-at"`
	RedirectURL   *string       `json:"redirect-url"`
	UpdatedAt     time.Time     `json:"updated-at"`
	UserID        uint64        `json:"user-id"`
}

// PageData is a static content page.
type PageData struct {
	Body                 string      `json:"body"`
	URL                  string      `json:"url"`
	Headline             string      `json:"headline"`
	ContentType          ContentType `json:"content-type"`
	ShowAfter            *time.Time  `json:"show-after"`
	PromotionalCardImage *string     `json:"promotional-card-image"`
}

// PostData is a blog post, pep talk or sponsor offer. The api-code and
// subhead fields are carried opaquely; their meaning is unconfirmed.
type PostData struct {
	APICode      *string     `json:"api-code"`
	Body         string      `json:"body"`
	CardImage    *string     `json:"card-image"`
	ContentType  ContentType `json:"content-type"`
	ExpiresAt    *Date       `json:"expires-at"`
	ExternalLink *string     `json:"external-link"`
	Headline     string      `json:"headline"`
	OfferCode    *string     `json:"offer-code"`
	Order        *uint64     `json:"order"`
	Published    bool        `json:"published"`
	Subhead      *string     `json:"subhead"`
}

// ProjectData is one writing project. Primary is an integer of
// unconfirmed meaning, carried opaquely.
type ProjectData struct {
	Cover        *string        `json:"cover"`
	CreatedAt    time.Time      `json:"created-at"`
	Excerpt      *string        `json:"excerpt"`
	PinterestURL *string        `json:"pinterest-url"`
	PlaylistURL  *string        `json:"playlist-url"`
	Primary      *int64         `json:"primary"`
	Privacy      PrivacySetting `json:"privacy"`
	Slug         string         `json:"slug"`
	Status       ProjectStatus  `json:"status"`
	Summary      *string        `json:"summary"`
	Title        string         `json:"title"`
	UnitCount    *uint64        `json:"unit-count"`
	UnitType     UnitType       `json:"unit-type"`
	UserID       uint64         `json:"user-id"`
	WritingType  WritingType    `json:"writing-type"`
}

// ProjectSessionData is one recorded writing session against a project
// challenge. Everything except the count is optional, which also makes it
// the submission shape for count updates.
type ProjectSessionData struct {
	Count              int64      `json:"count"`
	CreatedAt          *time.Time `json:"created-at,omitempty"`
	End                *time.Time `json:"end,omitempty"`
	Feeling            *Feeling   `json:"feeling,omitempty"`
	How                *How       `json:"how,omitempty"`
	ProjectChallengeID *uint64    `json:"project-challenge-id,omitempty"`
	ProjectID          *uint64    `json:"project-id,omitempty"`
	SessionDate        *Date      `json:"session-date,omitempty"`
	Start              *time.Time `json:"start,omitempty"`
	UnitType           UnitType   `json:"unit-type"`
	Where              *Where     `json:"where,omitempty"`
}

// StopWatchData is a running or stopped stopwatch.
type StopWatchData struct {
	Start time.Time  `json:"start"`
	Stop  *time.Time `json:"stop"`
}

// TimerData is a countdown timer; the duration is coded as minutes.
type TimerData struct {
	Cancelled bool      `json:"cancelled"`
	Duration  Minutes   `json:"duration"`
	Start     time.Time `json:"start"`
}

// UserData is a user profile. The settings and stats groups arrive
// flattened into the attribute object under prefixed keys; each group is
// independently optional and is only populated when the server sends it
// (generally only for the authenticated user's own profile).
type UserData struct {
	AdminLevel                   AdminLevel       `json:"admin-level"`
	Avatar                       *string          `json:"avatar"`
	Bio                          *string          `json:"bio"`
	ConfirmedAt                  time.Time        `json:"confirmed-at"`
	CreatedAt                    time.Time        `json:"created-at"`
	DiscourseUsername            *string          `json:"discourse-username"`
	Email                        *string          `json:"email"`
	Halo                         bool             `json:"halo"`
	Laurels                      uint64           `json:"laurels"`
	Location                     *string          `json:"location"`
	Name                         string           `json:"name"`
	NotificationsViewedAt        time.Time        `json:"notifications-viewed-at"`
	Plate                        *string          `json:"plate"`
	PostalCode                   OptID            `json:"postal-code"`
	RegistrationPath             RegistrationPath `json:"registration-path"`
	SettingSessionCountBySession uint8            `json:"setting-session-count-by-session"`
	SettingSessionMoreInfo       bool             `json:"setting-session-more-info"`
	Slug                         string           `json:"slug"`
	TimeZone                     string           `json:"time-zone"`

	EmailSettings        *EmailSettings        `json:"-"`
	NotificationSettings *NotificationSettings `json:"-"`
	PrivacySettings      *PrivacySettings      `json:"-"`
	Stats                *StatsInfo            `json:"-"`
}

// userDataAlias strips UserData's methods so the core fields can be
// round-tripped with the stock codec.
type userDataAlias UserData

var userDataGroups = []struct {
	prefix string
	attach func(*UserData, []byte) error
}{
	{"email-", func(d *UserData, data []byte) error {
		d.EmailSettings = &EmailSettings{}

		return json.Unmarshal(data, d.EmailSettings)
	}},
	{"notification-", func(d *UserData, data []byte) error {
		d.NotificationSettings = &NotificationSettings{}

		return json.Unmarshal(data, d.NotificationSettings)
	}},
	{"privacy-", func(d *UserData, data []byte) error {
		d.PrivacySettings = &PrivacySettings{}

		return json.Unmarshal(data, d.PrivacySettings)
	}},
	{"stats-", func(d *UserData, data []byte) error {
		d.Stats = &StatsInfo{}

		return json.Unmarshal(data, d.Stats)
	}},
}

// UnmarshalJSON decodes the core profile plus whichever flattened groups
// the response carries.
func (d *UserData) UnmarshalJSON(data []byte) error {
	var core userDataAlias

	err := json.Unmarshal(data, &core)
	if err != nil {
		return err
	}

	var keys map[string]json.RawMessage

	err = json.Unmarshal(data, &keys)
	if err != nil {
		return err
	}

	*d = UserData(core)

	for _, group := range userDataGroups {
		if !hasKeyWithPrefix(keys, group.prefix) {
			continue
		}

		err = group.attach(d, data)
		if err != nil {
			return fmt.Errorf("decoding %s* settings: %w", group.prefix, err)
		}
	}

	return nil
}

// MarshalJSON flattens the present groups back beside the core fields.
func (d UserData) MarshalJSON() ([]byte, error) {
	merged := map[string]json.RawMessage{}

	err := mergeJSONObject(merged, userDataAlias(d))
	if err != nil {
		return nil, err
	}

	for _, group := range []any{d.EmailSettings, d.NotificationSettings, d.PrivacySettings, d.Stats} {
		switch val := group.(type) {
		case *EmailSettings:
			if val != nil {
				err = mergeJSONObject(merged, val)
			}
		case *NotificationSettings:
			if val != nil {
				err = mergeJSONObject(merged, val)
			}
		case *PrivacySettings:
			if val != nil {
				err = mergeJSONObject(merged, val)
			}
		case *StatsInfo:
			if val != nil {
				err = mergeJSONObject(merged, val)
			}
		}

		if err != nil {
			return nil, err
		}
	}

	return json.Marshal(merged)
}

func hasKeyWithPrefix(keys map[string]json.RawMessage, prefix string) bool {
	for key := range keys {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}

	return false
}

func mergeJSONObject(dst map[string]json.RawMessage, src any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return err
	}

	var fields map[string]json.RawMessage

	err = json.Unmarshal(raw, &fields)
	if err != nil {
		return err
	}

	for key, val := range fields {
		dst[key] = val
	}

	return nil
}

// EmailSettings is the email-* flag group of a user profile.
type EmailSettings struct {
	BlogPosts           bool `json:"email-blog-posts"`
	BuddyRequests       bool `json:"email-buddy-requests"`
	EventsInHomeRegion  bool `json:"email-events-in-home-region"`
	NanoMessagesBuddies bool `json:"email-nanomessages-buddies"`
	NanoMessagesHQ      bool `json:"email-nanomessages-hq"`
	NanoMessagesMLs     bool `json:"email-nanomessages-mls"`
	SiteUpdates         bool `json:"email-nanowrimo-updates"`
	Newsletter          bool `json:"email-newsletter"`
	WritingReminders    bool `json:"email-writing-reminders"`
}

// NotificationSettings is the notification-* flag group of a user profile.
type NotificationSettings struct {
	BuddyActivities     bool `json:"notification-buddy-activities"`
	BuddyRequests       bool `json:"notification-buddy-requests"`
	EventsInHomeRegion  bool `json:"notification-events-in-home-region"`
	GoalMilestones      bool `json:"notification-goal-milestones"`
	NanoMessagesBuddies bool `json:"notification-nanomessages-buddies"`
	NanoMessagesHQ      bool `json:"notification-nanomessages-hq"`
	NanoMessagesMLs     bool `json:"notification-nanomessages-mls"`
	NewBadges           bool `json:"notification-new-badges"`
	SprintInvitation    bool `json:"notification-sprint-invitation"`
	SprintStart         bool `json:"notification-sprint-start"`
	WritingReminders    bool `json:"notification-writing-reminders"`
}

// PrivacySettings is the privacy-* group of a user profile.
type PrivacySettings struct {
	SendNanoMessages       PrivacySetting `json:"privacy-send-nanomessages"`
	ViewBuddies            PrivacySetting `json:"privacy-view-buddies"`
	ViewProfile            PrivacySetting `json:"privacy-view-profile"`
	ViewProjects           PrivacySetting `json:"privacy-view-projects"`
	ViewSearch             PrivacySetting `json:"privacy-view-search"`
	VisibilityActivityLogs bool           `json:"privacy-visibility-activity-logs"`
	VisibilityBuddyLists   bool           `json:"privacy-visibility-buddy-lists"`
	VisibilityRegions      bool           `json:"privacy-visibility-regions"`
}

// StatsInfo is the stats-* group of a user profile. The field types
// follow what the API has been observed to send; their exact semantics
// are not documented.
type StatsInfo struct {
	Projects           uint64  `json:"stats-projects"`
	ProjectsEnabled    bool    `json:"stats-projects-enabled"`
	Streak             uint64  `json:"stats-streak"`
	StreakEnabled      bool    `json:"stats-streak-enabled"`
	WordCount          uint64  `json:"stats-word-count"`
	WordCountEnabled   bool    `json:"stats-word-count-enabled"`
	Wordiest           uint64  `json:"stats-wordiest"`
	WordiestEnabled    bool    `json:"stats-wordiest-enabled"`
	WritingPace        *uint64 `json:"stats-writing-pace"`
	WritingPaceEnabled bool    `json:"stats-writing-pace-enabled"`
	YearsDone          *uint64 `json:"stats-years-done"`
	YearsEnabled       bool    `json:"stats-years-enabled"`
	YearsWon           *uint64 `json:"stats-years-won"`
}

// WritingLocationData is a writing-location lookup entry.
type WritingLocationData struct {
	Name string `json:"name"`
}

// WritingMethodData is a writing-method lookup entry.
type WritingMethodData struct {
	Name string `json:"name"`
}

// GroupUserData is a user's membership record in a group. Primary is an
// integer of unconfirmed meaning; ExitMethod has only been observed as a
// free-form string.
type GroupUserData struct {
	CreatedAt          time.Time        `json:"created-at"`
	EntryAt            *time.Time       `json:"entry-at"`
	EntryMethod        EntryMethod      `json:"entry-method"`
	ExitAt             *time.Time       `json:"exit-at"`
	ExitMethod         *string          `json:"exit-method"`
	GroupCodeID        *uint64          `json:"group-code-id"`
	GroupID            uint64           `json:"group-id"`
	GroupType          GroupType        `json:"group-type"`
	InvitationAccepted InvitationStatus `json:"invitation-accepted"`
	InvitedByID        *uint64          `json:"invited-by-id"`
	IsAdmin            *bool            `json:"is-admin"`
	LatestMessage      *string          `json:"latest-message"`
	NumUnreadMessages  uint64           `json:"num-unread-messages"`
	Primary            uint64           `json:"primary"`
	UpdatedAt          time.Time        `json:"updated-at"`
	UserID             uint64           `json:"user-id"`
}

// LocationGroupData ties a location to a group.
type LocationGroupData struct {
	GroupID    uint64 `json:"group-id"`
	LocationID uint64 `json:"location-id"`
	Primary    bool   `json:"primary"`
}

// ProjectChallengeData is the link between a project and a challenge it
// was entered in, carrying the goal and progress. Speed, When and
// WritingLocation are carried opaquely; their meaning is unconfirmed.
type ProjectChallengeData struct {
	ChallengeID     uint64       `json:"challenge-id"`
	CurrentCount    uint64       `json:"current-count"`
	EndsAt          Date         `json:"ends-at"`
	EventType       EventType    `json:"event-type"`
	Feeling         *Feeling     `json:"feeling"`
	Goal            uint64       `json:"goal"`
	How             *How         `json:"how"`
	LastRecompute   *time.Time   `json:"last-recompute"`
	Name            string       `json:"name"`
	ProjectID       uint64       `json:"project-id"`
	Speed           *uint64      `json:"speed"`
	StartCount      *uint64      `json:"start-count"`
	StartsAt        Date         `json:"starts-at"`
	Streak          *uint64      `json:"streak"`
	UnitType        UnitType     `json:"unit-type"`
	UserID          uint64       `json:"user-id"`
	When            *uint64      `json:"when"`
	WonAt           *time.Time   `json:"won-at"`
	WritingLocation *string      `json:"writing-location"`
	WritingType     *WritingType `json:"writing-type"`
}

// UserBadgeData records a badge awarded to a user.
type UserBadgeData struct {
	BadgeID            uint64    `json:"badge-id"`
	CreatedAt          time.Time `json:"created-at"`
	ProjectChallengeID uint64    `json:"project-challenge-id"`
	UserID             uint64    `json:"user-id"`
}
