package nano

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEnumValue is returned when a wire value does not match any
// variant of a closed enumeration.
var ErrInvalidEnumValue = errors.New("invalid enumeration value")

func enumError(enum string, val any) error {
	return fmt.Errorf("%w: cannot decode %v as %s", ErrInvalidEnumValue, val, enum)
}

// decodeEnumInt reads an integer-coded enum value and validates it against
// [min, max].
func decodeEnumInt(data []byte, enum string, minVal, maxVal int64) (int64, error) {
	var val int64

	err := json.Unmarshal(data, &val)
	if err != nil {
		return 0, enumError(enum, string(data))
	}

	if val < minVal || val > maxVal {
		return 0, enumError(enum, val)
	}

	return val, nil
}

// PrivacySetting controls who can see a slice of a user's profile, or send
// them messages. Integer-coded on the wire.
type PrivacySetting uint8

const (
	PrivacyPrivate PrivacySetting = iota
	PrivacyBuddies
	PrivacyAnyone
)

// String implements fmt.Stringer.
func (p PrivacySetting) String() string {
	switch p {
	case PrivacyPrivate:
		return "private"
	case PrivacyBuddies:
		return "buddies"
	case PrivacyAnyone:
		return "anyone"
	}

	return fmt.Sprintf("PrivacySetting(%d)", uint8(p))
}

// MarshalJSON encodes the integer wire value.
func (p PrivacySetting) MarshalJSON() ([]byte, error) {
	if p > PrivacyAnyone {
		return nil, enumError("PrivacySetting", uint8(p))
	}

	return json.Marshal(uint8(p))
}

// UnmarshalJSON decodes and validates the integer wire value.
func (p *PrivacySetting) UnmarshalJSON(data []byte) error {
	val, err := decodeEnumInt(data, "PrivacySetting", 0, int64(PrivacyAnyone))
	if err != nil {
		return err
	}

	*p = PrivacySetting(val)

	return nil
}

// EventType distinguishes the site-wide November event, the spring camps,
// and user-created challenges. Integer-coded on the wire.
type EventType uint8

const (
	EventNanoWrimo EventType = iota
	EventCampNano
	EventCustom
)

// String implements fmt.Stringer.
func (e EventType) String() string {
	switch e {
	case EventNanoWrimo:
		return "nanowrimo"
	case EventCampNano:
		return "camp nanowrimo"
	case EventCustom:
		return "custom"
	}

	return fmt.Sprintf("EventType(%d)", uint8(e))
}

// MarshalJSON encodes the integer wire value.
func (e EventType) MarshalJSON() ([]byte, error) {
	if e > EventCustom {
		return nil, enumError("EventType", uint8(e))
	}

	return json.Marshal(uint8(e))
}

// UnmarshalJSON decodes and validates the integer wire value.
func (e *EventType) UnmarshalJSON(data []byte) error {
	val, err := decodeEnumInt(data, "EventType", 0, int64(EventCustom))
	if err != nil {
		return err
	}

	*e = EventType(val)

	return nil
}

// AdminLevel marks site administrators. Integer-coded on the wire.
type AdminLevel uint8

const (
	AdminLevelUser AdminLevel = iota
	AdminLevelAdmin
)

// String implements fmt.Stringer.
func (a AdminLevel) String() string {
	switch a {
	case AdminLevelUser:
		return "user"
	case AdminLevelAdmin:
		return "admin"
	}

	return fmt.Sprintf("AdminLevel(%d)", uint8(a))
}

// MarshalJSON encodes the integer wire value.
func (a AdminLevel) MarshalJSON() ([]byte, error) {
	if a > AdminLevelAdmin {
		return nil, enumError("AdminLevel", uint8(a))
	}

	return json.Marshal(uint8(a))
}

// UnmarshalJSON decodes and validates the integer wire value.
func (a *AdminLevel) UnmarshalJSON(data []byte) error {
	val, err := decodeEnumInt(data, "AdminLevel", 0, int64(AdminLevelAdmin))
	if err != nil {
		return err
	}

	*a = AdminLevel(val)

	return nil
}

// DisplayStatus selects whether a notification shows in the recent list or
// only the full history. Integer-coded on the wire.
type DisplayStatus uint8

const (
	DisplayAllNotifications DisplayStatus = iota
	DisplayRecentNotifications
)

// String implements fmt.Stringer.
func (d DisplayStatus) String() string {
	switch d {
	case DisplayAllNotifications:
		return "all"
	case DisplayRecentNotifications:
		return "recent"
	}

	return fmt.Sprintf("DisplayStatus(%d)", uint8(d))
}

// MarshalJSON encodes the integer wire value.
func (d DisplayStatus) MarshalJSON() ([]byte, error) {
	if d > DisplayRecentNotifications {
		return nil, enumError("DisplayStatus", uint8(d))
	}

	return json.Marshal(uint8(d))
}

// UnmarshalJSON decodes and validates the integer wire value.
func (d *DisplayStatus) UnmarshalJSON(data []byte) error {
	val, err := decodeEnumInt(data, "DisplayStatus", 0, int64(DisplayRecentNotifications))
	if err != nil {
		return err
	}

	*d = DisplayStatus(val)

	return nil
}

// WritingType classifies what a project or challenge is producing.
// Integer-coded on the wire.
type WritingType uint8

const (
	WritingNovel WritingType = iota
	WritingShortStories
	WritingMemoir
	WritingScript
	WritingNonfiction
	WritingPoetry
	WritingOther
)

// String implements fmt.Stringer.
func (w WritingType) String() string {
	switch w {
	case WritingNovel:
		return "novel"
	case WritingShortStories:
		return "short stories"
	case WritingMemoir:
		return "memoir"
	case WritingScript:
		return "script"
	case WritingNonfiction:
		return "nonfiction"
	case WritingPoetry:
		return "poetry"
	case WritingOther:
		return "other"
	}

	return fmt.Sprintf("WritingType(%d)", uint8(w))
}

// MarshalJSON encodes the integer wire value.
func (w WritingType) MarshalJSON() ([]byte, error) {
	if w > WritingOther {
		return nil, enumError("WritingType", uint8(w))
	}

	return json.Marshal(uint8(w))
}

// UnmarshalJSON decodes and validates the integer wire value.
func (w *WritingType) UnmarshalJSON(data []byte) error {
	val, err := decodeEnumInt(data, "WritingType", 0, int64(WritingOther))
	if err != nil {
		return err
	}

	*w = WritingType(val)

	return nil
}

// JoiningRule restricts who may join a group. Integer-coded on the wire.
type JoiningRule uint8

const (
	JoiningAdminOnly JoiningRule = iota
	JoiningAnyUser
)

// String implements fmt.Stringer.
func (j JoiningRule) String() string {
	switch j {
	case JoiningAdminOnly:
		return "admin only"
	case JoiningAnyUser:
		return "any user"
	}

	return fmt.Sprintf("JoiningRule(%d)", uint8(j))
}

// MarshalJSON encodes the integer wire value.
func (j JoiningRule) MarshalJSON() ([]byte, error) {
	if j > JoiningAnyUser {
		return nil, enumError("JoiningRule", uint8(j))
	}

	return json.Marshal(uint8(j))
}

// UnmarshalJSON decodes and validates the integer wire value.
func (j *JoiningRule) UnmarshalJSON(data []byte) error {
	val, err := decodeEnumInt(data, "JoiningRule", 0, int64(JoiningAnyUser))
	if err != nil {
		return err
	}

	*j = JoiningRule(val)

	return nil
}

// UnitType says whether counts are measured in words or hours.
// Integer-coded on the wire.
type UnitType uint8

const (
	UnitWords UnitType = iota
	UnitHours
)

// String implements fmt.Stringer.
func (u UnitType) String() string {
	switch u {
	case UnitWords:
		return "words"
	case UnitHours:
		return "hours"
	}

	return fmt.Sprintf("UnitType(%d)", uint8(u))
}

// MarshalJSON encodes the integer wire value.
func (u UnitType) MarshalJSON() ([]byte, error) {
	if u > UnitHours {
		return nil, enumError("UnitType", uint8(u))
	}

	return json.Marshal(uint8(u))
}

// UnmarshalJSON decodes and validates the integer wire value.
func (u *UnitType) UnmarshalJSON(data []byte) error {
	val, err := decodeEnumInt(data, "UnitType", 0, int64(UnitHours))
	if err != nil {
		return err
	}

	*u = UnitType(val)

	return nil
}

// Feeling records how a writing session went, on a 1-5 scale.
// Integer-coded on the wire, starting at 1.
type Feeling uint8

const (
	FeelingUpset Feeling = iota + 1
	FeelingStressed
	FeelingOkay
	FeelingPrettyGood
	FeelingGreat
)

// String implements fmt.Stringer.
func (f Feeling) String() string {
	switch f {
	case FeelingUpset:
		return "upset"
	case FeelingStressed:
		return "stressed"
	case FeelingOkay:
		return "okay"
	case FeelingPrettyGood:
		return "pretty good"
	case FeelingGreat:
		return "great"
	}

	return fmt.Sprintf("Feeling(%d)", uint8(f))
}

// MarshalJSON encodes the integer wire value.
func (f Feeling) MarshalJSON() ([]byte, error) {
	if f < FeelingUpset || f > FeelingGreat {
		return nil, enumError("Feeling", uint8(f))
	}

	return json.Marshal(uint8(f))
}

// UnmarshalJSON decodes and validates the integer wire value.
func (f *Feeling) UnmarshalJSON(data []byte) error {
	val, err := decodeEnumInt(data, "Feeling", int64(FeelingUpset), int64(FeelingGreat))
	if err != nil {
		return err
	}

	*f = Feeling(val)

	return nil
}

// InvitationStatus tracks a group invitation. Integer-coded on the wire
// with a negative "blocked" value.
type InvitationStatus int8

const (
	InvitationBlocked  InvitationStatus = -2
	InvitationSent     InvitationStatus = 0
	InvitationAccepted InvitationStatus = 1
)

// String implements fmt.Stringer.
func (s InvitationStatus) String() string {
	switch s {
	case InvitationBlocked:
		return "blocked"
	case InvitationSent:
		return "sent"
	case InvitationAccepted:
		return "accepted"
	}

	return fmt.Sprintf("InvitationStatus(%d)", int8(s))
}

// MarshalJSON encodes the integer wire value.
func (s InvitationStatus) MarshalJSON() ([]byte, error) {
	switch s {
	case InvitationBlocked, InvitationSent, InvitationAccepted:
		return json.Marshal(int8(s))
	}

	return nil, enumError("InvitationStatus", int8(s))
}

// UnmarshalJSON decodes and validates the integer wire value.
func (s *InvitationStatus) UnmarshalJSON(data []byte) error {
	var val int8

	err := json.Unmarshal(data, &val)
	if err != nil {
		return enumError("InvitationStatus", string(data))
	}

	switch InvitationStatus(val) {
	case InvitationBlocked, InvitationSent, InvitationAccepted:
		*s = InvitationStatus(val)

		return nil
	}

	return enumError("InvitationStatus", val)
}

// stringEnum pairs a variant with its canonical wire spelling and any
// case-folded aliases accepted on decode.
type stringEnumTable struct {
	name      string
	canonical []string
	fold      bool
	aliases   map[string]int
}

func (t *stringEnumTable) encode(variant int) ([]byte, error) {
	if variant < 0 || variant >= len(t.canonical) {
		return nil, enumError(t.name, variant)
	}

	return json.Marshal(t.canonical[variant])
}

func (t *stringEnumTable) decode(data []byte) (int, error) {
	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return 0, enumError(t.name, string(data))
	}

	key := raw
	if t.fold {
		key = strings.ToLower(raw)
	}

	if variant, ok := t.aliases[key]; ok {
		return variant, nil
	}

	return 0, enumError(t.name, raw)
}

// ProjectStatus is where a project sits in its lifecycle. String-coded,
// matched case-insensitively on decode.
type ProjectStatus uint8

const (
	ProjectPrepping ProjectStatus = iota
	ProjectInProgress
	ProjectDrafted
	ProjectCompleted
	ProjectPublished
)

var projectStatusTable = &stringEnumTable{
	name:      "ProjectStatus",
	canonical: []string{"Prepping", "In Progress", "Drafted", "Completed", "Published"},
	fold:      true,
	aliases: map[string]int{
		"prepping":    int(ProjectPrepping),
		"in progress": int(ProjectInProgress),
		"inprogress":  int(ProjectInProgress),
		"drafted":     int(ProjectDrafted),
		"completed":   int(ProjectCompleted),
		"published":   int(ProjectPublished),
	},
}

// String implements fmt.Stringer.
func (p ProjectStatus) String() string {
	if int(p) < len(projectStatusTable.canonical) {
		return projectStatusTable.canonical[p]
	}

	return fmt.Sprintf("ProjectStatus(%d)", uint8(p))
}

// MarshalJSON encodes the canonical wire spelling.
func (p ProjectStatus) MarshalJSON() ([]byte, error) {
	return projectStatusTable.encode(int(p))
}

// UnmarshalJSON decodes the wire spelling.
func (p *ProjectStatus) UnmarshalJSON(data []byte) error {
	variant, err := projectStatusTable.decode(data)
	if err != nil {
		return err
	}

	*p = ProjectStatus(variant)

	return nil
}

// GroupType classifies a group: the site-wide everyone group, regions,
// buddy lists, writing groups and events. String-coded.
type GroupType uint8

const (
	GroupEveryone GroupType = iota
	GroupRegion
	GroupBuddies
	GroupWritingGroup
	GroupEvent
)

var groupTypeTable = &stringEnumTable{
	name:      "GroupType",
	canonical: []string{"everyone", "region", "buddies", "writing group", "event"},
	fold:      true,
	aliases: map[string]int{
		"everyone":      int(GroupEveryone),
		"region":        int(GroupRegion),
		"buddies":       int(GroupBuddies),
		"writing group": int(GroupWritingGroup),
		"event":         int(GroupEvent),
	},
}

// String implements fmt.Stringer.
func (g GroupType) String() string {
	if int(g) < len(groupTypeTable.canonical) {
		return groupTypeTable.canonical[g]
	}

	return fmt.Sprintf("GroupType(%d)", uint8(g))
}

// MarshalJSON encodes the canonical wire spelling.
func (g GroupType) MarshalJSON() ([]byte, error) {
	return groupTypeTable.encode(int(g))
}

// UnmarshalJSON decodes the wire spelling.
func (g *GroupType) UnmarshalJSON(data []byte) error {
	variant, err := groupTypeTable.decode(data)
	if err != nil {
		return err
	}

	*g = GroupType(variant)

	return nil
}

// EntryMethod records how a user ended up in a group. String-coded.
type EntryMethod uint8

const (
	EntryJoin EntryMethod = iota
	EntryCreator
	EntryCreate
	EntryInvited
	EntryBlocked
)

var entryMethodTable = &stringEnumTable{
	name:      "EntryMethod",
	canonical: []string{"join", "creator", "create", "invited", "blocked"},
	fold:      true,
	aliases: map[string]int{
		"join":    int(EntryJoin),
		"creator": int(EntryCreator),
		"create":  int(EntryCreate),
		"invited": int(EntryInvited),
		"blocked": int(EntryBlocked),
	},
}

// String implements fmt.Stringer.
func (e EntryMethod) String() string {
	if int(e) < len(entryMethodTable.canonical) {
		return entryMethodTable.canonical[e]
	}

	return fmt.Sprintf("EntryMethod(%d)", uint8(e))
}

// MarshalJSON encodes the canonical wire spelling.
func (e EntryMethod) MarshalJSON() ([]byte, error) {
	return entryMethodTable.encode(int(e))
}

// UnmarshalJSON decodes the wire spelling.
func (e *EntryMethod) UnmarshalJSON(data []byte) error {
	variant, err := entryMethodTable.decode(data)
	if err != nil {
		return err
	}

	*e = EntryMethod(variant)

	return nil
}

// ActionType names the in-app destination a notification points at.
// String-coded with SCREAMING_SNAKE wire values, matched exactly.
type ActionType uint8

const (
	ActionBadgeAwarded ActionType = iota
	ActionBuddiesPage
	ActionNanoMessages
	ActionProjectsPage
)

var actionTypeTable = &stringEnumTable{
	name:      "ActionType",
	canonical: []string{"BADGE_AWARDED", "BUDDIES_PAGE", "NANOMESSAGES", "PROJECTS_PAGE"},
	aliases: map[string]int{
		"BADGE_AWARDED": int(ActionBadgeAwarded),
		"BUDDIES_PAGE":  int(ActionBuddiesPage),
		"NANOMESSAGES":  int(ActionNanoMessages),
		"PROJECTS_PAGE": int(ActionProjectsPage),
	},
}

// String implements fmt.Stringer.
func (a ActionType) String() string {
	if int(a) < len(actionTypeTable.canonical) {
		return actionTypeTable.canonical[a]
	}

	return fmt.Sprintf("ActionType(%d)", uint8(a))
}

// MarshalJSON encodes the canonical wire spelling.
func (a ActionType) MarshalJSON() ([]byte, error) {
	return actionTypeTable.encode(int(a))
}

// UnmarshalJSON decodes the wire spelling.
func (a *ActionType) UnmarshalJSON(data []byte) error {
	variant, err := actionTypeTable.decode(data)
	if err != nil {
		return err
	}

	*a = ActionType(variant)

	return nil
}

// ContentType is the rendering template of a post or page. String-coded
// with the API's inconsistent capitalization, matched exactly.
type ContentType uint8

const (
	ContentGeneral ContentType = iota
	ContentStacked
	ContentPlate
	ContentGroupOfPeople
	ContentGroupOfPageCards
	ContentPersonCard
	ContentPepTalk
	ContentPlainText
)

var contentTypeTable = &stringEnumTable{
	name: "ContentType",
	canonical: []string{
		"General content", "Stacked Content", "Plate", "Group of people",
		"Group of page cards", "Person Card", "Pep Talk", "Plain Text",
	},
	aliases: map[string]int{
		"General content":     int(ContentGeneral),
		"Stacked Content":     int(ContentStacked),
		"Plate":               int(ContentPlate),
		"Group of people":     int(ContentGroupOfPeople),
		"Group of page cards": int(ContentGroupOfPageCards),
		"Person Card":         int(ContentPersonCard),
		"Pep Talk":            int(ContentPepTalk),
		"Plain Text":          int(ContentPlainText),
	},
}

// String implements fmt.Stringer.
func (c ContentType) String() string {
	if int(c) < len(contentTypeTable.canonical) {
		return contentTypeTable.canonical[c]
	}

	return fmt.Sprintf("ContentType(%d)", uint8(c))
}

// MarshalJSON encodes the canonical wire spelling.
func (c ContentType) MarshalJSON() ([]byte, error) {
	return contentTypeTable.encode(int(c))
}

// UnmarshalJSON decodes the wire spelling.
func (c *ContentType) UnmarshalJSON(data []byte) error {
	variant, err := contentTypeTable.decode(data)
	if err != nil {
		return err
	}

	*c = ContentType(variant)

	return nil
}

// RegistrationPath records which identity provider a user signed up with.
// String-coded, matched case-insensitively on decode.
type RegistrationPath uint8

const (
	RegistrationEmail RegistrationPath = iota
	RegistrationFacebook
	RegistrationGoogle
)

var registrationPathTable = &stringEnumTable{
	name:      "RegistrationPath",
	canonical: []string{"email", "Facebook", "Google"},
	fold:      true,
	aliases: map[string]int{
		"email":    int(RegistrationEmail),
		"facebook": int(RegistrationFacebook),
		"google":   int(RegistrationGoogle),
	},
}

// String implements fmt.Stringer.
func (r RegistrationPath) String() string {
	if int(r) < len(registrationPathTable.canonical) {
		return registrationPathTable.canonical[r]
	}

	return fmt.Sprintf("RegistrationPath(%d)", uint8(r))
}

// MarshalJSON encodes the canonical wire spelling.
func (r RegistrationPath) MarshalJSON() ([]byte, error) {
	return registrationPathTable.encode(int(r))
}

// UnmarshalJSON decodes the wire spelling.
func (r *RegistrationPath) UnmarshalJSON(data []byte) error {
	variant, err := registrationPathTable.decode(data)
	if err != nil {
		return err
	}

	*r = RegistrationPath(variant)

	return nil
}

// BadgeType classifies how a badge is earned. String-coded.
type BadgeType uint8

const (
	BadgeWordCount BadgeType = iota
	BadgeSelfAwarded
	BadgeParticipation
)

var badgeTypeTable = &stringEnumTable{
	name:      "BadgeType",
	canonical: []string{"word count", "self-awarded", "participation"},
	fold:      true,
	aliases: map[string]int{
		"word count":    int(BadgeWordCount),
		"self-awarded":  int(BadgeSelfAwarded),
		"participation": int(BadgeParticipation),
	},
}

// String implements fmt.Stringer.
func (b BadgeType) String() string {
	if int(b) < len(badgeTypeTable.canonical) {
		return badgeTypeTable.canonical[b]
	}

	return fmt.Sprintf("BadgeType(%d)", uint8(b))
}

// MarshalJSON encodes the canonical wire spelling.
func (b BadgeType) MarshalJSON() ([]byte, error) {
	return badgeTypeTable.encode(int(b))
}

// UnmarshalJSON decodes the wire spelling.
func (b *BadgeType) UnmarshalJSON(data []byte) error {
	variant, err := badgeTypeTable.decode(data)
	if err != nil {
		return err
	}

	*b = BadgeType(variant)

	return nil
}

// AdheresTo says what entity a badge's conditions attach to. String-coded;
// the empty string is a real variant meaning "unknown".
type AdheresTo uint8

const (
	AdheresToUnknown AdheresTo = iota
	AdheresToUser
	AdheresToProjectChallenge
)

var adheresToTable = &stringEnumTable{
	name:      "AdheresTo",
	canonical: []string{"", "user", "project_challenge"},
	aliases: map[string]int{
		"":                  int(AdheresToUnknown),
		"user":              int(AdheresToUser),
		"project_challenge": int(AdheresToProjectChallenge),
	},
}

// String implements fmt.Stringer.
func (a AdheresTo) String() string {
	if int(a) < len(adheresToTable.canonical) {
		return adheresToTable.canonical[a]
	}

	return fmt.Sprintf("AdheresTo(%d)", uint8(a))
}

// MarshalJSON encodes the canonical wire spelling.
func (a AdheresTo) MarshalJSON() ([]byte, error) {
	return adheresToTable.encode(int(a))
}

// UnmarshalJSON decodes the wire spelling.
func (a *AdheresTo) UnmarshalJSON(data []byte) error {
	variant, err := adheresToTable.decode(data)
	if err != nil {
		return err
	}

	*a = AdheresTo(variant)

	return nil
}

// Where records where a writing session happened. Open-ended: values the
// catalog doesn't name round-trip as themselves instead of failing.
type Where uint8

const (
	WhereHome Where = iota
	WhereOffice
	WhereLibrary
	WhereCafe
)

// Known reports whether the value is one of the named locations.
func (w Where) Known() bool {
	return w <= WhereCafe
}

// String implements fmt.Stringer.
func (w Where) String() string {
	switch w {
	case WhereHome:
		return "home"
	case WhereOffice:
		return "office"
	case WhereLibrary:
		return "library"
	case WhereCafe:
		return "cafe"
	}

	return fmt.Sprintf("Where(%d)", uint8(w))
}

// MarshalJSON encodes the integer wire value, named or not.
func (w Where) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint8(w))
}

// UnmarshalJSON decodes any integer wire value; unnamed values are kept
// raw rather than rejected.
func (w *Where) UnmarshalJSON(data []byte) error {
	var val uint8

	err := json.Unmarshal(data, &val)
	if err != nil {
		return enumError("Where", string(data))
	}

	*w = Where(val)

	return nil
}

// How records what a writing session was written with. Open-ended like
// Where.
type How uint64

const (
	HowByHand How = iota
	HowTypewriter
	HowLaptop
	HowPhone
)

// Known reports whether the value is one of the named methods.
func (h How) Known() bool {
	return h <= HowPhone
}

// String implements fmt.Stringer.
func (h How) String() string {
	switch h {
	case HowByHand:
		return "by hand"
	case HowTypewriter:
		return "typewriter"
	case HowLaptop:
		return "laptop"
	case HowPhone:
		return "phone"
	}

	return fmt.Sprintf("How(%d)", uint64(h))
}

// MarshalJSON encodes the integer wire value, named or not.
func (h How) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(h))
}

// UnmarshalJSON decodes any integer wire value; unnamed values are kept
// raw rather than rejected.
func (h *How) UnmarshalJSON(data []byte) error {
	var val uint64

	err := json.Unmarshal(data, &val)
	if err != nil {
		return enumError("How", string(data))
	}

	*h = How(val)

	return nil
}
