package nano

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a nano.Client.
//
// A client built without credentials is anonymous: it can read the public
// endpoints but never authenticates, and a 401 is returned to the caller
// as-is. With credentials the client signs in on demand and retries a
// rejected request once after a fresh sign-in.
type Config struct {
	// BaseURL is the API root. Defaults to the public API when empty.
	BaseURL string

	// Username and Password are the sign-in credentials. Leave both empty
	// for an anonymous client.
	Username string
	Password string

	// Token pre-seeds the session with a saved token. With credentials
	// also set, the client signs in fresh when the token is rejected.
	Token string

	// UserAgent overrides the User-Agent header.
	UserAgent string

	// Logger receives request traces. Nil disables logging.
	Logger Logger

	// Debug adds request and response bodies to the traces.
	Debug bool

	// RetryMax is the transport-level retry count for transient network
	// failures. Zero disables transport retries; authentication retries
	// are independent of this setting.
	RetryMax int

	// RetryWaitMin and RetryWaitMax bound the transport retry backoff.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// SessionClient manages the sign-in state.
type SessionClient interface {
	// Login signs in with the configured credentials and stores the
	// session token. ErrNoCredentials for anonymous clients.
	Login(ctx context.Context) error
	// Logout tells the API to end the session and drops the stored token
	// whether or not the API call succeeded.
	Logout(ctx context.Context) error
	// IsLoggedIn reports whether a session token is held.
	IsLoggedIn() bool
}

// SiteClient covers the site-wide endpoints that need no authentication.
type SiteClient interface {
	// Fundometer fetches the fundraising tracker.
	Fundometer(ctx context.Context) (*Fundometer, error)
	// SearchUsers searches users by name.
	SearchUsers(ctx context.Context, name string) (*CollectionResponse[*UserObject], error)
	// RandomOffer fetches one random sponsor offer.
	RandomOffer(ctx context.Context) (*ItemResponse[*PostObject], error)
	// Offers fetches all current sponsor offers.
	Offers(ctx context.Context) ([]ItemResponse[*PostObject], error)
	// StoreItems fetches the merchandise store catalog.
	StoreItems(ctx context.Context) ([]StoreItem, error)
	// Page fetches a content page by its slug, e.g. "pep-talks".
	Page(ctx context.Context, slug string) (*ItemResponse[*PageObject], error)
}

// AccountClient covers the endpoints scoped to the signed-in user.
type AccountClient interface {
	// CurrentUser fetches the signed-in user's profile.
	CurrentUser(ctx context.Context, query *Query) (*ItemResponse[*UserObject], error)
	// Notifications fetches the signed-in user's notifications.
	Notifications(ctx context.Context) (*CollectionResponse[*NotificationObject], error)
	// AvailableChallenges fetches the challenges open to the signed-in
	// user.
	AvailableChallenges(ctx context.Context) (*CollectionResponse[*ChallengeObject], error)
	// DailyAggregates fetches the per-day counts of a project challenge.
	DailyAggregates(ctx context.Context, projectChallengeID uint64) (*CollectionResponse[*DailyAggregateObject], error)
	// AddProjectSession submits a new writing session against a project
	// challenge. The count in session is a delta, not a running total.
	AddProjectSession(ctx context.Context, projectID, projectChallengeID uint64, session ProjectSessionData) (*ItemResponse[*ProjectSessionObject], error)
}

// ObjectClient covers the kind-generic object queries. The typed
// package-level helpers (GetAllAs, GetIDAs, ...) are usually more
// convenient.
type ObjectClient interface {
	// GetAll fetches every accessible object of a kind.
	GetAll(ctx context.Context, kind Kind, query *Query) (*CollectionResponse[AnyObject], error)
	// GetID fetches one object by id.
	GetID(ctx context.Context, kind Kind, id uint64, query *Query) (*ItemResponse[AnyObject], error)
	// GetSlug fetches one object by slug.
	GetSlug(ctx context.Context, kind Kind, slug string, query *Query) (*ItemResponse[AnyObject], error)
	// GetAllRelated follows a relationship link expected to yield a
	// collection. ErrWrongCardinality when the link targets a single
	// object.
	GetAllRelated(ctx context.Context, link RelationLink) (*CollectionResponse[AnyObject], error)
	// GetUniqueRelated follows a relationship link expected to yield one
	// object. ErrWrongCardinality when the link targets a collection.
	GetUniqueRelated(ctx context.Context, link RelationLink) (*ItemResponse[AnyObject], error)
}

// Client is the full API surface.
type Client interface {
	SessionClient
	SiteClient
	AccountClient
	ObjectClient

	// Do executes one API call and decodes the response into out,
	// applying the client's authentication and re-login policy. It is
	// the escape hatch for endpoints without a typed method.
	Do(ctx context.Context, method, path string, query url.Values, body any, out any) error
}

// GetAllAs fetches every accessible object of T's kind, typed.
func GetAllAs[T any](ctx context.Context, client Client, kind Kind, query *Query) (*CollectionResponse[T], error) {
	var resp CollectionResponse[T]

	err := client.Do(ctx, http.MethodGet, kind.Name(), query.Values(), nil, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetIDAs fetches one object by id, typed.
func GetIDAs[T any](ctx context.Context, client Client, kind Kind, id uint64, query *Query) (*ItemResponse[T], error) {
	return getOneAs[T](ctx, client, kind.Name()+"/"+strconv.FormatUint(id, 10), query)
}

// GetSlugAs fetches one object by slug, typed.
func GetSlugAs[T any](ctx context.Context, client Client, kind Kind, slug string, query *Query) (*ItemResponse[T], error) {
	return getOneAs[T](ctx, client, kind.Name()+"/"+slug, query)
}

func getOneAs[T any](ctx context.Context, client Client, path string, query *Query) (*ItemResponse[T], error) {
	var resp ItemResponse[T]

	err := client.Do(ctx, http.MethodGet, path, query.Values(), nil, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
