package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/wrimolabs/nanowrimo/pkg/nano"
)

// Site-wide endpoints.

// Fundometer fetches the fundraising tracker.
func (c *Client) Fundometer(ctx context.Context) (*nano.Fundometer, error) {
	var fund nano.Fundometer

	err := c.Do(ctx, http.MethodGet, "fundometer", nil, nil, &fund)
	if err != nil {
		return nil, err
	}

	return &fund, nil
}

// SearchUsers searches users by name.
func (c *Client) SearchUsers(ctx context.Context, name string) (*nano.CollectionResponse[*nano.UserObject], error) {
	var resp nano.CollectionResponse[*nano.UserObject]

	err := c.Do(ctx, http.MethodGet, "search", url.Values{"q": []string{name}}, nil, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// RandomOffer fetches one random sponsor offer.
func (c *Client) RandomOffer(ctx context.Context) (*nano.ItemResponse[*nano.PostObject], error) {
	var resp nano.ItemResponse[*nano.PostObject]

	err := c.Do(ctx, http.MethodGet, "random_offer", nil, nil, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// Offers fetches all current sponsor offers.
func (c *Client) Offers(ctx context.Context) ([]nano.ItemResponse[*nano.PostObject], error) {
	var offers []nano.ItemResponse[*nano.PostObject]

	err := c.Do(ctx, http.MethodGet, "offers", nil, nil, &offers)
	if err != nil {
		return nil, err
	}

	return offers, nil
}

// StoreItems fetches the merchandise store catalog.
func (c *Client) StoreItems(ctx context.Context) ([]nano.StoreItem, error) {
	var items []nano.StoreItem

	err := c.Do(ctx, http.MethodGet, "store_items", nil, nil, &items)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// Page fetches a content page by its slug. Known slugs include
// "pep-talks", "about-nano" and "terms-and-conditions".
func (c *Client) Page(ctx context.Context, slug string) (*nano.ItemResponse[*nano.PageObject], error) {
	var resp nano.ItemResponse[*nano.PageObject]

	err := c.Do(ctx, http.MethodGet, "pages/"+slug, nil, nil, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// Account-scoped endpoints.

// CurrentUser fetches the signed-in user's profile.
func (c *Client) CurrentUser(ctx context.Context, query *nano.Query) (*nano.ItemResponse[*nano.UserObject], error) {
	var resp nano.ItemResponse[*nano.UserObject]

	err := c.Do(ctx, http.MethodGet, "users/current", query.Values(), nil, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// Notifications fetches the signed-in user's notifications.
func (c *Client) Notifications(ctx context.Context) (*nano.CollectionResponse[*nano.NotificationObject], error) {
	var resp nano.CollectionResponse[*nano.NotificationObject]

	err := c.Do(ctx, http.MethodGet, "notifications", nil, nil, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// AvailableChallenges fetches the challenges the signed-in user can enter
// projects in.
func (c *Client) AvailableChallenges(ctx context.Context) (*nano.CollectionResponse[*nano.ChallengeObject], error) {
	var resp nano.CollectionResponse[*nano.ChallengeObject]

	err := c.Do(ctx, http.MethodGet, "challenges/available", nil, nil, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// DailyAggregates fetches the per-day counts of a project challenge.
func (c *Client) DailyAggregates(ctx context.Context, projectChallengeID uint64) (*nano.CollectionResponse[*nano.DailyAggregateObject], error) {
	var resp nano.CollectionResponse[*nano.DailyAggregateObject]

	path := "project-challenges/" + strconv.FormatUint(projectChallengeID, 10) + "/daily-aggregates"

	err := c.Do(ctx, http.MethodGet, path, nil, nil, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// AddProjectSession submits a new writing session. The submitted object
// carries no id and points at its project and project challenge through
// single relationship references.
func (c *Client) AddProjectSession(ctx context.Context, projectID, projectChallengeID uint64, session nano.ProjectSessionData) (*nano.ItemResponse[*nano.ProjectSessionObject], error) {
	if !c.IsLoggedIn() {
		return nil, nano.ErrNoCredentials
	}

	submission := nano.ItemResponse[*nano.ProjectSessionObject]{
		Data: &nano.ProjectSessionObject{
			ObjectCommon: nano.ObjectCommon{
				Relationships: &nano.RelationInfo{
					Included: map[nano.Kind][]nano.ObjectRef{
						nano.KindProject:          {nano.Ref(nano.KindProject, projectID)},
						nano.KindProjectChallenge: {nano.Ref(nano.KindProjectChallenge, projectChallengeID)},
					},
				},
			},
			Data: session,
		},
	}

	var resp nano.ItemResponse[*nano.ProjectSessionObject]

	err := c.Do(ctx, http.MethodPost, "project-sessions", nil, submission, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// Kind-generic object queries.

// GetAll fetches every accessible object of a kind.
func (c *Client) GetAll(ctx context.Context, kind nano.Kind, query *nano.Query) (*nano.CollectionResponse[nano.AnyObject], error) {
	return nano.GetAllAs[nano.AnyObject](ctx, c, kind, query)
}

// GetID fetches one object by id.
func (c *Client) GetID(ctx context.Context, kind nano.Kind, id uint64, query *nano.Query) (*nano.ItemResponse[nano.AnyObject], error) {
	return nano.GetIDAs[nano.AnyObject](ctx, c, kind, id, query)
}

// GetSlug fetches one object by slug. Not every kind has slugs.
func (c *Client) GetSlug(ctx context.Context, kind nano.Kind, slug string, query *nano.Query) (*nano.ItemResponse[nano.AnyObject], error) {
	return nano.GetSlugAs[nano.AnyObject](ctx, c, kind, slug, query)
}

// GetAllRelated follows a relationship link that targets a collection.
// Some relation links 404 on the server side; prefer include= when the
// relations are known up front.
func (c *Client) GetAllRelated(ctx context.Context, link nano.RelationLink) (*nano.CollectionResponse[nano.AnyObject], error) {
	if !relatesToMany(link) {
		return nil, fmt.Errorf("%w: %q targets a single object", nano.ErrWrongCardinality, link.Related)
	}

	var resp nano.CollectionResponse[nano.AnyObject]

	err := c.Do(ctx, http.MethodGet, link.Related, nil, nil, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetUniqueRelated follows a relationship link that targets a single
// object.
func (c *Client) GetUniqueRelated(ctx context.Context, link nano.RelationLink) (*nano.ItemResponse[nano.AnyObject], error) {
	if relatesToMany(link) {
		return nil, fmt.Errorf("%w: %q targets a collection", nano.ErrWrongCardinality, link.Related)
	}

	var resp nano.ItemResponse[nano.AnyObject]

	err := c.Do(ctx, http.MethodGet, link.Related, nil, nil, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// relatesToMany guesses a link's cardinality from its path: collection
// endpoints end in a plural kind name. The guess is a guard, not a
// guarantee; the API does not declare cardinality anywhere.
func relatesToMany(link nano.RelationLink) bool {
	return strings.HasSuffix(link.Related, "s")
}
