package nano

import (
	"net/url"
	"strconv"
	"strings"
)

// Query collects the request parameters an endpoint accepts: which
// related kinds to side-load and which foreign-key filters to apply. The
// zero value is an empty query.
type Query struct {
	includes []Kind
	filters  []filterTerm
}

type filterTerm struct {
	field string
	id    uint64
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{}
}

// Include requests that objects related through the given kinds be
// side-loaded into the response's included list.
func (q *Query) Include(kinds ...Kind) *Query {
	q.includes = append(q.includes, kinds...)

	return q
}

// Filter restricts the collection to objects whose field matches id, e.g.
// Filter("user_id", 42).
func (q *Query) Filter(field string, id uint64) *Query {
	q.filters = append(q.filters, filterTerm{field: field, id: id})

	return q
}

// Values renders the query as URL parameters. An empty query renders
// empty, so callers can append unconditionally.
func (q *Query) Values() url.Values {
	vals := url.Values{}

	if q == nil {
		return vals
	}

	if len(q.includes) > 0 {
		names := make([]string, len(q.includes))
		for i, kind := range q.includes {
			names[i] = kind.Name()
		}

		vals.Set("include", strings.Join(names, ","))
	}

	// Add, not Set: the same field may be filtered on several ids.
	for _, term := range q.filters {
		vals.Add("filter["+term.field+"]", strconv.FormatUint(term.id, 10))
	}

	return vals
}

// Encode renders the query in URL-encoded form, without a leading "?".
func (q *Query) Encode() string {
	return q.Values().Encode()
}
