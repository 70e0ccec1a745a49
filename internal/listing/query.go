package listing

import (
	"net/url"
	"strconv"
)

// KeywordField is the free-text filter. Unlike the other fields it may be
// held back until an explicit search, see KeywordMode.
const KeywordField = "keyword"

const DefaultLimit = 10

// Query is one list request: a 1-based page, a page size and AND-combined filters.
type Query struct {
	Page    int
	Limit   int
	Filters map[string]string
}

// Values serializes the query for the REST endpoint. Empty filters are omitted.
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	for field, value := range q.Filters {
		if value != "" {
			v.Set(field, value)
		}
	}
	return v
}

// Filter returns the value of field, or "" when unset.
func (q Query) Filter(field string) string {
	return q.Filters[field]
}

// Page is one page of results as reported by the server.
type Page[T any] struct {
	Items []T
	Page  int
	Pages int
	Total int
}

// Single wraps an unpaginated result as a one-page response.
func Single[T any](items []T) Page[T] {
	return Page[T]{Items: items, Page: 1, Pages: 1, Total: len(items)}
}

// Match keeps the items whose fields equal every non-empty filter in q,
// for endpoints that return the whole collection. The keyword is ignored.
func Match[T any](items []T, q Query, field func(item T, name string) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		ok := true
		for name, value := range q.Filters {
			if name == KeywordField || value == "" {
				continue
			}
			if field(item, name) != value {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, item)
		}
	}
	return out
}
