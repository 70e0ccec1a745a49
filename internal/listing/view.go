package listing

import (
	"context"
	"sync"
)

type KeywordMode int

const (
	// KeywordOnSubmit keeps keyword edits pending until the next fetch, usually Search.
	KeywordOnSubmit KeywordMode = iota
	// KeywordLive refetches on every keyword change, like any other filter.
	KeywordLive
)

// Source is the server side of a list page.
type Source[T any] interface {
	List(ctx context.Context, q Query) (Page[T], error)
}

// Deleter is implemented by sources whose items can be deleted.
type Deleter interface {
	Delete(ctx context.Context, id string) error
}

type Config[T any] struct {
	Limit       int
	Fields      []string
	KeywordMode KeywordMode
	ID          func(T) string
}

// State is a point-in-time copy of a View.
type State[T any] struct {
	Items   []T
	Page    int
	Pages   int
	Total   int
	Filters map[string]string
	// Keyword is what the search box holds, applied or not.
	Keyword string
	Loading bool
	Loaded  bool
	Err     error
}

func (s State[T]) HasNext() bool { return s.Loaded && s.Page < s.Pages }

func (s State[T]) HasPrev() bool { return s.Loaded && s.Page > 1 }

// Filter returns the applied value of field.
func (s State[T]) Filter(field string) string { return s.Filters[field] }

// KeywordPending reports whether the search box differs from the applied keyword.
func (s State[T]) KeywordPending() bool { return s.Keyword != s.Filters[KeywordField] }

// View is a paginated, filterable, mutable list of T backed by a Source.
//
// Every fetch takes a token from a monotonic counter; a response is applied
// only if no newer fetch was issued meanwhile. Requests run without holding
// the lock, so a View may be driven from concurrent HTTP handlers.
type View[T any] struct {
	src    Source[T]
	cfg    Config[T]
	fields map[string]bool

	mu    sync.Mutex
	seq   uint64
	state State[T]
}

func NewView[T any](src Source[T], cfg Config[T]) (*View[T], error) {
	if src == nil {
		return nil, ErrMissingSource
	}
	if cfg.ID == nil {
		return nil, ErrMissingIDFunc
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}

	fields := make(map[string]bool, len(cfg.Fields)+1)
	fields[KeywordField] = true
	for _, f := range cfg.Fields {
		fields[f] = true
	}

	return &View[T]{
		src:    src,
		cfg:    cfg,
		fields: fields,
		state: State[T]{
			Page:    1,
			Pages:   1,
			Filters: map[string]string{},
		},
	}, nil
}

// Mount loads the first page with the current filters.
func (v *View[T]) Mount(ctx context.Context) error {
	return v.fetch(ctx, 1)
}

// Reload refetches the first page, e.g. after a create.
func (v *View[T]) Reload(ctx context.Context) error {
	return v.fetch(ctx, 1)
}

// SetFilter changes one filter field. A changed non-keyword field resets to
// page 1 and refetches once; an unchanged value is a no-op. The keyword only
// refetches in KeywordLive mode; otherwise it is held in the search box and
// sent with the next fetch of any kind.
func (v *View[T]) SetFilter(ctx context.Context, field, value string) error {
	if !v.fields[field] {
		return ErrUnknownFilter
	}

	v.mu.Lock()
	if field == KeywordField {
		v.state.Keyword = value
		if v.cfg.KeywordMode == KeywordOnSubmit {
			v.mu.Unlock()
			return nil
		}
	}
	if v.state.Filters[field] == value {
		v.mu.Unlock()
		return nil
	}
	setFilter(v.state.Filters, field, value)
	v.mu.Unlock()

	return v.fetch(ctx, 1)
}

// Search applies the pending keyword and refetches page 1.
func (v *View[T]) Search(ctx context.Context) error {
	return v.fetch(ctx, 1)
}

// Clear drops every filter, including the keyword, and refetches page 1.
func (v *View[T]) Clear(ctx context.Context) error {
	v.mu.Lock()
	v.state.Filters = map[string]string{}
	v.state.Keyword = ""
	v.mu.Unlock()

	return v.fetch(ctx, 1)
}

func (v *View[T]) Next(ctx context.Context) error {
	v.mu.Lock()
	if !v.state.HasNext() {
		v.mu.Unlock()
		return ErrNoNextPage
	}
	page := v.state.Page + 1
	v.mu.Unlock()

	return v.fetch(ctx, page)
}

func (v *View[T]) Prev(ctx context.Context) error {
	v.mu.Lock()
	if !v.state.HasPrev() {
		v.mu.Unlock()
		return ErrNoPrevPage
	}
	page := v.state.Page - 1
	v.mu.Unlock()

	return v.fetch(ctx, page)
}

// Delete removes id on the server, then drops exactly that item locally
// without refetching.
func (v *View[T]) Delete(ctx context.Context, id string) error {
	d, ok := v.src.(Deleter)
	if !ok {
		return ErrDeleteUnsupported
	}
	if err := d.Delete(ctx, id); err != nil {
		v.mu.Lock()
		v.state.Err = err
		v.mu.Unlock()
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	kept := v.state.Items[:0:0]
	for _, item := range v.state.Items {
		if v.cfg.ID(item) != id {
			kept = append(kept, item)
		}
	}
	if removed := len(v.state.Items) - len(kept); removed > 0 {
		v.state.Total -= removed
		if v.state.Total < 0 {
			v.state.Total = 0
		}
	}
	v.state.Items = kept
	return nil
}

// Patch applies fn to the local copy of id, after a successful partial update.
func (v *View[T]) Patch(id string, fn func(*T)) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range v.state.Items {
		if v.cfg.ID(v.state.Items[i]) == id {
			fn(&v.state.Items[i])
			return nil
		}
	}
	return ErrItemNotFound
}

// Append adds a newly created item to the local list.
func (v *View[T]) Append(item T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.Items = append(v.state.Items, item)
	v.state.Total++
}

// Find returns the local copy of id.
func (v *View[T]) Find(id string) (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, item := range v.state.Items {
		if v.cfg.ID(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (v *View[T]) Snapshot() State[T] {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := v.state
	s.Items = append([]T(nil), v.state.Items...)
	s.Filters = make(map[string]string, len(v.state.Filters))
	for k, val := range v.state.Filters {
		s.Filters[k] = val
	}
	return s
}

func (v *View[T]) fetch(ctx context.Context, page int) error {
	v.mu.Lock()
	v.seq++
	token := v.seq
	setFilter(v.state.Filters, KeywordField, v.state.Keyword)
	q := Query{Page: page, Limit: v.cfg.Limit, Filters: make(map[string]string, len(v.state.Filters))}
	for k, val := range v.state.Filters {
		q.Filters[k] = val
	}
	v.state.Loading = true
	v.mu.Unlock()

	res, err := v.src.List(ctx, q)

	v.mu.Lock()
	defer v.mu.Unlock()

	if token != v.seq {
		return ErrStaleResponse
	}
	v.state.Loading = false
	if err != nil {
		v.state.Err = err
		return err
	}

	if res.Page <= 0 {
		res.Page = page
	}
	if res.Pages <= 0 {
		res.Pages = 1
	}
	v.state.Items = res.Items
	v.state.Page = res.Page
	v.state.Pages = res.Pages
	v.state.Total = res.Total
	v.state.Loaded = true
	v.state.Err = nil
	return nil
}

func setFilter(filters map[string]string, field, value string) {
	if value == "" {
		delete(filters, field)
		return
	}
	filters[field] = value
}
