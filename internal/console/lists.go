package console

import (
	"errors"
	"net/http"
	"strings"

	"rebookz-admin/internal/apiclient"
	"rebookz-admin/internal/listing"
	"rebookz-admin/internal/logger"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// resource describes one list page: where its view lives in the workspace
// and how to build it.
type resource[T any] struct {
	slug     string
	title    string
	singular string
	fields   []string
	id       func(T) string
	source   func(services) listing.Source[T]
	slot     func(*Workspace) **listing.View[T]
}

func (res resource[T]) newView(ws *Workspace) (*listing.View[T], error) {
	return listing.NewView(res.source(ws.svc), listing.Config[T]{
		Limit:       ws.limit,
		Fields:      res.fields,
		KeywordMode: ws.mode,
		ID:          res.id,
	})
}

// view returns the current view, creating an unloaded one if the page was
// never visited.
func (res resource[T]) view(ws *Workspace) (*listing.View[T], error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	slot := res.slot(ws)
	if *slot != nil {
		return *slot, nil
	}
	v, err := res.newView(ws)
	if err != nil {
		return nil, err
	}
	*slot = v
	return v, nil
}

// fresh replaces the view, discarding the state of a previous visit.
func (res resource[T]) fresh(ws *Workspace) (*listing.View[T], error) {
	v, err := res.newView(ws)
	if err != nil {
		return nil, err
	}
	ws.mu.Lock()
	*res.slot(ws) = v
	ws.mu.Unlock()
	return v, nil
}

func (res resource[T]) path() string { return "/admin/" + res.slug }

// listPage wires the shared list routes of a resource: show, filter,
// search, clear, pagination and, when deletable, delete.
type listPage[T any] struct {
	c         *Console
	res       resource[T]
	template  string
	deletable bool
	// extra adds page-specific data to the render, e.g. a summary.
	extra func(r *http.Request, ws *Workspace, st listing.State[T]) any
	// onMount runs alongside a fresh mount, e.g. loading the category list.
	onMount func(r *http.Request, ws *Workspace) error
}

func (p listPage[T]) routes(r chi.Router) {
	r.Get("/", p.show)
	r.Post("/filter", p.filter)
	r.Post("/search", p.search)
	r.Post("/clear", p.clear)
	r.Post("/next", p.next)
	r.Post("/prev", p.prev)
	if p.deletable {
		r.Post("/{id}/delete", p.delete)
	}
}

func (p listPage[T]) show(w http.ResponseWriter, r *http.Request) {
	ws := p.c.workspace(r)
	ctx := r.Context()

	var (
		v   *listing.View[T]
		err error
	)
	if r.URL.Query().Get("view") == "current" {
		v, err = p.res.view(ws)
	} else {
		v, err = p.res.fresh(ws)
		if err == nil {
			if p.onMount != nil {
				if mountErr := p.onMount(r, ws); mountErr != nil {
					p.c.fail(r, ws, "Failed to fetch categories", mountErr)
				}
			}
			if mountErr := v.Mount(ctx); mountErr != nil {
				p.c.fail(r, ws, "Failed to fetch "+p.res.title, mountErr)
			}
		}
	}
	if err != nil {
		p.c.serverError(w, r, err)
		return
	}

	st := v.Snapshot()
	data := pageData{
		Title:  strings.ToUpper(p.res.title[:1]) + p.res.title[1:],
		Active: p.res.slug,
		Path:   p.res.path(),
		List:   st,
	}
	if p.extra != nil {
		data.Data = p.extra(r, ws, st)
	}
	p.c.render(w, r, ws, p.template, data)
}

func (p listPage[T]) filter(w http.ResponseWriter, r *http.Request) {
	p.act(w, r, func(v *listing.View[T]) error {
		if err := r.ParseForm(); err != nil {
			return apiclient.Validation(map[string]string{"form": "Invalid form submission"})
		}
		// The search box travels with every filter form; it only refetches
		// on its own in live mode.
		if r.PostForm.Has(listing.KeywordField) && p.c.opts.KeywordMode == listing.KeywordOnSubmit {
			if err := v.SetFilter(r.Context(), listing.KeywordField, strings.TrimSpace(r.PostForm.Get(listing.KeywordField))); err != nil {
				return err
			}
		}
		return v.SetFilter(r.Context(), r.PostForm.Get("field"), strings.TrimSpace(r.PostForm.Get("value")))
	})
}

func (p listPage[T]) search(w http.ResponseWriter, r *http.Request) {
	p.act(w, r, func(v *listing.View[T]) error {
		keyword := strings.TrimSpace(r.FormValue(listing.KeywordField))
		changed := v.Snapshot().Filter(listing.KeywordField) != keyword
		if err := v.SetFilter(r.Context(), listing.KeywordField, keyword); err != nil {
			return err
		}
		// Live mode has already refetched for a new keyword.
		if changed && p.c.opts.KeywordMode == listing.KeywordLive {
			return nil
		}
		return v.Search(r.Context())
	})
}

func (p listPage[T]) clear(w http.ResponseWriter, r *http.Request) {
	p.act(w, r, func(v *listing.View[T]) error { return v.Clear(r.Context()) })
}

func (p listPage[T]) next(w http.ResponseWriter, r *http.Request) {
	p.act(w, r, func(v *listing.View[T]) error { return v.Next(r.Context()) })
}

func (p listPage[T]) prev(w http.ResponseWriter, r *http.Request) {
	p.act(w, r, func(v *listing.View[T]) error { return v.Prev(r.Context()) })
}

func (p listPage[T]) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ws := p.c.workspace(r)

	v, err := p.res.view(ws)
	if err != nil {
		p.c.serverError(w, r, err)
		return
	}
	if err := v.Delete(r.Context(), id); err != nil {
		p.c.fail(r, ws, "Failed to delete "+p.res.singular, err)
	}
	p.c.redirectCurrent(w, r, p.res.path())
}

// act runs fn against the current view and redirects back to it. Disabled
// pagination and superseded fetches are not errors worth an alert.
func (p listPage[T]) act(w http.ResponseWriter, r *http.Request, fn func(v *listing.View[T]) error) {
	ws := p.c.workspace(r)

	v, err := p.res.view(ws)
	if err != nil {
		p.c.serverError(w, r, err)
		return
	}

	err = fn(v)
	switch {
	case err == nil,
		errors.Is(err, listing.ErrNoNextPage),
		errors.Is(err, listing.ErrNoPrevPage),
		errors.Is(err, listing.ErrStaleResponse):
	case errors.Is(err, listing.ErrUnknownFilter):
		logger.FromCtx(r.Context()).Warn("unknown list filter",
			zap.String("layer", "handler"),
			zap.String("page", p.res.slug),
		)
	default:
		p.c.fail(r, ws, "Failed to fetch "+p.res.title, err)
	}
	p.c.redirectCurrent(w, r, p.res.path())
}
