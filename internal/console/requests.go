package console

import (
	"net/http"

	"rebookz-admin/internal/book"
	"rebookz-admin/internal/listing"
	"rebookz-admin/internal/request"

	"github.com/go-chi/chi/v5"
)

var requestsResource = resource[request.Request]{
	slug:     "requests",
	title:    "requests",
	singular: "request",
	fields:   request.FilterFields,
	id:       func(r request.Request) string { return r.ID },
	source:   func(s services) listing.Source[request.Request] { return s.requests },
	slot:     func(ws *Workspace) **listing.View[request.Request] { return &ws.requests },
}

type requestsPage struct {
	Active     int
	Statuses   []string
	Types      []string
	Conditions []string
}

func (c *Console) requestRoutes(r chi.Router) {
	listPage[request.Request]{
		c:        c,
		res:      requestsResource,
		template: "requests.html",
		onMount: func(r *http.Request, ws *Workspace) error {
			_, err := ws.loadCatalog(r.Context())
			return err
		},
		extra: func(_ *http.Request, _ *Workspace, st listing.State[request.Request]) any {
			return requestsPage{
				Active:     request.ActiveCount(st.Items),
				Statuses:   request.Statuses,
				Types:      book.Types,
				Conditions: book.Conditions,
			}
		},
	}.routes(r)

	r.Post("/{id}/cancel", c.cancelRequest)
	r.Post("/{id}/fulfill", c.fulfillRequest)
}

func (c *Console) cancelRequest(w http.ResponseWriter, r *http.Request) {
	ws := c.workspace(r)
	id := chi.URLParam(r, "id")
	defer c.redirectCurrent(w, r, requestsResource.path())

	if err := ws.svc.requests.UpdateStatus(r.Context(), id, request.StatusCancelled); err != nil {
		c.fail(r, ws, "Failed to update request", err)
		return
	}
	if v, err := requestsResource.view(ws); err == nil {
		_ = v.Patch(id, func(req *request.Request) { req.Status = request.StatusCancelled })
	}
}

// fulfillRequest lists a book drafted from the request, with the admin's
// edits and cover, then marks the request fulfilled.
func (c *Console) fulfillRequest(w http.ResponseWriter, r *http.Request) {
	ws := c.workspace(r)
	id := chi.URLParam(r, "id")
	defer c.redirectCurrent(w, r, requestsResource.path())

	v, err := requestsResource.view(ws)
	if err != nil {
		c.fail(r, ws, "Failed to fulfill request", err)
		return
	}
	req, ok := v.Find(id)
	if !ok {
		c.fail(r, ws, "Failed to fulfill request", listing.ErrItemNotFound)
		return
	}

	cover, closeCover, err := parseUpload(r, "image")
	defer closeCover()
	if err != nil {
		c.fail(r, ws, "Failed to fulfill request", err)
		return
	}

	draft := request.Draft(req, ws.categoryList())
	if err := bookForm(r, &draft); err != nil {
		c.fail(r, ws, "Failed to fulfill request", err)
		return
	}

	created, err := ws.svc.requests.Fulfill(r.Context(), req, draft, cover)
	if err != nil {
		fallback := "Failed to fulfill request"
		if created != nil {
			fallback = "Book added but the request could not be marked fulfilled"
		}
		c.fail(r, ws, fallback, err)
		return
	}

	_ = v.Patch(id, func(req *request.Request) { req.Status = request.StatusFulfilled })
	c.succeed(ws, "Book added and request fulfilled successfully")
}
