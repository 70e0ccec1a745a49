package console

import (
	"net/http"
	"strings"

	"rebookz-admin/internal/listing"
	"rebookz-admin/internal/support"

	"github.com/go-chi/chi/v5"
)

var supportResource = resource[support.Ticket]{
	slug:     "support",
	title:    "tickets",
	singular: "ticket",
	fields:   support.FilterFields,
	id:       func(t support.Ticket) string { return t.ID },
	source:   func(s services) listing.Source[support.Ticket] { return s.support },
	slot:     func(ws *Workspace) **listing.View[support.Ticket] { return &ws.tickets },
}

func (c *Console) supportRoutes(r chi.Router) {
	listPage[support.Ticket]{
		c:        c,
		res:      supportResource,
		template: "support.html",
		extra: func(*http.Request, *Workspace, listing.State[support.Ticket]) any {
			return support.Statuses
		},
	}.routes(r)

	r.Post("/{id}/respond", c.respondTicket)
}

func (c *Console) respondTicket(w http.ResponseWriter, r *http.Request) {
	ws := c.workspace(r)
	id := chi.URLParam(r, "id")
	defer c.redirectCurrent(w, r, supportResource.path())

	resp := support.Response{
		Status:        r.FormValue("status"),
		AdminResponse: strings.TrimSpace(r.FormValue("adminResponse")),
	}
	if err := ws.svc.support.Respond(r.Context(), id, resp); err != nil {
		c.fail(r, ws, "Failed to update ticket", err)
		return
	}

	if v, err := supportResource.view(ws); err == nil {
		_ = v.Patch(id, func(t *support.Ticket) {
			t.Status = resp.Status
			t.AdminResponse = resp.AdminResponse
		})
	}
	c.succeed(ws, "Ticket updated")
}
