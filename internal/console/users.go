package console

import (
	"net/http"

	"rebookz-admin/internal/listing"
	"rebookz-admin/internal/user"

	"github.com/go-chi/chi/v5"
)

var usersResource = resource[user.User]{
	slug:     "users",
	title:    "users",
	singular: "user",
	id:       func(u user.User) string { return u.ID },
	source:   func(s services) listing.Source[user.User] { return s.users },
	slot:     func(ws *Workspace) **listing.View[user.User] { return &ws.users },
}

func (c *Console) userRoutes(r chi.Router) {
	listPage[user.User]{
		c:         c,
		res:       usersResource,
		template:  "users.html",
		deletable: true,
	}.routes(r)

	r.Post("/{id}/suspend", c.suspendUser(true))
	r.Post("/{id}/unsuspend", c.suspendUser(false))
}

func (c *Console) suspendUser(suspended bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws := c.workspace(r)
		id := chi.URLParam(r, "id")
		defer c.redirectCurrent(w, r, usersResource.path())

		if err := ws.svc.users.Suspend(r.Context(), id, suspended); err != nil {
			c.fail(r, ws, "Failed to update user", err)
			return
		}

		if v, err := usersResource.view(ws); err == nil {
			_ = v.Patch(id, func(u *user.User) { u.IsSuspended = suspended })
		}
	}
}
