package console

import (
	"errors"
	"net/http"

	"rebookz-admin/internal/apiclient"
	"rebookz-admin/internal/guest"
	"rebookz-admin/internal/metrics"
	"rebookz-admin/internal/utils"

	"github.com/go-chi/chi/v5"
)

type healthResponse struct {
	Status     string           `json:"status"`
	Workspaces int              `json:"workspaces"`
	Metrics    metrics.Snapshot `json:"metrics"`
}

func (c *Console) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		Workspaces: c.workspaces.Len(),
		Metrics:    metrics.Read(),
	})
}

func (c *Console) staticPage(page, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c.render(w, r, nil, page, pageData{Title: title})
	}
}

type guestPage struct {
	Listing *guest.Listing
	Error   string
}

func (c *Console) guestBook(w http.ResponseWriter, r *http.Request) {
	listing, err := c.guest.Book(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		status := http.StatusBadGateway
		if apiclient.IsNotFound(err) || errors.Is(err, guest.ErrBookIDRequired) {
			status = http.StatusNotFound
		}
		c.renderStatus(w, r, nil, status, "guest_book.html", pageData{
			Title: "Book",
			Data:  guestPage{Error: apiclient.Message(err, "Failed to load book details")},
		})
		return
	}

	c.render(w, r, nil, "guest_book.html", pageData{
		Title: listing.Book.Title,
		Data:  guestPage{Listing: listing},
	})
}

// guestBookJSON serves the same listing to the mobile web share sheet.
func (c *Console) guestBookJSON(w http.ResponseWriter, r *http.Request) {
	listing, err := c.guest.Book(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		status := http.StatusBadGateway
		if apiclient.IsNotFound(err) || errors.Is(err, guest.ErrBookIDRequired) {
			status = http.StatusNotFound
		}
		utils.WriteJSONError(w, apiclient.Message(err, "Failed to load book details"), status)
		return
	}
	utils.WriteJSON(w, http.StatusOK, listing)
}
