package console

import (
	"net/http"

	"rebookz-admin/internal/feedback"
	"rebookz-admin/internal/listing"

	"github.com/go-chi/chi/v5"
)

var feedbackResource = resource[feedback.Feedback]{
	slug:     "feedback",
	title:    "feedback",
	singular: "feedback",
	fields:   feedback.FilterFields,
	id:       func(f feedback.Feedback) string { return f.ID },
	source:   func(s services) listing.Source[feedback.Feedback] { return s.feedback },
	slot:     func(ws *Workspace) **listing.View[feedback.Feedback] { return &ws.feedback },
}

func (c *Console) feedbackRoutes(r chi.Router) {
	listPage[feedback.Feedback]{
		c:         c,
		res:       feedbackResource,
		template:  "feedback.html",
		deletable: true,
		extra: func(_ *http.Request, _ *Workspace, st listing.State[feedback.Feedback]) any {
			return feedback.AverageRating(st.Items)
		},
	}.routes(r)
}
