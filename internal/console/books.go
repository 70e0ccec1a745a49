package console

import (
	"net/http"

	"rebookz-admin/internal/apiclient"
	"rebookz-admin/internal/book"
	"rebookz-admin/internal/category"
	"rebookz-admin/internal/listing"
	"rebookz-admin/internal/utils"

	"github.com/go-chi/chi/v5"
)

var booksResource = resource[book.Book]{
	slug:     "books",
	title:    "books",
	singular: "book",
	fields:   book.FilterFields,
	id:       func(b book.Book) string { return b.ID },
	source:   func(s services) listing.Source[book.Book] { return s.books },
	slot:     func(ws *Workspace) **listing.View[book.Book] { return &ws.books },
}

type booksPage struct {
	Categories []category.Category
	Types      []string
	Conditions []string
	Statuses   []string
}

func (c *Console) bookRoutes(r chi.Router) {
	listPage[book.Book]{
		c:         c,
		res:       booksResource,
		template:  "books.html",
		deletable: true,
		onMount: func(r *http.Request, ws *Workspace) error {
			_, err := ws.loadCatalog(r.Context())
			return err
		},
		extra: func(r *http.Request, ws *Workspace, _ listing.State[book.Book]) any {
			return booksPage{
				Categories: category.TopLevel(ws.categoryList()),
				Types:      book.Types,
				Conditions: book.Conditions,
				Statuses:   book.Statuses,
			}
		},
	}.routes(r)

	r.Post("/", c.createBook)
	r.Post("/{id}/mark-sold", c.markBookSold)
	r.Post("/{id}/update", c.updateBook)
}

func (c *Console) createBook(w http.ResponseWriter, r *http.Request) {
	ws := c.workspace(r)
	defer c.redirectCurrent(w, r, booksResource.path())

	image, closeImage, err := parseUpload(r, "image")
	defer closeImage()
	if err != nil {
		c.fail(r, ws, "Failed to add book", err)
		return
	}

	var input book.NewBook
	if err := bookForm(r, &input); err != nil {
		c.fail(r, ws, "Failed to add book", err)
		return
	}

	if _, err := ws.svc.books.Create(r.Context(), input, image); err != nil {
		c.fail(r, ws, "Failed to add book", err)
		return
	}
	c.succeed(ws, "Book added successfully")

	v, err := booksResource.view(ws)
	if err == nil {
		if err := v.Reload(r.Context()); err != nil {
			c.fail(r, ws, "Failed to fetch books", err)
		}
	}
}

func (c *Console) markBookSold(w http.ResponseWriter, r *http.Request) {
	ws := c.workspace(r)
	id := chi.URLParam(r, "id")
	defer c.redirectCurrent(w, r, booksResource.path())

	if err := ws.svc.books.MarkSold(r.Context(), id); err != nil {
		c.fail(r, ws, "Failed to update book", err)
		return
	}

	if v, err := booksResource.view(ws); err == nil {
		_ = v.Patch(id, func(b *book.Book) { b.Status = book.StatusSold })
	}
}

func (c *Console) updateBook(w http.ResponseWriter, r *http.Request) {
	ws := c.workspace(r)
	id := chi.URLParam(r, "id")
	defer c.redirectCurrent(w, r, booksResource.path())

	if err := r.ParseForm(); err != nil {
		c.fail(r, ws, "Failed to update book", errInvalidForm)
		return
	}

	price, err := utils.FormFloat(r.PostForm, "price")
	if err != nil {
		c.fail(r, ws, "Failed to update book",
			apiclient.Validation(map[string]string{"price": "Price must be a number"}))
		return
	}

	input := book.UpdateBook{
		Title:       utils.FormString(r.PostForm, "title"),
		Description: utils.FormString(r.PostForm, "description"),
		Price:       price,
		Type:        utils.FormString(r.PostForm, "type"),
		Condition:   utils.FormString(r.PostForm, "condition"),
		Status:      utils.FormString(r.PostForm, "status"),
	}

	if _, err := ws.svc.books.Update(r.Context(), id, input); err != nil {
		c.fail(r, ws, "Failed to update book", err)
		return
	}

	if v, err := booksResource.view(ws); err == nil {
		_ = v.Patch(id, input.Apply)
	}
}
