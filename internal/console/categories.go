package console

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"rebookz-admin/internal/category"

	"github.com/go-chi/chi/v5"
)

const categoriesPath = "/admin/categories"

func (c *Console) categoryRoutes(r chi.Router) {
	r.Get("/", c.categories)
	r.Post("/", c.createCategory)
	r.Post("/enter", c.enterCategory)
	r.Post("/jump", c.jumpCategory)
	r.Post("/root", c.rootCategory)
	r.Post("/{id}/delete", c.deleteCategory)
}

// categories fetches the whole tree on a fresh visit; ?view=current
// re-renders the browser as navigated.
func (c *Console) categories(w http.ResponseWriter, r *http.Request) {
	ws := c.workspace(r)

	fresh := r.URL.Query().Get("view") != "current"
	b := ws.browser(fresh)
	if fresh {
		if err := b.Load(r.Context()); err != nil {
			c.fail(r, ws, "Failed to fetch categories", err)
		}
	}

	c.render(w, r, ws, "categories.html", pageData{
		Title:  "Categories",
		Active: "categories",
		Path:   categoriesPath,
		Data:   b.Snapshot(),
	})
}

func (c *Console) enterCategory(w http.ResponseWriter, r *http.Request) {
	ws := c.workspace(r)
	defer c.redirectCurrent(w, r, categoriesPath)

	num, err := strconv.Atoi(r.FormValue("num"))
	if err != nil {
		c.fail(r, ws, "Failed to open category", category.ErrCategoryID)
		return
	}
	// A category without children is a leaf; entering it is a no-op.
	if err := ws.browser(false).Enter(num); err != nil && !errors.Is(err, category.ErrNoChildren) {
		c.fail(r, ws, "Failed to open category", err)
	}
}

func (c *Console) jumpCategory(w http.ResponseWriter, r *http.Request) {
	ws := c.workspace(r)
	defer c.redirectCurrent(w, r, categoriesPath)

	i, err := strconv.Atoi(r.FormValue("index"))
	if err != nil {
		c.fail(r, ws, "Failed to open category", category.ErrCrumbOutOfRange)
		return
	}
	if err := ws.browser(false).Jump(i); err != nil {
		c.fail(r, ws, "Failed to open category", err)
	}
}

func (c *Console) rootCategory(w http.ResponseWriter, r *http.Request) {
	c.workspace(r).browser(false).Root()
	c.redirectCurrent(w, r, categoriesPath)
}

func (c *Console) createCategory(w http.ResponseWriter, r *http.Request) {
	ws := c.workspace(r)
	defer c.redirectCurrent(w, r, categoriesPath)

	if err := r.ParseForm(); err != nil {
		c.fail(r, ws, "Failed to create category.", errInvalidForm)
		return
	}

	input := category.NewCategory{
		Name:        r.PostForm.Get("name"),
		IconName:    r.PostForm.Get("icon_name"),
		Description: strings.TrimSpace(r.PostForm.Get("description")),
		HasChild:    r.PostForm.Get("has_child") != "",
	}
	if _, err := ws.browser(false).Create(r.Context(), input); err != nil {
		c.fail(r, ws, "Failed to create category.", err)
		return
	}
	c.succeed(ws, "Category created successfully")
}

func (c *Console) deleteCategory(w http.ResponseWriter, r *http.Request) {
	ws := c.workspace(r)
	defer c.redirectCurrent(w, r, categoriesPath)

	if err := ws.browser(false).Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		c.fail(r, ws, "Failed to delete category", err)
	}
}
