package console

import (
	"context"
	"sync"
	"time"

	"rebookz-admin/internal/admin"
	"rebookz-admin/internal/apiclient"
	"rebookz-admin/internal/book"
	"rebookz-admin/internal/category"
	"rebookz-admin/internal/feedback"
	"rebookz-admin/internal/listing"
	"rebookz-admin/internal/request"
	"rebookz-admin/internal/session"
	"rebookz-admin/internal/support"
	"rebookz-admin/internal/user"
)

// services are the marketplace services scoped to one admin's token.
type services struct {
	books      book.Service
	categories category.Service
	users      user.Service
	requests   request.Service
	support    support.Service
	feedback   feedback.Service
	admin      admin.Service
}

func newServices(api *apiclient.Client, superAdmin string) services {
	books := book.NewService(book.NewRepository(api))
	return services{
		books:      books,
		categories: category.NewService(category.NewRepository(api)),
		users:      user.NewService(user.NewRepository(api)),
		requests:   request.NewService(request.NewRepository(api), books),
		support:    support.NewService(support.NewRepository(api)),
		feedback:   feedback.NewService(feedback.NewRepository(api)),
		admin:      admin.NewService(admin.NewRepository(api), superAdmin),
	}
}

const (
	flashError   = "error"
	flashSuccess = "success"
)

// Flash is the blocking alert shown once on the next page render.
type Flash struct {
	Kind    string
	Message string
}

// Workspace is everything the console keeps for one signed-in admin: one
// list view per page, the category browser and the pending alert. Views are
// replaced on every fresh visit of their page.
type Workspace struct {
	svc       services
	limit     int
	mode      listing.KeywordMode
	expiresAt time.Time

	mu         sync.Mutex
	books      *listing.View[book.Book]
	users      *listing.View[user.User]
	requests   *listing.View[request.Request]
	tickets    *listing.View[support.Ticket]
	feedback   *listing.View[feedback.Feedback]
	admins     *listing.View[admin.Admin]
	categories *category.Browser
	catalog    []category.Category
	flash      *Flash
}

func (ws *Workspace) setFlash(kind, msg string) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.flash = &Flash{Kind: kind, Message: msg}
}

// takeFlash returns the pending alert and clears it.
func (ws *Workspace) takeFlash() *Flash {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	f := ws.flash
	ws.flash = nil
	return f
}

// browser returns the category browser, creating an unloaded one when fresh
// is set or none exists yet.
func (ws *Workspace) browser(fresh bool) *category.Browser {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if fresh || ws.categories == nil {
		ws.categories = category.NewBrowser(ws.svc.categories)
	}
	return ws.categories
}

// loadCatalog refreshes the category list used by book forms and request
// drafts.
func (ws *Workspace) loadCatalog(ctx context.Context) ([]category.Category, error) {
	all, err := ws.svc.categories.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	ws.mu.Lock()
	ws.catalog = all
	ws.mu.Unlock()
	return all, nil
}

func (ws *Workspace) categoryList() []category.Category {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return append([]category.Category(nil), ws.catalog...)
}

// Workspaces maps session ids to workspaces.
type Workspaces struct {
	api        *apiclient.Client
	superAdmin string
	limit      int
	mode       listing.KeywordMode
	now        func() time.Time

	mu    sync.Mutex
	items map[string]*Workspace
}

func NewWorkspaces(api *apiclient.Client, superAdmin string, limit int, mode listing.KeywordMode) *Workspaces {
	return &Workspaces{
		api:        api,
		superAdmin: superAdmin,
		limit:      limit,
		mode:       mode,
		now:        time.Now,
		items:      make(map[string]*Workspace),
	}
}

// Get returns the workspace of sess, creating it with services bound to the
// session's token.
func (w *Workspaces) Get(sess *session.Session) *Workspace {
	w.mu.Lock()
	defer w.mu.Unlock()

	if ws, ok := w.items[sess.ID]; ok {
		return ws
	}
	ws := &Workspace{
		svc:       newServices(sess.Client(w.api), w.superAdmin),
		limit:     w.limit,
		mode:      w.mode,
		expiresAt: sess.ExpiresAt,
	}
	w.items[sess.ID] = ws
	return ws
}

func (w *Workspaces) Drop(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.items, id)
}

func (w *Workspaces) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}

// Sweep drops the workspaces of expired sessions.
func (w *Workspaces) Sweep() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	removed := 0
	for id, ws := range w.items {
		if !ws.expiresAt.IsZero() && !now.Before(ws.expiresAt) {
			delete(w.items, id)
			removed++
		}
	}
	return removed
}
