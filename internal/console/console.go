// Package console is the server-rendered admin application: routing, the
// per-session workspaces and one handler per admin page.
package console

import (
	"html/template"
	"net/http"
	"time"

	"rebookz-admin/internal/apiclient"
	"rebookz-admin/internal/guest"
	"rebookz-admin/internal/listing"
	"rebookz-admin/internal/logger"
	"rebookz-admin/internal/middleware"
	"rebookz-admin/internal/session"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

const loginPath = "/login"

type Options struct {
	ServerURL    string
	CookieName   string
	SecureCookie bool
	PageSize     int
	KeywordMode  listing.KeywordMode
	SuperAdmin   string
	// LoginRate and LoginBurst throttle POST /login per client IP.
	LoginRate  float64
	LoginBurst int

	// TrustedProxies may set the client address through forwarding headers.
	TrustedProxies []string
}

type Console struct {
	api        *apiclient.Client
	sessions   session.Service
	guest      guest.Service
	workspaces *Workspaces
	limiter    *middleware.Limiter
	templates  map[string]*template.Template
	opts       Options
}

func New(api *apiclient.Client, sessions session.Service, guestSvc guest.Service, opts Options) (*Console, error) {
	if opts.CookieName == "" {
		opts.CookieName = "rebookz_session"
	}
	if opts.PageSize <= 0 {
		opts.PageSize = listing.DefaultLimit
	}

	templates, err := parseTemplates(opts.ServerURL)
	if err != nil {
		return nil, err
	}

	return &Console{
		api:        api,
		sessions:   sessions,
		guest:      guestSvc,
		workspaces: NewWorkspaces(api, opts.SuperAdmin, opts.PageSize, opts.KeywordMode),
		limiter:    middleware.NewLimiter(opts.LoginRate, opts.LoginBurst),
		templates:  templates,
		opts:       opts,
	}, nil
}

// Workspaces exposes the session workspaces for periodic sweeping.
func (c *Console) Workspaces() *Workspaces { return c.workspaces }

// Limiter exposes the login limiter so its idle visitors can be swept.
func (c *Console) Limiter() *middleware.Limiter { return c.limiter }

func (c *Console) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.TrustedRealIP(c.opts.TrustedProxies))
	r.Use(logger.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(chimw.Recoverer)

	r.Get("/health", c.health)

	// Public pages
	r.Get("/", c.staticPage("landing.html", "Rebookz"))
	r.Get("/terms", c.staticPage("terms.html", "Terms of Service"))
	r.Get("/privacy", c.staticPage("privacy.html", "Privacy Policy"))
	r.Get("/privacy/ios", c.staticPage("privacy_ios.html", "Privacy Policy (iOS)"))
	r.Get("/privacy/android", c.staticPage("privacy_android.html", "Privacy Policy (Android)"))
	r.Get("/book/{id}", c.guestBook)

	r.Get(loginPath, c.loginForm)
	r.With(c.limiter.Middleware).Post(loginPath, c.login)

	r.Route("/api/public", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", logger.RequestIDHeader},
			MaxAge:         300,
		}))
		r.Get("/books/{id}", c.guestBookJSON)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(c.sessions, c.opts.CookieName, loginPath))

		r.Post("/logout", c.logout)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/", c.dashboard)

			r.Route("/books", c.bookRoutes)
			r.Route("/users", c.userRoutes)
			r.Route("/categories", c.categoryRoutes)
			r.Route("/requests", c.requestRoutes)
			r.Route("/support", c.supportRoutes)
			r.Route("/feedback", c.feedbackRoutes)
			r.Route("/admins", c.adminRoutes)
			r.Route("/settings", c.settingsRoutes)
		})
	})

	return r
}

// workspace returns the signed-in admin's workspace. Only valid behind
// RequireSession.
func (c *Console) workspace(r *http.Request) *Workspace {
	sess, _ := session.FromContext(r.Context())
	return c.workspaces.Get(sess)
}

// fail logs err and queues it as the alert of the next render, showing the
// server or validation message when there is one.
func (c *Console) fail(r *http.Request, ws *Workspace, fallback string, err error) {
	logger.FromCtx(r.Context()).Error(fallback,
		zap.String("layer", "handler"),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	ws.setFlash(flashError, apiclient.Message(err, fallback))
}

func (c *Console) succeed(ws *Workspace, msg string) {
	ws.setFlash(flashSuccess, msg)
}

func (c *Console) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromCtx(r.Context()).Error("console handler failed",
		zap.String("layer", "handler"),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// redirectCurrent finishes a POST by showing path's current state.
func (c *Console) redirectCurrent(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path+"?view=current", http.StatusSeeOther)
}

func (c *Console) cookie(value string, expires time.Time) *http.Cookie {
	return session.NewCookie(c.opts.CookieName, value, expires, c.opts.SecureCookie)
}
