package middleware

import (
	"context"
	"net/http"

	"rebookz-admin/internal/logger"
	"rebookz-admin/internal/session"

	"go.uber.org/zap"
)

// Resolver maps a signed cookie value to a live session.
type Resolver interface {
	Resolve(ctx context.Context, cookie string) (*session.Session, error)
}

// actorSetter is implemented by response writers that record who made the request.
type actorSetter interface {
	SetActor(actor string)
}

const loadingPage = `<!doctype html><html><head><meta charset="utf-8"><meta http-equiv="refresh" content="2"><title>Loading…</title></head>` +
	`<body style="font-family:sans-serif;display:flex;align-items:center;justify-content:center;height:100vh;color:#6b7280">Loading…</body></html>`

// RequireSession lets a request through only with a live admin session.
// Missing, invalid or expired sessions are redirected to loginPath. When the
// session store itself fails the request gets a 503 "Loading…" page that
// retries, since the admin may well be signed in.
func RequireSession(resolver Resolver, cookieName, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			value := session.ExtractCookie(r, cookieName)

			sess, err := resolver.Resolve(r.Context(), value)
			if err != nil {
				if session.IsUnauthenticated(err) {
					http.Redirect(w, r, loginPath, http.StatusFound)
					return
				}

				logger.FromCtx(r.Context()).Error("session store unavailable",
					zap.String("layer", "middleware"),
					zap.Error(err),
				)
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.Header().Set("Retry-After", "2")
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(loadingPage))
				return
			}

			if rec, ok := w.(actorSetter); ok {
				rec.SetActor(sess.User.Email)
			}

			ctx := session.WithSession(r.Context(), sess)
			ctx = logger.WithActor(ctx, sess.User.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
