package console

import (
	"errors"
	"net/http"

	"rebookz-admin/internal/apiclient"
	"rebookz-admin/internal/logger"
	"rebookz-admin/internal/metrics"
	"rebookz-admin/internal/session"

	"go.uber.org/zap"
)

type loginPage struct {
	Email string
	Error string
}

func (c *Console) loginForm(w http.ResponseWriter, r *http.Request) {
	if value := session.ExtractCookie(r, c.opts.CookieName); value != "" {
		if _, err := c.sessions.Resolve(r.Context(), value); err == nil {
			http.Redirect(w, r, "/admin", http.StatusFound)
			return
		}
	}
	c.render(w, r, nil, "login.html", pageData{Title: "Admin Login", Data: loginPage{}})
}

func (c *Console) login(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")

	sess, cookie, err := c.sessions.Login(r.Context(), email, r.FormValue("password"))
	if err != nil {
		metrics.LoginFailures.Inc()

		status := http.StatusUnauthorized
		msg := apiclient.Message(err, "Login failed. Please check your credentials.")
		var apiErr *apiclient.Error
		switch {
		case errors.Is(err, session.ErrNotAdmin):
			status = http.StatusForbidden
			msg = "Access denied. Admin privileges required."
		case errors.As(err, &apiErr) && apiErr.Kind == apiclient.KindValidation:
			status = http.StatusBadRequest
		}

		c.renderStatus(w, r, nil, status, "login.html", pageData{
			Title: "Admin Login",
			Data:  loginPage{Email: email, Error: msg},
		})
		return
	}

	metrics.Logins.Inc()
	http.SetCookie(w, c.cookie(cookie, sess.ExpiresAt))
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (c *Console) logout(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	if err := c.sessions.Logout(r.Context(), sess.ID); err != nil {
		logger.FromCtx(r.Context()).Error("failed to end session",
			zap.String("layer", "handler"),
			zap.Error(err),
		)
	}
	c.workspaces.Drop(sess.ID)

	http.SetCookie(w, session.ClearCookie(c.opts.CookieName, c.opts.SecureCookie))
	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}
