package console

import (
	"net/http"
	"sort"

	"rebookz-admin/internal/admin"
	"rebookz-admin/internal/listing"
	"rebookz-admin/internal/session"

	"github.com/go-chi/chi/v5"
)

var adminsResource = resource[admin.Admin]{
	slug:     "admins",
	title:    "admins",
	singular: "admin",
	id:       func(a admin.Admin) string { return a.ID },
	source:   func(s services) listing.Source[admin.Admin] { return s.admin },
	slot:     func(ws *Workspace) **listing.View[admin.Admin] { return &ws.admins },
}

const settingsPath = "/admin/settings"

type dashboardPage struct {
	Stats *admin.Stats
}

func (c *Console) dashboard(w http.ResponseWriter, r *http.Request) {
	ws := c.workspace(r)

	stats, err := ws.svc.admin.Stats(r.Context())
	if err != nil {
		c.fail(r, ws, "Failed to fetch dashboard stats", err)
	}

	c.render(w, r, ws, "dashboard.html", pageData{
		Title:  "Dashboard",
		Active: "dashboard",
		Path:   "/admin",
		Data:   dashboardPage{Stats: stats},
	})
}

func (c *Console) adminRoutes(r chi.Router) {
	listPage[admin.Admin]{
		c:        c,
		res:      adminsResource,
		template: "admins.html",
	}.routes(r)

	r.Post("/", c.createAdmin)
}

func (c *Console) createAdmin(w http.ResponseWriter, r *http.Request) {
	ws := c.workspace(r)
	defer c.redirectCurrent(w, r, adminsResource.path())

	input := admin.NewAdmin{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	created, err := ws.svc.admin.CreateAdmin(r.Context(), input)
	if err != nil {
		c.fail(r, ws, "Error creating admin", err)
		return
	}

	if v, err := adminsResource.view(ws); err == nil {
		v.Append(*created)
	}
	c.succeed(ws, "Admin created successfully")
}

type settingsFlag struct {
	Key     string
	Enabled bool
}

type settingsPage struct {
	Flags      []settingsFlag
	SuperAdmin bool
}

func (c *Console) settingsRoutes(r chi.Router) {
	r.Get("/", c.settings)
	r.Post("/toggle", c.toggleSetting)
	r.Post("/password", c.resetPassword)
}

func (c *Console) settings(w http.ResponseWriter, r *http.Request) {
	ws := c.workspace(r)
	sess, _ := session.FromContext(r.Context())

	cfg, err := ws.svc.admin.Config(r.Context())
	if err != nil {
		c.fail(r, ws, "Failed to fetch settings", err)
	}

	c.render(w, r, ws, "settings.html", pageData{
		Title:  "Settings",
		Active: "settings",
		Path:   settingsPath,
		Data: settingsPage{
			Flags:      flags(cfg),
			SuperAdmin: ws.svc.admin.IsSuperAdmin(sess.User.Email),
		},
	})
}

// flags lists the boolean settings of cfg, with showDummyLogin always
// present, in key order.
func flags(cfg admin.RemoteConfig) []settingsFlag {
	var keys []string
	for key, v := range cfg {
		if _, ok := v.(bool); ok && key != admin.FlagShowDummyLogin {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	out := []settingsFlag{{Key: admin.FlagShowDummyLogin, Enabled: cfg.Flag(admin.FlagShowDummyLogin)}}
	for _, key := range keys {
		out = append(out, settingsFlag{Key: key, Enabled: cfg.Flag(key)})
	}
	return out
}

func (c *Console) toggleSetting(w http.ResponseWriter, r *http.Request) {
	ws := c.workspace(r)
	sess, _ := session.FromContext(r.Context())
	defer c.redirectCurrent(w, r, settingsPath)

	if _, err := ws.svc.admin.ToggleFlag(r.Context(), sess.User.Email, r.FormValue("key")); err != nil {
		c.fail(r, ws, "Failed to update setting", err)
	}
}

func (c *Console) resetPassword(w http.ResponseWriter, r *http.Request) {
	ws := c.workspace(r)
	defer c.redirectCurrent(w, r, settingsPath)

	if err := ws.svc.admin.ResetPassword(r.Context(), r.FormValue("newPassword"), r.FormValue("confirmPassword")); err != nil {
		c.fail(r, ws, "Error resetting password", err)
		return
	}
	c.succeed(ws, "Password reset successfully")
}
