package console

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"rebookz-admin/internal/apiclient"
	"rebookz-admin/internal/category"
	"rebookz-admin/internal/logger"
	"rebookz-admin/internal/session"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// pageData is the root value of every template.
type pageData struct {
	Title  string
	Active string
	Path   string
	User   *session.User
	Flash  *Flash
	List   any
	Data   any
}

func templateFuncs(serverURL string) template.FuncMap {
	return template.FuncMap{
		"asset": func(p string) string { return apiclient.ResolveAsset(serverURL, p) },
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("Jan 2, 2006")
		},
		"price": func(p float64) string {
			if p <= 0 {
				return "FREE"
			}
			return "SAR " + strconv.FormatFloat(p, 'f', -1, 64)
		},
		"label": func(s string) string { return strings.ReplaceAll(s, "_", " ") },
		"deref": func(p *int) int {
			if p == nil {
				return 0
			}
			return *p
		},
		"icons": func() []string { return category.Icons },
		// App deep links use a custom scheme html/template would otherwise
		// rewrite to #ZgotmplZ.
		"deeplink": func(s string) template.URL { return template.URL(s) },
	}
}

// parseTemplates builds one template set per page, each combined with the
// shared layout.
func parseTemplates(serverURL string) (map[string]*template.Template, error) {
	pages, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	funcs := templateFuncs(serverURL)
	out := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		if page == layoutFile {
			continue
		}
		t, err := template.New(path.Base(page)).Funcs(funcs).ParseFS(templateFS, layoutFile, page)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		out[path.Base(page)] = t
	}
	return out, nil
}

// render writes page with the layout. For signed-in requests it fills in the
// admin and consumes the pending alert of ws.
func (c *Console) render(w http.ResponseWriter, r *http.Request, ws *Workspace, page string, data pageData) {
	c.renderStatus(w, r, ws, http.StatusOK, page, data)
}

func (c *Console) renderStatus(w http.ResponseWriter, r *http.Request, ws *Workspace, status int, page string, data pageData) {
	if sess, ok := session.FromContext(r.Context()); ok {
		u := sess.User
		data.User = &u
	}
	if ws != nil && data.Flash == nil {
		data.Flash = ws.takeFlash()
	}

	t, ok := c.templates[page]
	if !ok {
		c.serverError(w, r, fmt.Errorf("unknown template %q", page))
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.FromCtx(r.Context()).Error("failed to render page",
			zap.String("layer", "handler"),
			zap.String("template", page),
			zap.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
