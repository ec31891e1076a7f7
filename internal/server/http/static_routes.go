package httpserver

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const viewCookieName = "portalchess_view"

// RegisterStaticRoutes mounts:
// - /web/* -> webDir
// - /      -> /web/ (or /web/mobile/ when webDir has one and the client looks like a phone)
func RegisterStaticRoutes(mux *http.ServeMux, webDir string) {
	if mux == nil {
		return
	}
	if webDir == "" {
		webDir = "."
	}
	hasMobile := dirExists(filepath.Join(webDir, "mobile"))

	mux.Handle("/web/", http.StripPrefix("/web/", http.FileServer(http.Dir(webDir))))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/", "/web":
			target := "/web/"
			if hasMobile && pickView(w, r) == "mobile" {
				target = "/web/mobile/"
			}
			w.Header().Set("Vary", "User-Agent, Cookie")
			http.Redirect(w, r, target, http.StatusFound)
		default:
			http.NotFound(w, r)
		}
	})
}

func dirExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && st.IsDir()
}

// pickView ?view= 优先，其次 cookie，最后看 User-Agent
func pickView(w http.ResponseWriter, r *http.Request) string {
	if v := normalizeView(r.URL.Query().Get("view")); v != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     viewCookieName,
			Value:    v,
			Path:     "/",
			MaxAge:   30 * 24 * 60 * 60,
			SameSite: http.SameSiteLaxMode,
		})
		return v
	}
	if c, err := r.Cookie(viewCookieName); err == nil {
		if v := normalizeView(c.Value); v != "" {
			return v
		}
	}
	ua := strings.ToLower(r.UserAgent())
	for _, n := range []string{"android", "iphone", "ipad", "mobile"} {
		if strings.Contains(ua, n) {
			return "mobile"
		}
	}
	return "web"
}

func normalizeView(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "web", "desktop":
		return "web"
	case "mobile", "m", "phone":
		return "mobile"
	}
	return ""
}
