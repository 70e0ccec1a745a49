package middleware

import (
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// TrustedRealIP applies X-Real-IP / X-Forwarded-For only to requests whose
// socket peer is one of proxies. Anyone else keeps their own RemoteAddr, so
// per-IP limits cannot be dodged by sending a forged header.
func TrustedRealIP(proxies []string) func(http.Handler) http.Handler {
	trusted := make(map[string]bool, len(proxies))
	for _, p := range proxies {
		if p = strings.TrimSpace(p); p != "" {
			trusted[p] = true
		}
	}

	return func(next http.Handler) http.Handler {
		forwarded := chimw.RealIP(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if trusted[clientIP(r)] {
				forwarded.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
