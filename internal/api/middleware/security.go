package middleware

import (
	"net/http"
	"strings"
)

const (
	apiCSP     = "default-src 'none'; frame-ancestors 'none'"
	swaggerCSP = "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; frame-ancestors 'none'"
	uiCSP      = "default-src 'self'; frame-ancestors 'none'"
)

// SecurityHeaders adds common security headers to responses. HSTS is only
// sent when hsts is true so that plain-HTTP development setups keep working.
func SecurityHeaders(hsts bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			switch {
			case strings.HasPrefix(r.URL.Path, "/swagger/"):
				h.Set("Content-Security-Policy", swaggerCSP)
			case strings.HasPrefix(r.URL.Path, "/static/"):
				h.Set("Content-Security-Policy", uiCSP)
			default:
				h.Set("Content-Security-Policy", apiCSP)
			}
			h.Set("Referrer-Policy", "no-referrer")

			if hsts {
				// 1 year
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
