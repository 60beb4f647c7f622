package middleware

import (
	"mime"
	"net/http"

	"github.com/pratik-mahalle/recommendations/internal/pkg/errors"
	"github.com/pratik-mahalle/recommendations/internal/pkg/utils"
)

// RequireContentType rejects requests whose media type differs from
// mediaType. Parameters such as charset are ignored.
func RequireContentType(mediaType string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("Content-Type")
			parsed, _, err := mime.ParseMediaType(got)
			if got == "" || err != nil || parsed != mediaType {
				utils.WriteError(w, errors.UnsupportedMediaType("Content-Type must be "+mediaType).
					WithDetails(map[string]interface{}{"content_type": got}))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
