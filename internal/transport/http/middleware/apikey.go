package middleware

import (
	"crypto/subtle"
	"net/http"
)

// APIKey returns middleware that gates routes behind the shared secret.
// The key is read from the X-API-Key header, falling back to the api_key
// query parameter; mismatch or absence short-circuits with 401 before the
// handler runs.
func APIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplied := r.Header.Get("X-API-Key")
			if supplied == "" {
				supplied = r.URL.Query().Get("api_key")
			}
			if subtle.ConstantTimeCompare([]byte(supplied), []byte(key)) != 1 {
				writeJSONError(w, http.StatusUnauthorized, "Unauthorized: Invalid API Key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
