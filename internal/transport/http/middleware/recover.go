package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
)

// Recover converts handler panics into a 500 envelope carrying the panic
// message, instead of tearing down the connection.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Printf("panic: %v\n%s", rec, debug.Stack())
				writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
