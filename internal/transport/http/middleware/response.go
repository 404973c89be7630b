package middleware

import (
	"encoding/json"
	"net/http"
)

// envelope mirrors the API-wide response shape: returnCode repeats the HTTP
// status so clients reading only the body see the outcome.
type envelope struct {
	ReturnCode int    `json:"returnCode"`
	Response   string `json:"response"`
}

// writeJSONError writes a JSON-encoded error envelope with the correct Content-Type.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{ReturnCode: status, Response: msg})
}
