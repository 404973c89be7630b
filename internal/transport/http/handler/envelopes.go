package handler

import (
	"encoding/json"
	"net/http"
)

// MessageEnvelope is the generic response wrapper. returnCode mirrors the
// HTTP status; success envelopes embed it and add the echoed record fields.
type MessageEnvelope struct {
	ReturnCode int    `json:"returnCode"`
	Response   string `json:"response"`
}

// VerificationEnvelope echoes a full verification record.
type VerificationEnvelope struct {
	MessageEnvelope
	RobloxUsername  string `json:"robloxUsername"`
	RobloxID        string `json:"robloxID"`
	DiscordUsername string `json:"discordUsername"`
	DiscordID       string `json:"discordID"`
	TimeToVerify    string `json:"timeToVerify"`
	JoinedGame      bool   `json:"joinedGame"`
}

// JoinedGameEnvelope echoes a joinedGame-only update.
type JoinedGameEnvelope struct {
	MessageEnvelope
	RobloxUsername string `json:"robloxUsername"`
	JoinedGame     bool   `json:"joinedGame"`
}

// HealthEnvelope wraps the health-check response.
type HealthEnvelope struct {
	MessageEnvelope
	Status string `json:"status"`
}

// EndpointsEnvelope wraps the root endpoint listing.
type EndpointsEnvelope struct {
	MessageEnvelope
	Endpoints []string `json:"endpoints"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{ReturnCode: status, Response: msg})
}
