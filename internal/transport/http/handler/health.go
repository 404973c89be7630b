package handler

import "net/http"

// HealthHandler handles the unauthenticated health and root endpoints.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

func (h *HealthHandler) Check(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthEnvelope{
		MessageEnvelope: MessageEnvelope{
			ReturnCode: http.StatusOK,
			Response:   "VerificationAPI is running",
		},
		Status: "healthy",
	})
}

// Index lists the available endpoints.
func (h *HealthHandler) Index(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, EndpointsEnvelope{
		MessageEnvelope: MessageEnvelope{
			ReturnCode: http.StatusOK,
			Response:   "VerificationAPI",
		},
		Endpoints: []string{
			"POST /api/verification",
			"GET /api/verification/{username}",
			"DELETE /api/verification/{username}",
			"GET /api/health",
		},
	})
}
