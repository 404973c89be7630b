package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/verification-api/internal/application/verification"
	"github.com/verification-api/internal/domain"
	"github.com/verification-api/internal/pkg/validate"
)

const msgNotFound = "Unable to fetch user details"

// VerificationHandler handles the verification CRUD endpoints.
type VerificationHandler struct {
	svc verification.Service
}

func NewVerificationHandler(svc verification.Service) *VerificationHandler {
	return &VerificationHandler{svc: svc}
}

// Post dispatches on body shape: a body holding exactly robloxUsername and
// joinedGame updates the flag on an existing record; anything else is a full
// create-or-update of all fields.
func (h *VerificationHandler) Post(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(body, &shape); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if isJoinedGameUpdate(shape) {
		h.updateJoinedGame(w, r, body)
		return
	}
	h.upsert(w, r, body)
}

func (h *VerificationHandler) upsert(w http.ResponseWriter, r *http.Request, body []byte) {
	var req domain.UpsertVerificationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		if field := validate.FirstMissing(err); field != "" {
			writeError(w, http.StatusBadRequest, "Missing required field: "+field)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.svc.Upsert(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, VerificationEnvelope{
		MessageEnvelope: MessageEnvelope{
			ReturnCode: http.StatusCreated,
			Response:   "Verification data created/updated successfully",
		},
		RobloxUsername:  record.RobloxUsername,
		RobloxID:        record.RobloxID,
		DiscordUsername: record.DiscordUsername,
		DiscordID:       record.DiscordID,
		TimeToVerify:    record.TimeToVerify,
		JoinedGame:      record.JoinedGame,
	})
}

func (h *VerificationHandler) updateJoinedGame(w http.ResponseWriter, r *http.Request, body []byte) {
	var req domain.UpdateJoinedGameRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		if field := validate.FirstMissing(err); field != "" {
			writeError(w, http.StatusBadRequest, "Missing required field: "+field)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.UpdateJoinedGame(r.Context(), req.RobloxUsername, req.JoinedGame); err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, JoinedGameEnvelope{
		MessageEnvelope: MessageEnvelope{
			ReturnCode: http.StatusOK,
			Response:   "joinedGame updated successfully",
		},
		RobloxUsername: req.RobloxUsername,
		JoinedGame:     req.JoinedGame,
	})
}

func (h *VerificationHandler) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.svc.Fetch(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, VerificationEnvelope{
		MessageEnvelope: MessageEnvelope{
			ReturnCode: http.StatusOK,
			Response:   "Success",
		},
		RobloxUsername:  record.RobloxUsername,
		RobloxID:        record.RobloxID,
		DiscordUsername: record.DiscordUsername,
		DiscordID:       record.DiscordID,
		TimeToVerify:    record.TimeToVerify,
		JoinedGame:      record.JoinedGame,
	})
}

func (h *VerificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if err := h.svc.Delete(r.Context(), username); err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{
		ReturnCode: http.StatusOK,
		Response:   fmt.Sprintf("Verification data for %s deleted successfully", username),
	})
}

// writeServiceError maps store outcomes to HTTP. A miss and an expired record
// get the same 404 message on purpose; callers cannot tell them apart.
func (h *VerificationHandler) writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}
	writeError(w, http.StatusInternalServerError, "Internal server error: "+err.Error())
}

// isJoinedGameUpdate reports whether the body holds exactly the two
// partial-update keys. The shape check is deliberate wire compatibility with
// existing clients.
func isJoinedGameUpdate(shape map[string]json.RawMessage) bool {
	if len(shape) != 2 {
		return false
	}
	_, hasUser := shape["robloxUsername"]
	_, hasJoined := shape["joinedGame"]
	return hasUser && hasJoined
}
