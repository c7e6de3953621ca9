package api

import (
	"encoding/json"
	"net/http"
	"time"

	"vattours/server/internal/common"
	"vattours/server/internal/models/dtos"
)

// CreateSession handles POST /auth/session
// Exchanges a provider-verified profile for a signed session token. The
// user row is created on first sign-in.
func (h *Handlers) CreateSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		user, err := h.deps.Services.User.EnsureUser(r.Context(), &req)
		if err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		token, session, err := h.deps.Services.Session.CreateSession(r.Context(), user.ID, user.Role)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to create session", http.StatusInternalServerError)
			return
		}

		response := dtos.SessionResponse{
			Token:     token,
			ExpiresAt: session.ExpiresAt,
			UserID:    user.ID,
			Role:      user.Role.String(),
		}

		common.RespondSuccess(w, initTime, "Session created successfully", response, http.StatusCreated)
	}
}
