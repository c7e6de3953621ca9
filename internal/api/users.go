package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"vattours/server/internal/auth"
	"vattours/server/internal/common"
)

// GetMyProfile handles GET /api/v1/users/me
func (h *Handlers) GetMyProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		profile, err := h.deps.Services.User.GetProfile(r.Context(), claims.UserID())
		if err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Profile fetched successfully", profile)
	}
}

// GetMyTourProgress handles GET /api/v1/users/me/progress
// Aggregated standing across all tours the caller has flown in.
func (h *Handlers) GetMyTourProgress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		rows, err := h.deps.Repo.PirepQuery.TourProgress(r.Context(), claims.UserID())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch tour progress", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Tour progress fetched successfully", rows)
	}
}

// SetUserRole handles PUT /api/v1/admin/users/{userID}/role
func (h *Handlers) SetUserRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		userID := chi.URLParam(r, "userID")

		var req struct {
			Role string `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := h.deps.Services.User.SetRole(r.Context(), userID, req.Role); err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "User role updated", nil)
	}
}
