package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"vattours/server/internal/common"
	"vattours/server/internal/models/dtos"
)

func badgeIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "badgeID"), 10, 64)
}

// ListBadges handles GET /api/v1/badges
func (h *Handlers) ListBadges() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		badges, err := h.deps.Services.Badge.ListBadges(r.Context())
		if err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Badges fetched successfully", badges)
	}
}

// CreateBadge handles POST /api/v1/admin/badges
func (h *Handlers) CreateBadge() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.BadgeUpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		badge, err := h.deps.Services.Badge.CreateBadge(r.Context(), &req)
		if err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Badge created successfully", badge, http.StatusCreated)
	}
}

// UpdateBadge handles PUT /api/v1/admin/badges/{badgeID}
func (h *Handlers) UpdateBadge() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		badgeID, err := badgeIDParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid badge id", http.StatusBadRequest)
			return
		}

		var req dtos.BadgeUpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		badge, err := h.deps.Services.Badge.UpdateBadge(r.Context(), badgeID, &req)
		if err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Badge updated successfully", badge)
	}
}

// DeleteBadge handles DELETE /api/v1/admin/badges/{badgeID}
func (h *Handlers) DeleteBadge() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		badgeID, err := badgeIDParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid badge id", http.StatusBadRequest)
			return
		}

		if err := h.deps.Services.Badge.DeleteBadge(r.Context(), badgeID); err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Badge deleted successfully", nil)
	}
}

// LinkTourBadge handles PUT /api/v1/admin/tours/{tourID}/badges/{badgeID}
func (h *Handlers) LinkTourBadge() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		tourID, err := tourIDParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid tour id", http.StatusBadRequest)
			return
		}

		badgeID, err := badgeIDParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid badge id", http.StatusBadRequest)
			return
		}

		if err := h.deps.Services.Badge.LinkTourBadge(r.Context(), tourID, badgeID); err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Badge linked to tour", nil)
	}
}

// UnlinkTourBadge handles DELETE /api/v1/admin/tours/{tourID}/badges/{badgeID}
func (h *Handlers) UnlinkTourBadge() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		tourID, err := tourIDParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid tour id", http.StatusBadRequest)
			return
		}

		badgeID, err := badgeIDParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid badge id", http.StatusBadRequest)
			return
		}

		if err := h.deps.Services.Badge.UnlinkTourBadge(r.Context(), tourID, badgeID); err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Badge unlinked from tour", nil)
	}
}
