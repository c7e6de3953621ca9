package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"vattours/server/internal/auth"
	"vattours/server/internal/common"
	"vattours/server/internal/constants"
	"vattours/server/internal/models/dtos"
	gormModels "vattours/server/internal/models/gorm"
)

// SubmitPirep handles POST /api/v1/tours/{tourID}/pireps
// The target leg is resolved server-side, never chosen by the client.
func (h *Handlers) SubmitPirep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		tourID, err := tourIDParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid tour id", http.StatusBadRequest)
			return
		}

		var req dtos.PirepSubmitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		pirep, err := h.deps.Services.Submit.SubmitPirep(r.Context(), claims.UserID(), tourID, &req)
		if err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "PIREP submitted successfully", toPirepResponse(pirep), http.StatusCreated)
	}
}

// ListMyPireps handles GET /api/v1/pireps?status=
func (h *Handlers) ListMyPireps() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing claims", http.StatusUnauthorized)
			return
		}

		status, err := statusFilter(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid status filter", http.StatusBadRequest)
			return
		}

		pireps, err := h.deps.Repo.Pirep.ListByUser(r.Context(), claims.UserID(), status)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch PIREPs", http.StatusInternalServerError)
			return
		}

		out := make([]dtos.PirepResponse, 0, len(pireps))
		for i := range pireps {
			out = append(out, toPirepResponse(&pireps[i]))
		}

		common.RespondSuccess(w, initTime, "PIREPs fetched successfully", out)
	}
}

// ReviewQueue handles GET /api/v1/admin/pireps?status=
func (h *Handlers) ReviewQueue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		status, err := statusFilter(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid status filter", http.StatusBadRequest)
			return
		}

		entries, err := h.deps.Repo.PirepQuery.ListReviewQueue(r.Context(), status)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch review queue", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Review queue fetched successfully", entries)
	}
}

// ReviewPirep handles POST /api/v1/admin/pireps/{pirepID}/review
func (h *Handlers) ReviewPirep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())

		pirepID, err := strconv.ParseInt(chi.URLParam(r, "pirepID"), 10, 64)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid pirep id", http.StatusBadRequest)
			return
		}

		var req dtos.PirepReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		pirep, err := h.deps.Services.Review.ReviewPirep(r.Context(), claims, pirepID, &req)
		if err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "PIREP reviewed successfully", toPirepResponse(pirep))
	}
}

// statusFilter parses the optional ?status= query parameter
func statusFilter(r *http.Request) (*constants.PirepStatus, error) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return nil, nil
	}
	status, err := constants.ParsePirepStatus(raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func toPirepResponse(p *gormModels.Pirep) dtos.PirepResponse {
	return dtos.PirepResponse{
		ID:          p.ID,
		LegID:       p.LegID,
		Callsign:    p.Callsign,
		Comment:     p.Comment,
		Status:      string(p.Status),
		SubmittedAt: p.SubmittedAt,
		ReviewedAt:  p.ReviewedAt,
		ReviewNote:  p.ReviewNote,
	}
}
