package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"vattours/server/internal/common"
	"vattours/server/internal/models/dtos"
)

// ListAirports handles GET /api/v1/airports
func (h *Handlers) ListAirports() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		airports, err := h.deps.Services.Airport.ListAirports(r.Context())
		if err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Airports fetched successfully", airports)
	}
}

// GetAirport handles GET /api/v1/airports/{code}
func (h *Handlers) GetAirport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		airport, err := h.deps.Services.Airport.GetAirport(r.Context(), chi.URLParam(r, "code"))
		if err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Airport fetched successfully", airport)
	}
}

// CreateAirport handles POST /api/v1/admin/airports
func (h *Handlers) CreateAirport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AirportUpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		airport, err := h.deps.Services.Airport.CreateAirport(r.Context(), &req)
		if err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Airport created successfully", airport, http.StatusCreated)
	}
}

// UpdateAirport handles PUT /api/v1/admin/airports/{code}
func (h *Handlers) UpdateAirport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AirportUpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		airport, err := h.deps.Services.Airport.UpdateAirport(r.Context(), chi.URLParam(r, "code"), &req)
		if err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Airport updated successfully", airport)
	}
}

// DeleteAirport handles DELETE /api/v1/admin/airports/{code}
// Airports still referenced by tour legs cannot be removed.
func (h *Handlers) DeleteAirport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Airport.DeleteAirport(r.Context(), chi.URLParam(r, "code")); err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Airport deleted successfully", nil)
	}
}
