package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"vattours/server/internal/auth"
	"vattours/server/internal/common"
	"vattours/server/internal/models/dtos"
)

// tourIDParam parses the {tourID} route parameter
func tourIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "tourID"), 10, 64)
}

// ListTours handles GET /api/v1/tours
func (h *Handlers) ListTours() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		tours, err := h.deps.Services.Tour.ListTours(r.Context())
		if err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Tours fetched successfully", tours)
	}
}

// GetTourDetail handles GET /api/v1/tours/{tourID}
// Legs are annotated with the caller's progress and the next eligible leg.
func (h *Handlers) GetTourDetail() http.HandlerFunc {
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

		detail, err := h.deps.Services.Tour.GetTourDetail(r.Context(), claims.UserID(), tourID)
		if err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Tour fetched successfully", detail)
	}
}

// CreateTour handles POST /api/v1/admin/tours
func (h *Handlers) CreateTour() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.TourUpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		tour, err := h.deps.Services.Tour.CreateTour(r.Context(), &req)
		if err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Tour created successfully", tour, http.StatusCreated)
	}
}

// UpdateTour handles PUT /api/v1/admin/tours/{tourID}
func (h *Handlers) UpdateTour() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		tourID, err := tourIDParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid tour id", http.StatusBadRequest)
			return
		}

		var req dtos.TourUpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		tour, err := h.deps.Services.Tour.UpdateTour(r.Context(), tourID, &req)
		if err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Tour updated successfully", tour)
	}
}

// DeleteTour handles DELETE /api/v1/admin/tours/{tourID}
func (h *Handlers) DeleteTour() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		tourID, err := tourIDParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid tour id", http.StatusBadRequest)
			return
		}

		if err := h.deps.Services.Tour.DeleteTour(r.Context(), tourID); err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Tour deleted successfully", nil)
	}
}

// UploadTourImage handles POST /api/v1/admin/tours/{tourID}/image
// Accepts a multipart upload, stores it, and points the tour at the new URL.
func (h *Handlers) UploadTourImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if h.deps.Services.Images == nil {
			common.RespondError(w, initTime, nil, "Image storage not configured", http.StatusServiceUnavailable)
			return
		}

		tourID, err := tourIDParam(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid tour id", http.StatusBadRequest)
			return
		}

		// 10 MB cap
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			common.RespondError(w, initTime, err, "Invalid multipart body", http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			common.RespondError(w, initTime, err, "Missing image file", http.StatusBadRequest)
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType != "image/png" && contentType != "image/jpeg" && contentType != "image/webp" {
			common.RespondError(w, initTime, nil, "Unsupported image type", http.StatusBadRequest)
			return
		}

		key := "tours/" + strconv.FormatInt(tourID, 10) + "/" + header.Filename
		url, err := h.deps.Services.Images.Put(r.Context(), key, contentType, file)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to store image", http.StatusInternalServerError)
			return
		}

		if err := h.deps.Services.Tour.SetImage(r.Context(), tourID, url); err != nil {
			common.RespondAppError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Tour image updated", map[string]string{"image_url": url})
	}
}
