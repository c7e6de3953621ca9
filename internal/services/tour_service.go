package services

import (
	"context"
	"strconv"
	"time"

	gormlib "gorm.io/gorm"

	"vattours/server/internal/common"
	"vattours/server/internal/constants"
	"vattours/server/internal/db/repositories"
	"vattours/server/internal/logging"
	"vattours/server/internal/models/dtos"
	gormModels "vattours/server/internal/models/gorm"
)

// TourService handles tour CRUD and the read models around it
type TourService struct {
	db          *gormlib.DB
	tourRepo    *repositories.TourRepository
	airportRepo *repositories.AirportRepository
	progress    *TourProgressService
	cache       common.CacheInterface
}

// NewTourService creates a new TourService with dependencies
func NewTourService(
	db *gormlib.DB,
	tourRepo *repositories.TourRepository,
	airportRepo *repositories.AirportRepository,
	progress *TourProgressService,
	cache common.CacheInterface,
) *TourService {
	return &TourService{
		db:          db,
		tourRepo:    tourRepo,
		airportRepo: airportRepo,
		progress:    progress,
		cache:       cache,
	}
}

// ListTours returns tour summaries, cached briefly since the list changes
// only on admin edits
func (s *TourService) ListTours(ctx context.Context) ([]dtos.TourSummary, error) {
	val, err := s.cache.GetOrSet(string(constants.CachePrefixTourList), 5*time.Minute, func() (any, error) {
		tours, err := s.tourRepo.List(ctx)
		if err != nil {
			return nil, err
		}

		summaries := make([]dtos.TourSummary, 0, len(tours))
		for _, t := range tours {
			summaries = append(summaries, dtos.TourSummary{
				ID:          t.ID,
				Title:       t.Title,
				Description: t.Description,
				ImageURL:    t.ImageURL,
				LegCount:    len(t.Legs),
				CreatedAt:   t.CreatedAt.Format(time.RFC3339),
			})
		}
		return summaries, nil
	})
	if err != nil {
		return nil, common.NewInternal(err)
	}

	if summaries, ok := val.([]dtos.TourSummary); ok {
		return summaries, nil
	}
	// Cache round-trips through JSON lose the concrete type; fall back to a
	// direct read rather than re-decode.
	tours, err := s.tourRepo.List(ctx)
	if err != nil {
		return nil, common.NewInternal(err)
	}
	summaries := make([]dtos.TourSummary, 0, len(tours))
	for _, t := range tours {
		summaries = append(summaries, dtos.TourSummary{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			ImageURL:    t.ImageURL,
			LegCount:    len(t.Legs),
			CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		})
	}
	return summaries, nil
}

// GetTourDetail returns the tour with per-leg progress for the caller
func (s *TourService) GetTourDetail(ctx context.Context, userID string, tourID int64) (*dtos.TourDetail, error) {
	tour, err := s.tourRepo.FindByID(ctx, tourID)
	if err != nil {
		return nil, common.NewInternal(err)
	}
	if tour == nil {
		return nil, common.NewNotFound("tour", tourID)
	}

	states, err := s.progress.LegStates(ctx, userID, tourID)
	if err != nil {
		return nil, common.NewInternal(err)
	}

	nextLeg := ResolveNextLegFromStates(tour.Legs, states)

	detail := &dtos.TourDetail{
		ID:          tour.ID,
		Title:       tour.Title,
		Description: tour.Description,
		ImageURL:    tour.ImageURL,
		Legs:        make([]dtos.LegStatus, 0, len(tour.Legs)),
	}

	completed := len(tour.Legs) > 0
	for _, leg := range tour.Legs {
		state := states[leg.ID]
		if state != LegStateApproved {
			completed = false
		}
		detail.Legs = append(detail.Legs, dtos.LegStatus{
			ID:          leg.ID,
			Order:       leg.Order,
			Departure:   leg.DepartureCode,
			Arrival:     leg.ArrivalCode,
			Description: leg.Description,
			State:       string(state),
		})
	}
	detail.Completed = completed

	if nextLeg != nil {
		detail.NextLegID = &nextLeg.ID
	}

	return detail, nil
}

// ResolveNextLegFromStates mirrors ResolveNextLeg over precomputed states,
// saving a second round of reads when states are already in hand
func ResolveNextLegFromStates(legs []gormModels.Leg, states map[int64]LegState) *gormModels.Leg {
	for _, state := range states {
		if state == LegStatePending {
			return nil
		}
	}
	for i := range legs {
		if states[legs[i].ID] != LegStateApproved {
			return &legs[i]
		}
	}
	return nil
}

// CreateTour validates and persists a tour with its legs in one transaction
func (s *TourService) CreateTour(ctx context.Context, req *dtos.TourUpsertRequest) (*gormModels.Tour, error) {
	if err := validateTourRequest(req); err != nil {
		return nil, err
	}
	if err := s.checkLegAirports(ctx, req.Legs); err != nil {
		return nil, err
	}

	tour := &gormModels.Tour{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Legs:        buildLegs(req.Legs),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		return s.tourRepo.WithTx(tx).Create(ctx, tour)
	})
	if err != nil {
		return nil, common.NewInternal(err)
	}

	s.invalidateTourCaches(tour.ID)
	logging.Info("Tour created", "tour_id", tour.ID, "legs", len(tour.Legs))
	return tour, nil
}

// UpdateTour rewrites the tour fields and replaces its legs wholesale
func (s *TourService) UpdateTour(ctx context.Context, tourID int64, req *dtos.TourUpsertRequest) (*gormModels.Tour, error) {
	if err := validateTourRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.tourRepo.FindByID(ctx, tourID)
	if err != nil {
		return nil, common.NewInternal(err)
	}
	if existing == nil {
		return nil, common.NewNotFound("tour", tourID)
	}

	if err := s.checkLegAirports(ctx, req.Legs); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		repo := s.tourRepo.WithTx(tx)
		if err := repo.UpdateFields(ctx, tourID, map[string]interface{}{
			"title":       req.Title,
			"description": req.Description,
			"image_url":   req.ImageURL,
		}); err != nil {
			return err
		}
		return repo.ReplaceLegs(ctx, tourID, buildLegs(req.Legs))
	})
	if err != nil {
		return nil, common.NewInternal(err)
	}

	s.invalidateTourCaches(tourID)
	logging.Info("Tour updated", "tour_id", tourID, "legs", len(req.Legs))
	return s.tourRepo.FindByID(ctx, tourID)
}

// DeleteTour removes a tour and its legs
func (s *TourService) DeleteTour(ctx context.Context, tourID int64) error {
	existing, err := s.tourRepo.FindByID(ctx, tourID)
	if err != nil {
		return common.NewInternal(err)
	}
	if existing == nil {
		return common.NewNotFound("tour", tourID)
	}

	if err := s.tourRepo.Delete(ctx, tourID); err != nil {
		return common.NewInternal(err)
	}

	s.invalidateTourCaches(tourID)
	logging.Info("Tour deleted", "tour_id", tourID)
	return nil
}

// SetImage stores the uploaded image URL on the tour
func (s *TourService) SetImage(ctx context.Context, tourID int64, imageURL string) error {
	existing, err := s.tourRepo.FindByID(ctx, tourID)
	if err != nil {
		return common.NewInternal(err)
	}
	if existing == nil {
		return common.NewNotFound("tour", tourID)
	}

	if err := s.tourRepo.UpdateFields(ctx, tourID, map[string]interface{}{
		"image_url": imageURL,
	}); err != nil {
		return common.NewInternal(err)
	}

	s.invalidateTourCaches(tourID)
	return nil
}

// checkLegAirports verifies every referenced airport exists before any write
func (s *TourService) checkLegAirports(ctx context.Context, legs []dtos.LegInput) error {
	checked := make(map[string]bool)
	for _, leg := range legs {
		for _, code := range []string{leg.Departure, leg.Arrival} {
			if checked[code] {
				continue
			}
			airport, err := s.airportRepo.FindByCode(ctx, code)
			if err != nil {
				return common.NewInternal(err)
			}
			if airport == nil {
				return common.NewNotFound("airport", code)
			}
			checked[code] = true
		}
	}
	return nil
}

func buildLegs(inputs []dtos.LegInput) []gormModels.Leg {
	legs := make([]gormModels.Leg, 0, len(inputs))
	for _, in := range inputs {
		legs = append(legs, gormModels.Leg{
			DepartureCode: in.Departure,
			ArrivalCode:   in.Arrival,
			Description:   in.Description,
			Order:         in.Order,
		})
	}
	return legs
}

func (s *TourService) invalidateTourCaches(tourID int64) {
	s.cache.Delete(string(constants.CachePrefixTourList))
	s.cache.Delete(string(constants.CachePrefixTourDetail) + strconv.FormatInt(tourID, 10))
}
