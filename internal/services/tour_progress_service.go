package services

import (
	"context"
	"fmt"

	"vattours/server/internal/constants"
	"vattours/server/internal/db/repositories"
	gormModels "vattours/server/internal/models/gorm"
)

// LegState describes a user's standing on one leg of a tour
type LegState string

const (
	LegStateOpen     LegState = "open"
	LegStatePending  LegState = "pending"
	LegStateApproved LegState = "approved"
	LegStateRejected LegState = "rejected"
)

// TourProgressService answers the one real question in the system: which leg
// of a tour should a user fly next, given their review-workflow history.
type TourProgressService struct {
	tourRepo  *repositories.TourRepository
	pirepRepo *repositories.PirepRepository
}

// NewTourProgressService creates a new tour progress service
func NewTourProgressService(
	tourRepo *repositories.TourRepository,
	pirepRepo *repositories.PirepRepository,
) *TourProgressService {
	return &TourProgressService{
		tourRepo:  tourRepo,
		pirepRepo: pirepRepo,
	}
}

// NextLeg resolves the leg the user should submit a PIREP for next.
// Returns nil when the tour has no eligible leg. Read-only.
func (s *TourProgressService) NextLeg(ctx context.Context, userID string, tourID int64) (*gormModels.Leg, error) {
	legs, err := s.tourRepo.LegsByTour(ctx, tourID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch legs for tour %d: %w", tourID, err)
	}

	pireps, err := s.pirepRepo.ListByUserAndTour(ctx, userID, tourID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pireps for tour %d: %w", tourID, err)
	}

	return ResolveNextLeg(legs, pireps), nil
}

// ResolveNextLeg picks the lowest-order leg the user may submit against:
// a leg is blocked once the user holds an approved or pending PIREP on it,
// and any pending PIREP anywhere in the tour blocks the whole tour until
// review. Rejected PIREPs leave their leg eligible again. Legs must already
// be ordered; pure function so the decision is trivially testable.
func ResolveNextLeg(legs []gormModels.Leg, pireps []gormModels.Pirep) *gormModels.Leg {
	done := make(map[int64]bool)
	for _, p := range pireps {
		switch p.Status {
		case constants.PirepPending:
			// One outstanding submission per tour: wait for review
			return nil
		case constants.PirepApproved:
			done[p.LegID] = true
		}
	}

	for i := range legs {
		if !done[legs[i].ID] {
			return &legs[i]
		}
	}
	return nil
}

// LegStates maps each leg of the tour to the user's standing on it. A leg
// with both rejected and approved history counts as approved; pending wins
// over rejected since it is the live submission.
func (s *TourProgressService) LegStates(ctx context.Context, userID string, tourID int64) (map[int64]LegState, error) {
	legs, err := s.tourRepo.LegsByTour(ctx, tourID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch legs for tour %d: %w", tourID, err)
	}

	pireps, err := s.pirepRepo.ListByUserAndTour(ctx, userID, tourID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pireps for tour %d: %w", tourID, err)
	}

	states := make(map[int64]LegState, len(legs))
	for _, leg := range legs {
		states[leg.ID] = LegStateOpen
	}

	for _, p := range pireps {
		current := states[p.LegID]
		switch p.Status {
		case constants.PirepApproved:
			states[p.LegID] = LegStateApproved
		case constants.PirepPending:
			if current != LegStateApproved {
				states[p.LegID] = LegStatePending
			}
		case constants.PirepRejected:
			if current == LegStateOpen {
				states[p.LegID] = LegStateRejected
			}
		}
	}

	return states, nil
}

// IsTourComplete reports whether every leg of the tour has an approved
// PIREP from the user
func (s *TourProgressService) IsTourComplete(ctx context.Context, userID string, tourID int64) (bool, error) {
	legs, err := s.tourRepo.LegsByTour(ctx, tourID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch legs for tour %d: %w", tourID, err)
	}
	if len(legs) == 0 {
		return false, nil
	}

	approved, err := s.pirepRepo.CountApprovedLegs(ctx, userID, tourID)
	if err != nil {
		return false, fmt.Errorf("failed to count approved legs for tour %d: %w", tourID, err)
	}

	return approved == int64(len(legs)), nil
}
