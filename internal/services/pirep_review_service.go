package services

import (
	"context"
	"time"

	"vattours/server/internal/auth"
	"vattours/server/internal/common"
	"vattours/server/internal/constants"
	"vattours/server/internal/db/repositories"
	"vattours/server/internal/logging"
	"vattours/server/internal/metrics"
	"vattours/server/internal/models/dtos"
	gormModels "vattours/server/internal/models/gorm"
)

// PirepReviewService lets an admin resolve a pending PIREP. Transitions are
// pending-only: a reviewed PIREP is terminal and re-review is a conflict.
type PirepReviewService struct {
	pirepRepo  *repositories.PirepRepository
	badgeRepo  *repositories.BadgeRepository
	progress   *TourProgressService
	metricsReg *metrics.MetricsRegistry
}

// NewPirepReviewService creates a new PirepReviewService with dependencies
func NewPirepReviewService(
	pirepRepo *repositories.PirepRepository,
	badgeRepo *repositories.BadgeRepository,
	progress *TourProgressService,
	metricsReg *metrics.MetricsRegistry,
) *PirepReviewService {
	return &PirepReviewService{
		pirepRepo:  pirepRepo,
		badgeRepo:  badgeRepo,
		progress:   progress,
		metricsReg: metricsReg,
	}
}

// ReviewPirep transitions a pending PIREP to approved or rejected, recording
// reviewer identity and timestamp. Approving the final open leg of a tour
// also records the user's tour completion.
func (s *PirepReviewService) ReviewPirep(
	ctx context.Context,
	reviewer auth.UserClaims,
	pirepID int64,
	request *dtos.PirepReviewRequest,
) (*gormModels.Pirep, error) {
	if reviewer == nil {
		return nil, common.NewUnauthenticated("missing caller identity")
	}
	if reviewer.Role().IsLessThan(constants.RoleAdmin) {
		return nil, common.NewPermissionDenied(constants.MsgNeedAdmin)
	}

	status, err := constants.ParsePirepStatus(request.Status)
	if err != nil || !status.IsTerminal() {
		return nil, common.NewInvalidInput("status", "status must be approved or rejected")
	}
	if err := validateRemark("review_note", request.ReviewNote); err != nil {
		return nil, err
	}

	pirep, err := s.pirepRepo.FindByID(ctx, pirepID)
	if err != nil {
		return nil, common.NewInternal(err)
	}
	if pirep == nil {
		return nil, common.NewNotFound("pirep", pirepID)
	}
	if pirep.Status != constants.PirepPending {
		return nil, common.NewConflict(constants.MsgAlreadyReviewed)
	}

	now := time.Now()
	reviewerID := reviewer.UserID()
	pirep.Status = status
	pirep.ReviewerID = &reviewerID
	pirep.ReviewedAt = &now
	pirep.ReviewNote = request.ReviewNote

	if err := s.pirepRepo.UpdateReview(ctx, pirep); err != nil {
		return nil, common.NewInternal(err)
	}

	s.metricsReg.PirepsReviewedTotal.WithLabelValues(status.String()).Inc()
	logging.Info("PIREP reviewed",
		"pirep_id", pirep.ID,
		"status", status.String(),
		"reviewer_id", reviewerID,
	)

	if status == constants.PirepApproved {
		if err := s.recordCompletionIfDone(ctx, pirep); err != nil {
			// The review itself stands; completion bookkeeping is retried
			// implicitly on the next approval for this tour.
			logging.Error("Failed to record tour completion",
				"pirep_id", pirep.ID,
				"error", err.Error(),
			)
		}
	}

	return pirep, nil
}

func (s *PirepReviewService) recordCompletionIfDone(ctx context.Context, pirep *gormModels.Pirep) error {
	tourID := pirep.Leg.TourID

	complete, err := s.progress.IsTourComplete(ctx, pirep.UserID, tourID)
	if err != nil {
		return err
	}
	if !complete {
		return nil
	}

	if err := s.badgeRepo.RecordTourCompletion(ctx, pirep.UserID, tourID); err != nil {
		return err
	}

	s.metricsReg.ToursCompletedTotal.Inc()
	logging.Info("Tour completed",
		"user_id", pirep.UserID,
		"tour_id", tourID,
	)
	return nil
}
