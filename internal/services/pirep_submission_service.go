package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	gormlib "gorm.io/gorm"

	"vattours/server/internal/common"
	"vattours/server/internal/constants"
	"vattours/server/internal/db/repositories"
	"vattours/server/internal/logging"
	"vattours/server/internal/metrics"
	"vattours/server/internal/models/dtos"
	gormModels "vattours/server/internal/models/gorm"
)

// PirepSubmissionService accepts a user's flight report for the leg the
// resolver currently selects for them.
type PirepSubmissionService struct {
	db         *gormlib.DB
	tourRepo   *repositories.TourRepository
	pirepRepo  *repositories.PirepRepository
	metricsReg *metrics.MetricsRegistry
}

// NewPirepSubmissionService creates a new PirepSubmissionService with dependencies
func NewPirepSubmissionService(
	db *gormlib.DB,
	tourRepo *repositories.TourRepository,
	pirepRepo *repositories.PirepRepository,
	metricsReg *metrics.MetricsRegistry,
) *PirepSubmissionService {
	return &PirepSubmissionService{
		db:         db,
		tourRepo:   tourRepo,
		pirepRepo:  pirepRepo,
		metricsReg: metricsReg,
	}
}

// SubmitPirep validates the request, resolves the target leg, and persists a
// pending PIREP. Resolution and insert share one serializable transaction so
// two racing submissions cannot both pass the single-pending check; the loser
// aborts with a serialization failure and surfaces as a retryable conflict.
func (s *PirepSubmissionService) SubmitPirep(
	ctx context.Context,
	userID string,
	tourID int64,
	request *dtos.PirepSubmitRequest,
) (*gormModels.Pirep, error) {
	// STEP 1: VALIDATE INPUT
	if tourID <= 0 {
		return nil, common.NewInvalidInput("tour_id", "tour id must be a positive integer")
	}
	if err := validateCallsign(request.Callsign); err != nil {
		return nil, err
	}
	if err := validateRemark("comment", request.Comment); err != nil {
		return nil, err
	}

	// STEP 2: CHECK THE TOUR EXISTS
	tour, err := s.tourRepo.FindByID(ctx, tourID)
	if err != nil {
		return nil, common.NewInternal(err)
	}
	if tour == nil {
		return nil, common.NewNotFound("tour", tourID)
	}

	// STEP 3: RESOLVE AND INSERT ATOMICALLY
	var pirep *gormModels.Pirep
	err = s.db.WithContext(ctx).Transaction(func(tx *gormlib.DB) error {
		progress := NewTourProgressService(s.tourRepo.WithTx(tx), s.pirepRepo.WithTx(tx))

		leg, err := progress.NextLeg(ctx, userID, tourID)
		if err != nil {
			return common.NewInternal(err)
		}
		if leg == nil {
			return common.NewNoEligibleLeg(constants.MsgNoEligibleLeg)
		}

		pirep = &gormModels.Pirep{
			UserID:   userID,
			LegID:    leg.ID,
			Callsign: request.Callsign,
			Comment:  request.Comment,
			Status:   constants.PirepPending,
		}
		if err := s.pirepRepo.WithTx(tx).Insert(ctx, pirep); err != nil {
			return common.NewInternal(err)
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, classifySubmitError(err)
	}

	s.metricsReg.PirepsSubmittedTotal.Inc()
	logging.Info("PIREP submitted",
		"user_id", userID,
		"tour_id", tourID,
		"leg_id", pirep.LegID,
		"pirep_id", pirep.ID,
	)

	return pirep, nil
}

// classifySubmitError converts a postgres serialization failure (SQLSTATE
// 40001) into a conflict the client can retry. Everything else passes through.
func classifySubmitError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "40001" {
		return common.NewConflict(constants.MsgSubmitRetry)
	}
	return err
}
