package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"vattours/server/internal/common"
	"vattours/server/internal/constants"
	"vattours/server/internal/db/repositories"
	"vattours/server/internal/metrics"
	"vattours/server/internal/models/dtos"
	gormModels "vattours/server/internal/models/gorm"
)

// Shared across the package: prometheus collectors register globally, so the
// registry must be built exactly once per test binary.
var testMetrics = metrics.NewMetricsRegistry()

func newSubmissionService(db *gorm.DB) *PirepSubmissionService {
	return NewPirepSubmissionService(
		db,
		repositories.NewTourRepository(db),
		repositories.NewPirepRepository(db),
		testMetrics,
	)
}

func TestSubmitPirep_Success(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS", "KPHL")
	tour := seedTour(t, db, "East Coast", "KJFK", "KBOS", "KPHL")
	user := seedUser(t, db, "pilot-1")

	service := newSubmissionService(db)

	pirep, err := service.SubmitPirep(context.Background(), user.ID, tour.ID, &dtos.PirepSubmitRequest{
		Callsign: "VATTOURS001",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if pirep.Status != constants.PirepPending {
		t.Errorf("Expected pending status, got %s", pirep.Status)
	}
	if pirep.LegID != tour.Legs[0].ID {
		t.Errorf("Expected PIREP against the first leg, got leg %d", pirep.LegID)
	}

	var count int64
	db.Model(&gormModels.Pirep{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 persisted PIREP, got %d", count)
	}
}

func TestSubmitPirep_TwelveCharCallsignAccepted(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS")
	tour := seedTour(t, db, "Shuttle", "KJFK", "KBOS")
	user := seedUser(t, db, "pilot-1")

	service := newSubmissionService(db)

	callsign := strings.Repeat("A", 12)
	pirep, err := service.SubmitPirep(context.Background(), user.ID, tour.ID, &dtos.PirepSubmitRequest{
		Callsign: callsign,
	})
	if err != nil {
		t.Fatalf("12-character callsign should be accepted, got %v", err)
	}
	if pirep.Callsign != callsign {
		t.Errorf("Callsign was altered: %s", pirep.Callsign)
	}
}

func TestSubmitPirep_OverlongCallsignRejectedWithoutWrite(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS")
	tour := seedTour(t, db, "Shuttle", "KJFK", "KBOS")
	user := seedUser(t, db, "pilot-1")

	service := newSubmissionService(db)

	_, err := service.SubmitPirep(context.Background(), user.ID, tour.ID, &dtos.PirepSubmitRequest{
		Callsign: strings.Repeat("A", 13),
	})
	if common.KindOf(err) != common.KindInvalidInput {
		t.Fatalf("Expected invalid_input, got %v", err)
	}

	var count int64
	db.Model(&gormModels.Pirep{}).Count(&count)
	if count != 0 {
		t.Errorf("Rejected submission must not persist anything, found %d rows", count)
	}
}

func TestSubmitPirep_NonAlphanumericCallsignRejected(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS")
	tour := seedTour(t, db, "Shuttle", "KJFK", "KBOS")
	user := seedUser(t, db, "pilot-1")

	service := newSubmissionService(db)

	_, err := service.SubmitPirep(context.Background(), user.ID, tour.ID, &dtos.PirepSubmitRequest{
		Callsign: "VT-001",
	})
	if common.KindOf(err) != common.KindInvalidInput {
		t.Fatalf("Expected invalid_input, got %v", err)
	}
}

func TestSubmitPirep_OverlongCommentRejected(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS")
	tour := seedTour(t, db, "Shuttle", "KJFK", "KBOS")
	user := seedUser(t, db, "pilot-1")

	service := newSubmissionService(db)

	comment := strings.Repeat("x", 101)
	_, err := service.SubmitPirep(context.Background(), user.ID, tour.ID, &dtos.PirepSubmitRequest{
		Callsign: "VT001",
		Comment:  &comment,
	})
	if common.KindOf(err) != common.KindInvalidInput {
		t.Fatalf("Expected invalid_input, got %v", err)
	}
}

func TestSubmitPirep_MultibyteCommentCountedInCharacters(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS")
	tour := seedTour(t, db, "Shuttle", "KJFK", "KBOS")
	user := seedUser(t, db, "pilot-1")

	service := newSubmissionService(db)

	// 100 two-byte characters: within the limit even though len() sees 200
	comment := strings.Repeat("ü", 100)
	_, err := service.SubmitPirep(context.Background(), user.ID, tour.ID, &dtos.PirepSubmitRequest{
		Callsign: "VT001",
		Comment:  &comment,
	})
	if err != nil {
		t.Fatalf("100-character multibyte comment should be accepted, got %v", err)
	}
}

func TestSubmitPirep_OverlongMultibyteCommentRejected(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS")
	tour := seedTour(t, db, "Shuttle", "KJFK", "KBOS")
	user := seedUser(t, db, "pilot-1")

	service := newSubmissionService(db)

	comment := strings.Repeat("ü", 101)
	_, err := service.SubmitPirep(context.Background(), user.ID, tour.ID, &dtos.PirepSubmitRequest{
		Callsign: "VT001",
		Comment:  &comment,
	})
	if common.KindOf(err) != common.KindInvalidInput {
		t.Fatalf("Expected invalid_input, got %v", err)
	}
}

func TestSubmitPirep_SerializationFailureBecomesRetryableConflict(t *testing.T) {
	serErr := &pq.Error{Code: "40001", Message: "could not serialize access"}

	if common.KindOf(classifySubmitError(serErr)) != common.KindConflict {
		t.Error("A bare serialization failure should map to conflict")
	}

	wrapped := common.NewInternal(fmt.Errorf("commit: %w", serErr))
	if common.KindOf(classifySubmitError(wrapped)) != common.KindConflict {
		t.Error("A wrapped serialization failure should map to conflict")
	}

	passthrough := common.NewNoEligibleLeg(constants.MsgNoEligibleLeg)
	if classifySubmitError(passthrough) != passthrough {
		t.Error("Non-serialization errors must pass through unchanged")
	}
}

func TestSubmitPirep_TourNotFound(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "pilot-1")

	service := newSubmissionService(db)

	_, err := service.SubmitPirep(context.Background(), user.ID, 9999, &dtos.PirepSubmitRequest{
		Callsign: "VT001",
	})
	if common.KindOf(err) != common.KindNotFound {
		t.Fatalf("Expected not_found, got %v", err)
	}
}

func TestSubmitPirep_PendingBlocksSecondSubmission(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS", "KPHL")
	tour := seedTour(t, db, "East Coast", "KJFK", "KBOS", "KPHL")
	user := seedUser(t, db, "pilot-1")

	service := newSubmissionService(db)
	ctx := context.Background()

	if _, err := service.SubmitPirep(ctx, user.ID, tour.ID, &dtos.PirepSubmitRequest{Callsign: "VT001"}); err != nil {
		t.Fatalf("First submission failed: %v", err)
	}

	_, err := service.SubmitPirep(ctx, user.ID, tour.ID, &dtos.PirepSubmitRequest{Callsign: "VT001"})
	if common.KindOf(err) != common.KindNoEligibleLeg {
		t.Fatalf("Expected no_eligible_leg while a PIREP is pending, got %v", err)
	}

	var count int64
	db.Model(&gormModels.Pirep{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected exactly 1 PIREP, got %d", count)
	}
}

func TestSubmitPirep_FinishedTourHasNoEligibleLeg(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS")
	tour := seedTour(t, db, "Shuttle", "KJFK", "KBOS")
	user := seedUser(t, db, "pilot-1")

	db.Create(&gormModels.Pirep{
		UserID:   user.ID,
		LegID:    tour.Legs[0].ID,
		Callsign: "VT001",
		Status:   constants.PirepApproved,
	})

	service := newSubmissionService(db)

	_, err := service.SubmitPirep(context.Background(), user.ID, tour.ID, &dtos.PirepSubmitRequest{Callsign: "VT001"})
	if common.KindOf(err) != common.KindNoEligibleLeg {
		t.Fatalf("Expected no_eligible_leg on a finished tour, got %v", err)
	}
}

func TestSubmitPirep_RejectedLegAcceptsResubmission(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS")
	tour := seedTour(t, db, "Shuttle", "KJFK", "KBOS")
	user := seedUser(t, db, "pilot-1")

	db.Create(&gormModels.Pirep{
		UserID:   user.ID,
		LegID:    tour.Legs[0].ID,
		Callsign: "VT001",
		Status:   constants.PirepRejected,
	})

	service := newSubmissionService(db)

	pirep, err := service.SubmitPirep(context.Background(), user.ID, tour.ID, &dtos.PirepSubmitRequest{Callsign: "VT001"})
	if err != nil {
		t.Fatalf("Resubmission after rejection should succeed, got %v", err)
	}
	if pirep.LegID != tour.Legs[0].ID {
		t.Errorf("Resubmission should target the rejected leg, got leg %d", pirep.LegID)
	}
}
