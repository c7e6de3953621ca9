package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"vattours/server/internal/common"
	"vattours/server/internal/constants"
	"vattours/server/internal/db/repositories"
	"vattours/server/internal/models/dtos"
	gormModels "vattours/server/internal/models/gorm"
)

func newTourService(db *gorm.DB) *TourService {
	return NewTourService(
		db,
		repositories.NewTourRepository(db),
		repositories.NewAirportRepository(db),
		newProgressService(db),
		common.NewCacheService(60, 600),
	)
}

func TestCreateTour_Success(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS", "KPHL")

	service := newTourService(db)

	tour, err := service.CreateTour(context.Background(), &dtos.TourUpsertRequest{
		Title: "East Coast",
		Legs: []dtos.LegInput{
			{Departure: "KJFK", Arrival: "KBOS", Order: 1},
			{Departure: "KBOS", Arrival: "KPHL", Order: 2},
		},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if tour.ID == 0 {
		t.Error("Tour was not assigned an id")
	}

	var legs []gormModels.Leg
	db.Where("tour_id = ?", tour.ID).Order("leg_order").Find(&legs)
	if len(legs) != 2 {
		t.Fatalf("Expected 2 legs, got %d", len(legs))
	}
	if legs[0].DepartureCode != "KJFK" || legs[1].ArrivalCode != "KPHL" {
		t.Error("Legs were not persisted in order")
	}
}

func TestCreateTour_MissingTitle(t *testing.T) {
	db := setupTestDB(t)
	service := newTourService(db)

	_, err := service.CreateTour(context.Background(), &dtos.TourUpsertRequest{Title: "  "})
	if common.KindOf(err) != common.KindInvalidInput {
		t.Fatalf("Expected invalid_input, got %v", err)
	}
}

func TestCreateTour_DuplicateLegOrder(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS", "KPHL")

	service := newTourService(db)

	_, err := service.CreateTour(context.Background(), &dtos.TourUpsertRequest{
		Title: "Broken",
		Legs: []dtos.LegInput{
			{Departure: "KJFK", Arrival: "KBOS", Order: 1},
			{Departure: "KBOS", Arrival: "KPHL", Order: 1},
		},
	})
	if common.KindOf(err) != common.KindInvalidInput {
		t.Fatalf("Expected invalid_input for duplicate order, got %v", err)
	}
}

func TestCreateTour_UnknownAirport(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK")

	service := newTourService(db)

	_, err := service.CreateTour(context.Background(), &dtos.TourUpsertRequest{
		Title: "Nowhere",
		Legs: []dtos.LegInput{
			{Departure: "KJFK", Arrival: "ZZZZ", Order: 1},
		},
	})
	if common.KindOf(err) != common.KindNotFound {
		t.Fatalf("Expected not_found for unknown airport, got %v", err)
	}

	var count int64
	db.Model(&gormModels.Tour{}).Count(&count)
	if count != 0 {
		t.Error("Failed validation must not persist the tour")
	}
}

func TestUpdateTour_ReplacesLegsWholesale(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS", "KPHL", "KDCA")
	tour := seedTour(t, db, "Original", "KJFK", "KBOS", "KPHL")

	service := newTourService(db)

	updated, err := service.UpdateTour(context.Background(), tour.ID, &dtos.TourUpsertRequest{
		Title: "Reworked",
		Legs: []dtos.LegInput{
			{Departure: "KDCA", Arrival: "KJFK", Order: 1},
		},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Title != "Reworked" {
		t.Errorf("Title not updated, got %s", updated.Title)
	}
	if len(updated.Legs) != 1 {
		t.Fatalf("Expected legs replaced wholesale, got %d legs", len(updated.Legs))
	}
	if updated.Legs[0].DepartureCode != "KDCA" {
		t.Errorf("Expected new leg KDCA, got %s", updated.Legs[0].DepartureCode)
	}
}

func TestUpdateTour_NotFound(t *testing.T) {
	db := setupTestDB(t)
	service := newTourService(db)

	_, err := service.UpdateTour(context.Background(), 9999, &dtos.TourUpsertRequest{Title: "Ghost"})
	if common.KindOf(err) != common.KindNotFound {
		t.Fatalf("Expected not_found, got %v", err)
	}
}

func TestDeleteTour_RemovesLegs(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS")
	tour := seedTour(t, db, "Shuttle", "KJFK", "KBOS")

	service := newTourService(db)

	if err := service.DeleteTour(context.Background(), tour.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var legCount int64
	db.Model(&gormModels.Leg{}).Where("tour_id = ?", tour.ID).Count(&legCount)
	if legCount != 0 {
		t.Errorf("Expected legs removed with the tour, found %d", legCount)
	}
}

func TestGetTourDetail_AnnotatesProgress(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS", "KPHL")
	tour := seedTour(t, db, "East Coast", "KJFK", "KBOS", "KPHL")
	user := seedUser(t, db, "pilot-1")

	db.Create(&gormModels.Pirep{
		UserID:   user.ID,
		LegID:    tour.Legs[0].ID,
		Callsign: "VT001",
		Status:   constants.PirepApproved,
	})

	service := newTourService(db)

	detail, err := service.GetTourDetail(context.Background(), user.ID, tour.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if detail.Legs[0].State != string(LegStateApproved) {
		t.Errorf("Leg 1: expected approved, got %s", detail.Legs[0].State)
	}
	if detail.Legs[1].State != string(LegStateOpen) {
		t.Errorf("Leg 2: expected open, got %s", detail.Legs[1].State)
	}
	if detail.NextLegID == nil || *detail.NextLegID != tour.Legs[1].ID {
		t.Errorf("Expected next leg %d, got %v", tour.Legs[1].ID, detail.NextLegID)
	}
	if detail.Completed {
		t.Error("Tour with open legs must not be completed")
	}
}

func TestGetTourDetail_CompletedTour(t *testing.T) {
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

	service := newTourService(db)

	detail, err := service.GetTourDetail(context.Background(), user.ID, tour.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !detail.Completed {
		t.Error("Expected completed tour")
	}
	if detail.NextLegID != nil {
		t.Errorf("Completed tour must have no next leg, got %d", *detail.NextLegID)
	}
}

func TestGetTourDetail_PendingHidesNextLeg(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS", "KPHL")
	tour := seedTour(t, db, "East Coast", "KJFK", "KBOS", "KPHL")
	user := seedUser(t, db, "pilot-1")

	db.Create(&gormModels.Pirep{
		UserID:   user.ID,
		LegID:    tour.Legs[0].ID,
		Callsign: "VT001",
		Status:   constants.PirepPending,
	})

	service := newTourService(db)

	detail, err := service.GetTourDetail(context.Background(), user.ID, tour.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if detail.NextLegID != nil {
		t.Errorf("Pending review must hide the next leg, got %d", *detail.NextLegID)
	}
}

func TestListTours_ReturnsSummaries(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS", "KPHL")
	seedTour(t, db, "East Coast", "KJFK", "KBOS", "KPHL")

	service := newTourService(db)

	summaries, err := service.ListTours(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("Expected 1 tour, got %d", len(summaries))
	}
	if summaries[0].LegCount != 2 {
		t.Errorf("Expected 2 legs in summary, got %d", summaries[0].LegCount)
	}
}
