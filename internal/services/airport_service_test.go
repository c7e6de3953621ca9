package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"vattours/server/internal/common"
	"vattours/server/internal/db/repositories"
	"vattours/server/internal/models/dtos"
	gormModels "vattours/server/internal/models/gorm"
)

func newAirportService(db *gorm.DB) *AirportService {
	return NewAirportService(
		repositories.NewAirportRepository(db),
		common.NewCacheService(60, 600),
	)
}

func TestCreateAirport_Success(t *testing.T) {
	db := setupTestDB(t)
	service := newAirportService(db)

	airport, err := service.CreateAirport(context.Background(), &dtos.AirportUpsertRequest{
		Code:    "KJFK",
		Name:    "John F. Kennedy International",
		Country: "US",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if airport.Code != "KJFK" {
		t.Errorf("Expected code KJFK, got %s", airport.Code)
	}
}

func TestCreateAirport_InvalidCode(t *testing.T) {
	db := setupTestDB(t)
	service := newAirportService(db)

	for _, code := range []string{"JFK", "kjfk", "KJFKX", ""} {
		_, err := service.CreateAirport(context.Background(), &dtos.AirportUpsertRequest{
			Code:    code,
			Name:    "Test",
			Country: "US",
		})
		if common.KindOf(err) != common.KindInvalidInput {
			t.Errorf("Code %q: expected invalid_input, got %v", code, err)
		}
	}
}

func TestCreateAirport_UnknownCountry(t *testing.T) {
	db := setupTestDB(t)
	service := newAirportService(db)

	_, err := service.CreateAirport(context.Background(), &dtos.AirportUpsertRequest{
		Code:    "KJFK",
		Name:    "Test",
		Country: "XX",
	})
	if common.KindOf(err) != common.KindInvalidInput {
		t.Fatalf("Expected invalid_input for unknown country, got %v", err)
	}
}

func TestCreateAirport_DuplicateConflict(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK")
	service := newAirportService(db)

	_, err := service.CreateAirport(context.Background(), &dtos.AirportUpsertRequest{
		Code:    "KJFK",
		Name:    "Duplicate",
		Country: "US",
	})
	if common.KindOf(err) != common.KindConflict {
		t.Fatalf("Expected conflict, got %v", err)
	}
}

func TestUpdateAirport_CodeImmutable(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK")
	service := newAirportService(db)

	_, err := service.UpdateAirport(context.Background(), "KJFK", &dtos.AirportUpsertRequest{
		Code:    "KLGA",
		Name:    "Renamed",
		Country: "US",
	})
	if common.KindOf(err) != common.KindInvalidInput {
		t.Fatalf("Expected invalid_input when changing the code, got %v", err)
	}
}

func TestDeleteAirport_ReferencedByLeg(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS")
	seedTour(t, db, "Shuttle", "KJFK", "KBOS")

	service := newAirportService(db)

	err := service.DeleteAirport(context.Background(), "KBOS")
	if common.KindOf(err) != common.KindConflict {
		t.Fatalf("Expected conflict while legs reference the airport, got %v", err)
	}

	var count int64
	db.Model(&gormModels.Airport{}).Count(&count)
	if count != 2 {
		t.Error("Guarded airport must not be deleted")
	}
}

func TestDeleteAirport_UnreferencedSucceeds(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK")

	service := newAirportService(db)

	if err := service.DeleteAirport(context.Background(), "KJFK"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var count int64
	db.Model(&gormModels.Airport{}).Count(&count)
	if count != 0 {
		t.Error("Airport should be gone")
	}
}

func TestGetAirport_NotFound(t *testing.T) {
	db := setupTestDB(t)
	service := newAirportService(db)

	_, err := service.GetAirport(context.Background(), "ZZZZ")
	if common.KindOf(err) != common.KindNotFound {
		t.Fatalf("Expected not_found, got %v", err)
	}
}
