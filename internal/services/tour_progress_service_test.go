package services

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vattours/server/internal/constants"
	"vattours/server/internal/db/repositories"
	gormModels "vattours/server/internal/models/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&gormModels.User{},
		&gormModels.Airport{},
		&gormModels.Tour{},
		&gormModels.Leg{},
		&gormModels.Pirep{},
		&gormModels.Badge{},
		&gormModels.UserBadge{},
		&gormModels.UserTour{},
		&gormModels.TourBadge{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func seedAirports(t *testing.T, db *gorm.DB, codes ...string) {
	for _, code := range codes {
		airport := gormModels.Airport{Code: code, Name: code + " Intl", Country: "US"}
		if err := db.Create(&airport).Error; err != nil {
			t.Fatalf("Failed to seed airport %s: %v", code, err)
		}
	}
}

func seedUser(t *testing.T, db *gorm.DB, externalID string) *gormModels.User {
	user := gormModels.User{
		ExternalID: externalID,
		Name:       "Test Pilot " + externalID,
		Email:      externalID + "@example.com",
		Role:       constants.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return &user
}

// seedTour creates a tour whose legs chain through the given airport codes
func seedTour(t *testing.T, db *gorm.DB, title string, codes ...string) *gormModels.Tour {
	if len(codes) < 2 {
		t.Fatalf("seedTour needs at least two airport codes")
	}

	tour := gormModels.Tour{Title: title}
	for i := 0; i < len(codes)-1; i++ {
		tour.Legs = append(tour.Legs, gormModels.Leg{
			DepartureCode: codes[i],
			ArrivalCode:   codes[i+1],
			Order:         i + 1,
		})
	}
	if err := db.Create(&tour).Error; err != nil {
		t.Fatalf("Failed to seed tour: %v", err)
	}
	return &tour
}

func newProgressService(db *gorm.DB) *TourProgressService {
	return NewTourProgressService(
		repositories.NewTourRepository(db),
		repositories.NewPirepRepository(db),
	)
}

func legsFixture(ids ...int64) []gormModels.Leg {
	legs := make([]gormModels.Leg, 0, len(ids))
	for i, id := range ids {
		legs = append(legs, gormModels.Leg{ID: id, TourID: 1, Order: i + 1})
	}
	return legs
}

func TestResolveNextLeg_EmptyTour(t *testing.T) {
	if leg := ResolveNextLeg(nil, nil); leg != nil {
		t.Errorf("Expected nil for a tour with no legs, got leg %d", leg.ID)
	}
}

func TestResolveNextLeg_FreshTourReturnsFirstLeg(t *testing.T) {
	legs := legsFixture(10, 11, 12)

	leg := ResolveNextLeg(legs, nil)
	if leg == nil || leg.ID != 10 {
		t.Fatalf("Expected leg 10, got %v", leg)
	}
}

func TestResolveNextLeg_ApprovedLegAdvances(t *testing.T) {
	legs := legsFixture(10, 11, 12)
	pireps := []gormModels.Pirep{
		{LegID: 10, Status: constants.PirepApproved},
	}

	leg := ResolveNextLeg(legs, pireps)
	if leg == nil || leg.ID != 11 {
		t.Fatalf("Expected leg 11, got %v", leg)
	}
}

func TestResolveNextLeg_PendingBlocksWholeTour(t *testing.T) {
	legs := legsFixture(10, 11, 12)
	pireps := []gormModels.Pirep{
		{LegID: 10, Status: constants.PirepApproved},
		{LegID: 11, Status: constants.PirepPending},
	}

	if leg := ResolveNextLeg(legs, pireps); leg != nil {
		t.Errorf("Expected nil while a PIREP is pending, got leg %d", leg.ID)
	}
}

func TestResolveNextLeg_RejectedLegEligibleAgain(t *testing.T) {
	legs := legsFixture(10, 11)
	pireps := []gormModels.Pirep{
		{LegID: 10, Status: constants.PirepRejected},
	}

	leg := ResolveNextLeg(legs, pireps)
	if leg == nil || leg.ID != 10 {
		t.Fatalf("Expected rejected leg 10 to be eligible again, got %v", leg)
	}
}

func TestResolveNextLeg_RejectionHistoryDoesNotUnblockApprovedLeg(t *testing.T) {
	legs := legsFixture(10, 11)
	pireps := []gormModels.Pirep{
		{LegID: 10, Status: constants.PirepRejected},
		{LegID: 10, Status: constants.PirepApproved},
	}

	leg := ResolveNextLeg(legs, pireps)
	if leg == nil || leg.ID != 11 {
		t.Fatalf("Expected leg 11, got %v", leg)
	}
}

func TestResolveNextLeg_AllApproved(t *testing.T) {
	legs := legsFixture(10, 11)
	pireps := []gormModels.Pirep{
		{LegID: 10, Status: constants.PirepApproved},
		{LegID: 11, Status: constants.PirepApproved},
	}

	if leg := ResolveNextLeg(legs, pireps); leg != nil {
		t.Errorf("Expected nil for a finished tour, got leg %d", leg.ID)
	}
}

func TestNextLeg_ReadsThroughRepositories(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS", "KPHL")
	tour := seedTour(t, db, "East Coast Hops", "KJFK", "KBOS", "KPHL")
	user := seedUser(t, db, "pilot-1")

	service := newProgressService(db)
	ctx := context.Background()

	leg, err := service.NextLeg(ctx, user.ID, tour.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if leg == nil || leg.Order != 1 {
		t.Fatalf("Expected first leg, got %v", leg)
	}

	// Approve the first leg; the resolver should advance
	db.Create(&gormModels.Pirep{
		UserID:   user.ID,
		LegID:    leg.ID,
		Callsign: "VT001",
		Status:   constants.PirepApproved,
	})

	leg, err = service.NextLeg(ctx, user.ID, tour.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if leg == nil || leg.Order != 2 {
		t.Fatalf("Expected second leg, got %v", leg)
	}
}

func TestNextLeg_IsolatedPerUser(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS")
	tour := seedTour(t, db, "Shuttle", "KJFK", "KBOS")
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	service := newProgressService(db)
	ctx := context.Background()

	// Alice holds a pending PIREP on the only leg
	db.Create(&gormModels.Pirep{
		UserID:   alice.ID,
		LegID:    tour.Legs[0].ID,
		Callsign: "VT001",
		Status:   constants.PirepPending,
	})

	leg, err := service.NextLeg(ctx, bob.ID, tour.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if leg == nil {
		t.Fatal("Bob should be unaffected by Alice's pending PIREP")
	}
}

func TestLegStates_Precedence(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS", "KPHL", "KDCA")
	tour := seedTour(t, db, "Precedence", "KJFK", "KBOS", "KPHL", "KDCA")
	user := seedUser(t, db, "pilot-1")

	// Leg 1: rejected then approved; leg 2: rejected only; leg 3: untouched
	db.Create(&gormModels.Pirep{UserID: user.ID, LegID: tour.Legs[0].ID, Callsign: "VT001", Status: constants.PirepRejected})
	db.Create(&gormModels.Pirep{UserID: user.ID, LegID: tour.Legs[0].ID, Callsign: "VT001", Status: constants.PirepApproved})
	db.Create(&gormModels.Pirep{UserID: user.ID, LegID: tour.Legs[1].ID, Callsign: "VT001", Status: constants.PirepRejected})

	service := newProgressService(db)
	states, err := service.LegStates(context.Background(), user.ID, tour.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if states[tour.Legs[0].ID] != LegStateApproved {
		t.Errorf("Leg 1: expected approved, got %s", states[tour.Legs[0].ID])
	}
	if states[tour.Legs[1].ID] != LegStateRejected {
		t.Errorf("Leg 2: expected rejected, got %s", states[tour.Legs[1].ID])
	}
	if states[tour.Legs[2].ID] != LegStateOpen {
		t.Errorf("Leg 3: expected open, got %s", states[tour.Legs[2].ID])
	}
}

func TestIsTourComplete(t *testing.T) {
	db := setupTestDB(t)
	seedAirports(t, db, "KJFK", "KBOS", "KPHL")
	tour := seedTour(t, db, "Two Legs", "KJFK", "KBOS", "KPHL")
	user := seedUser(t, db, "pilot-1")

	service := newProgressService(db)
	ctx := context.Background()

	complete, err := service.IsTourComplete(ctx, user.ID, tour.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if complete {
		t.Error("Fresh tour should not be complete")
	}

	db.Create(&gormModels.Pirep{UserID: user.ID, LegID: tour.Legs[0].ID, Callsign: "VT001", Status: constants.PirepApproved})

	complete, _ = service.IsTourComplete(ctx, user.ID, tour.ID)
	if complete {
		t.Error("Tour with one open leg should not be complete")
	}

	db.Create(&gormModels.Pirep{UserID: user.ID, LegID: tour.Legs[1].ID, Callsign: "VT001", Status: constants.PirepApproved})

	complete, _ = service.IsTourComplete(ctx, user.ID, tour.ID)
	if !complete {
		t.Error("Tour with every leg approved should be complete")
	}
}

func TestIsTourComplete_EmptyTourNeverComplete(t *testing.T) {
	db := setupTestDB(t)
	tour := gormModels.Tour{Title: "Empty"}
	if err := db.Create(&tour).Error; err != nil {
		t.Fatalf("Failed to seed tour: %v", err)
	}
	user := seedUser(t, db, "pilot-1")

	service := newProgressService(db)
	complete, err := service.IsTourComplete(context.Background(), user.ID, tour.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if complete {
		t.Error("Tour with zero legs must not count as complete")
	}
}
