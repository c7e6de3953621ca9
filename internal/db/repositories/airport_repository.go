package repositories

import (
	"context"

	"vattours/server/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// AirportRepository handles airport table operations
type AirportRepository struct {
	db *gormlib.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *gormlib.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// FindByCode finds an airport by its 4-character code (case-insensitive)
func (r *AirportRepository) FindByCode(ctx context.Context, code string) (*gorm.Airport, error) {
	var airport gorm.Airport

	err := r.db.WithContext(ctx).
		Where("UPPER(code) = UPPER(?)", code).
		First(&airport).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &airport, nil
}

// List returns all airports ordered by code
func (r *AirportRepository) List(ctx context.Context) ([]gorm.Airport, error) {
	var airports []gorm.Airport
	err := r.db.WithContext(ctx).
		Order("code").
		Find(&airports).Error
	return airports, err
}

// Create inserts a new airport
func (r *AirportRepository) Create(ctx context.Context, airport *gorm.Airport) error {
	return r.db.WithContext(ctx).Create(airport).Error
}

// Update rewrites the mutable fields of an airport
func (r *AirportRepository) Update(ctx context.Context, airport *gorm.Airport) error {
	return r.db.WithContext(ctx).
		Model(&gorm.Airport{}).
		Where("code = ?", airport.Code).
		Updates(map[string]interface{}{
			"name":    airport.Name,
			"country": airport.Country,
		}).Error
}

// Delete removes an airport by code
func (r *AirportRepository) Delete(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).
		Where("code = ?", code).
		Delete(&gorm.Airport{}).Error
}

// CountLegReferences counts legs using the airport as departure or arrival
func (r *AirportRepository) CountLegReferences(ctx context.Context, code string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gorm.Leg{}).
		Where("departure_code = ? OR arrival_code = ?", code, code).
		Count(&count).Error
	return count, err
}
