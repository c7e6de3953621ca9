package repositories

import (
	"context"

	"vattours/server/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// TourRepository handles tour and leg table operations
type TourRepository struct {
	db *gormlib.DB
}

// NewTourRepository creates a new tour repository
func NewTourRepository(db *gormlib.DB) *TourRepository {
	return &TourRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle
func (r *TourRepository) WithTx(tx *gormlib.DB) *TourRepository {
	return &TourRepository{db: tx}
}

// List returns all tours with their legs preloaded in order
func (r *TourRepository) List(ctx context.Context) ([]gorm.Tour, error) {
	var tours []gorm.Tour
	err := r.db.WithContext(ctx).
		Preload("Legs", func(db *gormlib.DB) *gormlib.DB {
			return db.Order("leg_order")
		}).
		Order("id").
		Find(&tours).Error
	return tours, err
}

// FindByID returns a tour with legs ordered by leg_order, or nil when absent
func (r *TourRepository) FindByID(ctx context.Context, tourID int64) (*gorm.Tour, error) {
	var tour gorm.Tour

	err := r.db.WithContext(ctx).
		Preload("Legs", func(db *gormlib.DB) *gormlib.DB {
			return db.Order("leg_order")
		}).
		First(&tour, tourID).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &tour, nil
}

// LegsByTour returns the tour's legs ordered by leg_order
func (r *TourRepository) LegsByTour(ctx context.Context, tourID int64) ([]gorm.Leg, error) {
	var legs []gorm.Leg
	err := r.db.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Order("leg_order").
		Find(&legs).Error
	return legs, err
}

// Create inserts a tour together with its legs
func (r *TourRepository) Create(ctx context.Context, tour *gorm.Tour) error {
	return r.db.WithContext(ctx).Create(tour).Error
}

// ReplaceLegs deletes a tour's legs and reinserts the given set.
// Tour edits always rewrite the full leg sequence.
func (r *TourRepository) ReplaceLegs(ctx context.Context, tourID int64, legs []gorm.Leg) error {
	if err := r.db.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Delete(&gorm.Leg{}).Error; err != nil {
		return err
	}

	for i := range legs {
		legs[i].TourID = tourID
	}
	if len(legs) > 0 {
		if err := r.db.WithContext(ctx).Create(&legs).Error; err != nil {
			return err
		}
	}
	return nil
}

// UpdateFields rewrites the mutable tour columns
func (r *TourRepository) UpdateFields(ctx context.Context, tourID int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&gorm.Tour{}).
		Where("id = ?", tourID).
		Updates(fields).Error
}

// Delete removes a tour and, via the FK constraint, its legs
func (r *TourRepository) Delete(ctx context.Context, tourID int64) error {
	if err := r.db.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Delete(&gorm.Leg{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&gorm.Tour{}, tourID).Error
}
