package repositories

import (
	"context"

	"vattours/server/internal/constants"
	"vattours/server/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// PirepRepository handles pirep table operations
type PirepRepository struct {
	db *gormlib.DB
}

// NewPirepRepository creates a new pirep repository
func NewPirepRepository(db *gormlib.DB) *PirepRepository {
	return &PirepRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle
func (r *PirepRepository) WithTx(tx *gormlib.DB) *PirepRepository {
	return &PirepRepository{db: tx}
}

// Insert persists a new pirep row
func (r *PirepRepository) Insert(ctx context.Context, pirep *gorm.Pirep) error {
	return r.db.WithContext(ctx).Create(pirep).Error
}

// FindByID returns a pirep with its leg preloaded, or nil when absent
func (r *PirepRepository) FindByID(ctx context.Context, pirepID int64) (*gorm.Pirep, error) {
	var pirep gorm.Pirep

	err := r.db.WithContext(ctx).
		Preload("Leg").
		First(&pirep, pirepID).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &pirep, nil
}

// ListByUserAndTour returns a user's pireps against any leg of the tour
func (r *PirepRepository) ListByUserAndTour(ctx context.Context, userID string, tourID int64) ([]gorm.Pirep, error) {
	var pireps []gorm.Pirep

	err := r.db.WithContext(ctx).
		Joins("JOIN legs ON legs.id = pireps.leg_id").
		Where("pireps.user_id = ? AND legs.tour_id = ?", userID, tourID).
		Order("pireps.submitted_at").
		Find(&pireps).Error

	return pireps, err
}

// ListByUser returns a user's pireps, newest first, optionally status-filtered
func (r *PirepRepository) ListByUser(ctx context.Context, userID string, status *constants.PirepStatus) ([]gorm.Pirep, error) {
	var pireps []gorm.Pirep

	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC")
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	err := q.Find(&pireps).Error
	return pireps, err
}

// UpdateReview writes the review outcome onto a pirep
func (r *PirepRepository) UpdateReview(ctx context.Context, pirep *gorm.Pirep) error {
	return r.db.WithContext(ctx).
		Model(&gorm.Pirep{}).
		Where("id = ?", pirep.ID).
		Updates(map[string]interface{}{
			"status":      pirep.Status,
			"reviewer_id": pirep.ReviewerID,
			"reviewed_at": pirep.ReviewedAt,
			"review_note": pirep.ReviewNote,
		}).Error
}

// CountApprovedLegs counts the tour's legs the user holds approved pireps for
func (r *PirepRepository) CountApprovedLegs(ctx context.Context, userID string, tourID int64) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gorm.Pirep{}).
		Distinct("pireps.leg_id").
		Joins("JOIN legs ON legs.id = pireps.leg_id").
		Where("pireps.user_id = ? AND legs.tour_id = ? AND pireps.status = ?",
			userID, tourID, constants.PirepApproved).
		Count(&count).Error

	return count, err
}
