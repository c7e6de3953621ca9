package repositories

import (
	"context"

	"vattours/server/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// BadgeRepository handles badge and award-join table operations
type BadgeRepository struct {
	db *gormlib.DB
}

// NewBadgeRepository creates a new badge repository
func NewBadgeRepository(db *gormlib.DB) *BadgeRepository {
	return &BadgeRepository{db: db}
}

// List returns all badges
func (r *BadgeRepository) List(ctx context.Context) ([]gorm.Badge, error) {
	var badges []gorm.Badge
	err := r.db.WithContext(ctx).Order("id").Find(&badges).Error
	return badges, err
}

// FindByID returns a badge by id, or nil when absent
func (r *BadgeRepository) FindByID(ctx context.Context, badgeID int64) (*gorm.Badge, error) {
	var badge gorm.Badge

	err := r.db.WithContext(ctx).First(&badge, badgeID).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &badge, nil
}

// Create inserts a new badge
func (r *BadgeRepository) Create(ctx context.Context, badge *gorm.Badge) error {
	return r.db.WithContext(ctx).Create(badge).Error
}

// Update rewrites the mutable badge fields
func (r *BadgeRepository) Update(ctx context.Context, badge *gorm.Badge) error {
	return r.db.WithContext(ctx).
		Model(&gorm.Badge{}).
		Where("id = ?", badge.ID).
		Updates(map[string]interface{}{
			"name":        badge.Name,
			"description": badge.Description,
			"icon_url":    badge.IconURL,
		}).Error
}

// Delete removes a badge and its join rows
func (r *BadgeRepository) Delete(ctx context.Context, badgeID int64) error {
	if err := r.db.WithContext(ctx).
		Where("badge_id = ?", badgeID).
		Delete(&gorm.TourBadge{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).
		Where("badge_id = ?", badgeID).
		Delete(&gorm.UserBadge{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&gorm.Badge{}, badgeID).Error
}

// LinkTourBadge associates a badge with a tour
func (r *BadgeRepository) LinkTourBadge(ctx context.Context, tourID, badgeID int64) error {
	return r.db.WithContext(ctx).Create(&gorm.TourBadge{TourID: tourID, BadgeID: badgeID}).Error
}

// UnlinkTourBadge removes a tour-badge association
func (r *BadgeRepository) UnlinkTourBadge(ctx context.Context, tourID, badgeID int64) error {
	return r.db.WithContext(ctx).
		Where("tour_id = ? AND badge_id = ?", tourID, badgeID).
		Delete(&gorm.TourBadge{}).Error
}

// RecordTourCompletion inserts a user_tours row if none exists yet
func (r *BadgeRepository) RecordTourCompletion(ctx context.Context, userID string, tourID int64) error {
	var existing gorm.UserTour
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND tour_id = ?", userID, tourID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gormlib.ErrRecordNotFound {
		return err
	}
	return r.db.WithContext(ctx).Create(&gorm.UserTour{UserID: userID, TourID: tourID}).Error
}
