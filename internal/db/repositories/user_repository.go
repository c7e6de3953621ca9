package repositories

import (
	"context"
	"fmt"

	"vattours/server/internal/constants"
	"vattours/server/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// UserRepository handles user table operations
type UserRepository struct {
	db *gormlib.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gormlib.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID returns a user by primary key, or nil when absent
func (r *UserRepository) FindByID(ctx context.Context, userID string) (*gorm.User, error) {
	var user gorm.User

	err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

// FindByExternalID returns a user by identity-provider id, or nil when absent
func (r *UserRepository) FindByExternalID(ctx context.Context, externalID string) (*gorm.User, error) {
	var user gorm.User

	err := r.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		First(&user).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

// FindWithAwards returns a user with badges and completed tours preloaded
func (r *UserRepository) FindWithAwards(ctx context.Context, userID string) (*gorm.User, error) {
	var user gorm.User

	err := r.db.WithContext(ctx).
		Preload("Badges.Badge").
		Preload("Tours.Tour").
		Where("id = ?", userID).
		First(&user).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with awards: %w", err)
	}

	return &user, nil
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *gorm.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// UpdateProfile refreshes the provider-sourced profile fields
func (r *UserRepository) UpdateProfile(ctx context.Context, user *gorm.User) error {
	return r.db.WithContext(ctx).
		Model(&gorm.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"name":       user.Name,
			"email":      user.Email,
			"avatar_url": user.AvatarURL,
		}).Error
}

// SetRole changes a user's role
func (r *UserRepository) SetRole(ctx context.Context, userID string, role constants.Role) error {
	return r.db.WithContext(ctx).
		Model(&gorm.User{}).
		Where("id = ?", userID).
		Update("role", role).Error
}
