package services

import (
	"context"
	"errors"

	gormlib "gorm.io/gorm"

	"vattours/server/internal/common"
	"vattours/server/internal/constants"
	"vattours/server/internal/db/repositories"
	"vattours/server/internal/logging"
	"vattours/server/internal/models/dtos"
	gormModels "vattours/server/internal/models/gorm"
)

// UserService maps identity-provider profiles onto local users and serves
// profile read models
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// EnsureUser upserts the local user for a provider-verified profile.
// First sign-in creates the row with the default role.
func (s *UserService) EnsureUser(ctx context.Context, req *dtos.SessionRequest) (*gormModels.User, error) {
	if req.ExternalID == "" {
		return nil, common.NewInvalidInput("external_id", "external_id is required")
	}
	if req.Email == "" {
		return nil, common.NewInvalidInput("email", "email is required")
	}

	user, err := s.userRepo.FindByExternalID(ctx, req.ExternalID)
	if err != nil {
		return nil, common.NewInternal(err)
	}

	if user == nil {
		user = &gormModels.User{
			ExternalID: req.ExternalID,
			Name:       req.Name,
			Email:      req.Email,
			AvatarURL:  req.AvatarURL,
			Role:       constants.RoleUser,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, gormlib.ErrDuplicatedKey) {
				return nil, common.NewConflict(constants.MsgEmailTaken)
			}
			return nil, common.NewInternal(err)
		}
		logging.Info("User created", "user_id", user.ID, "external_id", user.ExternalID)
		return user, nil
	}

	// Refresh provider-sourced fields on every sign-in. The email can collide
	// with a different account when the provider reassigns an address.
	user.Name = req.Name
	user.Email = req.Email
	user.AvatarURL = req.AvatarURL
	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, gormlib.ErrDuplicatedKey) {
			return nil, common.NewConflict(constants.MsgEmailTaken)
		}
		return nil, common.NewInternal(err)
	}

	return user, nil
}

// GetProfile returns the user's profile with badges and completed tours
func (s *UserService) GetProfile(ctx context.Context, userID string) (*dtos.UserProfile, error) {
	user, err := s.userRepo.FindWithAwards(ctx, userID)
	if err != nil {
		return nil, common.NewInternal(err)
	}
	if user == nil {
		return nil, common.NewNotFound("user", userID)
	}

	profile := &dtos.UserProfile{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		AvatarURL:      user.AvatarURL,
		Role:           user.Role.String(),
		Badges:         make([]dtos.BadgeResponse, 0, len(user.Badges)),
		CompletedTours: make([]dtos.CompletedTour, 0, len(user.Tours)),
	}

	for _, ub := range user.Badges {
		awardedAt := ub.AwardedAt
		profile.Badges = append(profile.Badges, dtos.BadgeResponse{
			ID:          ub.Badge.ID,
			Name:        ub.Badge.Name,
			Description: ub.Badge.Description,
			IconURL:     ub.Badge.IconURL,
			AwardedAt:   &awardedAt,
		})
	}

	for _, ut := range user.Tours {
		profile.CompletedTours = append(profile.CompletedTours, dtos.CompletedTour{
			TourID:      ut.TourID,
			Title:       ut.Tour.Title,
			CompletedAt: ut.CompletedAt,
		})
	}

	return profile, nil
}

// SetRole changes a user's role after validating the target value
func (s *UserService) SetRole(ctx context.Context, userID string, roleName string) error {
	role, err := constants.ParseRole(roleName)
	if err != nil {
		return common.NewInvalidInput("role", "unknown role: "+roleName)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return common.NewInternal(err)
	}
	if user == nil {
		return common.NewNotFound("user", userID)
	}

	if err := s.userRepo.SetRole(ctx, userID, role); err != nil {
		return common.NewInternal(err)
	}

	logging.Info("User role changed", "user_id", userID, "role", role.String())
	return nil
}
