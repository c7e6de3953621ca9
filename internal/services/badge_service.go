package services

import (
	"context"
	"strings"

	"vattours/server/internal/common"
	"vattours/server/internal/constants"
	"vattours/server/internal/db/repositories"
	"vattours/server/internal/logging"
	"vattours/server/internal/models/dtos"
	gormModels "vattours/server/internal/models/gorm"
)

// BadgeService handles badge CRUD and tour-badge links
type BadgeService struct {
	badgeRepo *repositories.BadgeRepository
	tourRepo  *repositories.TourRepository
	cache     common.CacheInterface
}

// NewBadgeService creates a new BadgeService with dependencies
func NewBadgeService(
	badgeRepo *repositories.BadgeRepository,
	tourRepo *repositories.TourRepository,
	cache common.CacheInterface,
) *BadgeService {
	return &BadgeService{
		badgeRepo: badgeRepo,
		tourRepo:  tourRepo,
		cache:     cache,
	}
}

// ListBadges returns all badges
func (s *BadgeService) ListBadges(ctx context.Context) ([]gormModels.Badge, error) {
	badges, err := s.badgeRepo.List(ctx)
	if err != nil {
		return nil, common.NewInternal(err)
	}
	return badges, nil
}

// CreateBadge validates and inserts a new badge
func (s *BadgeService) CreateBadge(ctx context.Context, req *dtos.BadgeUpsertRequest) (*gormModels.Badge, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, common.NewInvalidInput("name", "name is required")
	}

	badge := &gormModels.Badge{
		Name:        req.Name,
		Description: req.Description,
		IconURL:     req.IconURL,
	}
	if err := s.badgeRepo.Create(ctx, badge); err != nil {
		return nil, common.NewInternal(err)
	}

	s.cache.Delete(string(constants.CachePrefixBadges))
	logging.Info("Badge created", "badge_id", badge.ID, "name", badge.Name)
	return badge, nil
}

// UpdateBadge rewrites the badge fields
func (s *BadgeService) UpdateBadge(ctx context.Context, badgeID int64, req *dtos.BadgeUpsertRequest) (*gormModels.Badge, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, common.NewInvalidInput("name", "name is required")
	}

	existing, err := s.badgeRepo.FindByID(ctx, badgeID)
	if err != nil {
		return nil, common.NewInternal(err)
	}
	if existing == nil {
		return nil, common.NewNotFound("badge", badgeID)
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.IconURL = req.IconURL
	if err := s.badgeRepo.Update(ctx, existing); err != nil {
		return nil, common.NewInternal(err)
	}

	s.cache.Delete(string(constants.CachePrefixBadges))
	return existing, nil
}

// DeleteBadge removes a badge and its join rows
func (s *BadgeService) DeleteBadge(ctx context.Context, badgeID int64) error {
	existing, err := s.badgeRepo.FindByID(ctx, badgeID)
	if err != nil {
		return common.NewInternal(err)
	}
	if existing == nil {
		return common.NewNotFound("badge", badgeID)
	}

	if err := s.badgeRepo.Delete(ctx, badgeID); err != nil {
		return common.NewInternal(err)
	}

	s.cache.Delete(string(constants.CachePrefixBadges))
	logging.Info("Badge deleted", "badge_id", badgeID)
	return nil
}

// LinkTourBadge associates a badge with a tour after checking both exist
func (s *BadgeService) LinkTourBadge(ctx context.Context, tourID, badgeID int64) error {
	tour, err := s.tourRepo.FindByID(ctx, tourID)
	if err != nil {
		return common.NewInternal(err)
	}
	if tour == nil {
		return common.NewNotFound("tour", tourID)
	}

	badge, err := s.badgeRepo.FindByID(ctx, badgeID)
	if err != nil {
		return common.NewInternal(err)
	}
	if badge == nil {
		return common.NewNotFound("badge", badgeID)
	}

	if err := s.badgeRepo.LinkTourBadge(ctx, tourID, badgeID); err != nil {
		return common.NewInternal(err)
	}
	return nil
}

// UnlinkTourBadge removes a tour-badge association
func (s *BadgeService) UnlinkTourBadge(ctx context.Context, tourID, badgeID int64) error {
	if err := s.badgeRepo.UnlinkTourBadge(ctx, tourID, badgeID); err != nil {
		return common.NewInternal(err)
	}
	return nil
}
