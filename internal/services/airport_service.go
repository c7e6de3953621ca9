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

// AirportService handles airport CRUD with the leg-reference deletion guard
type AirportService struct {
	airportRepo *repositories.AirportRepository
	cache       common.CacheInterface
}

// NewAirportService creates a new AirportService with dependencies
func NewAirportService(airportRepo *repositories.AirportRepository, cache common.CacheInterface) *AirportService {
	return &AirportService{
		airportRepo: airportRepo,
		cache:       cache,
	}
}

// ListAirports returns all airports
func (s *AirportService) ListAirports(ctx context.Context) ([]gormModels.Airport, error) {
	airports, err := s.airportRepo.List(ctx)
	if err != nil {
		return nil, common.NewInternal(err)
	}
	return airports, nil
}

// GetAirport returns one airport by code
func (s *AirportService) GetAirport(ctx context.Context, code string) (*gormModels.Airport, error) {
	if err := validateAirportCode("code", strings.ToUpper(code)); err != nil {
		return nil, err
	}

	airport, err := s.airportRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, common.NewInternal(err)
	}
	if airport == nil {
		return nil, common.NewNotFound("airport", strings.ToUpper(code))
	}
	return airport, nil
}

// CreateAirport validates and inserts a new airport
func (s *AirportService) CreateAirport(ctx context.Context, req *dtos.AirportUpsertRequest) (*gormModels.Airport, error) {
	if err := s.validateUpsert(req); err != nil {
		return nil, err
	}

	existing, err := s.airportRepo.FindByCode(ctx, req.Code)
	if err != nil {
		return nil, common.NewInternal(err)
	}
	if existing != nil {
		return nil, common.NewConflict("airport already exists: " + req.Code)
	}

	airport := &gormModels.Airport{
		Code:    req.Code,
		Name:    req.Name,
		Country: req.Country,
	}
	if err := s.airportRepo.Create(ctx, airport); err != nil {
		return nil, common.NewInternal(err)
	}

	s.cache.Delete(string(constants.CachePrefixAirports))
	logging.Info("Airport created", "code", airport.Code)
	return airport, nil
}

// UpdateAirport rewrites name and country; the code is immutable
func (s *AirportService) UpdateAirport(ctx context.Context, code string, req *dtos.AirportUpsertRequest) (*gormModels.Airport, error) {
	if err := s.validateUpsert(req); err != nil {
		return nil, err
	}
	if req.Code != code {
		return nil, common.NewInvalidInput("code", "airport code cannot be changed")
	}

	existing, err := s.airportRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, common.NewInternal(err)
	}
	if existing == nil {
		return nil, common.NewNotFound("airport", code)
	}

	existing.Name = req.Name
	existing.Country = req.Country
	if err := s.airportRepo.Update(ctx, existing); err != nil {
		return nil, common.NewInternal(err)
	}

	s.cache.Delete(string(constants.CachePrefixAirports))
	return existing, nil
}

// DeleteAirport removes an airport unless a leg references it
func (s *AirportService) DeleteAirport(ctx context.Context, code string) error {
	existing, err := s.airportRepo.FindByCode(ctx, code)
	if err != nil {
		return common.NewInternal(err)
	}
	if existing == nil {
		return common.NewNotFound("airport", code)
	}

	refs, err := s.airportRepo.CountLegReferences(ctx, existing.Code)
	if err != nil {
		return common.NewInternal(err)
	}
	if refs > 0 {
		return common.NewConflict(constants.MsgAirportReferenced)
	}

	if err := s.airportRepo.Delete(ctx, existing.Code); err != nil {
		return common.NewInternal(err)
	}

	s.cache.Delete(string(constants.CachePrefixAirports))
	logging.Info("Airport deleted", "code", existing.Code)
	return nil
}

func (s *AirportService) validateUpsert(req *dtos.AirportUpsertRequest) error {
	if err := validateAirportCode("code", req.Code); err != nil {
		return err
	}
	if strings.TrimSpace(req.Name) == "" {
		return common.NewInvalidInput("name", "name is required")
	}
	if !constants.IsValidCountry(req.Country) {
		return common.NewInvalidInput("country", "unknown country code")
	}
	return nil
}
