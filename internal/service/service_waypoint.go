package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/internal/store"
	"github.com/MKhiriev/go-autonav/internal/utils"
	"github.com/MKhiriev/go-autonav/internal/validators"
	"github.com/MKhiriev/go-autonav/models"
)

type waypointService struct {
	waypointRepository store.WaypointRepository
	validator          validators.Validator
	ids                IDGenerator

	logger *logger.Logger
}

func NewWaypointService(waypointRepository store.WaypointRepository, validator validators.Validator, ids IDGenerator, logger *logger.Logger) WaypointService {
	return &waypointService{
		waypointRepository: waypointRepository,
		validator:          validator,
		ids:                ids,
		logger:             logger,
	}
}

func (s *waypointService) List(ctx context.Context) ([]models.Waypoint, error) {
	waypoints, err := s.waypointRepository.List(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return waypoints, nil
}

func (s *waypointService) Get(ctx context.Context, id string) (models.Waypoint, error) {
	if !utils.IsValidUUID(id) {
		return models.Waypoint{}, ErrInvalidID
	}

	waypoint, err := s.waypointRepository.FindByID(ctx, id)
	if err != nil {
		return models.Waypoint{}, storeError(err)
	}
	return waypoint, nil
}

func (s *waypointService) Create(ctx context.Context, request models.WaypointRequest) (models.Waypoint, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Waypoint{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	waypoint, err := s.waypointRepository.Create(ctx, models.Waypoint{
		ID:   s.ids.Generate(),
		Name: request.Name,
		PosX: request.PosX,
		PosY: request.PosY,
	})
	if err != nil {
		return models.Waypoint{}, storeError(err)
	}
	return waypoint, nil
}

func (s *waypointService) Update(ctx context.Context, id string, request models.WaypointRequest) (models.Waypoint, error) {
	if !utils.IsValidUUID(id) {
		return models.Waypoint{}, ErrInvalidID
	}
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Waypoint{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	waypoint, err := s.waypointRepository.Update(ctx, models.Waypoint{ID: id, Name: request.Name})
	if err != nil {
		return models.Waypoint{}, storeError(err)
	}
	return waypoint, nil
}

func (s *waypointService) UpdatePosition(ctx context.Context, id string, request models.PositionRequest) (models.Waypoint, error) {
	if !utils.IsValidUUID(id) {
		return models.Waypoint{}, ErrInvalidID
	}

	waypoint, err := s.waypointRepository.UpdatePosition(ctx, id, request.PosX, request.PosY)
	if err != nil {
		return models.Waypoint{}, storeError(err)
	}
	return waypoint, nil
}

func (s *waypointService) Delete(ctx context.Context, id string) (models.Waypoint, error) {
	if !utils.IsValidUUID(id) {
		return models.Waypoint{}, ErrInvalidID
	}

	waypoint, err := s.waypointRepository.Delete(ctx, id)
	if err != nil {
		return models.Waypoint{}, storeError(err)
	}
	return waypoint, nil
}
