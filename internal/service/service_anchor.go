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

type anchorService struct {
	anchorRepository store.AnchorRepository
	validator        validators.Validator
	ids              IDGenerator

	logger *logger.Logger
}

func NewAnchorService(anchorRepository store.AnchorRepository, validator validators.Validator, ids IDGenerator, logger *logger.Logger) AnchorService {
	return &anchorService{
		anchorRepository: anchorRepository,
		validator:        validator,
		ids:              ids,
		logger:           logger,
	}
}

func (s *anchorService) List(ctx context.Context) ([]models.Anchor, error) {
	anchors, err := s.anchorRepository.List(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return anchors, nil
}

func (s *anchorService) Get(ctx context.Context, id string) (models.Anchor, error) {
	if !utils.IsValidUUID(id) {
		return models.Anchor{}, ErrInvalidID
	}

	anchor, err := s.anchorRepository.FindByID(ctx, id)
	if err != nil {
		return models.Anchor{}, storeError(err)
	}
	return anchor, nil
}

func (s *anchorService) Create(ctx context.Context, request models.AnchorRequest) (models.Anchor, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Anchor{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	anchor, err := s.anchorRepository.Create(ctx, models.Anchor{
		ID:      s.ids.Generate(),
		Name:    request.Name,
		Address: request.Address,
		Height:  request.Height,
		PosX:    request.PosX,
		PosY:    request.PosY,
	})
	if err != nil {
		return models.Anchor{}, storeError(err)
	}
	return anchor, nil
}

// Update changes name, address and height. Position is changed through
// UpdatePosition only.
func (s *anchorService) Update(ctx context.Context, id string, request models.AnchorRequest) (models.Anchor, error) {
	if !utils.IsValidUUID(id) {
		return models.Anchor{}, ErrInvalidID
	}
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Anchor{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	anchor, err := s.anchorRepository.Update(ctx, models.Anchor{
		ID:      id,
		Name:    request.Name,
		Address: request.Address,
		Height:  request.Height,
	})
	if err != nil {
		return models.Anchor{}, storeError(err)
	}
	return anchor, nil
}

func (s *anchorService) UpdatePosition(ctx context.Context, id string, request models.PositionRequest) (models.Anchor, error) {
	if !utils.IsValidUUID(id) {
		return models.Anchor{}, ErrInvalidID
	}

	anchor, err := s.anchorRepository.UpdatePosition(ctx, id, request.PosX, request.PosY)
	if err != nil {
		return models.Anchor{}, storeError(err)
	}
	return anchor, nil
}

func (s *anchorService) Delete(ctx context.Context, id string) (models.Anchor, error) {
	if !utils.IsValidUUID(id) {
		return models.Anchor{}, ErrInvalidID
	}

	anchor, err := s.anchorRepository.Delete(ctx, id)
	if err != nil {
		return models.Anchor{}, storeError(err)
	}
	return anchor, nil
}
