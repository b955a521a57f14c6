package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/internal/store"
	"github.com/MKhiriev/go-autonav/internal/utils"
	"github.com/MKhiriev/go-autonav/internal/validators"
	"github.com/MKhiriev/go-autonav/models"
)

type tagService struct {
	tagRepository store.TagRepository
	validator     validators.Validator
	ids           IDGenerator
	now           func() time.Time

	logger *logger.Logger
}

func NewTagService(tagRepository store.TagRepository, validator validators.Validator, ids IDGenerator, logger *logger.Logger) TagService {
	return &tagService{
		tagRepository: tagRepository,
		validator:     validator,
		ids:           ids,
		now:           time.Now,
		logger:        logger,
	}
}

func (s *tagService) List(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.tagRepository.List(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return tags, nil
}

func (s *tagService) Get(ctx context.Context, id string) (models.Tag, error) {
	if !utils.IsValidUUID(id) {
		return models.Tag{}, ErrInvalidID
	}

	tag, err := s.tagRepository.FindByID(ctx, id)
	if err != nil {
		return models.Tag{}, storeError(err)
	}
	return tag, nil
}

func (s *tagService) Create(ctx context.Context, request models.TagRequest) (models.Tag, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Tag{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	tag, err := s.tagRepository.Create(ctx, models.Tag{
		ID:      s.ids.Generate(),
		Name:    request.Name,
		Address: request.Address,
	})
	if err != nil {
		return models.Tag{}, storeError(err)
	}
	return tag, nil
}

func (s *tagService) Update(ctx context.Context, id string, request models.TagRequest) (models.Tag, error) {
	if !utils.IsValidUUID(id) {
		return models.Tag{}, ErrInvalidID
	}
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Tag{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	tag, err := s.tagRepository.Update(ctx, models.Tag{ID: id, Name: request.Name, Address: request.Address})
	if err != nil {
		return models.Tag{}, storeError(err)
	}
	return tag, nil
}

func (s *tagService) Delete(ctx context.Context, id string) (models.Tag, error) {
	if !utils.IsValidUUID(id) {
		return models.Tag{}, ErrInvalidID
	}

	tag, err := s.tagRepository.Delete(ctx, id)
	if err != nil {
		return models.Tag{}, storeError(err)
	}
	return tag, nil
}

// ReportPosition stamps the report with the server clock; the hardware clock
// is not trusted.
func (s *tagService) ReportPosition(ctx context.Context, report models.TagPositionReport) (models.Tag, error) {
	if err := s.validator.Validate(ctx, report); err != nil {
		return models.Tag{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	tag, err := s.tagRepository.ReportPosition(ctx, report.Address, report.PosX, report.PosY, s.now())
	if err != nil {
		return models.Tag{}, storeError(err)
	}

	logger.FromContext(ctx).Debug().
		Str("tag_id", tag.ID).
		Float64("pos_x", report.PosX).
		Float64("pos_y", report.PosY).
		Msg("tag position reported")
	return tag, nil
}
