package service

import (
	"fmt"

	"github.com/MKhiriev/go-autonav/internal/config"
	"github.com/MKhiriev/go-autonav/internal/crypto"
	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/internal/store"
	"github.com/MKhiriev/go-autonav/internal/utils"
	"github.com/MKhiriev/go-autonav/internal/validators"
	"github.com/MKhiriev/go-autonav/models"
)

type Services struct {
	AuthService     AuthService
	GuardService    GuardService
	UserService     UserService
	TagService      TagService
	AnchorService   AnchorService
	WaypointService WaypointService
	AppInfoService  AppInfoService
}

// NewServices builds the password hasher and token codec from cfg once and
// shares them between all services.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	hasher := crypto.NewPasswordHasher(cfg.App.PasswordHash)

	codec, err := crypto.NewTokenCodec(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating token codec: %w", err)
	}

	authService, err := NewAuthService(storages.UserRepository, hasher, codec, cfg.App.TokenTTL(), logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewRequestValidator()
	ids := utils.NewUUIDGenerator()

	return &Services{
		AuthService:     authService,
		GuardService:    NewGuardService(storages.UserRepository, codec, logger),
		UserService:     NewUserService(storages.UserRepository, hasher, validator, ids, logger),
		TagService:      NewTagService(storages.TagRepository, validator, ids, logger),
		AnchorService:   NewAnchorService(storages.AnchorRepository, validator, ids, logger),
		WaypointService: NewWaypointService(storages.WaypointRepository, validator, ids, logger),
		AppInfoService:  appInfoService,
	}, nil
}
