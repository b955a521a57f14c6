package http

import (
	"github.com/MKhiriev/go-autonav/internal/config"
	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/internal/service"
	"github.com/MKhiriev/go-autonav/internal/utils"
)

type Handler struct {
	services *service.Services

	// cookieName is the cookie POST /token mirrors the access token into.
	cookieName string

	// positionSigner enables the HMAC check on POST /position when non-nil.
	positionSigner *utils.BodySigner

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = defaultCookieName
	}

	h := &Handler{
		services:   services,
		cookieName: cookieName,
		logger:     logger,
	}
	if cfg.PositionSignKey != "" {
		h.positionSigner = utils.NewBodySigner([]byte(cfg.PositionSignKey))
	}

	return h
}
