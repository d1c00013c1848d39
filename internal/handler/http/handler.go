package http

import (
	"time"

	"github.com/MKhiriev/munch-accounts/internal/config"
	"github.com/MKhiriev/munch-accounts/internal/logger"
	"github.com/MKhiriev/munch-accounts/internal/service"
)

type Handler struct {
	services *service.Services

	// legacyStatusCodes answers every error with 200, as older clients
	// expect.
	legacyStatusCodes bool
	requestTimeout    time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().
		Bool("legacy_status_codes", cfg.LegacyStatusCodes).
		Dur("request_timeout", cfg.RequestTimeout).
		Msg("http handler created")
	return &Handler{
		services:          services,
		legacyStatusCodes: cfg.LegacyStatusCodes,
		requestTimeout:    cfg.RequestTimeout,
		logger:            logger,
	}
}
