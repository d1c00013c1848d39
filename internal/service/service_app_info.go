package service

import (
	"context"

	"github.com/MKhiriev/munch-accounts/internal/config"
	"github.com/MKhiriev/munch-accounts/internal/logger"
)

// appInfoService reports build metadata of the running server.
type appInfoService struct {
	appVersion string
}

// NewAppInfoService fails with ErrVersionIsNotSpecified when cfg carries no
// version; the server fills it from build info before wiring services.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		logger.Error().Str("func", "NewAppInfoService").Msg("app version is not specified")
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{appVersion: cfg.Version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.appVersion
}
