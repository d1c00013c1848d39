package service

import (
	"github.com/MKhiriev/munch-accounts/internal/config"
	"github.com/MKhiriev/munch-accounts/internal/crypto"
	"github.com/MKhiriev/munch-accounts/internal/logger"
	"github.com/MKhiriev/munch-accounts/internal/store"
)

type Services struct {
	AccountService AccountService
	AppInfoService AppInfoService
}

// NewServices wires the account service, wrapped with call logging, and the
// app info service.
func NewServices(storages *store.Storages, hasher crypto.CredentialHasher, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	accountService := NewAccountLoggingService().
		Wrap(NewAccountService(storages.UserRepository, hasher, logger))

	return &Services{
		AccountService: accountService,
		AppInfoService: appInfoService,
	}, nil
}
