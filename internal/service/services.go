package service

import (
	"fmt"

	"github.com/MKhiriev/go-linkup/internal/config"
	"github.com/MKhiriev/go-linkup/internal/logger"
	"github.com/MKhiriev/go-linkup/internal/media"
	"github.com/MKhiriev/go-linkup/internal/store"
	"github.com/MKhiriev/go-linkup/internal/utils"
	"github.com/MKhiriev/go-linkup/internal/validators"
)

type Services struct {
	CredentialService CredentialService
	TokenService      TokenService
	AuthService       AuthService
	ConnectionService ConnectionService
	ProfileService    ProfileService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, resolver media.Resolver, logger *logger.Logger) (*Services, error) {
	validator := validators.NewUserValidator()
	ids := utils.NewUUIDGenerator()

	tokenService, err := NewTokenService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	credentialService := NewCredentialService(storages.UserRepository, validator, ids, logger)

	return &Services{
		CredentialService: credentialService,
		TokenService:      tokenService,
		AuthService:       NewAuthService(credentialService, tokenService, resolver, logger),
		ConnectionService: NewConnectionService(storages.ConnectionRepository, storages.UserRepository, validator, resolver, logger),
		ProfileService:    NewProfileService(storages.UserRepository, validator, ids, resolver, logger),
		AppInfoService:    appInfoService,
	}, nil
}
