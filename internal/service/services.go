package service

import (
	"github.com/MKhiriev/go-fhevm/internal/config"
	"github.com/MKhiriev/go-fhevm/internal/logger"
	"github.com/MKhiriev/go-fhevm/internal/store"
)

type Services struct {
	FHEService       FHEService
	OperationService OperationService
	AuthService      AuthService
	AppInfoService   AppInfoService
}

// NewServices wires the service layer over one FHEVM client and the journal
// storages.
func NewServices(client FHEClient, storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	operations, err := NewOperationService(storages.OperationRepository, logger)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App)
	if err != nil {
		return nil, err
	}

	fhe := NewFHEValidationService().Wrap(NewFHEService(client, operations, cfg.App, logger))

	return &Services{
		FHEService:       fhe,
		OperationService: operations,
		AuthService:      NewAuthService(cfg.App, logger),
		AppInfoService:   appInfo,
	}, nil
}
