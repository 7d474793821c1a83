package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fhevm/internal/config"
	"github.com/MKhiriev/go-fhevm/internal/logger"
	"github.com/MKhiriev/go-fhevm/internal/mock"
	"github.com/MKhiriev/go-fhevm/internal/store"
)

func TestNewServices(t *testing.T) {
	client := mock.NewMockFHEClient(gomock.NewController(t))
	storages := &store.Storages{OperationRepository: store.NewMemoryOperationRepository(10)}
	cfg := config.StructuredConfig{App: config.App{Version: "1.0.0"}}

	services, err := NewServices(client, storages, cfg, logger.Nop())
	require.NoError(t, err)

	assert.IsType(t, &FHEValidationService{}, services.FHEService)
	assert.False(t, services.AuthService.Enabled())
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))
}

func TestNewServices_Errors(t *testing.T) {
	client := mock.NewMockFHEClient(gomock.NewController(t))

	_, err := NewServices(client, &store.Storages{}, config.StructuredConfig{App: config.App{Version: "1"}}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoOperationRepository)

	storages := &store.Storages{OperationRepository: store.NewMemoryOperationRepository(1)}
	_, err = NewServices(client, storages, config.StructuredConfig{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
