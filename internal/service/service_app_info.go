package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-fhevm/internal/config"
)

// appInfoService reports the version the server was started with.
type appInfoService struct {
	version string
}

func NewAppInfoService(cfg config.App) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	return appInfoService{version: version}, nil
}

func (s appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
