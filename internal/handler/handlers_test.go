package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fhevm/internal/config"
	"github.com/MKhiriev/go-fhevm/internal/fhevm"
	"github.com/MKhiriev/go-fhevm/internal/logger"
	"github.com/MKhiriev/go-fhevm/internal/security"
	"github.com/MKhiriev/go-fhevm/internal/service"
)

func TestNewHandlers(t *testing.T) {
	client := fhevm.New(fhevm.Config{Network: fhevm.NetworkSepolia})
	limiter := security.NewRateLimiter(0, 0)

	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{name: "both", cfg: config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, wantHTTP: true, wantGRPC: true},
		{name: "http only", cfg: config.Server{HTTPAddress: ":8080"}, wantHTTP: true},
		{name: "grpc only", cfg: config.Server{GRPCAddress: ":9090"}, wantGRPC: true},
		{name: "none", cfg: config.Server{}, wantErr: errNoListenAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(&service.Services{}, client, limiter, tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				assert.Nil(t, h)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
			if h.GRPC != nil {
				h.GRPC.Close()
			}
		})
	}
}
