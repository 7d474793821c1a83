package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-fhevm/internal/fhevm"
)

// ClientAdapter holds network settings used by the CLI transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server address used by the CLI.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// Token is an optional bearer JWT.
	Token string
}

// ClientConfig is the CLI configuration assembled from [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the server address and timeouts.
	Adapter ClientAdapter
	// FHEVM configures the in-process client of --local commands.
	FHEVM fhevm.Config
	// InitTimeout bounds initialization of the in-process client.
	InitTimeout time.Duration
	// Version is reported by "version".
	Version string
	// App carries the token settings used by "token" to mint bearer JWTs
	// for a server that has authentication enabled.
	App App
}

// GetClientConfig builds and validates the CLI config view. Flags are owned
// by the CLI itself, so only env, the JSON file and defaults are read.
// jsonPath, when set, takes precedence over the CONFIG variable.
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON(jsonPath).
		withDefaults().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		FHEVM:       cfg.FHEVM.ClientConfig(),
		InitTimeout: cfg.FHEVM.InitTimeout,
		Version:     cfg.App.Version,
		App:         cfg.App,
	}

	return clientCfg, clientCfg.validate()
}
