// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] is usable before
// the server starts.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.FHEVM.ClientConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFHEVMConfigs, err)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.RateLimitRequests < 0 ||
		(cfg.Server.RateLimitRequests > 0 && cfg.Server.RateLimitWindow <= 0) {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey != "" && cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.CleanupInterval <= 0 || cfg.Workers.JournalRetention <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if err := cfg.FHEVM.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFHEVMConfigs, err)
	}

	return nil
}
