package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidFHEVMConfigs indicates an unknown network or a malformed
	// contract or ACL address.
	ErrInvalidFHEVMConfigs = errors.New("invalid fhevm configuration")
	// ErrInvalidServerConfigs indicates a missing listen address, a
	// non-positive timeout or an inconsistent rate limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid CLI adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates inconsistent token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive job interval or
	// retention.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
