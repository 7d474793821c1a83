package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrAuthDisabled            = errors.New("token authentication is disabled")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNoOperationRepository is returned by NewOperationService when no
	// repository is given.
	ErrNoOperationRepository = errors.New("operation repository is not specified")
)
