// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the FHE endpoints.
//
// Core concepts:
//   - Validator: generic interface to validate request models, optionally
//     scoped to named fields.
//   - Value helpers (ParseEncryptionValue, ParseValues, ValidateNetwork,
//     ValidateContractAddress, SanitizeInput) shared by handlers, services
//     and the CLI.
//
// Every rejection is a *ValidationError, which matches ErrValidation under
// errors.Is.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
