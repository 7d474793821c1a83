// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the request decoding and auth middleware.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when
	// authentication is enabled and the request has no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrUnknownOperation is returned by POST /api/fhe for an operation other
	// than encrypt or status.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrInvalidLimit is returned for a non-numeric ?limit= parameter.
	ErrInvalidLimit = errors.New("invalid limit")
)
