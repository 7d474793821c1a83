// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope wraps successful responses of the /api/fhe and /api/keys
// endpoints.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// OperationsResponse lists journal entries, newest first.
type OperationsResponse struct {
	Operations []Operation `json:"operations"`
	Length     int         `json:"length"`
}
