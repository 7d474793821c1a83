// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// OperationKind names an audited operation.
type OperationKind string

const (
	OperationEncrypt      OperationKind = "encrypt"
	OperationDecrypt      OperationKind = "decrypt"
	OperationBatchEncrypt OperationKind = "batch_encrypt"
	OperationCompute      OperationKind = "compute"
)

// Operation is one entry of the operation journal. It never carries
// plaintext values.
type Operation struct {
	// ID is a time-ordered UUIDv7.
	ID uuid.UUID `json:"id"`

	Kind OperationKind `json:"kind"`

	// Actor is the JWT subject of the caller, or "anonymous".
	Actor string `json:"actor"`

	// TraceID links the entry to the request logs.
	TraceID string `json:"trace_id,omitempty"`

	// Signature of the produced ciphertext, or of the decrypted one.
	Signature string `json:"signature,omitempty"`

	// Count is the number of values processed (batch size for batches).
	Count int `json:"count"`

	CreatedAt time.Time `json:"created_at"`
}

// OperationFilter narrows a journal listing.
type OperationFilter struct {
	Kind  OperationKind
	Actor string
	Limit int
}
