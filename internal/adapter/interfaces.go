// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the CLI to reach a running
// go-fhevm server.
//
// [ServerAdapter] decouples the commands from the protocol. The package ships
// an HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are mapped to the sentinel errors of errors.go by
// mapHTTPError, so callers can use [errors.Is] (e.g. [ErrNotReady] for 503,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fhevm/internal/fhevm"
	"github.com/MKhiriev/go-fhevm/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client side of the server HTTP API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every following request.
	SetToken(token string)

	// Token returns the stored bearer token, or "".
	Token() string

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)

	// Status returns the lifecycle state of the server client.
	Status(ctx context.Context) (models.ClientStatus, error)

	// Info returns the server capabilities.
	Info(ctx context.Context) (models.ClientInfo, error)

	// Keys returns the public key material of the configured network.
	Keys(ctx context.Context) (models.KeysInfo, error)

	Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptResult, error)

	// Decrypt sends data and signature of ev. public selects public
	// decryption.
	Decrypt(ctx context.Context, ev fhevm.EncryptedValue, public bool) (models.DecryptResult, error)

	BatchEncrypt(ctx context.Context, values []uint64) (models.BatchEncryptResult, error)

	Compute(ctx context.Context, req models.ComputeRequest) (models.ComputeResult, error)

	// Verify asks the server which address signed the encryption of a value.
	Verify(ctx context.Context, req models.VerifyRequest) (models.VerifyResult, error)

	// Operations lists journal entries matching filter, newest first.
	Operations(ctx context.Context, filter models.OperationFilter) (models.OperationsResponse, error)
}
