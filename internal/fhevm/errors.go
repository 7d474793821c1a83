// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fhevm

import "errors"

var (
	// ErrNotInitialized is returned by operations invoked before the client
	// reached the ready state.
	ErrNotInitialized = errors.New("fhevm client not initialized")
	// ErrInitialization marks every error produced by a failed Init.
	ErrInitialization = errors.New("fhevm initialization failed")
	// ErrClientFailed is returned by Init on a client that already failed.
	ErrClientFailed = errors.New("fhevm client is in error state")
	// ErrNoProvider is returned when neither a provider nor a provider URL
	// is available.
	ErrNoProvider = errors.New("no provider available")
	// ErrNoSigner is returned by Encrypt when the client has no signer.
	ErrNoSigner = errors.New("no signer available")
	// ErrMalformedCiphertext is returned by decryption when the data does
	// not hold a value produced by Encrypt.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
	// ErrInvalidSignature is returned when a signature cannot be recovered.
	ErrInvalidSignature = errors.New("invalid signature")

	ErrUnknownNetwork        = errors.New("unknown network")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrUnknownEncryptionType = errors.New("unknown encryption type")
	ErrValueOutOfTypeRange   = errors.New("value out of range for encryption type")
	ErrInvalidSignerKey      = errors.New("invalid signer key")
)

// InitializationError wraps the cause of a failed Init. It matches both
// ErrInitialization and the cause under errors.Is.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return ErrInitialization.Error() + ": " + e.Err.Error()
}

func (e *InitializationError) Unwrap() []error {
	return []error{ErrInitialization, e.Err}
}
