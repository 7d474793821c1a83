// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-fhevm/internal/fhevm"
)

// operation holds the single-flight guard and observable state shared by
// Encryptor and Decryptor.
type operation[T any] struct {
	kind     string
	inFlight atomic.Bool

	mu      sync.RWMutex
	err     error
	last    T
	hasLast bool
}

func (o *operation[T]) run(ctx context.Context, s *Session, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if !s.IsInitialized() {
		return zero, fhevm.ErrNotInitialized
	}
	if !o.inFlight.CompareAndSwap(false, true) {
		return zero, &ConcurrentOperationError{Op: o.kind}
	}
	defer o.inFlight.Store(false)

	o.setErr(nil)

	res, err := fn(ctx)
	if err != nil {
		o.setErr(err)
		s.log.Error().Err(err).Str("op", o.kind).Msg("operation failed")
		return zero, err
	}

	o.mu.Lock()
	o.last, o.hasLast = res, true
	o.mu.Unlock()
	return res, nil
}

func (o *operation[T]) setErr(err error) {
	o.mu.Lock()
	o.err = err
	o.mu.Unlock()
}

func (o *operation[T]) running() bool {
	return o.inFlight.Load()
}

func (o *operation[T]) lastErr() error {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.err
}

func (o *operation[T]) lastResult() (T, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.last, o.hasLast
}

// Encryptor runs encryptions through the session engine.
type Encryptor struct {
	s  *Session
	op operation[fhevm.EncryptedValue]
}

// Encrypt fails with fhevm.ErrNotInitialized before the client is ready
// and with ErrConcurrentOperation while another encryption runs.
func (e *Encryptor) Encrypt(ctx context.Context, value uint64) (fhevm.EncryptedValue, error) {
	return e.op.run(ctx, e.s, func(ctx context.Context) (fhevm.EncryptedValue, error) {
		return e.s.engine.Encrypt(ctx, value)
	})
}

func (e *Encryptor) IsEncrypting() bool { return e.op.running() }

// Err returns the error of the last encryption until ResetError or the
// next Encrypt.
func (e *Encryptor) Err() error { return e.op.lastErr() }

func (e *Encryptor) Last() (fhevm.EncryptedValue, bool) { return e.op.lastResult() }

func (e *Encryptor) ResetError() { e.op.setErr(nil) }

// Decryptor runs decryptions through the session engine.
type Decryptor struct {
	s  *Session
	op operation[fhevm.DecryptionResult]
}

// Decrypt uses public decryption when public is true. A user decryption
// carries its proof in the result.
func (d *Decryptor) Decrypt(ctx context.Context, ev fhevm.EncryptedValue, public bool) (fhevm.DecryptionResult, error) {
	return d.op.run(ctx, d.s, func(ctx context.Context) (fhevm.DecryptionResult, error) {
		return d.s.engine.Decrypt(ctx, ev, public)
	})
}

func (d *Decryptor) IsDecrypting() bool { return d.op.running() }

func (d *Decryptor) Err() error { return d.op.lastErr() }

func (d *Decryptor) Last() (fhevm.DecryptionResult, bool) { return d.op.lastResult() }

func (d *Decryptor) ResetError() { d.op.setErr(nil) }
