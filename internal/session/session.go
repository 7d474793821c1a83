// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session adapts an fhevm client to interactive callers. A Session
// mirrors the client status through a subscription, and its Encryptor and
// Decryptor expose loading, error and last-result state while allowing at
// most one operation of each kind at a time.
package session

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-fhevm/internal/fhevm"
	"github.com/MKhiriev/go-fhevm/internal/logger"
)

// Engine is the client contract a Session drives. *fhevm.Client
// implements it.
//
//go:generate mockgen -source=session.go -destination=../mock/session_engine_mock.go -package=mock
type Engine interface {
	Subscribe(fn fhevm.StatusFunc) (cancel func())
	Encrypt(ctx context.Context, value uint64) (fhevm.EncryptedValue, error)
	Decrypt(ctx context.Context, ev fhevm.EncryptedValue, public bool) (fhevm.DecryptionResult, error)
}

// Session tracks the status of one engine.
type Session struct {
	engine Engine
	log    *logger.Logger

	mu      sync.RWMutex
	status  fhevm.Status
	initErr error
	watch   []func(fhevm.Status)

	unsubscribe func()

	encryptor *Encryptor
	decryptor *Decryptor
}

// New subscribes to engine status pushes. Call Close to unsubscribe.
func New(engine Engine, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	s := &Session{engine: engine, log: log}
	s.encryptor = &Encryptor{s: s, op: operation[fhevm.EncryptedValue]{kind: "encrypt"}}
	s.decryptor = &Decryptor{s: s, op: operation[fhevm.DecryptionResult]{kind: "decrypt"}}
	s.unsubscribe = engine.Subscribe(s.onStatus)
	return s
}

func (s *Session) onStatus(status fhevm.Status, err error) {
	s.mu.Lock()
	s.status = status
	s.initErr = err
	watchers := slices.Clone(s.watch)
	s.mu.Unlock()

	s.log.Debug().Str("status", status.String()).Msg("client status changed")
	for _, fn := range watchers {
		fn(status)
	}
}

// Watch registers fn to run on every status change after registration.
func (s *Session) Watch(fn func(fhevm.Status)) {
	s.mu.Lock()
	s.watch = append(s.watch, fn)
	s.mu.Unlock()
}

func (s *Session) Status() fhevm.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Session) IsInitialized() bool {
	return s.Status() == fhevm.StatusReady
}

func (s *Session) IsInitializing() bool {
	return s.Status() == fhevm.StatusInitializing
}

// Err returns the client initialization error, if any.
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initErr
}

func (s *Session) Encryptor() *Encryptor { return s.encryptor }

func (s *Session) Decryptor() *Decryptor { return s.decryptor }

// Close stops receiving status updates.
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// State is a point-in-time view of a session.
type State struct {
	Status        fhevm.Status
	InitErr       error
	IsEncrypting  bool
	EncryptErr    error
	LastEncrypted *fhevm.EncryptedValue
	IsDecrypting  bool
	DecryptErr    error
	LastDecrypted *fhevm.DecryptionResult
}

func (s *Session) State() State {
	st := State{Status: s.Status(), InitErr: s.Err()}

	st.IsEncrypting = s.encryptor.IsEncrypting()
	st.EncryptErr = s.encryptor.Err()
	if ev, ok := s.encryptor.Last(); ok {
		st.LastEncrypted = &ev
	}

	st.IsDecrypting = s.decryptor.IsDecrypting()
	st.DecryptErr = s.decryptor.Err()
	if res, ok := s.decryptor.Last(); ok {
		st.LastDecrypted = &res
	}
	return st
}
