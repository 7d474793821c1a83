// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the operation journal: an audit trail of the
// encryptions and decryptions served by the HTTP API. Entries never carry
// plaintext values.
//
// Three backends implement [OperationRepository]: an in-memory ring used when
// no database is configured, PostgreSQL through pgx, and SQLite through
// go-sqlite3. Both SQL backends share one goose migration set.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fhevm/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// OperationRepository stores and lists journal entries.
type OperationRepository interface {
	// Save appends one entry.
	Save(ctx context.Context, op models.Operation) error

	// List returns entries matching filter, newest first.
	List(ctx context.Context, filter models.OperationFilter) ([]models.Operation, error)

	// DeleteOlderThan removes entries created before t and reports how many
	// were removed.
	DeleteOlderThan(ctx context.Context, t time.Time) (int64, error)
}

// FailureClassifier sorts driver errors into journal [Failure] kinds.
type FailureClassifier interface {
	Classify(err error) Failure
}
