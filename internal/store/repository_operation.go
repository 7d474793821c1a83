// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-fhevm/internal/logger"
	"github.com/MKhiriev/go-fhevm/models"
)

// operationRepository is the SQL implementation of [OperationRepository].
// The same code serves PostgreSQL and SQLite; only the placeholder format
// carried by [DB] differs.
type operationRepository struct {
	*DB
	logger *logger.Logger
}

// NewOperationRepository constructs an [OperationRepository] over db.
func NewOperationRepository(db *DB, logger *logger.Logger) OperationRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating operation repository")
	return &operationRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *operationRepository) Save(ctx context.Context, op models.Operation) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertOperationQuery(r.builder(), op)
	if err != nil {
		log.Err(err).Str("func", "operationRepository.Save").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		failure := r.classify(err)
		log.Err(err).
			Str("func", "operationRepository.Save").
			Str("operation_id", op.ID.String()).
			Stringer("failure", failure).
			Msg("failed to insert operation")

		if failure == FailureConflict {
			return ErrOperationExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOperationNotSaved
	}

	return nil
}

func (r *operationRepository) List(ctx context.Context, filter models.OperationFilter) ([]models.Operation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListOperationsQuery(r.builder(), filter)
	if err != nil {
		log.Err(err).Str("func", "operationRepository.List").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "operationRepository.List").
			Str("kind", string(filter.Kind)).
			Str("actor", filter.Actor).
			Msg("failed to execute query for listing operations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ops := make([]models.Operation, 0, normalizeLimit(filter.Limit))
	for rows.Next() {
		var (
			op   models.Operation
			id   string
			kind string
		)
		if err := rows.Scan(&id, &kind, &op.Actor, &op.TraceID, &op.Signature, &op.Count, &op.CreatedAt); err != nil {
			log.Err(err).Str("func", "operationRepository.List").Msg("failed to scan operation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if op.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("%w: bad id %q: %w", ErrScanningRow, id, err)
		}
		op.Kind = models.OperationKind(kind)
		op.CreatedAt = op.CreatedAt.UTC()
		ops = append(ops, op)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "operationRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ops, nil
}

func (r *operationRepository) DeleteOlderThan(ctx context.Context, t time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteOperationsQuery(r.builder(), t)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "operationRepository.DeleteOlderThan").Time("before", t).Msg("failed to prune operations")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}
