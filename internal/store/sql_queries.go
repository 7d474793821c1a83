package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-fhevm/models"
)

const (
	operationsTable = "operations"

	// DefaultListLimit applies when a filter sets no limit.
	DefaultListLimit = 100
	// MaxListLimit caps any listing.
	MaxListLimit = 1000
)

var operationColumns = []string{"id", "kind", "actor", "trace_id", "signature", "count", "created_at"}

// normalizeLimit clamps a requested page size into [1, MaxListLimit].
func normalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}

func buildInsertOperationQuery(b sq.StatementBuilderType, op models.Operation) (string, []any, error) {
	return b.Insert(operationsTable).
		Columns(operationColumns...).
		Values(op.ID.String(), string(op.Kind), op.Actor, op.TraceID, op.Signature, op.Count, op.CreatedAt.UTC()).
		ToSql()
}

func buildListOperationsQuery(b sq.StatementBuilderType, filter models.OperationFilter) (string, []any, error) {
	query := b.Select(operationColumns...).
		From(operationsTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(normalizeLimit(filter.Limit)))

	if filter.Kind != "" {
		query = query.Where(sq.Eq{"kind": string(filter.Kind)})
	}
	if filter.Actor != "" {
		query = query.Where(sq.Eq{"actor": filter.Actor})
	}

	return query.ToSql()
}

func buildDeleteOperationsQuery(b sq.StatementBuilderType, before time.Time) (string, []any, error) {
	return b.Delete(operationsTable).
		Where(sq.Lt{"created_at": before.UTC()}).
		ToSql()
}
