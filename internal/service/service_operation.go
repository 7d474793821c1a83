package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fhevm/internal/logger"
	"github.com/MKhiriev/go-fhevm/internal/store"
	"github.com/MKhiriev/go-fhevm/internal/utils"
	"github.com/MKhiriev/go-fhevm/models"
)

type operationService struct {
	repo store.OperationRepository
	ids  *utils.UUIDGenerator
	now  func() time.Time

	logger *logger.Logger
}

func NewOperationService(repo store.OperationRepository, logger *logger.Logger) (OperationService, error) {
	if repo == nil {
		return nil, ErrNoOperationRepository
	}

	return &operationService{
		repo:   repo,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: logger,
	}, nil
}

func (s *operationService) Record(ctx context.Context, kind models.OperationKind, signature string, count int) error {
	op := models.Operation{
		ID:        s.ids.Generate(),
		Kind:      kind,
		Actor:     utils.GetActorFromContext(ctx),
		TraceID:   utils.GetTraceIDFromContext(ctx),
		Signature: signature,
		Count:     count,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Save(ctx, op); err != nil {
		return fmt.Errorf("error journaling %s operation: %w", kind, err)
	}
	return nil
}

func (s *operationService) List(ctx context.Context, filter models.OperationFilter) ([]models.Operation, error) {
	ops, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing operations: %w", err)
	}
	return ops, nil
}

func (s *operationService) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	n, err := s.repo.DeleteOlderThan(ctx, s.now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("error pruning operations: %w", err)
	}
	return n, nil
}
