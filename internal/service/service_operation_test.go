package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-fhevm/internal/logger"
	"github.com/MKhiriev/go-fhevm/internal/mock"
	"github.com/MKhiriev/go-fhevm/internal/store"
	"github.com/MKhiriev/go-fhevm/internal/utils"
	"github.com/MKhiriev/go-fhevm/models"
)

func TestNewOperationService_NilRepository(t *testing.T) {
	svc, err := NewOperationService(nil, logger.Nop())
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrNoOperationRepository)
}

func TestOperationService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockOperationRepository(ctrl)

	svc, err := NewOperationService(repo, logger.Nop())
	require.NoError(t, err)
	svc.(*operationService).now = func() time.Time { return fixedNow }

	ctx := utils.WithTraceID(utils.WithActor(context.Background(), "alice"), "trace-1")

	repo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, op models.Operation) error {
		assert.Equal(t, uuid.Version(7), op.ID.Version())
		assert.Equal(t, models.OperationEncrypt, op.Kind)
		assert.Equal(t, "alice", op.Actor)
		assert.Equal(t, "trace-1", op.TraceID)
		assert.Equal(t, "0xsig", op.Signature)
		assert.Equal(t, 1, op.Count)
		assert.Equal(t, fixedNow, op.CreatedAt)
		return nil
	})

	require.NoError(t, svc.Record(ctx, models.OperationEncrypt, "0xsig", 1))
}

func TestOperationService_Record_AnonymousCaller(t *testing.T) {
	repo := store.NewMemoryOperationRepository(10)
	svc, err := NewOperationService(repo, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, svc.Record(context.Background(), models.OperationDecrypt, "", 1))

	ops, err := svc.List(context.Background(), models.OperationFilter{})
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, utils.AnonymousActor, ops[0].Actor)
}

func TestOperationService_Record_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockOperationRepository(ctrl)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(store.ErrOperationNotSaved)

	svc, err := NewOperationService(repo, logger.Nop())
	require.NoError(t, err)

	err = svc.Record(context.Background(), models.OperationCompute, "", 2)
	assert.ErrorIs(t, err, store.ErrOperationNotSaved)
	assert.Contains(t, err.Error(), "compute")
}

func TestOperationService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockOperationRepository(ctrl)
	filter := models.OperationFilter{Kind: models.OperationEncrypt, Limit: 5}
	want := []models.Operation{{Kind: models.OperationEncrypt}}

	repo.EXPECT().List(gomock.Any(), filter).Return(want, nil)
	repo.EXPECT().List(gomock.Any(), filter).Return(nil, store.ErrExecutingQuery)

	svc, err := NewOperationService(repo, logger.Nop())
	require.NoError(t, err)

	got, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.List(context.Background(), filter)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestOperationService_Prune(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockOperationRepository(ctrl)

	svc, err := NewOperationService(repo, logger.Nop())
	require.NoError(t, err)
	svc.(*operationService).now = func() time.Time { return fixedNow }

	repo.EXPECT().DeleteOlderThan(gomock.Any(), fixedNow.Add(-24*time.Hour)).Return(int64(3), nil)
	n, err := svc.Prune(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	repo.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("locked"))
	_, err = svc.Prune(context.Background(), time.Hour)
	assert.ErrorContains(t, err, "error pruning operations")
}
