package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/mock"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/models"
)

func newTestBlobService(t *testing.T) (*blobService, *mock.MockBlobRepository) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockBlobRepository(ctrl)
	svc := NewBlobService(repo, logger.Nop()).(*blobService)
	return svc, repo
}

// ─────────────────────────────────────────────
// Put
// ─────────────────────────────────────────────

func TestBlobService_Put_StampsUpdatedAt(t *testing.T) {
	svc, repo := newTestBlobService(t)
	stamp := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	svc.now = func() time.Time { return stamp }

	repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.PutBlobRequest) (models.PutBlobResult, error) {
			assert.Equal(t, stamp, req.Blob.UpdatedAt)
			return models.PutBlobResult{Accepted: true, UsedBytes: 10}, nil
		})

	res, err := svc.Put(context.Background(), models.PutBlobRequest{Blob: models.VaultBlob{BlobID: "b", SizeBytes: 10}})

	require.NoError(t, err)
	assert.Equal(t, models.PutBlobResult{Accepted: true, UsedBytes: 10}, res)
}

func TestBlobService_Put_KeepsClientTimestamp(t *testing.T) {
	svc, repo := newTestBlobService(t)
	stamp := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.PutBlobRequest) (models.PutBlobResult, error) {
			assert.Equal(t, stamp, req.Blob.UpdatedAt)
			return models.PutBlobResult{Accepted: true}, nil
		})

	_, err := svc.Put(context.Background(), models.PutBlobRequest{Blob: models.VaultBlob{UpdatedAt: stamp}})
	require.NoError(t, err)
}

func TestBlobService_Put_QuotaErrorsPassThrough(t *testing.T) {
	for _, quotaErr := range []error{store.ErrFileSizeLimitExceeded, store.ErrVaultQuotaExceeded} {
		t.Run(quotaErr.Error(), func(t *testing.T) {
			svc, repo := newTestBlobService(t)
			repo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(models.PutBlobResult{}, quotaErr)

			_, err := svc.Put(context.Background(), models.PutBlobRequest{})
			assert.ErrorIs(t, err, quotaErr)
		})
	}
}

// ─────────────────────────────────────────────
// Get / List / Delete
// ─────────────────────────────────────────────

func TestBlobService_Get(t *testing.T) {
	svc, repo := newTestBlobService(t)
	repo.EXPECT().Get(gomock.Any(), "o", "v", "b").Return(models.VaultBlob{BlobID: "b"}, nil)
	repo.EXPECT().Get(gomock.Any(), "o", "v", "missing").Return(models.VaultBlob{}, store.ErrBlobNotFound)

	got, err := svc.Get(context.Background(), "o", "v", "b")
	require.NoError(t, err)
	assert.Equal(t, "b", got.BlobID)

	_, err = svc.Get(context.Background(), "o", "v", "missing")
	assert.ErrorIs(t, err, store.ErrBlobNotFound)
}

func TestBlobService_List_NeverNil(t *testing.T) {
	svc, repo := newTestBlobService(t)
	repo.EXPECT().List(gomock.Any(), "o", "v").Return(nil, nil)

	got, err := svc.List(context.Background(), "o", "v")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBlobService_Delete(t *testing.T) {
	svc, repo := newTestBlobService(t)
	repo.EXPECT().Delete(gomock.Any(), "o", "v", "b").Return(models.DeleteBlobResult{Deleted: true, UsedBytes: 3}, nil)

	got, err := svc.Delete(context.Background(), "o", "v", "b")

	require.NoError(t, err)
	assert.Equal(t, models.DeleteBlobResult{Deleted: true, UsedBytes: 3}, got)
}
