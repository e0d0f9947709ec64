package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/crypto"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/mock"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func testCipher(t *testing.T, fill byte) crypto.VaultCipher {
	t.Helper()
	c, err := crypto.NewVaultCipherFromKey(bytes.Repeat([]byte{fill}, 32))
	require.NoError(t, err)
	return c
}

type blobFixture struct {
	local  *mock.MockLocalBlobRepository
	remote *mock.MockServerAdapter
	cipher crypto.VaultCipher
	svc    *clientBlobService
}

func newBlobFixture(t *testing.T, opts ClientOptions) blobFixture {
	ctrl := gomock.NewController(t)
	f := blobFixture{
		local:  mock.NewMockLocalBlobRepository(ctrl),
		remote: mock.NewMockServerAdapter(ctrl),
		cipher: testCipher(t, 0x11),
	}
	f.svc = NewClientBlobService(opts, f.local, f.remote, f.cipher, logger.Nop()).(*clientBlobService)
	f.svc.ids = fixedID("blob-1")
	f.svc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return f
}

func blobOpts(blobSync bool) ClientOptions {
	return ClientOptions{OwnerID: "owner", VaultID: "main", SyncEnabled: true, BlobSync: blobSync, MaxFileBytes: 16, MaxVaultBytes: 64}
}

// ── Attach ───────────────────────────────────────────────────────────────────

func TestClientBlobService_Attach_LocalOnly(t *testing.T) {
	f := newBlobFixture(t, blobOpts(false))
	data := []byte("hello")

	f.local.EXPECT().Save(gomock.Any(), gomock.Any(), false).DoAndReturn(func(_ context.Context, b models.VaultBlob, _ bool) error {
		assert.Equal(t, "owner", b.OwnerID)
		assert.Equal(t, "blob-1", b.BlobID)
		assert.Equal(t, int64(5), b.SizeBytes)
		assert.NotContains(t, string(b.Ciphertext), "hello")
		return nil
	})

	ref, err := f.svc.Attach(context.Background(), "a.txt", "text/plain", data, false)

	require.NoError(t, err)
	assert.Equal(t, models.BlobRef{
		BlobID: "blob-1", FileName: "a.txt", MimeType: "text/plain", SizeBytes: 5, SHA256: utils.SHA256Hex(data),
	}, ref)
}

func TestClientBlobService_Attach_SizeLimits(t *testing.T) {
	f := newBlobFixture(t, blobOpts(true))

	_, err := f.svc.Attach(context.Background(), "empty", "", nil, false)
	assert.ErrorIs(t, err, adapter.ErrFileSizeLimitExceeded)

	_, err = f.svc.Attach(context.Background(), "big", "", make([]byte, 17), false)
	assert.ErrorIs(t, err, adapter.ErrFileSizeLimitExceeded)
}

func TestClientBlobService_Attach_Uploads(t *testing.T) {
	f := newBlobFixture(t, blobOpts(true))

	gomock.InOrder(
		f.local.EXPECT().Save(gomock.Any(), gomock.Any(), false).Return(nil),
		f.remote.EXPECT().PutBlob(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req models.PutBlobRequest) (models.PutBlobResult, error) {
			assert.Empty(t, req.Blob.OwnerID, "owner comes from the token")
			assert.Equal(t, "main", req.Blob.VaultID)
			assert.Equal(t, int64(16), req.MaxFileBytes)
			assert.Equal(t, int64(64), req.MaxVaultBytes)
			return models.PutBlobResult{Accepted: true, UsedBytes: 4}, nil
		}),
		f.local.EXPECT().MarkUploaded(gomock.Any(), "owner", "main", "blob-1").Return(nil),
	)

	_, err := f.svc.Attach(context.Background(), "f", "", []byte("data"), false)
	require.NoError(t, err)
}

func TestClientBlobService_Attach_LocalOnlyRecordIsNotUploaded(t *testing.T) {
	f := newBlobFixture(t, blobOpts(true))

	f.local.EXPECT().Save(gomock.Any(), gomock.Any(), false).Return(nil)

	ref, err := f.svc.Attach(context.Background(), "f", "", []byte("data"), true)
	require.NoError(t, err)
	assert.Equal(t, "blob-1", ref.BlobID)
}

func TestClientBlobService_Attach_QuotaRollsBackLocalCopy(t *testing.T) {
	for _, quotaErr := range []error{adapter.ErrFileSizeLimitExceeded, adapter.ErrVaultQuotaExceeded} {
		t.Run(quotaErr.Error(), func(t *testing.T) {
			f := newBlobFixture(t, blobOpts(true))

			gomock.InOrder(
				f.local.EXPECT().Save(gomock.Any(), gomock.Any(), false).Return(nil),
				f.remote.EXPECT().PutBlob(gomock.Any(), gomock.Any()).Return(models.PutBlobResult{}, quotaErr),
				f.local.EXPECT().Delete(gomock.Any(), "owner", "main", "blob-1").Return(nil),
			)

			_, err := f.svc.Attach(context.Background(), "f", "", []byte("data"), false)
			assert.ErrorIs(t, err, quotaErr)
		})
	}
}

func TestClientBlobService_Attach_OfflineKeepsLocalCopyPending(t *testing.T) {
	f := newBlobFixture(t, blobOpts(true))

	f.local.EXPECT().Save(gomock.Any(), gomock.Any(), false).Return(nil)
	f.remote.EXPECT().PutBlob(gomock.Any(), gomock.Any()).Return(models.PutBlobResult{}, adapter.ErrTransportFailure)
	f.local.EXPECT().MarkUploaded(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	ref, err := f.svc.Attach(context.Background(), "f", "", []byte("data"), false)
	require.NoError(t, err)
	assert.Equal(t, "blob-1", ref.BlobID)
}

// ── UploadPending ────────────────────────────────────────────────────────────

func pendingPayload() models.VaultPayload {
	return models.VaultPayload{
		StorageItems: []models.StorageItem{
			{ID: "s1", BlobRef: &models.BlobRef{BlobID: "shared"}},
			{ID: "s2", BlobRef: &models.BlobRef{BlobID: "private"}, ExcludeFromCloudSync: true},
			{ID: "s3", BlobRef: &models.BlobRef{BlobID: "landed"}},
		},
	}
}

func TestClientBlobService_UploadPending(t *testing.T) {
	f := newBlobFixture(t, blobOpts(true))
	shared := sealedBlob(t, f.cipher, "shared", []byte("a"))
	landed := sealedBlob(t, f.cipher, "landed", []byte("b"))
	landed.SHA256 = "sum-b"

	f.local.EXPECT().ListPendingUploads(gomock.Any(), "owner", "main").Return([]string{"landed", "private", "shared"}, nil)
	f.remote.EXPECT().ListBlobs(gomock.Any(), "main").Return([]models.VaultBlob{{BlobID: "landed", SHA256: "sum-b"}}, nil)
	f.local.EXPECT().Get(gomock.Any(), "owner", "main", "landed").Return(landed, nil)
	f.local.EXPECT().MarkUploaded(gomock.Any(), "owner", "main", "landed").Return(nil)
	f.local.EXPECT().Get(gomock.Any(), "owner", "main", "shared").Return(shared, nil)
	f.remote.EXPECT().PutBlob(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req models.PutBlobRequest) (models.PutBlobResult, error) {
		assert.Equal(t, "shared", req.Blob.BlobID)
		return models.PutBlobResult{Accepted: true}, nil
	})
	f.local.EXPECT().MarkUploaded(gomock.Any(), "owner", "main", "shared").Return(nil)

	got, err := f.svc.UploadPending(context.Background(), pendingPayload())

	require.NoError(t, err)
	assert.Equal(t, []string{"landed", "shared"}, got)
}

func TestClientBlobService_UploadPending_StopsWhenOffline(t *testing.T) {
	f := newBlobFixture(t, blobOpts(true))

	f.local.EXPECT().ListPendingUploads(gomock.Any(), "owner", "main").Return([]string{"shared"}, nil)
	f.remote.EXPECT().ListBlobs(gomock.Any(), "main").Return(nil, nil)
	f.local.EXPECT().Get(gomock.Any(), "owner", "main", "shared").Return(sealedBlob(t, f.cipher, "shared", []byte("a")), nil)
	f.remote.EXPECT().PutBlob(gomock.Any(), gomock.Any()).Return(models.PutBlobResult{}, adapter.ErrTransportFailure)

	got, err := f.svc.UploadPending(context.Background(), pendingPayload())

	assert.ErrorIs(t, err, adapter.ErrTransportFailure)
	assert.Empty(t, got)
}

func TestClientBlobService_UploadPending_NothingToDo(t *testing.T) {
	t.Run("blob sync disabled", func(t *testing.T) {
		f := newBlobFixture(t, blobOpts(false))

		got, err := f.svc.UploadPending(context.Background(), pendingPayload())

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("only local-only blobs pending", func(t *testing.T) {
		f := newBlobFixture(t, blobOpts(true))
		f.local.EXPECT().ListPendingUploads(gomock.Any(), "owner", "main").Return([]string{"private"}, nil)

		got, err := f.svc.UploadPending(context.Background(), pendingPayload())

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

// ── Open ─────────────────────────────────────────────────────────────────────

func sealedBlob(t *testing.T, c crypto.VaultCipher, id string, data []byte) models.VaultBlob {
	t.Helper()
	nonce, ct, err := c.EncryptBlob(id, data)
	require.NoError(t, err)
	return models.VaultBlob{BlobID: id, Nonce: nonce, Ciphertext: ct, SizeBytes: int64(len(data))}
}

func TestClientBlobService_Open_Local(t *testing.T) {
	f := newBlobFixture(t, blobOpts(false))
	data := []byte("secret file")
	f.local.EXPECT().Get(gomock.Any(), "owner", "main", "b").Return(sealedBlob(t, f.cipher, "b", data), nil)

	got, err := f.svc.Open(context.Background(), models.BlobRef{BlobID: "b", SHA256: utils.SHA256Hex(data)})

	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestClientBlobService_Open_FetchesAndCachesRemote(t *testing.T) {
	f := newBlobFixture(t, blobOpts(true))
	data := []byte("from another device")
	remote := sealedBlob(t, f.cipher, "b", data)

	f.local.EXPECT().Get(gomock.Any(), "owner", "main", "b").Return(models.VaultBlob{}, store.ErrBlobNotFound)
	f.remote.EXPECT().GetBlob(gomock.Any(), "main", "b").Return(&remote, nil)
	f.local.EXPECT().Save(gomock.Any(), gomock.Any(), true).DoAndReturn(func(_ context.Context, b models.VaultBlob, _ bool) error {
		assert.Equal(t, "owner", b.OwnerID)
		return nil
	})

	got, err := f.svc.Open(context.Background(), models.BlobRef{BlobID: "b"})

	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestClientBlobService_Open_NotFound(t *testing.T) {
	t.Run("blob sync disabled", func(t *testing.T) {
		f := newBlobFixture(t, blobOpts(false))
		f.local.EXPECT().Get(gomock.Any(), "owner", "main", "b").Return(models.VaultBlob{}, store.ErrBlobNotFound)

		_, err := f.svc.Open(context.Background(), models.BlobRef{BlobID: "b"})

		assert.ErrorIs(t, err, store.ErrBlobNotFound)
		assert.ErrorIs(t, err, ErrBlobSyncDisabled)
	})

	t.Run("missing remotely", func(t *testing.T) {
		f := newBlobFixture(t, blobOpts(true))
		f.local.EXPECT().Get(gomock.Any(), "owner", "main", "b").Return(models.VaultBlob{}, store.ErrBlobNotFound)
		f.remote.EXPECT().GetBlob(gomock.Any(), "main", "b").Return(nil, nil)

		_, err := f.svc.Open(context.Background(), models.BlobRef{BlobID: "b"})

		assert.ErrorIs(t, err, store.ErrBlobNotFound)
	})
}

func TestClientBlobService_Open_IntegrityFailures(t *testing.T) {
	t.Run("checksum mismatch", func(t *testing.T) {
		f := newBlobFixture(t, blobOpts(false))
		f.local.EXPECT().Get(gomock.Any(), "owner", "main", "b").Return(sealedBlob(t, f.cipher, "b", []byte("x")), nil)

		_, err := f.svc.Open(context.Background(), models.BlobRef{BlobID: "b", SHA256: utils.SHA256Hex([]byte("y"))})

		assert.ErrorIs(t, err, crypto.ErrDecryptionFailure)
	})

	t.Run("wrong key", func(t *testing.T) {
		f := newBlobFixture(t, blobOpts(false))
		other := testCipher(t, 0x22)
		f.local.EXPECT().Get(gomock.Any(), "owner", "main", "b").Return(sealedBlob(t, other, "b", []byte("x")), nil)

		_, err := f.svc.Open(context.Background(), models.BlobRef{BlobID: "b"})

		assert.ErrorIs(t, err, crypto.ErrDecryptionFailure)
	})
}
