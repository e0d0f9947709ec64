package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/mock"
	"github.com/MKhiriev/go-vault-sync/models"
)

func gcOptions(blobSync bool) ClientOptions {
	return ClientOptions{OwnerID: "owner", VaultID: "main", SyncEnabled: true, BlobSync: blobSync}
}

func gcPayload() models.VaultPayload {
	return models.VaultPayload{
		StorageItems: []models.StorageItem{
			{ID: "s1", BlobRef: &models.BlobRef{BlobID: "live"}},
			{ID: "s2"},
		},
		Trash: []models.TrashEntry{
			{ID: "t1", Snapshot: models.StorageItemSnapshot{StorageItem: models.StorageItem{ID: "s3", BlobRef: &models.BlobRef{BlobID: "trashed"}}}},
			{ID: "t2", Snapshot: models.ItemSnapshot{Item: models.Item{ID: "i"}}},
		},
	}
}

// ── KeepBlobIDs ──────────────────────────────────────────────────────────────

func TestKeepBlobIDs_IncludesTrashRetainedBlobs(t *testing.T) {
	assert.Equal(t, []string{"live", "trashed"}, ids(KeepBlobIDs(gcPayload())))
	assert.Empty(t, KeepBlobIDs(models.VaultPayload{}))
}

// ── Collect ──────────────────────────────────────────────────────────────────

type gcFixture struct {
	local      *mock.MockLocalBlobRepository
	tombstones *mock.MockBlobTombstoneRepository
	remote     *mock.MockServerAdapter
}

func newGCFixture(t *testing.T) gcFixture {
	ctrl := gomock.NewController(t)
	return gcFixture{
		local:      mock.NewMockLocalBlobRepository(ctrl),
		tombstones: mock.NewMockBlobTombstoneRepository(ctrl),
		remote:     mock.NewMockServerAdapter(ctrl),
	}
}

func (f gcFixture) service(blobSync bool) ClientGCService {
	return NewClientGCService(gcOptions(blobSync), f.local, f.tombstones, f.remote, logger.Nop())
}

func TestClientGCService_Collect_QueuesRemoteDeletesWhenUnreachable(t *testing.T) {
	f := newGCFixture(t)

	gomock.InOrder(
		f.local.EXPECT().ListIDs(gomock.Any(), "owner", "main").Return([]string{"live", "orphan", "trashed"}, nil),
		f.tombstones.EXPECT().Add(gomock.Any(), "owner", "main", "orphan").Return(nil),
		f.local.EXPECT().Delete(gomock.Any(), "owner", "main", "orphan").Return(nil),
	)

	report, err := f.service(true).Collect(context.Background(), gcPayload(), false)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Kept)
	assert.Equal(t, []string{"orphan"}, report.LocalDeleted)
	assert.Empty(t, report.RemoteDeleted)
}

func TestClientGCService_Collect_SkipsRemoteWithoutBlobSync(t *testing.T) {
	f := newGCFixture(t)

	f.local.EXPECT().ListIDs(gomock.Any(), "owner", "main").Return([]string{"live", "orphan"}, nil)
	f.local.EXPECT().Delete(gomock.Any(), "owner", "main", "orphan").Return(nil)

	report, err := f.service(false).Collect(context.Background(), gcPayload(), true)

	require.NoError(t, err)
	assert.Equal(t, []string{"orphan"}, report.LocalDeleted)
	assert.Empty(t, report.RemoteDeleted)
}

func TestClientGCService_Collect_DeletesQueuedBlobsRemotely(t *testing.T) {
	f := newGCFixture(t)

	f.local.EXPECT().ListIDs(gomock.Any(), "owner", "main").Return([]string{"live", "orphan"}, nil)
	f.tombstones.EXPECT().Add(gomock.Any(), "owner", "main", "orphan").Return(nil)
	f.local.EXPECT().Delete(gomock.Any(), "owner", "main", "orphan").Return(nil)
	// "earlier" was dropped in a previous pass while offline
	f.tombstones.EXPECT().List(gomock.Any(), "owner", "main").Return([]string{"earlier", "orphan"}, nil)
	f.remote.EXPECT().DeleteBlob(gomock.Any(), "main", "earlier").Return(models.DeleteBlobResult{Deleted: true}, nil)
	f.remote.EXPECT().DeleteBlob(gomock.Any(), "main", "orphan").Return(models.DeleteBlobResult{Deleted: true}, nil)
	f.tombstones.EXPECT().Remove(gomock.Any(), "owner", "main", "earlier", "orphan").Return(nil)

	report, err := f.service(true).Collect(context.Background(), gcPayload(), true)

	require.NoError(t, err)
	assert.Equal(t, []string{"earlier", "orphan"}, report.RemoteDeleted)
	assert.Empty(t, report.RemoteFailed)
}

func TestClientGCService_Collect_NeverDeletesBlobsItDidNotHold(t *testing.T) {
	f := newGCFixture(t)

	// another device uploaded K and has not pushed the snapshot naming it yet
	f.local.EXPECT().ListIDs(gomock.Any(), "owner", "main").Return(nil, nil)
	f.tombstones.EXPECT().List(gomock.Any(), "owner", "main").Return(nil, nil)
	f.remote.EXPECT().ListBlobs(gomock.Any(), gomock.Any()).Times(0)
	f.remote.EXPECT().DeleteBlob(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	report, err := f.service(true).Collect(context.Background(), models.VaultPayload{}, true)

	require.NoError(t, err)
	assert.Empty(t, report.LocalDeleted)
	assert.Empty(t, report.RemoteDeleted)
}

func TestClientGCService_Collect_ReferencedAgainIsDequeued(t *testing.T) {
	f := newGCFixture(t)

	f.local.EXPECT().ListIDs(gomock.Any(), "owner", "main").Return([]string{"live"}, nil)
	f.tombstones.EXPECT().List(gomock.Any(), "owner", "main").Return([]string{"live"}, nil)
	f.tombstones.EXPECT().Remove(gomock.Any(), "owner", "main", "live").Return(nil)

	report, err := f.service(true).Collect(context.Background(), gcPayload(), true)

	require.NoError(t, err)
	assert.Empty(t, report.RemoteDeleted)
}

func TestClientGCService_Collect_RemoteFailuresStayQueued(t *testing.T) {
	f := newGCFixture(t)

	f.local.EXPECT().ListIDs(gomock.Any(), "owner", "main").Return([]string{"a", "b"}, nil)
	f.tombstones.EXPECT().Add(gomock.Any(), "owner", "main", "a", "b").Return(nil)
	f.local.EXPECT().Delete(gomock.Any(), "owner", "main", "a", "b").Return(nil)
	f.tombstones.EXPECT().List(gomock.Any(), "owner", "main").Return([]string{"a", "b"}, nil)
	f.remote.EXPECT().DeleteBlob(gomock.Any(), "main", "a").Return(models.DeleteBlobResult{}, adapter.ErrTransportFailure)
	// already gone remotely
	f.remote.EXPECT().DeleteBlob(gomock.Any(), "main", "b").Return(models.DeleteBlobResult{Deleted: false}, nil)
	f.tombstones.EXPECT().Remove(gomock.Any(), "owner", "main", "b").Return(nil)

	report, err := f.service(true).Collect(context.Background(), models.VaultPayload{}, true)

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, report.LocalDeleted)
	assert.Equal(t, []string{"a"}, report.RemoteFailed)
	assert.Empty(t, report.RemoteDeleted)
}

func TestClientGCService_Collect_LocalErrors(t *testing.T) {
	dbErr := errors.New("disk I/O error")

	t.Run("list fails", func(t *testing.T) {
		f := newGCFixture(t)
		f.local.EXPECT().ListIDs(gomock.Any(), "owner", "main").Return(nil, dbErr)

		_, err := f.service(true).Collect(context.Background(), models.VaultPayload{}, true)

		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("queueing fails before anything is deleted", func(t *testing.T) {
		f := newGCFixture(t)
		f.local.EXPECT().ListIDs(gomock.Any(), "owner", "main").Return([]string{"x"}, nil)
		f.tombstones.EXPECT().Add(gomock.Any(), "owner", "main", "x").Return(dbErr)

		_, err := f.service(true).Collect(context.Background(), models.VaultPayload{}, true)

		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("delete fails", func(t *testing.T) {
		f := newGCFixture(t)
		f.local.EXPECT().ListIDs(gomock.Any(), "owner", "main").Return([]string{"x"}, nil)
		f.tombstones.EXPECT().Add(gomock.Any(), "owner", "main", "x").Return(nil)
		f.local.EXPECT().Delete(gomock.Any(), "owner", "main", "x").Return(dbErr)

		_, err := f.service(true).Collect(context.Background(), models.VaultPayload{}, true)

		assert.ErrorIs(t, err, dbErr)
	})
}
