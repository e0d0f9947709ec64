package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

var (
	lockSQL   = regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtextextended($1, 0))")
	usageSQL  = regexp.QuoteMeta("SELECT COALESCE(SUM(GREATEST(size_bytes, 0)), 0) FROM vault_blobs WHERE owner_id = $1 AND vault_id = $2")
	upsertSQL = regexp.QuoteMeta("INSERT INTO vault_blobs")
	deleteSQL = regexp.QuoteMeta("DELETE FROM vault_blobs WHERE blob_id = $1 AND owner_id = $2 AND vault_id = $3 RETURNING object_key")
	keySQL    = regexp.QuoteMeta("SELECT object_key FROM vault_blobs WHERE blob_id = $1 AND owner_id = $2 AND vault_id = $3")
)

// memContentStore is an in-memory BlobContentStore.
type memContentStore struct {
	objects map[string][]byte
	putErr  error
	deleted []string
}

func newMemContentStore() *memContentStore {
	return &memContentStore{objects: map[string][]byte{}}
}

func (m *memContentStore) PutObject(_ context.Context, key string, data []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.objects[key] = data
	return nil
}

func (m *memContentStore) GetObject(_ context.Context, key string) ([]byte, error) {
	data, ok := m.objects[key]
	if !ok {
		return nil, ErrBlobNotFound
	}
	return data, nil
}

func (m *memContentStore) DeleteObject(_ context.Context, key string) error {
	delete(m.objects, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func testBlob(size int64) models.VaultBlob {
	return models.VaultBlob{
		OwnerID:    "owner-1",
		VaultID:    "main",
		BlobID:     "blob-a",
		Nonce:      []byte("nonce"),
		Ciphertext: []byte("ciphertext"),
		SizeBytes:  size,
		SHA256:     "abc",
		MimeType:   "image/png",
		FileName:   "a.png",
		UpdatedAt:  time.Now().UTC(),
	}
}

// ── Put ──────────────────────────────────────────────────────────────────────

func TestBlobRepository_Put_SizeLimit(t *testing.T) {
	tests := []struct {
		name string
		req  models.PutBlobRequest
	}{
		{name: "zero size", req: models.PutBlobRequest{Blob: testBlob(0)}},
		{name: "negative size", req: models.PutBlobRequest{Blob: testBlob(-1)}},
		{name: "over default limit", req: models.PutBlobRequest{Blob: testBlob(models.DefaultMaxFileBytes + 1)}},
		{name: "over per call limit", req: models.PutBlobRequest{Blob: testBlob(11), MaxFileBytes: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewBlobRepository(newDBFromSQL(t, db), nil, 0, 0, logger.Nop())

			_, err := repo.Put(testContext(), tt.req)

			require.ErrorIs(t, err, ErrFileSizeLimitExceeded)
			// rejected before touching the database
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBlobRepository_Put_ExactLimitAccepted(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(lockSQL).WithArgs("owner-1/main").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(usageSQL + regexp.QuoteMeta(" AND blob_id <> $3")).
		WithArgs("owner-1", "main", "blob-a").
		WillReturnRows(sqlmock.NewRows([]string{"usage"}).AddRow(int64(90)))
	mock.ExpectExec(upsertSQL).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewBlobRepository(newDBFromSQL(t, db), nil, 10, 100, logger.Nop())
	got, err := repo.Put(testContext(), models.PutBlobRequest{Blob: testBlob(10)})

	require.NoError(t, err)
	assert.Equal(t, models.PutBlobResult{Accepted: true, UsedBytes: 100}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBlobRepository_Put_QuotaExceeded(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(lockSQL).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(usageSQL).WillReturnRows(sqlmock.NewRows([]string{"usage"}).AddRow(int64(95)))
	mock.ExpectRollback()

	repo := NewBlobRepository(newDBFromSQL(t, db), nil, 10, 100, logger.Nop())
	_, err := repo.Put(testContext(), models.PutBlobRequest{Blob: testBlob(10)})

	require.ErrorIs(t, err, ErrVaultQuotaExceeded)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBlobRepository_Put_PerCallVaultLimit(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(lockSQL).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(usageSQL).WillReturnRows(sqlmock.NewRows([]string{"usage"}).AddRow(int64(0)))
	mock.ExpectRollback()

	repo := NewBlobRepository(newDBFromSQL(t, db), nil, 0, 0, logger.Nop())
	_, err := repo.Put(testContext(), models.PutBlobRequest{Blob: testBlob(10), MaxVaultBytes: 5})

	require.ErrorIs(t, err, ErrVaultQuotaExceeded)
	require.NoError(t, mock.ExpectationsWereMet())
}

// newObjectStoreRepo builds a repository whose object keys end in "v1".
func newObjectStoreRepo(t *testing.T) (*blobRepository, sqlmock.Sqlmock, *memContentStore) {
	t.Helper()

	db, mock := newTestDB(t)
	contents := newMemContentStore()
	repo := NewBlobRepository(newDBFromSQL(t, db), contents, 0, 0, logger.Nop()).(*blobRepository)
	repo.objectVersion = func() string { return "v1" }

	return repo, mock, contents
}

func expectPutUntilKeyLookup(mock sqlmock.Sqlmock, previousKey any) {
	mock.ExpectBegin()
	mock.ExpectExec(lockSQL).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(usageSQL).WillReturnRows(sqlmock.NewRows([]string{"usage"}).AddRow(int64(0)))

	rows := sqlmock.NewRows([]string{"object_key"})
	if previousKey != nil {
		rows.AddRow(previousKey)
	}
	mock.ExpectQuery(keySQL).WithArgs("blob-a", "owner-1", "main").WillReturnRows(rows)
}

func TestBlobRepository_Put_ObjectStore(t *testing.T) {
	t.Run("ciphertext goes to a versioned object", func(t *testing.T) {
		repo, mock, contents := newObjectStoreRepo(t)

		expectPutUntilKeyLookup(mock, nil)
		mock.ExpectExec(upsertSQL).
			WithArgs("owner-1", "main", "blob-a", []byte("nonce"), sqlmock.AnyArg(), "owner-1/main/blob-a/v1",
				int64(4), "abc", "image/png", "a.png", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		got, err := repo.Put(testContext(), models.PutBlobRequest{Blob: testBlob(4)})

		require.NoError(t, err)
		assert.True(t, got.Accepted)
		assert.Equal(t, []byte("ciphertext"), contents.objects["owner-1/main/blob-a/v1"])
		assert.Empty(t, contents.deleted)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replace removes the previous object after commit", func(t *testing.T) {
		repo, mock, contents := newObjectStoreRepo(t)
		contents.objects["owner-1/main/blob-a/v0"] = []byte("old")

		expectPutUntilKeyLookup(mock, "owner-1/main/blob-a/v0")
		mock.ExpectExec(upsertSQL).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		_, err := repo.Put(testContext(), models.PutBlobRequest{Blob: testBlob(4)})

		require.NoError(t, err)
		assert.Equal(t, []string{"owner-1/main/blob-a/v0"}, contents.deleted)
		assert.Equal(t, []byte("ciphertext"), contents.objects["owner-1/main/blob-a/v1"])
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed commit keeps the previous object and drops the new one", func(t *testing.T) {
		repo, mock, contents := newObjectStoreRepo(t)
		contents.objects["owner-1/main/blob-a/v0"] = []byte("old")

		expectPutUntilKeyLookup(mock, "owner-1/main/blob-a/v0")
		mock.ExpectExec(upsertSQL).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

		_, err := repo.Put(testContext(), models.PutBlobRequest{Blob: testBlob(4)})

		require.ErrorIs(t, err, ErrCommitingTransaction)
		assert.Equal(t, []string{"owner-1/main/blob-a/v1"}, contents.deleted)
		assert.Equal(t, []byte("old"), contents.objects["owner-1/main/blob-a/v0"])
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("object store failure aborts the write", func(t *testing.T) {
		repo, mock, contents := newObjectStoreRepo(t)
		contents.putErr = ErrObjectStore

		expectPutUntilKeyLookup(mock, nil)
		mock.ExpectRollback()

		_, err := repo.Put(testContext(), models.PutBlobRequest{Blob: testBlob(4)})

		require.ErrorIs(t, err, ErrObjectStore)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

// ── Get / List ───────────────────────────────────────────────────────────────

var blobGetColumns = []string{"owner_id", "vault_id", "blob_id", "nonce", "size_bytes", "sha256", "mime_type", "file_name", "updated_at", "ciphertext", "object_key"}

func TestBlobRepository_Get(t *testing.T) {
	now := time.Now().UTC()

	t.Run("inline ciphertext", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM vault_blobs WHERE blob_id = $1 AND owner_id = $2 AND vault_id = $3")).
			WithArgs("blob-a", "owner-1", "main").
			WillReturnRows(sqlmock.NewRows(blobGetColumns).
				AddRow("owner-1", "main", "blob-a", []byte("n"), int64(3), "abc", "text/plain", "a.txt", now, []byte("ct"), nil))

		repo := NewBlobRepository(newDBFromSQL(t, db), nil, 0, 0, logger.Nop())
		got, err := repo.Get(testContext(), "owner-1", "main", "blob-a")

		require.NoError(t, err)
		assert.Equal(t, []byte("ct"), got.Ciphertext)
		assert.Equal(t, int64(3), got.SizeBytes)
	})

	t.Run("object key resolves through object store", func(t *testing.T) {
		db, mock := newTestDB(t)
		contents := newMemContentStore()
		contents.objects["owner-1/main/blob-a"] = []byte("remote-ct")

		mock.ExpectQuery("FROM vault_blobs").
			WillReturnRows(sqlmock.NewRows(blobGetColumns).
				AddRow("owner-1", "main", "blob-a", []byte("n"), int64(3), "abc", "", "", now, nil, "owner-1/main/blob-a"))

		repo := NewBlobRepository(newDBFromSQL(t, db), contents, 0, 0, logger.Nop())
		got, err := repo.Get(testContext(), "owner-1", "main", "blob-a")

		require.NoError(t, err)
		assert.Equal(t, []byte("remote-ct"), got.Ciphertext)
	})

	t.Run("absent", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery("FROM vault_blobs").WillReturnRows(sqlmock.NewRows(blobGetColumns))

		repo := NewBlobRepository(newDBFromSQL(t, db), nil, 0, 0, logger.Nop())
		_, err := repo.Get(testContext(), "owner-1", "main", "blob-a")

		require.ErrorIs(t, err, ErrBlobNotFound)
	})
}

func TestBlobRepository_List(t *testing.T) {
	db, mock := newTestDB(t)
	now := time.Now().UTC()
	cols := []string{"owner_id", "vault_id", "blob_id", "nonce", "size_bytes", "sha256", "mime_type", "file_name", "updated_at"}

	mock.ExpectQuery(regexp.QuoteMeta("FROM vault_blobs WHERE owner_id = $1 AND vault_id = $2 ORDER BY blob_id")).
		WithArgs("owner-1", "main").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("owner-1", "main", "a", []byte("n"), int64(1), "h1", "", "", now).
			AddRow("owner-1", "main", "b", []byte("n"), int64(-4), "h2", "", "", now))

	repo := NewBlobRepository(newDBFromSQL(t, db), nil, 0, 0, logger.Nop())
	got, err := repo.List(testContext(), "owner-1", "main")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].BlobID)
	assert.Nil(t, got[0].Ciphertext)
	assert.Equal(t, int64(-4), got[1].SizeBytes)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestBlobRepository_Delete(t *testing.T) {
	t.Run("existing blob", func(t *testing.T) {
		db, mock := newTestDB(t)
		contents := newMemContentStore()

		mock.ExpectBegin()
		mock.ExpectExec(lockSQL).WithArgs("owner-1/main").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(deleteSQL).
			WithArgs("blob-a", "owner-1", "main").
			WillReturnRows(sqlmock.NewRows([]string{"object_key"}).AddRow("owner-1/main/blob-a"))
		mock.ExpectQuery(usageSQL).
			WithArgs("owner-1", "main").
			WillReturnRows(sqlmock.NewRows([]string{"usage"}).AddRow(int64(40)))
		mock.ExpectCommit()

		repo := NewBlobRepository(newDBFromSQL(t, db), contents, 0, 0, logger.Nop())
		got, err := repo.Delete(testContext(), "owner-1", "main", "blob-a")

		require.NoError(t, err)
		assert.Equal(t, models.DeleteBlobResult{Deleted: true, UsedBytes: 40}, got)
		assert.Equal(t, []string{"owner-1/main/blob-a"}, contents.deleted)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing blob still reports usage", func(t *testing.T) {
		db, mock := newTestDB(t)

		mock.ExpectBegin()
		mock.ExpectExec(lockSQL).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(deleteSQL).WillReturnRows(sqlmock.NewRows([]string{"object_key"}))
		mock.ExpectQuery(usageSQL).WillReturnRows(sqlmock.NewRows([]string{"usage"}).AddRow(int64(12)))
		mock.ExpectCommit()

		repo := NewBlobRepository(newDBFromSQL(t, db), nil, 0, 0, logger.Nop())
		got, err := repo.Delete(testContext(), "owner-1", "main", "blob-a")

		require.NoError(t, err)
		assert.Equal(t, models.DeleteBlobResult{Deleted: false, UsedBytes: 12}, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin().WillReturnError(errors.New("down"))

		repo := NewBlobRepository(newDBFromSQL(t, db), nil, 0, 0, logger.Nop())
		_, err := repo.Delete(testContext(), "owner-1", "main", "blob-a")

		require.ErrorIs(t, err, ErrBeginningTransaction)
	})
}

func TestBlobRepository_Usage(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectQuery(usageSQL).
		WithArgs("owner-1", "main").
		WillReturnRows(sqlmock.NewRows([]string{"usage"}).AddRow(int64(77)))

	repo := NewBlobRepository(newDBFromSQL(t, db), nil, 0, 0, logger.Nop())
	used, err := repo.Usage(testContext(), "owner-1", "main")

	require.NoError(t, err)
	assert.Equal(t, int64(77), used)
}
