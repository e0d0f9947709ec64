package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

func TestVaultFileStorage_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	storage := NewVaultFileStorage(dir, logger.Nop())
	file := models.VaultFile{
		OwnerID:       "user:42|sess/../x",
		VaultID:       "main",
		Revision:      3,
		EncryptedFile: []byte("ciphertext"),
		UpdatedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Dirty:         true,
	}

	require.NoError(t, storage.Save(testContext(), file))

	got, err := storage.Load(testContext(), file.OwnerID, file.VaultID)
	require.NoError(t, err)
	assert.Equal(t, file, got)

	// owner keys never escape the vault directory
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsDir())
}

func TestVaultFileStorage_Overwrite(t *testing.T) {
	storage := NewVaultFileStorage(t.TempDir(), logger.Nop())
	file := models.VaultFile{OwnerID: "o", VaultID: "v", Revision: 1, EncryptedFile: []byte("a")}

	require.NoError(t, storage.Save(testContext(), file))
	file.Revision = 2
	file.EncryptedFile = []byte("b")
	require.NoError(t, storage.Save(testContext(), file))

	got, err := storage.Load(testContext(), "o", "v")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Revision)
	assert.Equal(t, []byte("b"), got.EncryptedFile)
}

func TestVaultFileStorage_Missing(t *testing.T) {
	storage := NewVaultFileStorage(t.TempDir(), logger.Nop())

	_, err := storage.Load(testContext(), "o", "v")
	require.ErrorIs(t, err, ErrVaultFileNotFound)

	// deleting a missing file is not an error
	require.NoError(t, storage.Delete(testContext(), "o", "v"))
}

func TestVaultFileStorage_Corrupted(t *testing.T) {
	dir := t.TempDir()
	storage := NewVaultFileStorage(dir, logger.Nop()).(*vaultFileStorage)

	path := storage.path("o", "v")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := storage.Load(testContext(), "o", "v")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrVaultFileNotFound)
}

func TestVaultFileStorage_Delete(t *testing.T) {
	storage := NewVaultFileStorage(t.TempDir(), logger.Nop())
	file := models.VaultFile{OwnerID: "o", VaultID: "v", Revision: 1}

	require.NoError(t, storage.Save(testContext(), file))
	require.NoError(t, storage.Delete(testContext(), "o", "v"))

	_, err := storage.Load(testContext(), "o", "v")
	require.ErrorIs(t, err, ErrVaultFileNotFound)
}
