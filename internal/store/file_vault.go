package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

const vaultFileExt = ".vault.json"

// vaultFileStorage is the default implementation of [VaultFileStorage]. Every
// vault is one JSON document under dir/<owner>/<vault>.vault.json, where both
// path segments are base64url encoded so arbitrary owner keys stay inside dir.
//
// Writes go to a temporary file that is renamed over the target, so a crash
// never leaves a half-written vault behind.
type vaultFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewVaultFileStorage constructs a [VaultFileStorage] rooted at dir.
func NewVaultFileStorage(dir string, logger *logger.Logger) VaultFileStorage {
	return &vaultFileStorage{
		dir:    dir,
		logger: logger,
	}
}

func (v *vaultFileStorage) Save(ctx context.Context, file models.VaultFile) error {
	log := logger.FromContext(ctx)
	path := v.path(file.OwnerID, file.VaultID)

	data, err := json.Marshal(file)
	if err != nil {
		return fmt.Errorf("error encoding vault file: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		log.Err(err).Str("func", "vaultFileStorage.Save").Str("path", path).Msg("failed to create vault directory")
		return fmt.Errorf("error creating vault directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".vault-*")
	if err != nil {
		return fmt.Errorf("error creating temporary vault file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing vault file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("error syncing vault file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing vault file: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		log.Err(err).Str("func", "vaultFileStorage.Save").Str("path", path).Msg("failed to replace vault file")
		return fmt.Errorf("error replacing vault file: %w", err)
	}

	log.Debug().Str("func", "vaultFileStorage.Save").Int64("revision", file.Revision).Msg("vault file saved")
	return nil
}

func (v *vaultFileStorage) Load(ctx context.Context, ownerID, vaultID string) (models.VaultFile, error) {
	data, err := os.ReadFile(v.path(ownerID, vaultID))
	if errors.Is(err, os.ErrNotExist) {
		return models.VaultFile{}, ErrVaultFileNotFound
	}
	if err != nil {
		return models.VaultFile{}, fmt.Errorf("error reading vault file: %w", err)
	}

	var file models.VaultFile
	if err = json.Unmarshal(data, &file); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "vaultFileStorage.Load").
			Str("vault_id", vaultID).
			Msg("vault file is corrupted")
		return models.VaultFile{}, fmt.Errorf("error decoding vault file: %w", err)
	}

	return file, nil
}

// Delete removes the vault file. A missing file is not an error.
func (v *vaultFileStorage) Delete(_ context.Context, ownerID, vaultID string) error {
	err := os.Remove(v.path(ownerID, vaultID))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error removing vault file: %w", err)
	}
	return nil
}

func (v *vaultFileStorage) path(ownerID, vaultID string) string {
	return filepath.Join(v.dir,
		base64.RawURLEncoding.EncodeToString([]byte(ownerID)),
		base64.RawURLEncoding.EncodeToString([]byte(vaultID))+vaultFileExt)
}
