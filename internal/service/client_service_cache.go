// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/models"
)

type clientCacheService struct {
	ownerID string
	vaultID string
	ttl     time.Duration

	cache store.SnapshotCacheRepository
	files store.VaultFileStorage
	state store.VaultStateRepository

	logger *logger.Logger
	now    func() time.Time

	mu   sync.Mutex
	mode models.StorageMode
}

// NewClientCacheService returns the local vault file owner for opts.Mode
// (durable when empty). The mode the vault was last stored under is read
// back by Restore.
func NewClientCacheService(
	opts ClientOptions,
	cache store.SnapshotCacheRepository,
	files store.VaultFileStorage,
	state store.VaultStateRepository,
	logger *logger.Logger,
) ClientCacheService {
	mode := opts.Mode
	if mode == "" {
		mode = models.StorageModeDurable
	}

	return &clientCacheService{
		ownerID: opts.OwnerID,
		vaultID: opts.VaultID,
		ttl:     opts.CacheTTL,
		cache:   cache,
		files:   files,
		state:   state,
		logger:  logger,
		now:     time.Now,
		mode:    mode,
	}
}

func (s *clientCacheService) Restore(ctx context.Context) error {
	persisted, err := s.state.StorageMode(ctx, s.ownerID, s.vaultID)
	if errors.Is(err, store.ErrVaultStateNotFound) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.saveModeLocked(ctx, s.mode)
	}
	if err != nil {
		return fmt.Errorf("error reading storage mode: %w", err)
	}

	s.mu.Lock()
	configured := s.mode
	if persisted == configured {
		s.mu.Unlock()
		return nil
	}
	s.mode = persisted
	s.mu.Unlock()

	s.logger.Info().Str("stored", string(persisted)).Str("configured", string(configured)).Msg("storage mode changed since last run")
	return s.SetMode(ctx, configured)
}

func (s *clientCacheService) saveModeLocked(ctx context.Context, mode models.StorageMode) error {
	if err := s.state.SaveStorageMode(ctx, s.ownerID, s.vaultID, mode); err != nil {
		return fmt.Errorf("error saving storage mode: %w", err)
	}
	return nil
}

func (s *clientCacheService) Mode() models.StorageMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *clientCacheService) Store(ctx context.Context, file models.VaultFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.storeLocked(ctx, s.mode, file)
}

func (s *clientCacheService) storeLocked(ctx context.Context, mode models.StorageMode, file models.VaultFile) error {
	file.OwnerID, file.VaultID = s.ownerID, s.vaultID

	if mode == models.StorageModeCacheOnly {
		if err := s.cache.Save(ctx, s.cached(file)); err != nil {
			return fmt.Errorf("error caching vault file: %w", err)
		}
		return nil
	}

	if err := s.files.Save(ctx, file); err != nil {
		return fmt.Errorf("error saving vault file: %w", err)
	}

	// the durable file is canonical, a stale mirror only costs a re-pull
	if err := s.cache.Save(ctx, s.cached(file)); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientCacheService.Store").Msg("cache mirror update failed")
	}
	return nil
}

func (s *clientCacheService) Load(ctx context.Context) (models.VaultFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked(ctx, s.mode)
}

// loadLocked reads the canonical copy of mode. A durable vault without a
// file falls back to a live cache entry. A clean expired cache entry counts
// as missing; one with unsynced changes is still returned.
func (s *clientCacheService) loadLocked(ctx context.Context, mode models.StorageMode) (models.VaultFile, error) {
	if mode == models.StorageModeDurable {
		file, err := s.files.Load(ctx, s.ownerID, s.vaultID)
		if err == nil {
			return file, nil
		}
		if !errors.Is(err, store.ErrVaultFileNotFound) {
			return models.VaultFile{}, fmt.Errorf("error loading vault file: %w", err)
		}
	}

	entry, err := s.cache.Get(ctx, s.ownerID, s.vaultID)
	if err != nil {
		if errors.Is(err, store.ErrCacheEntryNotFound) {
			return models.VaultFile{}, fmt.Errorf("%w: %w", store.ErrVaultFileNotFound, err)
		}
		return models.VaultFile{}, fmt.Errorf("error loading cached vault file: %w", err)
	}

	if s.now().After(entry.ExpiresAt) && !entry.File.Dirty {
		return models.VaultFile{}, fmt.Errorf("%w: cache entry expired at %s", store.ErrVaultFileNotFound, entry.ExpiresAt.Format(time.RFC3339))
	}

	return entry.File, nil
}

func (s *clientCacheService) Status(ctx context.Context, now time.Time) (models.CacheStatus, error) {
	entry, err := s.cache.Get(ctx, s.ownerID, s.vaultID)
	if err != nil {
		if errors.Is(err, store.ErrCacheEntryNotFound) {
			return models.CacheStatus{State: models.CacheStateMissing}, nil
		}
		return models.CacheStatus{}, fmt.Errorf("error reading cache status: %w", err)
	}

	status := models.CacheStatus{
		State:     models.CacheStateExists,
		ExpiresAt: entry.ExpiresAt,
		Revision:  entry.File.Revision,
	}
	if now.After(entry.ExpiresAt) {
		status.State = models.CacheStateExpired
	}
	return status, nil
}

func (s *clientCacheService) SetMode(ctx context.Context, mode models.StorageMode) error {
	if _, err := models.ParseStorageMode(string(mode)); err != nil || mode == "" {
		return fmt.Errorf("%w: %q", models.ErrInvalidStorageMode, mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if mode == s.mode {
		return nil
	}

	file, err := s.loadLocked(ctx, s.mode)
	switch {
	case errors.Is(err, store.ErrVaultFileNotFound):
		if err = s.saveModeLocked(ctx, mode); err != nil {
			return err
		}
		s.mode = mode
		return nil
	case err != nil:
		return err
	}

	if err = s.storeLocked(ctx, mode, file); err != nil {
		return err
	}

	if mode == models.StorageModeCacheOnly {
		if err = s.files.Delete(ctx, s.ownerID, s.vaultID); err != nil {
			return fmt.Errorf("error removing durable vault file: %w", err)
		}
	}

	// a failed save replays the move on the next Restore
	if err = s.saveModeLocked(ctx, mode); err != nil {
		return err
	}

	s.logger.Info().Str("from", string(s.mode)).Str("to", string(mode)).Int64("revision", file.Revision).Msg("local storage mode changed")
	s.mode = mode
	return nil
}

func (s *clientCacheService) PurgeExpired(ctx context.Context, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != models.StorageModeDurable {
		return false, nil
	}

	entry, err := s.cache.Get(ctx, s.ownerID, s.vaultID)
	if err != nil {
		if errors.Is(err, store.ErrCacheEntryNotFound) {
			return false, nil
		}
		return false, err
	}
	if !now.After(entry.ExpiresAt) || entry.File.Dirty {
		return false, nil
	}

	if err = s.cache.Delete(ctx, s.ownerID, s.vaultID); err != nil {
		return false, fmt.Errorf("error purging cache entry: %w", err)
	}
	return true, nil
}

func (s *clientCacheService) cached(file models.VaultFile) models.CachedVaultFile {
	now := s.now().UTC()
	return models.CachedVaultFile{
		File:      file,
		CachedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}
}
