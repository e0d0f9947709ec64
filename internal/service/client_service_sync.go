// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/crypto"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/models"
)

// VaultState is the coordinator's view of the local vault.
type VaultState struct {
	Payload  models.VaultPayload
	Revision int64
	Dirty    bool
	Loaded   bool
	State    models.SyncState
	Status   models.SyncStatus
}

type clientSyncService struct {
	opts    ClientOptions
	adapter adapter.ServerAdapter
	cipher  crypto.VaultCipher
	cache   ClientCacheService
	gc      ClientGCService
	blobs   ClientBlobService

	logger *logger.Logger
	now    func() time.Time

	// mu guards the fields below. Network and storage calls run without it;
	// state != Idle keeps a second cycle out.
	mu       sync.Mutex
	state    models.SyncState
	payload  models.VaultPayload
	revision int64
	dirty    bool
	loaded   bool
	status   models.SyncStatus
}

// NewClientSyncService returns the sync coordinator of one vault. Every
// persist is followed by a GC pass and, with the remote reachable, by an
// upload of pending blobs.
func NewClientSyncService(
	opts ClientOptions,
	serverAdapter adapter.ServerAdapter,
	cipher crypto.VaultCipher,
	cache ClientCacheService,
	gc ClientGCService,
	blobs ClientBlobService,
	logger *logger.Logger,
) ClientSyncService {
	return &clientSyncService{
		opts:    opts,
		adapter: serverAdapter,
		cipher:  cipher,
		cache:   cache,
		gc:      gc,
		blobs:   blobs,
		logger:  logger,
		now:     time.Now,
		state:   models.SyncStateIdle,
	}
}

// ── state machine ───────────────────────────────────────────────────────────

func (s *clientSyncService) begin(next models.SyncState, needLoaded bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != models.SyncStateIdle {
		return fmt.Errorf("%w: %s", ErrSyncInProgress, s.state)
	}
	if needLoaded && !s.loaded {
		return ErrVaultNotLoaded
	}
	s.state = next
	return nil
}

func (s *clientSyncService) end() {
	s.mu.Lock()
	s.state = models.SyncStateIdle
	s.mu.Unlock()
}

func (s *clientSyncService) setState(next models.SyncState) {
	s.mu.Lock()
	s.state = next
	s.mu.Unlock()
}

func (s *clientSyncService) current() (models.VaultPayload, int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payload, s.revision, s.dirty
}

func (s *clientSyncService) apply(payload models.VaultPayload, revision int64, dirty bool) {
	s.mu.Lock()
	s.payload, s.revision, s.dirty, s.loaded = payload, revision, dirty, true
	s.mu.Unlock()
}

func (s *clientSyncService) report(r models.SyncReport) models.SyncReport {
	s.mu.Lock()
	s.status = r.Status
	r.Revision = s.revision
	s.mu.Unlock()
	return r
}

func (s *clientSyncService) Snapshot() VaultState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return VaultState{
		Payload:  s.payload,
		Revision: s.revision,
		Dirty:    s.dirty,
		Loaded:   s.loaded,
		State:    s.state,
		Status:   s.status,
	}
}

// ── operations ──────────────────────────────────────────────────────────────

func (s *clientSyncService) Load(ctx context.Context) (models.SyncReport, error) {
	if err := s.begin(models.SyncStatePulling, false); err != nil {
		return models.SyncReport{}, err
	}
	defer s.end()

	file, err := s.cache.Load(ctx)
	if errors.Is(err, store.ErrVaultFileNotFound) {
		s.apply(models.VaultPayload{}, 0, false)
		return s.report(models.SyncReport{Status: s.idleStatus()}), nil
	}
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("error loading local vault: %w", err)
	}

	payload, err := s.cipher.DecryptPayload(s.opts.VaultID, file.EncryptedFile)
	if err != nil {
		s.report(models.SyncReport{Status: models.SyncStatusDecryptFailed})
		return models.SyncReport{}, fmt.Errorf("error decrypting local vault: %w", err)
	}

	s.apply(payload, file.Revision, file.Dirty)
	return s.report(models.SyncReport{Status: s.idleStatus()}), nil
}

func (s *clientSyncService) Refresh(ctx context.Context) (models.SyncReport, error) {
	if err := s.begin(models.SyncStatePulling, true); err != nil {
		return models.SyncReport{}, err
	}
	defer s.end()

	if !s.opts.SyncEnabled {
		return s.report(models.SyncReport{Status: models.SyncStatusLocalOnly}), nil
	}

	return s.pull(ctx)
}

func (s *clientSyncService) Commit(ctx context.Context, payload models.VaultPayload) (models.SyncReport, error) {
	if err := s.begin(models.SyncStatePushing, true); err != nil {
		return models.SyncReport{}, err
	}
	defer s.end()

	return s.commit(ctx, payload)
}

func (s *clientSyncService) MoveFolder(ctx context.Context, folderID, newParentID string) (models.SyncReport, error) {
	if err := s.begin(models.SyncStatePushing, true); err != nil {
		return models.SyncReport{}, err
	}
	defer s.end()

	local, _, _ := s.current()
	moved, err := MoveFolder(local, folderID, newParentID)
	if err != nil {
		return models.SyncReport{}, err
	}

	return s.commit(ctx, moved)
}

func (s *clientSyncService) commit(ctx context.Context, payload models.VaultPayload) (models.SyncReport, error) {
	_, revision, _ := s.current()
	s.apply(payload, revision, true)

	if !s.opts.SyncEnabled {
		if err := s.persist(ctx, false); err != nil {
			return models.SyncReport{}, err
		}
		return s.report(models.SyncReport{Status: models.SyncStatusLocalOnly}), nil
	}

	return s.push(ctx)
}

// pull runs the Pulling half of a cycle and hands over to push when the
// remote store is not ahead and local changes are pending.
func (s *clientSyncService) pull(ctx context.Context) (models.SyncReport, error) {
	local, revision, dirty := s.current()

	snapshot, err := s.adapter.PullByOwnerVault(ctx, s.opts.VaultID)
	if err != nil {
		return s.degraded(err)
	}

	if snapshot == nil && revision == 0 && local.IsEmpty() {
		snapshot, err = s.adapter.PullByLegacyUserPrefix(ctx)
		if err != nil {
			return s.degraded(err)
		}
		if snapshot != nil {
			s.logger.Info().Str("legacy_owner", snapshot.OwnerID).Int64("revision", snapshot.Revision).Msg("importing legacy vault snapshot")
			snapshot.Revision = 0
			report, err := s.mergeRemote(ctx, snapshot, true)
			if err != nil {
				return report, err
			}
			return s.push(ctx)
		}
	}

	switch {
	case snapshot == nil:
		if !local.IsEmpty() || dirty {
			return s.push(ctx)
		}
		return s.report(models.SyncReport{Status: models.SyncStatusOK}), nil

	case snapshot.Revision > revision:
		return s.mergeRemote(ctx, snapshot, false)

	case dirty:
		return s.push(ctx)

	default:
		return s.report(models.SyncReport{Status: models.SyncStatusOK}), nil
	}
}

// mergeRemote decrypts snapshot, merges it with the local-only content and
// persists the result. Local state is untouched when decryption fails.
// keepDirty marks the merged state as still needing a push.
func (s *clientSyncService) mergeRemote(ctx context.Context, snapshot *models.VaultSnapshot, keepDirty bool) (models.SyncReport, error) {
	vaultID := snapshot.VaultID
	if vaultID == "" {
		vaultID = s.opts.VaultID
	}

	remote, err := s.cipher.DecryptPayload(vaultID, snapshot.EncryptedFile)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSyncService.mergeRemote").Int64("revision", snapshot.Revision).Msg("pulled snapshot is not decryptable")
		s.report(models.SyncReport{Status: models.SyncStatusDecryptFailed})
		return models.SyncReport{Status: models.SyncStatusDecryptFailed}, fmt.Errorf("%w: %w", crypto.ErrDecryptionFailure, err)
	}

	local, _, _ := s.current()
	s.apply(MergeOnPull(remote, local), snapshot.Revision, keepDirty)

	if err = s.persist(ctx, true); err != nil {
		return models.SyncReport{}, err
	}

	return s.report(models.SyncReport{Status: models.SyncStatusOK, Pulled: true, Merged: true}), nil
}

// push runs the Pushing half of a cycle: the cloud projection of the local
// payload goes out at revision+1.
func (s *clientSyncService) push(ctx context.Context) (models.SyncReport, error) {
	s.setState(models.SyncStatePushing)

	local, revision, _ := s.current()
	encrypted, err := s.cipher.EncryptPayload(s.opts.VaultID, BuildPushPayload(local))
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("error encrypting vault for push: %w", err)
	}

	next := revision + 1
	result, err := s.adapter.PushByOwnerVault(ctx, models.PushRequest{
		VaultID:       s.opts.VaultID,
		Revision:      next,
		EncryptedFile: encrypted,
		UpdatedAt:     s.now().UTC(),
	})
	if err == nil && !result.Accepted {
		err = adapter.ErrStaleRevision
	}

	switch {
	case err == nil:
		s.apply(local, next, false)
		if err = s.persist(ctx, true); err != nil {
			return models.SyncReport{}, err
		}
		return s.report(models.SyncReport{Status: models.SyncStatusOK, Pushed: true}), nil

	case errors.Is(err, adapter.ErrStaleRevision):
		return s.recoverStale(ctx, next)

	default:
		if perr := s.persist(ctx, false); perr != nil {
			return models.SyncReport{}, errors.Join(err, perr)
		}
		return s.degraded(err)
	}
}

// recoverStale re-pulls after a lost revision race. The winner's snapshot
// is merged with the local-only content; the loser's shared changes are
// dropped.
func (s *clientSyncService) recoverStale(ctx context.Context, rejected int64) (models.SyncReport, error) {
	s.logger.Info().Int64("revision", rejected).Msg("push lost a revision race, re-pulling")
	s.setState(models.SyncStatePulling)

	snapshot, err := s.adapter.PullByOwnerVault(ctx, s.opts.VaultID)
	if err != nil || snapshot == nil {
		if perr := s.persist(ctx, false); perr != nil {
			return models.SyncReport{}, perr
		}
		if err == nil {
			err = adapter.ErrStaleRevision
		}
		return s.degraded(err)
	}

	report, err := s.mergeRemote(ctx, snapshot, false)
	if err != nil {
		return report, err
	}

	report.Status = models.SyncStatusStale
	return s.report(report), nil
}

// degraded records a failed remote call. Transport failures keep the last
// good local state and are not returned as errors.
func (s *clientSyncService) degraded(err error) (models.SyncReport, error) {
	report := s.report(models.SyncReport{Status: models.SyncStatusDegraded})
	if errors.Is(err, adapter.ErrTransportFailure) {
		s.logger.Warn().Err(err).Msg("remote store unavailable, keeping local state")
		return report, nil
	}
	return report, fmt.Errorf("sync failed: %w", err)
}

// persist encrypts the current payload into the canonical local file, runs a
// GC pass and retries pending blob uploads. GC and upload failures are
// logged only.
func (s *clientSyncService) persist(ctx context.Context, remoteReachable bool) error {
	payload, revision, dirty := s.current()

	encrypted, err := s.cipher.EncryptPayload(s.opts.VaultID, payload)
	if err != nil {
		return fmt.Errorf("error encrypting vault: %w", err)
	}

	err = s.cache.Store(ctx, models.VaultFile{
		OwnerID:       s.opts.OwnerID,
		VaultID:       s.opts.VaultID,
		Revision:      revision,
		EncryptedFile: encrypted,
		UpdatedAt:     s.now().UTC(),
		Dirty:         dirty,
	})
	if err != nil {
		return fmt.Errorf("error persisting vault: %w", err)
	}

	remoteReachable = remoteReachable && s.opts.SyncEnabled

	gcReport, err := s.gc.Collect(ctx, payload, remoteReachable)
	switch {
	case err != nil:
		s.logger.Err(err).Str("func", "clientSyncService.persist").Msg("blob garbage collection failed")
	case len(gcReport.LocalDeleted) > 0 || len(gcReport.RemoteDeleted) > 0 || len(gcReport.RemoteFailed) > 0:
		s.logger.Info().
			Strs("local_deleted", gcReport.LocalDeleted).
			Strs("remote_deleted", gcReport.RemoteDeleted).
			Strs("remote_failed", gcReport.RemoteFailed).
			Msg("blob garbage collection")
	}

	if !remoteReachable {
		return nil
	}

	uploaded, err := s.blobs.UploadPending(ctx, payload)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSyncService.persist").Msg("pending blob upload incomplete")
	}
	if len(uploaded) > 0 {
		s.logger.Info().Strs("uploaded", uploaded).Msg("pending blobs uploaded")
	}
	return nil
}

func (s *clientSyncService) idleStatus() models.SyncStatus {
	if !s.opts.SyncEnabled {
		return models.SyncStatusLocalOnly
	}
	return models.SyncStatusOK
}
