// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/models"
)

type clientGCService struct {
	opts       ClientOptions
	localBlobs store.LocalBlobRepository
	tombstones store.BlobTombstoneRepository
	adapter    adapter.ServerAdapter
	logger     *logger.Logger
}

// NewClientGCService returns the blob garbage collector of one vault.
// Remote deletes are limited to blobs this device dropped from its own cache;
// they are queued in tombstones until the remote store confirms them.
func NewClientGCService(
	opts ClientOptions,
	localBlobs store.LocalBlobRepository,
	tombstones store.BlobTombstoneRepository,
	serverAdapter adapter.ServerAdapter,
	logger *logger.Logger,
) ClientGCService {
	return &clientGCService{
		opts:       opts,
		localBlobs: localBlobs,
		tombstones: tombstones,
		adapter:    serverAdapter,
		logger:     logger,
	}
}

// KeepBlobIDs returns the blob ids payload still references: blob refs of
// live storage items and of storage items waiting in the trash.
func KeepBlobIDs(payload models.VaultPayload) IDSet {
	keep := make(IDSet)
	for _, si := range payload.StorageItems {
		if si.BlobRef != nil && si.BlobRef.BlobID != "" {
			keep.add(si.BlobRef.BlobID)
		}
	}
	for _, entry := range payload.Trash {
		if id, ok := entry.ReferencedBlobID(); ok {
			keep.add(id)
		}
	}
	return keep
}

func (s *clientGCService) Collect(ctx context.Context, payload models.VaultPayload, remoteReachable bool) (models.GCReport, error) {
	keep := KeepBlobIDs(payload)
	report := models.GCReport{Kept: len(keep)}

	localIDs, err := s.localBlobs.ListIDs(ctx, s.opts.OwnerID, s.opts.VaultID)
	if err != nil {
		return report, fmt.Errorf("error listing local blobs: %w", err)
	}

	stale := make([]string, 0, len(localIDs))
	for _, id := range localIDs {
		if !keep.Has(id) {
			stale = append(stale, id)
		}
	}

	if len(stale) > 0 {
		// queued before the local rows go, so a crash in between loses nothing
		if s.opts.remoteBlobsAllowed() {
			if err = s.tombstones.Add(ctx, s.opts.OwnerID, s.opts.VaultID, stale...); err != nil {
				return report, fmt.Errorf("error queueing remote blob deletes: %w", err)
			}
		}
		if err = s.localBlobs.Delete(ctx, s.opts.OwnerID, s.opts.VaultID, stale...); err != nil {
			return report, fmt.Errorf("error deleting local blobs: %w", err)
		}
		report.LocalDeleted = stale
	}

	if !remoteReachable || !s.opts.remoteBlobsAllowed() {
		return report, nil
	}

	s.drainTombstones(ctx, keep, &report)
	return report, nil
}

// drainTombstones retries the queued remote deletes. Ids referenced again are
// dequeued without a delete. Failed ids stay queued for the next pass.
func (s *clientGCService) drainTombstones(ctx context.Context, keep IDSet, report *models.GCReport) {
	log := s.logger.GetChildLogger()

	queued, err := s.tombstones.List(ctx, s.opts.OwnerID, s.opts.VaultID)
	if err != nil {
		log.Warn().Err(err).Str("func", "clientGCService.drainTombstones").Msg("listing queued blob deletes failed")
		return
	}

	done := make([]string, 0, len(queued))
	for _, id := range queued {
		if keep.Has(id) {
			done = append(done, id)
			continue
		}

		res, err := s.adapter.DeleteBlob(ctx, s.opts.VaultID, id)
		if err != nil {
			log.Warn().Err(err).Str("func", "clientGCService.drainTombstones").Str("blob_id", id).Msg("remote blob delete failed")
			report.RemoteFailed = append(report.RemoteFailed, id)
			continue
		}
		if res.Deleted {
			report.RemoteDeleted = append(report.RemoteDeleted, id)
		}
		done = append(done, id)
	}

	if len(done) == 0 {
		return
	}
	if err = s.tombstones.Remove(ctx, s.opts.OwnerID, s.opts.VaultID, done...); err != nil {
		log.Warn().Err(err).Str("func", "clientGCService.drainTombstones").Msg("dequeueing blob deletes failed")
	}
}
