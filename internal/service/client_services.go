// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/crypto"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
)

// ClientServices groups the services of one client vault.
type ClientServices struct {
	CacheService ClientCacheService
	GCService    ClientGCService
	BlobService  ClientBlobService
	SyncService  ClientSyncService
	SyncJob      ClientSyncJob
}

// NewClientServices wires the client services over storages. The blob
// service is shared by sync (pending uploads) and by callers attaching files.
func NewClientServices(
	cfg config.ClientConfig,
	opts ClientOptions,
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	cipher crypto.VaultCipher,
	logger *logger.Logger,
) *ClientServices {
	cacheSvc := NewClientCacheService(opts, storages.SnapshotCacheRepository, storages.VaultFileStorage, storages.VaultStateRepository, logger)
	gcSvc := NewClientGCService(opts, storages.LocalBlobRepository, storages.BlobTombstoneRepository, serverAdapter, logger)
	blobSvc := NewClientBlobService(opts, storages.LocalBlobRepository, serverAdapter, cipher, logger)
	syncSvc := NewClientSyncService(opts, serverAdapter, cipher, cacheSvc, gcSvc, blobSvc, logger)

	return &ClientServices{
		CacheService: cacheSvc,
		GCService:    gcSvc,
		BlobService:  blobSvc,
		SyncService:  syncSvc,
		SyncJob:      NewClientSyncJob(syncSvc, cacheSvc, cfg.Workers.SyncInterval, logger),
	}
}
