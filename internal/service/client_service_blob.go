// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/crypto"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
)

// idGenerator produces new blob ids.
type idGenerator interface {
	Generate() string
}

type clientBlobService struct {
	opts       ClientOptions
	localBlobs store.LocalBlobRepository
	adapter    adapter.ServerAdapter
	cipher     crypto.VaultCipher
	ids        idGenerator

	logger *logger.Logger
	now    func() time.Time
}

// NewClientBlobService returns the attachment service of one vault. File
// limits default to [models.DefaultMaxFileBytes].
func NewClientBlobService(
	opts ClientOptions,
	localBlobs store.LocalBlobRepository,
	serverAdapter adapter.ServerAdapter,
	cipher crypto.VaultCipher,
	logger *logger.Logger,
) ClientBlobService {
	if opts.MaxFileBytes <= 0 {
		opts.MaxFileBytes = models.DefaultMaxFileBytes
	}

	return &clientBlobService{
		opts:       opts,
		localBlobs: localBlobs,
		adapter:    serverAdapter,
		cipher:     cipher,
		ids:        utils.NewUUIDGenerator(),
		logger:     logger,
		now:        time.Now,
	}
}

func (s *clientBlobService) Attach(ctx context.Context, fileName, mimeType string, data []byte, localOnly bool) (models.BlobRef, error) {
	size := int64(len(data))
	if size == 0 || size > s.opts.MaxFileBytes {
		return models.BlobRef{}, fmt.Errorf("%w: %d bytes, limit %d", adapter.ErrFileSizeLimitExceeded, size, s.opts.MaxFileBytes)
	}

	blobID := s.ids.Generate()
	nonce, ciphertext, err := s.cipher.EncryptBlob(blobID, data)
	if err != nil {
		return models.BlobRef{}, fmt.Errorf("error encrypting blob: %w", err)
	}

	blob := models.VaultBlob{
		OwnerID:    s.opts.OwnerID,
		VaultID:    s.opts.VaultID,
		BlobID:     blobID,
		Nonce:      nonce,
		Ciphertext: ciphertext,
		SizeBytes:  size,
		SHA256:     utils.SHA256Hex(data),
		MimeType:   mimeType,
		FileName:   fileName,
		UpdatedAt:  s.now().UTC(),
	}

	if err = s.localBlobs.Save(ctx, blob, false); err != nil {
		return models.BlobRef{}, fmt.Errorf("error caching blob: %w", err)
	}

	if !localOnly && s.opts.remoteBlobsAllowed() {
		if err = s.upload(ctx, blob); err != nil {
			return models.BlobRef{}, err
		}
	}

	return models.BlobRef{
		BlobID:    blob.BlobID,
		FileName:  blob.FileName,
		MimeType:  blob.MimeType,
		SizeBytes: blob.SizeBytes,
		SHA256:    blob.SHA256,
	}, nil
}

// upload pushes a freshly attached blob. Quota refusals roll back the local
// row; transport failures keep it pending so UploadPending retries it.
func (s *clientBlobService) upload(ctx context.Context, blob models.VaultBlob) error {
	err := s.put(ctx, blob)
	switch {
	case err == nil:
		s.markUploaded(ctx, blob.BlobID)
		return nil

	case errors.Is(err, adapter.ErrFileSizeLimitExceeded) || errors.Is(err, adapter.ErrVaultQuotaExceeded):
		if delErr := s.localBlobs.Delete(ctx, blob.OwnerID, blob.VaultID, blob.BlobID); delErr != nil {
			s.logger.Err(delErr).Str("func", "clientBlobService.upload").Str("blob_id", blob.BlobID).Msg("rollback of local blob failed")
		}
		return fmt.Errorf("blob upload refused: %w", err)

	case errors.Is(err, adapter.ErrTransportFailure):
		s.logger.Warn().Err(err).Str("blob_id", blob.BlobID).Msg("blob kept pending, remote store unreachable")
		return nil

	default:
		return fmt.Errorf("error uploading blob: %w", err)
	}
}

func (s *clientBlobService) UploadPending(ctx context.Context, payload models.VaultPayload) ([]string, error) {
	if !s.opts.remoteBlobsAllowed() {
		return nil, nil
	}

	pending, err := s.localBlobs.ListPendingUploads(ctx, s.opts.OwnerID, s.opts.VaultID)
	if err != nil {
		return nil, fmt.Errorf("error listing pending blobs: %w", err)
	}

	shared := KeepBlobIDs(BuildPushPayload(payload))
	candidates := filter(pending, shared.Has)
	if len(candidates) == 0 {
		return nil, nil
	}

	listed, err := s.adapter.ListBlobs(ctx, s.opts.VaultID)
	if err != nil {
		return nil, fmt.Errorf("error listing remote blobs: %w", err)
	}
	remoteSums := make(map[string]string, len(listed))
	for _, b := range listed {
		remoteSums[b.BlobID] = b.SHA256
	}

	uploaded := make([]string, 0, len(candidates))
	for _, id := range candidates {
		blob, err := s.localBlobs.Get(ctx, s.opts.OwnerID, s.opts.VaultID, id)
		if err != nil {
			return uploaded, fmt.Errorf("error reading pending blob %s: %w", id, err)
		}

		// an earlier put may have landed without its response
		if sum, ok := remoteSums[id]; !ok || sum != blob.SHA256 {
			err = s.put(ctx, blob)
			switch {
			case errors.Is(err, adapter.ErrFileSizeLimitExceeded) || errors.Is(err, adapter.ErrVaultQuotaExceeded):
				s.logger.Warn().Err(err).Str("func", "clientBlobService.UploadPending").Str("blob_id", id).Msg("pending blob refused by remote store")
				continue
			case err != nil:
				return uploaded, fmt.Errorf("error uploading pending blob %s: %w", id, err)
			}
		}

		s.markUploaded(ctx, id)
		uploaded = append(uploaded, id)
	}

	return uploaded, nil
}

func (s *clientBlobService) put(ctx context.Context, blob models.VaultBlob) error {
	remote := blob
	remote.OwnerID = ""

	_, err := s.adapter.PutBlob(ctx, models.PutBlobRequest{
		Blob:          remote,
		MaxFileBytes:  s.opts.MaxFileBytes,
		MaxVaultBytes: s.opts.MaxVaultBytes,
	})
	return err
}

// markUploaded clears the pending flag. A failure only means one more
// idempotent put later.
func (s *clientBlobService) markUploaded(ctx context.Context, blobID string) {
	if err := s.localBlobs.MarkUploaded(ctx, s.opts.OwnerID, s.opts.VaultID, blobID); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientBlobService.markUploaded").Str("blob_id", blobID).Msg("pending flag not cleared")
	}
}

func (s *clientBlobService) Open(ctx context.Context, ref models.BlobRef) ([]byte, error) {
	blob, err := s.localBlobs.Get(ctx, s.opts.OwnerID, s.opts.VaultID, ref.BlobID)
	switch {
	case errors.Is(err, store.ErrBlobNotFound):
		blob, err = s.fetch(ctx, ref.BlobID)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("error reading cached blob: %w", err)
	}

	plaintext, err := s.cipher.DecryptBlob(blob.BlobID, blob.Nonce, blob.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("error decrypting blob %s: %w", blob.BlobID, err)
	}

	if ref.SHA256 != "" && utils.SHA256Hex(plaintext) != ref.SHA256 {
		return nil, fmt.Errorf("%w: checksum mismatch for blob %s", crypto.ErrDecryptionFailure, blob.BlobID)
	}

	return plaintext, nil
}

// fetch downloads a blob missing from the local cache and caches it.
func (s *clientBlobService) fetch(ctx context.Context, blobID string) (models.VaultBlob, error) {
	if !s.opts.remoteBlobsAllowed() {
		return models.VaultBlob{}, fmt.Errorf("%w: %w", store.ErrBlobNotFound, ErrBlobSyncDisabled)
	}

	remote, err := s.adapter.GetBlob(ctx, s.opts.VaultID, blobID)
	if err != nil {
		return models.VaultBlob{}, fmt.Errorf("error fetching blob: %w", err)
	}
	if remote == nil {
		return models.VaultBlob{}, fmt.Errorf("%w: %s", store.ErrBlobNotFound, blobID)
	}

	blob := *remote
	blob.OwnerID, blob.VaultID = s.opts.OwnerID, s.opts.VaultID
	if err = s.localBlobs.Save(ctx, blob, true); err != nil {
		s.logger.Warn().Err(err).Str("blob_id", blobID).Msg("caching fetched blob failed")
	}

	return blob, nil
}
