// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote vault store.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// HTTP status codes are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] without knowing the transport: network errors,
// 401/403 and 5xx become [ErrTransportFailure], 409 on a push becomes
// [ErrStaleRevision], and 413/507 on a blob put become the quota errors.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the remote
// vault store. The caller identity is carried by the bearer token; pull
// methods return nil without error when nothing is stored.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string

	// ServerVersion returns the remote build version. The sync job uses it as
	// a reachability probe.
	ServerVersion(ctx context.Context) (string, error)

	// PullByOwner returns the most recently updated snapshot of the caller.
	PullByOwner(ctx context.Context) (*models.VaultSnapshot, error)

	// PullByOwnerVault returns the snapshot of one vault.
	PullByOwnerVault(ctx context.Context, vaultID string) (*models.VaultSnapshot, error)

	// PullByLegacyUserPrefix returns the newest snapshot stored under a
	// deprecated per-session owner key of the caller's account.
	PullByLegacyUserPrefix(ctx context.Context) (*models.VaultSnapshot, error)

	// PushByOwnerVault writes a snapshot. A push whose revision is not newer
	// than the stored one fails with [ErrStaleRevision].
	PushByOwnerVault(ctx context.Context, req models.PushRequest) (models.PushResult, error)

	// GetBlob returns one blob including ciphertext.
	GetBlob(ctx context.Context, vaultID, blobID string) (*models.VaultBlob, error)

	// ListBlobs returns the metadata of every blob of a vault.
	ListBlobs(ctx context.Context, vaultID string) ([]models.VaultBlob, error)

	// PutBlob uploads a blob. Quota violations fail with
	// [ErrFileSizeLimitExceeded] or [ErrVaultQuotaExceeded].
	PutBlob(ctx context.Context, req models.PutBlobRequest) (models.PutBlobResult, error)

	// DeleteBlob removes a blob and reports the remaining vault usage.
	DeleteBlob(ctx context.Context, vaultID, blobID string) (models.DeleteBlobResult, error)
}
