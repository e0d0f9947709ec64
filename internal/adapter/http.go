package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
)

const (
	versionPath        = "/api/version/"
	ownerSnapshotPath  = "/api/vaults/snapshot"
	legacySnapshotPath = "/api/vaults/legacy/snapshot"
	vaultSnapshotPath  = "/api/vaults/{vaultID}/snapshot"
	blobsPath          = "/api/vaults/{vaultID}/blobs"
	blobPath           = "/api/vaults/{vaultID}/blobs/{blobID}"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying resty client with the request timeout. Request
// bodies are signed with appCfg.HashKey when it is set.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hashKey: appCfg.HashKey,
		token:   strings.TrimSpace(appCfg.AccessToken),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ServerVersion implements [ServerAdapter]. It GETs /api/version/ and returns
// the plain-text body.
func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get(versionPath)
	if err != nil {
		return "", transportError("server version", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// PullByOwner implements [ServerAdapter]. GET /api/vaults/snapshot.
func (h *httpServerAdapter) PullByOwner(ctx context.Context) (*models.VaultSnapshot, error) {
	return h.pull(h.authedRequest(ctx), ownerSnapshotPath, "pull by owner")
}

// PullByOwnerVault implements [ServerAdapter]. GET /api/vaults/{vaultID}/snapshot.
func (h *httpServerAdapter) PullByOwnerVault(ctx context.Context, vaultID string) (*models.VaultSnapshot, error) {
	req := h.authedRequest(ctx).SetPathParam("vaultID", vaultID)
	return h.pull(req, vaultSnapshotPath, "pull by owner vault")
}

// PullByLegacyUserPrefix implements [ServerAdapter]. GET /api/vaults/legacy/snapshot.
func (h *httpServerAdapter) PullByLegacyUserPrefix(ctx context.Context) (*models.VaultSnapshot, error) {
	return h.pull(h.authedRequest(ctx), legacySnapshotPath, "pull by legacy prefix")
}

func (h *httpServerAdapter) pull(req *resty.Request, path, op string) (*models.VaultSnapshot, error) {
	var snapshot models.VaultSnapshot

	resp, err := req.SetResult(&snapshot).Get(path)
	if err != nil {
		return nil, transportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &snapshot, nil
}

// PushByOwnerVault implements [ServerAdapter]. PUT /api/vaults/{vaultID}/snapshot.
// The server answers 409 with {"accepted":false} when the revision is stale.
func (h *httpServerAdapter) PushByOwnerVault(ctx context.Context, push models.PushRequest) (models.PushResult, error) {
	req, err := h.signedRequest(ctx, push)
	if err != nil {
		return models.PushResult{}, err
	}

	var result models.PushResult
	resp, err := req.
		SetPathParam("vaultID", push.VaultID).
		SetResult(&result).
		Put(vaultSnapshotPath)
	if err != nil {
		return models.PushResult{}, transportError("push", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PushResult{Accepted: false}, err
	}

	return result, nil
}

// GetBlob implements [ServerAdapter]. GET /api/vaults/{vaultID}/blobs/{blobID}.
func (h *httpServerAdapter) GetBlob(ctx context.Context, vaultID, blobID string) (*models.VaultBlob, error) {
	var blob models.VaultBlob

	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"vaultID": vaultID, "blobID": blobID}).
		SetResult(&blob).
		Get(blobPath)
	if err != nil {
		return nil, transportError("get blob", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &blob, nil
}

// ListBlobs implements [ServerAdapter]. GET /api/vaults/{vaultID}/blobs.
func (h *httpServerAdapter) ListBlobs(ctx context.Context, vaultID string) ([]models.VaultBlob, error) {
	var blobs []models.VaultBlob

	resp, err := h.authedRequest(ctx).
		SetPathParam("vaultID", vaultID).
		SetResult(&blobs).
		Get(blobsPath)
	if err != nil {
		return nil, transportError("list blobs", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return blobs, nil
}

// PutBlob implements [ServerAdapter]. PUT /api/vaults/{vaultID}/blobs/{blobID}.
func (h *httpServerAdapter) PutBlob(ctx context.Context, put models.PutBlobRequest) (models.PutBlobResult, error) {
	req, err := h.signedRequest(ctx, put)
	if err != nil {
		return models.PutBlobResult{}, err
	}

	var result models.PutBlobResult
	resp, err := req.
		SetPathParams(map[string]string{"vaultID": put.Blob.VaultID, "blobID": put.Blob.BlobID}).
		SetResult(&result).
		Put(blobPath)
	if err != nil {
		return models.PutBlobResult{}, transportError("put blob", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PutBlobResult{}, err
	}

	return result, nil
}

// DeleteBlob implements [ServerAdapter]. DELETE /api/vaults/{vaultID}/blobs/{blobID}.
func (h *httpServerAdapter) DeleteBlob(ctx context.Context, vaultID, blobID string) (models.DeleteBlobResult, error) {
	var result models.DeleteBlobResult

	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"vaultID": vaultID, "blobID": blobID}).
		SetResult(&result).
		Delete(blobPath)
	if err != nil {
		return models.DeleteBlobResult{}, transportError("delete blob", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeleteBlobResult{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// signedRequest encodes body as JSON and attaches its HMAC in the
// [utils.HashHeader] header when a hash key is configured.
func (h *httpServerAdapter) signedRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if h.hashKey != "" {
		req.SetHeader(utils.HashHeader, utils.HashHex(payload, h.hashKey))
	}

	return req, nil
}

func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s request: %w", ErrTransportFailure, op, err)
}
