package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
)

const testToken = "good-token"

var testIdentity = models.Identity{OwnerID: "owner-1", UserID: "42"}

// ---------------------------------------------------------------------------
// service stubs
// ---------------------------------------------------------------------------

type stubIdentityService struct{}

func (stubIdentityService) ParseToken(_ context.Context, token string) (models.Identity, error) {
	if token != testToken {
		return models.Identity{}, service.ErrTokenIsExpiredOrInvalid
	}
	return testIdentity, nil
}

type mockAppInfoService struct {
	version string
}

func (m mockAppInfoService) GetAppVersion(context.Context) string { return m.version }

type stubSnapshotService struct {
	pull       func(ownerID, vaultID string) (models.VaultSnapshot, error)
	pullOwner  func(ownerID string) (models.VaultSnapshot, error)
	pullLegacy func(identity models.Identity) (models.VaultSnapshot, error)
	push       func(req models.PushRequest) (models.PushResult, error)
}

func (s *stubSnapshotService) Pull(_ context.Context, ownerID, vaultID string) (models.VaultSnapshot, error) {
	return s.pull(ownerID, vaultID)
}

func (s *stubSnapshotService) PullByOwner(_ context.Context, ownerID string) (models.VaultSnapshot, error) {
	return s.pullOwner(ownerID)
}

func (s *stubSnapshotService) PullByLegacyUserPrefix(_ context.Context, identity models.Identity) (models.VaultSnapshot, error) {
	return s.pullLegacy(identity)
}

func (s *stubSnapshotService) Push(_ context.Context, req models.PushRequest) (models.PushResult, error) {
	return s.push(req)
}

type stubBlobService struct {
	put    func(req models.PutBlobRequest) (models.PutBlobResult, error)
	get    func(ownerID, vaultID, blobID string) (models.VaultBlob, error)
	list   func(ownerID, vaultID string) ([]models.VaultBlob, error)
	delete func(ownerID, vaultID, blobID string) (models.DeleteBlobResult, error)
}

func (s *stubBlobService) Put(_ context.Context, req models.PutBlobRequest) (models.PutBlobResult, error) {
	return s.put(req)
}

func (s *stubBlobService) Get(_ context.Context, ownerID, vaultID, blobID string) (models.VaultBlob, error) {
	return s.get(ownerID, vaultID, blobID)
}

func (s *stubBlobService) List(_ context.Context, ownerID, vaultID string) ([]models.VaultBlob, error) {
	return s.list(ownerID, vaultID)
}

func (s *stubBlobService) Delete(_ context.Context, ownerID, vaultID, blobID string) (models.DeleteBlobResult, error) {
	return s.delete(ownerID, vaultID, blobID)
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func newTestHandler() *Handler {
	return &Handler{traceIDs: utils.NewUUIDGenerator(), logger: logger.Nop()}
}

func newRouterHandler(snapshots service.SnapshotService, blobs service.BlobService) http.Handler {
	h := NewHandler(&service.Services{
		IdentityService: stubIdentityService{},
		SnapshotService: snapshots,
		BlobService:     blobs,
		AppInfoService:  mockAppInfoService{version: "v-test"},
	}, "", logger.Nop())
	return h.Init()
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+testToken)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.NotNil(t, rec)
	return rec
}
