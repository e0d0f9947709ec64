package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
)

func TestRoutes_VersionNeedsNoToken(t *testing.T) {
	router := newRouterHandler(nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v-test", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestRoutes_VaultRoutesNeedToken(t *testing.T) {
	router := newRouterHandler(&stubSnapshotService{}, &stubBlobService{})

	for _, path := range []string{"/api/vaults/snapshot", "/api/vaults/legacy/snapshot", "/api/vaults/v1/snapshot", "/api/vaults/v1/blobs"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestRoutes_WrongMethodIsNotFound(t *testing.T) {
	router := newRouterHandler(nil, nil)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/version/"},
		{http.MethodDelete, "/api/vaults/snapshot"},
		{http.MethodPost, "/api/vaults/v1/snapshot"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := doRequest(t, router, tt.method, tt.path, "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestRoutes_PushRequiresHashWhenKeyConfigured(t *testing.T) {
	const key = "routes-key"
	utils.InitHasherPool(key)

	called := false
	snapshots := &stubSnapshotService{push: func(models.PushRequest) (models.PushResult, error) {
		called = true
		return models.PushResult{Accepted: true}, nil
	}}
	router := NewHandler(&service.Services{
		IdentityService: stubIdentityService{},
		SnapshotService: snapshots,
	}, key, logger.Nop()).Init()

	rec := doRequest(t, router, http.MethodPut, "/api/vaults/v1/snapshot", `{"revision":1,"encrypted_file":"AQ=="}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: x", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{fmt.Errorf("wrapped: %w", store.ErrSnapshotNotFound), http.StatusNotFound},
		{store.ErrBlobNotFound, http.StatusNotFound},
		{store.ErrFileSizeLimitExceeded, http.StatusRequestEntityTooLarge},
		{store.ErrVaultQuotaExceeded, http.StatusInsufficientStorage},
		{fmt.Errorf("%w: s3 down", store.ErrObjectStore), http.StatusInternalServerError},
		{fmt.Errorf("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, statusFromError(tt.err), tt.err.Error())
	}
}
