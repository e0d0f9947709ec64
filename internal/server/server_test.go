package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/handler"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

func TestNewServer_NoTransports(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewHTTPServer_RequestTimeout(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
		w.WriteHeader(http.StatusOK)
	})

	srv := newHTTPServer(router, config.Server{HTTPAddress: ":0", RequestTimeout: 20 * time.Millisecond}, logger.Nop())

	rec := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestNewHTTPServer_NoTimeoutUsesRouter(t *testing.T) {
	router := chi.NewRouter()
	srv := newHTTPServer(router, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.NotNil(t, srv.server)
	assert.Equal(t, ":8080", srv.server.Addr)
	assert.Same(t, router, srv.server.Handler)
}

// fakeTransport blocks in RunServer until Shutdown, or fails at once when
// runErr is set.
type fakeTransport struct {
	runErr    error
	stopped   chan struct{}
	shutdowns int
}

func newFakeTransport(runErr error) *fakeTransport {
	return &fakeTransport{runErr: runErr, stopped: make(chan struct{})}
}

func (f *fakeTransport) RunServer() error {
	if f.runErr != nil {
		return f.runErr
	}
	<-f.stopped
	return nil
}

func (f *fakeTransport) Shutdown() {
	f.shutdowns++
	if f.shutdowns == 1 {
		close(f.stopped)
	}
}

func TestRunTransports_StopsOnCancel(t *testing.T) {
	a, b := newFakeTransport(nil), newFakeTransport(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runTransports(ctx, []transport{a, b}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, 1, a.shutdowns)
	assert.Equal(t, 1, b.shutdowns)
}

func TestRunTransports_FailingTransportStopsAll(t *testing.T) {
	boom := errors.New("address already in use")
	healthy, broken := newFakeTransport(nil), newFakeTransport(boom)

	err := runTransports(context.Background(), []transport{healthy, broken}, logger.Nop())

	assert.ErrorIs(t, err, errTransportStopped)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, healthy.shutdowns)
}
