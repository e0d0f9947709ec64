package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vault-sync/internal/app"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
)

// errorStatusMap lists the sentinels with a dedicated status. Anything else
// is a 500.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrSnapshotNotFound:      http.StatusNotFound,
	store.ErrBlobNotFound:          http.StatusNotFound,
	store.ErrFileSizeLimitExceeded: http.StatusRequestEntityTooLarge,
	store.ErrVaultQuotaExceeded:    http.StatusInsufficientStorage,

	store.ErrObjectStore:          http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with its mapped status. Internal
// errors are not echoed to the caller.
func writeServiceError(w http.ResponseWriter, log *logger.Logger, funcName string, err error) {
	status := statusFromError(err)
	log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = app.MsgInternalServerError
	}
	utils.WriteError(w, message, status)
}
