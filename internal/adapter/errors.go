package adapter

import "errors"

var (
	// ErrTransportFailure covers every failure to get a usable answer from
	// the remote store: network errors, rejected credentials and 5xx.
	ErrTransportFailure = errors.New("transport failure")

	// ErrUnauthorized is wrapped together with ErrTransportFailure on 401/403.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrStaleRevision is returned when a push lost the revision race.
	ErrStaleRevision = errors.New("stale revision")

	// ErrFileSizeLimitExceeded is returned on HTTP 413 from a blob put.
	ErrFileSizeLimitExceeded = errors.New("file size limit exceeded")

	// ErrVaultQuotaExceeded is returned on HTTP 507 from a blob put.
	ErrVaultQuotaExceeded = errors.New("vault quota exceeded")

	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("not found")
)
