package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrNoLegacyAccount         = errors.New("caller has no legacy account id")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	// ErrSyncInProgress is returned when a pull or push cycle is requested
	// while another one is still running on the same coordinator.
	ErrSyncInProgress = errors.New("sync cycle already in progress")

	// ErrVaultNotLoaded is returned by operations that need local state
	// before Load has succeeded.
	ErrVaultNotLoaded = errors.New("vault is not loaded")

	// ErrBlobSyncDisabled is returned when a blob must be fetched remotely
	// but the blob sync capability is not granted.
	ErrBlobSyncDisabled = errors.New("blob sync is disabled")
)
