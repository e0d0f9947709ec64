package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing remote address or request timeout with sync on).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN, negative quotas or an unknown storage mode).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing vault id or token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs indicates missing listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
