// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-vault-sync server and client. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters, the
	// request integrity key and the client vault identity.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the
	// relational database, durable vault files, blob quotas, the optional
	// S3 blob backend and the local snapshot cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote store address used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Sync holds the client cloud sync switches.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the optional path to a dotenv file loaded before the
	// environment is parsed. Defaults to ".env" in the working directory.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to verify access tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of every access token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// HashKey is the HMAC key used for request body integrity checking
	// (the HashSHA256 header). Integrity checks are off when empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// AccessToken is the bearer token the client presents to the remote store.
	// Env: APP_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// VaultID identifies the vault the client synchronises.
	// Env: APP_VAULT_ID
	VaultID string `env:"VAULT_ID"`

	// MasterPassword derives the vault key on the client. When empty the
	// client prompts for it on the terminal.
	// Env: APP_MASTER_PASSWORD
	MasterPassword string `env:"MASTER_PASSWORD"`

	// KeySalt is the base64 salt used for vault key derivation.
	// Env: APP_KEY_SALT
	KeySalt string `env:"KEY_SALT"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the durable vault file settings.
	Files Files `envPrefix:"FILES_"`

	// Blobs holds default blob quotas.
	Blobs Blobs `envPrefix:"BLOBS_"`

	// S3 holds the optional object storage backend for blob ciphertext.
	S3 S3 `envPrefix:"S3_"`

	// Cache holds the local snapshot cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string on the server and the SQLite
	// file path on the client.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for durable vault files.
type Files struct {
	// VaultDir is the directory holding durable encrypted vault files.
	// Env: STORAGE_FILES_VAULT_DIR
	VaultDir string `env:"VAULT_DIR"`
}

// Blobs holds the default quotas applied when a put does not override them.
type Blobs struct {
	// MaxFileBytes is the per-blob plaintext limit.
	// Env: STORAGE_BLOBS_MAX_FILE_BYTES
	MaxFileBytes int64 `env:"MAX_FILE_BYTES"`

	// MaxVaultBytes is the per-vault plaintext limit.
	// Env: STORAGE_BLOBS_MAX_VAULT_BYTES
	MaxVaultBytes int64 `env:"MAX_VAULT_BYTES"`
}

// S3 holds S3-compatible object storage settings. Blob ciphertext is kept
// inline in the database when Bucket is empty.
type S3 struct {
	Endpoint  string `env:"ENDPOINT"`
	Region    string `env:"REGION"`
	Bucket    string `env:"BUCKET"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
}

// Enabled reports whether blob ciphertext should go to object storage.
func (s S3) Enabled() bool {
	return s.Bucket != ""
}

// Cache holds the client snapshot cache settings.
type Cache struct {
	// TTLHours is the lifetime of a cached vault file.
	// Env: STORAGE_CACHE_TTL_HOURS
	TTLHours int `env:"TTL_HOURS"`

	// Mode is "durable" or "cache-only".
	// Env: STORAGE_CACHE_MODE
	Mode string `env:"MODE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound settings of the client transport.
type Adapter struct {
	// HTTPAddress is the base URL of the remote store (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the scheduled refresh.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Sync holds the client cloud sync switches.
type Sync struct {
	// Enabled turns snapshot push/pull on.
	// Env: SYNC_ENABLED
	Enabled bool `env:"ENABLED"`

	// Blobs grants the blob sync capability (remote blob put/delete).
	// Env: SYNC_BLOBS
	Blobs bool `env:"BLOBS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file (exported into the process environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// GetServerConfig loads the structured config and checks the settings the
// remote store server cannot start without.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}
