package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-sync/models"
)

const (
	defaultCacheTTLHours = 24
	defaultSyncInterval  = 5 * time.Minute
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used by the client for payload integrity checks.
	HashKey string
	// AccessToken is the bearer token presented to the remote store.
	AccessToken string
	// VaultID identifies the synchronised vault.
	VaultID string
	// MasterPassword derives the vault key; empty means prompt.
	MasterPassword string
	// KeySalt is the base64 key derivation salt; empty derives one from the owner.
	KeySalt string
	// LogLevel is the zerolog level name.
	LogLevel string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the remote store base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DSN is the SQLite file holding the blob cache and the snapshot cache.
	DSN string
	// VaultDir holds durable vault files.
	VaultDir string
	// CacheTTL is the lifetime of a cached vault file.
	CacheTTL time.Duration
	// Mode selects the canonical local location.
	Mode models.StorageMode
	// MaxFileBytes is checked before a blob is encrypted and uploaded.
	MaxFileBytes int64
	// MaxVaultBytes is sent with every blob put.
	MaxVaultBytes int64
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the client refreshes from the remote store.
	SyncInterval time.Duration
}

// ClientSync holds the client cloud sync switches.
type ClientSync struct {
	Enabled bool
	Blobs   bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Sync    ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies client defaults and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	mode, err := models.ParseStorageMode(cfg.Storage.Cache.Mode)
	if err != nil {
		return nil, err
	}

	ttlHours := cfg.Storage.Cache.TTLHours
	if ttlHours == 0 {
		ttlHours = defaultCacheTTLHours
	}

	syncInterval := cfg.Workers.SyncInterval
	if syncInterval == 0 {
		syncInterval = defaultSyncInterval
	}

	maxFile, maxVault := cfg.Storage.Blobs.MaxFileBytes, cfg.Storage.Blobs.MaxVaultBytes
	if maxFile == 0 {
		maxFile = models.DefaultMaxFileBytes
	}
	if maxVault == 0 {
		maxVault = models.DefaultMaxVaultBytes
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey:        cfg.App.HashKey,
			AccessToken:    cfg.App.AccessToken,
			VaultID:        cfg.App.VaultID,
			MasterPassword: cfg.App.MasterPassword,
			KeySalt:        cfg.App.KeySalt,
			LogLevel:       cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN:           cfg.Storage.DB.DSN,
			VaultDir:      cfg.Storage.Files.VaultDir,
			CacheTTL:      time.Duration(ttlHours) * time.Hour,
			Mode:          mode,
			MaxFileBytes:  maxFile,
			MaxVaultBytes: maxVault,
		},
		Workers: ClientWorkers{SyncInterval: syncInterval},
		Sync: ClientSync{
			Enabled: cfg.Sync.Enabled,
			Blobs:   cfg.Sync.Blobs,
		},
	}

	return clientCfg, clientCfg.validate()
}
