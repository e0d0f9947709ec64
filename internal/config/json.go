package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey   string `json:"token_sign_key"`
		TokenIssuer    string `json:"token_issuer"`
		HashKey        string `json:"hash_key"`
		Version        string `json:"version"`
		LogLevel       string `json:"log_level"`
		AccessToken    string `json:"access_token"`
		VaultID        string `json:"vault_id"`
		MasterPassword string `json:"master_password"`
		KeySalt        string `json:"key_salt"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			VaultDir string `json:"vault_dir"`
		} `json:"files,omitempty"`

		Blobs struct {
			MaxFileBytes  int64 `json:"max_file_bytes"`
			MaxVaultBytes int64 `json:"max_vault_bytes"`
		} `json:"blobs,omitempty"`

		S3 struct {
			Endpoint  string `json:"endpoint"`
			Region    string `json:"region"`
			Bucket    string `json:"bucket"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
		} `json:"s3,omitempty"`

		Cache struct {
			TTLHours int    `json:"ttl_hours"`
			Mode     string `json:"mode"`
		} `json:"cache,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`

	Sync struct {
		Enabled bool `json:"enabled"`
		Blobs   bool `json:"blobs"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:   jsonCfg.App.TokenSignKey,
			TokenIssuer:    jsonCfg.App.TokenIssuer,
			HashKey:        jsonCfg.App.HashKey,
			Version:        jsonCfg.App.Version,
			LogLevel:       jsonCfg.App.LogLevel,
			AccessToken:    jsonCfg.App.AccessToken,
			VaultID:        jsonCfg.App.VaultID,
			MasterPassword: jsonCfg.App.MasterPassword,
			KeySalt:        jsonCfg.App.KeySalt,
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Files: Files{VaultDir: jsonCfg.Storage.Files.VaultDir},
			Blobs: Blobs{
				MaxFileBytes:  jsonCfg.Storage.Blobs.MaxFileBytes,
				MaxVaultBytes: jsonCfg.Storage.Blobs.MaxVaultBytes,
			},
			S3: S3{
				Endpoint:  jsonCfg.Storage.S3.Endpoint,
				Region:    jsonCfg.Storage.S3.Region,
				Bucket:    jsonCfg.Storage.S3.Bucket,
				AccessKey: jsonCfg.Storage.S3.AccessKey,
				SecretKey: jsonCfg.Storage.S3.SecretKey,
			},
			Cache: Cache{
				TTLHours: jsonCfg.Storage.Cache.TTLHours,
				Mode:     jsonCfg.Storage.Cache.Mode,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval)},
		Sync: Sync{
			Enabled: jsonCfg.Sync.Enabled,
			Blobs:   jsonCfg.Sync.Blobs,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
