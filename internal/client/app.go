package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/crypto"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/internal/workers"
)

var errEmptyMasterPassword = errors.New("master password is empty")

// readPassword reads the master password without echo.
var readPassword = func() ([]byte, error) {
	fmt.Fprint(os.Stderr, "Master password: ")
	defer fmt.Fprintln(os.Stderr)
	return term.ReadPassword(int(os.Stdin.Fd()))
}

type App struct {
	opts     service.ClientOptions
	storages *store.ClientStorages
	services *service.ClientServices
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp wires the client daemon for the vault named in cfg. The owner is
// read from the access token subject; without a token the vault is kept
// under the local owner.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	ownerID, _ := utils.OwnerFromAccessToken(cfg.App.AccessToken)
	opts := service.NewClientOptions(*cfg, ownerID)

	cipher, err := newVaultCipher(cfg.App, opts.OwnerID)
	if err != nil {
		return nil, err
	}

	var serverAdapter adapter.ServerAdapter
	if cfg.Sync.Enabled || cfg.Adapter.HTTPAddress != "" {
		serverAdapter, err = adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, logger)
		if err != nil {
			return nil, fmt.Errorf("create server adapter: %w", err)
		}
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(*cfg, opts, storages, serverAdapter, cipher, logger)

	logger.Info().
		Str("owner_id", opts.OwnerID).
		Str("vault_id", opts.VaultID).
		Str("mode", string(opts.Mode)).
		Bool("sync", opts.SyncEnabled).
		Bool("blob_sync", opts.BlobSync).
		Msg("client app created")

	return &App{
		opts:     opts,
		storages: storages,
		services: services,
		workers:  workers.NewWorkers(services.SyncJob),
		logger:   logger,
	}, nil
}

// Run restores the local vault, refreshes it once and keeps it in sync
// until ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer a.storages.Close()

	if err := a.services.CacheService.Restore(ctx); err != nil {
		return fmt.Errorf("restore storage mode: %w", err)
	}

	report, err := a.services.SyncService.Load(ctx)
	if err != nil {
		return fmt.Errorf("load local vault: %w", err)
	}
	a.logger.Info().Str("status", string(report.Status)).Int64("revision", report.Revision).Msg("local vault loaded")

	if a.opts.SyncEnabled {
		report, err = a.services.SyncService.Refresh(ctx)
		if err != nil {
			// the scheduled refresh retries, local state stays usable
			a.logger.Err(err).Str("func", "*App.Run").Msg("initial refresh failed")
		} else {
			a.logger.Info().
				Str("status", string(report.Status)).
				Int64("revision", report.Revision).
				Bool("pulled", report.Pulled).
				Bool("pushed", report.Pushed).
				Msg("initial refresh done")
		}
	}

	a.workers.Run(ctx)
	a.logger.Info().Msg("client stopped")

	return nil
}

func newVaultCipher(cfg config.ClientApp, ownerID string) (crypto.VaultCipher, error) {
	password := cfg.MasterPassword
	if password == "" {
		raw, err := readPassword()
		if err != nil {
			return nil, fmt.Errorf("read master password: %w", err)
		}
		password = string(raw)
	}
	if password == "" {
		return nil, errEmptyMasterPassword
	}

	salt := crypto.OwnerSalt(ownerID)
	if cfg.KeySalt != "" {
		parsed, err := crypto.ParseSalt(cfg.KeySalt)
		if err != nil {
			return nil, err
		}
		salt = parsed
	}

	cipher, err := crypto.NewVaultCipher(password, salt)
	if err != nil {
		return nil, fmt.Errorf("derive vault key: %w", err)
	}
	return cipher, nil
}
