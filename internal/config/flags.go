package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN (postgres on the server, sqlite file on the client)
//	-f durable vault file directory
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-hash-key request integrity hash key
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-log-level zerolog level
//	-remote remote store base URL used by the client
//	-remote-timeout client request timeout
//	-vault vault id synchronised by the client
//	-sync-interval scheduled refresh period
//	-cache-ttl cached vault file lifetime in hours
//	-storage-mode "durable" or "cache-only"
//	-sync enable snapshot sync
//	-sync-blobs enable blob sync
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var cfg StructuredConfig

	fs := flag.NewFlagSet("go-vault-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Files.VaultDir, "f", "", "Durable vault file directory")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "Request integrity hash key")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "remote", "", "Remote store base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "remote-timeout", 0, "Remote request timeout")
	fs.StringVar(&cfg.App.VaultID, "vault", "", "Vault id")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Scheduled refresh period")
	fs.IntVar(&cfg.Storage.Cache.TTLHours, "cache-ttl", 0, "Cached vault file lifetime in hours")
	fs.StringVar(&cfg.Storage.Cache.Mode, "storage-mode", "", "Local storage mode: durable or cache-only")
	fs.BoolVar(&cfg.Sync.Enabled, "sync", false, "Enable snapshot sync")
	fs.BoolVar(&cfg.Sync.Blobs, "sync-blobs", false, "Enable blob sync")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
