// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetServerConfig] for the remote store server and
// [GetClientConfig] for the client sync daemon.
package config
