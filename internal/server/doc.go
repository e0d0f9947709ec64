// Package server runs the HTTP API and the gRPC health endpoint of the
// remote vault store and stops both when the process is asked to exit.
package server
