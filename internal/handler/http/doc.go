// Package http implements the REST transport of the remote vault store.
//
// Routes expose the snapshot and blob stores to authenticated callers. The
// caller identity is resolved from the bearer token by the auth middleware;
// owner ids are never read from request bodies. Request tracing, access
// logging, gzip and body integrity checks run before the handlers.
package http
