// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber app; this package only describes how it
// listens, whether it is mounted under a path prefix, and whether inbound trace
// headers are stripped.
package server
