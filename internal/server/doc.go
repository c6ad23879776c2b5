// Package server runs the auth gateway's HTTP server.
//
// It owns the listener lifecycle: start, wait for cancellation or a
// termination signal, then shut down gracefully.
package server
