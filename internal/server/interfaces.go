package server

import "context"

// Server defines the lifecycle of the gateway's transport server.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a termination
	// signal arrives, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}
