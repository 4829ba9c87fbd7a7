package server

// Server defines the lifecycle contract of the environment server.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns the error that stopped the listener, if any.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
