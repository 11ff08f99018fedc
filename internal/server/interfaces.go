package server

// Server is the lifecycle shared by the transport servers of this package.
type Server interface {
	// RunServer blocks until the server stops.
	RunServer()

	// Shutdown stops accepting work and waits for in-flight requests, up to
	// the configured shutdown timeout.
	Shutdown()
}

// listener is implemented by every transport server: serve blocks until the
// server stops and returns nil after a regular Shutdown.
type listener interface {
	Server
	name() string
	serve() error
}
