package server

// Server is the process-level lifecycle of the transports.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT, or until a
	// transport fails, and returns after every transport has stopped.
	RunServer()

	// Shutdown drains every transport.
	Shutdown()
}

// transport is one listener managed by [Server].
type transport interface {
	name() string
	// serve blocks; a graceful stop returns nil.
	serve() error
	shutdown()
}
