package server

// Server runs the transports of the ledger chat backend.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives or a
	// transport fails, then shuts every transport down.
	RunServer()

	// Shutdown stops every transport.
	Shutdown()
}

// transport is one listener managed by [Server]. Serve blocks until the
// listener is closed; a nil error means a requested shutdown.
type transport interface {
	Name() string
	Serve() error
	Shutdown()
}
