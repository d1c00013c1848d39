package server

// Server is the lifecycle of the accounts HTTP listener.
type Server interface {
	// RunServer serves requests until a termination signal arrives or the
	// listener fails.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests.
	Shutdown()
}
