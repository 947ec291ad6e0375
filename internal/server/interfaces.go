package server

// Server is the bin server lifecycle driven by cmd/binserver.
type Server interface {
	// RunServer serves bins until SIGINT, SIGTERM or SIGQUIT arrives, then
	// drains in-flight requests.
	RunServer()

	// Shutdown stops accepting connections and waits for running requests
	// up to the configured request timeout.
	Shutdown()
}
