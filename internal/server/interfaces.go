package server

// Server is the lifecycle of one transport endpoint. The sync API runs a
// single HTTP server today; the interface keeps the bootstrap indifferent
// to that.
type Server interface {
	// RunServer serves requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully drains in-flight requests and frees resources.
	Shutdown()
}
