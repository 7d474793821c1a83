package server

// Server is a transport managed by this package. RunServer blocks until the
// server stops; Shutdown stops it gracefully.
type Server interface {
	RunServer()
	Shutdown()
}
