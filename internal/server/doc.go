// Package server runs the HTTP and gRPC transports of the FHEVM server
// until a termination signal arrives, then shuts them down gracefully.
package server
