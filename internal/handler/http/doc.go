// Package http implements the REST API of the FHEVM server.
//
// Routes under /api/fhe and /api/keys answer with a {success, data}
// envelope, routes under /api/fhevm with the bare result. Every error is a
// JSON {error, message} body whose status is chosen by one mapper:
// validation failures are 400, a client that is still initializing is 503
// and a client that failed to initialize is 500.
package http
