package client

import "errors"

// Errors returned by Client implementations. Server status codes are
// mapped onto these so callers never inspect gRPC statuses.
var (
	// ErrUnavailable means the server could not be reached or timed out.
	// Local writes stay dirty and are retried on the next sync.
	ErrUnavailable = errors.New("sync server unavailable")
	// ErrUnauthorized covers rejected credentials and tokens that can no
	// longer be refreshed.
	ErrUnauthorized = errors.New("not authorized by sync server")
	// ErrAlreadyExists is returned when registering a taken username.
	ErrAlreadyExists = errors.New("user already exists")
	// ErrRejected means the server refused the request payload.
	ErrRejected = errors.New("request rejected by sync server")

	ErrLocalDataNotAvailable = errors.New("no offline credentials stored")
)
