// Package client holds the client's remote transport and local store bootstrap.
//
// # Overview
//
//  1. Client is the transport contract used by the services: account calls
//     (Register, GetSalt, Login), Ping, the sync calls Push and Pull, and
//     GetBackupURL.
//  2. GRPCClient implements it over the EntrySync gRPC service. An interceptor
//     injects the access token, refreshes it once when the server reports it
//     expired, and status codes are mapped to sentinel errors.
//  3. OpenStore opens the local EntryStore for the configured backend and
//     prepares its schema.
//
// # Error Handling
//
// Callers match ErrUnavailable, ErrUnauthorized and ErrLocalDataNotAvailable
// with errors.Is.
package client
