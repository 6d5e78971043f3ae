// Package common contains constants and sentinel errors shared by the
// sanmitsu client and server.
package common

const (
	// AccessTokenHeaderName is the gRPC metadata key that carries the
	// access token on outbound requests.
	AccessTokenHeaderName = "access_token"

	// DateLayout is the calendar-day key format of an entry.
	DateLayout = "2006-01-02"

	// TimestampLayout is the wire and storage format of every sync timestamp.
	// It is fixed-width UTC with microseconds so lexical order matches time order.
	TimestampLayout = "2006-01-02T15:04:05.000000Z"

	// DefaultPullPageSize bounds a single pull request.
	DefaultPullPageSize = 500

	// MaxPullPageSize is the largest page the server will return.
	MaxPullPageSize = 1000
)
