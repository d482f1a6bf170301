package provider

import "errors"

var (
	// ErrMissingClientID is returned when the consumer client ID is not provided.
	ErrMissingClientID = errors.New("provider: missing client ID")

	// ErrUnreachable is returned when the provider cannot be reached
	// (connection refused, DNS failure, timeout, client disconnect).
	ErrUnreachable = errors.New("provider: unreachable")

	// ErrMalformedResponse is returned when the provider responds with a
	// body that cannot be decoded as JSON.
	ErrMalformedResponse = errors.New("provider: malformed response")

	// ErrSessionRejected is returned when the session endpoint responds
	// with an error-shaped payload instead of an identity.
	ErrSessionRejected = errors.New("provider: session rejected")

	// ErrEmptyIdentity is returned when the session endpoint responds with
	// an empty identity payload.
	ErrEmptyIdentity = errors.New("provider: empty identity payload")
)
