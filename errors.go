package keyauth

import "errors"

var (
	// ErrMissingName is returned when the consumer name is not configured.
	ErrMissingName = errors.New("keyauth: missing consumer name")

	// ErrMissingRedirect is returned when the post-login redirect target
	// is not configured.
	ErrMissingRedirect = errors.New("keyauth: missing redirect target")

	// ErrMissingStore is returned when no session store is supplied.
	// The library never owns session persistence; the hosting application
	// must provide a store via WithSessionStore.
	ErrMissingStore = errors.New("keyauth: session store required")
)
