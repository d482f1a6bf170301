package session

import (
	"errors"
	"net/http"
)

// ErrNotFound is returned by a Store when the request has no session record.
var ErrNotFound = errors.New("session: not found")

// Store is the externally supplied session-persistence mechanism, keyed by
// request. The consumer library never owns session storage; the hosting
// application decides how records are keyed and persisted (cookie-backed,
// Redis, database) and only hands the library this narrow interface.
//
// Implementations must scope each record to a single user agent: Load and
// Save for the same request must address the same underlying entry.
type Store interface {
	// Load returns the session record for the request.
	// Returns ErrNotFound when the request carries no session.
	Load(r *http.Request) (*Record, error)

	// Save persists the record for the request's session, creating the
	// session if needed.
	Save(w http.ResponseWriter, r *http.Request, rec *Record) error
}
