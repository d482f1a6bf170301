// Package session defines the session record written by the login flow and
// the store contract the hosting application fulfills to persist it.
//
// The record's lifecycle is: absent → created valid on successful login →
// read on every request via the session middleware → invalidated by logout.
// Identity payloads are opaque; the library never interprets their shape.
//
// Downstream handlers read the authenticated user through the request
// context:
//
//	if user, ok := session.UserFromContext(r.Context()); ok {
//		// user is the provider's identity payload
//	}
package session
