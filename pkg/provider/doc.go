// Package provider implements the consumer side of the keyauth token
// handshake: building the provider's authorization URL, validating a
// returned token out-of-band, and redeeming it for an identity payload.
//
// # Protocol
//
// A provider is addressed by a compact "host:port" reference (port
// defaults to 80). Three endpoints are involved:
//
//   - GET  /auth?client_id=...&response_type=token&scope=auth — the
//     authorization page the user is redirected to. The consumer only
//     constructs this URL; the provider owns the endpoint.
//   - POST /auth/validate with form fields token and client_id — answers
//     {"valid": bool, "token": "..."}.
//   - POST /auth/session with the same form fields — answers the opaque
//     identity payload, or an error-shaped object.
//
// Validate must succeed before ExchangeSession is called for the same
// token; the session endpoint trusts the validation outcome.
//
// # Usage
//
//	client, err := provider.NewClient("my-app",
//		provider.WithTimeout(5*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ref := provider.ParseReference("login.example.com:8080")
//
//	v, err := client.Validate(ctx, ref, token)
//	if err != nil || !v.Valid {
//		// reject the login
//	}
//
//	identity, err := client.ExchangeSession(ctx, ref, token)
//	if err != nil {
//		// reject the login
//	}
//
// # Error Handling
//
// Failure modes are distinguished by sentinel errors:
//
//   - ErrUnreachable: transport failure (refused, DNS, timeout)
//   - ErrMalformedResponse: provider body is not JSON
//   - ErrSessionRejected: session endpoint returned an error-shaped payload
//   - ErrEmptyIdentity: session endpoint returned an empty payload
//
// Use errors.Is for checking. A Validation with Valid=false and a nil
// error is a protocol-level rejection, not a failure.
//
// # Testing
//
// Use WithHTTPClient to point the client at an httptest server:
//
//	ts := httptest.NewServer(mux)
//	defer ts.Close()
//
//	client, _ := provider.NewClient("my-app", provider.WithHTTPClient(ts.Client()))
//	ref := provider.ParseReference(strings.TrimPrefix(ts.URL, "http://"))
package provider
