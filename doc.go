// Package keyauth implements the consumer side of the keyauth delegated
// authentication handshake: a web application redirects a user to a
// trusted identity provider, receives an opaque token on callback,
// validates and exchanges that token out-of-band, and exposes the
// resulting identity to downstream handlers through the request context.
//
// # Flow
//
//  1. POST /login with a provider reference redirects the user agent to
//     the provider's authorization page.
//  2. The provider authenticates the user and redirects back to
//     GET /login/callback?provider=...&token=...
//  3. The consumer validates the token against the provider, then
//     exchanges it for the user's identity payload. Both calls are
//     server-to-server; the consumer performs no cryptographic
//     verification itself.
//  4. On success the identity is committed to the session store and the
//     user agent is redirected to the configured landing page. On failure
//     the flow terminates with one of two fixed rejection messages.
//
// # Usage
//
//	consumer, err := keyauth.New(keyauth.Config{
//		Name:       "my-app",
//		About:      "Example consumer",
//		Redirect:   "/dashboard",
//		KeyFile:    "public.pem",
//		AvatarFile: "avatar.png",
//	},
//		keyauth.WithSessionStore(store),
//		keyauth.WithLogger(log),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	r := chi.NewRouter()
//	r.Use(consumer.SessionMiddleware())
//	r.Mount("/keyauth", consumer.Router())
//
//	r.Get("/dashboard", func(w http.ResponseWriter, r *http.Request) {
//		if user, ok := keyauth.CurrentUser(r.Context()); ok {
//			// user is the provider's identity payload
//		}
//	})
//
// Session persistence is owned by the hosting application: any type
// implementing session.Store can back the consumer (see examples/consumer
// for a Redis-backed store keyed by a signed cookie).
package keyauth
