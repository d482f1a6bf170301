package middlewares

import (
	"net/http"

	"github.com/dmitrymomot/keyauth/pkg/session"
)

// Session returns middleware that loads the request's session record and
// exposes it through the request context. Downstream handlers read the
// authenticated user with session.UserFromContext, which only yields a
// user for valid records.
//
// The chain always continues: absent sessions, load failures and invalid
// records simply leave the context without a user.
func Session(store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store != nil {
				if rec, err := store.Load(r); err == nil && rec != nil {
					r = r.WithContext(session.NewContext(r.Context(), rec))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
