package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/keyauth/middlewares"
	"github.com/dmitrymomot/keyauth/pkg/session"
)

// fakeStore is an in-memory session.Store keyed by nothing: it serves a
// single record, which is enough for middleware tests.
type fakeStore struct {
	rec     *session.Record
	loadErr error
	saved   *session.Record
}

func (s *fakeStore) Load(_ *http.Request) (*session.Record, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.rec == nil {
		return nil, session.ErrNotFound
	}
	return s.rec, nil
}

func (s *fakeStore) Save(_ http.ResponseWriter, _ *http.Request, rec *session.Record) error {
	s.saved = rec
	return nil
}

func TestSession(t *testing.T) {
	t.Parallel()

	serve := func(t *testing.T, store session.Store) (map[string]any, bool, int) {
		t.Helper()

		var user map[string]any
		var ok bool
		h := middlewares.Session(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok = session.UserFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		return user, ok, rec.Code
	}

	t.Run("valid session exposes user", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{rec: &session.Record{Valid: true, User: map[string]any{"id": float64(1)}}}
		user, ok, code := serve(t, store)
		require.Equal(t, http.StatusOK, code)
		require.True(t, ok)
		require.Equal(t, float64(1), user["id"])
	})

	t.Run("invalidated session exposes nothing", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{rec: session.Invalidated()}
		_, ok, code := serve(t, store)
		require.Equal(t, http.StatusOK, code)
		require.False(t, ok)
	})

	t.Run("absent session continues chain", func(t *testing.T) {
		t.Parallel()

		_, ok, code := serve(t, &fakeStore{})
		require.Equal(t, http.StatusOK, code)
		require.False(t, ok)
	})

	t.Run("store failure continues chain", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{loadErr: errors.New("backend down")}
		_, ok, code := serve(t, store)
		require.Equal(t, http.StatusOK, code)
		require.False(t, ok)
	})

	t.Run("nil store continues chain", func(t *testing.T) {
		t.Parallel()

		_, ok, code := serve(t, nil)
		require.Equal(t, http.StatusOK, code)
		require.False(t, ok)
	})
}
