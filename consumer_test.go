package keyauth_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/keyauth"
	"github.com/dmitrymomot/keyauth/pkg/session"
)

// fakeStore is a single-record in-memory session.Store for tests.
type fakeStore struct {
	rec     *session.Record
	loadErr error
	saveErr error
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
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = rec
	return nil
}

var _ session.Store = (*fakeStore)(nil)

func validConfig() keyauth.Config {
	return keyauth.Config{
		Name:     "test-app",
		About:    "A test consumer",
		Redirect: "/dashboard",
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		c, err := keyauth.New(validConfig(), keyauth.WithSessionStore(&fakeStore{}))
		require.NoError(t, err)
		require.NotNil(t, c)
		require.Equal(t, "test-app", c.Name())
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Name = ""
		_, err := keyauth.New(cfg, keyauth.WithSessionStore(&fakeStore{}))
		require.ErrorIs(t, err, keyauth.ErrMissingName)
	})

	t.Run("missing redirect", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Redirect = ""
		_, err := keyauth.New(cfg, keyauth.WithSessionStore(&fakeStore{}))
		require.ErrorIs(t, err, keyauth.ErrMissingRedirect)
	})

	t.Run("missing store", func(t *testing.T) {
		t.Parallel()
		_, err := keyauth.New(validConfig())
		require.ErrorIs(t, err, keyauth.ErrMissingStore)
	})

	t.Run("loads assets before returning", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		keyFile := filepath.Join(dir, "key.pem")
		avatarFile := filepath.Join(dir, "avatar.png")
		require.NoError(t, os.WriteFile(keyFile, []byte("PUBLIC KEY"), 0o600))
		require.NoError(t, os.WriteFile(avatarFile, []byte{0x89, 'P', 'N', 'G'}, 0o600))

		cfg := validConfig()
		cfg.KeyFile = keyFile
		cfg.AvatarFile = avatarFile

		c, err := keyauth.New(cfg, keyauth.WithSessionStore(&fakeStore{}))
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		c.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/key", nil))
		require.Equal(t, "PUBLIC KEY", rec.Body.String())
	})

	t.Run("unreadable asset is a construction error", func(t *testing.T) {
		t.Parallel()

		cfg := validConfig()
		cfg.KeyFile = filepath.Join(t.TempDir(), "absent.pem")
		_, err := keyauth.New(cfg, keyauth.WithSessionStore(&fakeStore{}))
		require.Error(t, err)
		require.ErrorContains(t, err, "load key")
	})
}

func TestConsumer_Logout(t *testing.T) {
	t.Parallel()

	t.Run("resets the record", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{rec: &session.Record{Valid: true, User: map[string]any{"id": 1}}}
		c, err := keyauth.New(validConfig(), keyauth.WithSessionStore(store))
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		err = c.Logout(rec, httptest.NewRequest(http.MethodPost, "/", nil), "")
		require.NoError(t, err)

		require.NotNil(t, store.saved)
		require.False(t, store.saved.Valid)
		require.Nil(t, store.saved.User)
		require.Equal(t, http.StatusOK, rec.Code) // no redirect without a path
	})

	t.Run("redirects when a path is given", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{}
		c, err := keyauth.New(validConfig(), keyauth.WithSessionStore(store))
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		err = c.Logout(rec, httptest.NewRequest(http.MethodPost, "/", nil), "/bye")
		require.NoError(t, err)
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/bye", rec.Header().Get("Location"))
	})

	t.Run("resets regardless of prior state", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{} // no session at all
		c, err := keyauth.New(validConfig(), keyauth.WithSessionStore(store))
		require.NoError(t, err)

		err = c.Logout(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil), "")
		require.NoError(t, err)
		require.NotNil(t, store.saved)
		require.False(t, store.saved.Valid)
	})
}

func TestConsumer_SessionMiddleware(t *testing.T) {
	t.Parallel()

	store := &fakeStore{rec: &session.Record{Valid: true, User: map[string]any{"id": float64(42)}}}
	c, err := keyauth.New(validConfig(), keyauth.WithSessionStore(store))
	require.NoError(t, err)

	var user map[string]any
	var ok bool
	h := c.SessionMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok = keyauth.CurrentUser(r.Context())
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.True(t, ok)
	require.Equal(t, float64(42), user["id"])
}
