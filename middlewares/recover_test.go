package middlewares_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/keyauth/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("recovers from panic", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		h := middlewares.Recover(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}))

		rec := httptest.NewRecorder()
		require.NotPanics(t, func() {
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		})

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, buf.String(), "boom")
		require.Contains(t, buf.String(), "stack")
	})

	t.Run("stack trace can be disabled", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		h := middlewares.Recover(log, middlewares.WithRecoverDisablePrintStack())(
			http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				panic("boom")
			}),
		)

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		require.NotContains(t, buf.String(), "goroutine")
	})

	t.Run("passes through without panic", func(t *testing.T) {
		t.Parallel()

		h := middlewares.Recover(slog.Default())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusTeapot, rec.Code)
	})
}
