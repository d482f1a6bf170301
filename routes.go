package keyauth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/keyauth/middlewares"
	"github.com/dmitrymomot/keyauth/pkg/provider"
	"github.com/dmitrymomot/keyauth/pkg/session"
)

// Fixed user-facing rejection messages. The two auth failure texts are
// deliberately distinct so a user (and a support engineer) can tell a
// rejected token from a failed session exchange.
const (
	msgCannotValidate      = "cannot validate token"
	msgCannotFetchSession  = "cannot fetch session"
	msgProviderUnreachable = "provider unreachable"
)

// Router returns the consumer's mountable route group:
//
//	GET  /about          JSON consumer metadata
//	GET  /avatar         raw avatar bytes
//	GET  /key            raw public-key bytes
//	POST /login          redirect to the provider's authorization page
//	GET  /login/callback token validation and session commit
//	POST /logout         session invalidation
//
// Session exposure, request IDs and panic recovery apply to every route in
// the group.
func (c *Consumer) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.RequestID())
	r.Use(middlewares.Recover(c.log))
	r.Use(middlewares.Session(c.store))

	r.Get("/about", c.handleAbout)
	r.Get("/avatar", c.handleAvatar)
	r.Get("/key", c.handleKey)
	r.Post("/login", c.handleLogin)
	r.Get("/login/callback", c.handleCallback)
	r.Post("/logout", c.handleLogout)

	return r
}

func (c *Consumer) handleAbout(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"name":   c.name,
		"about":  c.about,
		"key":    "/key",
		"avatar": "/avatar",
	})
}

func (c *Consumer) handleAvatar(w http.ResponseWriter, r *http.Request) {
	if len(c.avatar) == 0 {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", http.DetectContentType(c.avatar))
	_, _ = w.Write(c.avatar)
}

func (c *Consumer) handleKey(w http.ResponseWriter, r *http.Request) {
	if len(c.key) == 0 {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write(c.key)
}

// handleLogin redirects the user agent to the provider named in the form.
// The reference is not validated here; a bogus provider fails at the
// provider's side, not the consumer's.
func (c *Consumer) handleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	if username == "" {
		http.Error(w, "missing username", http.StatusBadRequest)
		return
	}

	ref := provider.ParseReference(username)
	c.log.InfoContext(r.Context(), "redirecting to provider", "provider", ref.Addr())
	http.Redirect(w, r, c.client.AuthorizationURL(ref), http.StatusFound)
}

// handleCallback runs the login flow: validate the token, exchange it for
// an identity, commit the session, redirect to the configured landing page.
// The two provider calls are strictly sequential; the session exchange
// trusts the validation outcome for the same token. Token replay is
// delegated to the provider: replaying a callback re-runs both calls.
func (c *Consumer) handleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	providerRef := r.URL.Query().Get("provider")
	token := r.URL.Query().Get("token")
	if providerRef == "" || token == "" {
		c.metrics.observeOutcome(outcomeBadRequest)
		http.Error(w, "missing provider or token", http.StatusBadRequest)
		return
	}
	ref := provider.ParseReference(providerRef)

	start := time.Now()
	v, err := c.client.Validate(ctx, ref, token)
	c.metrics.observeCall("validate", start)
	switch {
	case errors.Is(err, provider.ErrUnreachable):
		c.log.ErrorContext(ctx, "provider unreachable during validation",
			"provider", ref.Addr(), "error", err)
		c.metrics.observeOutcome(outcomeUnreachable)
		http.Error(w, msgProviderUnreachable, http.StatusBadGateway)
		return
	case err != nil, !v.Valid:
		// A malformed validation response rejects the same way as an
		// explicit valid=false: a broken provider must not mint sessions.
		c.log.WarnContext(ctx, "token rejected",
			"provider", ref.Addr(), "error", err)
		c.metrics.observeOutcome(outcomeTokenRejected)
		http.Error(w, msgCannotValidate, http.StatusUnauthorized)
		return
	}

	start = time.Now()
	identity, err := c.client.ExchangeSession(ctx, ref, token)
	c.metrics.observeCall("session", start)
	switch {
	case errors.Is(err, provider.ErrUnreachable):
		c.log.ErrorContext(ctx, "provider unreachable during session exchange",
			"provider", ref.Addr(), "error", err)
		c.metrics.observeOutcome(outcomeUnreachable)
		http.Error(w, msgProviderUnreachable, http.StatusBadGateway)
		return
	case err != nil:
		c.log.WarnContext(ctx, "session exchange rejected",
			"provider", ref.Addr(), "error", err)
		c.metrics.observeOutcome(outcomeSessionRejected)
		http.Error(w, msgCannotFetchSession, http.StatusUnauthorized)
		return
	}

	if err := c.store.Save(w, r, &session.Record{Valid: true, User: identity}); err != nil {
		c.log.ErrorContext(ctx, "failed to persist session",
			"provider", ref.Addr(), "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	c.metrics.observeOutcome(outcomeCommitted)
	c.log.InfoContext(ctx, "login committed", "provider", ref.Addr())
	http.Redirect(w, r, c.redirect, http.StatusFound)
}

func (c *Consumer) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := c.Logout(w, r, c.redirect); err != nil {
		c.log.ErrorContext(r.Context(), "logout failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
