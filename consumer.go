package keyauth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/keyauth/middlewares"
	"github.com/dmitrymomot/keyauth/pkg/logger"
	"github.com/dmitrymomot/keyauth/pkg/provider"
	"github.com/dmitrymomot/keyauth/pkg/session"
)

// Consumer is a web application that delegates authentication to keyauth
// providers. It is immutable after construction and safe for concurrent
// use; per-request state lives only in the externally owned session store.
type Consumer struct {
	name     string
	about    string
	redirect string
	key      []byte
	avatar   []byte

	client  *provider.Client
	store   session.Store
	log     *slog.Logger
	metrics *metrics
}

// New creates a Consumer from the given configuration.
//
// Key and avatar material is read from disk before New returns, so the
// serving routes never observe partially initialized assets. A configured
// file that cannot be read is a construction error, not a silent absence.
func New(cfg Config, opts ...Option) (*Consumer, error) {
	if cfg.Name == "" {
		return nil, ErrMissingName
	}
	if cfg.Redirect == "" {
		return nil, ErrMissingRedirect
	}

	o := options{log: logger.NewNope()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil {
		return nil, ErrMissingStore
	}

	client, err := provider.NewClient(cfg.Name, o.providerOpts...)
	if err != nil {
		return nil, err
	}

	c := &Consumer{
		name:     cfg.Name,
		about:    cfg.About,
		redirect: cfg.Redirect,
		client:   client,
		store:    o.store,
		log:      o.log,
		metrics:  newMetrics(o.registerer),
	}

	var g errgroup.Group
	if cfg.KeyFile != "" {
		g.Go(func() error {
			b, err := os.ReadFile(cfg.KeyFile)
			if err != nil {
				return fmt.Errorf("load key: %w", err)
			}
			c.key = b
			return nil
		})
	}
	if cfg.AvatarFile != "" {
		g.Go(func() error {
			b, err := os.ReadFile(cfg.AvatarFile)
			if err != nil {
				return fmt.Errorf("load avatar: %w", err)
			}
			c.avatar = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return c, nil
}

// Name returns the consumer's client identifier.
func (c *Consumer) Name() string {
	return c.name
}

// Logout invalidates the request's session record. When path is non-empty
// the user agent is redirected there; otherwise the caller must write the
// response. Logout always resets the record regardless of its prior state.
func (c *Consumer) Logout(w http.ResponseWriter, r *http.Request, path string) error {
	if err := c.store.Save(w, r, session.Invalidated()); err != nil {
		return fmt.Errorf("invalidate session: %w", err)
	}
	if path != "" {
		http.Redirect(w, r, path, http.StatusFound)
	}
	return nil
}

// SessionMiddleware returns the session-exposure middleware bound to the
// consumer's store, for mounting on application routes outside the
// consumer's route group. It never short-circuits the handler chain.
func (c *Consumer) SessionMiddleware() func(http.Handler) http.Handler {
	return middlewares.Session(c.store)
}

// CurrentUser returns the authenticated user's identity payload exposed by
// the session middleware, or false when the request is not authenticated.
func CurrentUser(ctx context.Context) (map[string]any, bool) {
	return session.UserFromContext(ctx)
}
