package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	authPath     = "/auth"
	validatePath = "/auth/validate"
	sessionPath  = "/auth/session"

	defaultScheme  = "http"
	defaultTimeout = 10 * time.Second
)

// Client talks to a keyauth provider on behalf of one consumer.
// Every call carries the consumer name as client_id. The Client holds no
// per-request state and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	clientID   string
	scheme     string
	maxTries   uint
}

// NewClient creates a provider client for the named consumer.
// Returns ErrMissingClientID if clientID is empty.
func NewClient(clientID string, opts ...Option) (*Client, error) {
	if clientID == "" {
		return nil, ErrMissingClientID
	}

	o := options{
		scheme:   defaultScheme,
		timeout:  defaultTimeout,
		maxTries: 1,
	}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	return &Client{
		clientID:   clientID,
		httpClient: httpClient,
		scheme:     o.scheme,
		maxTries:   o.maxTries,
	}, nil
}

// ClientID returns the consumer name sent as client_id to providers.
func (c *Client) ClientID() string {
	return c.clientID
}

// AuthorizationURL builds the provider's authorization endpoint URL for
// this consumer. The reference is not validated; a malformed reference
// yields a URL the provider will reject.
func (c *Client) AuthorizationURL(ref Reference) string {
	q := url.Values{}
	q.Set("client_id", c.clientID)
	q.Set("response_type", "token")
	q.Set("scope", "auth")

	u := url.URL{
		Scheme:   c.scheme,
		Host:     ref.Addr(),
		Path:     authPath,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// Validation is the provider's answer to a token validation request.
type Validation struct {
	Valid bool   `json:"valid"`
	Token string `json:"token"`
}

// Validate asks the provider whether a token is valid.
// Valid=false is an authoritative protocol-level rejection; callers must
// stop the login flow on it. Transport failures return ErrUnreachable and
// undecodable bodies return ErrMalformedResponse, so a rejection is never
// conflated with a broken provider.
func (c *Client) Validate(ctx context.Context, ref Reference, token string) (Validation, error) {
	body, err := c.postForm(ctx, ref, validatePath, token)
	if err != nil {
		return Validation{}, err
	}

	var v Validation
	if err := json.Unmarshal(body, &v); err != nil {
		return Validation{}, errors.Join(ErrMalformedResponse, fmt.Errorf("decode validation: %w", err))
	}
	return v, nil
}

// Identity is the opaque user payload returned by the provider's session
// endpoint. The consumer does not interpret its shape beyond error
// detection in ExchangeSession.
type Identity map[string]any

// ExchangeSession redeems a validated token for the user's identity.
// Must only be called after Validate reported the same token as valid.
//
// Error detection honors an explicit "error" field when present. Legacy
// providers instead signal errors with a bare "name" field on the payload,
// so a "name" field is also treated as a rejection; identity payloads must
// not carry one.
func (c *Client) ExchangeSession(ctx context.Context, ref Reference, token string) (Identity, error) {
	body, err := c.postForm(ctx, ref, sessionPath, token)
	if err != nil {
		return nil, err
	}

	var identity Identity
	if err := json.Unmarshal(body, &identity); err != nil {
		return nil, errors.Join(ErrMalformedResponse, fmt.Errorf("decode identity: %w", err))
	}

	if v, ok := identity["error"]; ok {
		return nil, errors.Join(ErrSessionRejected, fmt.Errorf("provider error: %v", v))
	}
	if v, ok := identity["name"]; ok {
		return nil, errors.Join(ErrSessionRejected, fmt.Errorf("provider error: %v", v))
	}
	if len(identity) == 0 {
		return nil, ErrEmptyIdentity
	}

	return identity, nil
}

// postForm issues one form-encoded POST to the provider and returns the
// raw response body. Responses are not status-gated: any body is handed to
// the decoder, so a 5xx HTML page degrades to ErrMalformedResponse rather
// than a distinct outcome.
func (c *Client) postForm(ctx context.Context, ref Reference, path, token string) ([]byte, error) {
	form := url.Values{}
	form.Set("token", token)
	form.Set("client_id", c.clientID)
	encoded := form.Encode()

	endpoint := url.URL{Scheme: c.scheme, Host: ref.Addr(), Path: path}

	operation := func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(encoded))
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		return io.ReadAll(resp.Body)
	}

	var body []byte
	var err error
	if c.maxTries > 1 {
		body, err = backoff.Retry(ctx, operation,
			backoff.WithBackOff(backoff.NewExponentialBackOff()),
			backoff.WithMaxTries(c.maxTries),
		)
	} else {
		body, err = operation()
	}
	if err != nil {
		return nil, errors.Join(ErrUnreachable, err)
	}
	return body, nil
}
