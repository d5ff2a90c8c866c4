// Package oauthclient signs in to OAuth scopes in place, without a popup,
// through the device authorization grant.
package oauthclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/oneuniverse/onboard/internal/application/port"
	"github.com/oneuniverse/onboard/internal/logging"
)

// Google device flow endpoints.
const (
	DefaultDeviceAuthURL = "https://oauth2.googleapis.com/device/code"
	DefaultTokenURL      = "https://oauth2.googleapis.com/token"
)

var (
	// ErrNotConfigured is returned by Init when no client id is configured.
	ErrNotConfigured = errors.New("oauth client not configured")

	// ErrNotInitialized is returned by SignIn before Init succeeded.
	ErrNotInitialized = errors.New("oauth client not initialized")
)

// DeviceCode is what the user needs to approve a device sign-in.
type DeviceCode struct {
	UserCode        string
	VerificationURI string
	ExpiresAt       time.Time
	Scope           string
}

// Prompter shows a device code to the user. Returning an error aborts the sign-in.
type Prompter func(ctx context.Context, code DeviceCode) error

// Config configures the client.
type Config struct {
	ClientID      string
	ClientSecret  string
	DeviceAuthURL string
	TokenURL      string
}

// Client is the in-place auth client. It is usable once Init succeeded.
type Client struct {
	cfg    Config
	prompt Prompter

	mu          sync.Mutex
	initialized bool
	oauth       *oauth2.Config
	tokens      map[string]*oauth2.Token
}

// New creates a client. prompt may be nil, in which case sign-in cannot
// reach the user and always fails.
func New(cfg Config, prompt Prompter) *Client {
	if cfg.DeviceAuthURL == "" {
		cfg.DeviceAuthURL = DefaultDeviceAuthURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}
	return &Client{
		cfg:    cfg,
		prompt: prompt,
		tokens: make(map[string]*oauth2.Token),
	}
}

// Initialized reports whether Init succeeded.
func (c *Client) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// Init prepares the client for sign-in.
func (c *Client) Init(ctx context.Context) error {
	log := logging.FromContext(ctx)

	if c.cfg.ClientID == "" {
		return ErrNotConfigured
	}
	if c.prompt == nil {
		return fmt.Errorf("%w: no prompter for device codes", ErrNotConfigured)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.oauth = &oauth2.Config{
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			DeviceAuthURL: c.cfg.DeviceAuthURL,
			TokenURL:      c.cfg.TokenURL,
			AuthStyle:     oauth2.AuthStyleInParams,
		},
	}
	c.initialized = true

	log.Debug().Str("device_auth_url", c.cfg.DeviceAuthURL).Msg("oauth client initialized")
	return nil
}

// SignIn obtains an access token for one scope. A still-valid token from an
// earlier sign-in is reused.
func (c *Client) SignIn(ctx context.Context, scope string) (port.AuthToken, error) {
	log := logging.FromContext(ctx)

	c.mu.Lock()
	if !c.initialized {
		c.mu.Unlock()
		return port.AuthToken{}, ErrNotInitialized
	}
	if tok, ok := c.tokens[scope]; ok && tok.Valid() {
		c.mu.Unlock()
		log.Debug().Str("scope", scope).Msg("reusing cached token")
		return port.AuthToken{AccessToken: tok.AccessToken}, nil
	}
	cfg := *c.oauth
	c.mu.Unlock()

	cfg.Scopes = []string{scope}

	da, err := cfg.DeviceAuth(ctx)
	if err != nil {
		return port.AuthToken{}, fmt.Errorf("device authorization: %w", err)
	}

	if err := c.prompt(ctx, DeviceCode{
		UserCode:        da.UserCode,
		VerificationURI: da.VerificationURI,
		ExpiresAt:       da.Expiry,
		Scope:           scope,
	}); err != nil {
		return port.AuthToken{}, fmt.Errorf("show device code: %w", err)
	}

	tok, err := cfg.DeviceAccessToken(ctx, da)
	if err != nil {
		return port.AuthToken{}, fmt.Errorf("device access token: %w", err)
	}

	c.mu.Lock()
	c.tokens[scope] = tok
	c.mu.Unlock()

	log.Info().Str("scope", scope).Msg("signed in")
	return port.AuthToken{AccessToken: tok.AccessToken}, nil
}
