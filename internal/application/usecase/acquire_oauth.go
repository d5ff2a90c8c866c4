package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"

	"github.com/oneuniverse/onboard/internal/application/port"
	"github.com/oneuniverse/onboard/internal/domain/entity"
	"github.com/oneuniverse/onboard/internal/logging"
)

const (
	popupBlockedMessage = "Popup blocked. Please allow popups for this site."
	popupClosedMessage  = "OAuth window closed"
	popupTimeoutMessage = "OAuth window timed out"
	popupWindowName     = "OAuth"
)

// OAuthScope is the scope-specific part of an OAuth-backed capability.
type OAuthScope struct {
	Scope   string
	Service string
}

// PopupSettings configures the popup fallback.
type PopupSettings struct {
	AuthURL      string
	ClientID     string
	RedirectURL  string
	PollInterval time.Duration
	Timeout      time.Duration
	Width        int
	Height       int
}

// OAuthScopeStrategy acquires one OAuth scope. It signs in through the auth
// client, initializing it first when needed, and falls back to an
// implicit-grant popup when either step fails.
type OAuthScopeStrategy struct {
	provider port.PlatformCapabilityProvider
	scope    OAuthScope
	popup    PopupSettings
	newState func() string
}

// NewOAuthScopeStrategy creates a strategy for a single scope.
func NewOAuthScopeStrategy(provider port.PlatformCapabilityProvider, scope OAuthScope, popup PopupSettings) *OAuthScopeStrategy {
	if popup.PollInterval <= 0 {
		popup.PollInterval = time.Second
	}
	return &OAuthScopeStrategy{
		provider: provider,
		scope:    scope,
		popup:    popup,
		newState: uuid.NewString,
	}
}

// SetStateGenerator overrides the OAuth state generator.
func (s *OAuthScopeStrategy) SetStateGenerator(fn func() string) {
	s.newState = fn
}

// Acquire implements AcquisitionStrategy.
func (s *OAuthScopeStrategy) Acquire(ctx context.Context) (entity.Grant, error) {
	log := logging.FromContext(ctx)

	token, err := s.signIn(ctx)
	if err == nil {
		log.Debug().Str("service", s.scope.Service).Msg("signed in through auth client")
		return entity.Grant{Token: token.AccessToken, Service: s.scope.Service}, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return entity.Grant{}, ctxErr
	}

	log.Debug().Err(err).Msg("auth client sign-in failed, falling back to popup")
	trace.SpanFromContext(ctx).AddEvent("oauth.popup_fallback",
		trace.WithAttributes(attribute.String("service", s.scope.Service)))
	return s.acquireViaPopup(ctx)
}

func (s *OAuthScopeStrategy) signIn(ctx context.Context) (port.AuthToken, error) {
	if !s.provider.AuthClientInitialized() {
		if err := s.provider.InitAuthClient(ctx); err != nil {
			return port.AuthToken{}, fmt.Errorf("init auth client: %w", err)
		}
	}
	token, err := s.provider.SignIn(ctx, s.scope.Scope)
	if err != nil {
		return port.AuthToken{}, fmt.Errorf("sign in: %w", err)
	}
	return token, nil
}

type popupSettlement struct {
	grant entity.Grant
	err   error
}

// acquireViaPopup opens the provider authorization page in a popup and waits
// for a same-origin message, the user closing the popup, the timeout, or
// cancellation. The listener is removed and the popup closed on every path.
func (s *OAuthScopeStrategy) acquireViaPopup(ctx context.Context) (entity.Grant, error) {
	log := logging.FromContext(ctx)

	state := s.newState()
	authURL := s.authorizationURL(state)
	expectedOrigin := originOf(s.popup.RedirectURL)

	settled := make(chan popupSettlement, 1)
	settle := func(p popupSettlement) {
		select {
		case settled <- p:
		default:
		}
	}

	// Listen before opening: a fast redirect can post during OpenPopup.
	remove := s.provider.AddMessageListener(func(msg port.Message) {
		if !strings.EqualFold(msg.Origin, expectedOrigin) {
			return
		}
		if msg.State != "" && msg.State != state {
			return
		}
		switch msg.Type {
		case port.MessageOAuthSuccess:
			settle(popupSettlement{grant: entity.Grant{Token: msg.AccessToken, Service: s.scope.Service}})
		case port.MessageOAuthError:
			settle(popupSettlement{err: entity.NewAcquisitionError(entity.ErrorKindOAuthProviderError, msg.Error, nil)})
		}
	})
	defer remove()

	popup, err := s.provider.OpenPopup(ctx, port.PopupRequest{
		URL:    authURL,
		Name:   popupWindowName,
		Width:  s.popup.Width,
		Height: s.popup.Height,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return entity.Grant{}, ctxErr
		}
		message := popupBlockedMessage
		if !errors.Is(err, port.ErrPopupBlocked) {
			message = err.Error()
		}
		return entity.Grant{}, entity.NewAcquisitionError(entity.ErrorKindPopupBlocked, message, err)
	}
	if popup == nil {
		return entity.Grant{}, entity.NewAcquisitionError(entity.ErrorKindPopupBlocked, popupBlockedMessage, port.ErrPopupBlocked)
	}
	defer func() {
		if closeErr := popup.Close(); closeErr != nil {
			log.Debug().Err(closeErr).Msg("failed to close oauth popup")
		}
	}()

	ticker := time.NewTicker(s.popup.PollInterval)
	defer ticker.Stop()

	var deadline <-chan time.Time
	if s.popup.Timeout > 0 {
		timer := time.NewTimer(s.popup.Timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	log.Debug().Str("service", s.scope.Service).Msg("waiting on oauth popup")

	for {
		select {
		case p := <-settled:
			return p.grant, p.err
		case <-ticker.C:
			// A message that raced the close wins.
			select {
			case p := <-settled:
				return p.grant, p.err
			default:
			}
			if popup.Closed() {
				return entity.Grant{}, entity.NewAcquisitionError(entity.ErrorKindOAuthWindowClosed, popupClosedMessage, nil)
			}
		case <-deadline:
			return entity.Grant{}, entity.NewAcquisitionError(entity.ErrorKindOAuthPopupTimeout, popupTimeoutMessage, nil)
		case <-ctx.Done():
			return entity.Grant{}, ctx.Err()
		}
	}
}

func (s *OAuthScopeStrategy) authorizationURL(state string) string {
	cfg := oauth2.Config{
		ClientID:    s.popup.ClientID,
		RedirectURL: s.popup.RedirectURL,
		Scopes:      []string{s.scope.Scope},
		Endpoint:    oauth2.Endpoint{AuthURL: s.popup.AuthURL},
	}
	return cfg.AuthCodeURL(state, oauth2.SetAuthURLParam("response_type", "token"))
}

// originOf returns scheme://host of a URL, the unit postMessage origins
// compare on. Scheme and host are case-insensitive and come back lowercased.
func originOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return strings.ToLower(u.Scheme + "://" + u.Host)
}
