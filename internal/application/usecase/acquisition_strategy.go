package usecase

import (
	"context"

	"github.com/oneuniverse/onboard/internal/application/port"
	"github.com/oneuniverse/onboard/internal/domain/entity"
)

// AcquisitionStrategy obtains one capability through its own protocol.
// Failures are returned as *entity.AcquisitionError; a cancelled context is
// returned as the context's error.
type AcquisitionStrategy interface {
	Acquire(ctx context.Context) (entity.Grant, error)
}

// AcquisitionStrategyFunc adapts a function to AcquisitionStrategy.
type AcquisitionStrategyFunc func(ctx context.Context) (entity.Grant, error)

// Acquire implements AcquisitionStrategy.
func (f AcquisitionStrategyFunc) Acquire(ctx context.Context) (entity.Grant, error) {
	return f(ctx)
}

// StrategyTable maps each capability to its acquisition strategy.
type StrategyTable map[entity.CapabilityID]AcquisitionStrategy

// DefaultStrategies builds the strategy table for the four onboarding capabilities.
func DefaultStrategies(provider port.PlatformCapabilityProvider, cfg NegotiationConfig) StrategyTable {
	popup := PopupSettings{
		AuthURL:      cfg.OAuth.AuthURL,
		ClientID:     cfg.OAuth.ClientID,
		RedirectURL:  cfg.OAuth.RedirectURL,
		PollInterval: cfg.PollInterval,
		Timeout:      cfg.PopupTimeout,
		Width:        cfg.PopupWidth,
		Height:       cfg.PopupHeight,
	}

	return StrategyTable{
		entity.CapabilityCalendar: NewOAuthScopeStrategy(provider, OAuthScope{
			Scope:   cfg.OAuth.CalendarScope,
			Service: "google-calendar",
		}, popup),
		entity.CapabilityVideoHistory: NewOAuthScopeStrategy(provider, OAuthScope{
			Scope:   cfg.OAuth.VideoHistoryScope,
			Service: "youtube",
		}, popup),
		entity.CapabilityDeviceActivity: NewDeviceActivityStrategy(provider),
		entity.CapabilityEmotionInput:   NewEmotionInputStrategy(provider),
	}
}
