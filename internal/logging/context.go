package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithNegotiationID creates a child logger with a negotiation_id field
func WithNegotiationID(ctx context.Context, negotiationID string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("negotiation_id", negotiationID).Logger()
	return WithContext(ctx, childLogger)
}

// WithCapability creates a child logger with a capability field
func WithCapability(ctx context.Context, capability string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("capability", capability).Logger()
	return WithContext(ctx, childLogger)
}
