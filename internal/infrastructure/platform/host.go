// Package platform composes the desktop adapters into the capability
// provider the negotiator runs against.
package platform

import (
	"context"
	"fmt"

	"github.com/oneuniverse/onboard/internal/application/port"
	"github.com/oneuniverse/onboard/internal/logging"
)

// AuthClient signs the user in without leaving the application.
type AuthClient interface {
	Initialized() bool
	Init(ctx context.Context) error
	SignIn(ctx context.Context, scope string) (port.AuthToken, error)
}

// PopupOpener opens popup windows.
type PopupOpener interface {
	Open(ctx context.Context, req port.PopupRequest) (port.Popup, error)
}

// MessageSource delivers cross-window messages.
type MessageSource interface {
	Listen(handler port.MessageHandler) (remove func())
}

// IdleDetector answers idle-detection permission requests.
type IdleDetector interface {
	Supported() bool
	RequestPermission(ctx context.Context) (port.IdlePermissionState, error)
}

// MediaCapturer answers microphone permission requests.
type MediaCapturer interface {
	MediaCaptureSupported() bool
	RequestMedia(ctx context.Context, constraints port.MediaConstraints) (port.MediaStream, error)
}

// Adapters groups the pieces a Host delegates to. Any of them may be nil,
// in which case the host reports the matching primitive as missing.
type Adapters struct {
	Auth     AuthClient
	Popups   PopupOpener
	Messages MessageSource
	Idle     IdleDetector
	Media    MediaCapturer
}

// Host implements port.PlatformCapabilityProvider on top of desktop adapters.
type Host struct {
	auth     AuthClient
	popups   PopupOpener
	messages MessageSource
	idle     IdleDetector
	media    MediaCapturer
}

var _ port.PlatformCapabilityProvider = (*Host)(nil)

// NewHost creates a host from its adapters.
func NewHost(a Adapters) *Host {
	return &Host{
		auth:     a.Auth,
		popups:   a.Popups,
		messages: a.Messages,
		idle:     a.Idle,
		media:    a.Media,
	}
}

// AuthClientInitialized implements port.PlatformCapabilityProvider.
func (h *Host) AuthClientInitialized() bool {
	return h.auth != nil && h.auth.Initialized()
}

// InitAuthClient implements port.PlatformCapabilityProvider.
func (h *Host) InitAuthClient(ctx context.Context) error {
	if h.auth == nil {
		return fmt.Errorf("auth client: %w", port.ErrHostAPIUnavailable)
	}
	if err := h.auth.Init(ctx); err != nil {
		return fmt.Errorf("init auth client: %w", err)
	}
	return nil
}

// SignIn implements port.PlatformCapabilityProvider.
func (h *Host) SignIn(ctx context.Context, scope string) (port.AuthToken, error) {
	if h.auth == nil {
		return port.AuthToken{}, fmt.Errorf("auth client: %w", port.ErrHostAPIUnavailable)
	}
	return h.auth.SignIn(ctx, scope)
}

// OpenPopup implements port.PlatformCapabilityProvider.
func (h *Host) OpenPopup(ctx context.Context, req port.PopupRequest) (port.Popup, error) {
	if h.popups == nil {
		return nil, fmt.Errorf("no popup driver: %w", port.ErrPopupBlocked)
	}
	logging.FromContext(ctx).Debug().
		Str("component", "platform").
		Str("name", req.Name).
		Int("width", req.Width).
		Int("height", req.Height).
		Msg("opening popup")
	return h.popups.Open(ctx, req)
}

// AddMessageListener implements port.PlatformCapabilityProvider.
func (h *Host) AddMessageListener(handler port.MessageHandler) (remove func()) {
	if h.messages == nil {
		return func() {}
	}
	return h.messages.Listen(handler)
}

// IdleDetectionSupported implements port.PlatformCapabilityProvider.
func (h *Host) IdleDetectionSupported() bool {
	return h.idle != nil && h.idle.Supported()
}

// RequestIdlePermission implements port.PlatformCapabilityProvider.
func (h *Host) RequestIdlePermission(ctx context.Context) (port.IdlePermissionState, error) {
	if h.idle == nil {
		return "", fmt.Errorf("idle detection: %w", port.ErrHostAPIUnavailable)
	}
	return h.idle.RequestPermission(ctx)
}

// MediaCaptureSupported implements port.PlatformCapabilityProvider.
func (h *Host) MediaCaptureSupported() bool {
	return h.media != nil && h.media.MediaCaptureSupported()
}

// RequestMediaPermission implements port.PlatformCapabilityProvider.
func (h *Host) RequestMediaPermission(
	ctx context.Context,
	constraints port.MediaConstraints,
) (port.MediaStream, error) {
	if h.media == nil {
		return nil, fmt.Errorf("media capture: %w", port.ErrHostAPIUnavailable)
	}
	return h.media.RequestMedia(ctx, constraints)
}
