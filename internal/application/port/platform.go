package port

import (
	"context"
	"errors"
)

var (
	// ErrPopupBlocked is returned by OpenPopup when the host refuses to open a window.
	ErrPopupBlocked = errors.New("popup blocked")

	// ErrMediaNotAllowed is returned by RequestMediaPermission when the user
	// explicitly denied access (the NotAllowedError class).
	ErrMediaNotAllowed = errors.New("media permission not allowed")

	// ErrHostAPIUnavailable is returned when the host lacks a primitive.
	ErrHostAPIUnavailable = errors.New("host api unavailable")
)

// AuthToken is the credential returned by a successful sign-in.
type AuthToken struct {
	AccessToken string
}

// PopupRequest describes a popup window to open.
type PopupRequest struct {
	URL    string
	Name   string
	Width  int
	Height int
}

// Popup is an open popup window.
type Popup interface {
	// Closed reports whether the user (or the host) closed the window.
	Closed() bool

	// Close closes the window. Closing an already closed window is a no-op.
	Close() error
}

// MessageType identifies the payload of a cross-window message.
type MessageType string

const (
	MessageOAuthSuccess MessageType = "oauth-success"
	MessageOAuthError   MessageType = "oauth-error"
)

// Message is a cross-window message, as delivered by postMessage.
type Message struct {
	// Origin is the origin of the sender, compared against the expected
	// redirect origin before the message is trusted.
	Origin      string
	Type        MessageType
	AccessToken string
	Error       string
	// State echoes the OAuth state parameter when the sender knows it.
	State string
}

// MessageHandler receives cross-window messages.
type MessageHandler func(Message)

// IdlePermissionState is the answer to an idle-detection permission request.
type IdlePermissionState string

const (
	IdlePermissionGranted IdlePermissionState = "granted"
	IdlePermissionDenied  IdlePermissionState = "denied"
)

// MediaConstraints selects the devices a media permission request covers.
type MediaConstraints struct {
	Audio bool
	Video bool
}

// MediaTrack is one live track of a media stream.
type MediaTrack interface {
	Kind() string
	Stop()
}

// MediaStream is a live capture stream returned by a granted media request.
type MediaStream interface {
	Tracks() []MediaTrack
}

// PlatformCapabilityProvider exposes the host primitives capability
// acquisition is built on. Production code supplies a desktop-backed
// implementation; tests supply deterministic fakes.
type PlatformCapabilityProvider interface {
	// AuthClientInitialized reports whether the auth client is ready for sign-in.
	AuthClientInitialized() bool

	// InitAuthClient loads and initializes the auth client.
	InitAuthClient(ctx context.Context) error

	// SignIn performs an in-place sign-in for a single OAuth scope.
	SignIn(ctx context.Context, scope string) (AuthToken, error)

	// OpenPopup opens a popup window. It returns ErrPopupBlocked when the
	// host refuses to open one.
	OpenPopup(ctx context.Context, req PopupRequest) (Popup, error)

	// AddMessageListener registers a handler for cross-window messages and
	// returns the func that removes it.
	AddMessageListener(handler MessageHandler) (remove func())

	// IdleDetectionSupported reports whether idle detection exists on this host.
	IdleDetectionSupported() bool

	// RequestIdlePermission asks the user for idle-detection permission.
	RequestIdlePermission(ctx context.Context) (IdlePermissionState, error)

	// MediaCaptureSupported reports whether the host exposes media capture.
	MediaCaptureSupported() bool

	// RequestMediaPermission asks for capture access. Explicit denial is
	// reported as ErrMediaNotAllowed.
	RequestMediaPermission(ctx context.Context, constraints MediaConstraints) (MediaStream, error)
}
