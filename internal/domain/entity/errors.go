package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCapabilitiesSelected is returned when a negotiation is started with
	// nothing selected. No acquisition is attempted.
	ErrNoCapabilitiesSelected = errors.New("no capabilities selected")

	// ErrCapabilityRequired is returned when a required capability would be deselected.
	ErrCapabilityRequired = errors.New("capability is required")

	// ErrUnknownCapability is returned for ids outside the catalog.
	ErrUnknownCapability = errors.New("unknown capability")
)

// ErrorKind classifies why a capability was not acquired.
type ErrorKind string

const (
	ErrorKindOAuthWindowClosed        ErrorKind = "OAuthWindowClosed"
	ErrorKindPopupBlocked             ErrorKind = "PopupBlocked"
	ErrorKindOAuthProviderError       ErrorKind = "OAuthProviderError"
	ErrorKindOAuthPopupTimeout        ErrorKind = "OAuthPopupTimeout"
	ErrorKindMicrophoneDenied         ErrorKind = "MicrophoneDenied"
	ErrorKindActivityPermissionDenied ErrorKind = "ActivityPermissionDenied"
	ErrorKindHostPermissionError      ErrorKind = "HostPermissionError"
	ErrorKindUnsupportedCapability    ErrorKind = "UnsupportedCapability"

	// ErrorKindHostAPIUnavailable is informational. It marks a degraded grant
	// and never appears on a denied outcome.
	ErrorKindHostAPIUnavailable ErrorKind = "HostAPIUnavailable"
)

// AcquisitionError is the structured failure of one capability's acquisition.
type AcquisitionError struct {
	Kind ErrorKind
	// Message is the user-visible provider or protocol string.
	Message string
	Err     error
}

// NewAcquisitionError creates an AcquisitionError of the given kind.
func NewAcquisitionError(kind ErrorKind, message string, cause error) *AcquisitionError {
	return &AcquisitionError{Kind: kind, Message: message, Err: cause}
}

func (e *AcquisitionError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// Is matches another AcquisitionError by kind, so callers can write
// errors.Is(err, &AcquisitionError{Kind: ErrorKindPopupBlocked}).
func (e *AcquisitionError) Is(target error) bool {
	var other *AcquisitionError
	if !errors.As(target, &other) {
		return false
	}
	return other.Kind == e.Kind
}

// KindOf returns the kind of an AcquisitionError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var acqErr *AcquisitionError
	if errors.As(err, &acqErr) {
		return acqErr.Kind
	}
	return ""
}
