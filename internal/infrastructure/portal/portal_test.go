package portal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
)

func TestRequestPath(t *testing.T) {
	got := requestPath(":1.42", "onboard_abc")

	assert.Equal(t, dbus.ObjectPath("/org/freedesktop/portal/desktop/request/1_42/onboard_abc"), got)
	assert.True(t, got.IsValid())
}

func TestNewHandleTokenIsValidPathElement(t *testing.T) {
	token := newHandleToken()

	assert.True(t, requestPath(":1.7", token).IsValid())
	assert.NotEqual(t, token, newHandleToken())
}

func TestResponseError(t *testing.T) {
	assert.NoError(t, responseError(0))
	assert.ErrorIs(t, responseError(1), ErrRequestCancelled)
	assert.ErrorIs(t, responseError(2), ErrRequestFailed)
	assert.ErrorIs(t, responseError(9), ErrRequestFailed)
}

func TestDBusErrorClassification(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		serviceUnknown bool
		accessDenied   bool
	}{
		{
			name:           "service unknown",
			err:            dbus.Error{Name: "org.freedesktop.DBus.Error.ServiceUnknown"},
			serviceUnknown: true,
		},
		{
			name:           "wrapped unknown method",
			err:            fmt.Errorf("idle: %w", dbus.Error{Name: "org.freedesktop.DBus.Error.UnknownMethod"}),
			serviceUnknown: true,
		},
		{
			name:           "pointer error",
			err:            &dbus.Error{Name: "org.freedesktop.DBus.Error.UnknownObject"},
			serviceUnknown: true,
		},
		{
			name:         "access denied",
			err:          dbus.Error{Name: "org.freedesktop.DBus.Error.AccessDenied"},
			accessDenied: true,
		},
		{
			name: "plain error",
			err:  errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.serviceUnknown, isServiceUnknown(tt.err))
			assert.Equal(t, tt.accessDenied, isAccessDenied(tt.err))
		})
	}
}
