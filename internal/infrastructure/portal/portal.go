// Package portal reaches desktop permission primitives over D-Bus: the XDG
// desktop portal for device access and the compositor idle monitors for
// activity sensing.
package portal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"

	"github.com/oneuniverse/onboard/internal/logging"
)

const (
	portalDest   = "org.freedesktop.portal.Desktop"
	portalPath   = "/org/freedesktop/portal/desktop"
	requestIface = "org.freedesktop.portal.Request"

	propertiesGet = "org.freedesktop.DBus.Properties.Get"
)

// Portal Response codes.
const (
	responseSuccess   uint32 = 0
	responseCancelled uint32 = 1
	responseOther     uint32 = 2
)

var (
	// ErrRequestCancelled is returned when the user dismissed a portal dialog.
	ErrRequestCancelled = errors.New("portal request cancelled by user")

	// ErrRequestFailed is returned when a portal request ended some other way.
	ErrRequestFailed = errors.New("portal request failed")
)

// ConnectSessionBus connects to the session bus. Callers degrade on error.
func ConnectSessionBus(ctx context.Context) (*dbus.Conn, error) {
	log := logging.FromContext(ctx)

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Debug().Err(err).Msg("portal: cannot connect to D-Bus session bus")
		return nil, err
	}
	return conn, nil
}

// interfaceVersion reads the version property of a portal interface.
func interfaceVersion(conn *dbus.Conn, iface string) (uint32, error) {
	var version uint32
	err := conn.Object(portalDest, portalPath).
		Call(propertiesGet, 0, iface, "version").
		Store(&version)
	return version, err
}

// requestPath predicts the Request object path of a portal call made with
// handle_token, so the Response match is in place before the call.
func requestPath(uniqueName, token string) dbus.ObjectPath {
	sender := strings.ReplaceAll(strings.TrimPrefix(uniqueName, ":"), ".", "_")
	return dbus.ObjectPath(portalPath + "/request/" + sender + "/" + token)
}

func newHandleToken() string {
	return "onboard_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// responseError maps a Response code to an error.
func responseError(code uint32) error {
	switch code {
	case responseSuccess:
		return nil
	case responseCancelled:
		return ErrRequestCancelled
	case responseOther:
		return ErrRequestFailed
	default:
		return fmt.Errorf("%w: unexpected response code %d", ErrRequestFailed, code)
	}
}

// call performs a portal request and waits for its Response signal.
// invoke makes the method call with the given options, which already carry
// the handle_token.
func call(
	ctx context.Context,
	conn *dbus.Conn,
	invoke func(options map[string]dbus.Variant) *dbus.Call,
) (map[string]dbus.Variant, error) {
	log := logging.FromContext(ctx)

	names := conn.Names()
	if len(names) == 0 {
		return nil, errors.New("portal: connection has no unique name")
	}

	token := newHandleToken()
	handle := requestPath(names[0], token)

	matchRule := fmt.Sprintf(
		"type='signal',interface='%s',member='Response',path='%s'",
		requestIface, handle,
	)
	if err := conn.BusObject().Call("org.freedesktop.DBus.AddMatch", 0, matchRule).Err; err != nil {
		return nil, fmt.Errorf("portal: add signal match: %w", err)
	}

	signals := make(chan *dbus.Signal, 4)
	conn.Signal(signals)
	defer func() {
		conn.RemoveSignal(signals)
		_ = conn.BusObject().Call("org.freedesktop.DBus.RemoveMatch", 0, matchRule).Err
	}()

	options := map[string]dbus.Variant{
		"handle_token": dbus.MakeVariant(token),
	}

	var actual dbus.ObjectPath
	if err := invoke(options).Store(&actual); err != nil {
		return nil, err
	}
	if actual != handle {
		// Old portals ignore handle_token.
		log.Debug().Str("expected", string(handle)).Str("actual", string(actual)).Msg("portal: request handle differs")
		handle = actual
	}

	for {
		select {
		case sig := <-signals:
			if sig == nil {
				return nil, errors.New("portal: signal channel closed")
			}
			if sig.Path != handle || sig.Name != requestIface+".Response" || len(sig.Body) < 2 {
				continue
			}
			code, _ := sig.Body[0].(uint32)
			results, _ := sig.Body[1].(map[string]dbus.Variant)
			return results, responseError(code)
		case <-ctx.Done():
			_ = conn.Object(portalDest, handle).Call(requestIface+".Close", 0).Err
			return nil, ctx.Err()
		}
	}
}

func dbusErrorName(err error) string {
	var value dbus.Error
	if errors.As(err, &value) {
		return value.Name
	}
	var ptr *dbus.Error
	if errors.As(err, &ptr) && ptr != nil {
		return ptr.Name
	}
	return ""
}

// isServiceUnknown reports whether err means the peer does not implement
// the name, object, or method that was called.
func isServiceUnknown(err error) bool {
	switch dbusErrorName(err) {
	case "org.freedesktop.DBus.Error.ServiceUnknown",
		"org.freedesktop.DBus.Error.UnknownMethod",
		"org.freedesktop.DBus.Error.UnknownObject",
		"org.freedesktop.DBus.Error.UnknownInterface":
		return true
	}
	return false
}

// isAccessDenied reports whether err is a D-Bus access denial.
func isAccessDenied(err error) bool {
	return dbusErrorName(err) == "org.freedesktop.DBus.Error.AccessDenied"
}
