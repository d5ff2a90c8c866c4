package portal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/oneuniverse/onboard/internal/application/port"
	"github.com/oneuniverse/onboard/internal/logging"
)

// idleSource is one D-Bus service that reports user idle time.
type idleSource struct {
	name   string
	dest   string
	path   dbus.ObjectPath
	method string
	// toDuration converts the method's reply.
	toDuration func(*dbus.Call) (time.Duration, error)
}

var idleSources = []idleSource{
	{
		name:   "mutter",
		dest:   "org.gnome.Mutter.IdleMonitor",
		path:   "/org/gnome/Mutter/IdleMonitor/Core",
		method: "org.gnome.Mutter.IdleMonitor.GetIdletime",
		toDuration: func(c *dbus.Call) (time.Duration, error) {
			var ms uint64
			if err := c.Store(&ms); err != nil {
				return 0, err
			}
			return time.Duration(ms) * time.Millisecond, nil
		},
	},
	{
		name:   "screensaver",
		dest:   "org.freedesktop.ScreenSaver",
		path:   "/org/freedesktop/ScreenSaver",
		method: "org.freedesktop.ScreenSaver.GetSessionIdleTime",
		toDuration: func(c *dbus.Call) (time.Duration, error) {
			var secs uint32
			if err := c.Store(&secs); err != nil {
				return 0, err
			}
			return time.Duration(secs) * time.Second, nil
		},
	},
}

// IdleMonitor reads user idle time from the compositor. Construction never
// fails; without a usable source the monitor reports itself unsupported.
type IdleMonitor struct {
	conn   *dbus.Conn
	source *idleSource
	mu     sync.Mutex
}

// NewIdleMonitor probes the session bus for an idle time source.
func NewIdleMonitor(ctx context.Context, conn *dbus.Conn) *IdleMonitor {
	log := logging.FromContext(ctx)

	m := &IdleMonitor{conn: conn}
	if conn == nil {
		return m
	}

	for i := range idleSources {
		src := &idleSources[i]
		if _, err := m.query(ctx, src); err != nil {
			log.Debug().Err(err).Str("source", src.name).Msg("idle monitor: source unavailable")
			continue
		}
		m.source = src
		log.Debug().Str("source", src.name).Msg("idle monitor: source found")
		break
	}
	return m
}

// Supported reports whether an idle source was found.
func (m *IdleMonitor) Supported() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.source != nil
}

// Source returns the name of the idle source in use.
func (m *IdleMonitor) Source() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.source == nil {
		return ""
	}
	return m.source.name
}

// RequestPermission checks that idle time can be read now. Compositors do
// not prompt for idle time; a policy denial is reported as denied, a
// vanished source as port.ErrHostAPIUnavailable.
func (m *IdleMonitor) RequestPermission(ctx context.Context) (port.IdlePermissionState, error) {
	m.mu.Lock()
	src := m.source
	m.mu.Unlock()

	if src == nil {
		return "", port.ErrHostAPIUnavailable
	}

	_, err := m.query(ctx, src)
	switch {
	case err == nil:
		return port.IdlePermissionGranted, nil
	case isAccessDenied(err):
		return port.IdlePermissionDenied, nil
	case isServiceUnknown(err):
		m.mu.Lock()
		m.source = nil
		m.mu.Unlock()
		return "", fmt.Errorf("idle source %s: %w", src.name, port.ErrHostAPIUnavailable)
	default:
		return "", fmt.Errorf("idle source %s: %w", src.name, err)
	}
}

// IdleTime returns how long the user has been idle.
func (m *IdleMonitor) IdleTime(ctx context.Context) (time.Duration, error) {
	m.mu.Lock()
	src := m.source
	m.mu.Unlock()

	if src == nil {
		return 0, port.ErrHostAPIUnavailable
	}
	return m.query(ctx, src)
}

func (m *IdleMonitor) query(ctx context.Context, src *idleSource) (time.Duration, error) {
	c := m.conn.Object(src.dest, src.path).CallWithContext(ctx, src.method, 0)
	if c.Err != nil {
		return 0, c.Err
	}
	return src.toDuration(c)
}
