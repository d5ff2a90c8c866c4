package portal

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/godbus/dbus/v5"

	"github.com/oneuniverse/onboard/internal/application/port"
	"github.com/oneuniverse/onboard/internal/logging"
)

const deviceInterface = "org.freedesktop.portal.Device"

// DevicePortal asks for microphone access through the device portal and
// opens the capture device once access is granted. Without the portal the
// device is opened directly and the file permissions decide.
type DevicePortal struct {
	conn      *dbus.Conn
	probe     CaptureProbe
	supported bool
}

// NewDevicePortal probes the device portal on conn, which may be nil.
func NewDevicePortal(ctx context.Context, conn *dbus.Conn, probe CaptureProbe) *DevicePortal {
	log := logging.FromContext(ctx)

	d := &DevicePortal{conn: conn, probe: probe}
	if conn == nil {
		return d
	}

	version, err := interfaceVersion(conn, deviceInterface)
	if err != nil {
		log.Debug().Err(err).Msg("device portal: not available")
		return d
	}
	d.supported = true
	log.Debug().Uint32("version", version).Msg("device portal: available")
	return d
}

// PortalSupported reports whether the device portal answered.
func (d *DevicePortal) PortalSupported() bool {
	return d.supported
}

// MediaCaptureSupported reports whether a capture device exists.
func (d *DevicePortal) MediaCaptureSupported() bool {
	return d.probe.Available()
}

// RequestMedia asks for capture access and returns the open stream.
// A user dismissing the portal dialog is reported as port.ErrMediaNotAllowed.
func (d *DevicePortal) RequestMedia(ctx context.Context, constraints port.MediaConstraints) (port.MediaStream, error) {
	log := logging.FromContext(ctx)

	if constraints.Video {
		return nil, fmt.Errorf("video capture: %w", port.ErrHostAPIUnavailable)
	}
	if !constraints.Audio {
		return nil, errors.New("no media requested")
	}

	if d.supported {
		obj := d.conn.Object(portalDest, portalPath)
		_, err := call(ctx, d.conn, func(options map[string]dbus.Variant) *dbus.Call {
			return obj.CallWithContext(ctx, deviceInterface+".AccessDevice", 0,
				uint32(os.Getpid()), []string{"microphone"}, options)
		})
		switch {
		case err == nil:
			log.Debug().Msg("device portal: microphone access granted")
		case ctx.Err() != nil:
			return nil, ctx.Err()
		case errors.Is(err, ErrRequestCancelled), isAccessDenied(err):
			return nil, fmt.Errorf("%w: %v", port.ErrMediaNotAllowed, err)
		default:
			return nil, fmt.Errorf("device portal: %w", err)
		}
	}

	return d.probe.Open()
}
