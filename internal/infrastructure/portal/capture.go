package portal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/oneuniverse/onboard/internal/application/port"
)

// DefaultSoundDir is where ALSA exposes PCM devices.
const DefaultSoundDir = "/dev/snd"

// CaptureProbe finds ALSA capture devices.
type CaptureProbe struct {
	Dir string
}

// NewCaptureProbe returns a probe over DefaultSoundDir.
func NewCaptureProbe() CaptureProbe {
	return CaptureProbe{Dir: DefaultSoundDir}
}

// Devices lists capture PCM device paths (pcmC<card>D<device>c), sorted.
func (p CaptureProbe) Devices() []string {
	entries, err := os.ReadDir(p.dir())
	if err != nil {
		return nil
	}
	var devices []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, "pcmC") && strings.HasSuffix(name, "c") {
			devices = append(devices, filepath.Join(p.dir(), name))
		}
	}
	sort.Strings(devices)
	return devices
}

// Available reports whether any capture device exists.
func (p CaptureProbe) Available() bool {
	return len(p.Devices()) > 0
}

// Open opens the first capture device that can be opened. A permission
// error on every device is reported as port.ErrMediaNotAllowed.
func (p CaptureProbe) Open() (port.MediaStream, error) {
	devices := p.Devices()
	if len(devices) == 0 {
		return nil, fmt.Errorf("no capture device in %s: %w", p.dir(), port.ErrHostAPIUnavailable)
	}

	var denied, lastErr error
	for _, path := range devices {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
		if err == nil {
			return &captureStream{tracks: []port.MediaTrack{&captureTrack{fd: fd, path: path}}}, nil
		}
		if errors.Is(err, unix.EACCES) || errors.Is(err, unix.EPERM) {
			denied = fmt.Errorf("open %s: %w", path, err)
			continue
		}
		lastErr = fmt.Errorf("open %s: %w", path, err)
	}
	if denied != nil && lastErr == nil {
		return nil, fmt.Errorf("%w: %v", port.ErrMediaNotAllowed, denied)
	}
	return nil, lastErr
}

func (p CaptureProbe) dir() string {
	if p.Dir == "" {
		return DefaultSoundDir
	}
	return p.Dir
}

type captureStream struct {
	tracks []port.MediaTrack
}

func (s *captureStream) Tracks() []port.MediaTrack {
	return s.tracks
}

// captureTrack holds an open capture device. Holding it open is what keeps
// the device reserved; Stop releases it.
type captureTrack struct {
	fd   int
	path string
	once sync.Once
}

func (t *captureTrack) Kind() string { return "audio" }

func (t *captureTrack) Stop() {
	t.once.Do(func() {
		_ = unix.Close(t.fd)
	})
}
