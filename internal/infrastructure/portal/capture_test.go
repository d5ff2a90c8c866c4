package portal_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneuniverse/onboard/internal/application/port"
	"github.com/oneuniverse/onboard/internal/infrastructure/portal"
	"github.com/oneuniverse/onboard/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func fakeSoundDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	return dir
}

func TestCaptureProbe_DevicesListsCaptureOnly(t *testing.T) {
	dir := fakeSoundDir(t, "controlC0", "pcmC0D0p", "pcmC1D0c", "pcmC0D0c", "timer")
	probe := portal.CaptureProbe{Dir: dir}

	assert.Equal(t, []string{
		filepath.Join(dir, "pcmC0D0c"),
		filepath.Join(dir, "pcmC1D0c"),
	}, probe.Devices())
	assert.True(t, probe.Available())
}

func TestCaptureProbe_NoDevices(t *testing.T) {
	probe := portal.CaptureProbe{Dir: fakeSoundDir(t, "pcmC0D0p")}

	assert.False(t, probe.Available())

	_, err := probe.Open()
	require.ErrorIs(t, err, port.ErrHostAPIUnavailable)
}

func TestCaptureProbe_MissingDir(t *testing.T) {
	probe := portal.CaptureProbe{Dir: filepath.Join(t.TempDir(), "absent")}

	assert.Empty(t, probe.Devices())
}

func TestCaptureProbe_OpenAndStop(t *testing.T) {
	probe := portal.CaptureProbe{Dir: fakeSoundDir(t, "pcmC0D0c")}

	stream, err := probe.Open()
	require.NoError(t, err)

	tracks := stream.Tracks()
	require.Len(t, tracks, 1)
	assert.Equal(t, "audio", tracks[0].Kind())

	tracks[0].Stop()
	tracks[0].Stop()
}

func TestCaptureProbe_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	dir := fakeSoundDir(t, "pcmC0D0c")
	require.NoError(t, os.Chmod(filepath.Join(dir, "pcmC0D0c"), 0o000))

	_, err := portal.CaptureProbe{Dir: dir}.Open()

	require.ErrorIs(t, err, port.ErrMediaNotAllowed)
}

func TestDevicePortal_WithoutBus(t *testing.T) {
	ctx := testCtx()
	d := portal.NewDevicePortal(ctx, nil, portal.CaptureProbe{Dir: fakeSoundDir(t, "pcmC0D0c")})

	assert.False(t, d.PortalSupported())
	assert.True(t, d.MediaCaptureSupported())

	stream, err := d.RequestMedia(ctx, port.MediaConstraints{Audio: true})
	require.NoError(t, err)
	for _, track := range stream.Tracks() {
		track.Stop()
	}

	_, err = d.RequestMedia(ctx, port.MediaConstraints{Video: true})
	require.ErrorIs(t, err, port.ErrHostAPIUnavailable)

	_, err = d.RequestMedia(ctx, port.MediaConstraints{})
	require.Error(t, err)
}

func TestIdleMonitor_WithoutBus(t *testing.T) {
	ctx := testCtx()
	m := portal.NewIdleMonitor(ctx, nil)

	assert.False(t, m.Supported())
	assert.Empty(t, m.Source())

	_, err := m.RequestPermission(ctx)
	require.ErrorIs(t, err, port.ErrHostAPIUnavailable)

	_, err = m.IdleTime(ctx)
	require.ErrorIs(t, err, port.ErrHostAPIUnavailable)
}
