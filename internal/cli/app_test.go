package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneuniverse/onboard/internal/domain/build"
	"github.com/oneuniverse/onboard/internal/infrastructure/config"
	"github.com/oneuniverse/onboard/internal/infrastructure/oauthclient"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("DBUS_SESSION_BUS_ADDRESS", "unix:path="+filepath.Join(root, "no-bus"))
	return root
}

func TestToNegotiationConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.OAuth.ClientID = "client"
	cfg.Negotiation.PopupTimeout = time.Minute
	cfg.Negotiation.PollInterval = 250 * time.Millisecond

	got := ToNegotiationConfig(cfg)

	assert.Equal(t, "client", got.OAuth.ClientID)
	assert.Equal(t, cfg.OAuth.AuthURL, got.OAuth.AuthURL)
	assert.Equal(t, cfg.OAuth.RedirectURL, got.OAuth.RedirectURL)
	assert.Equal(t, cfg.OAuth.CalendarScope, got.OAuth.CalendarScope)
	assert.Equal(t, cfg.OAuth.VideoHistoryScope, got.OAuth.VideoHistoryScope)
	assert.Equal(t, time.Minute, got.PopupTimeout)
	assert.Equal(t, 250*time.Millisecond, got.PollInterval)
	assert.Equal(t, cfg.Negotiation.PopupWidth, got.PopupWidth)
	assert.Equal(t, cfg.Negotiation.PopupHeight, got.PopupHeight)
}

func TestDevicePrompter(t *testing.T) {
	var buf bytes.Buffer
	prompt := devicePrompter(&buf)

	err := prompt(context.Background(), oauthclient.DeviceCode{
		UserCode:        "ABCD-EFGH",
		VerificationURI: "https://www.google.com/device",
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "https://www.google.com/device")
	assert.Contains(t, buf.String(), "ABCD-EFGH")
}

func TestNewApp_WithoutSessionBus(t *testing.T) {
	root := isolateEnv(t)

	app, err := NewApp(Options{
		LogToFile:      true,
		NoDeviceSignIn: true,
		BuildInfo:      build.Info{Version: "test"},
	})
	require.NoError(t, err)

	assert.NotNil(t, app.Negotiator)
	assert.NotNil(t, app.Audit, "audit is enabled by default")
	assert.Equal(t, "test", app.BuildInfo.Version)
	assert.Equal(t, filepath.Join(root, "config", "onboard", "config.toml"), app.ConfigFile())
	assert.Equal(t, 4, app.Catalog.Len())

	flow := app.NewFlow()
	assert.False(t, flow.Selection().AnyEnabled())

	require.NoError(t, app.Close())
	assert.Error(t, app.Ctx().Err(), "closing cancels the app context")

	_, err = os.Stat(filepath.Join(root, "data", "onboard", "logs", "onboard.log"))
	assert.NoError(t, err)
}

func TestNewApp_LogsHostCapabilities(t *testing.T) {
	root := isolateEnv(t)
	t.Setenv("ONBOARD_LOG_LEVEL", "debug")
	t.Setenv("ONBOARD_LOG_FORMAT", "json")

	app, err := NewApp(Options{
		LogToFile:      true,
		NoDeviceSignIn: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, app.popups.OpenPopups())
	require.NoError(t, app.Close())

	data, err := os.ReadFile(filepath.Join(root, "data", "onboard", "logs", "onboard.log"))
	require.NoError(t, err)
	logged := string(data)
	assert.Contains(t, logged, `"idle_supported":false`)
	assert.Contains(t, logged, `"idle_source":""`)
	assert.Contains(t, logged, `"device_portal":false`)
}

func TestNewApp_InvalidConfigFile(t *testing.T) {
	root := isolateEnv(t)
	path := filepath.Join(root, "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[negotiation]\npoll_interval = \"0s\"\n"), 0o600))

	_, err := NewApp(Options{ConfigFile: path})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
