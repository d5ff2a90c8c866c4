package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG directory at a temp dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func writeConfig(t *testing.T, root, body string) string {
	t.Helper()
	dir := filepath.Join(root, "config", appName)
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	path := filepath.Join(dir, configName)
	require.NoError(t, os.WriteFile(path, []byte(body), filePerm))
	return path
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "5m0s", mgr.viper.GetString("negotiation.popup_timeout"))
	assert.Equal(t, 5*time.Minute, mgr.viper.GetDuration("negotiation.popup_timeout"))
	assert.True(t, mgr.viper.GetBool("audit.enabled"))
	assert.Equal(t, defaultRedirectURL, mgr.viper.GetString("oauth.redirect_url"))
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	created := mgr.CreatedConfigFile()
	require.NotEmpty(t, created)
	assert.Equal(t, filepath.Join(root, "config", appName, configName), created)

	info, err := os.Stat(created)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())

	cfg := mgr.Get()
	assert.Equal(t, 5*time.Minute, cfg.Negotiation.PopupTimeout)
	assert.Equal(t, time.Second, cfg.Negotiation.PollInterval)
	assert.Equal(t, filepath.Join(root, "data", appName, databaseName), cfg.Audit.DatabasePath)

	// A second load reads the file it wrote.
	again, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, again.Load())
	assert.Empty(t, again.CreatedConfigFile())
	assert.Equal(t, cfg, again.Get())
}

func TestLoad_ReadsFileAndEnv(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, `
[oauth]
client_id = "from-file"
redirect_url = "http://127.0.0.1:9000/cb"

[negotiation]
popup_timeout = "0s"
poll_interval = "250ms"

[audit]
enabled = false

[logging]
level = "WARN"
`)
	t.Setenv("ONBOARD_OAUTH_CLIENT_ID", "from-env")
	t.Setenv("ONBOARD_LOG_FORMAT", "json")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "from-env", cfg.OAuth.ClientID)
	assert.Equal(t, "http://127.0.0.1:9000/cb", cfg.OAuth.RedirectURL)
	assert.Zero(t, cfg.Negotiation.PopupTimeout, "0 disables the popup ceiling")
	assert.Equal(t, 250*time.Millisecond, cfg.Negotiation.PollInterval)
	assert.False(t, cfg.Audit.Enabled)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, defaultCalendarScope, cfg.OAuth.CalendarScope)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[browser]\nheadless = true\n"), filePerm))

	mgr, err := NewManager()
	require.NoError(t, err)
	mgr.SetConfigFile(path)
	require.NoError(t, mgr.Load())

	assert.True(t, mgr.Get().Browser.Headless)
	assert.Equal(t, path, mgr.GetConfigFile())
}

func TestLoad_InvalidFile(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, "[oauth\nclient_id = ")

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	root := isolateXDG(t)
	writeConfig(t, root, `
[negotiation]
poll_interval = "0s"

[logging]
level = "loud"
`)

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negotiation.poll_interval")
	assert.Contains(t, err.Error(), "logging.level")
}

func TestGet_ReturnsCopy(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.OAuth.ClientID = "mutated"

	assert.Empty(t, mgr.Get().OAuth.ClientID)
}

func TestWatch_ReloadsOnChange(t *testing.T) {
	root := isolateXDG(t)
	path := writeConfig(t, root, "[oauth]\nclient_id = \"before\"\n")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	require.Equal(t, "before", mgr.Get().OAuth.ClientID)

	changed := make(chan *Config, 4)
	mgr.OnConfigChange(func(c *Config) { changed <- c })
	require.NoError(t, mgr.Watch(zerolog.Nop()))
	require.NoError(t, mgr.Watch(zerolog.Nop()), "watching twice is a no-op")

	require.NoError(t, os.WriteFile(path, []byte("[oauth]\nclient_id = \"after\"\n"), filePerm))

	select {
	case c := <-changed:
		assert.Equal(t, "after", c.OAuth.ClientID)
	case <-time.After(5 * time.Second):
		t.Fatal("config change not observed")
	}
	assert.Equal(t, "after", mgr.Get().OAuth.ClientID)
}
