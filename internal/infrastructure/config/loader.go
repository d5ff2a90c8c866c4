// Package config loads the onboard configuration from TOML, environment
// variables and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	created   string
}

// NewManager creates a new configuration manager reading config.toml from
// the XDG config directory, then the working directory.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// ONBOARD_OAUTH_CLIENT_ID, ONBOARD_AUDIT_ENABLED, ...
	v.SetEnvPrefix("ONBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "ONBOARD_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind ONBOARD_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "ONBOARD_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind ONBOARD_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// SetConfigFile pins the manager to an explicit config file.
func (m *Manager) SetConfigFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.viper.SetConfigFile(path)
}

// Load loads the configuration from file and environment variables. A
// missing config file is created from the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.decode()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config: %w", createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// decode unmarshals, normalizes and validates the viper state into m.config.
// Must be called with m.mu held for write.
func (m *Manager) decode() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func ensureDatabasePath(config *Config) error {
	if config.Audit.DatabasePath != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Audit.DatabasePath = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.OAuth.ClientID = strings.TrimSpace(config.OAuth.ClientID)
	config.OAuth.RedirectURL = strings.TrimSpace(config.OAuth.RedirectURL)
	config.Browser.Bin = strings.TrimSpace(config.Browser.Bin)
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.ConfigFileUsed()
}

// CreatedConfigFile returns the path of the config file Load created, if any.
func (m *Manager) CreatedConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.created
}

func (m *Manager) createDefaultConfig() error {
	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		var err error
		if configFile, err = GetConfigFile(); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Chmod(configFile, filePerm); err != nil {
		return fmt.Errorf("failed to restrict config file: %w", err)
	}
	m.viper.SetConfigFile(configFile)
	m.created = configFile
	return nil
}

// setDefaults sets default configuration values in Viper. Durations are
// stored as strings so a freshly written config file stays readable.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setOAuthDefaults(defaults)
	m.setNegotiationDefaults(defaults)
	m.setBrowserDefaults(defaults)
	m.setAuditDefaults(defaults)
	m.setTelemetryDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setOAuthDefaults(defaults *Config) {
	m.viper.SetDefault("oauth.client_id", defaults.OAuth.ClientID)
	m.viper.SetDefault("oauth.client_secret", defaults.OAuth.ClientSecret)
	m.viper.SetDefault("oauth.auth_url", defaults.OAuth.AuthURL)
	m.viper.SetDefault("oauth.token_url", defaults.OAuth.TokenURL)
	m.viper.SetDefault("oauth.device_auth_url", defaults.OAuth.DeviceAuthURL)
	m.viper.SetDefault("oauth.redirect_url", defaults.OAuth.RedirectURL)
	m.viper.SetDefault("oauth.calendar_scope", defaults.OAuth.CalendarScope)
	m.viper.SetDefault("oauth.video_history_scope", defaults.OAuth.VideoHistoryScope)
}

func (m *Manager) setNegotiationDefaults(defaults *Config) {
	m.viper.SetDefault("negotiation.popup_timeout", defaults.Negotiation.PopupTimeout.String())
	m.viper.SetDefault("negotiation.poll_interval", defaults.Negotiation.PollInterval.String())
	m.viper.SetDefault("negotiation.popup_width", defaults.Negotiation.PopupWidth)
	m.viper.SetDefault("negotiation.popup_height", defaults.Negotiation.PopupHeight)
}

func (m *Manager) setBrowserDefaults(defaults *Config) {
	m.viper.SetDefault("browser.bin", defaults.Browser.Bin)
	m.viper.SetDefault("browser.control_url", defaults.Browser.ControlURL)
	m.viper.SetDefault("browser.headless", defaults.Browser.Headless)
}

func (m *Manager) setAuditDefaults(defaults *Config) {
	m.viper.SetDefault("audit.enabled", defaults.Audit.Enabled)
	m.viper.SetDefault("audit.database_path", defaults.Audit.DatabasePath)
}

func (m *Manager) setTelemetryDefaults(defaults *Config) {
	m.viper.SetDefault("telemetry.metrics_addr", defaults.Telemetry.MetricsAddr)
	m.viper.SetDefault("telemetry.tracing", defaults.Telemetry.Tracing)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}
