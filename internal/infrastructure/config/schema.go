package config

import "time"

// Config represents the complete configuration for onboard.
type Config struct {
	OAuth       OAuthConfig       `mapstructure:"oauth" toml:"oauth" json:"oauth"`
	Negotiation NegotiationConfig `mapstructure:"negotiation" toml:"negotiation" json:"negotiation"`
	// Browser drives the window OAuth popups open in.
	Browser   BrowserConfig   `mapstructure:"browser" toml:"browser" json:"browser"`
	Audit     AuditConfig     `mapstructure:"audit" toml:"audit" json:"audit"`
	Telemetry TelemetryConfig `mapstructure:"telemetry" toml:"telemetry" json:"telemetry"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging" json:"logging"`
}

// OAuthConfig holds the OAuth client registration and scopes.
type OAuthConfig struct {
	ClientID     string `mapstructure:"client_id" toml:"client_id" json:"client_id" jsonschema:"description=OAuth client id"`
	ClientSecret string `mapstructure:"client_secret" toml:"client_secret" json:"client_secret,omitempty"`
	// AuthURL is the authorization endpoint the popup opens.
	AuthURL       string `mapstructure:"auth_url" toml:"auth_url" json:"auth_url"`
	TokenURL      string `mapstructure:"token_url" toml:"token_url" json:"token_url"`
	DeviceAuthURL string `mapstructure:"device_auth_url" toml:"device_auth_url" json:"device_auth_url"`
	// RedirectURL is where the provider sends the popup back to; its origin
	// is the only origin popup messages are accepted from.
	RedirectURL       string `mapstructure:"redirect_url" toml:"redirect_url" json:"redirect_url"`
	CalendarScope     string `mapstructure:"calendar_scope" toml:"calendar_scope" json:"calendar_scope"`
	VideoHistoryScope string `mapstructure:"video_history_scope" toml:"video_history_scope" json:"video_history_scope"`
}

// NegotiationConfig tunes capability acquisition.
type NegotiationConfig struct {
	// PopupTimeout bounds the wait on an OAuth popup. 0 waits forever.
	PopupTimeout time.Duration `mapstructure:"popup_timeout" toml:"popup_timeout" json:"popup_timeout"`
	// PollInterval is how often an open popup is checked for closure.
	PollInterval time.Duration `mapstructure:"poll_interval" toml:"poll_interval" json:"poll_interval"`
	PopupWidth   int           `mapstructure:"popup_width" toml:"popup_width" json:"popup_width"`
	PopupHeight  int           `mapstructure:"popup_height" toml:"popup_height" json:"popup_height"`
}

// BrowserConfig selects the browser popups run in.
type BrowserConfig struct {
	// Bin overrides the browser binary. Empty lets the launcher pick one.
	Bin string `mapstructure:"bin" toml:"bin" json:"bin"`
	// ControlURL attaches to an already running browser instead of launching one.
	ControlURL string `mapstructure:"control_url" toml:"control_url" json:"control_url"`
	Headless   bool   `mapstructure:"headless" toml:"headless" json:"headless"`
}

// AuditConfig controls the consent audit trail.
type AuditConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// DatabasePath defaults to $XDG_DATA_HOME/onboard/consent.sqlite.
	DatabasePath string `mapstructure:"database_path" toml:"database_path" json:"database_path"`
}

// TelemetryConfig controls metrics and tracing.
type TelemetryConfig struct {
	// MetricsAddr exposes prometheus metrics when set, e.g. "127.0.0.1:9464".
	MetricsAddr string `mapstructure:"metrics_addr" toml:"metrics_addr" json:"metrics_addr"`
	// Tracing writes spans to the state directory.
	Tracing bool `mapstructure:"tracing" toml:"tracing" json:"tracing"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,enum=text"`
}
