package config

import "time"

const (
	defaultAuthURL           = "https://accounts.google.com/o/oauth2/v2/auth"
	defaultTokenURL          = "https://oauth2.googleapis.com/token"
	defaultDeviceAuthURL     = "https://oauth2.googleapis.com/device/code"
	defaultRedirectURL       = "http://localhost:8085/oauth/callback"
	defaultCalendarScope     = "https://www.googleapis.com/auth/calendar.readonly"
	defaultVideoHistoryScope = "https://www.googleapis.com/auth/youtube.readonly"

	defaultPopupTimeout = 5 * time.Minute
	defaultPollInterval = time.Second
	defaultPopupWidth   = 500
	defaultPopupHeight  = 600
)

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		OAuth: OAuthConfig{
			AuthURL:           defaultAuthURL,
			TokenURL:          defaultTokenURL,
			DeviceAuthURL:     defaultDeviceAuthURL,
			RedirectURL:       defaultRedirectURL,
			CalendarScope:     defaultCalendarScope,
			VideoHistoryScope: defaultVideoHistoryScope,
		},
		Negotiation: NegotiationConfig{
			PopupTimeout: defaultPopupTimeout,
			PollInterval: defaultPollInterval,
			PopupWidth:   defaultPopupWidth,
			PopupHeight:  defaultPopupHeight,
		},
		Audit: AuditConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
