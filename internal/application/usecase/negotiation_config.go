package usecase

import "time"

// Default OAuth scopes of the two OAuth-backed capabilities.
const (
	DefaultCalendarScope     = "https://www.googleapis.com/auth/calendar.readonly"
	DefaultVideoHistoryScope = "https://www.googleapis.com/auth/youtube.readonly"
	DefaultAuthURL           = "https://accounts.google.com/o/oauth2/v2/auth"
)

// OAuthSettings configures the OAuth-backed capabilities.
type OAuthSettings struct {
	ClientID          string
	AuthURL           string
	RedirectURL       string
	CalendarScope     string
	VideoHistoryScope string
}

// NegotiationConfig holds the tunables of capability acquisition.
type NegotiationConfig struct {
	OAuth OAuthSettings

	// PollInterval is how often an open popup is checked for closure.
	PollInterval time.Duration

	// PopupTimeout bounds the total wait on a popup. Zero disables the ceiling.
	PopupTimeout time.Duration

	PopupWidth  int
	PopupHeight int
}

// DefaultNegotiationConfig returns the defaults used when no config file overrides them.
func DefaultNegotiationConfig() NegotiationConfig {
	return NegotiationConfig{
		OAuth: OAuthSettings{
			AuthURL:           DefaultAuthURL,
			RedirectURL:       "http://localhost:8085/oauth/callback",
			CalendarScope:     DefaultCalendarScope,
			VideoHistoryScope: DefaultVideoHistoryScope,
		},
		PollInterval: time.Second,
		PopupTimeout: 5 * time.Minute,
		PopupWidth:   500,
		PopupHeight:  600,
	}
}
