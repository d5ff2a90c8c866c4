package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}
	validLogFormats = []string{"console", "json", "text"}
)

// validateConfig collects every invalid value into one error.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateOAuth(config)...)
	validationErrors = append(validationErrors, validateNegotiation(config)...)
	validationErrors = append(validationErrors, validateTelemetry(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateOAuth(config *Config) []string {
	var validationErrors []string
	if msg := validateHTTPURL("oauth.redirect_url", config.OAuth.RedirectURL, true); msg != "" {
		validationErrors = append(validationErrors, msg)
	}
	if msg := validateHTTPURL("oauth.auth_url", config.OAuth.AuthURL, true); msg != "" {
		validationErrors = append(validationErrors, msg)
	}
	if msg := validateHTTPURL("oauth.token_url", config.OAuth.TokenURL, false); msg != "" {
		validationErrors = append(validationErrors, msg)
	}
	if msg := validateHTTPURL("oauth.device_auth_url", config.OAuth.DeviceAuthURL, false); msg != "" {
		validationErrors = append(validationErrors, msg)
	}
	if strings.TrimSpace(config.OAuth.CalendarScope) == "" {
		validationErrors = append(validationErrors, "oauth.calendar_scope must not be empty")
	}
	if strings.TrimSpace(config.OAuth.VideoHistoryScope) == "" {
		validationErrors = append(validationErrors, "oauth.video_history_scope must not be empty")
	}
	return validationErrors
}

func validateHTTPURL(key, raw string, required bool) string {
	if raw == "" {
		if required {
			return key + " must not be empty"
		}
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Sprintf("%s must be an absolute http(s) URL (got %q)", key, raw)
	}
	return ""
}

func validateNegotiation(config *Config) []string {
	var validationErrors []string
	n := config.Negotiation
	if n.PopupTimeout < 0 {
		validationErrors = append(validationErrors, "negotiation.popup_timeout must be non-negative (0 disables it)")
	}
	if n.PollInterval <= 0 {
		validationErrors = append(validationErrors, "negotiation.poll_interval must be positive")
	}
	if n.PopupTimeout > 0 && n.PollInterval > n.PopupTimeout {
		validationErrors = append(validationErrors, "negotiation.poll_interval must not exceed negotiation.popup_timeout")
	}
	if n.PopupWidth <= 0 || n.PopupHeight <= 0 {
		validationErrors = append(validationErrors, "negotiation.popup_width and negotiation.popup_height must be positive")
	}
	return validationErrors
}

func validateTelemetry(config *Config) []string {
	if config.Telemetry.MetricsAddr == "" {
		return nil
	}
	if _, _, err := net.SplitHostPort(config.Telemetry.MetricsAddr); err != nil {
		return []string{fmt.Sprintf("telemetry.metrics_addr must be host:port (got %q)", config.Telemetry.MetricsAddr)}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !contains(validLogLevels, config.Logging.Level) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of: %s", strings.Join(validLogLevels, ", ")))
	}
	if !contains(validLogFormats, config.Logging.Format) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of: %s", strings.Join(validLogFormats, ", ")))
	}
	return validationErrors
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
