package styles

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// NewDefaultSpinner creates the themed spinner shown while a negotiation runs.
func NewDefaultSpinner(theme *Theme) spinner.Model {
	s := spinner.New()
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	s.Spinner = spinner.Dot
	return s
}
