package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/oneuniverse/onboard/internal/domain/entity"
)

// StatusBadge renders an outcome status as a colored badge.
func (t *Theme) StatusBadge(status entity.OutcomeStatus) string {
	var bg lipgloss.Color
	switch status {
	case entity.OutcomeGranted:
		bg = t.Success
	case entity.OutcomeDenied:
		bg = t.Error
	case entity.OutcomeCancelled:
		bg = t.Warning
	default:
		return t.BadgeMuted.Render(string(status))
	}
	return lipgloss.NewStyle().
		Foreground(t.Background).
		Background(bg).
		Padding(0, 1).
		Render(string(status))
}

// StatusIcon returns the icon for an outcome status.
func StatusIcon(status entity.OutcomeStatus) string {
	switch status {
	case entity.OutcomeGranted:
		return IconCheck
	case entity.OutcomeDenied:
		return IconX
	case entity.OutcomeCancelled:
		return IconStop
	default:
		return IconMinus
	}
}

// RelativeTime formats a time relative to now.
func RelativeTime(tm time.Time) string {
	diff := time.Since(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return tm.Format("2006-01-02")
	}
}
