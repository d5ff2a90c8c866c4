package styles

import (
	"fmt"
	"strings"

	"github.com/oneuniverse/onboard/internal/application/usecase"
	"github.com/oneuniverse/onboard/internal/domain/entity"
)

// RenderResult renders one line per capability of a negotiation result.
func (t *Theme) RenderResult(result *entity.NegotiationResult) string {
	if result == nil {
		return ""
	}

	var b strings.Builder
	for _, c := range result.Catalog().All() {
		o, _ := result.Outcome(c.ID)
		fmt.Fprintf(&b, "%s %s  %s",
			StatusIcon(o.Status()),
			t.Normal.Render(fmt.Sprintf("%-26s", c.Title)),
			t.StatusBadge(o.Status()),
		)
		if detail := outcomeDetail(o); detail != "" {
			b.WriteString("  ")
			if o.IsDenied() {
				b.WriteString(t.ErrorStyle.Render(detail))
			} else {
				b.WriteString(t.Subtle.Render(detail))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func outcomeDetail(o entity.Outcome) string {
	if err := o.Err(); err != nil {
		return err.Message
	}
	if g, ok := o.Grant(); ok {
		parts := make([]string, 0, 2)
		if g.Mode != "" {
			parts = append(parts, string(g.Mode))
		}
		if g.Note != "" {
			parts = append(parts, g.Note)
		}
		return strings.Join(parts, ": ")
	}
	return ""
}

// RenderDecision renders the outcome of a grant attempt: a headline, the
// per-capability result and what the user can do next.
func (t *Theme) RenderDecision(out usecase.FlowOutcome) string {
	var b strings.Builder

	switch out.Decision {
	case usecase.DecisionProceed:
		b.WriteString(t.SuccessStyle.Render(IconCheck + " All requested permissions granted"))
	case usecase.DecisionRetryOrContinue:
		b.WriteString(t.WarningStyle.Render(IconWarning + " " + out.Message))
	case usecase.DecisionBlocked:
		b.WriteString(t.ErrorStyle.Render(IconX + " " + out.Message))
	}
	b.WriteString("\n\n")

	if out.Result != nil {
		b.WriteString(t.RenderResult(out.Result))
	}

	if out.Decision == usecase.DecisionRetryOrContinue {
		b.WriteString("\n")
		b.WriteString(t.Subtle.Render("Retry the failed permissions or continue without them."))
		b.WriteString("\n")
	}
	return b.String()
}
