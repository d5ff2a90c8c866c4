package styles

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/oneuniverse/onboard/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Bold(false)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// AuditTableColumns returns the columns of the consent audit table.
func AuditTableColumns() []table.Column {
	return []table.Column{
		{Title: "Negotiation", Width: 12},
		{Title: "Capability", Width: 24},
		{Title: "Status", Width: 10},
		{Title: "Kind", Width: 26},
		{Title: "When", Width: 12},
	}
}

// ConsentRow converts an audit record to a table row.
func ConsentRow(r *entity.ConsentRecord) table.Row {
	id := r.NegotiationID
	if len(id) > 8 {
		id = id[:8]
	}
	return table.Row{
		id,
		string(r.Capability),
		string(r.Status),
		string(r.ErrorKind),
		RelativeTime(time.Unix(r.RecordedAt, 0)),
	}
}

// RenderAuditTable renders audit records as a static table.
func RenderAuditTable(theme *Theme, records []*entity.ConsentRecord) string {
	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, ConsentRow(r))
	}
	width := 0
	for _, c := range AuditTableColumns() {
		width += c.Width + 2
	}
	t := NewStyledTable(theme, AuditTableColumns(), rows, width, len(rows)+2)
	return t.View()
}
