// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oneuniverse/onboard/internal/application/usecase"
	"github.com/oneuniverse/onboard/internal/cli/styles"
	"github.com/oneuniverse/onboard/internal/domain/entity"
	"github.com/oneuniverse/onboard/internal/logging"
)

// PermissionScreenModel is the interactive permission screen: the user
// picks capabilities, grants them, and retries or continues on failure.
type PermissionScreenModel struct {
	help    help.Model
	keys    permissionKeyMap
	spinner spinner.Model

	capabilities []entity.Capability
	cursor       int
	busy         bool
	quitting     bool
	finished     bool
	cancel       context.CancelFunc
	outcome      *usecase.FlowOutcome
	status       string
	err          error
	width        int

	ctx   context.Context
	flow  *usecase.PermissionFlow
	theme *styles.Theme
}

type permissionKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Grant    key.Binding
	Retry    key.Binding
	Continue key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k permissionKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Grant, k.Retry, k.Continue, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k permissionKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Grant, k.Retry, k.Continue},
		{k.Help, k.Quit},
	}
}

func defaultPermissionKeyMap() permissionKeyMap {
	return permissionKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		Grant: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "grant"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry failed"),
		),
		Continue: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "continue anyway"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// negotiatedMsg carries the outcome of a grant or retry.
type negotiatedMsg struct {
	outcome usecase.FlowOutcome
	err     error
}

// NewPermissionScreenModel creates the screen for one visit.
func NewPermissionScreenModel(ctx context.Context, theme *styles.Theme, flow *usecase.PermissionFlow) PermissionScreenModel {
	return PermissionScreenModel{
		help:         help.New(),
		keys:         defaultPermissionKeyMap(),
		spinner:      styles.NewDefaultSpinner(theme),
		capabilities: flow.Selection().Catalog().All(),
		width:        80,
		ctx:          ctx,
		flow:         flow,
		theme:        theme,
	}
}

// Init implements tea.Model.
func (m PermissionScreenModel) Init() tea.Cmd {
	return nil
}

// Outcome returns the last grant outcome, if any.
func (m PermissionScreenModel) Outcome() *usecase.FlowOutcome {
	return m.outcome
}

// Finished reports whether the user left the screen by proceeding or
// continuing, as opposed to quitting.
func (m PermissionScreenModel) Finished() bool {
	return m.finished
}

// Update implements tea.Model.
func (m PermissionScreenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case negotiatedMsg:
		return m.handleNegotiated(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m PermissionScreenModel) handleNegotiated(msg negotiatedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if msg.err != nil {
		m.err = msg.err
	} else {
		out := msg.outcome
		m.outcome = &out
		m.err = nil
	}
	if m.quitting {
		return m, tea.Quit
	}
	return m, nil
}

func (m PermissionScreenModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.busy {
			// Let the negotiation settle as cancelled before leaving.
			m.quitting = true
			m.status = "Cancelling…"
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
		return m, tea.Quit
	}
	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.capabilities)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		m.toggle()
	case key.Matches(msg, m.keys.Grant):
		if m.outcome != nil && m.outcome.Decision == usecase.DecisionProceed && m.selectionMatchesResult() {
			m.finished = true
			return m, tea.Quit
		}
		return m.start(false)
	case key.Matches(msg, m.keys.Retry):
		if m.canRetry() {
			return m.start(true)
		}
	case key.Matches(msg, m.keys.Continue):
		if m.outcome != nil && m.outcome.Decision == usecase.DecisionRetryOrContinue {
			m.finished = true
			return m, tea.Quit
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *PermissionScreenModel) toggle() {
	if len(m.capabilities) == 0 {
		return
	}
	id := m.capabilities[m.cursor].ID
	if err := m.flow.Toggle(id); err != nil {
		if errors.Is(err, entity.ErrCapabilityRequired) {
			m.status = fmt.Sprintf("%s is required", m.capabilities[m.cursor].Title)
			return
		}
		m.status = err.Error()
		return
	}
	m.status = ""
}

func (m PermissionScreenModel) canRetry() bool {
	return m.outcome != nil &&
		m.outcome.Decision != usecase.DecisionProceed &&
		m.outcome.Result != nil &&
		len(m.outcome.Failures) > 0
}

// selectionMatchesResult reports whether the last result covers what is
// selected now, so enter after a successful grant finishes instead of
// negotiating newly toggled capabilities.
func (m PermissionScreenModel) selectionMatchesResult() bool {
	if m.outcome == nil || m.outcome.Result == nil {
		return false
	}
	selection := m.flow.Selection()
	for _, c := range m.capabilities {
		o, _ := m.outcome.Result.Outcome(c.ID)
		if selection.IsEnabled(c.ID) && !o.IsGranted() {
			return false
		}
	}
	return true
}

func (m PermissionScreenModel) start(retry bool) (tea.Model, tea.Cmd) {
	ctx, cancel := context.WithCancel(m.ctx)
	m.busy = true
	m.cancel = cancel
	m.status = ""
	m.err = nil

	flow := m.flow
	run := func() tea.Msg {
		log := logging.FromContext(ctx)
		var (
			out usecase.FlowOutcome
			err error
		)
		if retry {
			out, err = flow.RetryFailed(ctx)
		} else {
			out, err = flow.Grant(ctx)
		}
		if err != nil {
			log.Error().Err(err).Msg("permission negotiation failed")
		}
		return negotiatedMsg{outcome: out, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, run)
}

// View implements tea.Model.
func (m PermissionScreenModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Connect your data"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtle.Render("Choose what One Universe may use to personalize your plan."))
	b.WriteString("\n\n")

	selection := m.flow.Selection()
	for i, c := range m.capabilities {
		b.WriteString(m.renderCapability(i, c, selection.IsEnabled(c.ID)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.busy:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.theme.Subtle.Render("Requesting permissions…"))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(m.theme.ErrorStyle.Render(styles.IconX + " " + m.err.Error()))
		b.WriteString("\n")
	case m.outcome != nil:
		b.WriteString(m.theme.RenderDecision(*m.outcome))
	}

	if m.status != "" {
		b.WriteString(m.theme.WarningStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m PermissionScreenModel) renderCapability(i int, c entity.Capability, enabled bool) string {
	checkbox := styles.IconCheckboxEmpty
	if enabled {
		checkbox = styles.IconCheckboxChecked
	}
	title := c.Title
	if c.Required {
		title += " " + styles.IconLock
	}

	line := fmt.Sprintf("%s %s %s", checkbox, styles.CapabilityIcon(c.ID), title)
	desc := m.theme.ListItemDesc.Render("   " + c.Description)

	if i == m.cursor {
		return m.theme.ListItemSelected.Render(styles.IconCursor+" "+line) + "\n" + desc
	}
	return m.theme.ListItem.Render("  "+line) + "\n" + desc
}
