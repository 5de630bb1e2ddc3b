package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/libwizard/internal/model"
)

const maxVisibleOutcomes = 10

var kindColors = map[m.OutcomeKind]lipgloss.Color{
	m.LicenseAdded:       lipgloss.Color("2"), // Green
	m.LicenseRegenerated: lipgloss.Color("6"), // Cyan
	m.LicenseFileWritten: lipgloss.Color("5"), // Magenta
	m.RewriteFailed:      lipgloss.Color("1"), // Red
}

// rewriteModel shows the latest outcomes while a run is in progress and a
// summary once it is done.
type rewriteModel struct {
	cfg      StartConfig
	spinner  spinner.Model
	outcomes []m.Outcome
	failures []m.Outcome
	summary  summary
	width    int
	done     bool
}

func newRewriteModel(cfg StartConfig) rewriteModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return rewriteModel{cfg: cfg, spinner: s}
}

func (rm rewriteModel) Init() tea.Cmd {
	return rm.spinner.Tick
}

func (rm rewriteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case outcomeMsg:
		rm.outcomes = append(rm.outcomes, msg.outcome)
		if len(rm.outcomes) > maxVisibleOutcomes {
			rm.outcomes = rm.outcomes[len(rm.outcomes)-maxVisibleOutcomes:]
		}

		if msg.outcome.Kind == m.RewriteFailed {
			rm.failures = append(rm.failures, msg.outcome)
		}

		rm.summary.add(msg.outcome)

		return rm, nil

	case doneMsg:
		rm.done = true
		return rm, tea.Quit

	case tea.WindowSizeMsg:
		rm.width = msg.Width
		return rm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return rm, tea.Quit
		}

		return rm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		rm.spinner, cmd = rm.spinner.Update(msg)

		return rm, cmd
	}

	return rm, nil
}

func (rm rewriteModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)
	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	title := "libwizard " + string(rm.cfg.root)
	if rm.cfg.dryRun {
		title += " (dry run)"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if rm.done {
		for _, outcome := range rm.failures {
			b.WriteString(rm.renderOutcome(outcome))
			b.WriteString("\n")
		}

		b.WriteString(rm.renderSummary())
		b.WriteString("\n")

		return b.String()
	}

	for _, outcome := range rm.outcomes {
		b.WriteString(rm.renderOutcome(outcome))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(rm.spinner.View())
	b.WriteString(" rewriting headers")
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("q: quit view"))
	b.WriteString("\n")

	return b.String()
}

func (rm rewriteModel) renderOutcome(outcome m.Outcome) string {
	kindStyle := lipgloss.NewStyle().
		Foreground(kindColors[outcome.Kind]).
		Bold(true).
		Width(14)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	messageStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	line := fmt.Sprintf("%s %s  %s",
		kindStyle.Render(string(outcome.Kind)),
		pathStyle.Render(string(outcome.Path)),
		messageStyle.Render(outcomeMessage(outcome)),
	)

	if rm.width > 0 && lipgloss.Width(line) > rm.width {
		return lipgloss.NewStyle().MaxWidth(rm.width).Render(line)
	}

	return line
}

func (rm rewriteModel) renderSummary() string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	failStyle := lipgloss.NewStyle().Foreground(kindColors[m.RewriteFailed])

	if rm.summary.total() == 0 {
		return accentStyle.Render("No issues found")
	}

	parts := []string{
		accentStyle.Render(fmt.Sprintf("%d added", rm.summary.added)),
		accentStyle.Render(fmt.Sprintf("%d regenerated", rm.summary.regenerated)),
		accentStyle.Render(fmt.Sprintf("%d license file", rm.summary.licenseFile)),
		failStyle.Render(fmt.Sprintf("%d failed", rm.summary.failed)),
	}

	return strings.Join(parts, " · ")
}
