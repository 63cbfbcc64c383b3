// Package tui implements the optional --interactive diagnostics browser,
// adapted from the teacher's violation browser: the same list/detail
// view split and key bindings, with the fix-preview and dependency-graph
// views dropped (auto-fix and dependency analysis are out of scope for a
// style linter).
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yamllint-go/yamllint/internal/config"
	"github.com/yamllint-go/yamllint/internal/lint"
)

type viewMode int

const (
	modeList viewMode = iota
	modeDetail
)

// Finding pairs one Diagnostic with the file path it came from, the unit
// the TUI list/detail views navigate.
type Finding struct {
	Path string
	lint.Diagnostic
}

// Model holds the interactive browser's state.
type Model struct {
	findings []Finding
	cursor   int
	viewMode viewMode
	width    int
	height   int
	quitting bool
}

// NewModel creates a browser over findings, initially positioned on the
// list view.
func NewModel(findings []Finding) Model {
	return Model{findings: findings, viewMode: modeList}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("211"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2)
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case modeList:
		return m.handleListKeys(msg)
	case modeDetail:
		return m.handleDetailKeys(msg)
	}
	return m, nil
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("q", "ctrl+c"))):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.cursor < len(m.findings)-1 {
			m.cursor++
		}

	case key.Matches(msg, key.NewBinding(key.WithKeys("enter", "space"))):
		if len(m.findings) > 0 {
			m.viewMode = modeDetail
		}
	}
	return m, nil
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("q", "ctrl+c"))):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, key.NewBinding(key.WithKeys("esc", "backspace"))):
		m.viewMode = modeList
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.viewMode {
	case modeDetail:
		return m.renderDetail()
	default:
		return m.renderList()
	}
}

func (m Model) renderList() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("yamllint - interactive mode"))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("Found %d diagnostic(s)", len(m.findings))
	b.WriteString(headerStyle.Render(summary))
	b.WriteString("\n\n")

	visibleStart := m.cursor - 10
	if visibleStart < 0 {
		visibleStart = 0
	}
	visibleEnd := visibleStart + 20
	if visibleEnd > len(m.findings) {
		visibleEnd = len(m.findings)
	}

	for i := visibleStart; i < visibleEnd; i++ {
		f := m.findings[i]

		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}

		levelTag := levelStyle(f.Level).Render(levelWord(f.Level))
		line := fmt.Sprintf("%s%-9s %-28s %s", prefix, levelTag, truncate(f.Rule, 26), truncate(f.Path, 50))
		if i == m.cursor {
			line = selectedStyle.Render(line)
		} else {
			line = normalStyle.Render(line)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	if visibleStart > 0 {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  ... %d more above ...", visibleStart)))
		b.WriteString("\n")
	}
	if visibleEnd < len(m.findings) {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  ... %d more below ...", len(m.findings)-visibleEnd)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down: Navigate | Enter: Details | q: Quit"))
	return b.String()
}

func (m Model) renderDetail() string {
	if m.cursor >= len(m.findings) {
		return "No diagnostic selected"
	}
	f := m.findings[m.cursor]

	var b strings.Builder
	b.WriteString(titleStyle.Render("Diagnostic details"))
	b.WriteString("\n\n")

	details := fmt.Sprintf("File:    %s\nLine:    %d\nColumn:  %d\nLevel:   %s\nRule:    %s\nMessage: %s\n",
		f.Path, f.Line, f.Column, levelWord(f.Level), f.Rule, f.Message)

	b.WriteString(detailBoxStyle.Render(details))
	b.WriteString(helpStyle.Render("\nEsc: Back | q: Quit"))
	return b.String()
}

func levelWord(level config.RuleLevel) string {
	if level == config.LevelError {
		return "error"
	}
	return "warning"
}

func levelStyle(level config.RuleLevel) lipgloss.Style {
	if level == config.LevelError {
		return errorStyle
	}
	return warningStyle
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
