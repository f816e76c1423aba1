// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/taipo/internal/model"
	statsPkg "github.com/verte-zerg/taipo/internal/stats"
	"github.com/verte-zerg/taipo/internal/store"
	"github.com/verte-zerg/taipo/internal/typing"
)

// Model implements the Bubble Tea typing UI.
type Model struct {
	session *typing.Session
	store   *store.Store
	list    string

	keys keyMap
	help help.Model

	width  int
	height int

	mistyped bool
	saved    bool
	notice   string

	lastTPM float64
	lastAcc float64
	hasLast bool

	allTPM        float64
	allAcc        float64
	allCompleted  int
	allKeys       int
	allMistakes   int
	allDurationMs int64
}

var (
	matchedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	controlStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A")).Strikethrough(true)
	inputStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Underline(true)
	mistypedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Underline(true)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a typing TUI model. A nil store disables history.
func NewModel(session *typing.Session, st *store.Store, list string) *Model {
	m := &Model{
		session: session,
		store:   st,
		list:    list,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	m.loadFooterStats()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.finishSession()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		return m.handleSubmit()
	case key.Matches(msg, m.keys.Backspace):
		m.session.Backspace()
		m.mistyped = typing.Mistyped(m.session.Prompts(), m.session.Buffer())
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.session.Clear()
		m.mistyped = false
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.session.ToggleHelp()
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		ev := m.session.Type(string(msg.Runes))
		if ev.Mistyped {
			m.mistyped = true
		}
	}
	return m, nil
}

func (m *Model) handleSubmit() (tea.Model, tea.Cmd) {
	ev := m.session.Submit()
	m.mistyped = false
	if ev.Quit {
		m.finishSession()
		return m, tea.Quit
	}
	if ev.GoalReached {
		m.finishSession()
		m.notice = fmt.Sprintf("Goal of %d reached", m.session.Goal())
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	prompts := m.session.Prompts()
	if len(prompts) == 0 {
		return ""
	}
	contentWidth := 0
	if m.width > 0 {
		contentWidth = int(float64(m.width) * 0.70)
		if contentWidth < 1 {
			contentWidth = 1
		}
	}
	buffer := m.session.Buffer()
	grid := wrapCells(buildCells(prompts, buffer, m.session.Help()), contentWidth)
	lines := []string{grid, "", m.renderInput(buffer)}
	if m.notice != "" {
		lines = append(lines, "", controlStyle.Render(m.notice))
	}
	content := strings.Join(lines, "\n")
	footer := m.renderFooter() + "\n" + m.help.View(m.keys)
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}
	footerHeight := lipgloss.Height(footer)
	if m.height <= footerHeight+1 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-footerHeight, lipgloss.Center, lipgloss.Center, content)
	footerBlock := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footer)
	return body + "\n" + footerBlock
}

func (m *Model) renderInput(buffer string) string {
	shown := buffer + " "
	if m.mistyped {
		return "> " + mistypedStyle.Render(shown)
	}
	return "> " + inputStyle.Render(shown)
}

func (m *Model) loadFooterStats() {
	if m.store == nil {
		return
	}
	ctx := context.Background()
	sessions, err := m.store.ListSessions(ctx, model.StatsConfig{List: m.list})
	if err != nil {
		logErrf("failed to load session stats: %v\n", err)
		return
	}
	if len(sessions) == 0 {
		return
	}
	last := sessions[len(sessions)-1]
	m.lastTPM, _, m.lastAcc = statsPkg.SessionMetrics(last.Completed, last.Keystrokes, last.Mistakes, last.DurationMs)
	m.hasLast = true

	for _, s := range sessions {
		m.allCompleted += s.Completed
		m.allKeys += s.Keystrokes
		m.allMistakes += s.Mistakes
		m.allDurationMs += s.DurationMs
	}
	m.recomputeAllTime()
}

func (m *Model) recomputeAllTime() {
	m.allTPM, _, m.allAcc = statsPkg.SessionMetrics(m.allCompleted, m.allKeys, m.allMistakes, m.allDurationMs)
}

func (m *Model) renderFooter() string {
	segments := []string{}
	if goal := m.session.Goal(); goal > 0 {
		segments = append(segments, fmt.Sprintf("Typed %d/%d", m.session.Completed(), goal))
	} else {
		segments = append(segments, fmt.Sprintf("Typed %d", m.session.Completed()))
	}
	if m.hasLast {
		segments = append(segments, fmt.Sprintf("Last %.1f/min · %.1f%%", m.lastTPM, m.lastAcc*100))
	}
	if m.allDurationMs > 0 {
		segments = append(segments, fmt.Sprintf("All-time %.1f/min · %.1f%%", m.allTPM, m.allAcc*100))
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

// finishSession stores the session once. Sessions without input are not
// recorded.
func (m *Model) finishSession() {
	if m.saved || !m.session.Started() {
		return
	}
	m.saved = true
	stats, chunks := m.session.Finish()
	if m.store != nil {
		ctx := context.Background()
		if _, err := m.store.InsertSession(ctx, stats, chunks); err != nil {
			logErrf("failed to save session: %v\n", err)
		}
	}
	m.lastTPM, _, m.lastAcc = statsPkg.SessionMetrics(stats.Completed, stats.Keystrokes, stats.Mistakes, stats.DurationMs)
	m.hasLast = true
	m.allCompleted += stats.Completed
	m.allKeys += stats.Keystrokes
	m.allMistakes += stats.Mistakes
	m.allDurationMs += stats.DurationMs
	m.recomputeAllTime()
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
