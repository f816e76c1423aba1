package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/taipo/internal/model"
	"github.com/verte-zerg/taipo/internal/pool"
	"github.com/verte-zerg/taipo/internal/typing"
)

func newTestModel(t *testing.T, goal int) *Model {
	t.Helper()
	p := pool.New([]model.Target{
		model.NewPlainTarget("cat"),
		model.NewPlainTarget("dog"),
		model.NewPlainTarget("owl"),
	})
	fixed := []typing.Prompt{{Target: model.NewPlainTarget("quit"), Action: model.ActionQuit}}
	board, err := typing.NewBoard(p, fixed, 2)
	if err != nil {
		t.Fatalf("new board: %v", err)
	}
	return NewModel(typing.NewSession(board, "animals", false, goal), nil, "animals")
}

func typeRunes(m *Model, s string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return cmd
}

func pressKey(m *Model, kt tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: kt})
	return cmd
}

func TestModelSubmitCompletesPrompt(t *testing.T) {
	m := newTestModel(t, 0)
	typeRunes(m, "cat")
	if cmd := pressKey(m, tea.KeyEnter); cmd != nil {
		t.Fatalf("expected no command after a scoring submit")
	}
	if m.session.Completed() != 1 {
		t.Fatalf("expected 1 completion, got %d", m.session.Completed())
	}
	if m.session.Buffer() != "" {
		t.Fatalf("expected buffer to be cleared, got %q", m.session.Buffer())
	}
}

func TestModelMistypeAndClear(t *testing.T) {
	m := newTestModel(t, 0)
	typeRunes(m, "cx")
	if !m.mistyped {
		t.Fatalf("expected mistype")
	}
	pressKey(m, tea.KeyBackspace)
	if m.mistyped {
		t.Fatalf("expected backspace to recover")
	}
	typeRunes(m, "z")
	pressKey(m, tea.KeyEsc)
	if m.mistyped || m.session.Buffer() != "" {
		t.Fatalf("expected esc to clear the buffer")
	}
}

func TestModelTabTogglesRomaji(t *testing.T) {
	m := newTestModel(t, 0)
	pressKey(m, tea.KeyTab)
	if !m.session.Help() {
		t.Fatalf("expected romaji mode")
	}
}

func TestModelQuitPromptFinishes(t *testing.T) {
	m := newTestModel(t, 0)
	typeRunes(m, "dog")
	pressKey(m, tea.KeyEnter)
	typeRunes(m, "quit")
	if cmd := pressKey(m, tea.KeyEnter); cmd == nil {
		t.Fatalf("expected quit command")
	}
	if !m.saved || !m.hasLast {
		t.Fatalf("expected session to be finished")
	}
}

func TestModelGoalNotice(t *testing.T) {
	m := newTestModel(t, 1)
	typeRunes(m, "cat")
	pressKey(m, tea.KeyEnter)
	if !strings.Contains(m.notice, "Goal of 1 reached") {
		t.Fatalf("unexpected notice %q", m.notice)
	}
	if !strings.Contains(m.View(), "Goal of 1 reached") {
		t.Fatalf("expected notice in view")
	}
}

func TestRenderFooterFormats(t *testing.T) {
	m := newTestModel(t, 10)
	m.hasLast = true
	m.lastTPM = 12.4
	m.lastAcc = 0.978
	m.allTPM = 10.1
	m.allAcc = 0.969
	m.allDurationMs = 1000
	out := m.renderFooter()
	if !containsAll(out, []string{"Typed 0/10", "Last 12.4/min", "97.8%", "All-time 10.1/min", "96.9%"}) {
		t.Fatalf("footer missing expected segments: %s", out)
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
