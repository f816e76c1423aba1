// Package model defines shared data structures.
package model

import (
	"strings"
	"time"
)

// Target is one typing prompt. Displayed and Typed are index-aligned chunks.
type Target struct {
	Displayed []string
	Typed     []string
	// Fixed targets keep their slot after being typed.
	Fixed bool
	// Disabled targets never match and are skipped on refresh.
	Disabled bool
}

// NewPlainTarget builds a target whose displayed and typed chunks are the
// runes of word.
func NewPlainTarget(word string) Target {
	runes := []rune(word)
	displayed := make([]string, len(runes))
	typed := make([]string, len(runes))
	for i, r := range runes {
		displayed[i] = string(r)
		typed[i] = string(r)
	}
	return Target{Displayed: displayed, Typed: typed}
}

// Text returns the string the player must submit.
func (t Target) Text() string {
	return strings.Join(t.Typed, "")
}

// Label returns the displayed form of the whole target.
func (t Target) Label() string {
	return strings.Join(t.Displayed, "")
}

// Aligned reports whether every displayed chunk has a typed counterpart.
func (t Target) Aligned() bool {
	return len(t.Displayed) == len(t.Typed)
}

// Kind identifies a word list format.
type Kind int

const (
	KindPlain Kind = iota
	KindJapanese
)

func (k Kind) String() string {
	switch k {
	case KindJapanese:
		return "japanese"
	default:
		return "plain"
	}
}

// ActionKind is what happens when a prompt is typed.
type ActionKind int

const (
	ActionScore ActionKind = iota
	ActionToggleHelp
	ActionQuit
)

func (a ActionKind) String() string {
	switch a {
	case ActionToggleHelp:
		return "help"
	case ActionQuit:
		return "quit"
	default:
		return "score"
	}
}

// Config defines play settings.
type Config struct {
	List       string
	Slots      int
	Goal       int
	Help       bool
	Shuffle    bool
	WidthFold  bool
	FocusWeak  bool
	WeakTop    int
	WeakWindow int
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	List        string
	Since       *time.Time
	Last        int
	CurveWindow int
}

// SessionStats captures a completed play session.
type SessionStats struct {
	StartedAt  time.Time
	EndedAt    time.Time
	List       string
	Slots      int
	Completed  int
	Keystrokes int
	Mistakes   int
	DurationMs int64
}

// ChunkStats stores per-romaji-chunk stats for a session.
type ChunkStats struct {
	Chunk     string
	Completed int
	Missed    int
}

// ChunkAggregate aggregates chunk stats across sessions.
type ChunkAggregate struct {
	Chunk     string
	Completed int
	Missed    int
}

// SessionAggregate summarizes a session for reporting.
type SessionAggregate struct {
	SessionID  int64
	EndedAt    time.Time
	Completed  int
	Keystrokes int
	Mistakes   int
	DurationMs int64
}
