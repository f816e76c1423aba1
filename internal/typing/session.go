package typing

import (
	"sort"
	"time"

	"github.com/verte-zerg/taipo/internal/model"
)

// Event describes what a keystroke or submit did.
type Event struct {
	Completions []Completion
	Mistyped    bool
	HelpToggled bool
	Quit        bool
	GoalReached bool
}

// Session drives a board from keyboard input and keeps play statistics.
type Session struct {
	board *Board
	buf   Buffer
	help  bool
	goal  int
	list  string
	now   func() time.Time

	started    bool
	startedAt  time.Time
	completed  int
	keystrokes int
	mistakes   int
	goalHit    bool
	chunkStats map[string]*model.ChunkStats
}

// NewSession starts a session on board. A positive goal disables the scoring
// prompts once that many have been typed.
func NewSession(board *Board, list string, help bool, goal int) *Session {
	return &Session{
		board:      board,
		help:       help,
		goal:       goal,
		list:       list,
		now:        time.Now,
		chunkStats: map[string]*model.ChunkStats{},
	}
}

// Type appends text to the buffer.
func (s *Session) Type(text string) Event {
	if text == "" {
		return Event{}
	}
	if !s.started {
		s.started = true
		s.startedAt = s.now()
	}
	s.buf.Type(text)
	s.keystrokes += len([]rune(text))

	prompts := s.board.Prompts()
	buffer := s.buf.String()
	if !s.buf.JustTyped() || !Mistyped(prompts, buffer) {
		return Event{}
	}
	s.mistakes++
	if chunk, ok := ExpectedChunk(prompts, buffer); ok {
		s.chunkEntry(chunk).Missed++
	}
	return Event{Mistyped: true}
}

// Backspace removes the last typed rune.
func (s *Session) Backspace() {
	s.buf.Backspace()
}

// Clear empties the buffer.
func (s *Session) Clear() {
	s.buf.Clear()
}

// Submit matches the buffer against the board and applies the actions of the
// prompts it completed.
func (s *Session) Submit() Event {
	text := s.buf.Submit()
	if text == "" {
		return Event{}
	}
	ev := Event{Completions: s.board.Submit(text)}
	for _, c := range ev.Completions {
		switch c.Prompt.Action {
		case model.ActionScore:
			s.completed++
			for _, chunk := range c.Prompt.Target.Typed {
				if chunk == "" {
					continue
				}
				s.chunkEntry(chunk).Completed++
			}
		case model.ActionToggleHelp:
			s.help = !s.help
			ev.HelpToggled = true
		case model.ActionQuit:
			ev.Quit = true
		}
	}
	if s.goal > 0 && !s.goalHit && s.completed >= s.goal {
		s.goalHit = true
		s.board.DisableAction(model.ActionScore)
		ev.GoalReached = true
	}
	return ev
}

// Prompts returns the board's prompts in slot order.
func (s *Session) Prompts() []Prompt {
	return s.board.Prompts()
}

// Buffer returns the pending input.
func (s *Session) Buffer() string {
	return s.buf.String()
}

// Help reports whether prompts should be rendered as romaji.
func (s *Session) Help() bool {
	return s.help
}

// ToggleHelp flips romaji rendering without typing the help prompt.
func (s *Session) ToggleHelp() {
	s.help = !s.help
}

// Completed returns how many scoring prompts were typed.
func (s *Session) Completed() int {
	return s.completed
}

// Goal returns the completion goal, or 0 for endless play.
func (s *Session) Goal() int {
	return s.goal
}

// Started reports whether anything has been typed.
func (s *Session) Started() bool {
	return s.started
}

// Finish returns the session statistics. The chunk stats are sorted by chunk.
func (s *Session) Finish() (model.SessionStats, []model.ChunkStats) {
	endedAt := s.now()
	startedAt := s.startedAt
	if !s.started {
		startedAt = endedAt
	}
	stats := model.SessionStats{
		StartedAt:  startedAt,
		EndedAt:    endedAt,
		List:       s.list,
		Slots:      s.scoringSlots(),
		Completed:  s.completed,
		Keystrokes: s.keystrokes,
		Mistakes:   s.mistakes,
		DurationMs: endedAt.Sub(startedAt).Milliseconds(),
	}
	chunks := make([]model.ChunkStats, 0, len(s.chunkStats))
	for _, entry := range s.chunkStats {
		chunks = append(chunks, *entry)
	}
	sort.Slice(chunks, func(i, j int) bool {
		return chunks[i].Chunk < chunks[j].Chunk
	})
	return stats, chunks
}

func (s *Session) scoringSlots() int {
	n := 0
	for _, pr := range s.board.prompts {
		if pr.Action == model.ActionScore {
			n++
		}
	}
	return n
}

func (s *Session) chunkEntry(chunk string) *model.ChunkStats {
	entry, ok := s.chunkStats[chunk]
	if !ok {
		entry = &model.ChunkStats{Chunk: chunk}
		s.chunkStats[chunk] = entry
	}
	return entry
}
