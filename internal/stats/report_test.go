package stats

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/taipo/internal/model"
	"github.com/verte-zerg/taipo/internal/store"
)

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "taipo.db")
	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	var ids []int64
	for i := 0; i < 3; i++ {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		end := start.Add(30 * time.Second)
		stats := model.SessionStats{
			StartedAt:  start,
			EndedAt:    end,
			List:       "hiragana",
			Slots:      4,
			Completed:  10,
			Keystrokes: 40,
			Mistakes:   2,
			DurationMs: end.Sub(start).Milliseconds(),
		}
		chunks := []model.ChunkStats{
			{Chunk: "ka", Completed: 5, Missed: 0},
			{Chunk: "shi", Completed: 4, Missed: 1},
		}
		id, err := st.InsertSession(ctx, stats, chunks)
		if err != nil {
			t.Fatalf("insert session: %v", err)
		}
		ids = append(ids, id)
	}

	cfg := model.StatsConfig{
		List:        "hiragana",
		Last:        2,
		CurveWindow: 1,
	}
	report, err := BuildReport(ctx, st, cfg)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(report.Sessions))
	}
	if report.Sessions[0].SessionID != ids[1] || report.Sessions[1].SessionID != ids[2] {
		t.Fatalf("unexpected session ids: %+v", report.Sessions)
	}
	if len(report.WindowSessionIDs) != 1 || report.WindowSessionIDs[0] != ids[2] {
		t.Fatalf("unexpected window session ids: %v", report.WindowSessionIDs)
	}
	if len(report.ChunkAggsAll) != 2 {
		t.Fatalf("expected chunk aggregates for all sessions, got %+v", report.ChunkAggsAll)
	}
	if len(report.ChunkAggsWindow) == 0 {
		t.Fatalf("expected chunk aggregates for window sessions")
	}

	var buf bytes.Buffer
	if err := Render(&buf, report, 2); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Summary", "Sessions: 2", "Learning Curves", "Most typed:", "Per-Chunk (Windowed)", "shi"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no escape codes for a non-terminal writer")
	}
}

func TestRenderEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, Report{}, 5); err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != "No sessions found.\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
