package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/verte-zerg/taipo/internal/model"
)

func TestSessionMetrics(t *testing.T) {
	tpm, kpm, acc := SessionMetrics(10, 50, 5, 30000)
	if math.Abs(tpm-20) > 1e-9 {
		t.Fatalf("expected 20 targets/min, got %v", tpm)
	}
	if math.Abs(kpm-100) > 1e-9 {
		t.Fatalf("expected 100 keys/min, got %v", kpm)
	}
	if math.Abs(acc-0.9) > 1e-9 {
		t.Fatalf("expected 0.9 accuracy, got %v", acc)
	}
	if tpm, kpm, acc := SessionMetrics(10, 50, 5, 0); tpm != 0 || kpm != 0 || acc != 0 {
		t.Fatalf("expected zero metrics for zero duration")
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSparkline(t *testing.T) {
	line := Sparkline([]float64{0, 5, 10})
	if len(line) != 3 {
		t.Fatalf("expected 3 cells, got %q", line)
	}
	if line[0] != ' ' || line[2] != '@' {
		t.Fatalf("unexpected sparkline: %q", line)
	}
	if flat := Sparkline([]float64{3, 3}); flat != "++" {
		t.Fatalf("unexpected flat sparkline: %q", flat)
	}
}

func TestDownsample(t *testing.T) {
	got := Downsample([]float64{1, 3, 5, 7}, 2)
	if len(got) != 2 || got[0] != 2 || got[1] != 6 {
		t.Fatalf("unexpected downsample: %v", got)
	}
	if same := Downsample([]float64{1, 2}, 10); len(same) != 2 {
		t.Fatalf("expected short series to pass through, got %v", same)
	}
}

func TestRenderChunkTableWeakestFirst(t *testing.T) {
	var buf bytes.Buffer
	aggs := []model.ChunkAggregate{
		{Chunk: "ka", Completed: 9, Missed: 1},
		{Chunk: "tsu", Completed: 1, Missed: 1},
	}
	if err := RenderChunkTable(&buf, aggs); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if !strings.HasPrefix(lines[2], "tsu") {
		t.Fatalf("expected tsu first, got %q", lines[2])
	}
}
