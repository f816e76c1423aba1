// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/verte-zerg/taipo/internal/model"
)

const sparkChars = " .:-=+*#%@"

// SessionMetrics computes targets per minute, keystrokes per minute and
// keystroke accuracy for a session.
func SessionMetrics(completed, keystrokes, mistakes int, durationMs int64) (tpm, kpm, accuracy float64) {
	if durationMs <= 0 {
		return 0, 0, 0
	}
	minutes := float64(durationMs) / 60000.0
	tpm = float64(completed) / minutes
	kpm = float64(keystrokes) / minutes
	if keystrokes > 0 {
		correct := keystrokes - mistakes
		if correct < 0 {
			correct = 0
		}
		accuracy = float64(correct) / float64(keystrokes)
	}
	return tpm, kpm, accuracy
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := minMax(values)
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Downsample averages values into at most width buckets.
func Downsample(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		start := i * len(values) / width
		end := (i + 1) * len(values) / width
		if end <= start {
			end = start + 1
		}
		var sum float64
		for _, v := range values[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}

// RenderSummary prints a summary for sessions.
func RenderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	var totalTPM, totalKPM, totalAcc float64
	bestTPM := 0.0
	completed := 0
	for _, s := range sessions {
		tpm, kpm, acc := SessionMetrics(s.Completed, s.Keystrokes, s.Mistakes, s.DurationMs)
		totalTPM += tpm
		totalKPM += kpm
		totalAcc += acc
		completed += s.Completed
		if tpm > bestTPM {
			bestTPM = tpm
		}
	}
	count := float64(len(sessions))
	lines := []string{
		"Summary",
		fmt.Sprintf("Sessions: %d", len(sessions)),
		fmt.Sprintf("Targets typed: %d", completed),
		fmt.Sprintf("Avg targets/min: %.2f", totalTPM/count),
		fmt.Sprintf("Best targets/min: %.2f", bestTPM),
		fmt.Sprintf("Avg keys/min: %.2f", totalKPM/count),
		fmt.Sprintf("Avg Accuracy: %.2f%%", (totalAcc/count)*100),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderCurves prints moving-average sparklines for targets per minute and
// accuracy, at most width cells wide.
func RenderCurves(w io.Writer, sessions []model.SessionAggregate, window, width int) error {
	if len(sessions) == 0 {
		return nil
	}
	tpms := make([]float64, len(sessions))
	accs := make([]float64, len(sessions))
	for i, s := range sessions {
		tpm, _, acc := SessionMetrics(s.Completed, s.Keystrokes, s.Mistakes, s.DurationMs)
		tpms[i] = tpm
		accs[i] = acc * 100
	}
	if _, err := fmt.Fprintln(w, "Learning Curves"); err != nil {
		return err
	}
	series := []struct {
		name   string
		values []float64
	}{
		{"Targets/min", MovingAverage(tpms, window)},
		{"Accuracy", MovingAverage(accs, window)},
	}
	for _, s := range series {
		minVal, maxVal := minMax(s.values)
		line := fmt.Sprintf("%-12s %s  (%.1f-%.1f)", s.name, Sparkline(Downsample(s.values, width)), minVal, maxVal)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderChunkTable prints per-chunk aggregates, weakest first.
func RenderChunkTable(w io.Writer, aggs []model.ChunkAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No chunk stats found.")
		return err
	}
	rows := make([]model.ChunkAggregate, len(aggs))
	copy(rows, aggs)
	sort.Slice(rows, func(i, j int) bool {
		ai, aj := accuracy(rows[i]), accuracy(rows[j])
		if ai == aj {
			return rows[i].Chunk < rows[j].Chunk
		}
		return ai < aj
	})

	if _, err := fmt.Fprintln(w, "Per-Chunk (Windowed)"); err != nil {
		return err
	}
	headers := []string{"Chunk", "Accuracy", "Completed", "Missed"}
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			r.Chunk,
			fmt.Sprintf("%.2f%%", accuracy(r)*100),
			fmt.Sprintf("%d", r.Completed),
			fmt.Sprintf("%d", r.Missed),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true}
	for _, line := range formatTable(headers, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func minMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal
}
