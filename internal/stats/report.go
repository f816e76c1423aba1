// Package stats contains statistics calculations and reporting.
package stats

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/taipo/internal/model"
	"github.com/verte-zerg/taipo/internal/store"
)

const (
	terminalWidthBackup = 80
	curveLabelWidth     = 30
	topChunkCount       = 5
)

var headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)

// Report contains precomputed data for stats rendering.
type Report struct {
	Sessions         []model.SessionAggregate
	WindowSessionIDs []int64
	ChunkAggsAll     []model.ChunkAggregate
	ChunkAggsWindow  []model.ChunkAggregate
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	sessions, err := st.ListSessions(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(sessions) > cfg.Last {
		sessions = sessions[len(sessions)-cfg.Last:]
	}

	allIDs := sessionIDs(sessions)
	windowIDs := lastSessionIDs(sessions, cfg.CurveWindow)
	chunkAggsAll, err := st.ListChunkAggregatesForSessions(ctx, allIDs)
	if err != nil {
		return Report{}, err
	}
	chunkAggsWindow, err := st.ListChunkAggregatesForSessions(ctx, windowIDs)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Sessions:         sessions,
		WindowSessionIDs: windowIDs,
		ChunkAggsAll:     chunkAggsAll,
		ChunkAggsWindow:  chunkAggsWindow,
	}, nil
}

// Render writes the whole report. Headings are styled only when w is a
// terminal, and curves are sized to its width.
func Render(w io.Writer, report Report, window int) error {
	useColor := shouldUseColor(w)
	heading := func(s string) string {
		if !useColor {
			return s
		}
		return headingStyle.Render(s)
	}

	var summary strings.Builder
	if err := RenderSummary(&summary, report.Sessions); err != nil {
		return err
	}
	if _, err := io.WriteString(w, styleFirstLine(summary.String(), heading)); err != nil {
		return err
	}
	if len(report.Sessions) == 0 {
		return nil
	}

	var curves strings.Builder
	if err := RenderCurves(&curves, report.Sessions, window, terminalWidth(w)-curveLabelWidth); err != nil {
		return err
	}
	if _, err := io.WriteString(w, styleFirstLine(curves.String(), heading)); err != nil {
		return err
	}

	if top := TopChunksByFrequency(report.ChunkAggsAll, topChunkCount); len(top) > 0 {
		if _, err := fmt.Fprintf(w, "%s %s\n\n", heading("Most typed:"), strings.Join(top, " ")); err != nil {
			return err
		}
	}

	var table strings.Builder
	if err := RenderChunkTable(&table, report.ChunkAggsWindow); err != nil {
		return err
	}
	_, err := io.WriteString(w, styleFirstLine(table.String(), heading))
	return err
}

func styleFirstLine(block string, style func(string) string) string {
	head, rest, found := strings.Cut(block, "\n")
	if !found {
		return style(head)
	}
	return style(head) + "\n" + rest
}

func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return terminalWidthBackup
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func sessionIDs(sessions []model.SessionAggregate) []int64 {
	ids := make([]int64, len(sessions))
	for i, s := range sessions {
		ids[i] = s.SessionID
	}
	return ids
}

func lastSessionIDs(sessions []model.SessionAggregate, window int) []int64 {
	if window <= 0 || len(sessions) <= window {
		return sessionIDs(sessions)
	}
	return sessionIDs(sessions[len(sessions)-window:])
}
