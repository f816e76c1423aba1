// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/taipo/internal/model"
	"github.com/verte-zerg/taipo/internal/typing"
)

const cellGap = 3

type cell struct {
	s     string
	width int
}

func buildCell(pr typing.Prompt, buffer string, help bool) cell {
	matched, unmatched := typing.Progress(pr.Target, buffer, help)
	style := pendingStyle
	switch {
	case pr.Target.Disabled:
		style = disabledStyle
	case pr.Action != model.ActionScore:
		style = controlStyle
	}
	var b strings.Builder
	if matched != "" {
		b.WriteString(matchedStyle.Render(matched))
	}
	if unmatched != "" {
		b.WriteString(style.Render(unmatched))
	}
	return cell{
		s:     b.String(),
		width: runewidth.StringWidth(matched + unmatched),
	}
}

func buildCells(prompts []typing.Prompt, buffer string, help bool) []cell {
	out := make([]cell, 0, len(prompts))
	for _, pr := range prompts {
		out = append(out, buildCell(pr, buffer, help))
	}
	return out
}

// wrapCells lays cells out left to right, padded to a shared column width,
// breaking lines so that no line exceeds width.
func wrapCells(cells []cell, width int) string {
	if len(cells) == 0 {
		return ""
	}
	colWidth := 0
	for _, c := range cells {
		if c.width > colWidth {
			colWidth = c.width
		}
	}
	perLine := len(cells)
	if width > 0 {
		perLine = (width + cellGap) / (colWidth + cellGap)
		if perLine < 1 {
			perLine = 1
		}
	}

	var out strings.Builder
	for i, c := range cells {
		col := i % perLine
		if col == 0 && i > 0 {
			out.WriteRune('\n')
		}
		out.WriteString(c.s)
		last := col == perLine-1 || i == len(cells)-1
		if !last {
			out.WriteString(strings.Repeat(" ", colWidth-c.width+cellGap))
		}
	}
	return out.String()
}
