// Package kana segments Japanese word lists into romaji typing chunks.
//
// Each non-blank line becomes one target. A line is a sequence of kana
// chunks and parenthetical chunks:
//
//	line          = { kanaChunk | parenthetical }
//	kanaChunk     = [ sokuon ] kana [ sutegana ]
//	parenthetical = label "(" { kanaChunk } ")"
//
// A parenthetical is displayed as its label and typed as its reading, as one
// chunk. Lines that do not parse completely are dropped.
package kana

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/verte-zerg/taipo/internal/model"
)

// Stats holds per-input line counts.
type Stats struct {
	TotalLines   int
	BlankLines   int
	ParsedLines  int
	DroppedLines int
}

// Dropped describes a line that produced no target.
type Dropped struct {
	Line   int // 1-based line number
	Column int // 1-based rune column where parsing stopped
	Text   string
}

// Report is the result of parsing a whole word list.
type Report struct {
	Targets []model.Target
	Dropped []Dropped
	Stats   Stats
}

// Parser converts Japanese text into typing targets. The zero value parses
// input exactly as written.
type Parser struct {
	// WidthFold folds full-width ASCII and half-width katakana to their
	// canonical widths before parsing, so "漢字（かんじ）" and "ｶﾀｶﾅ" parse.
	WidthFold bool
}

// Parse returns one target per parseable non-blank line of input.
func Parse(input string) []model.Target {
	return Parser{}.Parse(input)
}

// ParseReport parses input and also reports dropped lines.
func ParseReport(input string) Report {
	return Parser{}.ParseReport(input)
}

// Parse returns one target per parseable non-blank line of input.
func (p Parser) Parse(input string) []model.Target {
	return p.ParseReport(input).Targets
}

// ParseReport parses input and also reports dropped lines.
func (p Parser) ParseReport(input string) Report {
	var report Report
	for i, raw := range strings.Split(input, "\n") {
		report.Stats.TotalLines++
		line := strings.TrimSpace(raw)
		if p.WidthFold {
			line = norm.NFC.String(width.Fold.String(line))
		}
		if line == "" {
			report.Stats.BlankLines++
			continue
		}
		target, col, ok := parseLine([]rune(line))
		if !ok {
			report.Stats.DroppedLines++
			report.Dropped = append(report.Dropped, Dropped{Line: i + 1, Column: col, Text: line})
			continue
		}
		report.Stats.ParsedLines++
		report.Targets = append(report.Targets, target)
	}
	return report
}

type chunk struct {
	displayed string
	typed     string
}

type cursor struct {
	runes []rune
	pos   int
}

func (c *cursor) done() bool {
	return c.pos >= len(c.runes)
}

func (c *cursor) peek() rune {
	return c.runes[c.pos]
}

// parseLine parses a trimmed, non-empty line. On failure it returns the
// 1-based column of the first rune it could not consume.
func parseLine(line []rune) (model.Target, int, bool) {
	c := &cursor{runes: line}
	var chunks []chunk
	for !c.done() {
		if run := c.kanaRun(); len(run) > 0 {
			chunks = append(chunks, run...)
			continue
		}
		if ch, ok := c.parenthetical(); ok {
			chunks = append(chunks, ch)
			continue
		}
		return model.Target{}, c.pos + 1, false
	}
	shortenMoraicN(chunks)

	target := model.Target{
		Displayed: make([]string, 0, len(chunks)),
		Typed:     make([]string, 0, len(chunks)),
	}
	for _, ch := range chunks {
		target.Displayed = append(target.Displayed, ch.displayed)
		target.Typed = append(target.Typed, ch.typed)
	}
	if target.Text() == "" {
		return model.Target{}, 1, false
	}
	return target, 0, true
}

// kanaRun consumes as many kana chunks as possible.
func (c *cursor) kanaRun() []chunk {
	var out []chunk
	for {
		chunks, ok := c.kanaChunk()
		if !ok {
			return out
		}
		out = append(out, chunks...)
	}
}

// kanaChunk consumes one kana with its optional sokuon prefix and sutegana
// suffix. The sokuon is returned as a separate chunk typed as the first
// letter of the kana's romaji. The cursor does not move on failure.
func (c *cursor) kanaChunk() ([]chunk, bool) {
	i := c.pos
	n := len(c.runes)

	var gem rune
	if i < n && contains(sokuonSet, c.runes[i]) {
		gem = c.runes[i]
		i++
	}
	if i >= n || !contains(baseSet, c.runes[i]) {
		return nil, false
	}
	key := string(c.runes[i])
	i++
	if i < n && contains(suteganaSet, c.runes[i]) {
		key += string(c.runes[i])
		i++
	}
	typed, ok := romaji[key]
	if !ok {
		return nil, false
	}

	out := make([]chunk, 0, 2)
	if gem != 0 {
		out = append(out, chunk{displayed: string(gem), typed: typed[:1]})
	}
	out = append(out, chunk{displayed: key, typed: typed})
	c.pos = i
	return out, true
}

// parenthetical consumes a label followed by a parenthesised kana reading.
// The cursor does not move on failure.
func (c *cursor) parenthetical() (chunk, bool) {
	i := c.pos
	n := len(c.runes)
	for i < n && !isDelimiter(c.runes[i]) {
		i++
	}
	if i == c.pos || i >= n || c.runes[i] != '(' {
		return chunk{}, false
	}
	label := string(c.runes[c.pos:i])

	inner := &cursor{runes: c.runes, pos: i + 1}
	reading := inner.kanaRun()
	if inner.done() || inner.peek() != ')' {
		return chunk{}, false
	}

	shortenMoraicN(reading)
	var typed strings.Builder
	for _, ch := range reading {
		typed.WriteString(ch.typed)
	}
	c.pos = inner.pos + 1
	return chunk{displayed: label, typed: typed.String()}, true
}

// shortenMoraicN types ん as a single n when the next chunk starts with a
// consonant other than n or y. At the end of a run, or before a vowel, n or y,
// it stays "nn" so the input is unambiguous.
func shortenMoraicN(chunks []chunk) {
	for i := 0; i+1 < len(chunks); i++ {
		if chunks[i].typed != "nn" || chunks[i+1].typed == "" {
			continue
		}
		if isConsonant(chunks[i+1].typed[0]) {
			chunks[i].typed = "n"
		}
	}
}

func isConsonant(b byte) bool {
	if b < 'a' || b > 'z' {
		return false
	}
	return !strings.ContainsRune("aeiouny", rune(b))
}

func isDelimiter(r rune) bool {
	return r == '(' || r == ')' || r == '\n'
}

func contains(set map[rune]struct{}, r rune) bool {
	_, ok := set[r]
	return ok
}
