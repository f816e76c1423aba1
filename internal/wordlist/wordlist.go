// Package wordlist loads word lists from files.
package wordlist

import (
	"fmt"
	"os"
	"strings"

	"github.com/verte-zerg/taipo/internal/kana"
	"github.com/verte-zerg/taipo/internal/model"
)

const japaneseSuffix = ".jp.txt"

// List is a loaded word list.
type List struct {
	Path    string
	Kind    model.Kind
	Targets []model.Target
	Dropped []kana.Dropped
}

// Options control how word lists are parsed.
type Options struct {
	// WidthFold normalizes full-width and half-width forms in Japanese lists.
	WidthFold bool
}

// KindForPath picks the parser for a file by its extension.
func KindForPath(path string) model.Kind {
	if strings.HasSuffix(strings.ToLower(path), japaneseSuffix) {
		return model.KindJapanese
	}
	return model.KindPlain
}

// Load reads a word list, parsing it according to its extension.
func Load(path string, opts Options) (List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return List{}, err
	}
	list := List{Path: path, Kind: KindForPath(path)}
	switch list.Kind {
	case model.KindJapanese:
		report := kana.Parser{WidthFold: opts.WidthFold}.ParseReport(string(data))
		list.Targets = report.Targets
		list.Dropped = report.Dropped
	default:
		list.Targets = ParsePlain(string(data))
	}
	if len(list.Targets) == 0 {
		return List{}, fmt.Errorf("word list is empty")
	}
	return list, nil
}

// ParsePlain returns one target per non-blank line, with one chunk per rune
// and identical displayed and typed chunks.
func ParsePlain(input string) []model.Target {
	var targets []model.Target
	for _, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		targets = append(targets, model.NewPlainTarget(line))
	}
	return targets
}
