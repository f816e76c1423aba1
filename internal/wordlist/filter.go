// Package wordlist provides word list filtering helpers.
package wordlist

import "github.com/verte-zerg/taipo/internal/model"

// FilterFunc returns true when a target should be kept.
type FilterFunc func(model.Target) bool

// FilterForKind returns a kind-specific filter for word lists. Japanese
// lists are already limited to table romaji by the parser.
func FilterForKind(kind model.Kind) FilterFunc {
	switch kind {
	case model.KindPlain:
		return filterTypeable
	default:
		return func(model.Target) bool { return true }
	}
}

// Filter returns the targets kept by keep, preserving order.
func Filter(targets []model.Target, keep FilterFunc) []model.Target {
	out := make([]model.Target, 0, len(targets))
	for _, t := range targets {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// filterTypeable keeps targets whose typed text is printable ASCII without
// spaces, which a single keyboard layout can enter directly.
func filterTypeable(t model.Target) bool {
	text := t.Text()
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch <= ' ' || ch > '~' {
			return false
		}
	}
	return true
}
