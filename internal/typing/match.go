package typing

import (
	"strings"

	"github.com/verte-zerg/taipo/internal/model"
)

// Progress splits a target's rendering into the chunks already matched by
// buffer and the rest. Matching is per chunk: a chunk counts only once it is
// typed completely. With help set, typed chunks are rendered in place of the
// displayed ones.
func Progress(t model.Target, buffer string, help bool) (matched, unmatched string) {
	render := t.Displayed
	if help {
		render = t.Typed
	}
	var m, u strings.Builder
	rest := buffer
	failed := false
	for i, typed := range t.Typed {
		shown := ""
		if i < len(render) {
			shown = render[i]
		}
		if !failed && strings.HasPrefix(rest, typed) {
			m.WriteString(shown)
			rest = rest[len(typed):]
			continue
		}
		failed = true
		u.WriteString(shown)
	}
	return m.String(), u.String()
}

// Mistyped reports whether buffer is not a prefix of any enabled prompt.
func Mistyped(prompts []Prompt, buffer string) bool {
	if buffer == "" {
		return false
	}
	for _, pr := range prompts {
		if pr.Target.Disabled {
			continue
		}
		if strings.HasPrefix(pr.Target.Text(), buffer) {
			return false
		}
	}
	return true
}

// ExpectedChunk returns the typed chunk the player was most likely aiming
// for when buffer went wrong: the chunk at the first mismatch of the enabled
// prompt sharing the longest prefix with buffer.
func ExpectedChunk(prompts []Prompt, buffer string) (string, bool) {
	best := -1
	var bestTarget model.Target
	for _, pr := range prompts {
		if pr.Target.Disabled {
			continue
		}
		n := commonPrefixLen(pr.Target.Text(), buffer)
		if n > best {
			best = n
			bestTarget = pr.Target
		}
	}
	if best < 0 {
		return "", false
	}
	offset := 0
	for _, typed := range bestTarget.Typed {
		if best < offset+len(typed) {
			return typed, true
		}
		offset += len(typed)
	}
	return "", false
}

func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
