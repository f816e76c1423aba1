package generator

import (
	"testing"

	"github.com/verte-zerg/taipo/internal/model"
)

func targets(texts ...[]string) []model.Target {
	out := make([]model.Target, 0, len(texts))
	for _, typed := range texts {
		out = append(out, model.Target{Displayed: typed, Typed: typed})
	}
	return out
}

func TestShuffleKeepsTargets(t *testing.T) {
	in := targets([]string{"a"}, []string{"b"}, []string{"c"}, []string{"d"})
	out := NewSeeded(1).Shuffle(in)
	if len(out) != len(in) {
		t.Fatalf("expected %d targets, got %d", len(in), len(out))
	}
	seen := map[string]int{}
	for _, target := range out {
		seen[target.Text()]++
	}
	for _, target := range in {
		if seen[target.Text()] != 1 {
			t.Fatalf("expected %q once, got %d", target.Text(), seen[target.Text()])
		}
	}
	if in[0].Text() != "a" || in[3].Text() != "d" {
		t.Fatalf("expected input to be left untouched")
	}
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	in := targets([]string{"a"}, []string{"b"}, []string{"c"}, []string{"d"}, []string{"e"})
	first := NewSeeded(42).Shuffle(in)
	second := NewSeeded(42).Shuffle(in)
	for i := range first {
		if first[i].Text() != second[i].Text() {
			t.Fatalf("expected identical orderings, got %v and %v", first, second)
		}
	}
}

func TestPrioritizeWeakChunks(t *testing.T) {
	in := targets(
		[]string{"ka"},
		[]string{"tsu", "ki"},
		[]string{"shi", "tsu", "ke"},
		[]string{"ku"},
		[]string{"shi"},
	)
	weak := map[string]struct{}{"tsu": {}, "shi": {}}
	out := Prioritize(in, weak)
	want := []string{"shitsuke", "tsuki", "shi", "ka", "ku"}
	for i, text := range want {
		if out[i].Text() != text {
			t.Fatalf("index %d: expected %q, got %q", i, text, out[i].Text())
		}
	}
}

func TestPrioritizeWithoutWeakSet(t *testing.T) {
	in := targets([]string{"b"}, []string{"a"})
	out := Prioritize(in, nil)
	if out[0].Text() != "b" || out[1].Text() != "a" {
		t.Fatalf("expected order preserved, got %v", out)
	}
}
