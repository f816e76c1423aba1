package kana

import (
	"strings"
	"testing"
)

func TestRomanizeCoversBaseKana(t *testing.T) {
	for _, r := range hiragana + katakana {
		typed, ok := Romanize(string(r))
		if !ok {
			t.Fatalf("missing romaji for %q", r)
		}
		if typed == "" {
			t.Fatalf("empty romaji for %q", r)
		}
	}
}

func TestRomanizeIsLowercaseASCII(t *testing.T) {
	for key, typed := range romaji {
		for i := 0; i < len(typed); i++ {
			ch := typed[i]
			if (ch < 'a' || ch > 'z') && ch != '-' {
				t.Fatalf("romaji for %q is not lowercase ascii: %q", key, typed)
			}
		}
	}
}

func TestRomanizeDigraphKeysEndWithSutegana(t *testing.T) {
	for key := range romaji {
		runes := []rune(key)
		if len(runes) == 1 {
			continue
		}
		if len(runes) != 2 {
			t.Fatalf("unexpected key length for %q", key)
		}
		if !strings.ContainsRune(sutegana, runes[1]) {
			t.Fatalf("digraph %q does not end with sutegana", key)
		}
	}
}

func TestRomanizeUnknown(t *testing.T) {
	for _, key := range []string{"ぁ", "かぁ", "漢", "a", ""} {
		if _, ok := Romanize(key); ok {
			t.Fatalf("expected %q to be unknown", key)
		}
	}
}
