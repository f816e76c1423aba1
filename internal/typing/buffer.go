// Package typing matches keyboard input against the prompts on a board.
package typing

// Buffer holds the text typed since the last submit.
type Buffer struct {
	runes     []rune
	justTyped bool
}

// Type appends s to the buffer.
func (b *Buffer) Type(s string) {
	if s == "" {
		return
	}
	b.runes = append(b.runes, []rune(s)...)
	b.justTyped = true
}

// Backspace removes the last rune.
func (b *Buffer) Backspace() {
	b.justTyped = false
	if len(b.runes) == 0 {
		return
	}
	b.runes = b.runes[:len(b.runes)-1]
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.runes = nil
	b.justTyped = false
}

// Submit empties the buffer and returns what it held.
func (b *Buffer) Submit() string {
	text := string(b.runes)
	b.Clear()
	return text
}

// JustTyped reports whether the last edit added text.
func (b *Buffer) JustTyped() bool {
	return b.justTyped
}

func (b *Buffer) String() string {
	return string(b.runes)
}
