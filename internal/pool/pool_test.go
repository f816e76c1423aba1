package pool

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/verte-zerg/taipo/internal/model"
)

func TestPopFrontOrder(t *testing.T) {
	p := New(targets("a", "b", "c"))
	for _, want := range []string{"a", "b", "c"} {
		got, err := p.PopFront()
		if err != nil {
			t.Fatalf("pop: %v", err)
		}
		if got.Text() != want {
			t.Fatalf("expected %q, got %q", want, got.Text())
		}
	}
	if p.Len() != 0 {
		t.Fatalf("expected empty pool, got %d", p.Len())
	}
}

func TestPopFrontSkipsActiveRomanization(t *testing.T) {
	p := New(targets("neko", "neko", "inu"))
	first, err := p.PopFront()
	if err != nil {
		t.Fatalf("pop: %v", err)
	}
	second, err := p.PopFront()
	if err != nil {
		t.Fatalf("pop: %v", err)
	}
	if first.Text() != "neko" || second.Text() != "inu" {
		t.Fatalf("unexpected draws: %q, %q", first.Text(), second.Text())
	}
	if p.Len() != 1 {
		t.Fatalf("expected duplicate to stay queued, got len %d", p.Len())
	}
}

func TestPopFrontExhausted(t *testing.T) {
	const n = 3
	p := New(targets("neko", "neko", "neko"))
	if _, err := p.PopFront(); err != nil {
		t.Fatalf("pop: %v", err)
	}
	for i := 1; i <= n; i++ {
		_, err := p.PopFront()
		if !errors.Is(err, ErrExhausted) {
			t.Fatalf("draw %d: expected ErrExhausted, got %v", i+1, err)
		}
	}
	if p.Len() != n-1 {
		t.Fatalf("expected failed pops to leave the queue intact, got %d", p.Len())
	}
}

func TestPopFrontEmpty(t *testing.T) {
	p := New(nil)
	if _, err := p.PopFront(); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestPushBackPopFrontReleasesOld(t *testing.T) {
	p := New(targets("a", "b", "c"))
	a, _ := p.PopFront()
	b, _ := p.PopFront()

	next := p.PushBackPopFront(a)
	if next.Text() != "c" {
		t.Fatalf("expected c, got %q", next.Text())
	}
	if p.InUse("a") {
		t.Fatalf("expected a to be released")
	}
	if !p.InUse("b") || !p.InUse("c") {
		t.Fatalf("expected b and c active, got %v", p.Active())
	}

	next = p.PushBackPopFront(b)
	if next.Text() != "a" {
		t.Fatalf("expected a to cycle back, got %q", next.Text())
	}
}

func TestPushBackPopFrontDoesNotRedrawReturnedTarget(t *testing.T) {
	p := New(targets("a", "b"))
	a, _ := p.PopFront()
	next := p.PushBackPopFront(a)
	if next.Text() != "b" {
		t.Fatalf("expected b, got %q", next.Text())
	}
}

func TestPushBackPopFrontSoleCandidateKeepsRomanization(t *testing.T) {
	p := New(targets("a"))
	a, err := p.PopFront()
	if err != nil {
		t.Fatalf("pop: %v", err)
	}
	next := p.PushBackPopFront(a)
	if next.Text() != "a" {
		t.Fatalf("expected a back, got %q", next.Text())
	}
	if !p.InUse("a") {
		t.Fatalf("expected a to stay active")
	}
	if p.Len() != 0 {
		t.Fatalf("expected empty queue, got %d", p.Len())
	}
	if _, err := p.PopFront(); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestPushBackPopFrontRedrawsQueuedDuplicate(t *testing.T) {
	p := New(targets("a", "b", "a"))
	a, _ := p.PopFront()
	if _, err := p.PopFront(); err != nil {
		t.Fatalf("pop: %v", err)
	}
	// Only the queued duplicate of a remains; it is drawn before the
	// returned target.
	next := p.PushBackPopFront(a)
	if next.Text() != "a" {
		t.Fatalf("expected a, got %q", next.Text())
	}
	if p.Len() != 1 || !p.InUse("a") {
		t.Fatalf("unexpected state: len %d active %v", p.Len(), p.Active())
	}
}

func TestActiveRomanizationsStayUnique(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	words := []string{"ka", "ki", "ku", "ka", "ke", "ko", "ki", "sa", "ka", "shi"}
	p := New(targets(words...))

	const slots = 4
	active := make([]model.Target, 0, slots)
	for i := 0; i < slots; i++ {
		tgt, err := p.PopFront()
		if err != nil {
			t.Fatalf("pop: %v", err)
		}
		active = append(active, tgt)
	}
	for step := 0; step < 500; step++ {
		i := rnd.Intn(slots)
		active[i] = p.PushBackPopFront(active[i])
		seen := map[string]bool{}
		for _, tgt := range active {
			if seen[tgt.Text()] {
				t.Fatalf("step %d: duplicate active romanization %q", step, tgt.Text())
			}
			seen[tgt.Text()] = true
		}
		if len(p.Active()) != slots {
			t.Fatalf("step %d: expected %d active, got %v", step, slots, p.Active())
		}
	}
}

func targets(words ...string) []model.Target {
	out := make([]model.Target, 0, len(words))
	for _, w := range words {
		out = append(out, model.NewPlainTarget(w))
	}
	return out
}

func TestReserveBlocksDraw(t *testing.T) {
	p := New(targets("help", "neko"))
	p.Reserve("help")
	got, err := p.PopFront()
	if err != nil {
		t.Fatalf("pop: %v", err)
	}
	if got.Text() != "neko" {
		t.Fatalf("expected reserved romanization to be skipped, got %q", got.Text())
	}
	if _, err := p.PopFront(); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}
