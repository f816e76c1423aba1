// Package pool hands out typing targets so that no two active targets share
// a romanization.
package pool

import (
	"errors"
	"sort"

	"github.com/verte-zerg/taipo/internal/model"
)

// ErrExhausted is returned when every queued target shares a romanization
// with an active one. It means the word list is too small for the number of
// slots being filled.
var ErrExhausted = errors.New("no unambiguous target left in pool")

// Pool is a FIFO of candidate targets plus the set of romanizations that are
// currently active. It is not safe for concurrent use.
type Pool struct {
	possible []model.Target
	used     map[string]struct{}
}

// New returns a pool that draws from targets in order. The slice is copied.
func New(targets []model.Target) *Pool {
	possible := make([]model.Target, len(targets))
	copy(possible, targets)
	return &Pool{
		possible: possible,
		used:     map[string]struct{}{},
	}
}

// PopFront removes and returns the first queued target whose romanization is
// not active, and marks it active.
func (p *Pool) PopFront() (model.Target, error) {
	for i, candidate := range p.possible {
		text := candidate.Text()
		if _, ok := p.used[text]; ok {
			continue
		}
		p.possible = append(p.possible[:i], p.possible[i+1:]...)
		p.used[text] = struct{}{}
		return candidate, nil
	}
	return model.Target{}, ErrExhausted
}

// PushBackPopFront returns target to the back of the queue and draws its
// replacement. A replacement never shares a romanization with another active
// target. If nothing else is available, the first queued target with
// target's own romanization is drawn again, which always succeeds because
// target was just queued.
//
// target's romanization is released only when a different romanization was
// drawn; if the same one comes back it stays active.
func (p *Pool) PushBackPopFront(target model.Target) model.Target {
	text := target.Text()
	p.possible = append(p.possible, target)

	next, err := p.PopFront()
	if errors.Is(err, ErrExhausted) {
		next = p.redraw(text)
	}
	if next.Text() != text {
		delete(p.used, text)
	}
	return next
}

// redraw removes the first queued target typed as text, falling back to the
// most recently queued one. The romanization is already active and stays so.
func (p *Pool) redraw(text string) model.Target {
	last := len(p.possible) - 1
	for i, candidate := range p.possible[:last] {
		if candidate.Text() != text {
			continue
		}
		p.possible = append(p.possible[:i], p.possible[i+1:]...)
		return candidate
	}
	candidate := p.possible[last]
	p.possible = p.possible[:last]
	return candidate
}

// Reserve marks text active without drawing a target, so prompts that live
// outside the pool are never duplicated by a draw.
func (p *Pool) Reserve(text string) {
	p.used[text] = struct{}{}
}

// Len returns the number of queued targets.
func (p *Pool) Len() int {
	return len(p.possible)
}

// InUse reports whether text is an active romanization.
func (p *Pool) InUse(text string) bool {
	_, ok := p.used[text]
	return ok
}

// Active returns the active romanizations in sorted order.
func (p *Pool) Active() []string {
	out := make([]string, 0, len(p.used))
	for text := range p.used {
		out = append(out, text)
	}
	sort.Strings(out)
	return out
}
