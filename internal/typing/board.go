package typing

import (
	"fmt"

	"github.com/verte-zerg/taipo/internal/model"
	"github.com/verte-zerg/taipo/internal/pool"
)

// Prompt is a target shown in a slot and the action typing it triggers.
type Prompt struct {
	Target model.Target
	Action model.ActionKind
}

// Completion records a prompt that matched a submission.
type Completion struct {
	Slot   int
	Prompt Prompt
}

// Board is the set of visible prompts. Recycled slots draw from a pool.
type Board struct {
	pool    *pool.Pool
	prompts []Prompt
}

// NewBoard places the fixed prompts first, then fills slots recycled prompts
// from p. Fixed romanizations are reserved in p. It fails with
// pool.ErrExhausted when p cannot fill every slot without ambiguity.
func NewBoard(p *pool.Pool, fixed []Prompt, slots int) (*Board, error) {
	b := &Board{
		pool:    p,
		prompts: make([]Prompt, 0, len(fixed)+slots),
	}
	for _, pr := range fixed {
		pr.Target.Fixed = true
		p.Reserve(pr.Target.Text())
		b.prompts = append(b.prompts, pr)
	}
	for i := 0; i < slots; i++ {
		target, err := p.PopFront()
		if err != nil {
			return nil, fmt.Errorf("failed to fill slot %d of %d: %w", i+1, slots, err)
		}
		b.prompts = append(b.prompts, Prompt{Target: target, Action: model.ActionScore})
	}
	return b, nil
}

// Prompts returns a copy of the visible prompts in slot order.
func (b *Board) Prompts() []Prompt {
	out := make([]Prompt, len(b.prompts))
	copy(out, b.prompts)
	return out
}

// Submit matches text against every enabled prompt. Matching prompts that are
// not fixed are replaced by their next target from the pool. The returned
// completions carry the prompts as they were before replacement.
func (b *Board) Submit(text string) []Completion {
	var completions []Completion
	for i, pr := range b.prompts {
		if pr.Target.Disabled || pr.Target.Text() != text {
			continue
		}
		completions = append(completions, Completion{Slot: i, Prompt: pr})
		if pr.Target.Fixed {
			continue
		}
		b.prompts[i].Target = b.pool.PushBackPopFront(pr.Target)
	}
	return completions
}

// SetDisabled enables or disables the prompt in slot i. It returns false if
// there is no such slot.
func (b *Board) SetDisabled(i int, disabled bool) bool {
	if i < 0 || i >= len(b.prompts) {
		return false
	}
	b.prompts[i].Target.Disabled = disabled
	return true
}

// DisableAction disables every prompt with the given action.
func (b *Board) DisableAction(action model.ActionKind) {
	for i := range b.prompts {
		if b.prompts[i].Action == action {
			b.prompts[i].Target.Disabled = true
		}
	}
}
