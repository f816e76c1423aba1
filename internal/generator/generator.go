// Package generator orders typing targets before they are queued.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/taipo/internal/model"
)

// Generator produces randomized target orderings.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Shuffle returns a shuffled copy of targets.
func (g *Generator) Shuffle(targets []model.Target) []model.Target {
	out := make([]model.Target, len(targets))
	copy(out, targets)
	g.rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Prioritize returns a copy of targets with those containing a weak chunk
// moved to the front, ordered by how many weak chunks they contain. The
// relative order is otherwise preserved.
func Prioritize(targets []model.Target, weakSet map[string]struct{}) []model.Target {
	out := make([]model.Target, 0, len(targets))
	if len(weakSet) == 0 {
		return append(out, targets...)
	}
	buckets := map[int][]model.Target{}
	maxWeak := 0
	for _, target := range targets {
		n := weakCount(target, weakSet)
		buckets[n] = append(buckets[n], target)
		if n > maxWeak {
			maxWeak = n
		}
	}
	for n := maxWeak; n >= 0; n-- {
		out = append(out, buckets[n]...)
	}
	return out
}

func weakCount(target model.Target, weakSet map[string]struct{}) int {
	count := 0
	for _, chunk := range target.Typed {
		if _, ok := weakSet[chunk]; ok {
			count++
		}
	}
	return count
}
