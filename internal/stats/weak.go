package stats

import (
	"sort"

	"github.com/verte-zerg/taipo/internal/model"
)

// SelectWeakChunks selects the lowest-accuracy romaji chunks from aggregates.
// Chunks that were never missed are not weak.
func SelectWeakChunks(aggs []model.ChunkAggregate, top int) map[string]struct{} {
	weakSet := map[string]struct{}{}
	candidates := make([]model.ChunkAggregate, 0, len(aggs))
	for _, agg := range aggs {
		if agg.Missed > 0 {
			candidates = append(candidates, agg)
		}
	}
	if len(candidates) == 0 {
		return weakSet
	}
	sort.Slice(candidates, func(i, j int) bool {
		ai := accuracy(candidates[i])
		aj := accuracy(candidates[j])
		if ai == aj {
			return candidates[i].Chunk < candidates[j].Chunk
		}
		return ai < aj
	})
	if top <= 0 || top > len(candidates) {
		top = len(candidates)
	}
	for i := 0; i < top; i++ {
		weakSet[candidates[i].Chunk] = struct{}{}
	}
	return weakSet
}

func accuracy(agg model.ChunkAggregate) float64 {
	total := agg.Completed + agg.Missed
	if total == 0 {
		return 1.0
	}
	return float64(agg.Completed) / float64(total)
}
