package stats

import (
	"testing"

	"github.com/verte-zerg/taipo/internal/model"
)

func TestTopChunksByFrequency(t *testing.T) {
	aggs := []model.ChunkAggregate{
		{Chunk: "ki", Completed: 3, Missed: 1},
		{Chunk: "ka", Completed: 2, Missed: 2},
		{Chunk: "ku", Completed: 1, Missed: 0},
	}
	top := TopChunksByFrequency(aggs, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(top))
	}
	if top[0] != "ka" || top[1] != "ki" {
		t.Fatalf("unexpected order: %v", top)
	}
}

func TestSelectWeakChunks(t *testing.T) {
	aggs := []model.ChunkAggregate{
		{Chunk: "tsu", Completed: 1, Missed: 3},
		{Chunk: "shi", Completed: 3, Missed: 1},
		{Chunk: "ka", Completed: 9, Missed: 0},
	}
	weak := SelectWeakChunks(aggs, 1)
	if len(weak) != 1 {
		t.Fatalf("expected 1 weak chunk, got %v", weak)
	}
	if _, ok := weak["tsu"]; !ok {
		t.Fatalf("expected tsu to be weak, got %v", weak)
	}
	all := SelectWeakChunks(aggs, 0)
	if len(all) != 2 {
		t.Fatalf("expected never-missed chunks excluded, got %v", all)
	}
}
