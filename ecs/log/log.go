// Package log writes structured zerolog events describing entity sets and allocators.
package log

import (
	"iter"

	"github.com/rs/zerolog"

	"github.com/plus3/recs/ecs"
)

func loadTraitsIntoDict(traits ecs.Traits) *zerolog.Event {
	return zerolog.Dict().
		Uint("bits", traits.Bits).
		Uint("version_bits", traits.VersionBits).
		Uint64("index_mask", traits.IndexMask).
		Uint64("version_mask", traits.VersionMask).
		Uint("version_shift", traits.VersionShift)
}

func loadEntitiesIntoArray[E ecs.ID](entities iter.Seq[E]) *zerolog.Array {
	arrayLogger := zerolog.Arr()
	for e := range entities {
		arrayLogger = arrayLogger.Uint64(ecs.ToIntegral(e))
	}
	return arrayLogger
}

// SparseSet logs the size, page usage and contents of set.
func SparseSet[E ecs.ID](logger *zerolog.Logger, set *ecs.SparseSet[E], level zerolog.Level) {
	stats := set.Stats()
	logger.WithLevel(level).
		Int("size", stats.Size).
		Int("pages", stats.Pages).
		Int("page_size", stats.PageSize).
		Dict("traits", loadTraitsIntoDict(stats.Traits)).
		Array("entities", loadEntitiesIntoArray(set.Values())).
		Send()
}

// Allocator logs the live, free and page counts of alloc.
func Allocator[E ecs.ID](logger *zerolog.Logger, alloc *ecs.Allocator[E], level zerolog.Level) {
	stats := alloc.Stats()
	logger.WithLevel(level).
		Int("alive", stats.Alive).
		Int("free", stats.Free).
		Int("capacity", stats.Capacity).
		Int("pages", stats.Pages).
		Dict("traits", loadTraitsIntoDict(ecs.TraitsOf[E]())).
		Send()
}

// Entity logs the raw value and decoded fields of e.
func Entity[E ecs.ID](logger *zerolog.Logger, level zerolog.Level, e E) {
	traits := ecs.TraitsOf[E]()
	raw := ecs.ToIntegral(e)
	logger.WithLevel(level).
		Uint64("entity", raw).
		Uint64("index", raw&traits.IndexMask).
		Uint64("version", (raw>>traits.VersionShift)&traits.VersionMask).
		Bool("null", e.IsNull()).
		Send()
}
