package ecs_test

import (
	"testing"

	"github.com/plus3/recs/ecs"
)

func BenchmarkSparseSetInsert(b *testing.B) {
	set := ecs.NewSparseSet[ecs.Entity32]()
	maxIndex := uint32(ecs.TraitsOf[ecs.Entity32]().MaxIndex())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		index := uint32(i) % maxIndex
		if index == 0 {
			set.Clear()
		}
		_ = set.Insert(ecs.MakeEntity32(index, 0))
	}
}

func BenchmarkSparseSetContains(b *testing.B) {
	set := ecs.NewSparseSet[ecs.Entity32]()
	for i := range uint32(10000) {
		_ = set.Insert(ecs.MakeEntity32(i*3, 0))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = set.Contains(ecs.MakeEntity32(uint32(i%30000), 0))
	}
}

func BenchmarkSparseSetInsertRemove(b *testing.B) {
	set := ecs.NewSparseSet[ecs.Entity32]()
	for i := range uint32(1000) {
		_ = set.Insert(ecs.MakeEntity32(i, 0))
	}
	e := ecs.MakeEntity32(5000, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = set.Insert(e)
		_ = set.Remove(e)
	}
}

func BenchmarkSparseSetIterate(b *testing.B) {
	set := ecs.NewSparseSet[ecs.Entity64]()
	for i := range uint64(10000) {
		_ = set.Insert(ecs.MakeEntity64(i, 0))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum uint64
		for e := range set.Values() {
			sum += ecs.ToIntegral(e)
		}
		_ = sum
	}
}

func BenchmarkAllocatorChurn(b *testing.B) {
	alloc := ecs.NewAllocator[ecs.Entity32]()
	live := make([]ecs.Entity32, 0, 1024)
	for range 1024 {
		e, _ := alloc.Create()
		live = append(live, e)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		slot := i % len(live)
		_ = alloc.Destroy(live[slot])
		live[slot], _ = alloc.Create()
	}
}

func BenchmarkComponentsGet(b *testing.B) {
	positions := ecs.NewComponents[ecs.Entity32, Position]()
	for i := range uint32(1000) {
		_ = positions.Insert(ecs.MakeEntity32(i, 0), Position{X: float32(i)})
	}
	e := ecs.MakeEntity32(500, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = positions.Get(e)
	}
}
