package ecs

import (
	"iter"

	"github.com/rotisserie/eris"
)

// Allocator hands out entity identifiers and recycles their indices.
//
// A destroyed identifier's index goes on a free list with its version advanced, so
// the next identifier issued for that index differs from every copy of the old one
// until the version wraps around. The null index is never issued.
type Allocator[E ID] struct {
	slots []E // next identifier to issue for each index ever used
	free  []uint64
	alive *SparseSet[E]
}

// AllocatorStats is a point-in-time summary of an Allocator.
type AllocatorStats struct {
	Alive    int
	Free     int
	Capacity int
	Pages    int
}

// NewAllocator creates an empty allocator. The options configure the sparse set that
// tracks live entities.
func NewAllocator[E ID](opts ...SparseSetOption) *Allocator[E] {
	return &Allocator[E]{
		alive: NewSparseSet[E](opts...),
	}
}

// Create returns a new live identifier, reusing a released index when one is free.
// It returns ErrExhausted when every index below the null index is live.
func (a *Allocator[E]) Create() (E, error) {
	var e E
	if n := len(a.free); n > 0 {
		index := a.free[n-1]
		a.free = a.free[:n-1]
		e = a.slots[index]
	} else {
		index := uint64(len(a.slots))
		if index > TraitsOf[E]().MaxIndex() {
			return e, eris.Wrapf(ErrExhausted, "create %T", e)
		}
		e = MakeEntity[E](index, 0)
		a.slots = append(a.slots, e)
	}

	if err := a.alive.Insert(e); err != nil {
		return e, err
	}
	return e, nil
}

// Destroy releases e. It returns ErrStaleEntity if e's index is live under another
// version and ErrNotFound if the index is not live at all.
func (a *Allocator[E]) Destroy(e E) error {
	current, ok := a.alive.Find(e)
	if !ok {
		return eris.Wrapf(ErrNotFound, "destroy %s", e)
	}
	if current != e {
		return eris.Wrapf(ErrStaleEntity, "destroy %s (live %s)", e, current)
	}

	if err := a.alive.Remove(e); err != nil {
		return err
	}
	index := indexBits(e)
	a.slots[index] = nextVersion(e)
	a.free = append(a.free, index)
	return nil
}

// Valid reports whether e is live with exactly this version.
func (a *Allocator[E]) Valid(e E) bool {
	current, ok := a.alive.Find(e)
	return ok && current == e
}

// Current returns the live identifier for index, if any. Indices past MaxIndex,
// the null index included, are never live.
func (a *Allocator[E]) Current(index uint64) (E, bool) {
	if index > TraitsOf[E]().MaxIndex() {
		var zero E
		return zero, false
	}
	return a.alive.Find(MakeEntity[E](index, 0))
}

// Alive returns the number of live identifiers.
func (a *Allocator[E]) Alive() int {
	return a.alive.Size()
}

// Entities returns an iterator over the live identifiers.
func (a *Allocator[E]) Entities() iter.Seq[E] {
	return a.alive.Values()
}

// Stats returns a summary of the allocator's state.
func (a *Allocator[E]) Stats() AllocatorStats {
	return AllocatorStats{
		Alive:    a.alive.Size(),
		Free:     len(a.free),
		Capacity: len(a.slots),
		Pages:    a.alive.PageCount(),
	}
}
