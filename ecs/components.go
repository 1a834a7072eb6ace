package ecs

import (
	"iter"

	"github.com/rotisserie/eris"
)

// Components associates a value of type T with each entity in a SparseSet.
// Values live in a dense slice at the same positions as their identifiers, so the
// swap-with-last removal of the set moves the value along with the identifier.
type Components[E ID, T any] struct {
	set    *SparseSet[E]
	values []T
}

// NewComponents creates an empty component set.
func NewComponents[E ID, T any](opts ...SparseSetOption) *Components[E, T] {
	return &Components[E, T]{
		set: NewSparseSet[E](opts...),
	}
}

// Insert stores value for e. It fails like SparseSet.Insert.
func (c *Components[E, T]) Insert(e E, value T) error {
	if err := c.set.Insert(e); err != nil {
		return err
	}
	c.values = append(c.values, value)
	return nil
}

// Replace overwrites the value stored for e, or returns ErrNotFound.
func (c *Components[E, T]) Replace(e E, value T) error {
	pos, ok := c.set.position(e)
	if !ok {
		return eris.Wrapf(ErrNotFound, "replace %s", e)
	}
	c.values[pos] = value
	return nil
}

// Get returns a pointer to the value stored for e. The pointer is valid until the
// next Insert or Remove.
func (c *Components[E, T]) Get(e E) (*T, bool) {
	pos, ok := c.set.position(e)
	if !ok {
		return nil, false
	}
	return &c.values[pos], true
}

// Remove deletes e and its value, or returns ErrNotFound.
func (c *Components[E, T]) Remove(e E) error {
	pos, ok := c.set.position(e)
	if !ok {
		return eris.Wrapf(ErrNotFound, "remove %s", e)
	}

	last := len(c.values) - 1
	c.values[pos] = c.values[last]
	var zero T
	c.values[last] = zero
	c.values = c.values[:last]

	c.set.swapRemove(pos)
	return nil
}

// Contains reports whether a value is stored for e's index.
func (c *Components[E, T]) Contains(e E) bool {
	return c.set.Contains(e)
}

// Size returns the number of stored values.
func (c *Components[E, T]) Size() int {
	return c.set.Size()
}

// PageCount returns the number of sparse index pages currently allocated.
func (c *Components[E, T]) PageCount() int {
	return c.set.PageCount()
}

// Entities returns the identifiers in the same order as the values.
func (c *Components[E, T]) Entities() iter.Seq[E] {
	return c.set.Values()
}

// All returns an iterator over identifiers and pointers to their values.
func (c *Components[E, T]) All() iter.Seq2[E, *T] {
	return func(yield func(E, *T) bool) {
		for pos, e := range c.set.dense {
			if !yield(e, &c.values[pos]) {
				return
			}
		}
	}
}

// Clear removes every entity and value.
func (c *Components[E, T]) Clear() {
	c.set.Clear()
	clear(c.values)
	c.values = c.values[:0]
}
