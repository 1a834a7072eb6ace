package ecs

import (
	"iter"

	"github.com/rotisserie/eris"
)

// SparseSetOption configures a SparseSet.
type SparseSetOption func(*sparseSetConfig)

type sparseSetConfig struct {
	pageSize int
	capacity int
}

// WithPageSize sets the number of sparse slots per page. It must be a power of two.
func WithPageSize(n int) SparseSetOption {
	return func(c *sparseSetConfig) {
		c.pageSize = n
	}
}

// WithCapacity preallocates room for n entities in the dense array.
func WithCapacity(n int) SparseSetOption {
	return func(c *sparseSetConfig) {
		c.capacity = n
	}
}

// SparseSet tracks a set of entity identifiers with O(1) insert, lookup and removal.
//
// Identifiers are kept contiguously in a dense array, in insertion order except
// that a removal moves the last element into the vacated position. A paged sparse
// index maps each identifier's index bits to its dense position. Only index bits
// take part in membership; the stored identifier keeps its version.
//
// A SparseSet is not safe for concurrent use.
type SparseSet[E ID] struct {
	dense  []E
	sparse *pagedIndex
}

// SparseSetStats is a point-in-time summary of a SparseSet.
type SparseSetStats struct {
	Size     int
	Pages    int
	PageSize int
	Traits   Traits
}

// NewSparseSet creates an empty sparse set. It panics if the page size is not a
// power of two.
func NewSparseSet[E ID](opts ...SparseSetOption) *SparseSet[E] {
	cfg := sparseSetConfig{pageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &SparseSet[E]{
		dense:  make([]E, 0, cfg.capacity),
		sparse: newPagedIndex(cfg.pageSize),
	}
}

// position returns the dense position of e's index, if present.
func (s *SparseSet[E]) position(e E) (int, bool) {
	index := indexBits(e)
	pos, ok := s.sparse.get(index)
	if !ok || int(pos) >= len(s.dense) || indexBits(s.dense[pos]) != index {
		return 0, false
	}
	return int(pos), true
}

// Contains reports whether an identifier with e's index is in the set.
func (s *SparseSet[E]) Contains(e E) bool {
	_, ok := s.position(e)
	return ok
}

// Find returns the identifier stored under e's index. The result can differ from e
// in its version bits.
func (s *SparseSet[E]) Find(e E) (E, bool) {
	pos, ok := s.position(e)
	if !ok {
		var zero E
		return zero, false
	}
	return s.dense[pos], true
}

// Insert appends e to the dense array.
// Inserting an index that is already present returns ErrDuplicateEntity, and
// inserting the null index returns ErrNullEntity; the set is unchanged in both cases.
func (s *SparseSet[E]) Insert(e E) error {
	if e.IsNull() {
		return eris.Wrapf(ErrNullEntity, "insert %s", e)
	}
	if s.Contains(e) {
		return eris.Wrapf(ErrDuplicateEntity, "insert %s", e)
	}

	s.sparse.set(indexBits(e), uint32(len(s.dense)))
	s.dense = append(s.dense, e)
	return nil
}

// Remove deletes e by moving the last dense element into its position.
// Removing an index that is not present returns ErrNotFound.
func (s *SparseSet[E]) Remove(e E) error {
	pos, ok := s.position(e)
	if !ok {
		return eris.Wrapf(ErrNotFound, "remove %s", e)
	}
	s.swapRemove(pos)
	return nil
}

// swapRemove drops the element at pos, filling the hole with the last element.
func (s *SparseSet[E]) swapRemove(pos int) {
	last := len(s.dense) - 1
	removed := s.dense[pos]
	moved := s.dense[last]

	s.dense[pos] = moved
	s.sparse.set(indexBits(moved), uint32(pos))
	s.sparse.unset(indexBits(removed))

	var zero E
	s.dense[last] = zero
	s.dense = s.dense[:last]
}

// IndexOf returns the dense position of e, or ErrNotFound.
func (s *SparseSet[E]) IndexOf(e E) (int, error) {
	pos, ok := s.position(e)
	if !ok {
		return 0, eris.Wrapf(ErrNotFound, "index of %s", e)
	}
	return pos, nil
}

// At returns the identifier at dense position pos. It panics if pos is out of range.
func (s *SparseSet[E]) At(pos int) E {
	return s.dense[pos]
}

// Size returns the number of identifiers in the set.
func (s *SparseSet[E]) Size() int {
	return len(s.dense)
}

// Empty reports whether the set holds no identifiers.
func (s *SparseSet[E]) Empty() bool {
	return len(s.dense) == 0
}

// Data returns the dense array. The slice is only valid until the next mutation
// and must not be modified.
func (s *SparseSet[E]) Data() []E {
	return s.dense
}

// All returns an iterator over dense positions and identifiers in dense order.
func (s *SparseSet[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for pos, e := range s.dense {
			if !yield(pos, e) {
				return
			}
		}
	}
}

// Values returns an iterator over the identifiers in dense order.
func (s *SparseSet[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range s.dense {
			if !yield(e) {
				return
			}
		}
	}
}

// Clear removes every identifier and releases all pages.
func (s *SparseSet[E]) Clear() {
	clear(s.dense)
	s.dense = s.dense[:0]
	s.sparse.reset()
}

// PageCount returns the number of sparse pages currently allocated.
func (s *SparseSet[E]) PageCount() int {
	return s.sparse.count()
}

// Shrink releases sparse pages that no longer reference any identifier and returns
// how many were released.
func (s *SparseSet[E]) Shrink() int {
	return s.sparse.release()
}

// Stats returns a summary of the set's size and page usage.
func (s *SparseSet[E]) Stats() SparseSetStats {
	return SparseSetStats{
		Size:     len(s.dense),
		Pages:    s.sparse.count(),
		PageSize: s.sparse.pageSize,
		Traits:   TraitsOf[E](),
	}
}
