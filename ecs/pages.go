package ecs

import (
	"math/bits"

	"github.com/kamstrup/intmap"
)

// DefaultPageSize is the number of sparse slots per page.
const DefaultPageSize = 4096

// absent marks a sparse slot with no dense position.
const absent = ^uint32(0)

// sparsePage is one lazily allocated block of the sparse index.
type sparsePage struct {
	slots []uint32
	live  int
}

// pagedIndex maps entity indices to dense positions. Pages are keyed by page number
// in a hash map, so memory follows the pages actually touched rather than the
// highest index seen.
type pagedIndex struct {
	pageSize int
	shift    uint
	mask     uint64
	pages    *intmap.Map[uint64, *sparsePage]
}

func newPagedIndex(pageSize int) *pagedIndex {
	if pageSize <= 0 || pageSize&(pageSize-1) != 0 {
		panic("sparse set page size must be a positive power of two")
	}
	return &pagedIndex{
		pageSize: pageSize,
		shift:    uint(bits.TrailingZeros(uint(pageSize))),
		mask:     uint64(pageSize - 1),
		pages:    intmap.New[uint64, *sparsePage](8),
	}
}

// get returns the dense position stored for index. It never allocates.
func (p *pagedIndex) get(index uint64) (uint32, bool) {
	page, ok := p.pages.Get(index >> p.shift)
	if !ok {
		return 0, false
	}
	pos := page.slots[index&p.mask]
	return pos, pos != absent
}

// set stores pos for index, allocating the owning page on first use.
func (p *pagedIndex) set(index uint64, pos uint32) {
	page := p.page(index >> p.shift)
	slot := &page.slots[index&p.mask]
	if *slot == absent {
		page.live++
	}
	*slot = pos
}

// unset clears the slot for index. Pages are kept until release.
func (p *pagedIndex) unset(index uint64) {
	page, ok := p.pages.Get(index >> p.shift)
	if !ok {
		return
	}
	slot := &page.slots[index&p.mask]
	if *slot != absent {
		*slot = absent
		page.live--
	}
}

func (p *pagedIndex) page(number uint64) *sparsePage {
	if page, ok := p.pages.Get(number); ok {
		return page
	}
	page := &sparsePage{slots: make([]uint32, p.pageSize)}
	for i := range page.slots {
		page.slots[i] = absent
	}
	p.pages.Put(number, page)
	return page
}

// count returns the number of allocated pages.
func (p *pagedIndex) count() int {
	return p.pages.Len()
}

// release drops every page without live slots and returns how many were dropped.
func (p *pagedIndex) release() int {
	var empty []uint64
	p.pages.ForEach(func(number uint64, page *sparsePage) bool {
		if page.live == 0 {
			empty = append(empty, number)
		}
		return true
	})
	for _, number := range empty {
		p.pages.Del(number)
	}
	return len(empty)
}

// reset drops all pages.
func (p *pagedIndex) reset() {
	p.pages.Clear()
}
