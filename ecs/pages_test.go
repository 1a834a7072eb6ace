package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagedIndexLiveCounts(t *testing.T) {
	p := newPagedIndex(4)

	_, ok := p.get(9)
	assert.False(t, ok)
	assert.Equal(t, 0, p.count())

	p.set(9, 0)
	p.set(10, 1)
	p.set(9, 5) // overwrite does not count twice
	assert.Equal(t, 1, p.count())

	page, ok := p.pages.Get(2)
	require.True(t, ok)
	assert.Equal(t, 2, page.live)

	pos, ok := p.get(9)
	require.True(t, ok)
	assert.Equal(t, uint32(5), pos)

	// Unused slots of an allocated page read as absent.
	_, ok = p.get(8)
	assert.False(t, ok)

	p.unset(9)
	p.unset(9)
	p.unset(100)
	assert.Equal(t, 1, page.live)
	assert.Equal(t, 0, p.release())

	p.unset(10)
	assert.Equal(t, 1, p.release())
	assert.Equal(t, 0, p.count())
}

func TestPagedIndexAddressing(t *testing.T) {
	p := newPagedIndex(DefaultPageSize)
	assert.Equal(t, uint(12), p.shift)
	assert.Equal(t, uint64(0xFFF), p.mask)

	p.set(4095, 1)
	p.set(4096, 2)
	assert.Equal(t, 2, p.count())
}

func TestNextVersion(t *testing.T) {
	e := MakeEntity16(7, 0xE)
	e = nextVersion(e)
	assert.Equal(t, uint8(0xF), e.Version())
	e = nextVersion(e)
	assert.Equal(t, uint8(0), e.Version())
	assert.Equal(t, uint32(7), e.Index())

	e64 := nextVersion(MakeEntity64(3, 0xFFFFFFFF))
	assert.Equal(t, uint32(0), e64.Version())
	assert.Equal(t, uint64(3), indexBits(e64))
}
