package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	s.Finalize()
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{Width: 32, PageSize: 4096, Created: 12, Destroyed: 2, Alive: 10, AllocatorPages: 1, ComponentPages: 3}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	assert.Contains(t, buf.String(), "**Entity Width:** 32 bits")
	assert.Contains(t, buf.String(), "**Entities Destroyed:** 2")
	assert.Contains(t, buf.String(), "**Allocator Pages:** 1")
	assert.Contains(t, buf.String(), "**Component Pages:** 3")
	assert.NotContains(t, buf.String(), "GC Pause Durations")
}

func TestReportWriteJSON(t *testing.T) {
	r := &Report{Width: 16, Alive: 3, TotalUpdates: 7, AllocatorPages: 2, ComponentPages: 4}

	var buf bytes.Buffer
	require.NoError(t, r.WriteJSON(&buf))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.EqualValues(t, 16, out["width"])
	assert.EqualValues(t, 3, out["alive"])
	assert.EqualValues(t, 7, out["total_updates"])
	assert.EqualValues(t, 2, out["allocator_pages"])
	assert.EqualValues(t, 4, out["component_pages"])
	assert.Contains(t, out, "memory")
	assert.NotContains(t, out, "MemStatsStart")
}
