package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

type Report struct {
	// Configuration
	Duration  time.Duration `json:"duration"`
	Width     int           `json:"width"`
	PageSize  int           `json:"page_size"`
	ChurnRate float64       `json:"churn_rate"`

	// Results
	Entities       int              `json:"entities"`
	TotalUpdates   int64            `json:"total_updates"`
	TotalTime      time.Duration    `json:"total_time"`
	UpdateTime     Stats            `json:"update_time"`
	Created        int64            `json:"created"`
	Destroyed      int64            `json:"destroyed"`
	Alive          int              `json:"alive"`
	AllocatorPages int              `json:"allocator_pages"`
	ComponentPages int              `json:"component_pages"`
	MemStatsStart  runtime.MemStats `json:"-"`
	MemStatsEnd    runtime.MemStats `json:"-"`
	GCPauseMetrics bool             `json:"-"`
}

type Stats struct {
	Min     time.Duration   `json:"min"`
	Max     time.Duration   `json:"max"`
	Avg     time.Duration   `json:"avg"`
	Samples []time.Duration `json:"-"`
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

type memoryReport struct {
	HeapAllocDelta  int64  `json:"heap_alloc_delta"`
	TotalAllocDelta int64  `json:"total_alloc_delta"`
	NumGC           uint32 `json:"num_gc"`
}

// WriteJSON writes the report and a memory summary as a single JSON object.
func (r *Report) WriteJSON(w io.Writer) error {
	out := struct {
		*Report
		Memory memoryReport `json:"memory"`
	}{
		Report: r,
		Memory: memoryReport{
			HeapAllocDelta:  int64(r.MemStatsEnd.HeapAlloc) - int64(r.MemStatsStart.HeapAlloc),
			TotalAllocDelta: int64(r.MemStatsEnd.TotalAlloc) - int64(r.MemStatsStart.TotalAlloc),
			NumGC:           r.MemStatsEnd.NumGC - r.MemStatsStart.NumGC,
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Sparse Set Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Entity Width:** {{.Width}} bits
- **Page Size:** {{.PageSize}}
- **Churn Rate:** {{.ChurnRate}}

## Performance Results
- **Initial Entities:** {{.Entities}}
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
- **Entities Created:** {{.Created}}
- **Entities Destroyed:** {{.Destroyed}}
- **Alive At End:** {{.Alive}}
- **Allocator Pages:** {{.AllocatorPages}}
- **Component Pages:** {{.ComponentPages}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return eris.Wrap(err, "parse report template")
	}

	return tmpl.Execute(w, r)
}
