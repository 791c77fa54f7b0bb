// Copyright 2015 Google Inc. All rights reserved
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Package stats implements the Statistics Collector: per-file counters
// keyed by (conversion type, API family, source name), a set of touched
// line numbers,
// and a running byte-change total. Each job owns its *FileStats handle
// directly rather than reaching it through a process-wide selector, per
// spec.md §9's redesign note.
//
// The bookkeeping style — a mutex-guarded map plus a sortable summary
// type for the dump — mirrors the teacher's statsT/byTotalTime pair in
// stats.go, adapted from timing data to rename-hit counts.
package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"sync"
)

// Key identifies one counter bucket.
type Key struct {
	ConvType  string
	APIFamily string
	SrcName   string
}

type counter struct {
	hits        int
	unsupported bool
}

// FileStats holds the counters for a single translation job.
type FileStats struct {
	mu         sync.Mutex
	name       string
	counts     map[Key]*counter
	lines      map[int]bool
	bytesDelta int
	conflicts  int
}

// NewFileStats creates an empty counter set for the named file.
func NewFileStats(name string) *FileStats {
	return &FileStats{
		name:   name,
		counts: make(map[Key]*counter),
		lines:  make(map[int]bool),
	}
}

// Hit records one successful rename at the given source line, growing
// bytesDelta by the signed difference between replacement and original
// lengths.
func (f *FileStats) Hit(convType, apiFamily, srcName string, line int, byteDelta int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := Key{convType, apiFamily, srcName}
	c, ok := f.counts[k]
	if !ok {
		c = &counter{}
		f.counts[k] = c
	}
	c.hits++
	f.lines[line] = true
	f.bytesDelta += byteDelta
}

// Unsupported records a lookup that matched an unsupported table entry:
// counted, but never rewritten.
func (f *FileStats) Unsupported(convType, apiFamily, srcName string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := Key{convType, apiFamily, srcName}
	c, ok := f.counts[k]
	if !ok {
		c = &counter{unsupported: true}
		f.counts[k] = c
	}
	c.hits++
	c.unsupported = true
}

// Conflict records a rejected overlapping edit (a translator bug,
// per spec.md §4.1, not a crash).
func (f *FileStats) Conflict() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conflicts++
}

// TouchedLines returns the count of distinct source lines that received
// at least one edit.
func (f *FileStats) TouchedLines() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.lines)
}

// BytesChanged returns the net byte delta across all applied edits.
func (f *FileStats) BytesChanged() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bytesDelta
}

type row struct {
	Key
	hits        int
	unsupported bool
}

func (f *FileStats) rows() []row {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows := make([]row, 0, len(f.counts))
	for k, c := range f.counts {
		rows = append(rows, row{Key: k, hits: c.hits, unsupported: c.unsupported})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].hits != rows[j].hits {
			return rows[i].hits > rows[j].hits
		}
		return rows[i].SrcName < rows[j].SrcName
	})
	return rows
}

// Print writes a human-readable per-file summary, used by -print-stats.
func (f *FileStats) Print(w io.Writer) {
	fmt.Fprintf(w, "%s: %d touched line(s), %+d byte(s), %d conflict(s)\n",
		f.name, f.TouchedLines(), f.BytesChanged(), f.conflicts)
	for _, r := range f.rows() {
		tag := ""
		if r.unsupported {
			tag = " [unsupported]"
		}
		fmt.Fprintf(w, "  %-12s %-10s %-30s %d%s\n", r.ConvType, r.APIFamily, r.SrcName, r.hits, tag)
	}
}

// Collector owns every file's stats for later aggregation and
// reporting. Both the sequential (-j 1) and concurrent (-j >1) driver
// paths hand each job's *FileStats to its rewrite engine directly
// (an explicit per-job handle), per spec.md §9's note that this
// replaces the original single-threaded design's global active-file
// selector — the prerequisite for per-file parallelism.
type Collector struct {
	mu    sync.Mutex
	files []*FileStats
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Activate starts a new FileStats for name, registers it, and returns
// it for the caller to thread through that job's rewrite engine.
func (c *Collector) Activate(name string) *FileStats {
	fs := NewFileStats(name)
	c.mu.Lock()
	c.files = append(c.files, fs)
	c.mu.Unlock()
	return fs
}

// Add registers stats gathered by a concurrent job for later
// aggregation and reporting.
func (c *Collector) Add(fs *FileStats) {
	c.mu.Lock()
	c.files = append(c.files, fs)
	c.mu.Unlock()
}

// PrintAll writes every file's summary followed by an aggregate total.
func (c *Collector) PrintAll(w io.Writer) {
	c.mu.Lock()
	files := append([]*FileStats(nil), c.files...)
	c.mu.Unlock()

	agg := NewFileStats("TOTAL")
	for _, fs := range files {
		fs.Print(w)
		for _, r := range fs.rows() {
			for i := 0; i < r.hits; i++ {
				if r.unsupported {
					agg.Unsupported(r.ConvType, r.APIFamily, r.SrcName)
				} else {
					agg.Hit(r.ConvType, r.APIFamily, r.SrcName, 0, 0)
				}
			}
		}
	}
	fmt.Fprintln(w, "---")
	agg.Print(w)
}

// WriteCSV dumps one row per counted rename across all files, columns
// conv_type, api_family, src_name, hit_count, unsupported, matching the
// stats CSV format in spec.md §6.
func (c *Collector) WriteCSV(w io.Writer) error {
	c.mu.Lock()
	files := append([]*FileStats(nil), c.files...)
	c.mu.Unlock()

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"conv_type", "api_family", "src_name", "hit_count", "unsupported"}); err != nil {
		return err
	}
	for _, fs := range files {
		for _, r := range fs.rows() {
			err := cw.Write([]string{
				r.ConvType,
				r.APIFamily,
				r.SrcName,
				fmt.Sprintf("%d", r.hits),
				fmt.Sprintf("%t", r.unsupported),
			})
			if err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
