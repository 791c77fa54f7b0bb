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

package stats

import (
	"bytes"
	"strings"
	"testing"
)

func TestFileStatsHit(t *testing.T) {
	fs := NewFileStats("foo.cu")
	fs.Hit("ident", "runtime", "cudaMalloc", 10, 3)
	fs.Hit("ident", "runtime", "cudaMalloc", 12, 3)
	fs.Hit("ident", "runtime", "cudaFree", 20, -1)

	if got, want := fs.TouchedLines(), 3; got != want {
		t.Errorf("TouchedLines() = %d, want %d", got, want)
	}
	if got, want := fs.BytesChanged(), 5; got != want {
		t.Errorf("BytesChanged() = %d, want %d", got, want)
	}

	rows := fs.rows()
	if len(rows) != 2 {
		t.Fatalf("rows() = %d entries, want 2", len(rows))
	}
	if rows[0].SrcName != "cudaMalloc" || rows[0].hits != 2 {
		t.Errorf("rows()[0] = %+v, want cudaMalloc with 2 hits", rows[0])
	}
}

func TestFileStatsUnsupported(t *testing.T) {
	fs := NewFileStats("bar.cu")
	fs.Unsupported("ident", "runtime", "cudaProfilerStart")
	rows := fs.rows()
	if len(rows) != 1 || !rows[0].unsupported {
		t.Fatalf("rows() = %+v, want one unsupported row", rows)
	}
}

func TestCollectorPrintAll(t *testing.T) {
	c := NewCollector()
	fs1 := c.Activate("a.cu")
	fs1.Hit("ident", "runtime", "cudaMalloc", 1, 2)
	fs2 := NewFileStats("b.cu")
	fs2.Hit("ident", "runtime", "cudaFree", 1, -2)
	c.Add(fs2)

	var buf bytes.Buffer
	c.PrintAll(&buf)
	out := buf.String()
	if !strings.Contains(out, "a.cu") || !strings.Contains(out, "b.cu") {
		t.Errorf("PrintAll() output missing a file summary: %s", out)
	}
	if !strings.Contains(out, "TOTAL") {
		t.Errorf("PrintAll() output missing aggregate total: %s", out)
	}
}

func TestCollectorWriteCSV(t *testing.T) {
	c := NewCollector()
	fs := c.Activate("a.cu")
	fs.Hit("ident", "runtime", "cudaMalloc", 1, 2)

	var buf bytes.Buffer
	if err := c.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "conv_type,api_family,src_name,hit_count,unsupported\n") {
		t.Errorf("WriteCSV() header = %q", out)
	}
	if !strings.Contains(out, "cudaMalloc") {
		t.Errorf("WriteCSV() missing row: %s", out)
	}
}
