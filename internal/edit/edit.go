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
// Package edit implements the Replacement Set: an ordered collection of
// byte-range edits against one logical file, with overlap rejection and
// a single apply pass that produces the rewritten buffer.
package edit

import (
	"bytes"
	"fmt"
	"sort"
)

// Edit is a single byte-range replacement scoped to one file.
type Edit struct {
	Offset  uint32
	OldLen  uint32
	NewText string
}

func (e Edit) end() uint32 { return e.Offset + e.OldLen }

// overlaps reports whether e and o share any byte. Two zero-length edits
// (pure insertions) overlap only when they share an offset; an insertion
// overlaps a replacement only when it falls strictly inside the replaced
// range, so an insertion at either end of a replacement does not.
func (e Edit) overlaps(o Edit) bool {
	if e.OldLen == 0 && o.OldLen == 0 {
		return e.Offset == o.Offset
	}
	return e.Offset < o.end() && o.Offset < e.end()
}

func (e Edit) identical(o Edit) bool {
	return e.Offset == o.Offset && e.OldLen == o.OldLen && e.NewText == o.NewText
}

// Set is a per-file container of Edits. The zero value is ready to use.
type Set struct {
	edits []Edit
	// Conflicts counts insertions rejected because they overlapped an
	// existing edit with different content. Surfaced to stats rather
	// than treated as a fatal error, per the translator's "never crash
	// on a translator bug" contract.
	Conflicts int
}

// Insert adds e to the set. accepted reports whether e is now part of
// the set (directly, or because it was already there); dup reports
// whether it was the latter case — a duplicate (same offset, old
// length and replacement) silently folded into the existing edit
// rather than appended again. An edit that overlaps an existing one
// with different content is rejected (accepted=false) and counted in
// Conflicts.
func (s *Set) Insert(e Edit) (accepted, dup bool) {
	for _, existing := range s.edits {
		if existing.overlaps(e) {
			if existing.identical(e) {
				return true, true
			}
			s.Conflicts++
			return false, false
		}
	}
	s.edits = append(s.edits, e)
	return true, false
}

// Len reports how many distinct edits are currently held.
func (s *Set) Len() int { return len(s.edits) }

// Apply produces the rewritten buffer. Edits are applied in ascending
// offset order with a running length delta so the whole pass is a
// single left-to-right copy of buf into a fresh byte slice; the
// resulting text is identical to applying every edit simultaneously
// against the original offsets, which is the contract spec requires
// regardless of discipline chosen.
func (s *Set) Apply(buf []byte) ([]byte, error) {
	sorted := make([]Edit, len(s.edits))
	copy(sorted, s.edits)
	// Zero-length inserts sort before a same-offset replacement so a
	// header insertion at offset 0 (OldLen 0) can never collide with a
	// real edit that also starts at 0 (OldLen > 0).
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Offset != sorted[j].Offset {
			return sorted[i].Offset < sorted[j].Offset
		}
		return sorted[i].OldLen < sorted[j].OldLen
	})

	var out bytes.Buffer
	out.Grow(len(buf))
	var cursor uint32
	for _, e := range sorted {
		if e.Offset < cursor {
			return nil, fmt.Errorf("edit: overlapping edit at offset %d (cursor at %d)", e.Offset, cursor)
		}
		if int(e.Offset) > len(buf) {
			return nil, fmt.Errorf("edit: offset %d beyond buffer length %d", e.Offset, len(buf))
		}
		out.Write(buf[cursor:e.Offset])
		out.WriteString(e.NewText)
		cursor = e.end()
	}
	if int(cursor) > len(buf) {
		return nil, fmt.Errorf("edit: edit range extends past buffer length %d", len(buf))
	}
	out.Write(buf[cursor:])
	return out.Bytes(), nil
}
