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

package edit

import "testing"

func TestSetInsertOverlap(t *testing.T) {
	for _, tc := range []struct {
		name      string
		edits     []Edit
		wantLen   int
		wantConfl int
	}{
		{
			name: "disjoint",
			edits: []Edit{
				{Offset: 0, OldLen: 3, NewText: "foo"},
				{Offset: 10, OldLen: 3, NewText: "bar"},
			},
			wantLen:   2,
			wantConfl: 0,
		},
		{
			name: "duplicate accepted silently",
			edits: []Edit{
				{Offset: 0, OldLen: 3, NewText: "foo"},
				{Offset: 0, OldLen: 3, NewText: "foo"},
			},
			wantLen:   1,
			wantConfl: 0,
		},
		{
			name: "differing overlap rejected",
			edits: []Edit{
				{Offset: 0, OldLen: 3, NewText: "foo"},
				{Offset: 1, OldLen: 3, NewText: "bar"},
			},
			wantLen:   1,
			wantConfl: 1,
		},
		{
			name: "adjacent insertions at same offset overlap",
			edits: []Edit{
				{Offset: 5, OldLen: 0, NewText: "a"},
				{Offset: 5, OldLen: 0, NewText: "b"},
			},
			wantLen:   1,
			wantConfl: 1,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var s Set
			for _, e := range tc.edits {
				s.Insert(e)
			}
			if s.Len() != tc.wantLen {
				t.Errorf("Len() = %d, want %d", s.Len(), tc.wantLen)
			}
			if s.Conflicts != tc.wantConfl {
				t.Errorf("Conflicts = %d, want %d", s.Conflicts, tc.wantConfl)
			}
		})
	}
}

func TestSetInsertReturns(t *testing.T) {
	var s Set
	accepted, dup := s.Insert(Edit{Offset: 0, OldLen: 3, NewText: "foo"})
	if !accepted || dup {
		t.Errorf("first insert: accepted=%v dup=%v, want true/false", accepted, dup)
	}
	accepted, dup = s.Insert(Edit{Offset: 0, OldLen: 3, NewText: "foo"})
	if !accepted || !dup {
		t.Errorf("duplicate insert: accepted=%v dup=%v, want true/true", accepted, dup)
	}
	accepted, dup = s.Insert(Edit{Offset: 1, OldLen: 3, NewText: "bar"})
	if accepted || dup {
		t.Errorf("conflicting insert: accepted=%v dup=%v, want false/false", accepted, dup)
	}
}

func TestApply(t *testing.T) {
	for _, tc := range []struct {
		name  string
		buf   string
		edits []Edit
		want  string
	}{
		{
			name: "single replace",
			buf:  "hello world",
			edits: []Edit{
				{Offset: 6, OldLen: 5, NewText: "there"},
			},
			want: "hello there",
		},
		{
			name: "out of order insertion order",
			buf:  "abcdef",
			edits: []Edit{
				{Offset: 4, OldLen: 0, NewText: "X"},
				{Offset: 0, OldLen: 0, NewText: "Y"},
			},
			want: "Yabcd" + "X" + "ef",
		},
		{
			name:  "no edits",
			buf:   "unchanged",
			edits: nil,
			want:  "unchanged",
		},
		{
			name: "zero-length insert at same offset as a replacement",
			buf:  "abcdef",
			edits: []Edit{
				{Offset: 0, OldLen: 3, NewText: "XYZ"},
				{Offset: 0, OldLen: 0, NewText: "#include <h>\n"},
			},
			want: "#include <h>\n" + "XYZ" + "def",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var s Set
			for _, e := range tc.edits {
				s.Insert(e)
			}
			got, err := s.Apply([]byte(tc.buf))
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if string(got) != tc.want {
				t.Errorf("Apply() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestApplyOverlapError(t *testing.T) {
	var s Set
	// Force two edits into the set that overlap by bypassing Insert's own
	// check, simulating a caller-constructed Set (e.g. deserialized state).
	s.edits = append(s.edits, Edit{Offset: 0, OldLen: 5, NewText: "x"})
	s.edits = append(s.edits, Edit{Offset: 2, OldLen: 5, NewText: "y"})
	if _, err := s.Apply([]byte("0123456789")); err == nil {
		t.Error("Apply() with overlapping edits: got nil error, want non-nil")
	}
}
