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
package frontend

import "github.com/go-clang/v3.9/clang"

// Loc is a resolved source position: filename, 1-based line/column, and
// byte offset into that file.
type Loc struct {
	File   string
	Line   int
	Col    int
	Offset uint32
}

// FileLoc resolves l using the "file location" rule: the location as it
// appears in the file actually on disk, following macro expansion back
// to the point of use. This is the default rule for both reading and
// writing verbatim source per spec.md §4.4's source-range rules.
func FileLoc(l clang.SourceLocation) Loc {
	file, line, col, offset := l.FileLocation()
	return Loc{File: file.Name(), Line: int(line), Col: int(col), Offset: offset}
}

// SpellingLoc resolves l using the "spelling location" rule: the
// location as written at the macro's definition site. Used as the
// fallback when a range endpoint sits inside a macro body expansion.
func SpellingLoc(l clang.SourceLocation) Loc {
	file, line, col, offset := l.SpellingLocation()
	return Loc{File: file.Name(), Line: int(line), Col: int(col), Offset: offset}
}

// IsMacroLocation reports whether l sits inside a macro body expansion:
// the file location and the spelling location disagree once a macro
// substitutes text at a different source position than where it was
// written. Both a pure file-location call and the presence of
// IsFromMainFile would miss this distinction, so the comparison is done
// directly on the resolved positions.
func IsMacroLocation(l clang.SourceLocation) bool {
	fl := FileLoc(l)
	sl := SpellingLoc(l)
	return fl.File != sl.File || fl.Offset != sl.Offset
}

// ReadLoc implements spec.md §4.4's read-range rule: prefer the file
// location; if a range endpoint is inside a macro body expansion, fall
// back to the spelling location.
func ReadLoc(l clang.SourceLocation) Loc {
	if IsMacroLocation(l) {
		return SpellingLoc(l)
	}
	return FileLoc(l)
}

// WriteLoc implements spec.md §4.4's write-range rule: if either
// endpoint of the enclosing range is inside a macro body expansion,
// rewrite using the spelling location (editing the macro definition);
// otherwise use the file location. Callers pass inMacro = true when
// either endpoint of the full range qualifies, per the spec's "either
// endpoint" wording.
func WriteLoc(l clang.SourceLocation, inMacro bool) Loc {
	if inMacro {
		return SpellingLoc(l)
	}
	return FileLoc(l)
}

// RangeInMacro reports whether either endpoint of r is inside a macro
// body expansion, the trigger condition for WriteLoc's fallback.
func RangeInMacro(r clang.SourceRange) bool {
	return IsMacroLocation(r.Start()) || IsMacroLocation(r.End())
}

// IsInFile reports whether loc resolves (via file location) to path.
func IsInFile(l clang.SourceLocation, path string) bool {
	return FileLoc(l).File == path
}
