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
// Package rewrite implements the merged Preprocessor Observer and AST
// Match Dispatcher from spec.md §4.3–§4.4. Because the embedded front
// end is libclang (see internal/frontend), and libclang's cursor walk
// already interleaves preprocessing cursors (includes, macro
// definitions, macro expansions) with ordinary AST cursors once
// TranslationUnit_DetailedPreprocessingRecord is set, both logical
// components are realized as one depth-first visitor that switches on
// cursor kind. SPEC_FULL.md §1 records this as a grounded adaptation,
// not a scope cut: every site spec.md names is still recognized and
// still produces the edit spec.md's handler-by-handler description
// requires.
package rewrite

import (
	"github.com/go-clang/v3.9/clang"

	"github.com/rocm-tools/hipify/internal/edit"
	"github.com/rocm-tools/hipify/internal/frontend"
	"github.com/rocm-tools/hipify/internal/hipifylog"
	"github.com/rocm-tools/hipify/internal/renametable"
	"github.com/rocm-tools/hipify/internal/stats"
)

// Location is a (line, column) pair used only for diagnostics and stats
// line-touch bookkeeping; byte offsets live in edit.Edit instead.
type Location struct {
	File string
	Line int
	Col  int
}

// Engine holds what one translation job's rewrite pass needs: the
// shared, read-only rename tables and the per-job stats counters it
// writes into. Each Run call builds its own fresh replacement set. A
// fresh Engine is created per
// TranslationJob so that -j >1 gives each concurrent job its own
// mutable state, per spec.md §5's parallelism precondition.
type Engine struct {
	tables *renametable.Tables
	fs     *stats.FileStats
}

// New creates an Engine bound to tables (shared, immutable) and fs (this
// job's private counters).
func New(tables *renametable.Tables, fs *stats.FileStats) *Engine {
	return &Engine{tables: tables, fs: fs}
}

func (e *Engine) countHit(convType, apiFamily, srcName string, line, byteDelta int) {
	e.fs.Hit(convType, apiFamily, srcName, line, byteDelta)
}

func (e *Engine) countUnsupported(convType, apiFamily, srcName string) {
	e.fs.Unsupported(convType, apiFamily, srcName)
}

func (e *Engine) warnUnsupported(loc Location, kind, name string) {
	e.countUnsupported(kind, "", name)
	hipifylog.Warning(loc.File, loc.Line, loc.Col, "unsupported reference: '"+name+"'")
}

func (e *Engine) warnUnhandled(loc Location, name, what string) {
	hipifylog.Warning(loc.File, loc.Line, loc.Col, "the following reference is not handled: '"+name+"' ["+what+"]")
}

// Run walks tu's root cursor and returns the accumulated edits for the
// main file, implementing the Driver's step "run the front-end with the
// assembled matchers and preprocessor observers" (spec.md §4.5, §2
// item 7). buf is the original file content: the launch handler reads
// verbatim sub-expression text from it for the hipLaunchKernelGGL
// reconstruction (spec.md §4.4), and the include handler reads the
// delimiter byte before the file name; every other handler produces
// edits from offsets alone.
func (e *Engine) Run(tu *frontend.TranslationUnit, buf []byte) (*edit.Set, error) {
	set := &edit.Set{}
	v := &visitor{engine: e, tu: tu, set: set, mainFile: tu.MainFile, buf: buf}
	root := tu.Cursor()
	root.Visit(v.visit)

	if set.Len() > 0 {
		header := "#include <" + renametable.RuntimeHeader + ">\n"
		if accepted, _ := set.Insert(edit.Edit{Offset: 0, OldLen: 0, NewText: header}); accepted {
			e.countHit(string(renametable.ConvInclude), "", renametable.RuntimeHeader, 0, len(header))
		}
	}
	if set.Conflicts > 0 {
		for i := 0; i < set.Conflicts; i++ {
			e.fs.Conflict()
		}
	}
	return set, nil
}

type visitor struct {
	engine   *Engine
	tu       *frontend.TranslationUnit
	set      *edit.Set
	mainFile string
	buf      []byte
}

// sourceText reads the verbatim text covered by cursor's tokens directly
// from the original buffer, applying the read-range rule from spec.md
// §4.4: prefer the file location, falling back to the spelling location
// when an endpoint sits inside a macro expansion. Tokenizing and
// spanning first-token-start to last-token-end (rather than trusting
// clang.SourceRange.End(), which names the start of the last token, not
// its end) is what makes this include the last token's own text.
func (v *visitor) sourceText(cursor clang.Cursor) string {
	tokens := v.tu.Tokenize(cursor.Extent())
	if len(tokens) == 0 {
		return ""
	}
	raw := v.tu.Raw()
	start := frontend.ReadLoc(tokens[0].Extent(raw).Start())
	end := frontend.ReadLoc(tokens[len(tokens)-1].Extent(raw).End())
	if int(start.Offset) > len(v.buf) || int(end.Offset) > len(v.buf) || end.Offset < start.Offset {
		return ""
	}
	return string(v.buf[start.Offset:end.Offset])
}

// inMainFile applies the "all patterns scoped to the main file only"
// rule spec.md §4.4 states for every AST match, and the equivalent
// restriction spec.md §4.3 states for include/macro callbacks.
func (v *visitor) inMainFile(c clang.Cursor) bool {
	return frontend.IsInFile(c.Location(), v.mainFile)
}

func (v *visitor) locOf(c clang.Cursor) Location {
	l := frontend.FileLoc(c.Location())
	return Location{File: l.File, Line: l.Line, Col: l.Col}
}

// visit is the single callback registered with clang's child-visitor
// API. Each case corresponds to one of the patterns spec.md §4.4 lists,
// or one of the three callbacks spec.md §4.3 lists; the switch itself
// is the dispatcher, and dispatch order here is the first-match-wins
// order spec.md documents (a node can only match one cursor kind, so
// "first wins" reduces to "the matching case wins").
func (v *visitor) visit(cursor, parent clang.Cursor) clang.ChildVisitResult {
	if cursor.IsNull() {
		return clang.ChildVisit_Continue
	}

	switch cursor.Kind() {
	case clang.Cursor_InclusionDirective:
		v.handleInclusion(cursor)
	case clang.Cursor_MacroDefinition:
		v.handleMacroDefinition(cursor)
	case clang.Cursor_MacroExpansion:
		v.handleMacroExpansion(cursor)
	case clang.Cursor_CUDAKernelCallExpr:
		if v.inMainFile(cursor) {
			v.handleLaunch(cursor)
		}
	case clang.Cursor_CallExpr:
		if v.inMainFile(cursor) {
			v.handleCall(cursor)
		}
	case clang.Cursor_TypeRef:
		if v.inMainFile(cursor) {
			v.handleTypeLocation(cursor)
		}
	case clang.Cursor_MemberRefExpr:
		if v.inMainFile(cursor) {
			v.handleBuiltinMember(cursor)
		}
	case clang.Cursor_DeclRefExpr:
		if v.inMainFile(cursor) {
			v.handleEnumConstant(cursor)
		}
	case clang.Cursor_VarDecl:
		if v.inMainFile(cursor) {
			v.handleSharedArray(cursor)
		}
	case clang.Cursor_StringLiteral:
		if v.inMainFile(cursor) {
			v.handleStringLiteralCursor(cursor)
		}
	}

	return clang.ChildVisit_Recurse
}
