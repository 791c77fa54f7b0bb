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
package rewrite

import (
	"strings"

	"github.com/go-clang/v3.9/clang"

	"github.com/rocm-tools/hipify/internal/edit"
	"github.com/rocm-tools/hipify/internal/frontend"
	"github.com/rocm-tools/hipify/internal/renametable"
)

// handleInclusion implements spec.md §4.3's include-directive callback.
func (v *visitor) handleInclusion(cursor clang.Cursor) {
	if !v.inMainFile(cursor) {
		return
	}
	name := cursor.Spelling()
	entry, ok := v.engine.tables.LookupInclude(name)
	if !ok {
		return
	}

	// libclang's cursor extent for Cursor_InclusionDirective covers the
	// included file name itself, not the surrounding `#include <>` or
	// `#include ""` delimiters, so its start is already the offset to
	// replace. spec.md §4.3 scopes include rewriting to angle-bracket
	// includes; the byte just before the extent is the delimiter, so a
	// quoted (project-local) include is left untouched without needing
	// a dedicated AST query for it.
	extent := cursor.Extent()
	writeOff := frontend.WriteLoc(extent.Start(), frontend.RangeInMacro(extent)).Offset
	if writeOff == 0 || writeOff-1 >= uint32(len(v.buf)) || v.buf[writeOff-1] != '<' {
		return
	}

	loc := v.locOf(cursor)
	if entry.Unsupported {
		v.engine.warnUnsupported(loc, string(renametable.ConvInclude), name)
		return
	}

	v.set.Insert(edit.Edit{Offset: writeOff, OldLen: uint32(len(name)), NewText: entry.DstName})
	v.engine.countHit(string(renametable.ConvInclude), string(entry.APIFamily), name, loc.Line, len(entry.DstName)-len(name))
}

// handleTypeLocation implements spec.md §4.4's type handler.
func (v *visitor) handleTypeLocation(cursor clang.Cursor) {
	t := cursor.Type()
	name := t.Spelling()
	name = strings.TrimPrefix(name, "enum ")
	name = strings.TrimPrefix(name, "struct ")

	entry, ok := v.engine.tables.LookupType(name)
	if !ok {
		return
	}
	loc := v.locOf(cursor)
	if entry.Unsupported {
		v.engine.warnUnsupported(loc, string(renametable.ConvType_), name)
		return
	}
	begin := frontend.WriteLoc(cursor.Location(), frontend.IsMacroLocation(cursor.Location()))
	v.set.Insert(edit.Edit{Offset: begin.Offset, OldLen: uint32(len(name)), NewText: entry.DstName})
	v.engine.countHit(string(renametable.ConvType_), string(entry.APIFamily), name, loc.Line, len(entry.DstName)-len(name))
}

// handleCall implements spec.md §4.4's call handler. Functions whose
// name begins with the internal-fetch-builtin prefix are excluded here
// because they surface as MemberRefExpr cursors instead and are handled
// by handleBuiltinMember, per spec.md's dispatcher registration note.
const fetchBuiltinPrefix = "__fetch_builtin_"

func (v *visitor) handleCall(cursor clang.Cursor) {
	callee := cursor.Referenced()
	name := callee.Spelling()
	if name == "" {
		name = cursor.Spelling()
	}
	if name == "" || strings.HasPrefix(name, fetchBuiltinPrefix) {
		return
	}
	if !strings.HasPrefix(name, renametable.IdentPrefix) {
		return
	}

	loc := v.locOf(cursor)
	entry, ok := v.engine.tables.LookupIdent(name)
	if !ok {
		v.engine.warnUnhandled(loc, name, "function call")
		return
	}
	if entry.Unsupported {
		v.engine.warnUnsupported(loc, string(renametable.ConvKernel), name)
		return
	}
	begin := frontend.WriteLoc(cursor.Location(), frontend.IsMacroLocation(cursor.Location()))
	v.set.Insert(edit.Edit{Offset: begin.Offset, OldLen: uint32(len(name)), NewText: entry.DstName})
	v.engine.countHit(string(entry.ConvType), string(entry.APIFamily), name, loc.Line, len(entry.DstName)-len(name))
}

// builtinStructPrefix names the compiler-synthesized struct types behind
// threadIdx, blockIdx, blockDim and gridDim; the member pattern is
// scoped to objects of one of these types so ordinary member accesses
// on user structs never reach this handler, matching spec.md §4.4's
// "Member expression whose object's type is a struct whose name matches
// the CUDA-builtin prefix".
const builtinStructPrefix = "__cuda_builtin_"

// handleBuiltinMember implements spec.md §4.4's builtin member handler,
// composing "declName.memberName" for accesses like threadIdx.x.
func (v *visitor) handleBuiltinMember(cursor clang.Cursor) {
	// The base object of a MemberRefExpr is its first child cursor;
	// its declaration name (e.g. "threadIdx") combines with the member
	// spelling (e.g. "x") to form the lookup key.
	var declName, baseType string
	cursor.Visit(func(c, p clang.Cursor) clang.ChildVisitResult {
		if declName == "" {
			declName = c.Spelling()
			baseType = strings.TrimPrefix(c.Type().Spelling(), "const ")
		}
		return clang.ChildVisit_Break
	})
	if !strings.HasPrefix(baseType, builtinStructPrefix) {
		return
	}
	member := cursor.Spelling()
	member = strings.TrimPrefix(member, fetchBuiltinPrefix)
	if declName == "" || member == "" {
		return
	}
	name := declName + "." + member

	loc := v.locOf(cursor)
	entry, ok := v.engine.tables.LookupIdent(name)
	if !ok {
		v.engine.warnUnhandled(loc, name, "builtin member")
		return
	}
	if entry.Unsupported {
		v.engine.warnUnsupported(loc, string(renametable.ConvBuiltin), name)
		return
	}
	begin := frontend.FileLoc(cursor.Location())
	v.set.Insert(edit.Edit{Offset: begin.Offset, OldLen: uint32(len(name)), NewText: entry.DstName})
	v.engine.countHit(string(entry.ConvType), string(entry.APIFamily), name, loc.Line, len(entry.DstName)-len(name))
}

// handleEnumConstant implements spec.md §4.4's enum-constant handler.
func (v *visitor) handleEnumConstant(cursor clang.Cursor) {
	ref := cursor.Referenced()
	if ref.Kind() != clang.Cursor_EnumConstantDecl {
		return
	}
	name := cursor.Spelling()
	if !strings.HasPrefix(name, renametable.IdentPrefix) {
		return
	}

	loc := v.locOf(cursor)
	entry, ok := v.engine.tables.LookupIdent(name)
	if !ok {
		v.engine.warnUnhandled(loc, name, "enum constant")
		return
	}
	if entry.Unsupported {
		v.engine.warnUnsupported(loc, string(renametable.ConvEnum), name)
		return
	}
	begin := frontend.WriteLoc(cursor.Location(), frontend.IsMacroLocation(cursor.Location()))
	v.set.Insert(edit.Edit{Offset: begin.Offset, OldLen: uint32(len(name)), NewText: entry.DstName})
	v.engine.countHit(string(entry.ConvType), string(entry.APIFamily), name, loc.Line, len(entry.DstName)-len(name))
}

// handleStringLiteralCursor implements spec.md §4.4's string-literal
// handler by delegating to the same scanner the preprocessor's Token
// Rewrite path uses (spec.md §4.3), so a literal visited through either
// path yields identical edits.
func (v *visitor) handleStringLiteralCursor(cursor clang.Cursor) {
	tokens := v.tu.Tokenize(cursor.Extent())
	if len(tokens) == 0 {
		return
	}
	tok := tokens[0]
	spelling := tok.Spelling(v.tu.Raw())
	start := frontend.FileLoc(tok.Location(v.tu.Raw())).Offset
	wide := len(spelling) > 0 && (spelling[0] == 'L' || spelling[0] == 'u' || spelling[0] == 'U')
	loc := v.locOf(cursor)
	v.engine.rewriteStringToken(spelling, start, wide, v.set, loc)
}
