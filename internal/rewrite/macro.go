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
)

// handleMacroDefinition implements spec.md §4.3's macro-definition
// callback: every replacement-list token gets Token Rewrite applied, so
// SRC references inside a macro *body* are rewritten at the definition
// site (spec.md §8 scenario 6).
func (v *visitor) handleMacroDefinition(cursor clang.Cursor) {
	if !v.inMainFile(cursor) {
		return
	}
	tokens := v.tu.Tokenize(cursor.Extent())
	if len(tokens) == 0 {
		return
	}
	// tokens[0] is the macro name itself; the replacement list starts
	// after it (and, for function-like macros, after the parenthesized
	// parameter list, which Token Rewrite's identifier lookups safely
	// no-op on since parameter names are never in the IDENT table).
	for _, tok := range tokens[1:] {
		v.tokenRewrite(tok)
	}
}

// handleMacroExpansion implements spec.md §4.3's macro-expansion
// callback: Token Rewrite on the macro name, plus — for function-like
// macros — re-lexing the call-site argument text so SRC vocabulary
// reaching code only through macro substitution is still rewritten.
func (v *visitor) handleMacroExpansion(cursor clang.Cursor) {
	if !v.inMainFile(cursor) {
		return
	}
	extent := cursor.Extent()
	tokens := v.tu.Tokenize(extent)
	if len(tokens) == 0 {
		return
	}
	v.tokenRewrite(tokens[0])

	// A function-like expansion's extent covers the full call,
	// "NAME(arg0, arg1)"; everything after the macro name is the
	// argument text. Re-lexing that sub-range and rewriting every
	// token inside it is the closest approximation libclang's
	// cursor/token API offers to Clang LibTooling's
	// PPCallbacks::MacroExpands argument-token feed (see DESIGN.md for
	// the Open Question this resolves).
	if len(tokens) > 1 && tokens[1].Spelling(v.tu.Raw()) == "(" {
		for _, tok := range tokens[1:] {
			v.tokenRewrite(tok)
		}
	}
}

// tokenRewrite implements spec.md §4.3's Token Rewrite procedure.
func (v *visitor) tokenRewrite(tok clang.Token) {
	raw := v.tu.Raw()
	switch tok.Kind() {
	case clang.Token_Literal:
		spelling := tok.Spelling(raw)
		if !looksLikeStringLiteral(spelling) {
			return
		}
		start := frontend.FileLoc(tok.Location(raw)).Offset
		wide := spelling[0] != '"'
		loc := v.locOf2(tok.Location(raw))
		v.engine.rewriteStringToken(spelling, start, wide, v.set, loc)

	case clang.Token_Identifier:
		name := tok.Spelling(raw)
		loc := v.locOf2(tok.Location(raw))
		entry, ok := v.engine.tables.LookupIdent(name)
		if !ok {
			return
		}
		if entry.Unsupported {
			v.engine.warnUnsupported(loc, string(entry.ConvType), name)
			return
		}
		extent := tok.Extent(raw)
		writeOff := frontend.WriteLoc(extent.Start(), frontend.RangeInMacro(extent)).Offset
		v.set.Insert(edit.Edit{Offset: writeOff, OldLen: uint32(len(name)), NewText: entry.DstName})
		v.engine.countHit(string(entry.ConvType), string(entry.APIFamily), name, loc.Line, len(entry.DstName)-len(name))

	default:
		// Non-identifier, non-string tokens are ignored, per spec.md
		// §4.3's Token Rewrite contract.
	}
}

func (v *visitor) locOf2(l clang.SourceLocation) Location {
	fl := frontend.FileLoc(l)
	return Location{File: fl.File, Line: fl.Line, Col: fl.Col}
}

// looksLikeStringLiteral reports whether a Token_Literal's spelling is a
// string literal (as opposed to a numeric literal, which Token_Literal
// also covers), tolerating the L/u/U/u8 wide-literal prefixes.
func looksLikeStringLiteral(spelling string) bool {
	s := strings.TrimPrefix(spelling, "u8")
	s = strings.TrimPrefix(s, "L")
	s = strings.TrimPrefix(s, "u")
	s = strings.TrimPrefix(s, "U")
	return len(s) > 0 && s[0] == '"'
}
