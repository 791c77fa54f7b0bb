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

// handleSharedArray implements spec.md §4.4's shared-incomplete-array
// handler: a variable declaration of the shape
//
//	extern __shared__ T name[];
//
// is rewritten to
//
//	HIP_DYNAMIC_SHARED(T, name)
//
// CUDA's extern-shared-array idiom has no equivalent VarDecl shape in
// ordinary C++, so it is recognized the same way clang itself recognizes
// it: external storage class, the CUDA shared attribute, and an
// incomplete (unknown-bound) array type.
func (v *visitor) handleSharedArray(cursor clang.Cursor) {
	if cursor.StorageClass() != clang.SC_Extern {
		return
	}
	if !hasCUDASharedAttr(cursor) {
		return
	}
	t := cursor.Type()
	if t.Kind() != clang.Type_IncompleteArray {
		return
	}
	elemType := strings.TrimSpace(t.ArrayElementType().Spelling())
	name := cursor.Spelling()
	if elemType == "" || name == "" {
		return
	}

	tokens := v.tu.Tokenize(cursor.Extent())
	if len(tokens) == 0 {
		return
	}
	raw := v.tu.Raw()
	startLoc := tokens[0].Extent(raw).Start()
	endLoc := tokens[len(tokens)-1].Extent(raw).End()
	inMacro := frontend.IsMacroLocation(startLoc) || frontend.IsMacroLocation(endLoc)
	startOff := frontend.WriteLoc(startLoc, inMacro).Offset
	endOff := frontend.WriteLoc(endLoc, inMacro).Offset
	if endOff < startOff {
		return
	}

	newText := "HIP_DYNAMIC_SHARED(" + elemType + ", " + name + ")"
	loc := v.locOf(cursor)
	v.set.Insert(edit.Edit{Offset: startOff, OldLen: endOff - startOff, NewText: newText})
	v.engine.countHit(string(renametable.ConvMemory), "", name, loc.Line, len(newText)-int(endOff-startOff))
}

// hasCUDASharedAttr reports whether cursor carries clang's CUDA shared
// attribute, surfaced as an Cursor_CUDASharedAttr child.
func hasCUDASharedAttr(cursor clang.Cursor) bool {
	found := false
	cursor.Visit(func(c, p clang.Cursor) clang.ChildVisitResult {
		if c.Kind() == clang.Cursor_CUDASharedAttr {
			found = true
			return clang.ChildVisit_Break
		}
		return clang.ChildVisit_Continue
	})
	return found
}
