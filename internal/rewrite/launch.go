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

// handleLaunch implements spec.md §4.4's launch handler: rewriting the
// non-standard `kernel<<<grid, block, shared, stream>>>(args)` syntax
// into a hipLaunchKernelGGL call.
//
// Clang represents a CUDAKernelCallExpr's direct children as [callee,
// config-call-expr, kernelArg0, kernelArg1, ...], where the config call
// is itself a plain CallExpr to the synthetic cudaConfigureCall with
// exactly four arguments — grid-dim, block-dim, dynamic shared bytes,
// stream — the last two defaulted when the source omits them. That
// shape is what this handler walks; it is not exposed as a dedicated
// libclang accessor, so the walk itself is the grounding this code
// relies on (see DESIGN.md).
func (v *visitor) handleLaunch(cursor clang.Cursor) {
	var children []clang.Cursor
	cursor.Visit(func(c, p clang.Cursor) clang.ChildVisitResult {
		children = append(children, c)
		return clang.ChildVisit_Continue
	})
	if len(children) < 2 {
		return
	}
	callee := children[0]
	config := children[1]
	kernelArgs := children[2:]

	var configArgs []clang.Cursor
	config.Visit(func(c, p clang.Cursor) clang.ChildVisitResult {
		configArgs = append(configArgs, c)
		return clang.ChildVisit_Continue
	})
	if len(configArgs) < 5 {
		// callee + 4 config arguments expected; anything short of that
		// means this config call doesn't match the shape assumed above.
		return
	}
	gridArg := configArgs[1]
	blockArg := configArgs[2]
	sharedArg := configArgs[3]
	streamArg := configArgs[4]

	calleeText := v.sourceText(callee)
	gridText := v.sourceText(gridArg)
	blockText := v.sourceText(blockArg)
	sharedText := argTextOrZero(v, sharedArg)
	streamText := argTextOrZero(v, streamArg)

	argsText := make([]string, 0, len(kernelArgs))
	for _, a := range kernelArgs {
		argsText = append(argsText, v.sourceText(a))
	}

	var b strings.Builder
	b.WriteString("hipLaunchKernelGGL(")
	b.WriteString(calleeText)
	b.WriteString(", dim3(")
	b.WriteString(gridText)
	b.WriteString("), dim3(")
	b.WriteString(blockText)
	b.WriteString("), ")
	b.WriteString(sharedText)
	b.WriteString(", ")
	b.WriteString(streamText)
	for _, a := range argsText {
		b.WriteString(", ")
		b.WriteString(a)
	}
	b.WriteString(")")

	startOff, endOff, ok := v.writeSpan(cursor)
	if !ok {
		return
	}

	loc := v.locOf(cursor)
	newText := b.String()
	v.set.Insert(edit.Edit{Offset: startOff, OldLen: endOff - startOff, NewText: newText})
	v.engine.countHit(string(renametable.ConvKernel), "", calleeText, loc.Line, len(newText)-int(endOff-startOff))
}

// writeSpan resolves the full replacement span for cursor — from the
// first token's start to the last token's end — applying the write-
// range rule from spec.md §4.4: spelling locations when either endpoint
// sits inside a macro body expansion, file locations otherwise.
func (v *visitor) writeSpan(cursor clang.Cursor) (start, end uint32, ok bool) {
	tokens := v.tu.Tokenize(cursor.Extent())
	if len(tokens) == 0 {
		return 0, 0, false
	}
	raw := v.tu.Raw()
	startLoc := tokens[0].Extent(raw).Start()
	endLoc := tokens[len(tokens)-1].Extent(raw).End()
	inMacro := frontend.IsMacroLocation(startLoc) || frontend.IsMacroLocation(endLoc)
	s := frontend.WriteLoc(startLoc, inMacro).Offset
	e := frontend.WriteLoc(endLoc, inMacro).Offset
	if e < s {
		return 0, 0, false
	}
	return s, e, true
}

// argTextOrZero substitutes the literal "0" when the source omitted the
// argument (a defaulted dynamic-shared-bytes or stream parameter),
// detected by the sub-expression having no real source text of its own.
func argTextOrZero(v *visitor, c clang.Cursor) string {
	t := v.sourceText(c)
	if strings.TrimSpace(t) == "" {
		return "0"
	}
	return t
}
