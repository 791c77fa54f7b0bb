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
// Package renametable holds the Rename Table: three read-only maps,
// keyed by SRC name, that the rewrite engine consults to translate
// identifiers, type names, and include paths. Tables are immutable once
// built; RenameEntry values are never mutated after construction,
// matching spec.md §3's ownership rule.
package renametable

// ConvType tags what kind of site a RenameEntry was matched from. The
// set intentionally exceeds what any single handler produces, since the
// same entry can be reached from more than one site (an identifier that
// is also a type name, for instance).
type ConvType string

const (
	ConvInclude ConvType = "include"
	ConvType_   ConvType = "type" // trailing underscore avoids colliding with the ConvType type name itself
	ConvKernel  ConvType = "kernel"
	ConvMemory  ConvType = "memory"
	ConvLiteral ConvType = "literal"
	ConvError   ConvType = "error"
	ConvEvent   ConvType = "event"
	ConvStream  ConvType = "stream"
	ConvBuiltin ConvType = "builtin"
	ConvEnum    ConvType = "enum_const"
	ConvOther   ConvType = "other"
)

// APIFamily tags which CUDA namespace a RenameEntry belongs to, letting
// stats break hit counts down per family as spec.md §3 and §8 scenario 7
// require.
type APIFamily string

const (
	FamilyRuntime APIFamily = "runtime"
	FamilyDriver  APIFamily = "driver"
	FamilyBLAS    APIFamily = "blas"
	FamilyRAND    APIFamily = "rand"
	FamilyFFT     APIFamily = "fft"
	FamilySparse  APIFamily = "sparse"
	FamilyComplex APIFamily = "complex"
	FamilyBuiltin APIFamily = "builtin"
	FamilyOther   APIFamily = "other"
)

// Entry is an immutable rename-table record.
type Entry struct {
	DstName     string
	ConvType    ConvType
	APIFamily   APIFamily
	Unsupported bool
}

// Tables is the full set of lookup points. The three maps are
// independent because identifier, type, and include spellings occupy
// different namespaces that sometimes collide (cudaStream_t is both a
// type and, rarely, matched as a bare identifier reference).
type Tables struct {
	Ident   map[string]Entry
	Type    map[string]Entry
	Include map[string]Entry
}

// LookupIdent looks up name in the identifier table.
func (t *Tables) LookupIdent(name string) (Entry, bool) {
	e, ok := t.Ident[name]
	return e, ok
}

// LookupType looks up name in the type table.
func (t *Tables) LookupType(name string) (Entry, bool) {
	e, ok := t.Type[name]
	return e, ok
}

// LookupInclude looks up path in the include table.
func (t *Tables) LookupInclude(path string) (Entry, bool) {
	e, ok := t.Include[path]
	return e, ok
}

// RuntimeHeader is the single DST runtime header inserted at offset 0 of
// any file that receives at least one edit, per spec.md §4.3.
const RuntimeHeader = "hip/hip_runtime.h"

// IdentPrefix is the two-character SRC naming prefix the String Literal
// Rewriter anchors on (spec.md §4.2).
const IdentPrefix = "cu"

// New builds the process-wide, read-only rename tables. Called once at
// startup; the result is safe to share across goroutines without
// synchronization because nothing ever mutates it afterward.
func New() *Tables {
	t := &Tables{
		Ident:   make(map[string]Entry),
		Type:    make(map[string]Entry),
		Include: make(map[string]Entry),
	}
	for _, e := range identEntries {
		t.Ident[e.src] = Entry{DstName: e.dst, ConvType: e.conv, APIFamily: e.family, Unsupported: e.unsupported}
	}
	for _, e := range typeEntries {
		t.Type[e.src] = Entry{DstName: e.dst, ConvType: ConvType_, APIFamily: e.family, Unsupported: e.unsupported}
	}
	for _, e := range includeEntries {
		t.Include[e.src] = Entry{DstName: e.dst, ConvType: ConvInclude, APIFamily: e.family, Unsupported: e.unsupported}
	}
	return t
}

type rawEntry struct {
	src, dst    string
	conv        ConvType
	family      APIFamily
	unsupported bool
}

type rawTypeEntry struct {
	src, dst    string
	family      APIFamily
	unsupported bool
}

type rawIncludeEntry struct {
	src, dst    string
	family      APIFamily
	unsupported bool
}
