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

package renametable

import "testing"

func TestLookupIdent(t *testing.T) {
	tables := New()
	for _, tc := range []struct {
		name            string
		wantDst         string
		wantFamily      APIFamily
		wantUnsupported bool
	}{
		{"cudaMalloc", "hipMalloc", FamilyRuntime, false},
		{"cudaDeviceSynchronize", "hipDeviceSynchronize", FamilyRuntime, false},
		{"cublasSgemm", "hipblasSgemm", FamilyBLAS, false},
		{"cudaProfilerStart", "", FamilyRuntime, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e, ok := tables.LookupIdent(tc.name)
			if !ok {
				t.Fatalf("LookupIdent(%q): not found", tc.name)
			}
			if e.Unsupported != tc.wantUnsupported {
				t.Errorf("Unsupported = %v, want %v", e.Unsupported, tc.wantUnsupported)
			}
			if !tc.wantUnsupported && e.DstName != tc.wantDst {
				t.Errorf("DstName = %q, want %q", e.DstName, tc.wantDst)
			}
			if e.APIFamily != tc.wantFamily {
				t.Errorf("APIFamily = %q, want %q", e.APIFamily, tc.wantFamily)
			}
		})
	}
}

func TestLookupIdentMiss(t *testing.T) {
	tables := New()
	if _, ok := tables.LookupIdent("notARealSymbol"); ok {
		t.Error("LookupIdent(notARealSymbol): found, want miss")
	}
}

func TestLookupType(t *testing.T) {
	tables := New()
	e, ok := tables.LookupType("cudaStream_t")
	if !ok {
		t.Fatal("LookupType(cudaStream_t): not found")
	}
	if e.DstName != "hipStream_t" {
		t.Errorf("DstName = %q, want hipStream_t", e.DstName)
	}
	if e.ConvType != ConvType_ {
		t.Errorf("ConvType = %q, want %q", e.ConvType, ConvType_)
	}
}

func TestLookupInclude(t *testing.T) {
	tables := New()
	e, ok := tables.LookupInclude("cuda_runtime.h")
	if !ok {
		t.Fatal("LookupInclude(cuda_runtime.h): not found")
	}
	if e.DstName != RuntimeHeader {
		t.Errorf("DstName = %q, want %q", e.DstName, RuntimeHeader)
	}
}

func TestTablesAreIndependentNamespaces(t *testing.T) {
	tables := New()
	// cudaStream_t is a type; it must not leak into the identifier table
	// under the same spelling unless explicitly entered there too.
	_, identOK := tables.LookupIdent("cudaStream_t")
	_, typeOK := tables.LookupType("cudaStream_t")
	if !typeOK {
		t.Fatal("LookupType(cudaStream_t): not found")
	}
	if identOK {
		t.Log("cudaStream_t also present in identifier table; tables are independent by construction, not by exclusion")
	}
}
