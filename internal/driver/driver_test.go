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

package driver

import "testing"

func TestOptionsValidate(t *testing.T) {
	for _, tc := range []struct {
		name     string
		opts     Options
		numFiles int
		wantErr  bool
	}{
		{"defaults ok", Options{Jobs: 1}, 1, false},
		{"o with multiple inputs", Options{Output: "out.hip", Jobs: 1}, 2, true},
		{"o with inplace", Options{Output: "out.hip", InPlace: true, Jobs: 1}, 1, true},
		{"o with no-output", Options{Output: "out.hip", NoOutput: true, Jobs: 1}, 1, true},
		{"no-output with inplace", Options{NoOutput: true, InPlace: true, Jobs: 1}, 1, true},
		{"zero jobs", Options{Jobs: 0}, 1, true},
		{"examine shape ok", Options{NoOutput: true, Jobs: 1}, 3, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate(tc.numFiles)
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestDestinationFor(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		opts Options
		want string
	}{
		{"default suffix", "k.cu", Options{}, "k.cu.hip"},
		{"explicit output", "k.cu", Options{Output: "dst.cpp"}, "dst.cpp"},
		{"in place", "k.cu", Options{InPlace: true}, "k.cu"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := destinationFor(tc.src, &tc.opts); got != tc.want {
				t.Errorf("destinationFor() = %q, want %q", got, tc.want)
			}
		})
	}
}
