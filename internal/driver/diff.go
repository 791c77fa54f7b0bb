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
package driver

import (
	"fmt"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// printDiff implements the (added) -diff flag: an inline view of what
// one file's rewrite changed, with insertions and deletions marked by
// terminal colors (diffmatchpatch's DiffPrettyText), for manual review.
// It never affects exit codes or written output.
func printDiff(src, before, after string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	fmt.Fprintf(os.Stderr, "--- %s\n", src)
	fmt.Fprintln(os.Stderr, dmp.DiffPrettyText(diffs))
}
