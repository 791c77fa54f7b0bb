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
// Package hipifylog provides the diagnostic and trace output used across
// the translator. It mirrors the teacher's split between a plain
// diagnostic printer and glog-backed verbose tracing: simple warnings go
// straight to stderr in the fixed format the tool's consumers parse,
// while anything finer-grained is gated behind glog's verbosity flags.
package hipifylog

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/golang/glog"
)

var mu sync.Mutex

// Warning prints a diagnostic in the fixed [HIPIFY] warning format to
// stderr. file/line/col identify the source location of the offending
// reference; msg is the human-readable complaint.
func Warning(file string, line, col int, msg string) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "[HIPIFY] warning: %s:%d:%d: %s\n", file, line, col, msg)
	mu.Lock()
	os.Stderr.Write(buf.Bytes())
	mu.Unlock()
}

// WarningNoLocation prints a diagnostic with no associated source
// position, for cases the front end itself failed to locate precisely.
func WarningNoLocation(msg string) {
	mu.Lock()
	fmt.Fprintf(os.Stderr, "[HIPIFY] warning: %s\n", msg)
	mu.Unlock()
}

// Tracef logs a verbose trace message, shown only when -v is at least
// the given level. Kept separate from Warning because trace output is
// for translator developers, not for consumers of the rewritten source.
func Tracef(level glog.Level, f string, a ...interface{}) {
	if glog.V(level) {
		glog.Infof(f, a...)
	}
}

// Errorf logs an unconditional error, for conditions severe enough that
// a developer running with default verbosity should still see them.
func Errorf(f string, a ...interface{}) {
	glog.Errorf(f, a...)
}
