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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/rocm-tools/hipify/internal/driver"
	"github.com/rocm-tools/hipify/internal/stats"
)

var (
	outputFlag     string
	inplaceFlag    bool
	noBackupFlag   bool
	noOutputFlag   bool
	printStatsFlag bool
	statsCSVFlag   string
	examineFlag    bool
	jobsFlag       int
	diffFlag       bool
)

func init() {
	flag.StringVar(&outputFlag, "o", "", "Output path; forbidden with multiple inputs or with -inplace/-no-output.")
	flag.BoolVar(&inplaceFlag, "inplace", false, "Overwrite input; save original as <src>.prehip unless -no-backup.")
	flag.BoolVar(&noBackupFlag, "no-backup", false, "Skip the .prehip copy made by -inplace.")
	flag.BoolVar(&noOutputFlag, "no-output", false, "Discard translated output (analysis only).")
	flag.BoolVar(&printStatsFlag, "print-stats", false, "Emit per-file and aggregate stats to stderr.")
	flag.StringVar(&statsCSVFlag, "o-stats", "", "Also emit stats as CSV to this file.")
	flag.BoolVar(&examineFlag, "examine", false, "Shorthand for -no-output -print-stats.")
	flag.IntVar(&jobsFlag, "j", 1, "Number of files translated concurrently.")
	flag.BoolVar(&diffFlag, "diff", false, "Print a diff of original vs. rewritten content to stderr per file.")
}

func main() {
	flag.Parse()
	srcs := flag.Args()

	if examineFlag {
		noOutputFlag = true
		printStatsFlag = true
	}

	opts := driver.Options{
		Output:      outputFlag,
		InPlace:     inplaceFlag,
		NoBackup:    noBackupFlag,
		NoOutput:    noOutputFlag,
		Jobs:        jobsFlag,
		CompileArgs: nil,
		Diff:        diffFlag,
	}
	if err := opts.Validate(len(srcs)); err != nil {
		fmt.Fprintf(os.Stderr, "hipify: %v\n", err)
		os.Exit(1)
	}
	if len(srcs) == 0 {
		fmt.Fprintln(os.Stderr, "hipify: no input files")
		os.Exit(1)
	}

	collector := stats.NewCollector()
	d := driver.New(opts, collector)
	code := d.Run(srcs)

	if printStatsFlag {
		collector.PrintAll(os.Stderr)
	}
	if statsCSVFlag != "" {
		f, err := os.Create(statsCSVFlag)
		if err != nil {
			glog.Errorf("hipify: %v", err)
		} else {
			if err := collector.WriteCSV(f); err != nil {
				glog.Errorf("hipify: %v", err)
			}
			f.Close()
		}
	}

	os.Exit(code)
}
