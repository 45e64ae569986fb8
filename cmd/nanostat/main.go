// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command nanostat checks for statistically significant differences
// between sets of measurements.
//
// Usage:
//
//	nanostat [flags] control experiment...
//
// Each input file holds either one measurement per line or Go
// benchmark results (https://golang.org/design/14313-benchmark-format).
// nanostat compares the control against each experiment using a
// two-tailed Welch's t-test and reports, for each, whether the means
// differ at the requested confidence level.
//
// The flags are:
//
//	-c, --confidence level
//		confidence level: P80, P90, P95, P98, P99, P995, or (unless
//		--oracle=table) any percentage in (0, 100); default P95.
//	--oracle name
//		how to compute critical values: gonum (default) or moremath
//		evaluate Student's t-distribution; table looks values up in
//		a fixed table and cannot compute p-values.
//	--format name
//		input format: auto (default), values, or bench.
//	--config file
//		YAML file of default settings (also $NANOSTAT_CONFIG).
//	-j, --jobs n
//		number of comparisons to run concurrently; 0 or less, the
//		default, means GOMAXPROCS.
//	--filter query
//		compare only the measurements matching query, such as
//		".name:Encode.* -.unit:B/op". See package filter for the
//		query syntax.
//	--row key
//		the result key that names each row: .fullname (default),
//		.name, /key for a sub-benchmark key, or a file
//		configuration key.
//	-v, --verbose
//		log debugging information.
//
// Settings may also come from the environment as NANOSTAT_CONFIDENCE,
// NANOSTAT_ORACLE, NANOSTAT_FORMAT, NANOSTAT_JOBS, NANOSTAT_FILTER,
// NANOSTAT_ROW and NANOSTAT_LOG_LEVEL, and from a .env file in the
// current directory.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(exitCode(err))
	}
}
