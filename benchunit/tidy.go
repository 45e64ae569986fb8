// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"strings"
	"sync"
)

type tidyEntry struct {
	tidied string
	factor float64
}

var tidyCache sync.Map // unit string -> tidyEntry

// TidyUnit returns the tidied version of unit and the multiplicative
// factor to convert a value in unit "unit" to a value in unit
// "tidied". Tidying normalizes pre-scaled units to base units, such as
// "ns" to "sec" and "MB" to "B", so that a Scaler applied afterwards
// doesn't produce nonsense like "megananoseconds".
func TidyUnit(unit string) (tidied string, factor float64) {
	// Fast path for units from the testing package.
	switch unit {
	case "ns/op":
		return "sec/op", 1e-9
	case "MB/s":
		return "B/s", 1e6
	case "B/op", "allocs/op", "":
		return unit, 1
	}
	if !strings.Contains(unit, "ns") && !strings.Contains(unit, "MB") {
		return unit, 1
	}

	if e, ok := tidyCache.Load(unit); ok {
		e := e.(tidyEntry)
		return e.tidied, e.factor
	}
	tidied, factor = tidy(unit)
	tidyCache.Store(unit, tidyEntry{tidied, factor})
	return
}

func tidy(unit string) (string, float64) {
	factor := 1.0
	var b strings.Builder
	last := 0
	for _, t := range tokens(unit) {
		if t.denom {
			// Don't edit in the denominator.
			continue
		}
		var repl string
		switch t.text {
		case "ns":
			repl, factor = "sec", factor/1e9
		case "MB":
			repl, factor = "B", factor*1e6
		default:
			continue
		}
		b.WriteString(unit[last:t.pos])
		b.WriteString(repl)
		last = t.pos + len(t.text)
	}
	b.WriteString(unit[last:])
	return b.String(), factor
}
