// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import "testing"

func TestUnitClassOf(t *testing.T) {
	test := func(unit string, cls UnitClass) {
		t.Helper()
		if got := UnitClassOf(unit); got != cls {
			t.Errorf("for %s, want %s, got %s", unit, cls, got)
		}
	}
	test("ns/op", UnitClassSI)
	test("sec/op", UnitClassSI)
	test("sec/B", UnitClassSI)
	test("sec/disk-B", UnitClassSI)
	test("", UnitClassSI)

	test("B/op", UnitClassIEC)
	test("bytes/op", UnitClassIEC)
	test("B/s", UnitClassIEC)
	test("sec/B*B", UnitClassIEC) // Discouraged
	test("disk-B/sec", UnitClassIEC)
}

func TestTidyUnit(t *testing.T) {
	test := func(unit, tidied string, factor float64) {
		t.Helper()
		gotUnit, gotFactor := TidyUnit(unit)
		if gotUnit != tidied || gotFactor != factor {
			t.Errorf("for %s, got %s*%v, want %s*%v", unit, gotUnit, gotFactor, tidied, factor)
		}
	}
	test("ns/op", "sec/op", 1e-9)
	test("MB/s", "B/s", 1e6)
	test("B/op", "B/op", 1)
	test("ns/GC", "sec/GC", 1e-9)
	test("sec/ns", "sec/ns", 1)
	test("MB*ns/op", "B*sec/op", 1e6/1e9)
	// Second lookup comes from the cache.
	test("ns/GC", "sec/GC", 1e-9)
}
