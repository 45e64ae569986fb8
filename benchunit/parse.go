// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit works with the units of measurements.
//
// It provides functions for classifying and normalizing units and for
// printing numbers in those units.
package benchunit

import (
	"fmt"
	"unicode"
)

// UnitClass distinguishes units that should be scaled differently.
type UnitClass int

const (
	// UnitClassSI indicates values of a given unit should be
	// scaled by powers of 1000 and use the International System
	// of Units SI prefixes.
	UnitClassSI UnitClass = iota
	// UnitClassIEC indicates values of a given unit should be
	// scaled by powers of 1024 and use the International
	// Electrotechnical Commission binary prefixes.
	UnitClassIEC
)

func (c UnitClass) String() string {
	switch c {
	case UnitClassSI:
		return "UnitClassSI"
	case UnitClassIEC:
		return "UnitClassIEC"
	}
	return fmt.Sprintf("UnitClass(%d)", int(c))
}

// UnitClassOf returns the UnitClass of unit. If unit contains some
// measure of bytes in the numerator, this is UnitClassIEC. Otherwise,
// it is UnitClassSI.
func UnitClassOf(unit string) UnitClass {
	for _, t := range tokens(unit) {
		if !t.denom && (t.text == "B" || t.text == "MB" || t.text == "bytes") {
			return UnitClassIEC
		}
	}
	return UnitClassSI
}

// A token is one factor of a unit, such as "ns" in "ns/op".
type token struct {
	text  string
	pos   int  // byte offset in the unit
	denom bool // token is in the denominator
}

func isSep(r rune) bool {
	return r == '*' || r == '/' || r == '-' || unicode.IsSpace(r)
}

// tokens splits unit into its factors. "/" starts the denominator and
// "*" returns to the numerator.
func tokens(unit string) []token {
	var toks []token
	denom := false
	start := -1
	for i, r := range unit {
		if !isSep(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			toks = append(toks, token{unit[start:i], start, denom})
			start = -1
		}
		switch r {
		case '/':
			denom = true
		case '*':
			denom = false
		}
	}
	if start >= 0 {
		toks = append(toks, token{unit[start:], start, denom})
	}
	return toks
}
