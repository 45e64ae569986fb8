// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"fmt"
	"math"
	"strconv"
)

// Scaler represents a scaling factor for a number and its scientific
// representation.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Prefix (e.g., 1 k => 1000)
	Prefix string  // Unit prefix (SI or binary)
}

// Format formats val and appends the unit prefix according to the
// given scale.
func (s Scaler) Format(val float64) string {
	buf := strconv.AppendFloat(make([]byte, 0, 20), val/s.Factor, 'f', s.Prec, 64)
	return string(append(buf, s.Prefix...))
}

// NoOpScaler is a Scaler that formats numbers with the smallest
// number of digits necessary to capture the exact value, and no
// prefix. This is intended for output consumed by another program.
var NoOpScaler = Scaler{-1, 1, ""}

// A magnitude is a unit prefix and the smallest values that print
// with 0, 1 and 2 digits after the decimal point at that prefix.
type magnitude struct {
	factor float64
	prefix string
	min    [3]float64 // thresholds for 100, 10.0, 1.00
}

var (
	siMagnitudes  = magnitudes(10, 3, 12, []string{"T", "G", "M", "k", "", "m", "µ", "n"})
	iecMagnitudes = magnitudes(2, 10, 40, []string{"Ti", "Gi", "Mi", "Ki", "", "/Ki", "/Mi", "/Gi", "/Ti"})
)

// magnitudes builds the magnitude table for prefixes, the first of
// which is base**top, each subsequent one a factor of base**step
// smaller.
//
// The thresholds are the values that round up to 100, 10.0 and 1.00
// when printed. They are derived from the printed forms so they agree
// exactly with how Format rounds.
func magnitudes(base float64, step, top int, prefixes []string) []magnitude {
	out := make([]magnitude, 0, len(prefixes))
	exp := top
	for _, p := range prefixes {
		factor := math.Pow(base, float64(exp))
		m := magnitude{factor: factor, prefix: p}
		for i, t := range []string{"99.95", "9.995", ".9995"} {
			if base == 10 {
				m.min[i], _ = strconv.ParseFloat(fmt.Sprintf("%se%d", t, exp), 64)
			} else {
				v, _ := strconv.ParseFloat(t, 64)
				m.min[i] = v * factor
			}
		}
		out = append(out, m)
		exp -= step
	}
	return out
}

// Scale formats val using at least three significant digits,
// appending an SI or binary prefix.
func Scale(val float64, cls UnitClass) string {
	return CommonScale([]float64{val}, cls).Format(val)
}

// CommonScale returns a common Scaler to apply to all values in vals.
// This scale will show at least three significant digits for every
// value. The scale is chosen by the non-zero value closest to zero.
func CommonScale(vals []float64, cls UnitClass) Scaler {
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && !math.IsNaN(v) && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 || math.IsInf(min, 0) {
		return Scaler{2, 1, ""}
	}

	var mags []magnitude
	switch cls {
	case UnitClassSI:
		mags = siMagnitudes
	case UnitClassIEC:
		mags = iecMagnitudes
	default:
		panic(fmt.Sprintf("bad UnitClass %v", cls))
	}

	for i, m := range mags {
		for prec := 0; prec < 3; prec++ {
			if min >= m.min[prec] || (prec == 2 && i == len(mags)-1) {
				return Scaler{prec, m.factor, m.prefix}
			}
		}
	}
	panic("not reachable")
}
