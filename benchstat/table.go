// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

//go:generate go run mktables.go

import (
	"fmt"
	"math"
)

// maxTableDF is the largest degrees of freedom in TTable.
const maxTableDF = 100

// CriticalT returns the two-tailed critical t-value for df degrees of
// freedom at confidence c. Degrees of freedom beyond the table use
// the normal approximation.
func CriticalT(df int, c Confidence) float64 {
	if df <= 0 || df > maxTableDF {
		df = 0
	}
	return TTable[df][c]
}

// CompareTable computes the difference between a and b using a
// Student's t-test with pooled variance and critical values from
// TTable.
//
// This is a lower-fidelity alternative to Compare that needs no
// special functions: the degrees of freedom are (a.N-1)+(b.N-1)
// truncated to an integer rather than the Welch-Satterthwaite
// estimate, confidence is limited to the discrete levels, and the
// result's PValue and Beta are NaN because they cannot be derived
// from the table.
func CompareTable(a, b Summary, c Confidence) (Difference, error) {
	if c < 0 || c >= numConfidence {
		return Difference{}, fmt.Errorf("%w: %v", ErrInvalidParameter, c)
	}
	if err := a.Validate(); err != nil {
		return Difference{}, err
	}
	if err := b.Validate(); err != nil {
		return Difference{}, err
	}

	dof := (a.N - 1) + (b.N - 1)
	pooled := ((a.N-1)*a.Variance + (b.N-1)*b.Variance) / dof
	stdErr := math.Sqrt(pooled * (1/a.N + 1/b.N))
	t := CriticalT(int(dof), c)

	effect := math.Abs(a.Mean - b.Mean)
	return Difference{
		Effect:        effect,
		EffectSize:    effect / math.Sqrt(pooled),
		CriticalValue: t * stdErr,
		PValue:        math.NaN(),
		Alpha:         1 - c.Percent()/100,
		Beta:          math.NaN(),
	}, nil
}

// TableComparer adapts CompareTable to the Comparator interface. The
// confidence percentage passed to Compare must be one of the levels
// in Confidences.
type TableComparer struct{}

func (TableComparer) Compare(a, b Summary, confidence float64) (Difference, error) {
	if err := checkConfidence(confidence); err != nil {
		return Difference{}, err
	}
	for _, c := range Confidences {
		if c.Percent() == confidence {
			return CompareTable(a, b, c)
		}
	}
	return Difference{}, fmt.Errorf("%w: confidence %v%% is not in the critical-value table", ErrInvalidParameter, confidence)
}
