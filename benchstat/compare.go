// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchstat compares samples of measurements using a
// two-tailed Welch's t-test.
//
// A typical use summarizes a control sample and one or more
// experiment samples and compares the control against each
// experiment:
//
//	ctrl := benchstat.Summarize(control)
//	exp := benchstat.Summarize(experiment)
//	diff, err := benchstat.Compare(ctrl, exp, 95)
//	if err == nil && diff.IsSignificant() {
//		...
//	}
package benchstat

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidParameter indicates a confidence level outside
	// (0, 100), or an unrecognized confidence level name.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDegenerateSample indicates a Summary of fewer than two
	// measurements, whose variance is undefined.
	ErrDegenerateSample = errors.New("degenerate sample")

	// ErrDistribution indicates that a test distribution could not
	// be constructed, typically because both samples have zero
	// variance.
	ErrDistribution = errors.New("invalid distribution")
)

// tails is the number of distribution tails used to determine
// significance. The null hypothesis is that the means do not differ
// in either direction.
const tails = 2

// A Difference is the statistical difference between two Summaries.
type Difference struct {
	// Effect is the absolute difference between the means.
	Effect float64

	// EffectSize is Effect normalized by the pooled standard
	// deviation (Cohen's d).
	EffectSize float64

	// CriticalValue is the smallest Effect that is significant at
	// the requested confidence level.
	CriticalValue float64

	// PValue is the probability of observing an effect at least
	// this large if the means were equal. It is NaN for
	// differences computed from a critical-value table.
	PValue float64

	// Alpha is the significance level of the test, the maximum
	// PValue that is considered significant.
	Alpha float64

	// Beta is the statistical power term of the test at this
	// effect size and these sample sizes. It is NaN for
	// differences computed from a critical-value table.
	Beta float64
}

// IsSignificant reports whether the difference is statistically
// significant. An Effect exactly equal to CriticalValue is not.
func (d Difference) IsSignificant() bool {
	return d.Effect > d.CriticalValue
}

// A Comparator compares two Summaries at a confidence level given as
// a percentage.
type Comparator interface {
	Compare(a, b Summary, confidence float64) (Difference, error)
}

// A Comparer performs Welch's t-tests using the distributions
// supplied by Oracle. A nil Oracle means DefaultOracle.
type Comparer struct {
	Oracle Oracle
}

// Compare computes the difference between a and b using Welch's
// t-test with DefaultOracle.
func Compare(a, b Summary, confidence float64) (Difference, error) {
	return Comparer{}.Compare(a, b, confidence)
}

func checkConfidence(confidence float64) error {
	if !(0 < confidence && confidence < 100) {
		return fmt.Errorf("%w: confidence %v not in (0, 100)", ErrInvalidParameter, confidence)
	}
	return nil
}

// Compare computes the difference between a and b using a two-tailed
// Welch's t-test at the given confidence percentage, which must be
// in the open interval (0, 100). Both summaries must have at least
// two measurements.
func (c Comparer) Compare(a, b Summary, confidence float64) (Difference, error) {
	if err := checkConfidence(confidence); err != nil {
		return Difference{}, err
	}
	if err := a.Validate(); err != nil {
		return Difference{}, err
	}
	if err := b.Validate(); err != nil {
		return Difference{}, err
	}
	oracle := c.Oracle
	if oracle == nil {
		oracle = DefaultOracle
	}

	alpha := 1 - confidence/100

	// Welch-Satterthwaite degrees of freedom.
	sa, sb := a.Variance/a.N, b.Variance/b.N
	nu := (sa + sb) * (sa + sb) /
		(a.Variance*a.Variance/(a.N*a.N*(a.N-1)) + b.Variance*b.Variance/(b.N*b.N*(b.N-1)))

	t, err := oracle.StudentsT(nu)
	if err != nil {
		return Difference{}, err
	}
	tHyp := t.Quantile(1 - alpha/tails)

	effect := math.Abs(a.Mean - b.Mean)
	stdErr := math.Sqrt(sa + sb)
	tExp := effect / stdErr
	pValue := t.CDF(-tExp) * tails

	// Cohen's d, pooling by the mean of the variances.
	stdDev := math.Sqrt((a.Variance + b.Variance) / 2)
	effectSize := effect / stdDev

	norm := oracle.Normal()
	z := effect / (stdDev * math.Sqrt(1/a.N+1/b.N))
	za := norm.Quantile(1 - alpha/tails)
	beta := norm.CDF(z-za) - norm.CDF(-z-za)

	return Difference{
		Effect:        effect,
		EffectSize:    effectSize,
		CriticalValue: tHyp * stdErr,
		PValue:        pValue,
		Alpha:         alpha,
		Beta:          beta,
	}, nil
}
