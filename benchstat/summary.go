// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"fmt"
	"iter"
	"math"
)

// A Summary is the first two central moments of a sample.
//
// N is a float64 so it can be used directly in the arithmetic of a
// comparison.
type Summary struct {
	// N is the number of measurements in the sample.
	N float64
	// Mean is the arithmetic mean of the measurements.
	Mean float64
	// Variance is the sample variance, with Bessel's correction.
	Variance float64
}

// Summarize computes the Summary of xs in a single pass.
//
// If len(xs) < 2, the variance is not meaningful (it is -0 for an
// empty sample and NaN for a single measurement). Use Validate to
// reject such summaries.
func Summarize(xs []float64) Summary {
	var acc accumulator
	for _, x := range xs {
		acc.add(x)
	}
	return acc.summary()
}

// SummarizeSeq is like Summarize, but consumes the values of seq in
// order. seq is iterated exactly once.
func SummarizeSeq(seq iter.Seq[float64]) Summary {
	var acc accumulator
	for x := range seq {
		acc.add(x)
	}
	return acc.summary()
}

// accumulator implements Welford's online algorithm.
type accumulator struct {
	n, mean, m2 float64
}

func (a *accumulator) add(x float64) {
	a.n++
	delta := x - a.mean
	a.mean += delta / a.n
	// This must use the updated mean.
	a.m2 += delta * (x - a.mean)
}

func (a *accumulator) summary() Summary {
	return Summary{N: a.n, Mean: a.mean, Variance: a.m2 / (a.n - 1)}
}

// StdDev returns the sample standard deviation.
func (s Summary) StdDev() float64 {
	return math.Sqrt(s.Variance)
}

// StdErr returns the standard error of the mean.
func (s Summary) StdErr() float64 {
	return s.StdDev() / math.Sqrt(s.N)
}

// Validate returns an error wrapping ErrDegenerateSample if s was
// computed from fewer than two measurements or from measurements
// that are not all finite, and nil otherwise.
func (s Summary) Validate() error {
	if !(s.N >= 2) {
		return fmt.Errorf("%w: need at least 2 measurements, have %v", ErrDegenerateSample, s.N)
	}
	if !isFinite(s.Mean) || !isFinite(s.Variance) {
		return fmt.Errorf("%w: measurements must be finite, got mean %v and variance %v", ErrDegenerateSample, s.Mean, s.Variance)
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%v mean=%v variance=%v", s.N, s.Mean, s.Variance)
}
