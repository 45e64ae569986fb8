// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Distribution is a sample of measurements, sorted, along with its
// center and Summary.
type Distribution struct {
	Values []float64
	Center float64

	Summary Summary
}

// NewDistribution returns the Distribution of values. It takes
// ownership of values and sorts it in place.
func NewDistribution(values []float64) *Distribution {
	// Summarize before sorting so the accumulation order is the
	// observation order.
	sum := Summarize(values)
	samp := stats.Sample{Xs: values}
	// Speed up order statistics.
	samp.Sort()
	return &Distribution{
		Values:  samp.Xs,
		Center:  samp.Quantile(0.5),
		Summary: sum,
	}
}

// A Dist is a continuous univariate probability distribution.
type Dist interface {
	// CDF returns Pr[X <= x].
	CDF(x float64) float64
	// Quantile returns the x such that CDF(x) == p, for p in (0, 1).
	Quantile(p float64) float64
}

// An Oracle constructs the distributions needed by a Welch's t-test.
type Oracle interface {
	// StudentsT returns a Student's t-distribution with location 0,
	// scale 1 and nu degrees of freedom. It returns an error
	// wrapping ErrDistribution if nu is not a positive, finite
	// number.
	StudentsT(nu float64) (Dist, error)

	// Normal returns the standard normal distribution.
	Normal() Dist
}

func checkDOF(nu float64) error {
	if math.IsNaN(nu) || math.IsInf(nu, 0) || nu <= 0 {
		return fmt.Errorf("%w: Student's t with %v degrees of freedom", ErrDistribution, nu)
	}
	return nil
}

// GonumOracle computes distributions using gonum's distuv package.
type GonumOracle struct{}

func (GonumOracle) StudentsT(nu float64) (Dist, error) {
	if err := checkDOF(nu); err != nil {
		return nil, err
	}
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nu}, nil
}

func (GonumOracle) Normal() Dist {
	return distuv.UnitNormal
}

// MoremathOracle computes distributions using go-moremath.
//
// Student's t quantiles are found by numerically inverting the CDF,
// so they lose relative precision near p = 0.5, where the quantile is
// close to zero. At confidence levels far below 1%, critical values
// may differ from GonumOracle's by tens of percent, although only by
// about 1e-7 in absolute terms. Use GonumOracle where that matters.
type MoremathOracle struct{}

func (MoremathOracle) StudentsT(nu float64) (Dist, error) {
	if err := checkDOF(nu); err != nil {
		return nil, err
	}
	t := stats.TDist{V: nu}
	return moremathDist{t.CDF, stats.InvCDF(t)}, nil
}

func (MoremathOracle) Normal() Dist {
	return moremathDist{stats.StdNormal.CDF, stats.StdNormal.InvCDF}
}

type moremathDist struct {
	cdf, inv func(float64) float64
}

func (d moremathDist) CDF(x float64) float64      { return d.cdf(x) }
func (d moremathDist) Quantile(p float64) float64 { return d.inv(p) }

// DefaultOracle is the Oracle used by Compare.
var DefaultOracle Oracle = GonumOracle{}
