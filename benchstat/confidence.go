// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"fmt"
	"strconv"
	"strings"
)

// A Confidence is one of the discrete confidence levels of the
// critical-value table. Its value is the table column.
type Confidence int

const (
	P80 Confidence = iota
	P90
	P95
	P98
	P99
	P995

	numConfidence = iota
)

var confidencePercent = [numConfidence]float64{80, 90, 95, 98, 99, 99.5}

// Confidences lists all confidence levels in increasing order.
var Confidences = []Confidence{P80, P90, P95, P98, P99, P995}

// Percent returns c as a percentage, such as 95 for P95.
func (c Confidence) Percent() float64 {
	if c < 0 || c >= numConfidence {
		panic(fmt.Sprintf("bad Confidence %d", int(c)))
	}
	return confidencePercent[c]
}

// Name returns the symbolic name of c, such as "P995".
func (c Confidence) Name() string {
	if c < 0 || c >= numConfidence {
		return fmt.Sprintf("Confidence(%d)", int(c))
	}
	return "P" + strings.Replace(strconv.FormatFloat(confidencePercent[c], 'f', -1, 64), ".", "", 1)
}

func (c Confidence) String() string {
	if c < 0 || c >= numConfidence {
		return fmt.Sprintf("Confidence(%d)", int(c))
	}
	return strconv.FormatFloat(confidencePercent[c], 'f', -1, 64) + "%"
}

// ParseConfidence parses a confidence level. It accepts symbolic
// names ("P95", "p995") and percentages ("95", "95%", "99.5") of the
// levels in Confidences. Anything else is an error wrapping
// ErrInvalidParameter.
func ParseConfidence(s string) (Confidence, error) {
	str := strings.TrimSpace(s)
	if len(str) > 1 && (str[0] == 'P' || str[0] == 'p') {
		for _, c := range Confidences {
			if c.Name()[1:] == str[1:] {
				return c, nil
			}
		}
		return 0, fmt.Errorf("%w: unknown confidence level %q", ErrInvalidParameter, s)
	}
	pct, err := ParsePercent(str)
	if err != nil {
		return 0, err
	}
	for _, c := range Confidences {
		if c.Percent() == pct {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown confidence level %q", ErrInvalidParameter, s)
}

// ParsePercent parses a confidence percentage such as "95", "95%" or
// "99.9" and checks that it is in (0, 100). A symbolic level such as
// "P95" is also accepted.
func ParsePercent(s string) (float64, error) {
	str := strings.TrimSuffix(strings.TrimSpace(s), "%")
	if len(str) > 1 && (str[0] == 'P' || str[0] == 'p') {
		c, err := ParseConfidence(str)
		if err != nil {
			return 0, err
		}
		return c.Percent(), nil
	}
	pct, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad confidence %q", ErrInvalidParameter, s)
	}
	if err := checkConfidence(pct); err != nil {
		return 0, err
	}
	return pct, nil
}
