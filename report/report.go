// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report formats benchstat comparisons for people.
package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/montanaflynn/stats"
	"golang.org/x/perf/nanostat/benchstat"
	"golang.org/x/perf/nanostat/benchunit"
)

// Text writes one paragraph per row in the format
//
//	experiment.txt:
//		Difference at 95% confidence!
//			+22.5 +/- 20.4
//			+900.00% +/- 816.72%
//			Welch's t, p = 0.039, d = 2.45, beta = 0.934
//		control 2.50 < experiment 25.00
//
// confidence is the label of the confidence level, such as "95%".
func Text(w io.Writer, rows []benchstat.Row, confidence string) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		writeParagraph(bw, row, confidence)
	}
	return bw.Flush()
}

func title(row benchstat.Row) string {
	parts := []string{row.ExperimentLabel}
	if row.Name != "" {
		parts = append(parts, row.Name)
	}
	if row.Unit != "" {
		parts = append(parts, row.Unit)
	}
	return strings.Join(parts, " ")
}

func writeParagraph(w io.Writer, row benchstat.Row, confidence string) {
	fmt.Fprintf(w, "%s:\n", title(row))
	if row.Err != nil {
		fmt.Fprintf(w, "\tCannot compare: %v\n\n", row.Err)
		return
	}

	ctl, exp := row.Old.Summary, row.New.Summary
	diff := row.Diff
	cls := benchunit.UnitClassOf(row.Unit)
	if !diff.IsSignificant() {
		fmt.Fprintf(w, "\tNo difference at %s confidence.\n\n", confidence)
		return
	}

	delta := exp.Mean - ctl.Mean
	sc := benchunit.CommonScale([]float64{delta, diff.CriticalValue}, cls)
	fmt.Fprintf(w, "\tDifference at %s confidence!\n", confidence)
	fmt.Fprintf(w, "\t\t%s +/- %s\n", signed(sc.Format(delta)), sc.Format(diff.CriticalValue))
	if ctl.Mean != 0 {
		fmt.Fprintf(w, "\t\t%+.2f%% +/- %.2f%%\n", delta/ctl.Mean*100, diff.CriticalValue/math.Abs(ctl.Mean)*100)
	}
	fmt.Fprintf(w, "\t\tWelch's t, p = %s, d = %.2f, beta = %s\n", optional(diff.PValue, 3), diff.EffectSize, optional(diff.Beta, 3))

	ms := benchunit.CommonScale([]float64{ctl.Mean, exp.Mean}, cls)
	fmt.Fprintf(w, "\tcontrol %s %s experiment %s\n\n", ms.Format(ctl.Mean), Direction(ctl.Mean, exp.Mean), ms.Format(exp.Mean))
}

// Direction returns "<" if control < experiment, ">" if control >
// experiment, and "=" if they are equal.
func Direction(control, experiment float64) string {
	switch {
	case control < experiment:
		return "<"
	case control > experiment:
		return ">"
	}
	return "="
}

func signed(s string) string {
	if strings.HasPrefix(s, "-") {
		return s
	}
	return "+" + s
}

// optional formats v with prec decimal places, or "n/a" if v is NaN.
func optional(v float64, prec int) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.*f", prec, v)
}

// Table writes rows as an aligned table of benchmark, control,
// experiment, delta and p-value columns. Values are tidied units
// scaled with SI or binary prefixes. A delta that is not significant
// is shown as "~".
func Table(w io.Writer, rows []benchstat.Row, confidence string) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	lastExp, lastUnit := "", ""
	for i, row := range rows {
		if i == 0 || row.Experiment != lastExp || row.Unit != lastUnit {
			if i > 0 {
				fmt.Fprintln(tw)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\tdelta\t\n", row.Unit, row.ControlLabel, row.ExperimentLabel)
			lastExp, lastUnit = row.Experiment, row.Unit
		}
		writeTableRow(tw, row)
	}
	if len(rows) > 0 {
		fmt.Fprintf(tw, "\n(%s confidence, Welch's t-test)\n", confidence)
	}
	return tw.Flush()
}

func writeTableRow(w io.Writer, row benchstat.Row) {
	cls := benchunit.UnitClassOf(row.Unit)
	if row.Err != nil {
		fmt.Fprintf(w, "%s\t%s\t\t\t%v\n", row.Name, center(row.Old, benchunit.CommonScale([]float64{row.Old.Center}, cls)), row.Err)
		return
	}
	sc := benchunit.CommonScale([]float64{row.Old.Center, row.New.Center}, cls)
	delta := "~"
	if row.Diff.IsSignificant() && row.Old.Summary.Mean != 0 {
		delta = fmt.Sprintf("%+.2f%%", (row.New.Summary.Mean-row.Old.Summary.Mean)/row.Old.Summary.Mean*100)
	}
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\tp=%s n=%d+%d\n", row.Name, center(row.Old, sc), center(row.New, sc), delta,
		optional(row.Diff.PValue, 3), len(row.Old.Values), len(row.New.Values))
}

// center formats the median of d and its relative interquartile
// range, if there are enough measurements to have one.
func center(d *benchstat.Distribution, sc benchunit.Scaler) string {
	s := sc.Format(d.Center)
	if len(d.Values) < 4 || d.Center == 0 {
		return s
	}
	iqr, err := stats.InterQuartileRange(d.Values)
	if err != nil || math.IsNaN(iqr) {
		return s
	}
	return fmt.Sprintf("%s ±%.0f%%", s, iqr/2/math.Abs(d.Center)*100)
}
