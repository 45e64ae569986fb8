// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// Mktables pre-computes the critical-value table in ttable.go.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"

	"gonum.org/v1/gonum/stat/distuv"
)

const maxDF = 100

var percents = []float64{80, 90, 95, 98, 99, 99.5}

func main() {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by mktables.go; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package benchstat\n\n")
	fmt.Fprintf(&buf, "// TTable holds two-tailed critical values of Student's\n")
	fmt.Fprintf(&buf, "// t-distribution. Row df holds the values for df degrees of freedom;\n")
	fmt.Fprintf(&buf, "// row 0 holds the standard normal values, used for df beyond the\n")
	fmt.Fprintf(&buf, "// table. Columns are indexed by Confidence.\n")
	fmt.Fprintf(&buf, "var TTable = [maxTableDF + 1][numConfidence]float64{\n")
	row(&buf, "normal", distuv.UnitNormal.Quantile)
	for df := 1; df <= maxDF; df++ {
		t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
		row(&buf, fmt.Sprint(df), t.Quantile)
	}
	fmt.Fprintf(&buf, "}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("ttable.go", src, 0666); err != nil {
		log.Fatal(err)
	}
}

func row(buf *bytes.Buffer, label string, quantile func(float64) float64) {
	buf.WriteString("\t{")
	for i, pct := range percents {
		if i > 0 {
			buf.WriteString(", ")
		}
		alpha := 1 - pct/100
		fmt.Fprintf(buf, "%.3f", quantile(1-alpha/2))
	}
	fmt.Fprintf(buf, "}, // %s\n", label)
}
