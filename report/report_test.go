// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/perf/nanostat/benchstat"
)

func compare(t *testing.T, cmp benchstat.Comparator, confidence float64, data map[string][]float64, unit string) []benchstat.Row {
	t.Helper()
	c := benchstat.NewCollection()
	for _, config := range []string{"old", "new", "same", "short"} {
		for _, v := range data[config] {
			c.Add(config, "", unit, v)
		}
	}
	rows, err := c.Compare(context.Background(), "old", cmp, confidence, 1)
	require.NoError(t, err)
	return rows
}

var sample = map[string][]float64{
	"old":   {1, 2, 3, 4},
	"new":   {10, 20, 30, 40},
	"same":  {1, 2, 3, 4},
	"short": {7},
}

func TestText(t *testing.T) {
	rows := compare(t, benchstat.Comparer{}, 95, sample, "")
	var buf strings.Builder
	require.NoError(t, Text(&buf, rows, "95%"))

	want := `new:
	Difference at 95% confidence!
		+22.5 +/- 20.4
		+900.00% +/- 816.72%
		Welch's t, p = 0.039, d = 2.45, beta = 0.934
	control 2.50 < experiment 25.00

same:
	No difference at 95% confidence.

short:
	Cannot compare: degenerate sample: need at least 2 measurements, have 1

`
	assert.Equal(t, want, buf.String())
}

func TestTextTable(t *testing.T) {
	rows := compare(t, benchstat.TableComparer{}, 80, sample, "")
	var buf strings.Builder
	require.NoError(t, Text(&buf, rows, "80%"))
	out := buf.String()
	assert.Contains(t, out, "Difference at 80% confidence!")
	assert.Contains(t, out, "p = n/a")
	assert.Contains(t, out, "beta = n/a")
}

func TestTextNotSignificantAtHigherConfidence(t *testing.T) {
	rows := compare(t, benchstat.Comparer{}, 98, map[string][]float64{
		"old": sample["old"],
		"new": sample["new"],
	}, "")
	var buf strings.Builder
	require.NoError(t, Text(&buf, rows, "98%"))
	assert.Equal(t, "new:\n\tNo difference at 98% confidence.\n\n", buf.String())
}

func TestTable(t *testing.T) {
	rows := compare(t, benchstat.Comparer{}, 95, map[string][]float64{
		"old":  {1e-6, 2e-6, 3e-6, 4e-6},
		"new":  {1e-5, 2e-5, 3e-5, 4e-5},
		"same": {1e-6, 2e-6, 3e-6, 4e-6},
	}, "sec/op")
	var buf strings.Builder
	require.NoError(t, Table(&buf, rows, "95%"))
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7, out)
	assert.Regexp(t, `^sec/op +old +new +delta`, lines[0])
	assert.Regexp(t, `^ +2\.50\S+ ±40% +25\.00\S+ ±40% +\+900\.00% +p=0\.039 n=4\+4$`, lines[1])
	assert.Equal(t, "", strings.TrimSpace(lines[2]))
	assert.Regexp(t, `^sec/op +old +same +delta`, lines[3])
	assert.Regexp(t, `~ +p=1\.000 n=4\+4$`, lines[4])
	assert.Equal(t, "(95% confidence, Welch's t-test)", lines[6])
}

func TestTableEmpty(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Table(&buf, nil, "95%"))
	assert.Empty(t, buf.String())
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "<", Direction(1, 2))
	assert.Equal(t, ">", Direction(2, 1))
	assert.Equal(t, "=", Direction(2, 2))
}
