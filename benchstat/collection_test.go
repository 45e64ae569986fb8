// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/perf/nanostat/benchfmt"
)

func addAll(c *Collection, config, name, unit string, values ...float64) {
	for _, v := range values {
		c.Add(config, name, unit, v)
	}
}

func TestCollectionCompare(t *testing.T) {
	c := NewCollection()
	addAll(c, "old", "B", "sec/op", 1, 2, 3, 4)
	addAll(c, "old", "A", "sec/op", 10, 11, 12)
	addAll(c, "new1", "A", "sec/op", 10, 11, 13)
	addAll(c, "new1", "B", "sec/op", 10, 20, 30, 40)
	addAll(c, "new2", "B", "sec/op", 1, 2, 3, 4)
	addAll(c, "new2", "A", "sec/op", 5)

	assert.Equal(t, []string{"old", "new1", "new2"}, c.Configs())
	assert.Equal(t, []RowKey{{"B", "sec/op"}, {"A", "sec/op"}}, c.Keys())
	assert.Equal(t, []float64{1, 2, 3, 4}, c.Values("old", RowKey{"B", "sec/op"}))
	assert.Nil(t, c.Values("old", RowKey{"C", "sec/op"}))

	rows, err := c.Compare(context.Background(), "old", Comparer{}, 80, 4)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	var got []string
	for _, row := range rows {
		assert.Equal(t, "old", row.Control)
		got = append(got, row.Experiment+" "+row.Name)
	}
	assert.Equal(t, []string{"new1 B", "new1 A", "new2 B", "new2 A"}, got)

	b1 := rows[0]
	require.NoError(t, b1.Err)
	assert.True(t, b1.Diff.IsSignificant())
	assert.InDelta(t, 0.03916791618893325, b1.Diff.PValue, 1e-6)
	assert.Equal(t, 2.5, b1.Old.Center)
	assert.Equal(t, 25.0, b1.New.Center)

	b2 := rows[2]
	require.NoError(t, b2.Err)
	assert.False(t, b2.Diff.IsSignificant())
	assert.Equal(t, 1.0, b2.Diff.PValue)

	a2 := rows[3]
	assert.ErrorIs(t, a2.Err, ErrDegenerateSample)
	assert.Equal(t, []float64{5}, a2.New.Values)

	// Compare does not disturb the collected order.
	assert.Equal(t, []float64{1, 2, 3, 4}, c.Values("old", RowKey{"B", "sec/op"}))
}

func TestCollectionMissingCounterpart(t *testing.T) {
	var logs bytes.Buffer
	c := NewCollection()
	c.Logger = slog.New(slog.NewTextHandler(&logs, nil))
	addAll(c, "old", "A", "sec/op", 1, 2, 3)
	addAll(c, "old", "OnlyOld", "sec/op", 1, 2, 3)
	addAll(c, "new", "A", "sec/op", 2, 3, 4)
	addAll(c, "new", "OnlyNew", "sec/op", 1, 2, 3)

	rows, err := c.Compare(context.Background(), "old", Comparer{}, 95, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0].Name)

	out := logs.String()
	assert.Contains(t, out, "benchmark=OnlyOld")
	assert.Contains(t, out, "benchmark=OnlyNew")
	assert.Equal(t, 2, strings.Count(out, "level=WARN"))
}

func TestCollectionUnknownControl(t *testing.T) {
	c := NewCollection()
	addAll(c, "old", "A", "sec/op", 1, 2)
	_, err := c.Compare(context.Background(), "nope", Comparer{}, 95, 1)
	assert.ErrorContains(t, err, `"nope"`)
}

func TestCollectionLabels(t *testing.T) {
	// Two configurations sharing a label stay separate.
	c := NewCollection()
	for config, label := range map[string]string{"0": "a.txt", "1": "b.txt", "2": "b.txt"} {
		c.SetLabel(config, label)
	}
	addAll(c, "0", "", "", 1, 2, 3, 4)
	addAll(c, "1", "", "", 10, 20, 30, 40)
	addAll(c, "2", "", "", 10, 20, 30, 40)

	rows, err := c.Compare(context.Background(), "0", Comparer{}, 95, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for i, row := range rows {
		assert.Equal(t, fmt.Sprint(i+1), row.Experiment)
		assert.Equal(t, "a.txt", row.ControlLabel)
		assert.Equal(t, "b.txt", row.ExperimentLabel)
		assert.Len(t, row.New.Values, 4)
		assert.InDelta(t, 0.039168, row.Diff.PValue, 1e-6)
	}

	assert.Equal(t, "unlabeled", c.Label("unlabeled"))
	empty := NewCollection()
	empty.SetLabel("0", "empty.txt")
	_, err = empty.Compare(context.Background(), "0", Comparer{}, 95, 1)
	assert.ErrorContains(t, err, `"empty.txt"`)
}

func TestCollectionCanceled(t *testing.T) {
	c := NewCollection()
	addAll(c, "old", "A", "sec/op", 1, 2, 3)
	addAll(c, "new", "A", "sec/op", 1, 2, 4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Compare(ctx, "old", Comparer{}, 95, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCollectionTableComparer(t *testing.T) {
	c := NewCollection()
	addAll(c, "old", "A", "sec/op", 1, 2, 3, 4)
	addAll(c, "new", "A", "sec/op", 10, 20, 30, 40)

	rows, err := c.Compare(context.Background(), "old", TableComparer{}, 80, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NoError(t, rows[0].Err)
	assert.InDelta(t, 9.341520218893711, rows[0].Diff.CriticalValue, 1e-9)

	rows, err = c.Compare(context.Background(), "old", TableComparer{}, 97, 0)
	require.NoError(t, err)
	assert.ErrorIs(t, rows[0].Err, ErrInvalidParameter)
}

func TestCollectionAddResult(t *testing.T) {
	const input = `goos: linux
BenchmarkEncode/size=8-4 1000 1500 ns/op 64 B/op
BenchmarkEncode/size=8-4 1000 2500 ns/op 64 B/op
BenchmarkDecode-4 1000 3 MB/s
`
	c := NewCollection()
	r := benchfmt.NewReader(strings.NewReader(input), "in")
	for r.Scan() {
		res, err := r.Result()
		require.NoError(t, err)
		c.AddResult("in", res, nil)
	}
	require.NoError(t, r.Err())

	assert.Equal(t, []RowKey{
		{"Encode/size=8-4", "sec/op"},
		{"Encode/size=8-4", "B/op"},
		{"Decode-4", "B/s"},
	}, c.Keys())
	vals := c.Values("in", RowKey{"Encode/size=8-4", "sec/op"})
	require.Len(t, vals, 2)
	assert.InDelta(t, 1.5e-6, vals[0], 1e-18)
	assert.InDelta(t, 2.5e-6, vals[1], 1e-18)
	assert.Equal(t, []float64{3e6}, c.Values("in", RowKey{"Decode-4", "B/s"}))

	byName, err := benchfmt.NewExtractor(".name")
	require.NoError(t, err)
	c2 := NewCollection()
	r.Reset(strings.NewReader(input), "in")
	for r.Scan() {
		res, err := r.Result()
		require.NoError(t, err)
		c2.AddResult("in", res, byName)
	}
	assert.Equal(t, "Encode", c2.Keys()[0].Name)
	assert.Equal(t, "Decode", c2.Keys()[2].Name)
}
