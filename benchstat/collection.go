// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/perf/nanostat/benchfmt"
	"golang.org/x/perf/nanostat/benchunit"
	"golang.org/x/sync/errgroup"
)

// A Collection groups measurements into cells by configuration (such
// as the input file), benchmark name, and unit, so that a control
// configuration can be compared against the others.
//
// Configurations, names and units are reported in the order they were
// first observed.
type Collection struct {
	// Logger receives diagnostics about rows that cannot be
	// compared. If nil, nothing is logged.
	Logger *slog.Logger

	configs    []string
	seenConfig map[string]bool
	labels     map[string]string

	// keys records the observation order of (name, unit) pairs.
	keys    []RowKey
	seenKey map[RowKey]bool

	cells map[cellKey]*cell
}

// A RowKey identifies the measurements of one benchmark in one unit.
type RowKey struct {
	Name, Unit string
}

type cellKey struct {
	config string
	RowKey
}

type cell struct {
	values []float64
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{
		seenConfig: make(map[string]bool),
		labels:     make(map[string]string),
		seenKey:    make(map[RowKey]bool),
		cells:      make(map[cellKey]*cell),
	}
}

// Add adds a single measurement of benchmark name in unit under
// configuration config.
func (c *Collection) Add(config, name, unit string, value float64) {
	if !c.seenConfig[config] {
		c.seenConfig[config] = true
		c.configs = append(c.configs, config)
	}
	key := RowKey{name, unit}
	if !c.seenKey[key] {
		c.seenKey[key] = true
		c.keys = append(c.keys, key)
	}
	ck := cellKey{config, key}
	cl := c.cells[ck]
	if cl == nil {
		cl = new(cell)
		c.cells[ck] = cl
	}
	cl.values = append(cl.values, value)
}

// AddResult adds all measurements in result under configuration
// config. Units are tidied (for example, "ns/op" becomes "sec/op")
// and rowBy selects the benchmark name; if rowBy is nil, it is the
// full name.
func (c *Collection) AddResult(config string, result *benchfmt.Result, rowBy benchfmt.Extractor) {
	name := string(result.FullName)
	if rowBy != nil {
		name = rowBy(result)
	}
	for _, v := range result.Values {
		unit, factor := benchunit.TidyUnit(v.Unit)
		c.Add(config, name, unit, v.Value*factor)
	}
}

// SetLabel sets the name reports use for config. Configurations
// without a label are shown as themselves. Labels need not be
// unique, so distinct configurations may share a display name, such
// as one input file given twice.
func (c *Collection) SetLabel(config, label string) {
	c.labels[config] = label
}

// Label returns the display name of config.
func (c *Collection) Label(config string) string {
	if l, ok := c.labels[config]; ok {
		return l
	}
	return config
}

// Configs returns the observed configurations.
func (c *Collection) Configs() []string {
	return c.configs
}

// Keys returns the observed (name, unit) pairs.
func (c *Collection) Keys() []RowKey {
	return c.keys
}

// Values returns the measurements of key under config. The caller
// must not modify the result.
func (c *Collection) Values(config string, key RowKey) []float64 {
	if cl := c.cells[cellKey{config, key}]; cl != nil {
		return cl.values
	}
	return nil
}

// A Row is the comparison of one benchmark and unit between the
// control configuration and one experiment configuration.
type Row struct {
	RowKey

	// Control and Experiment are the compared configurations.
	Control, Experiment string

	// ControlLabel and ExperimentLabel are their display names.
	ControlLabel, ExperimentLabel string

	// Old and New are the control and experiment measurements.
	Old, New *Distribution

	// Diff is the difference between Old and New. It is only
	// valid if Err is nil.
	Diff Difference

	// Err is the reason the measurements could not be compared,
	// such as a sample with fewer than two measurements.
	Err error
}

// Compare compares the control configuration against every other
// configuration using cmp at the given confidence percentage.
//
// The comparisons are independent and run on up to workers
// goroutines; workers < 1 means one. The returned rows are ordered by
// experiment configuration, then by benchmark and unit. A row whose
// comparison fails records the error in Row.Err; Compare itself
// fails only if control is not in the collection or ctx is done.
func (c *Collection) Compare(ctx context.Context, control string, cmp Comparator, confidence float64, workers int) ([]Row, error) {
	if !c.seenConfig[control] {
		return nil, fmt.Errorf("no measurements for control %q", c.Label(control))
	}
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if workers < 1 {
		workers = 1
	}

	// The control distributions are shared by every experiment,
	// so build them up front.
	olds := make(map[RowKey]*Distribution)
	for _, key := range c.keys {
		if vals := c.Values(control, key); vals != nil {
			olds[key] = NewDistribution(append([]float64(nil), vals...))
		}
	}

	var rows []Row
	for _, config := range c.configs {
		if config == control {
			continue
		}
		for _, key := range c.keys {
			old, ok := olds[key]
			newVals := c.Values(config, key)
			if !ok || newVals == nil {
				if ok || newVals != nil {
					logger.Warn("benchmark missing from one side of comparison",
						"benchmark", key.Name, "unit", key.Unit,
						"control", c.Label(control), "experiment", c.Label(config))
				}
				continue
			}
			rows = append(rows, Row{
				RowKey:          key,
				Control:         control,
				Experiment:      config,
				ControlLabel:    c.Label(control),
				ExperimentLabel: c.Label(config),
				Old:             old,
			})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range rows {
		row := &rows[i]
		newVals := c.Values(row.Experiment, row.RowKey)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row.New = NewDistribution(append([]float64(nil), newVals...))
			row.Diff, row.Err = cmp.Compare(row.Old.Summary, row.New.Summary, confidence)
			if row.Err != nil {
				logger.Debug("comparison failed",
					"benchmark", row.Name, "unit", row.Unit,
					"experiment", row.ExperimentLabel, "error", row.Err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}
