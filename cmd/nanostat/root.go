// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/perf/nanostat/benchfmt"
	"golang.org/x/perf/nanostat/benchstat"
	"golang.org/x/perf/nanostat/filter"
	"golang.org/x/perf/nanostat/internal/config"
	"golang.org/x/perf/nanostat/report"
)

const version = "0.3.0"

// A usageError is a problem with the command line.
type usageError struct {
	error
}

func exitCode(err error) int {
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

type options struct {
	configPath string
	confidence string
	oracle     string
	format     string
	jobs       int
	verbose    bool
	filter     string
	row        string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:     "nanostat [flags] CONTROL EXPERIMENT...",
		Short:   "Check for statistically valid differences between sets of measurements.",
		Version: version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return usageError{fmt.Errorf("need a control file and at least one experiment file, got %d file(s)", len(args))}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// From here on, errors are not about usage.
			cmd.SilenceUsage = true
			return run(cmd, opts, args)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "YAML `file` of default settings")
	flags.StringVarP(&opts.confidence, "confidence", "c", "P95", "confidence `level` (P80, P90, P95, P98, P99, P995, or a percentage)")
	flags.StringVar(&opts.oracle, "oracle", config.OracleGonum, "critical value `source`: gonum, moremath, or table")
	flags.StringVar(&opts.format, "format", "auto", "input `format`: auto, values, or bench")
	flags.IntVarP(&opts.jobs, "jobs", "j", 0, "number of concurrent comparisons; 0 or less means GOMAXPROCS")
	flags.StringVar(&opts.filter, "filter", "", "compare only measurements matching `query`")
	flags.StringVar(&opts.row, "row", ".fullname", "result `key` that names each row")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debugging information")
	return cmd
}

// settings merges the configuration file and environment with the
// flags that were set explicitly.
func settings(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("confidence") {
		cfg.Confidence = opts.confidence
	}
	if flags.Changed("oracle") {
		cfg.Oracle = opts.oracle
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("jobs") {
		cfg.Jobs = opts.jobs
	}
	if flags.Changed("filter") {
		cfg.Filter = opts.filter
	}
	if flags.Changed("row") {
		cfg.Row = opts.row
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return cfg, usageError{err}
	}
	return cfg, nil
}

// comparator returns the Comparator selected by cfg, the confidence
// percentage to test at, and its label for reports.
func comparator(cfg config.Config) (benchstat.Comparator, float64, string, error) {
	if cfg.Oracle == config.OracleTable {
		c, err := benchstat.ParseConfidence(cfg.Confidence)
		if err != nil {
			return nil, 0, "", usageError{err}
		}
		return benchstat.TableComparer{}, c.Percent(), c.String(), nil
	}

	pct, err := benchstat.ParsePercent(cfg.Confidence)
	if err != nil {
		return nil, 0, "", usageError{err}
	}
	var oracle benchstat.Oracle = benchstat.GonumOracle{}
	if cfg.Oracle == config.OracleMoremath {
		oracle = benchstat.MoremathOracle{}
	}
	label := strconv.FormatFloat(pct, 'f', -1, 64) + "%"
	return benchstat.Comparer{Oracle: oracle}, pct, label, nil
}

func run(cmd *cobra.Command, opts options, args []string) error {
	cfg, err := settings(cmd, opts)
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cmp, pct, label, err := comparator(cfg)
	if err != nil {
		return err
	}
	format, err := benchfmt.ParseFormat(cfg.Format)
	if err != nil {
		return usageError{err}
	}
	rowBy, err := benchfmt.NewExtractor(cfg.Row)
	if err != nil {
		return usageError{err}
	}
	var keep *filter.Filter
	if cfg.Filter != "" {
		if keep, err = filter.New(cfg.Filter); err != nil {
			return usageError{err}
		}
	}
	logger.Debug("settings", "confidence", pct, "oracle", cfg.Oracle, "format", format, "jobs", cfg.Workers(), "row", cfg.Row, "filter", cfg.Filter)

	// Inputs are keyed by position so a file given twice is
	// compared twice.
	coll := benchstat.NewCollection()
	coll.Logger = logger
	for i, path := range args {
		coll.SetLabel(strconv.Itoa(i), path)
	}
	files := benchfmt.Files{Paths: args, Format: format, AllowStdin: true}
	anyBench := false
	for files.Scan() {
		isBench := files.FileFormat() == benchfmt.FormatBench
		anyBench = anyBench || isBench
		res, err := files.Result()
		if err != nil {
			if !isBench {
				return err
			}
			logger.Warn("skipping malformed benchmark line", "err", err)
			continue
		}
		if keep != nil {
			if m := keep.Match(res); !m.Apply(res) {
				continue
			}
		}
		coll.AddResult(res.GetFileConfig(".arg"), res, rowBy)
	}
	if err := files.Err(); err != nil {
		return err
	}
	for i, path := range args {
		if i > 0 && !slices.Contains(coll.Configs(), strconv.Itoa(i)) {
			logger.Warn("no measurements", "file", path)
		}
	}

	rows, err := coll.Compare(cmd.Context(), "0", cmp, pct, cfg.Workers())
	if err != nil {
		return err
	}
	if anyBench {
		return report.Table(cmd.OutOrStdout(), rows, label)
	}
	return report.Text(cmd.OutOrStdout(), rows, label)
}
