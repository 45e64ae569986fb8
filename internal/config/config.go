// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads nanostat settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables. EnvConfig names a YAML file to load.
const (
	EnvConfig     = "NANOSTAT_CONFIG"
	EnvConfidence = "NANOSTAT_CONFIDENCE"
	EnvOracle     = "NANOSTAT_ORACLE"
	EnvFormat     = "NANOSTAT_FORMAT"
	EnvJobs       = "NANOSTAT_JOBS"
	EnvLogLevel   = "NANOSTAT_LOG_LEVEL"
	EnvFilter     = "NANOSTAT_FILTER"
	EnvRow        = "NANOSTAT_ROW"
)

// Oracle names.
const (
	OracleGonum    = "gonum"
	OracleMoremath = "moremath"
	OracleTable    = "table"
)

// Config holds the settings of a comparison run.
type Config struct {
	// Confidence is a confidence level, either a symbolic level
	// such as "P95" or a percentage such as "97.5".
	Confidence string `yaml:"confidence"`
	// Oracle selects how critical values are computed: "gonum",
	// "moremath" or "table".
	Oracle string `yaml:"oracle"`
	// Format is the input format: "auto", "values" or "bench".
	Format string `yaml:"format"`
	// Jobs is the number of comparisons to run concurrently. Values
	// below 1 mean GOMAXPROCS.
	Jobs int `yaml:"jobs"`
	// LogLevel is "debug", "info", "warn" or "error".
	LogLevel string `yaml:"log_level"`
	// Filter, if not empty, is a filter query selecting the
	// measurements to compare.
	Filter string `yaml:"filter"`
	// Row is the result key that names a row, such as ".fullname"
	// or ".name".
	Row string `yaml:"row"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Confidence: "P95",
		Oracle:     OracleGonum,
		Format:     "auto",
		Jobs:       runtime.GOMAXPROCS(0),
		LogLevel:   "info",
		Row:        ".fullname",
	}
}

// Load returns the default configuration overridden by the YAML file
// at path (or named by NANOSTAT_CONFIG if path is empty) and then by
// the environment. A .env file in the current directory, if present,
// is loaded into the environment first without replacing variables
// that are already set.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.loadEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv(lookup func(string) (string, bool)) error {
	for env, field := range map[string]*string{
		EnvConfidence: &c.Confidence,
		EnvOracle:     &c.Oracle,
		EnvFormat:     &c.Format,
		EnvLogLevel:   &c.LogLevel,
		EnvFilter:     &c.Filter,
		EnvRow:        &c.Row,
	} {
		if v, ok := lookup(env); ok && v != "" {
			*field = v
		}
	}
	if v, ok := lookup(EnvJobs); ok && v != "" {
		jobs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvJobs, err)
		}
		c.Jobs = jobs
	}
	return nil
}

// Validate checks that every setting has a known value. It does not
// parse Confidence, whose meaning depends on Oracle, or Filter.
func (c Config) Validate() error {
	switch c.Oracle {
	case OracleGonum, OracleMoremath, OracleTable:
	default:
		return fmt.Errorf("unknown oracle %q (want gonum, moremath, or table)", c.Oracle)
	}
	switch c.Format {
	case "auto", "values", "bench":
	default:
		return fmt.Errorf("unknown format %q (want auto, values, or bench)", c.Format)
	}
	if c.Row == "" {
		return fmt.Errorf("row key must not be empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Workers returns the number of concurrent comparisons Jobs asks for.
func (c Config) Workers() int {
	if c.Jobs < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Jobs
}

// Level returns LogLevel as a slog.Level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return l, nil
}
