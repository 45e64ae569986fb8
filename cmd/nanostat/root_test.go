// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/perf/nanostat/internal/config"
)

// nanostat runs the command with args in a clean environment and
// returns its standard output, standard error, and error.
func nanostat(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, env := range []string{config.EnvConfig, config.EnvConfidence, config.EnvOracle, config.EnvFormat, config.EnvJobs, config.EnvLogLevel, config.EnvFilter, config.EnvRow} {
		t.Setenv(env, "")
	}
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeInputs(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0o666))
	}
	return dir
}

func TestValuesFiles(t *testing.T) {
	writeInputs(t, map[string]string{
		"old.txt":  "1\n2\n3\n4\n",
		"new.txt":  "10\n20\n30\n40\n",
		"same.txt": "# rerun\n4\n3\n2\n1\n",
	})

	out, _, err := nanostat(t, "old.txt", "new.txt", "same.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "new.txt:\n\tDifference at 95% confidence!\n")
	assert.Contains(t, out, "Welch's t, p = 0.039, d = 2.45, beta = 0.934")
	assert.Contains(t, out, "same.txt:\n\tNo difference at 95% confidence.\n")

	out, _, err = nanostat(t, "-c", "P98", "old.txt", "new.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "No difference at 98% confidence.")

	out, _, err = nanostat(t, "--confidence=99.9", "--oracle=moremath", "old.txt", "new.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "No difference at 99.9% confidence.")

	out, _, err = nanostat(t, "--oracle=table", "-c", "80", "-j", "2", "old.txt", "new.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "Difference at 80% confidence!")
	assert.Contains(t, out, "p = n/a")
}

func TestRepeatedInput(t *testing.T) {
	writeInputs(t, map[string]string{
		"a.txt": "1\n2\n3\n4\n",
		"b.txt": "10\n20\n30\n40\n",
	})

	out, _, err := nanostat(t, "a.txt", "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "a.txt:\n\tNo difference at 95% confidence.\n\n", out)

	out, _, err = nanostat(t, "a.txt", "b.txt", "b.txt")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "b.txt:\n\tDifference at 95% confidence!\n"), out)
	assert.Equal(t, 2, strings.Count(out, "Welch's t, p = 0.039, d = 2.45, beta = 0.934\n"), out)
}

func TestBenchFiles(t *testing.T) {
	writeInputs(t, map[string]string{
		"old.bench": "goos: linux\n" + strings.Repeat("BenchmarkX-8 100 1000 ns/op\nBenchmarkX-8 100 1010 ns/op\n", 3),
		"new.bench": "goos: linux\n" + strings.Repeat("BenchmarkX-8 100 2000 ns/op\nBenchmarkX-8 100 2020 ns/op\n", 3),
	})

	out, _, err := nanostat(t, "old.bench", "new.bench")
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^sec/op +old\.bench +new\.bench +delta`, out)
	assert.Regexp(t, `(?m)^X-8 .*\+100\.00% +p=0\.000 n=6\+6$`, out)
	assert.Contains(t, out, "(95% confidence, Welch's t-test)")
}

func TestMalformedBenchLine(t *testing.T) {
	writeInputs(t, map[string]string{
		"old.bench": "BenchmarkX 1 1 ns/op\nBenchmarkX 1 2 ns/op\nBenchmarkX 1 3 ns/op\n",
		"new.bench": "BenchmarkX 1 1 ns/op\nBenchmarkX 1 abc ns/op\nBenchmarkX 1 2 ns/op\nBenchmarkX 1 3 ns/op\n",
	})
	out, stderr, err := nanostat(t, "old.bench", "new.bench")
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^X .* ~ +p=1\.000 n=3\+3$`, out)
	assert.Contains(t, stderr, "level=WARN msg=\"skipping malformed benchmark line\"")
	assert.Contains(t, stderr, "new.bench:2: parsing measurement: invalid syntax")
}

func TestFilterAndRow(t *testing.T) {
	var ctl, exp strings.Builder
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&ctl, "BenchmarkEncode/size=8-8 100 %d ns/op %d B/op\n", 1000+i*10, 64)
		fmt.Fprintf(&ctl, "BenchmarkDecode/size=8-8 100 %d ns/op %d B/op\n", 500+i*10, 32+i)
		fmt.Fprintf(&exp, "BenchmarkEncode/size=8-8 100 %d ns/op %d B/op\n", 2000+i*10, 64)
		fmt.Fprintf(&exp, "BenchmarkDecode/size=8-8 100 %d ns/op %d B/op\n", 500+i*10, 32+i)
	}
	writeInputs(t, map[string]string{"old.bench": ctl.String(), "new.bench": exp.String()})

	out, _, err := nanostat(t, "--filter", ".unit:sec/op", "--row", ".name", "old.bench", "new.bench")
	require.NoError(t, err)
	assert.NotContains(t, out, "B/op")
	assert.Regexp(t, `(?m)^Encode .*\+99\.01% +p=0\.000 n=3\+3$`, out)
	assert.Regexp(t, `(?m)^Decode .* ~ +p=1\.000 n=3\+3$`, out)

	out, _, err = nanostat(t, "--filter=-.name:Decode", "old.bench", "new.bench")
	require.NoError(t, err)
	assert.Contains(t, out, "Encode/size=8-8")
	assert.NotContains(t, out, "Decode")
	assert.Contains(t, out, "B/op")
}

func TestUsageErrors(t *testing.T) {
	writeInputs(t, map[string]string{
		"old.txt": "1\n2\n",
		"new.txt": "3\n4\n",
	})
	for _, args := range [][]string{
		{"old.txt"},
		{"--bogus", "old.txt", "new.txt"},
		{"-j", "lots", "old.txt", "new.txt"},
		{"-c", "100", "old.txt", "new.txt"},
		{"-c", "P97", "old.txt", "new.txt"},
		{"--oracle=table", "-c", "97.5", "old.txt", "new.txt"},
		{"--oracle=scipy", "old.txt", "new.txt"},
		{"--format=csv", "old.txt", "new.txt"},
		{"--filter", "a:(", "old.txt", "new.txt"},
		{"--row", "", "old.txt", "new.txt"},
	} {
		_, _, err := nanostat(t, args...)
		require.Error(t, err, "%q", args)
		assert.Equal(t, 2, exitCode(err), "%q: %v", args, err)
	}
}

func TestRunErrors(t *testing.T) {
	writeInputs(t, map[string]string{
		"old.txt":   "1\n2\n",
		"new.txt":   "3\n4\n",
		"bad.txt":   "1\ntwo\n",
		"nan.txt":   "1\nNaN\n3\n",
		"empty.txt": "",
	})
	for _, test := range []struct {
		args []string
		want string
	}{
		{[]string{"old.txt", "missing.txt"}, "missing.txt"},
		{[]string{"old.txt", "bad.txt"}, "bad.txt:2: parsing measurement: invalid syntax"},
		{[]string{"old.txt", "nan.txt"}, "nan.txt:2: measurement NaN is not finite"},
		{[]string{"empty.txt", "new.txt"}, `no measurements for control "empty.txt"`},
	} {
		_, _, err := nanostat(t, test.args...)
		require.Error(t, err, "%q", test.args)
		assert.ErrorContains(t, err, test.want)
		assert.Equal(t, 1, exitCode(err))
	}
}

func TestMissingExperiment(t *testing.T) {
	writeInputs(t, map[string]string{
		"old.txt":   "1\n2\n",
		"empty.txt": "# nothing yet\n",
	})
	out, stderr, err := nanostat(t, "old.txt", "empty.txt")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "no measurements")
	assert.Contains(t, stderr, "file=empty.txt")
}

func TestConfigFile(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"old.txt":       "1\n2\n3\n4\n",
		"new.txt":       "10\n20\n30\n40\n",
		"nanostat.yaml": "confidence: P80\noracle: table\n",
	})
	out, _, err := nanostat(t, "--config", filepath.Join(dir, "nanostat.yaml"), "old.txt", "new.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "Difference at 80% confidence!")

	// Flags override the file.
	out, _, err = nanostat(t, "--config", filepath.Join(dir, "nanostat.yaml"), "-c", "P995", "old.txt", "new.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "No difference at 99.5% confidence.")
}

func TestVerbose(t *testing.T) {
	writeInputs(t, map[string]string{
		"old.txt": "1\n2\n3\n",
		"new.txt": "2\n3\n4\n",
	})
	_, stderr, err := nanostat(t, "-v", "old.txt", "new.txt")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG msg=settings")
}

func TestVersion(t *testing.T) {
	out, _, err := nanostat(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}
