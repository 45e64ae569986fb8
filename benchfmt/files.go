// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
)

// A Format is an input file format.
type Format int

const (
	// FormatAuto detects the format of each file: files
	// containing a line starting with "Benchmark" are in the Go
	// benchmark format, and all others are values files.
	FormatAuto Format = iota
	// FormatValues is one measurement per line.
	FormatValues
	// FormatBench is the Go benchmark format.
	FormatBench
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatValues:
		return "values"
	case FormatBench:
		return "bench"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat parses the name of a Format, as returned by
// Format.String.
func ParseFormat(s string) (Format, error) {
	for _, f := range []Format{FormatAuto, FormatValues, FormatBench} {
		if s == f.String() {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown input format %q (want auto, values, or bench)", s)
}

// DetectFormat reports whether data is in the Go benchmark format or
// is a values file.
func DetectFormat(data []byte) Format {
	if bytes.HasPrefix(data, benchmarkPrefix) || bytes.Contains(data, []byte("\nBenchmark")) {
		return FormatBench
	}
	return FormatValues
}

// Files reads results from a sequence of input files.
//
// This reader adds a ".file" configuration key to the output Results
// containing the name of the file read in, exactly as it appears in
// the Paths list, and a ".arg" key containing the file's index in
// Paths. A path listed more than once is read once per listing, with
// distinct ".arg" values.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// Format is the format of the files.
	Format Format

	// AllowStdin indicates that the path "-" should be treated as
	// stdin and if the file list is empty, it should be treated
	// as consisting of stdin.
	AllowStdin bool

	// pos is the position of the next file to read from in Paths
	// when the current file is exhausted.
	pos int

	bench  Reader
	values ValueReader
	cur    Scanner
	path   string
	format Format
	file   io.Closer
	err    error
}

// Scan advances the reader to the next result in the sequence of
// files and returns true if a result was read. The caller should use
// the Result method to get the result. If an I/O error occurs, or
// this reaches the end of the file sequence, it returns false and the
// caller should use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}

	for {
		if f.cur == nil {
			var path string
			if f.AllowStdin && len(f.Paths) == 0 && f.pos == 0 {
				path = "-"
			} else if f.pos < len(f.Paths) {
				path = f.Paths[f.pos]
			} else {
				return false
			}
			f.pos++
			if err := f.open(path, f.pos-1); err != nil {
				f.err = err
				return false
			}
		}

		if f.cur.Scan() {
			return true
		}
		err := f.cur.Err()
		if f.file != nil {
			f.file.Close()
			f.file = nil
		}
		f.cur = nil
		if err != nil {
			f.err = err
			return false
		}
	}
}

func (f *Files) open(path string, index int) error {
	var r io.Reader
	f.path = path
	if f.AllowStdin && path == "-" {
		r = os.Stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		f.file, r = file, file
	}

	f.format = f.Format
	if f.format == FormatAuto {
		// Detection needs the whole file. Inputs are small
		// relative to memory.
		data, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		f.format = DetectFormat(data)
		r = bytes.NewReader(data)
	} else {
		r = bufio.NewReader(r)
	}

	// Because ".file" and ".arg" are not valid syntax for file
	// configuration keys in the file itself, there's no danger of
	// them being overwritten.
	initConfig := []string{".file", path, ".arg", strconv.Itoa(index)}
	switch f.format {
	case FormatBench:
		f.bench.Reset(r, path, initConfig...)
		f.cur = &f.bench
	default:
		f.values.Reset(r, path, initConfig...)
		f.cur = &f.values
	}
	return nil
}

// Path returns the path of the file the current result was read
// from.
func (f *Files) Path() string {
	return f.path
}

// FileFormat returns the format of the current file. If Format is
// FormatAuto, this is the detected format.
func (f *Files) FileFormat() Format {
	return f.format
}

// Result returns the last result read, or an error if the result was
// malformed.
//
// Parse errors are non-fatal, so the caller can continue to call
// Scan.
//
// The caller should not retain the Result object, as it will be
// overwritten by the next call to Scan.
func (f *Files) Result() (*Result, error) {
	if f.cur == nil {
		return nil, errNoResult
	}
	return f.cur.Result()
}

// Err returns the first non-EOF I/O error that was encountered by the
// Files.
func (f *Files) Err() error {
	return f.err
}
