// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bytes"
	"io"
)

// A ValueReader reads files of one measurement per line.
//
// Blank lines and lines starting with "#" are ignored. Every other
// line must be a floating point number, optionally surrounded by
// white space. Each measurement is returned as a Result with an empty
// name and unit.
//
// Like Reader, a ValueReader retains ownership of the Results it
// returns.
type ValueReader struct {
	lineReader
}

// NewValueReader constructs a reader of per-line values from r.
// fileName is used in error messages.
func NewValueReader(r io.Reader, fileName string) *ValueReader {
	reader := new(ValueReader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
// initConfig is as for Reader.Reset.
func (r *ValueReader) Reset(ior io.Reader, fileName string, initConfig ...string) {
	r.reset(ior, fileName, initConfig)
	r.result.Iters = 1
}

// Scan advances to the next measurement.
func (r *ValueReader) Scan() bool {
	for {
		line, ok := r.next()
		if !ok {
			return false
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		val, err := parseMeasurement(line)
		if err != nil {
			r.resultErr = r.syntaxError(err.Error())
			return true
		}
		// Callers may have truncated Values.
		r.result.Values = append(r.result.Values[:0], Value{Value: val})
		r.resultErr = nil
		return true
	}
}

// ReadValues reads all measurements from a values file. Unlike
// ValueReader, it stops at the first malformed line.
func ReadValues(r io.Reader, fileName string) ([]float64, error) {
	var vals []float64
	vr := NewValueReader(r, fileName)
	for vr.Scan() {
		res, err := vr.Result()
		if err != nil {
			return nil, err
		}
		vals = append(vals, res.Values[0].Value)
	}
	if err := vr.Err(); err != nil {
		return nil, err
	}
	return vals, nil
}
