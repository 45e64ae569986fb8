// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// A Scanner is a stream of Results, such as a Reader or a
// ValueReader.
type Scanner interface {
	// Scan advances to the next result and reports whether there
	// is one.
	Scan() bool
	// Result returns the current result, or the non-fatal error
	// encountered parsing it.
	Result() (*Result, error)
	// Err returns the first I/O error encountered.
	Err() error
}

// lineReader is the state shared by the line-oriented readers.
type lineReader struct {
	s        *bufio.Scanner
	fileName string
	lineNum  int
	err      error // current I/O error

	result    Result
	resultErr error
}

// SyntaxError represents a syntax error on a particular line of an
// input file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

var errNoResult = errors.New("Reader.Scan has not been called")

// reset starts reading from ior. initConfig is an alternating
// sequence of keys and values installed as permanent file
// configuration.
func (l *lineReader) reset(ior io.Reader, fileName string, initConfig []string) {
	if len(initConfig)%2 != 0 {
		panic("len(initConfig) must be even")
	}
	l.s = bufio.NewScanner(ior)
	l.fileName, l.lineNum = diagName(fileName), 0
	l.err = nil
	l.resultErr = errNoResult
	l.result.reset()
	for i := 0; i < len(initConfig); i += 2 {
		l.result.setFileConfig(initConfig[i], initConfig[i+1], true)
	}
}

func diagName(fileName string) string {
	if fileName == "" {
		return "<unknown>"
	}
	return fileName
}

// next returns the next line of input. At the end of the input or on
// an I/O error it returns false and records the error.
func (l *lineReader) next() ([]byte, bool) {
	if l.err != nil {
		return nil, false
	}
	if !l.s.Scan() {
		if err := l.s.Err(); err != nil {
			l.err = fmt.Errorf("%s:%d: %w", l.fileName, l.lineNum, err)
		}
		return nil, false
	}
	l.lineNum++
	return l.s.Bytes(), true
}

func (l *lineReader) syntaxError(msg string) error {
	return &SyntaxError{l.fileName, l.lineNum, msg}
}

// Result returns the last result read, or an error if the result was
// malformed.
//
// Parse errors are non-fatal, so the caller can continue to call
// Scan.
//
// The caller should not retain the Result object, as it will be
// overwritten by the next call to Scan.
func (l *lineReader) Result() (*Result, error) {
	if l.resultErr != nil {
		return nil, l.resultErr
	}
	return &l.result, nil
}

// Err returns the first non-EOF I/O error that was encountered.
func (l *lineReader) Err() error {
	return l.err
}

// A Reader reads the Go benchmark format.
//
// Its API is modeled on bufio.Scanner. To minimize allocation, a
// Reader retains ownership of everything it creates; a caller should
// copy anything it needs to retain.
//
// The zero value of the Reader is a valid Reader, but the user must
// call Reset before using it.
type Reader struct {
	lineReader
}

// NewReader constructs a reader to parse the Go benchmark format from
// r. fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input. This
// also resets all of the file-level configuration values.
//
// initConfig is an alternating sequence of keys and values. Reset
// installs these as permanent file configuration values that the
// input cannot override.
func (r *Reader) Reset(ior io.Reader, fileName string, initConfig ...string) {
	r.reset(ior, fileName, initConfig)
}

var benchmarkPrefix = []byte("Benchmark")

// Scan advances the reader to the next result and returns true if a
// result was read. The caller should use the Result method to get the
// result. If an I/O error occurs, or this reaches the end of the
// file, it returns false and the caller should use the Err method to
// check for errors.
func (r *Reader) Scan() bool {
	for {
		line, ok := r.next()
		if !ok {
			return false
		}
		if bytes.HasPrefix(line, benchmarkPrefix) {
			// A malformed benchmark line is still a result,
			// reported as an error.
			r.resultErr = r.parseBenchmarkLine(line)
			return true
		}
		key, val, ok := parseKeyValueLine(line)
		switch {
		case !ok:
			// Not configuration; ignore it.
		case len(val) == 0:
			r.result.deleteFileConfig(string(key))
		default:
			r.result.setFileConfig(string(key), string(val), false)
		}
	}
}

// parseKeyValueLine attempts to parse line as a "key: value" pair. A
// key starts with a lower case letter and contains no spaces or upper
// case letters. An empty value, which deletes the key, may omit the
// separating space.
func parseKeyValueLine(line []byte) (key, val []byte, ok bool) {
	colon := bytes.IndexByte(line, ':')
	if colon <= 0 {
		return nil, nil, false
	}
	key, val = line[:colon], line[colon+1:]
	if first, _ := utf8.DecodeRune(key); !unicode.IsLower(first) {
		return nil, nil, false
	}
	if bytes.ContainsFunc(key, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsUpper(r) }) {
		return nil, nil, false
	}
	if len(val) == 0 {
		return key, val, true
	}
	trimmed := bytes.TrimLeft(val, " \t")
	if len(trimmed) == len(val) {
		return nil, nil, false
	}
	return key, trimmed, true
}

// parseBenchmarkLine parses line as a benchmark result and updates
// r.result. The caller must have already checked that it begins with
// "Benchmark".
func (r *Reader) parseBenchmarkLine(line []byte) error {
	var f []byte

	line = line[len(benchmarkPrefix):]

	name, line := splitField(line)
	r.result.FullName = append(r.result.FullName[:0], name...)
	r.result.nameParts = nil

	f, line = splitField(line)
	if len(f) == 0 {
		return r.syntaxError("missing iteration count")
	}
	iters, err := strconv.Atoi(string(f))
	if err != nil {
		return r.syntaxError("parsing iteration count: " + numErr(err))
	}
	r.result.Iters = iters

	r.result.Values = r.result.Values[:0]
	for {
		f, line = splitField(line)
		if len(f) == 0 {
			if len(r.result.Values) > 0 {
				break
			}
			return r.syntaxError("missing measurements")
		}
		val, err := parseMeasurement(f)
		if err != nil {
			return r.syntaxError(err.Error())
		}
		f, line = splitField(line)
		if len(f) == 0 {
			return r.syntaxError("missing units")
		}
		r.result.Values = append(r.result.Values, Value{val, string(f)})
	}
	return nil
}

// parseMeasurement parses f as a measurement, rejecting NaN and
// infinities.
func parseMeasurement(f []byte) (float64, error) {
	val, err := strconv.ParseFloat(string(f), 64)
	if err != nil {
		return 0, errors.New("parsing measurement: " + numErr(err))
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, fmt.Errorf("measurement %s is not finite", f)
	}
	return val, nil
}

// numErr returns the underlying message of a strconv error, such as
// "invalid syntax".
func numErr(err error) string {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err.Error()
	}
	return err.Error()
}

// splitField consumes and returns non-whitespace in x as field,
// consumes whitespace following the field, and then returns the
// remaining bytes of x.
func splitField(x []byte) (field, rest []byte) {
	i := bytes.IndexFunc(x, unicode.IsSpace)
	if i < 0 {
		return x, nil
	}
	return x[:i], bytes.TrimLeftFunc(x[i:], unicode.IsSpace)
}
