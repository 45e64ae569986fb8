// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt reads measurements for comparison.
//
// It understands two input formats: the Go benchmark format
// (https://golang.org/design/14313-benchmark-format), read by Reader,
// and plain files of one number per line, read by ValueReader. Both
// readers produce Results and are structured as streaming operations
// modeled on bufio.Scanner. Files reads a sequence of files in either
// format.
package benchfmt

// Result is a single benchmark result and all of its measurements.
//
// A line of a values file is a Result with an empty name, one
// iteration, and a single Value with an empty unit.
type Result struct {
	// FileConfig is the set of file-level key/value pairs in
	// effect for this result.
	//
	// This is modified in place. New keys are appended to the
	// slice. When an existing key changes value, it is updated in
	// place. When a key is deleted, it is removed from the slice.
	FileConfig []Config

	// FullName is the full name of this benchmark, including all
	// sub-benchmark configuration.
	FullName []byte

	// Iters is the number of iterations this benchmark's results
	// were averaged over.
	Iters int

	// Values is this benchmark's measurements and their units.
	Values []Value

	// configPos, if non-nil, maps from Config.Key to index in
	// FileConfig.
	configPos map[string]int

	// permConfig indicates that FileConfig[:permConfig] cannot be
	// overridden.
	permConfig int

	// nameParts is a cache of the split parts of FullName. It is
	// nil if it has not been computed.
	nameParts [][]byte
}

// Config is a single key/value configuration pair.
type Config struct {
	Key, Value string
}

// Value is a single value/unit measurement from a benchmark result.
type Value struct {
	Value float64
	Unit  string
}

// Clone makes a copy of Result that shares no state with r.
func (r *Result) Clone() *Result {
	return &Result{
		FileConfig: append([]Config(nil), r.FileConfig...),
		FullName:   append([]byte(nil), r.FullName...),
		Iters:      r.Iters,
		Values:     append([]Value(nil), r.Values...),
		permConfig: r.permConfig,
	}
}

// reset clears r for a new input.
func (r *Result) reset() {
	r.FileConfig = r.FileConfig[:0]
	r.FullName = r.FullName[:0]
	r.Iters = 0
	r.Values = r.Values[:0]
	r.configPos = nil
	r.permConfig = 0
	r.nameParts = nil
}

// setFileConfig sets file configuration key to value, overriding or
// adding the configuration as necessary. perm indicates that this is
// a permanent config value that cannot be overridden by a file.
func (r *Result) setFileConfig(key, value string, perm bool) {
	pos, ok := r.fileConfigIndex(key)
	if ok {
		if !perm && pos < r.permConfig {
			return
		}
		r.FileConfig[pos].Value = value
		return
	}
	pos = len(r.FileConfig)
	if perm {
		r.permConfig = pos + 1
	}
	r.FileConfig = append(r.FileConfig, Config{key, value})
	r.configPos[key] = pos
}

// deleteFileConfig removes key from the file configuration, unless it
// is permanent.
func (r *Result) deleteFileConfig(key string) {
	pos, ok := r.fileConfigIndex(key)
	if !ok || pos < r.permConfig {
		return
	}
	r.FileConfig = append(r.FileConfig[:pos], r.FileConfig[pos+1:]...)
	delete(r.configPos, key)
	for i := pos; i < len(r.FileConfig); i++ {
		r.configPos[r.FileConfig[i].Key] = i
	}
}

// fileConfigIndex returns the index in r.FileConfig of key.
func (r *Result) fileConfigIndex(key string) (pos int, ok bool) {
	if r.configPos == nil {
		r.configPos = make(map[string]int)
		for i, cfg := range r.FileConfig {
			r.configPos[cfg.Key] = i
		}
	}
	pos, ok = r.configPos[key]
	return
}

// GetFileConfig returns the value of file configuration key, or ""
// if it is not set.
func (r *Result) GetFileConfig(key string) string {
	if pos, ok := r.fileConfigIndex(key); ok {
		return r.FileConfig[pos].Value
	}
	return ""
}

// NameParts returns the base name and sub-benchmark configuration
// parts. Each sub-benchmark configuration part is one of three forms:
//
// 1. "/<key>=<value>" indicates a key/value configuration pair.
//
// 2. "/<string>" indicates a positional configuration pair.
//
// 3. "-<gomaxprocs>" indicates the GOMAXPROCS of this benchmark. This
// component can only appear last.
//
// Concatenating the base name and the configuration parts
// reconstructs the full name.
func (r *Result) NameParts() (baseName []byte, parts [][]byte) {
	if r.nameParts == nil {
		buf := r.FullName
		var gomaxprocs []byte
		for i := len(buf) - 1; i >= 0; i-- {
			if buf[i] == '-' && i < len(buf)-1 {
				gomaxprocs, buf = buf[i:], buf[:i]
				break
			} else if buf[i] < '0' || buf[i] > '9' {
				break
			}
		}
		prev := 0
		for i, c := range buf {
			if c == '/' {
				r.nameParts = append(r.nameParts, buf[prev:i])
				prev = i
			}
		}
		r.nameParts = append(r.nameParts, buf[prev:])
		if gomaxprocs != nil {
			r.nameParts = append(r.nameParts, gomaxprocs)
		}
	}
	return r.nameParts[0], r.nameParts[1:]
}
