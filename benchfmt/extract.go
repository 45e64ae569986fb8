// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bytes"
	"fmt"
	"strings"
)

// An Extractor returns some component of a benchmark result.
type Extractor func(*Result) string

// NewExtractor returns a function that extracts some component of a
// benchmark result.
//
// The key must be one of the following:
//
// - ".name" for the benchmark name (excluding per-benchmark
// configuration).
//
// - ".fullname" for the full benchmark name (including per-benchmark
// configuration).
//
// - "/{key}" for a benchmark name key. This may be "/gomaxprocs" and
// the extractor will normalize the name as needed.
//
// - Any other string is a file configuration key, such as ".file".
func NewExtractor(key string) (Extractor, error) {
	switch {
	case key == "":
		return nil, fmt.Errorf("key must not be empty")

	case key == ".name":
		return func(res *Result) string {
			base, _ := res.NameParts()
			return string(base)
		}, nil

	case key == ".fullname":
		return func(res *Result) string {
			return string(res.FullName)
		}, nil

	case strings.HasPrefix(key, "/"):
		prefix := []byte(key + "=")
		isGomaxprocs := key == "/gomaxprocs"
		return func(res *Result) string {
			return extractNamePart(res, prefix, isGomaxprocs)
		}, nil
	}

	return func(res *Result) string {
		return res.GetFileConfig(key)
	}, nil
}

func extractNamePart(res *Result, prefix []byte, isGomaxprocs bool) string {
	_, parts := res.NameParts()
	if isGomaxprocs && len(parts) > 0 {
		last := parts[len(parts)-1]
		if last[0] == '-' {
			// GOMAXPROCS specified as "-N" suffix.
			return string(last[1:])
		}
	}
	for _, part := range parts {
		if bytes.HasPrefix(part, prefix) {
			return string(part[len(prefix):])
		}
	}
	return ""
}
