// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filter selects the measurements nanostat compares.
//
// A filter is a boolean query over the keys of a benchmark result,
// such as
//
//	.name:(Encode Decode) goos:linux -.unit:B/op
//
// Keys are those understood by benchfmt.NewExtractor (".name",
// ".fullname", "/key" and file configuration keys such as ".file"),
// plus ".unit", which selects individual measurements of a result.
// Values are regular expressions that must match the whole key value.
// Juxtaposed terms are combined with AND; terms may also be combined
// with AND, OR, "-" (not) and parentheses, and "*" matches everything.
package filter

import (
	"fmt"
	"math/bits"

	"golang.org/x/perf/nanostat/benchfmt"
	"golang.org/x/perf/nanostat/benchunit"
	"golang.org/x/perf/nanostat/filter/internal/query"
)

// A Filter selects benchmark results and individual measurements.
type Filter struct {
	root       query.Node
	extractors map[string]benchfmt.Extractor
}

// New parses a filter query.
func New(q string) (*Filter, error) {
	root, err := query.Parse(q)
	if err != nil {
		return nil, err
	}
	f := &Filter{root: root, extractors: make(map[string]benchfmt.Extractor)}
	if err := f.prepare(q, root); err != nil {
		return nil, err
	}
	return f, nil
}

// prepare builds an extractor for every key used in n.
func (f *Filter) prepare(q string, n query.Node) error {
	switch n := n.(type) {
	case *query.Bool:
		for _, arg := range n.Args {
			if err := f.prepare(q, arg); err != nil {
				return err
			}
		}
	case *query.Leaf:
		if n.Key == ".unit" || f.extractors[n.Key] != nil {
			break
		}
		ext, err := benchfmt.NewExtractor(n.Key)
		if err != nil {
			return &query.SyntaxError{Query: q, Off: n.Off, Msg: err.Error()}
		}
		f.extractors[n.Key] = ext
	default:
		panic(fmt.Sprintf("unknown query node %T", n))
	}
	return nil
}

func (f *Filter) String() string {
	return f.root.String()
}

// Match returns the set of res.Values that match f.
func (f *Filter) Match(res *benchfmt.Result) Match {
	return f.eval(res, f.root)
}

func (f *Filter) eval(res *benchfmt.Result, n query.Node) Match {
	m := newMatch(len(res.Values))
	switch n := n.(type) {
	case *query.Bool:
		switch n.Op {
		case query.Not:
			m = f.eval(res, n.Args[0])
			m.invert()
		case query.And:
			m.fill()
			for _, arg := range n.Args {
				m.and(f.eval(res, arg))
			}
		case query.Or:
			for _, arg := range n.Args {
				m.or(f.eval(res, arg))
			}
		}

	case *query.Leaf:
		if n.Key == ".unit" {
			// Match either the unit as written or its tidied
			// form, which is what reports show.
			for i, v := range res.Values {
				tidied, _ := benchunit.TidyUnit(v.Unit)
				if n.Match(v.Unit) || n.Match(tidied) {
					m.set(i)
				}
			}
		} else if n.Match(f.extractors[n.Key](res)) {
			m.fill()
		}
	}
	return m
}

// A Match records which values of a result matched a filter.
type Match struct {
	n    int
	bits []uint64
}

func newMatch(n int) Match {
	return Match{n, make([]uint64, (n+63)/64)}
}

func (m Match) set(i int) {
	m.bits[i/64] |= 1 << (i % 64)
}

// trim clears the bits beyond n.
func (m Match) trim() {
	if r := m.n % 64; r != 0 {
		m.bits[len(m.bits)-1] &= 1<<r - 1
	}
}

func (m Match) fill() {
	for i := range m.bits {
		m.bits[i] = ^uint64(0)
	}
	m.trim()
}

func (m Match) invert() {
	for i := range m.bits {
		m.bits[i] = ^m.bits[i]
	}
	m.trim()
}

func (m Match) and(o Match) {
	for i := range m.bits {
		m.bits[i] &= o.bits[i]
	}
}

func (m Match) or(o Match) {
	for i := range m.bits {
		m.bits[i] |= o.bits[i]
	}
}

// Count returns the number of matching values.
func (m Match) Count() int {
	c := 0
	for _, w := range m.bits {
		c += bits.OnesCount64(w)
	}
	return c
}

// All reports whether every value matched.
func (m Match) All() bool {
	return m.Count() == m.n
}

// Any reports whether at least one value matched.
func (m Match) Any() bool {
	return m.Count() > 0
}

// Test reports whether value i matched.
func (m Match) Test(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.bits[i/64]&(1<<(i%64)) != 0
}

// Apply removes the values of res that did not match and reports
// whether any remain.
func (m Match) Apply(res *benchfmt.Result) bool {
	if m.All() {
		return m.n > 0
	}
	j := 0
	for i, v := range res.Values {
		if m.Test(i) {
			res.Values[j] = v
			j++
		}
	}
	res.Values = res.Values[:j]
	return j > 0
}
