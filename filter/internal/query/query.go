// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// A Node is a node of a parsed query: either a *Leaf or a *Bool.
type Node interface {
	isNode()
	String() string
}

// A Leaf tests the value of one key against a regular expression.
type Leaf struct {
	Off     int // byte offset of Key in the query
	Key     string
	Pattern string

	re *regexp.Regexp
}

func (*Leaf) isNode() {}

// Match reports whether value matches the whole of l's pattern.
func (l *Leaf) Match(value string) bool {
	return l.re.MatchString(value)
}

func (l *Leaf) String() string {
	return quote(l.Key) + ":" + quote(l.Pattern)
}

func quote(s string) string {
	if s == "" || strings.ContainsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '"' || strings.ContainsRune(operators, r)
	}) {
		return strconv.Quote(s)
	}
	return s
}

// Op is a boolean operator.
type Op int

const (
	And Op = 1 + iota
	Or
	Not
)

// A Bool combines its arguments with a boolean operator. A Not has
// exactly one argument. An And with no arguments matches everything
// and an Or with no arguments matches nothing.
type Bool struct {
	Op   Op
	Args []Node
}

func (*Bool) isNode() {}

func (b *Bool) String() string {
	switch {
	case b.Op == Not:
		return "-" + b.Args[0].String()
	case b.Op == And && len(b.Args) == 0:
		return "*"
	}
	sep := " AND "
	if b.Op == Or {
		sep = " OR "
	}
	args := make([]string, len(b.Args))
	for i, a := range b.Args {
		args[i] = a.String()
	}
	return "(" + strings.Join(args, sep) + ")"
}
