// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package query parses boolean key-value queries.
//
// Syntax:
//
//	expr   = and {"OR" and} .
//	and    = phrase {"AND" phrase} .
//	phrase = match {match} .
//	match  = "(" expr ")"
//	       | "-" match
//	       | "*"
//	       | word ":" (word | "(" {word} ")") .
//	word   = [^ ():"]+ | "\"" [^"]* "\"" .
//
// Juxtaposed matches are combined with AND. The value of a match is a
// regular expression that must match the whole value of the key, and
// key:(a b) is shorthand for key:a OR key:b.
package query

import (
	"fmt"
	"regexp"
	"unicode"
)

// SyntaxError is an error parsing a malformed query.
type SyntaxError struct {
	Query string // the query
	Off   int    // byte offset of the error in Query
	Msg   string
}

func (e *SyntaxError) Error() string {
	// Point at the error with a caret, counting runes rather than
	// bytes.
	col := 0
	for i, r := range e.Query {
		if i >= e.Off {
			break
		}
		if unicode.IsGraphic(r) {
			col++
		}
	}
	return fmt.Sprintf("syntax error: %s\n\t%s\n\t%*s^", e.Msg, e.Query, col, "")
}

// Parse parses query into a tree.
func Parse(query string) (Node, error) {
	toks, err := Tokenize(query)
	if err != nil {
		return nil, err
	}
	for i, tok := range toks {
		switch {
		case tok.Kind == 'w' && tok.Text == "AND":
			toks[i].Kind = '&'
		case tok.Kind == 'w' && tok.Text == "OR":
			toks[i].Kind = '|'
		case tok.Kind == 'q':
			// Quoting only matters for recognizing operators.
			toks[i].Kind = 'w'
		}
	}

	p := &parser{query: query, toks: toks}
	n, err := p.or()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.Kind != 0 {
		return nil, p.errorf(t, "unexpected %q", t.Text)
	}
	return n, nil
}

type parser struct {
	query string
	toks  []Tok
	pos   int
}

func (p *parser) peek() Tok {
	return p.toks[p.pos]
}

// next consumes and returns the next token. The end token is never
// consumed.
func (p *parser) next() Tok {
	t := p.toks[p.pos]
	if t.Kind != 0 {
		p.pos++
	}
	return t
}

func (p *parser) errorf(t Tok, format string, args ...any) error {
	return &SyntaxError{p.query, t.Off, fmt.Sprintf(format, args...)}
}

func (p *parser) or() (Node, error) {
	return p.binary('|', Or, p.and)
}

func (p *parser) and() (Node, error) {
	return p.binary('&', And, p.phrase)
}

// binary parses operands separated by the operator token kind.
func (p *parser) binary(kind byte, op Op, operand func() (Node, error)) (Node, error) {
	n, err := operand()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != kind {
		return n, nil
	}
	b := &Bool{Op: op, Args: []Node{n}}
	for p.peek().Kind == kind {
		p.next()
		n, err := operand()
		if err != nil {
			return nil, err
		}
		b.Args = append(b.Args, n)
	}
	return b, nil
}

func startsMatch(kind byte) bool {
	switch kind {
	case '(', '-', '*', 'w':
		return true
	}
	return false
}

func (p *parser) phrase() (Node, error) {
	var args []Node
	for startsMatch(p.peek().Kind) {
		n, err := p.match()
		if err != nil {
			return nil, err
		}
		args = append(args, n)
	}
	switch len(args) {
	case 0:
		return nil, p.errorf(p.peek(), "nothing to match")
	case 1:
		return args[0], nil
	}
	return &Bool{Op: And, Args: args}, nil
}

func (p *parser) match() (Node, error) {
	t := p.next()
	switch t.Kind {
	case '(':
		n, err := p.or()
		if err != nil {
			return nil, err
		}
		if c := p.next(); c.Kind != ')' {
			return nil, p.errorf(c, `missing ")"`)
		}
		return n, nil
	case '-':
		n, err := p.match()
		if err != nil {
			return nil, err
		}
		return &Bool{Op: Not, Args: []Node{n}}, nil
	case '*':
		return &Bool{Op: And}, nil
	}

	// t is the key.
	if p.peek().Kind != ':' {
		return nil, p.errorf(t, "expected key:value")
	}
	p.next()
	switch v := p.next(); v.Kind {
	case 'w':
		return p.leaf(t, v)
	case '(':
		alts := &Bool{Op: Or}
		for p.peek().Kind == 'w' {
			l, err := p.leaf(t, p.next())
			if err != nil {
				return nil, err
			}
			alts.Args = append(alts.Args, l)
		}
		c := p.next()
		if c.Kind != ')' {
			return nil, p.errorf(c, "expected value")
		}
		if len(alts.Args) == 0 {
			return nil, p.errorf(c, "nothing to match")
		}
		return alts, nil
	default:
		return nil, p.errorf(v, "expected value after %q", t.Text+":")
	}
}

func (p *parser) leaf(key, val Tok) (Node, error) {
	// Check the pattern on its own so a pattern like "a)|(b"
	// can't escape the anchors.
	if _, err := regexp.Compile(val.Text); err != nil {
		return nil, p.errorf(val, "%v", err)
	}
	re := regexp.MustCompile("^(?:" + val.Text + ")$")
	return &Leaf{Off: key.Off, Key: key.Text, Pattern: val.Text, re: re}, nil
}
