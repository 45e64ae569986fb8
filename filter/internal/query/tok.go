// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tok is a single token of a query.
type Tok struct {
	// Kind is 'w' for a bare word, 'q' for a quoted word, one of
	// the operator characters "():-*", or 0 for the end of the
	// query.
	Kind byte
	Off  int    // byte offset of the token in the query
	Text string // token text; quotes are removed from quoted words
}

const operators = "():"

// Tokenize splits q into words and single-character operators.
//
// "-" and "*" are operators only at the start of a word, so
// "foo-bar" and "Encode.*" are single words. A word containing space
// or an operator character must be double-quoted.
func Tokenize(q string) ([]Tok, error) {
	var toks []Tok
	for off := 0; off < len(q); {
		c := q[off]
		switch {
		case strings.IndexByte(operators, c) >= 0 || c == '-' || c == '*':
			toks = append(toks, Tok{c, off, q[off : off+1]})
			off++

		case c == '"':
			end := strings.IndexByte(q[off+1:], '"')
			if end < 0 {
				return nil, &SyntaxError{q, off, "missing end quote"}
			}
			toks = append(toks, Tok{'q', off, q[off+1 : off+1+end]})
			off += end + 2

		default:
			r, size := utf8.DecodeRuneInString(q[off:])
			if unicode.IsSpace(r) {
				off += size
				continue
			}
			end := strings.IndexFunc(q[off:], func(r rune) bool {
				return unicode.IsSpace(r) || strings.ContainsRune(operators, r)
			})
			if end < 0 {
				end = len(q) - off
			}
			toks = append(toks, Tok{'w', off, q[off : off+end]})
			off += end
		}
	}
	// The end token gives the parser a position for errors at the
	// end of the query.
	return append(toks, Tok{0, len(q), ""}), nil
}
