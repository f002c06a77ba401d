// Package foamdict parses and writes the OpenFOAM dictionary format: nested
// brace delimited blocks of semicolon terminated "keyword value" entries.
// Parsed values stay strings; parenthesised list values are decoded on
// demand with ParseList.
package foamdict

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnbalanced = errors.New("unbalanced brackets")
	ErrSyntax     = errors.New("syntax error")
	ErrMissingKey = errors.New("missing key")
)

// ParseError reports a structural problem together with the keyword path of
// the frames that were open when it was found.
type ParseError struct {
	Err  error
	Path []string
	Msg  string
}

func newParseError(err error, path []string, format string, args ...interface{}) *ParseError {
	return &ParseError{Err: err, Path: path, Msg: fmt.Sprintf(format, args...)}
}

func (e *ParseError) Error() string {
	where := "<root>"
	if len(e.Path) > 0 {
		where = strings.Join(e.Path, "/")
	}
	return fmt.Sprintf("foamdict: %v in %s: %s", e.Err, where, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads dictionary text into a fresh *Dict. Comments are discarded.
func Parse(text string) (d *Dict, err error) {
	var toks []token
	text = StripComments(text)
	text = terminateDirectives(text)
	text = collapseLines(text)
	if toks, err = lex(text); err != nil {
		return
	}
	return parseTokens(toks)
}

type frame struct {
	dict *Dict
	key  string
}

func framePath(stack []frame) (path []string) {
	for _, f := range stack[1:] {
		path = append(path, f.key)
	}
	return
}

// parseTokens builds the dictionary with an explicit stack of open frames: a
// keyword followed directly by '{' pushes a new frame, '}' pops it.
func parseTokens(toks []token) (*Dict, error) {
	var (
		stack  = []frame{{dict: NewDict()}}
		key    string
		hasKey bool
		value  []token
		open   []tokenKind // brackets open inside the current value
	)
	reset := func() {
		key, hasKey, value, open = "", false, nil, nil
	}
	for _, t := range toks {
		cur := stack[len(stack)-1].dict
		if !hasKey {
			switch t.kind {
			case tokWord, tokString:
				key, hasKey = t.text, true
			case tokSemicolon:
			case tokRBrace:
				if len(stack) == 1 {
					return nil, newParseError(ErrUnbalanced, nil, "'}' without a matching '{'")
				}
				stack = stack[:len(stack)-1]
			default:
				return nil, newParseError(ErrSyntax, framePath(stack), "unexpected %q where a keyword was expected", t.text)
			}
			continue
		}
		if len(open) == 0 {
			switch t.kind {
			case tokSemicolon:
				cur.Set(key, render(value))
				reset()
				continue
			case tokLBrace:
				if len(value) == 0 {
					sub := NewDict()
					cur.SetDict(key, sub)
					stack = append(stack, frame{dict: sub, key: key})
					reset()
					continue
				}
				return nil, newParseError(ErrSyntax, framePath(stack), "entry %q %q is followed by a block", key, render(value))
			case tokRBrace:
				return nil, newParseError(ErrSyntax, framePath(stack), "entry %q is missing its ';'", key)
			case tokRParen:
				return nil, newParseError(ErrUnbalanced, framePath(stack), "')' without a matching '(' in entry %q", key)
			}
		}
		switch t.kind {
		case tokLParen, tokLBrace:
			open = append(open, t.kind)
		case tokRParen, tokRBrace:
			want := tokLParen
			if t.kind == tokRBrace {
				want = tokLBrace
			}
			if open[len(open)-1] != want {
				return nil, newParseError(ErrUnbalanced, framePath(stack), "mismatched %q in entry %q", t.text, key)
			}
			open = open[:len(open)-1]
		}
		value = append(value, t)
	}
	if len(open) != 0 {
		return nil, newParseError(ErrUnbalanced, framePath(stack), "entry %q has %d unclosed brackets", key, len(open))
	}
	if hasKey {
		return nil, newParseError(ErrSyntax, framePath(stack), "entry %q is missing its ';'", key)
	}
	if len(stack) > 1 {
		return nil, newParseError(ErrUnbalanced, framePath(stack), "%d '{' without a matching '}'", len(stack)-1)
	}
	return stack[0].dict, nil
}
