package foamdict

import (
	"strconv"
	"strings"
)

// List is a decoded parenthesised value. Elements are string, List or *Dict
// (for inline "name { ... }" entries such as blockMeshDict patches).
type List []interface{}

// ParseList decodes a value such as "((0 0 0) (1 0 0))". An OpenFOAM size
// prefix ("2 (a b)") is accepted and ignored.
func ParseList(value string) (l List, err error) {
	var (
		toks []token
		pos  int
	)
	if toks, err = lex(collapseLines(StripComments(value))); err != nil {
		return
	}
	if len(toks) > 1 && toks[0].kind == tokWord && toks[1].kind == tokLParen {
		if _, perr := strconv.Atoi(toks[0].text); perr == nil {
			toks = toks[1:]
		}
	}
	if len(toks) == 0 || toks[0].kind != tokLParen {
		return nil, newParseError(ErrSyntax, nil, "%q is not a list", clip(value))
	}
	if l, pos, err = parseList(toks, 0); err != nil {
		return
	}
	if pos != len(toks) {
		return nil, newParseError(ErrSyntax, nil, "trailing %q after list", clip(render(toks[pos:])))
	}
	return
}

// parseList decodes the list opened at toks[start] and returns the position
// after its closing ')'.
func parseList(toks []token, start int) (l List, pos int, err error) {
	l = List{}
	for pos = start + 1; pos < len(toks); {
		t := toks[pos]
		switch t.kind {
		case tokRParen:
			return l, pos + 1, nil
		case tokLParen:
			var sub List
			if sub, pos, err = parseList(toks, pos); err != nil {
				return
			}
			l = append(l, sub)
		case tokLBrace:
			end, depth := pos, 0
			for ; end < len(toks); end++ {
				if toks[end].kind == tokLBrace {
					depth++
				} else if toks[end].kind == tokRBrace {
					if depth--; depth == 0 {
						break
					}
				}
			}
			if end == len(toks) {
				return nil, 0, newParseError(ErrUnbalanced, nil, "'{' inside list is never closed")
			}
			var d *Dict
			if d, err = parseTokens(toks[pos+1 : end]); err != nil {
				return
			}
			l = append(l, d)
			pos = end + 1
		case tokRBrace:
			return nil, 0, newParseError(ErrUnbalanced, nil, "'}' without a matching '{' inside list")
		case tokSemicolon:
			pos++
		default:
			l = append(l, t.text)
			pos++
		}
	}
	return nil, 0, newParseError(ErrUnbalanced, nil, "list is missing its closing ')'")
}

// Strings returns the elements when every one is a leaf.
func (l List) Strings() (s []string, ok bool) {
	s = make([]string, len(l))
	for i, e := range l {
		if s[i], ok = e.(string); !ok {
			return nil, false
		}
	}
	return s, true
}

// Floats parses every element as a number.
func (l List) Floats() (f []float64, err error) {
	f = make([]float64, len(l))
	for i, e := range l {
		s, ok := e.(string)
		if !ok {
			return nil, newParseError(ErrSyntax, nil, "element %d of %s is not a scalar", i, l)
		}
		if f[i], err = strconv.ParseFloat(s, 64); err != nil {
			return nil, err
		}
	}
	return
}

// Ints parses every element as an integer.
func (l List) Ints() (n []int, err error) {
	n = make([]int, len(l))
	for i, e := range l {
		s, ok := e.(string)
		if !ok {
			return nil, newParseError(ErrSyntax, nil, "element %d of %s is not a scalar", i, l)
		}
		if n[i], err = strconv.Atoi(s); err != nil {
			return nil, err
		}
	}
	return
}

// String renders the list in dictionary syntax.
func (l List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range l {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch v := e.(type) {
		case string:
			b.WriteString(v)
		case List:
			b.WriteString(v.String())
		case *Dict:
			b.WriteString("{ ")
			b.WriteString(strings.TrimSpace(FormatInline(v)))
			b.WriteString(" }")
		}
	}
	b.WriteByte(')')
	return b.String()
}
