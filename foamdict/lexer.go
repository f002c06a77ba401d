package foamdict

import (
	"regexp"
	"strings"
)

type tokenKind uint8

const (
	tokWord tokenKind = iota
	tokString
	tokLBrace
	tokRBrace
	tokLParen
	tokRParen
	tokSemicolon
)

type token struct {
	kind tokenKind
	text string
}

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment  = regexp.MustCompile(`//[^\n]*`)
)

// StripComments removes C and C++ style comments. Comment markers inside
// quoted strings are not protected.
func StripComments(text string) string {
	text = blockComment.ReplaceAllString(text, "")
	return lineComment.ReplaceAllString(text, "")
}

// terminateDirectives ends every #directive line with a ';' so it parses as
// an ordinary "key value;" clause. Lines inside #{ ... #} code blocks are left
// alone.
func terminateDirectives(text string) string {
	var (
		lines  = strings.Split(text, "\n")
		inCode bool
	)
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		opens, closes := strings.Count(line, "#{"), strings.Count(line, "#}")
		switch {
		case inCode:
		case strings.HasPrefix(trimmed, "#{"), strings.HasPrefix(trimmed, "#}"):
		case strings.HasPrefix(trimmed, "#") && !strings.HasSuffix(trimmed, ";"):
			lines[i] = line + ";"
		}
		if opens > closes {
			inCode = true
		} else if closes > opens {
			inCode = false
		}
	}
	return strings.Join(lines, "\n")
}

// collapseLines turns every line break into a single space.
func collapseLines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", " ")
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(text)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isPunct(c byte) bool {
	switch c {
	case '{', '}', '(', ')', ';', '"':
		return true
	}
	return false
}

// lex splits prepared text into tokens. Words may carry balanced parentheses
// when the '(' is not the first character, so div(phi,U) stays one word.
// A #{ ... #} block is a single verbatim word.
func lex(text string) (toks []token, err error) {
	var (
		i, n = 0, len(text)
	)
	for i < n {
		c := text[i]
		switch {
		case isSpace(c):
			i++
		case c == '{':
			toks = append(toks, token{tokLBrace, "{"})
			i++
		case c == '}':
			toks = append(toks, token{tokRBrace, "}"})
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "("})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")"})
			i++
		case c == ';':
			toks = append(toks, token{tokSemicolon, ";"})
			i++
		case c == '"':
			j := i + 1
			for j < n && text[j] != '"' {
				if text[j] == '\\' {
					j++
				}
				j++
			}
			if j >= n {
				return nil, newParseError(ErrSyntax, nil, "unterminated string starting %q", clip(text[i:]))
			}
			toks = append(toks, token{tokString, text[i : j+1]})
			i = j + 1
		case c == '#' && i+1 < n && text[i+1] == '{':
			end := strings.Index(text[i+2:], "#}")
			if end < 0 {
				return nil, newParseError(ErrUnbalanced, nil, "code block %q is missing its closing #}", clip(text[i:]))
			}
			j := i + 2 + end + 2
			toks = append(toks, token{tokWord, text[i:j]})
			i = j
		default:
			j, depth := i, 0
		word:
			for j < n {
				cj := text[j]
				switch {
				case isSpace(cj):
					break word
				case cj == '(' && j > i:
					depth++
				case cj == ')' && depth > 0:
					depth--
				case isPunct(cj):
					break word
				}
				j++
			}
			toks = append(toks, token{tokWord, text[i:j]})
			i = j
		}
	}
	return
}

func clip(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}

// render joins value tokens into their canonical text form: no space inside
// parentheses or before ';', single spaces elsewhere.
func render(toks []token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			prev := toks[i-1]
			if prev.kind != tokLParen && t.kind != tokRParen && t.kind != tokSemicolon {
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.text)
	}
	return b.String()
}
