package scan

import (
	"bytes"

	"github.com/printlint/printlint/pkg/csrc"
)

// Cast records an explicit C-style conversion to one of the tracked types
// at the front of an argument.
type Cast struct {
	Type csrc.CType
	Span csrc.Span
}

// Arg is one argument of a tracked call.
type Arg struct {
	// Span covers the argument's tokens, whitespace-trimmed at both ends.
	Span csrc.Span

	// Single is set when exactly one content token (ignoring comments) makes
	// up the argument. It is only used to phrase suggestions.
	Single *csrc.ArgToken

	// Cast is the argument's leading type cast, if one was recognized.
	Cast *Cast
}

// Args splits the text of one call's argument list into Arg values.
//
// It must be created with the source scanner positioned just past the
// call's '('. Commas split arguments only at parenthesis depth zero, so a
// nested call like f(a, b) stays one argument. The ')' that underflows the
// depth ends the whole list and repositions the source scanner just past
// itself, which is where source-level scanning has to resume.
type Args struct {
	source *SourceScanner
	lex    argLexer
	start  int
	end    int
	done   bool
}

// NewArgs creates the splitter for the argument list beginning at the
// source scanner's current position.
func NewArgs(source *SourceScanner) *Args {
	pos := source.Pos()
	return &Args{
		source: source,
		lex:    argLexer{src: source.Source(), pos: pos},
		start:  pos,
		end:    pos,
	}
}

// Source resolves a span against the underlying buffer.
func (a *Args) Source(span csrc.Span) []byte {
	return span.Text(a.lex.src)
}

// Next returns the next argument, or false once the list is exhausted.
func (a *Args) Next() (Arg, bool) {
	if a.done {
		return Arg{}, false
	}

	var (
		arg      Arg
		haveSpan bool
		single   csrc.ArgToken
		haveOne  bool
		depth    int
		count    int
	)

	for {
		tok, ok := a.lex.next()
		if !ok {
			// Ran off the end of the file without a closing ')'.
			a.done = true
			a.source.SetPos(a.lex.pos)
			return Arg{}, false
		}

		switch {
		case tok.Kind == csrc.ArgComma && depth == 0:
			if !haveSpan {
				return Arg{}, false
			}
			if haveOne {
				arg.Single = &single
			}
			return arg, true

		case tok.Kind == csrc.ArgLParen:
			depth++

		case tok.Kind == csrc.ArgRParen:
			if depth == 0 {
				// The ')' closing the whole list.
				a.done = true
				a.end = tok.Span.Start
				a.source.SetPos(tok.Span.End)
				if !haveSpan {
					return Arg{}, false
				}
				if haveOne {
					arg.Single = &single
				}
				return arg, true
			}
			depth--

		case tok.Kind == csrc.ArgCast && arg.Cast == nil:
			arg.Cast = &Cast{Type: tok.Type, Span: tok.Span}

		case tok.Kind == csrc.ArgComment:
			// Part of the argument's span, but never its single token.

		default:
			haveOne = count == 0
			single = tok
			count++
		}

		if haveSpan {
			arg.Span = arg.Span.Cover(tok.Span)
		} else {
			arg.Span = tok.Span
			haveSpan = true
		}
		a.end = tok.Span.End
	}
}

// ShortCircuit drains the remaining arguments, returning how many there were
// and the span of the entire argument region. Used when reporting count
// errors that do not need per-argument detail.
func (a *Args) ShortCircuit() (int, csrc.Span) {
	n := 0
	for {
		if _, ok := a.Next(); !ok {
			break
		}
		n++
	}
	return n, csrc.Span{Start: a.start, End: a.end}
}

// argLexer tokenizes argument-list text. Whitespace is skipped, everything
// else becomes a token.
type argLexer struct {
	src []byte
	pos int
}

func (l *argLexer) next() (csrc.ArgToken, bool) {
	l.pos = skipSpace(l.src, l.pos)
	if l.pos >= len(l.src) {
		return csrc.ArgToken{}, false
	}

	start := l.pos
	switch b := l.src[l.pos]; {
	case b == '(':
		if end, t, ok := castAt(l.src, l.pos); ok {
			l.pos = end
			return l.cast(t, start), true
		}
		l.pos++
		return l.token(csrc.ArgLParen, start), true

	case b == ')':
		l.pos++
		return l.token(csrc.ArgRParen, start), true

	case b == ',':
		l.pos++
		return l.token(csrc.ArgComma, start), true

	case b == '/':
		if end, ok := scanComment(l.src, l.pos); ok {
			l.pos = end
			return l.token(csrc.ArgComment, start), true
		}
		l.pos = scanSymbol(l.src, l.pos)
		return l.token(csrc.ArgSymbol, start), true

	case b == '"' || b == '\'' || b == 'u' || b == 'U' || b == 'L':
		if end, ok := scanString(l.src, l.pos); ok {
			l.pos = end
			return l.token(csrc.ArgString, start), true
		}
		if end, ok := scanCharLiteral(l.src, l.pos); ok {
			l.pos = end
			return l.token(csrc.ArgChar, start), true
		}
		if isIdentStart(b) {
			l.pos = scanIdent(l.src, l.pos)
			return l.token(csrc.ArgIdent, start), true
		}
		l.pos++
		return l.token(csrc.ArgSymbol, start), true

	case isDigit(b) || (b == '.' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1])):
		end, isFloat := scanNumber(l.src, l.pos)
		l.pos = end
		if isFloat {
			return l.token(csrc.ArgFloat, start), true
		}
		return l.token(csrc.ArgInt, start), true

	case isIdentStart(b):
		l.pos = scanIdent(l.src, l.pos)
		return l.token(csrc.ArgIdent, start), true

	default:
		l.pos = scanSymbol(l.src, l.pos)
		return l.token(csrc.ArgSymbol, start), true
	}
}

func (l *argLexer) token(kind csrc.ArgKind, start int) csrc.ArgToken {
	return csrc.ArgToken{Kind: kind, Span: csrc.Span{Start: start, End: l.pos}}
}

func (l *argLexer) cast(t csrc.CType, start int) csrc.ArgToken {
	return csrc.ArgToken{
		Kind: csrc.ArgCast,
		Span: csrc.Span{Start: start, End: l.pos},
		Type: t,
	}
}

// castAt matches the exact cast spellings the checker understands.
func castAt(src []byte, pos int) (end int, t csrc.CType, ok bool) {
	rest := src[pos:]
	switch {
	case bytes.HasPrefix(rest, []byte("(int)")):
		return pos + len("(int)"), csrc.CInt, true
	case bytes.HasPrefix(rest, []byte("(float)")):
		return pos + len("(float)"), csrc.CFloat, true
	case bytes.HasPrefix(rest, []byte("(char*)")):
		return pos + len("(char*)"), csrc.CString, true
	}
	return 0, 0, false
}

// Multi-byte operators, longest first. Symbol granularity only affects the
// single-token classification, but getting `...` or `->` as one token keeps
// suggestions sane.
var symbols3 = []string{"...", ">>=", "<<="}

var symbols2 = []string{
	">>", "<<", "++", "--", "->", "&&", "||", "<=", ">=", "==", "!=",
	"+=", "-=", "*=", "/=", "%=", "&=", "^=", "|=",
	"<%", "%>", "<:", ":>",
}

// scanSymbol consumes one operator or punctuation token.
func scanSymbol(src []byte, pos int) int {
	rest := src[pos:]
	for _, op := range symbols3 {
		if bytes.HasPrefix(rest, []byte(op)) {
			return pos + 3
		}
	}
	for _, op := range symbols2 {
		if bytes.HasPrefix(rest, []byte(op)) {
			return pos + 2
		}
	}
	return pos + 1
}
