package scan

import (
	"bytes"

	"github.com/printlint/printlint/pkg/csrc"
)

// SourceScanner is the outermost grammar: a single forward pass over a whole
// file that classifies just enough of C to find tracked call sites. It emits
// comments, string literals, parentheses, the three tracked function names,
// and a catch-all "other" token; whitespace is skipped, never emitted.
type SourceScanner struct {
	src []byte
	pos int
}

// NewSourceScanner creates a scanner positioned at the start of src.
func NewSourceScanner(src []byte) *SourceScanner {
	return &SourceScanner{src: src}
}

// Source returns the underlying buffer.
func (s *SourceScanner) Source() []byte {
	return s.src
}

// Pos returns the current byte position.
func (s *SourceScanner) Pos() int {
	return s.pos
}

// SetPos repositions the scanner. The argument splitter uses this to resume
// source-level scanning exactly past the ')' that closed an argument list.
func (s *SourceScanner) SetPos(pos int) {
	s.pos = pos
}

// Next returns the next source token, or false at end of input.
func (s *SourceScanner) Next() (csrc.SourceToken, bool) {
	s.pos = skipSpace(s.src, s.pos)
	if s.pos >= len(s.src) {
		return csrc.SourceToken{}, false
	}

	start := s.pos
	switch b := s.src[s.pos]; {
	case b == '(':
		s.pos++
		return s.token(csrc.SrcLParen, start), true

	case b == ')':
		s.pos++
		return s.token(csrc.SrcRParen, start), true

	case b == '/':
		if end, ok := scanComment(s.src, s.pos); ok {
			s.pos = end
			return s.token(csrc.SrcComment, start), true
		}
		s.pos++
		return s.token(csrc.SrcOther, start), true

	case b == '"':
		if end, ok := scanString(s.src, s.pos); ok {
			s.pos = end
			return s.token(csrc.SrcString, start), true
		}
		// Unterminated literal: the quote is ordinary text.
		s.pos++
		return s.token(csrc.SrcOther, start), true

	case b == 'u' || b == 'U' || b == 'L':
		// Prefixed string literals first: u/U/L are also identifier starts,
		// so only commit when a full literal actually matches.
		if end, ok := scanString(s.src, s.pos); ok {
			s.pos = end
			return s.token(csrc.SrcString, start), true
		}
		s.pos = scanIdent(s.src, s.pos)
		return s.token(s.identKind(start), start), true

	case isIdentStart(b):
		s.pos = scanIdent(s.src, s.pos)
		return s.token(s.identKind(start), start), true

	default:
		s.pos = s.scanOther(s.pos)
		return s.token(csrc.SrcOther, start), true
	}
}

func (s *SourceScanner) token(kind csrc.SourceKind, start int) csrc.SourceToken {
	return csrc.SourceToken{Kind: kind, Span: csrc.Span{Start: start, End: s.pos}}
}

// identKind distinguishes the tracked function names. The full identifier
// has already been consumed, so printf_wrapper and friends stay SrcOther.
func (s *SourceScanner) identKind(start int) csrc.SourceKind {
	switch {
	case bytes.Equal(s.src[start:s.pos], []byte("printf")):
		return csrc.SrcPrintf
	case bytes.Equal(s.src[start:s.pos], []byte("sprintf")):
		return csrc.SrcSprintf
	case bytes.Equal(s.src[start:s.pos], []byte("snprintf")):
		return csrc.SrcSnprintf
	}
	return csrc.SrcOther
}

// scanOther consumes a run of bytes none of the other rules start with.
func (s *SourceScanner) scanOther(pos int) int {
	pos++
	for pos < len(s.src) {
		b := s.src[pos]
		if isSpace(b) || b == '(' || b == ')' || b == '"' || b == '/' || isIdentStart(b) {
			return pos
		}
		pos++
	}
	return pos
}
