// Package scan implements the three tokenization grammars of the analyzer:
// the source-level scanner that walks a whole C file looking for tracked
// call sites, the argument splitter that runs between a call's parentheses,
// and the format-specifier scanner that runs inside a format string literal.
//
// The grammars are deliberately separate. '%' is the modulo operator at
// argument level but starts a specifier at format level; ',' separates
// arguments but is plain text everywhere else. All three scanners are
// pull-based: nothing is produced until the caller asks for the next item,
// and every produced span indexes the original buffer directly.
package scan

import "bytes"

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\v', '\r', '\n', '\f':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentByte(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

// skipSpace returns the first index at or after pos holding a
// non-whitespace byte.
func skipSpace(src []byte, pos int) int {
	for pos < len(src) && isSpace(src[pos]) {
		pos++
	}
	return pos
}

// scanIdent returns the end of the identifier starting at pos.
// src[pos] must satisfy isIdentStart.
func scanIdent(src []byte, pos int) int {
	end := pos + 1
	for end < len(src) && isIdentByte(src[end]) {
		end++
	}
	return end
}

// scanComment matches a comment starting at pos: '//' to end of line, or a
// terminated '/* */' block. ok is false when pos does not start a comment.
// An unterminated block comment is "no match": the '/' falls through to
// ordinary tokenization instead of swallowing the rest of the file.
func scanComment(src []byte, pos int) (end int, ok bool) {
	if pos+1 >= len(src) || src[pos] != '/' {
		return 0, false
	}
	switch src[pos+1] {
	case '/':
		end = pos + 2
		for end < len(src) && src[end] != '\n' && src[end] != '\r' {
			end++
		}
		return end, true
	case '*':
		if i := bytes.Index(src[pos+2:], []byte("*/")); i >= 0 {
			return pos + 2 + i + 2, true
		}
		return 0, false
	}
	return 0, false
}

// stringStart matches an optional literal prefix (u8, u, U, L) followed by
// a double quote, returning the index of the quote.
func stringStart(src []byte, pos int) (quote int, ok bool) {
	p := pos
	if p < len(src) {
		switch src[p] {
		case 'u':
			if p+1 < len(src) && src[p+1] == '8' {
				p += 2
			} else {
				p++
			}
		case 'U', 'L':
			p++
		}
	}
	if p < len(src) && src[p] == '"' {
		return p, true
	}
	return 0, false
}

// scanStringSegment scans one quoted segment whose opening quote sits at
// quote. Backslash escapes any following byte, so an escaped quote does not
// terminate the literal. An unescaped newline or end of input is "no match".
func scanStringSegment(src []byte, quote int) (end int, ok bool) {
	i := quote + 1
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
		case '\n':
			return 0, false
		case '"':
			return i + 1, true
		default:
			i++
		}
	}
	return 0, false
}

// scanString matches a string literal at pos, merging adjacent quoted
// segments (C literal concatenation) separated only by whitespace. The
// token stops at the closing quote of the last segment; trailing whitespace
// is never part of it, so trimming one byte at each end of the token always
// strips quotes.
func scanString(src []byte, pos int) (end int, ok bool) {
	quote, ok := stringStart(src, pos)
	if !ok {
		return 0, false
	}
	end, ok = scanStringSegment(src, quote)
	if !ok {
		return 0, false
	}
	for {
		next := skipSpace(src, end)
		q, more := stringStart(src, next)
		if !more {
			return end, true
		}
		segEnd, more := scanStringSegment(src, q)
		if !more {
			return end, true
		}
		end = segEnd
	}
}

// scanCharLiteral matches a character literal at pos, with an optional
// u/U/L prefix. Same escape and no-match rules as string segments.
func scanCharLiteral(src []byte, pos int) (end int, ok bool) {
	p := pos
	if p < len(src) && (src[p] == 'u' || src[p] == 'U' || src[p] == 'L') {
		p++
	}
	if p >= len(src) || src[p] != '\'' {
		return 0, false
	}
	i := p + 1
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
		case '\n':
			return 0, false
		case '\'':
			return i + 1, true
		default:
			i++
		}
	}
	return 0, false
}

// scanNumber scans an integer or floating point literal starting at pos.
// src[pos] must be a digit, or a '.' followed by a digit. The distinction
// follows C: a decimal point or exponent makes it floating point.
func scanNumber(src []byte, pos int) (end int, isFloat bool) {
	i := pos

	// Hexadecimal (and the 0b binary extension).
	if src[i] == '0' && i+1 < len(src) && (src[i+1] == 'x' || src[i+1] == 'X' || src[i+1] == 'b' || src[i+1] == 'B') {
		hex := src[i+1] == 'x' || src[i+1] == 'X'
		i += 2
		for i < len(src) && (isHexDigit(src[i]) || (!hex && isDigit(src[i]))) {
			i++
		}
		if hex && i < len(src) && src[i] == '.' {
			isFloat = true
			i++
			for i < len(src) && isHexDigit(src[i]) {
				i++
			}
		}
		if hex && i < len(src) && (src[i] == 'p' || src[i] == 'P') {
			if j, ok := scanExponent(src, i); ok {
				isFloat = true
				i = j
			}
		}
		return scanNumberSuffix(src, i), isFloat
	}

	for i < len(src) && isDigit(src[i]) {
		i++
	}
	if i < len(src) && src[i] == '.' {
		isFloat = true
		i++
		for i < len(src) && isDigit(src[i]) {
			i++
		}
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		if j, ok := scanExponent(src, i); ok {
			isFloat = true
			i = j
		}
	}
	return scanNumberSuffix(src, i), isFloat
}

// scanExponent matches [eEpP][+-]?digits at pos (the marker byte).
func scanExponent(src []byte, pos int) (end int, ok bool) {
	i := pos + 1
	if i < len(src) && (src[i] == '+' || src[i] == '-') {
		i++
	}
	if i >= len(src) || !isDigit(src[i]) {
		return 0, false
	}
	for i < len(src) && isDigit(src[i]) {
		i++
	}
	return i, true
}

// scanNumberSuffix consumes C integer/float suffix letters.
func scanNumberSuffix(src []byte, pos int) int {
	for pos < len(src) {
		switch src[pos] {
		case 'u', 'U', 'l', 'L', 'f', 'F':
			pos++
		default:
			return pos
		}
	}
	return pos
}
