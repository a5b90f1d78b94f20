package scan

import "github.com/printlint/printlint/pkg/csrc"

// Specifier is one recognized format directive, e.g. the %-2.3f in
// printf("%-2.3f", x).
type Specifier struct {
	// Options is the sign/width/precision text between '%' and the type
	// letter ("-2.3" above). May be empty.
	Options []byte

	// Type is the C type the directive formats.
	Type csrc.CType
}

// Specifiers scans the contents of a format string literal (quotes already
// stripped) for directives the checker understands: %d and %i (int),
// %s (char*), %f (float), each with an optional numeric options pattern.
//
// Everything else is literal text, including unrecognized '%' escapes:
// those are not errors here, they simply never consume an argument, which
// the matcher then surfaces as a count mismatch if one was intended.
type Specifiers struct {
	format []byte
	pos    int

	// Span of the most recently returned specifier, in format coordinates.
	specStart, specEnd int

	// Literal text preceding the most recent specifier.
	beforeStart, beforeEnd int

	// Offset of the literal remainder after the last specifier.
	rest int
}

// NewSpecifiers creates a scanner over format string contents.
func NewSpecifiers(format []byte) *Specifiers {
	return &Specifiers{format: format}
}

// Next returns the next specifier, or false once the format is exhausted.
func (s *Specifiers) Next() (Specifier, bool) {
	normalStart := -1
	for s.pos < len(s.format) {
		b := s.format[s.pos]

		if b == '%' {
			if end, opts, t, ok := specifierAt(s.format, s.pos); ok {
				if normalStart >= 0 {
					s.beforeStart, s.beforeEnd = normalStart, s.pos
				} else {
					s.beforeStart, s.beforeEnd = 0, 0
				}
				s.specStart, s.specEnd = s.pos, end
				s.pos = end
				s.rest = end
				return Specifier{Options: opts, Type: t}, true
			}
		}

		if normalStart < 0 {
			normalStart = s.pos
		}
		if b == '\\' && s.pos+1 < len(s.format) {
			// Escape sequence: the next byte is literal text.
			s.pos += 2
			continue
		}
		s.pos++
	}
	return Specifier{}, false
}

// Before returns the literal text immediately preceding the most recently
// returned specifier.
func (s *Specifiers) Before() []byte {
	return s.format[s.beforeStart:s.beforeEnd]
}

// Remainder returns the literal text after the last returned specifier, or
// the whole format if none has been returned yet.
func (s *Specifiers) Remainder() []byte {
	return s.format[s.rest:]
}

// Span translates the most recently returned specifier's position into
// source coordinates. formatOffset is the source offset of the format
// string's first content byte (just past the opening quote).
func (s *Specifiers) Span(formatOffset int) csrc.Span {
	return csrc.Span{
		Start: formatOffset + s.specStart,
		End:   formatOffset + s.specEnd,
	}
}

// Count drains the scanner, returning how many specifiers remained.
func (s *Specifiers) Count() int {
	n := 0
	for {
		if _, ok := s.Next(); !ok {
			return n
		}
		n++
	}
}

// specifierAt matches a full directive at pos (which holds '%').
func specifierAt(format []byte, pos int) (end int, opts []byte, t csrc.CType, ok bool) {
	i := pos + 1
	j := i
	if k, hasOpts := scanSpecOptions(format, i); hasOpts {
		j = k
	}
	if j >= len(format) {
		return 0, nil, 0, false
	}
	switch format[j] {
	case 'd', 'i':
		t = csrc.CInt
	case 's':
		t = csrc.CString
	case 'f':
		t = csrc.CFloat
	default:
		return 0, nil, 0, false
	}
	return j + 1, format[i:j], t, true
}

// scanSpecOptions matches the optional [+-]?(digits[.digits*] | .digits+)
// pattern. A bare sign with no numeric part is not an options match.
func scanSpecOptions(format []byte, pos int) (end int, ok bool) {
	i := pos
	if i < len(format) && (format[i] == '+' || format[i] == '-') {
		i++
	}
	switch {
	case i < len(format) && isDigit(format[i]):
		for i < len(format) && isDigit(format[i]) {
			i++
		}
		if i < len(format) && format[i] == '.' {
			i++
			for i < len(format) && isDigit(format[i]) {
				i++
			}
		}
		return i, true

	case i+1 < len(format) && format[i] == '.' && isDigit(format[i+1]):
		i++
		for i < len(format) && isDigit(format[i]) {
			i++
		}
		return i, true
	}
	return 0, false
}
