// Package csrc defines the data model shared by every stage of the printf
// analysis: byte spans into the original source, the closed set of C types
// the checker tracks, token kinds for the three scanning grammars, and a
// file snapshot with a line index for diagnostic positions.
//
// Nothing in this package copies source text. Every entity refers back into
// the original buffer by offset, so the buffer must outlive anything built
// from it.
package csrc

import "fmt"

// Span is a half-open byte range [Start, End) into the source content.
type Span struct {
	// Start is the byte index where the span begins (inclusive).
	Start int

	// End is the byte index where the span ends (exclusive).
	End int
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains returns true if the given offset falls within the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Text returns the source bytes covered by the span.
// Returns nil if the span does not fit inside content.
func (s Span) Text(content []byte) []byte {
	if s.Start < 0 || s.End > len(content) || s.Start > s.End {
		return nil
	}
	return content[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}
