// Package ir builds a validated intermediate representation of a C source
// file's printf-family call sites. Parsing is all-or-nothing: either every
// tracked call validates and the file is representable as an IR, or the
// accumulated errors are returned and no IR exists.
//
// The representation is interpolation-shaped at two levels. The file is
// alternating verbatim source chunks and call sites; each call's format
// string is alternating literal text and matched specifier/argument pairs.
// Both levels share the same generic container, so rendering walks one
// structure twice.
package ir

import "github.com/printlint/printlint/pkg/csrc"

// Pair is one step of an interpolation: the verbatim text that precedes a
// value, and the value itself.
type Pair[T any] struct {
	Before []byte
	Value  T
}

// Interpolation is a sequence of pairs followed by the trailing text after
// the last value. An empty Pairs with only Last is a degenerate but valid
// interpolation (a file with no call sites, a format with no specifiers).
type Interpolation[T any] struct {
	Pairs []Pair[T]
	Last  []byte
}

// SiteKind identifies which tracked function a call site invokes.
type SiteKind uint8

const (
	SitePrintf SiteKind = iota
	SiteSprintf
	SiteSnprintf
)

// Name returns the C function name.
func (k SiteKind) Name() string {
	switch k {
	case SiteSprintf:
		return "sprintf"
	case SiteSnprintf:
		return "snprintf"
	}
	return "printf"
}

// PreArgs returns how many fixed arguments precede the format string:
// none for printf, the buffer for sprintf, buffer and size for snprintf.
func (k SiteKind) PreArgs() int {
	switch k {
	case SiteSprintf:
		return 1
	case SiteSnprintf:
		return 2
	}
	return 0
}

// FormatValue is one validated specifier/argument pairing inside a call's
// format string.
type FormatValue struct {
	// Options is the specifier's sign/width/precision text, possibly empty.
	Options []byte

	// Type is the C type the specifier formats.
	Type csrc.CType

	// Arg is the argument's source text, whitespace-trimmed.
	Arg []byte

	// TypeChecked reports whether the argument carried an explicit cast
	// that was verified against the specifier.
	TypeChecked bool
}

// Site is one validated call site.
type Site struct {
	Kind SiteKind

	// Buffer is the destination argument's text for sprintf and snprintf.
	Buffer []byte

	// Size is the buffer-size argument's text for snprintf.
	Size []byte

	// Format interpolates the format string's literal text with its
	// matched values.
	Format Interpolation[FormatValue]
}

// IR is the whole-file representation: verbatim chunks interleaved with
// validated call sites.
type IR struct {
	Calls Interpolation[Site]
}

// SiteCount returns the number of validated call sites.
func (ir *IR) SiteCount() int {
	return len(ir.Calls.Pairs)
}
