// Package diag defines the closed error taxonomy of the analyzer and the
// span-anchored diagnostic records the presentation layer renders. Errors
// are values, accumulated per file; nothing here panics or aborts a scan.
package diag

import (
	"fmt"

	"github.com/printlint/printlint/pkg/csrc"
)

// Kind discriminates the five defects the analyzer can report.
type Kind uint8

const (
	// KindMissingFunctionArgs: the call has fewer arguments than the
	// function's fixed minimum (e.g. no format string at all).
	KindMissingFunctionArgs Kind = iota

	// KindNonliteralFormat: the format-string position holds something
	// other than a string literal. Potential format-string injection.
	KindNonliteralFormat

	// KindSpecifierCastMismatch: a specifier's type disagrees with the
	// argument's explicit cast.
	KindSpecifierCastMismatch

	// KindExcessSpecifiers: the format string requests more values than
	// were supplied. Reads arbitrary data off the stack at runtime.
	KindExcessSpecifiers

	// KindExcessArgs: more values were passed than the format consumes.
	KindExcessArgs
)

// Code returns the stable identifier used in reports.
func (k Kind) Code() string {
	switch k {
	case KindMissingFunctionArgs:
		return "PF001"
	case KindNonliteralFormat:
		return "PF002"
	case KindSpecifierCastMismatch:
		return "PF003"
	case KindExcessSpecifiers:
		return "PF004"
	case KindExcessArgs:
		return "PF005"
	}
	return "PF000"
}

// Name returns the human-readable rule-style name.
func (k Kind) Name() string {
	switch k {
	case KindMissingFunctionArgs:
		return "missing-function-args"
	case KindNonliteralFormat:
		return "nonliteral-format"
	case KindSpecifierCastMismatch:
		return "specifier-cast-mismatch"
	case KindExcessSpecifiers:
		return "excess-specifiers"
	case KindExcessArgs:
		return "excess-args"
	}
	return "unknown"
}

// Message returns the headline message for the kind.
func (k Kind) Message() string {
	switch k {
	case KindMissingFunctionArgs:
		return "Missing function arguments."
	case KindNonliteralFormat:
		return "Format string isn't a string literal, this is potentially an overflow vulnerability!"
	case KindSpecifierCastMismatch:
		return "Incorrect specifier for type casted argument."
	case KindExcessSpecifiers:
		return "Excess specifiers, this will read arbitrary data off the stack!"
	case KindExcessArgs:
		return "Excess arguments."
	}
	return "Unknown error."
}

// Label anchors part of an error to a span of the original source.
type Label struct {
	Span    csrc.Span
	Message string
}

// Error is one validation defect found at a call site. The typed payload
// fields are only meaningful for the kinds that set them.
type Error struct {
	Kind   Kind
	Labels []Label
	Help   string

	// SpecifierType and CastType are set for KindSpecifierCastMismatch.
	SpecifierType csrc.CType
	CastType      csrc.CType

	// Additional is the unmatched specifier or argument count for
	// KindExcessSpecifiers and KindExcessArgs.
	Additional int
}

func (e Error) Error() string {
	return e.Kind.Message()
}

// NewMissingFunctionArgs reports a call with too few arguments. span covers
// the (possibly empty) argument region.
func NewMissingFunctionArgs(span csrc.Span) Error {
	return Error{
		Kind:   KindMissingFunctionArgs,
		Labels: []Label{{Span: span, Message: "not enough arguments in function call"}},
		Help:   "Supply enough arguments for the function call.",
	}
}

// NewNonliteralFormat reports a non-literal in the format-string position.
// ident names the argument when it was a single bare identifier, so the
// help can spell out the safe replacement; pass "" otherwise.
func NewNonliteralFormat(span csrc.Span, ident string) Error {
	help := "Use a string literal as the first argument, like `printf(\"hello\")`."
	if ident != "" {
		help = fmt.Sprintf("To safely print a string, use `printf(%q, %s)` instead.", "%s", ident)
	}
	return Error{
		Kind:   KindNonliteralFormat,
		Labels: []Label{{Span: span, Message: "not a string literal"}},
		Help:   help,
	}
}

// NewSpecifierCastMismatch reports a specifier whose type disagrees with
// the argument's explicit cast. Both spans are carried so the diagnostic
// can point at each side.
func NewSpecifierCastMismatch(specSpan csrc.Span, specType csrc.CType, castSpan csrc.Span, castType csrc.CType) Error {
	return Error{
		Kind: KindSpecifierCastMismatch,
		Labels: []Label{
			{Span: specSpan, Message: fmt.Sprintf("format string expects `%s` value", specType)},
			{Span: castSpan, Message: fmt.Sprintf("argument is casted as `%s`", castType)},
		},
		Help: fmt.Sprintf("Change the specifier to `%%%c`, or change the cast to `(%s)`.",
			castType.SpecifierChar(), specType),
		SpecifierType: specType,
		CastType:      castType,
	}
}

// NewExcessSpecifiers reports a format string with more specifiers than
// arguments. additional counts the unmet specifiers.
func NewExcessSpecifiers(formatSpan, argsSpan csrc.Span, additional int) Error {
	help := "Add an argument or remove a specifier."
	if additional != 1 {
		help = fmt.Sprintf("Add %d arguments or remove %d specifiers.", additional, additional)
	}
	return Error{
		Kind: KindExcessSpecifiers,
		Labels: []Label{
			{Span: formatSpan, Message: fmt.Sprintf("%d too many specifiers", additional)},
			{Span: argsSpan, Message: "not enough arguments"},
		},
		Help:       help,
		Additional: additional,
	}
}

// NewExcessArgs reports a call passing more values than the format string
// consumes. additional counts the unconsumed arguments.
func NewExcessArgs(formatSpan, argsSpan csrc.Span, additional int) Error {
	help := "Add a specifier or remove an argument."
	if additional != 1 {
		help = fmt.Sprintf("Add %d specifiers or remove %d arguments.", additional, additional)
	}
	return Error{
		Kind: KindExcessArgs,
		Labels: []Label{
			{Span: formatSpan, Message: "not enough specifiers"},
			{Span: argsSpan, Message: fmt.Sprintf("%d too many arguments", additional)},
		},
		Help:       help,
		Additional: additional,
	}
}

// SourceErrors bundles everything the presentation layer needs to render a
// file's diagnostics: the filename, the source text, and the ordered error
// list. It is the only object handed across that boundary.
type SourceErrors struct {
	Filename string
	Source   []byte
	Errors   []Error
}

// NewSourceErrors creates the bundle.
func NewSourceErrors(filename string, source []byte, errs []Error) *SourceErrors {
	return &SourceErrors{Filename: filename, Source: source, Errors: errs}
}

func (e *SourceErrors) Error() string {
	return "Source code contains errors."
}
