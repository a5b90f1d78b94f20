package csrc

// CType is one of the three C value types the checker can follow through a
// format string. There is deliberately no "unknown" member: specifiers the
// scanner does not recognize are left as literal text instead.
type CType uint8

const (
	// CInt covers %d and %i.
	CInt CType = iota

	// CFloat covers %f.
	CFloat

	// CString covers %s.
	CString
)

// SpecifierChar returns the format letter used when reconstructing a
// specifier for this type.
func (t CType) SpecifierChar() byte {
	switch t {
	case CFloat:
		return 'f'
	case CString:
		return 's'
	default:
		return 'd'
	}
}

// FormatFn returns the name of the runtime formatter function the optimized
// rewrite dispatches to for this type.
func (t CType) FormatFn() string {
	switch t {
	case CFloat:
		return "fmt_float"
	case CString:
		return "fmt_string"
	default:
		return "fmt_int"
	}
}

// String renders the type as it appears in C source, suitable for emitting
// a cast expression.
func (t CType) String() string {
	switch t {
	case CFloat:
		return "float"
	case CString:
		return "char*"
	default:
		return "int"
	}
}
