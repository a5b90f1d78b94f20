package ir

import (
	"bytes"
	"fmt"

	"github.com/printlint/printlint/pkg/csrc"
)

// RenderOptimize reconstructs the source with every tracked call rewritten
// to the checked-at-runtime safe_* form. The format string is split at its
// specifiers into literal chunks, and each value travels with its formatter
// function, so the callee never interprets user-controlled format text:
//
//	printf("x=%d\n", x)
//
// becomes
//
//	safe_printf(4, "x=", (void*) &(x), fmt_int, "\n")
//
// The leading count is the total argument count after the rewrite.
func (ir *IR) RenderOptimize() []byte {
	var b bytes.Buffer
	for _, p := range ir.Calls.Pairs {
		b.Write(p.Before)
		p.Value.renderOptimize(&b)
	}
	b.Write(ir.Calls.Last)
	return b.Bytes()
}

// RenderTypecast reconstructs the source with every tracked call kept on
// its original function but with each unverified argument wrapped in the
// cast its specifier demands. Calls whose arguments were already cast are
// reproduced as they were.
func (ir *IR) RenderTypecast() []byte {
	var b bytes.Buffer
	for _, p := range ir.Calls.Pairs {
		b.Write(p.Before)
		p.Value.renderTypecast(&b)
	}
	b.Write(ir.Calls.Last)
	return b.Bytes()
}

func (s Site) renderOptimize(b *bytes.Buffer) {
	switch s.Kind {
	case SiteSprintf:
		fmt.Fprintf(b, "safe_sprintf((char* restrict) (%s), ", s.Buffer)
	case SiteSnprintf:
		fmt.Fprintf(b, "safe_snprintf((char* restrict) (%s), (size_t) (%s), ", s.Buffer, s.Size)
	default:
		b.WriteString("safe_printf(")
	}

	// Each pair contributes its chunk, its pointer, and its formatter,
	// plus the one trailing chunk.
	fmt.Fprintf(b, "%d", len(s.Format.Pairs)*3+1)

	for _, p := range s.Format.Pairs {
		amp := "&"
		if p.Value.Type == csrc.CString {
			// A char* argument already is the pointer.
			amp = ""
		}
		fmt.Fprintf(b, ", \"%s\", (void*) %s(%s), %s",
			p.Before, amp, p.Value.Arg, p.Value.Type.FormatFn())
	}
	fmt.Fprintf(b, ", \"%s\")", s.Format.Last)
}

func (s Site) renderTypecast(b *bytes.Buffer) {
	switch s.Kind {
	case SiteSprintf:
		fmt.Fprintf(b, "sprintf((char* restrict) (%s), \"", s.Buffer)
	case SiteSnprintf:
		fmt.Fprintf(b, "snprintf((char* restrict) (%s), (size_t) (%s), \"", s.Buffer, s.Size)
	default:
		b.WriteString("printf(\"")
	}

	for _, p := range s.Format.Pairs {
		fmt.Fprintf(b, "%s%%%s%c", p.Before, p.Value.Options, p.Value.Type.SpecifierChar())
	}
	fmt.Fprintf(b, "%s\"", s.Format.Last)

	for _, p := range s.Format.Pairs {
		if p.Value.TypeChecked {
			fmt.Fprintf(b, ", %s", p.Value.Arg)
		} else {
			fmt.Fprintf(b, ", (%s) (%s)", p.Value.Type, p.Value.Arg)
		}
	}
	b.WriteByte(')')
}
