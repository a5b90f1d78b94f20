package scan_test

import (
	"testing"

	"github.com/printlint/printlint/pkg/csrc"
	"github.com/printlint/printlint/pkg/scan"
)

func TestSpecifiersRecognizedTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		want   csrc.CType
	}{
		{"percent d", "%d", csrc.CInt},
		{"percent i", "%i", csrc.CInt},
		{"percent f", "%f", csrc.CFloat},
		{"percent s", "%s", csrc.CString},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			specs := scan.NewSpecifiers([]byte(testCase.format))
			spec, ok := specs.Next()
			if !ok {
				t.Fatal("no specifier found")
			}
			if spec.Type != testCase.want {
				t.Errorf("type = %v, want %v", spec.Type, testCase.want)
			}
			if len(spec.Options) != 0 {
				t.Errorf("options = %q, want empty", spec.Options)
			}
			if _, ok := specs.Next(); ok {
				t.Error("unexpected second specifier")
			}
		})
	}
}

func TestSpecifiersOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		options string
		ctype   csrc.CType
	}{
		{"width", "%5d", "5", csrc.CInt},
		{"sign and width", "%-2d", "-2", csrc.CInt},
		{"width and precision", "%-2.3f", "-2.3", csrc.CFloat},
		{"precision only", "%.2f", ".2", csrc.CFloat},
		{"plus sign", "%+4d", "+4", csrc.CInt},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			specs := scan.NewSpecifiers([]byte(testCase.format))
			spec, ok := specs.Next()
			if !ok {
				t.Fatal("no specifier found")
			}
			if string(spec.Options) != testCase.options {
				t.Errorf("options = %q, want %q", spec.Options, testCase.options)
			}
			if spec.Type != testCase.ctype {
				t.Errorf("type = %v, want %v", spec.Type, testCase.ctype)
			}
		})
	}
}

func TestSpecifiersUnrecognizedAreLiteralText(t *testing.T) {
	t.Parallel()

	// %x, %p, %% and a bare sign with no numeric part never become
	// specifiers; they stay literal and never consume an argument.
	for _, format := range []string{"%x", "%p", "%%", "%-", "100%"} {
		t.Run(format, func(t *testing.T) {
			t.Parallel()

			specs := scan.NewSpecifiers([]byte(format))
			if spec, ok := specs.Next(); ok {
				t.Errorf("Next() = %+v, want none", spec)
			}
			if got := string(specs.Remainder()); got != format {
				t.Errorf("Remainder() = %q, want %q", got, format)
			}
		})
	}
}

func TestSpecifiersBeforeAndRemainder(t *testing.T) {
	t.Parallel()

	specs := scan.NewSpecifiers([]byte("x=%d, y=%f!"))

	spec, ok := specs.Next()
	if !ok || spec.Type != csrc.CInt {
		t.Fatalf("first = %+v, %v", spec, ok)
	}
	if got := string(specs.Before()); got != "x=" {
		t.Errorf("Before() = %q, want %q", got, "x=")
	}

	spec, ok = specs.Next()
	if !ok || spec.Type != csrc.CFloat {
		t.Fatalf("second = %+v, %v", spec, ok)
	}
	if got := string(specs.Before()); got != ", y=" {
		t.Errorf("Before() = %q, want %q", got, ", y=")
	}

	if _, ok := specs.Next(); ok {
		t.Fatal("unexpected third specifier")
	}
	if got := string(specs.Remainder()); got != "!" {
		t.Errorf("Remainder() = %q, want %q", got, "!")
	}
}

func TestSpecifiersEscapedPercent(t *testing.T) {
	t.Parallel()

	// A backslash makes the next byte literal, so \%d is not a specifier.
	specs := scan.NewSpecifiers([]byte(`\%d %d`))
	spec, ok := specs.Next()
	if !ok {
		t.Fatal("no specifier found")
	}
	if got := string(specs.Before()); got != `\%d ` {
		t.Errorf("Before() = %q, want %q", got, `\%d `)
	}
	if spec.Type != csrc.CInt {
		t.Errorf("type = %v, want CInt", spec.Type)
	}
}

func TestSpecifiersSpan(t *testing.T) {
	t.Parallel()

	specs := scan.NewSpecifiers([]byte("ab%5dcd"))
	if _, ok := specs.Next(); !ok {
		t.Fatal("no specifier found")
	}

	// With the format content starting at source offset 10, %5d sits at
	// bytes 12-15.
	span := specs.Span(10)
	want := csrc.Span{Start: 12, End: 15}
	if span != want {
		t.Errorf("Span(10) = %v, want %v", span, want)
	}
}

func TestSpecifiersCount(t *testing.T) {
	t.Parallel()

	specs := scan.NewSpecifiers([]byte("%d %s %f"))
	if _, ok := specs.Next(); !ok {
		t.Fatal("no first specifier")
	}
	if got := specs.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestSpecifiersEmptyFormat(t *testing.T) {
	t.Parallel()

	specs := scan.NewSpecifiers(nil)
	if _, ok := specs.Next(); ok {
		t.Error("specifier found in empty format")
	}
	if got := specs.Remainder(); len(got) != 0 {
		t.Errorf("Remainder() = %q, want empty", got)
	}
}
