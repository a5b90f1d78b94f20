package ir_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/printlint/printlint/pkg/csrc"
	"github.com/printlint/printlint/pkg/diag"
	"github.com/printlint/printlint/pkg/ir"
)

func mustParse(t *testing.T, src string) *ir.IR {
	t.Helper()

	parsed, errs := ir.Parse([]byte(src))
	if len(errs) != 0 {
		t.Fatalf("Parse(%q) errors = %+v", src, errs)
	}
	if parsed == nil {
		t.Fatalf("Parse(%q) returned nil IR with no errors", src)
	}
	return parsed
}

func mustFail(t *testing.T, src string) []diag.Error {
	t.Helper()

	parsed, errs := ir.Parse([]byte(src))
	if parsed != nil {
		t.Fatalf("Parse(%q) returned an IR despite errors", src)
	}
	if len(errs) == 0 {
		t.Fatalf("Parse(%q) returned no errors", src)
	}
	return errs
}

func TestParseNoTrackedCalls(t *testing.T) {
	t.Parallel()

	tests := []string{
		"",
		"int main(void) { return 0; }\n",
		"// printf(\"%d\")\n",
		"const char *s = \"printf(%d)\";\n",
		"fprintf(stderr, \"%d\", x);\n",
	}

	for _, src := range tests {
		parsed := mustParse(t, src)
		if parsed.SiteCount() != 0 {
			t.Errorf("SiteCount(%q) = %d, want 0", src, parsed.SiteCount())
		}
		if got := string(parsed.Calls.Last); got != src {
			t.Errorf("Last = %q, want the whole source %q", got, src)
		}
	}
}

func TestParseTrackedNameWithoutCall(t *testing.T) {
	t.Parallel()

	// A tracked name not followed by '(' is plain text.
	src := "int (*fn)(const char*, ...) = printf;\n"
	parsed := mustParse(t, src)
	if parsed.SiteCount() != 0 {
		t.Errorf("SiteCount() = %d, want 0", parsed.SiteCount())
	}
}

func TestParseSimpleCall(t *testing.T) {
	t.Parallel()

	src := `int main(void) { printf("x=%d\n", x); return 0; }`
	parsed := mustParse(t, src)

	if parsed.SiteCount() != 1 {
		t.Fatalf("SiteCount() = %d, want 1", parsed.SiteCount())
	}

	pair := parsed.Calls.Pairs[0]
	if got := string(pair.Before); got != "int main(void) { " {
		t.Errorf("Before = %q", got)
	}

	site := pair.Value
	if site.Kind != ir.SitePrintf {
		t.Errorf("Kind = %v, want SitePrintf", site.Kind)
	}
	if len(site.Format.Pairs) != 1 {
		t.Fatalf("format pairs = %d, want 1", len(site.Format.Pairs))
	}

	value := site.Format.Pairs[0].Value
	if value.Type != csrc.CInt {
		t.Errorf("value type = %v, want CInt", value.Type)
	}
	if got := string(value.Arg); got != "x" {
		t.Errorf("value arg = %q, want %q", got, "x")
	}
	if value.TypeChecked {
		t.Error("TypeChecked = true for uncast argument")
	}
	if got := string(site.Format.Pairs[0].Before); got != "x=" {
		t.Errorf("format chunk = %q, want %q", got, "x=")
	}
	if got := string(site.Format.Last); got != `\n` {
		t.Errorf("format last = %q, want %q", got, `\n`)
	}

	if got := string(parsed.Calls.Last); got != "; return 0; }" {
		t.Errorf("Last = %q, want %q", got, "; return 0; }")
	}
}

func TestParseSprintfAndSnprintfPreArgs(t *testing.T) {
	t.Parallel()

	t.Run("sprintf carries buffer", func(t *testing.T) {
		t.Parallel()

		parsed := mustParse(t, `sprintf(buf, "%d", x);`)
		site := parsed.Calls.Pairs[0].Value
		if site.Kind != ir.SiteSprintf {
			t.Errorf("Kind = %v, want SiteSprintf", site.Kind)
		}
		if got := string(site.Buffer); got != "buf" {
			t.Errorf("Buffer = %q, want %q", got, "buf")
		}
		if site.Size != nil {
			t.Errorf("Size = %q, want nil", site.Size)
		}
	})

	t.Run("snprintf carries buffer and size", func(t *testing.T) {
		t.Parallel()

		parsed := mustParse(t, `snprintf(buf, sizeof(buf), "%s", str);`)
		site := parsed.Calls.Pairs[0].Value
		if site.Kind != ir.SiteSnprintf {
			t.Errorf("Kind = %v, want SiteSnprintf", site.Kind)
		}
		if got := string(site.Buffer); got != "buf" {
			t.Errorf("Buffer = %q, want %q", got, "buf")
		}
		if got := string(site.Size); got != "sizeof(buf)" {
			t.Errorf("Size = %q, want %q", got, "sizeof(buf)")
		}
	})
}

func TestParseUncastArgumentsAlwaysValidate(t *testing.T) {
	t.Parallel()

	// Without casts there is nothing to check types against.
	for _, src := range []string{
		`printf("%d", some_string);`,
		`printf("%s", 42);`,
		`printf("%f", a + b);`,
	} {
		mustParse(t, src)
	}
}

func TestParseMatchingCastValidates(t *testing.T) {
	t.Parallel()

	parsed := mustParse(t, `printf("%d %f %s", (int) a, (float) b, (char*) c);`)
	pairs := parsed.Calls.Pairs[0].Value.Format.Pairs
	if len(pairs) != 3 {
		t.Fatalf("format pairs = %d, want 3", len(pairs))
	}
	for i, p := range pairs {
		if !p.Value.TypeChecked {
			t.Errorf("pair %d TypeChecked = false, want true", i)
		}
	}
}

func TestParseCastMismatch(t *testing.T) {
	t.Parallel()

	errs := mustFail(t, `printf("%d", (float) x);`)
	if len(errs) != 1 {
		t.Fatalf("errors = %d (%+v), want 1", len(errs), errs)
	}

	e := errs[0]
	if e.Kind != diag.KindSpecifierCastMismatch {
		t.Fatalf("kind = %v, want SpecifierCastMismatch", e.Kind)
	}
	if e.SpecifierType != csrc.CInt {
		t.Errorf("specifier type = %v, want CInt", e.SpecifierType)
	}
	if e.CastType != csrc.CFloat {
		t.Errorf("cast type = %v, want CFloat", e.CastType)
	}
	if len(e.Labels) != 2 {
		t.Fatalf("labels = %d, want 2", len(e.Labels))
	}

	src := `printf("%d", (float) x);`
	if got := string(e.Labels[0].Span.Text([]byte(src))); got != "%d" {
		t.Errorf("specifier label covers %q, want %q", got, "%d")
	}
	if got := string(e.Labels[1].Span.Text([]byte(src))); got != "(float)" {
		t.Errorf("cast label covers %q, want %q", got, "(float)")
	}
}

func TestParsePrefixedFormatLiteral(t *testing.T) {
	t.Parallel()

	// A comment, cast, or paren in front of the literal belongs to the
	// argument but not to the format text.
	tests := []struct {
		name  string
		src   string
		chunk string
		last  string
	}{
		{"comment before literal", `printf(/* note */ "x=%d", x);`, "x=", ""},
		{"cast before literal", `printf((char*) "a%d", x);`, "a", ""},
		{"parenthesized literal", `printf(("%d!"), x);`, "", "!"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			parsed := mustParse(t, testCase.src)
			site := parsed.Calls.Pairs[0].Value
			if len(site.Format.Pairs) != 1 {
				t.Fatalf("format pairs = %d, want 1", len(site.Format.Pairs))
			}
			if got := string(site.Format.Pairs[0].Before); got != testCase.chunk {
				t.Errorf("format chunk = %q, want %q", got, testCase.chunk)
			}
			if got := string(site.Format.Last); got != testCase.last {
				t.Errorf("format last = %q, want %q", got, testCase.last)
			}
		})
	}
}

func TestParseCastMismatchAfterCommentedFormat(t *testing.T) {
	t.Parallel()

	// The specifier label stays anchored inside the string literal even
	// when a comment sits between '(' and the literal.
	src := `printf(/* n */ "%d", (float) x);`
	errs := mustFail(t, src)
	if len(errs) != 1 {
		t.Fatalf("errors = %d (%+v), want 1", len(errs), errs)
	}

	e := errs[0]
	if e.Kind != diag.KindSpecifierCastMismatch {
		t.Fatalf("kind = %v, want SpecifierCastMismatch", e.Kind)
	}
	if got := string(e.Labels[0].Span.Text([]byte(src))); got != "%d" {
		t.Errorf("specifier label covers %q, want %q", got, "%d")
	}
	if got := string(e.Labels[1].Span.Text([]byte(src))); got != "(float)" {
		t.Errorf("cast label covers %q, want %q", got, "(float)")
	}
}

func TestParseCastMismatchReportsEveryBadPairing(t *testing.T) {
	t.Parallel()

	// Type errors degrade and continue: both mismatches in one call.
	errs := mustFail(t, `printf("%d %s", (float) a, (int) b);`)
	if len(errs) != 2 {
		t.Fatalf("errors = %d (%+v), want 2", len(errs), errs)
	}
	for i, e := range errs {
		if e.Kind != diag.KindSpecifierCastMismatch {
			t.Errorf("error %d kind = %v, want SpecifierCastMismatch", i, e.Kind)
		}
	}
}

func TestParseExcessArgs(t *testing.T) {
	t.Parallel()

	errs := mustFail(t, `printf("no specifiers", x);`)
	if len(errs) != 1 {
		t.Fatalf("errors = %d (%+v), want 1", len(errs), errs)
	}
	e := errs[0]
	if e.Kind != diag.KindExcessArgs {
		t.Fatalf("kind = %v, want ExcessArgs", e.Kind)
	}
	if e.Additional != 1 {
		t.Errorf("Additional = %d, want 1", e.Additional)
	}
}

func TestParseExcessSpecifiers(t *testing.T) {
	t.Parallel()

	errs := mustFail(t, `printf("%d %d", x);`)
	if len(errs) != 1 {
		t.Fatalf("errors = %d (%+v), want 1", len(errs), errs)
	}
	e := errs[0]
	if e.Kind != diag.KindExcessSpecifiers {
		t.Fatalf("kind = %v, want ExcessSpecifiers", e.Kind)
	}
	if e.Additional != 1 {
		t.Errorf("Additional = %d, want 1", e.Additional)
	}
}

func TestParseExcessCounts(t *testing.T) {
	t.Parallel()

	t.Run("three unmet specifiers", func(t *testing.T) {
		t.Parallel()

		errs := mustFail(t, `printf("%d %d %d %d", x);`)
		if errs[0].Additional != 3 {
			t.Errorf("Additional = %d, want 3", errs[0].Additional)
		}
	})

	t.Run("two extra arguments", func(t *testing.T) {
		t.Parallel()

		errs := mustFail(t, `printf("%d", x, y, z);`)
		if errs[0].Additional != 2 {
			t.Errorf("Additional = %d, want 2", errs[0].Additional)
		}
	})
}

func TestParseNonliteralFormat(t *testing.T) {
	t.Parallel()

	t.Run("bare identifier suggests safe replacement", func(t *testing.T) {
		t.Parallel()

		errs := mustFail(t, "printf(name);")
		e := errs[0]
		if e.Kind != diag.KindNonliteralFormat {
			t.Fatalf("kind = %v, want NonliteralFormat", e.Kind)
		}
		if !strings.Contains(e.Help, `printf("%s", name)`) {
			t.Errorf("help = %q, want the printf(%%s, name) suggestion", e.Help)
		}
	})

	t.Run("comment before identifier keeps the suggestion clean", func(t *testing.T) {
		t.Parallel()

		errs := mustFail(t, "printf(/* fmt */ name);")
		e := errs[0]
		if e.Kind != diag.KindNonliteralFormat {
			t.Fatalf("kind = %v, want NonliteralFormat", e.Kind)
		}
		if !strings.Contains(e.Help, `printf("%s", name)`) {
			t.Errorf("help = %q, want the printf(%%s, name) suggestion", e.Help)
		}
	})

	t.Run("expression gets generic help", func(t *testing.T) {
		t.Parallel()

		errs := mustFail(t, "printf(a + b);")
		e := errs[0]
		if e.Kind != diag.KindNonliteralFormat {
			t.Fatalf("kind = %v, want NonliteralFormat", e.Kind)
		}
		if strings.Contains(e.Help, "a + b") {
			t.Errorf("help = %q, must not suggest passing an expression", e.Help)
		}
	})
}

func TestParseMissingFunctionArgs(t *testing.T) {
	t.Parallel()

	for _, src := range []string{
		"printf();",
		"sprintf(buf);",
		"snprintf(buf, n);",
	} {
		t.Run(src, func(t *testing.T) {
			t.Parallel()

			errs := mustFail(t, src)
			if errs[0].Kind != diag.KindMissingFunctionArgs {
				t.Errorf("kind = %v, want MissingFunctionArgs", errs[0].Kind)
			}
		})
	}
}

func TestParseNestedCallIsOneArgument(t *testing.T) {
	t.Parallel()

	parsed := mustParse(t, `printf("%d", f(a, b));`)
	pairs := parsed.Calls.Pairs[0].Value.Format.Pairs
	if len(pairs) != 1 {
		t.Fatalf("format pairs = %d, want 1", len(pairs))
	}
	if got := string(pairs[0].Value.Arg); got != "f(a, b)" {
		t.Errorf("arg = %q, want %q", got, "f(a, b)")
	}
}

func TestParseOneFailurePoisonsWholeFile(t *testing.T) {
	t.Parallel()

	// The second call is fine but the first fails, so no IR exists; the
	// scan still continues past the failure.
	src := `printf("%d");` + "\n" + `printf("%d", x);` + "\n" + `printf(fmt);`
	parsed, errs := ir.Parse([]byte(src))
	if parsed != nil {
		t.Fatal("IR built despite errors")
	}
	if len(errs) != 2 {
		t.Fatalf("errors = %d (%+v), want 2", len(errs), errs)
	}
	if errs[0].Kind != diag.KindExcessSpecifiers {
		t.Errorf("first kind = %v, want ExcessSpecifiers", errs[0].Kind)
	}
	if errs[1].Kind != diag.KindNonliteralFormat {
		t.Errorf("second kind = %v, want NonliteralFormat", errs[1].Kind)
	}
}

func TestParseDeterministic(t *testing.T) {
	t.Parallel()

	src := []byte(`printf("%d %s", (float) a, b); sprintf(buf, "%f", x);`)

	first, errs1 := ir.Parse(src)
	second, errs2 := ir.Parse(src)

	if !reflect.DeepEqual(errs1, errs2) {
		t.Errorf("error lists differ:\n%+v\n%+v", errs1, errs2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("IRs differ:\n%+v\n%+v", first, second)
	}
}

func TestParseMultipleSites(t *testing.T) {
	t.Parallel()

	src := `printf("a"); sprintf(buf, "%d", x); snprintf(buf, n, "%s", s);`
	parsed := mustParse(t, src)
	if parsed.SiteCount() != 3 {
		t.Fatalf("SiteCount() = %d, want 3", parsed.SiteCount())
	}

	wantKinds := []ir.SiteKind{ir.SitePrintf, ir.SiteSprintf, ir.SiteSnprintf}
	for i, want := range wantKinds {
		if got := parsed.Calls.Pairs[i].Value.Kind; got != want {
			t.Errorf("site %d kind = %v, want %v", i, got, want)
		}
	}
}
