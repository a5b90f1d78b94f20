package scan_test

import (
	"testing"

	"github.com/printlint/printlint/pkg/csrc"
	"github.com/printlint/printlint/pkg/scan"
)

// collect drains the scanner into kind/text pairs for comparison.
func collect(t *testing.T, src string) []struct {
	Kind csrc.SourceKind
	Text string
} {
	t.Helper()

	scanner := scan.NewSourceScanner([]byte(src))
	var out []struct {
		Kind csrc.SourceKind
		Text string
	}
	for {
		tok, ok := scanner.Next()
		if !ok {
			return out
		}
		out = append(out, struct {
			Kind csrc.SourceKind
			Text string
		}{tok.Kind, string(tok.Span.Text([]byte(src)))})
	}
}

func TestSourceScannerTrackedNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want csrc.SourceKind
	}{
		{"printf", "printf", csrc.SrcPrintf},
		{"sprintf", "sprintf", csrc.SrcSprintf},
		{"snprintf", "snprintf", csrc.SrcSnprintf},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			toks := collect(t, testCase.src)
			if len(toks) != 1 {
				t.Fatalf("token count = %d, want 1", len(toks))
			}
			if toks[0].Kind != testCase.want {
				t.Errorf("kind = %v, want %v", toks[0].Kind, testCase.want)
			}
		})
	}
}

func TestSourceScannerSimilarNamesStayOther(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"printf_wrapper", "my_printf", "fprintf", "printfx"} {
		t.Run(src, func(t *testing.T) {
			t.Parallel()

			for _, tok := range collect(t, src) {
				switch tok.Kind {
				case csrc.SrcPrintf, csrc.SrcSprintf, csrc.SrcSnprintf:
					t.Errorf("token %q classified as tracked function", tok.Text)
				}
			}
		})
	}
}

func TestSourceScannerComments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"line comment", "// printf(x)\nint y;", "// printf(x)"},
		{"block comment", "/* printf(\"%d\", x) */ y", "/* printf(\"%d\", x) */"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			toks := collect(t, testCase.src)
			if len(toks) == 0 || toks[0].Kind != csrc.SrcComment {
				t.Fatalf("first token = %+v, want comment", toks)
			}
			if toks[0].Text != testCase.want {
				t.Errorf("comment text = %q, want %q", toks[0].Text, testCase.want)
			}
			for _, tok := range toks {
				if tok.Kind == csrc.SrcPrintf {
					t.Error("printf inside comment was tracked")
				}
			}
		})
	}
}

func TestSourceScannerUnterminatedBlockComment(t *testing.T) {
	t.Parallel()

	// The '/' falls through to ordinary tokenization instead of
	// swallowing the rest of the file.
	toks := collect(t, "/* open forever")
	if len(toks) == 0 {
		t.Fatal("no tokens produced")
	}
	if toks[0].Kind == csrc.SrcComment {
		t.Error("unterminated block comment matched as comment")
	}
}

func TestSourceScannerStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"plain", `"hello"`, `"hello"`},
		{"escaped quote", `"a\"b"`, `"a\"b"`},
		{"printf inside literal", `"printf(x)"`, `"printf(x)"`},
		{"adjacent literals merge", `"one" "two"`, `"one" "two"`},
		{"wide prefix", `L"wide"`, `L"wide"`},
		{"utf8 prefix", `u8"text"`, `u8"text"`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			toks := collect(t, testCase.src)
			if len(toks) != 1 {
				t.Fatalf("token count = %d (%+v), want 1", len(toks), toks)
			}
			if toks[0].Kind != csrc.SrcString {
				t.Fatalf("kind = %v, want string", toks[0].Kind)
			}
			if toks[0].Text != testCase.want {
				t.Errorf("text = %q, want %q", toks[0].Text, testCase.want)
			}
		})
	}
}

func TestSourceScannerUnterminatedString(t *testing.T) {
	t.Parallel()

	toks := collect(t, "\"never closed\nint x;")
	if len(toks) == 0 {
		t.Fatal("no tokens produced")
	}
	if toks[0].Kind == csrc.SrcString {
		t.Error("unterminated literal matched as string")
	}
}

func TestSourceScannerWholeCall(t *testing.T) {
	t.Parallel()

	src := `printf("%d", x);`
	toks := collect(t, src)

	wantKinds := []csrc.SourceKind{
		csrc.SrcPrintf, csrc.SrcLParen, csrc.SrcString,
		csrc.SrcOther, csrc.SrcOther, csrc.SrcRParen, csrc.SrcOther,
	}
	if len(toks) != len(wantKinds) {
		t.Fatalf("token count = %d (%+v), want %d", len(toks), toks, len(wantKinds))
	}
	for i, want := range wantKinds {
		if toks[i].Kind != want {
			t.Errorf("token %d (%q) kind = %v, want %v", i, toks[i].Text, toks[i].Kind, want)
		}
	}
}

func TestSourceScannerSetPos(t *testing.T) {
	t.Parallel()

	src := []byte("printf printf")
	scanner := scan.NewSourceScanner(src)

	tok, ok := scanner.Next()
	if !ok || tok.Kind != csrc.SrcPrintf {
		t.Fatalf("first token = %+v, %v", tok, ok)
	}

	scanner.SetPos(0)
	tok, ok = scanner.Next()
	if !ok || tok.Span.Start != 0 {
		t.Errorf("after SetPos(0), token = %+v, %v", tok, ok)
	}
}
