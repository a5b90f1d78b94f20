package csrc_test

import (
	"testing"

	"github.com/printlint/printlint/pkg/csrc"
)

func TestSnapshotLineAt(t *testing.T) {
	t.Parallel()

	snap := csrc.NewSnapshot("test.c", []byte("int x;\nprintf(\"%d\", x);\n"))

	tests := []struct {
		name     string
		offset   int
		wantLine int
		wantCol  int
	}{
		{"start of file", 0, 1, 1},
		{"middle of first line", 4, 1, 5},
		{"newline byte", 6, 1, 7},
		{"start of second line", 7, 2, 1},
		{"inside second line", 14, 2, 8},
		{"past end clamps to last line", 100, 3, 1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			line, col := snap.LineAt(testCase.offset)
			if line != testCase.wantLine || col != testCase.wantCol {
				t.Errorf("LineAt(%d) = %d:%d, want %d:%d",
					testCase.offset, line, col, testCase.wantLine, testCase.wantCol)
			}
		})
	}
}

func TestSnapshotLineContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		line    int
		want    string
		wantNil bool
	}{
		{"first line", "alpha\nbeta\n", 1, "alpha", false},
		{"second line", "alpha\nbeta\n", 2, "beta", false},
		{"crlf stripped", "alpha\r\nbeta\r\n", 1, "alpha", false},
		{"last line without newline", "alpha\nbeta", 2, "beta", false},
		{"line zero", "alpha", 0, "", true},
		{"line out of range", "alpha", 5, "", true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			snap := csrc.NewSnapshot("test.c", []byte(testCase.content))
			got := snap.LineContent(testCase.line)

			if testCase.wantNil {
				if got != nil {
					t.Errorf("LineContent(%d) = %q, want nil", testCase.line, got)
				}
				return
			}
			if string(got) != testCase.want {
				t.Errorf("LineContent(%d) = %q, want %q", testCase.line, got, testCase.want)
			}
		})
	}
}

func TestSnapshotLineCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty file", "", 1},
		{"one line no newline", "hello", 1},
		{"one line with newline", "hello\n", 2},
		{"three lines", "a\nb\nc", 3},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			snap := csrc.NewSnapshot("test.c", []byte(testCase.content))
			if got := snap.LineCount(); got != testCase.want {
				t.Errorf("LineCount() = %d, want %d", got, testCase.want)
			}
		})
	}
}
