package diag

import (
	"github.com/printlint/printlint/pkg/csrc"
)

// Diagnostic is a fully resolved, presentation-ready finding: spans have
// been translated to one-based line/column positions against a snapshot.
// This is the shape the reporters serialize.
type Diagnostic struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Message  string          `json:"message"`
	FilePath string          `json:"filePath"`
	Labels   []ResolvedLabel `json:"labels"`
	Help     string          `json:"help,omitempty"`
}

// ResolvedLabel is a Label with its span located in the file.
type ResolvedLabel struct {
	Message   string `json:"message"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"endLine"`
	EndColumn int    `json:"endColumn"`

	// Span is the original byte range, kept for renderers that work on
	// the raw source.
	Span csrc.Span `json:"-"`
}

// Resolve locates one error's labels against the snapshot.
func Resolve(snap *csrc.Snapshot, e Error) Diagnostic {
	d := Diagnostic{
		Code:     e.Kind.Code(),
		Name:     e.Kind.Name(),
		Message:  e.Kind.Message(),
		FilePath: snap.Path,
		Help:     e.Help,
	}
	for _, l := range e.Labels {
		line, col := snap.LineAt(l.Span.Start)
		endLine, endCol := snap.LineAt(l.Span.End)
		d.Labels = append(d.Labels, ResolvedLabel{
			Message:   l.Message,
			Line:      line,
			Column:    col,
			EndLine:   endLine,
			EndColumn: endCol,
			Span:      l.Span,
		})
	}
	return d
}

// ResolveAll locates every error in the bundle, preserving order.
func ResolveAll(snap *csrc.Snapshot, errs []Error) []Diagnostic {
	out := make([]Diagnostic, 0, len(errs))
	for _, e := range errs {
		out = append(out, Resolve(snap, e))
	}
	return out
}
