package csrc

import "sort"

// Snapshot is an immutable view of one source file: its path, its content,
// and a line index for resolving byte offsets to 1-based line/column pairs.
type Snapshot struct {
	// Path is the file path the content was read from.
	Path string

	// Content is the raw file content. Never mutated after construction.
	Content []byte

	// lineStarts[i] is the byte offset of the first byte of line i+1.
	lineStarts []int
}

// NewSnapshot builds a snapshot and its line index from file content.
func NewSnapshot(path string, content []byte) *Snapshot {
	starts := []int{0}
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Snapshot{Path: path, Content: content, lineStarts: starts}
}

// LineCount returns the number of lines in the file.
func (s *Snapshot) LineCount() int {
	return len(s.lineStarts)
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Columns count bytes, not runes. Offsets at or past the end of content
// resolve to a position on the last line.
func (s *Snapshot) LineAt(offset int) (line, col int) {
	if offset < 0 {
		return 0, 0
	}
	if offset > len(s.Content) {
		offset = len(s.Content)
	}

	// Find the last line start <= offset.
	idx := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	}) - 1

	return idx + 1, offset - s.lineStarts[idx] + 1
}

// LineContent returns the bytes of a 1-based line number, excluding the
// trailing newline. Returns nil if the line number is out of range.
func (s *Snapshot) LineContent(line int) []byte {
	if line < 1 || line > len(s.lineStarts) {
		return nil
	}
	start := s.lineStarts[line-1]
	end := len(s.Content)
	if line < len(s.lineStarts) {
		end = s.lineStarts[line] - 1
		if end > start && s.Content[end-1] == '\r' {
			end--
		}
	}
	return s.Content[start:end]
}
