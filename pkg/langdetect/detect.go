// Package langdetect decides whether a file is C source the analyzer should
// scan. Extension checks handle the common cases; go-enry settles the
// ambiguous ones, .h headers especially, which it can classify as C, C++,
// or Objective-C depending on content.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// IsCSource reports whether path/content is a C translation unit or header.
// content may be nil when only the path is known; detection then falls back
// to the extension alone.
func IsCSource(path string, content []byte) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".c":
		return true
	case ".h":
		// Headers are shared across C, C++ and Objective-C. Without
		// content, give the header the benefit of the doubt.
		if len(content) == 0 {
			return true
		}
		return headerIsC(path, content)
	}

	if len(content) == 0 {
		return false
	}
	for _, lang := range enry.GetLanguages(path, content) {
		if lang == "C" {
			return true
		}
	}
	return false
}

// headerIsC classifies a .h file's content. enry returns candidates in
// confidence order; C anywhere in the list is good enough, since a C++
// header that also parses as C scans harmlessly.
func headerIsC(path string, content []byte) bool {
	langs := enry.GetLanguages(path, content)
	if len(langs) == 0 {
		return true
	}
	for _, lang := range langs {
		switch lang {
		case "C", "C++", "Objective-C":
			return true
		}
	}
	return false
}

// IsVendored reports whether the path looks like third-party or generated
// code that discovery should skip by default.
func IsVendored(path string) bool {
	return enry.IsVendor(filepath.ToSlash(path))
}
