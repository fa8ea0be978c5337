// Package docpath handles documentation page paths: validation, target file
// names, and the human-readable titles derived from them.
package docpath

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultExtension is appended to every entry to form the target file name.
const DefaultExtension = ".mdx"

// Entry is a slash-separated page path relative to the docs root, without extension
// (e.g. "api-reference/payments/status").
type Entry string

// Validate checks that the entry is a clean relative path.
func (e Entry) Validate() error {
	s := string(e)
	if s == "" {
		return fmt.Errorf("path entry cannot be empty")
	}
	if strings.HasPrefix(s, "/") {
		return fmt.Errorf("invalid path entry %q: must not start with a slash", s)
	}
	if strings.HasSuffix(s, "/") {
		return fmt.Errorf("invalid path entry %q: must not end with a slash", s)
	}
	if strings.Contains(s, "\\") {
		return fmt.Errorf("invalid path entry %q: use forward slashes", s)
	}
	for _, seg := range strings.Split(s, "/") {
		switch seg {
		case "":
			return fmt.Errorf("invalid path entry %q: contains an empty segment", s)
		case ".", "..":
			return fmt.Errorf("invalid path entry %q: contains %q segment", s, seg)
		}
	}
	return nil
}

// Section returns the leading segment, or the whole entry when it has no separator.
func (e Entry) Section() string {
	s := string(e)
	if i := strings.Index(s, "/"); i >= 0 {
		return s[:i]
	}
	return s
}

// Base returns the final segment.
func (e Entry) Base() string {
	return path.Base(string(e))
}

// File returns the slash-separated file name with the extension appended.
func (e Entry) File(ext string) string {
	return string(e) + ext
}

// Target returns the OS-specific file location of the entry under root.
func (e Entry) Target(root, ext string) string {
	return filepath.Join(root, filepath.FromSlash(e.File(ext)))
}

// Title derives the page title from the final segment of the entry.
func (e Entry) Title() string {
	return Title(e.Base())
}

var upper = cases.Upper(language.Und)

// Title converts a hyphen-delimited name into space-separated words whose first
// character is upper-cased. The rest of each word is left untouched.
//
//	Title("mobile-money")    // "Mobile Money"
//	Title("rtsm-assessment") // "Rtsm Assessment"
func Title(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(string(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

var whitespace = regexp.MustCompile(`\s+`)

var lower = cases.Lower(language.Und)

// Lower returns the lower-cased title.
func Lower(title string) string {
	return lower.String(title)
}

// Compact removes all whitespace from the title ("Mobile Money" -> "MobileMoney").
func Compact(title string) string {
	return whitespace.ReplaceAllString(title, "")
}

// Slug lower-cases the title and replaces each run of whitespace with a hyphen
// ("Mobile Money" -> "mobile-money").
func Slug(title string) string {
	return whitespace.ReplaceAllString(Lower(title), "-")
}
