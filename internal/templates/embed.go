// Package templates provides the embedded page template sets and their rendering.
package templates

import (
	"embed"
	"io/fs"
	"sort"
)

// TemplateFS holds the built-in template sets, one directory per set.
//
//go:embed minimal/*.mdx.tmpl complete/*.mdx.tmpl
var TemplateFS embed.FS

// Extension is the suffix of template files; the category is the file name
// without it (e.g. "api-reference.mdx.tmpl").
const Extension = ".mdx.tmpl"

// ValidSets returns the names of the embedded template sets.
func ValidSets() []string {
	entries, err := fs.ReadDir(TemplateFS, ".")
	if err != nil {
		return nil
	}

	var sets []string
	for _, e := range entries {
		if e.IsDir() {
			sets = append(sets, e.Name())
		}
	}
	sort.Strings(sets)
	return sets
}

// IsValidSet checks if an embedded template set exists.
func IsValidSet(name string) bool {
	for _, s := range ValidSets() {
		if s == name {
			return true
		}
	}
	return false
}
