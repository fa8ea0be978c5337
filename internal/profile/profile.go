// Package profile defines the page lists the generator scaffolds and the
// section table that assigns each page a template category.
package profile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/awoplatform/mdxgen/internal/docpath"
)

// Category selects the template used for a page.
type Category string

// String returns the category key.
func (c Category) String() string {
	return string(c)
}

// Profile is a named, ordered page list together with its category table.
type Profile struct {
	// Name is the profile identifier (minimal, complete, or a configured name).
	Name string

	// Description is a one-line summary shown in help output.
	Description string

	// Templates names the template set the categories are looked up in.
	// Defaults to Name when empty.
	Templates string

	// Paths is the ordered list of pages to scaffold.
	Paths []docpath.Entry

	// Sections maps a leading path segment to a category.
	Sections map[string]Category

	// Fallback is returned for sections missing from the table.
	Fallback Category

	// NextSteps are printed after a run that created files.
	NextSteps []string
}

// Resolve returns the category for a page. It never fails: unmapped sections
// resolve to the fallback category.
func (p *Profile) Resolve(entry docpath.Entry) Category {
	if c, ok := p.Sections[entry.Section()]; ok {
		return c
	}
	return p.Fallback
}

// TemplateSet returns the template set name for the profile.
func (p *Profile) TemplateSet() string {
	if p.Templates != "" {
		return p.Templates
	}
	return p.Name
}

// Categories returns the sorted, de-duplicated categories the profile can resolve to.
func (p *Profile) Categories() []Category {
	seen := map[Category]bool{p.Fallback: true}
	for _, c := range p.Sections {
		seen[c] = true
	}
	out := make([]Category, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Validate checks every path entry and the category table.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	if p.Fallback == "" {
		return fmt.Errorf("profile %q: fallback category cannot be empty", p.Name)
	}
	if len(p.Paths) == 0 {
		return fmt.Errorf("profile %q: path list is empty", p.Name)
	}

	seen := make(map[docpath.Entry]bool, len(p.Paths))
	var problems []string
	for _, e := range p.Paths {
		if err := e.Validate(); err != nil {
			problems = append(problems, err.Error())
			continue
		}
		if seen[e] {
			problems = append(problems, fmt.Sprintf("duplicate path entry %q", e))
		}
		seen[e] = true
	}
	for section, c := range p.Sections {
		if c == "" {
			problems = append(problems, fmt.Sprintf("section %q maps to an empty category", section))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("profile %q: %s", p.Name, strings.Join(problems, "; "))
	}
	return nil
}
