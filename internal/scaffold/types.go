// Package scaffold writes the placeholder pages of a profile to disk.
package scaffold

import (
	"io"

	"github.com/awoplatform/mdxgen/internal/docpath"
	"github.com/awoplatform/mdxgen/internal/profile"
	"github.com/awoplatform/mdxgen/internal/templates"
)

// Renderer renders the page of a category for a title.
type Renderer interface {
	Render(c profile.Category, title string) ([]byte, error)
}

var _ Renderer = (*templates.Registry)(nil)

// Options configures a Generator.
type Options struct {
	// Root is the directory pages are written under. Defaults to ".".
	Root string

	// Extension is appended to every entry. Defaults to ".mdx".
	Extension string

	// Profile provides the page list and the category table.
	Profile *profile.Profile

	// Renderer renders page content, usually a *templates.Registry.
	Renderer Renderer

	// Out receives one progress line per page. Defaults to io.Discard.
	Out io.Writer
}

// Outcome is the result for one page.
type Outcome struct {
	// Entry is the page path from the profile.
	Entry docpath.Entry

	// File is the target file as shown to the user (e.g. "guides/deployment.mdx").
	File string

	// Category is the resolved template category.
	Category profile.Category

	// Status is created, skipped, failed, or planned.
	Status Status

	// Err is set when Status is failed.
	Err error
}

// Summary aggregates the outcomes of one run.
type Summary struct {
	Created  int
	Skipped  int
	Failed   int
	Total    int
	Outcomes []Outcome
}

func (s *Summary) add(o Outcome) {
	switch o.Status {
	case StatusCreated:
		s.Created++
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	}
	s.Outcomes = append(s.Outcomes, o)
}

// Processed returns the number of pages handled so far.
func (s *Summary) Processed() int {
	return len(s.Outcomes)
}
