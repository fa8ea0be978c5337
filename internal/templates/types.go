package templates

import (
	"text/template"

	"github.com/awoplatform/mdxgen/internal/profile"
)

// Template renders the page for one category.
type Template struct {
	// Category is the key the template is registered under.
	Category profile.Category

	// Summary is a short human-readable label for listings.
	Summary string

	// Source is the file the template was loaded from.
	Source string

	description *template.Template
	body        *template.Template
}

// TemplateData holds the data passed to template rendering.
type TemplateData struct {
	// Title is the page title derived from the file name (e.g. "Mobile Money").
	Title string
}
