package templates

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/awoplatform/mdxgen/internal/docpath"
	"github.com/awoplatform/mdxgen/internal/frontmatter"
	"github.com/awoplatform/mdxgen/internal/profile"
)

// funcs are the title variants available inside templates.
var funcs = template.FuncMap{
	"lower":   docpath.Lower,
	"compact": docpath.Compact,
	"slug":    docpath.Slug,
}

// Parse builds a Template from a template file. The file starts with its own
// front-matter carrying a `description` pattern and an optional `summary`; the
// remainder is the page body.
func Parse(category profile.Category, source string, content []byte) (*Template, error) {
	header, body, had, err := frontmatter.Split(content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	if !had {
		return nil, fmt.Errorf("parsing %s: missing front-matter with a description", source)
	}

	fields, err := frontmatter.Parse(header)
	if err != nil {
		return nil, fmt.Errorf("parsing front-matter of %s: %w", source, err)
	}

	desc, ok := fields["description"].(string)
	if !ok || desc == "" {
		return nil, fmt.Errorf("parsing %s: front-matter must define a description", source)
	}
	summary, _ := fields["summary"].(string)

	descTmpl, err := newTemplate(source + ":description").Parse(desc)
	if err != nil {
		return nil, fmt.Errorf("parsing description of %s: %w", source, err)
	}
	bodyTmpl, err := newTemplate(source).Parse(string(body))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}

	return &Template{
		Category:    category,
		Summary:     summary,
		Source:      source,
		description: descTmpl,
		body:        bodyTmpl,
	}, nil
}

func newTemplate(name string) *template.Template {
	return template.New(name).Funcs(funcs).Option("missingkey=error")
}

// Render returns the complete page for a title: a front-matter header with the
// title and description followed by the body.
func (t *Template) Render(title string) ([]byte, error) {
	data := TemplateData{Title: title}

	var desc bytes.Buffer
	if err := t.description.Execute(&desc, data); err != nil {
		return nil, fmt.Errorf("executing description of %s: %w", t.Source, err)
	}

	var body bytes.Buffer
	if err := t.body.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("executing %s: %w", t.Source, err)
	}

	doc, err := frontmatter.Render([]frontmatter.Field{
		{Key: "title", Value: title},
		{Key: "description", Value: desc.String()},
	}, body.Bytes())
	if err != nil {
		return nil, fmt.Errorf("serializing front-matter for %s: %w", t.Source, err)
	}
	return doc, nil
}
