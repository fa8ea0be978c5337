package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/awoplatform/mdxgen/internal/profile"
)

// ErrUnknownCategory is returned when no template is registered for a category.
var ErrUnknownCategory = errors.New("unknown template category")

// Registry maps categories to their templates.
type Registry struct {
	name      string
	templates map[profile.Category]*Template
}

// Load returns the registry for an embedded template set.
func Load(set string) (*Registry, error) {
	if !IsValidSet(set) {
		return nil, fmt.Errorf("unknown template set %q; valid sets: %s", set, strings.Join(ValidSets(), ", "))
	}
	return LoadFS(TemplateFS, set, set)
}

// LoadDir returns a registry built from the template files in a directory.
func LoadDir(dir string) (*Registry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("reading template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir), ".", dir)
}

// LoadFS reads every template file directly under root in fsys. name is used in
// error messages and listings.
func LoadFS(fsys fs.FS, root, name string) (*Registry, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("reading template set %s: %w", name, err)
	}

	r := &Registry{
		name:      name,
		templates: make(map[profile.Category]*Template),
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}

		category := strings.TrimSuffix(e.Name(), Extension)
		if err := ValidateCategoryName(category); err != nil {
			return nil, fmt.Errorf("template set %s: %w", name, err)
		}

		source := path.Join(root, e.Name())
		content, err := fs.ReadFile(fsys, source)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", source, err)
		}

		tmpl, err := Parse(profile.Category(category), source, content)
		if err != nil {
			return nil, err
		}
		r.templates[tmpl.Category] = tmpl
	}

	if len(r.templates) == 0 {
		return nil, fmt.Errorf("template set %s contains no %s files", name, Extension)
	}
	return r, nil
}

// Name returns the set name or directory the registry was loaded from.
func (r *Registry) Name() string {
	return r.name
}

// Get returns the template for a category.
func (r *Registry) Get(c profile.Category) (*Template, error) {
	t, ok := r.templates[c]
	if !ok {
		return nil, fmt.Errorf("%w %q in template set %s", ErrUnknownCategory, c, r.name)
	}
	return t, nil
}

// Render renders the page for a category and title.
func (r *Registry) Render(c profile.Category, title string) ([]byte, error) {
	t, err := r.Get(c)
	if err != nil {
		return nil, err
	}
	return t.Render(title)
}

// Categories returns the registered categories in sorted order.
func (r *Registry) Categories() []profile.Category {
	out := make([]profile.Category, 0, len(r.templates))
	for c := range r.templates {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Missing returns the categories in want that have no template.
func (r *Registry) Missing(want []profile.Category) []profile.Category {
	var missing []profile.Category
	for _, c := range want {
		if _, ok := r.templates[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}
