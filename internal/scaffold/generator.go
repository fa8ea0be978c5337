package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/awoplatform/mdxgen/internal/docpath"
	"github.com/awoplatform/mdxgen/internal/output"
)

// Generator scaffolds the pages of a profile, one at a time in list order.
type Generator struct {
	opts Options
}

// New creates a generator with the given options.
func New(opts Options) *Generator {
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.Extension == "" {
		opts.Extension = docpath.DefaultExtension
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Generator{opts: opts}
}

// Plan returns what a run would do without touching the filesystem.
func (g *Generator) Plan() []Outcome {
	plan := make([]Outcome, 0, len(g.opts.Profile.Paths))
	for _, entry := range g.opts.Profile.Paths {
		plan = append(plan, Outcome{
			Entry:    entry,
			File:     g.displayName(entry),
			Category: g.opts.Profile.Resolve(entry),
			Status:   StatusPlanned,
		})
	}
	return plan
}

// Run scaffolds every page of the profile. A page that fails is recorded and the
// run moves on. The only error returned is the context's, when it is cancelled
// between pages; the summary then covers the pages handled so far.
func (g *Generator) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{Total: len(g.opts.Profile.Paths)}

	output.Debug("generating pages",
		"profile", g.opts.Profile.Name,
		"root", g.opts.Root,
		"pages", summary.Total)

	for _, entry := range g.opts.Profile.Paths {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		o := g.generate(entry)
		summary.add(o)
		g.report(o)
	}

	return summary, nil
}

func (g *Generator) generate(entry docpath.Entry) Outcome {
	o := Outcome{Entry: entry, File: g.displayName(entry)}

	if err := entry.Validate(); err != nil {
		return o.failed(err)
	}
	o.Category = g.opts.Profile.Resolve(entry)
	target := entry.Target(g.opts.Root, g.opts.Extension)

	exists, err := Exists(target)
	if err != nil {
		return o.failed(fmt.Errorf("checking %s: %w", target, err))
	}
	if exists {
		o.Status = StatusSkipped
		return o
	}

	content, err := g.opts.Renderer.Render(o.Category, entry.Title())
	if err != nil {
		return o.failed(err)
	}

	dir := filepath.Dir(target)
	created, err := EnsureDir(dir)
	if err != nil {
		return o.failed(err)
	}
	if created {
		output.Debug("created directory", "path", dir)
	}

	if err := WriteNew(target, content); err != nil {
		if errors.Is(err, fs.ErrExist) {
			o.Status = StatusSkipped
			return o
		}
		return o.failed(err)
	}

	o.Status = StatusCreated
	return o
}

func (g *Generator) report(o Outcome) {
	fmt.Fprintln(g.opts.Out, output.FormatStatusLine(o.File, string(o.Status)))
	if o.Status == StatusFailed {
		output.Error("creating page", "path", o.Entry, "error", o.Err)
	}
}

// displayName is the target file relative to the working directory, with
// forward slashes.
func (g *Generator) displayName(entry docpath.Entry) string {
	return filepath.ToSlash(filepath.Join(g.opts.Root, filepath.FromSlash(entry.File(g.opts.Extension))))
}

func (o Outcome) failed(err error) Outcome {
	o.Status = StatusFailed
	o.Err = err
	return o
}
