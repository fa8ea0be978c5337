package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/awoplatform/mdxgen/internal/errors"
	"github.com/awoplatform/mdxgen/internal/output"
	"github.com/awoplatform/mdxgen/internal/profile"
	"github.com/awoplatform/mdxgen/internal/scaffold"
	"github.com/awoplatform/mdxgen/internal/templates"
)

func runGenerate(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	p, err := selectProfile()
	if err != nil {
		return err
	}

	opts := scaffold.Options{
		Root:      resolvedConfig.Dir.Value,
		Extension: resolvedConfig.Extension.Value,
		Profile:   p,
		Out:       out,
	}

	if dryRunFlag {
		printPlan(out, scaffold.New(opts).Plan())
		return nil
	}

	if err := checkOutputRoot(resolvedConfig.Dir.Value); err != nil {
		return err
	}

	reg, err := loadTemplates(p)
	if err != nil {
		return err
	}

	opts.Renderer = reg

	fmt.Fprintln(out, output.StyleSummary.Render(fmt.Sprintf("Scaffolding %d pages", len(p.Paths)))+
		output.StyleDim.Render(fmt.Sprintf(" (profile %s, templates %s)", p.Name, reg.Name())))
	fmt.Fprintln(out)

	summary, runErr := scaffold.New(opts).Run(cmd.Context())
	printSummary(out, p, summary)

	if runErr != nil {
		return &oerrors.ExitError{
			Code: ExitInterrupted,
			Err:  fmt.Errorf("interrupted after %d of %d pages: %w", summary.Processed(), summary.Total, runErr),
		}
	}
	return nil
}

// selectProfile looks up the resolved profile among the built-in and configured ones.
func selectProfile() (*profile.Profile, error) {
	set, err := loadedConfig.ProfileSet()
	if err != nil {
		return nil, oerrors.Wrap(oerrors.ErrValidation, err.Error())
	}

	name := resolvedConfig.Profile.Value
	p, err := set.Get(name)
	if err != nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("unknown profile %q", name),
			"",
			"profile",
			fmt.Sprintf("Valid profiles: %s", strings.Join(set.Names(), ", ")))
	}
	output.Debug("selected profile", "name", p.Name, "description", p.Description, "pages", len(p.Paths))
	return p, nil
}

// loadTemplates returns the template directory when one is configured, the
// profile's embedded set otherwise.
func loadTemplates(p *profile.Profile) (*templates.Registry, error) {
	dir := resolvedConfig.Templates.Value

	var (
		reg *templates.Registry
		err error
	)
	if dir != "" {
		reg, err = templates.LoadDir(dir)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewNotFoundError(
				fmt.Sprintf("template directory %s does not exist", dir), dir, "")
		}
	} else {
		reg, err = templates.Load(p.TemplateSet())
	}
	if err != nil {
		return nil, &oerrors.DetailError{
			Type:     "invalid templates",
			Message:  err.Error(),
			Location: dir,
			Hint:     "Template files are <category>.mdx.tmpl with a front-matter description.",
			Cause:    oerrors.ErrValidation,
		}
	}

	if missing := reg.Missing(p.Categories()); len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for _, c := range missing {
			names = append(names, c.String())
		}
		output.Warn("template set has no template for some categories; their pages will fail",
			"templates", reg.Name(),
			"categories", strings.Join(names, ","))
	}

	output.Debug("loaded templates", "set", reg.Name(), "categories", len(reg.Categories()))
	for _, c := range reg.Categories() {
		if t, err := reg.Get(c); err == nil {
			output.Debug("template", "category", c, "summary", t.Summary, "source", t.Source)
		}
	}
	return reg, nil
}

// checkOutputRoot fails when the output root exists but is not a directory.
// A missing root is created along with the first page.
func checkOutputRoot(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case errors.Is(err, fs.ErrPermission):
		return oerrors.NewPermissionError("cannot access output root", dir, "Check the directory permissions.")
	case err != nil:
		return fmt.Errorf("checking output root %s: %w", dir, err)
	case !info.IsDir():
		return oerrors.NewValidationError("output root is not a directory", dir, "dir", "")
	}
	return nil
}

func printPlan(w io.Writer, plan []scaffold.Outcome) {
	fmt.Fprintln(w, output.StyleSummary.Render("Dry run - files that would be created:"))

	if output.IsTerminalWriter(w) {
		tbl := output.NewTable("#", "FILE", "CATEGORY")
		for i, o := range plan {
			tbl.Row(strconv.Itoa(i+1), o.File, o.Category.String())
		}
		fmt.Fprintln(w, tbl.String())
	} else {
		for i, o := range plan {
			fmt.Fprintf(w, "%d. %s (%s)\n", i+1, o.File, o.Category)
		}
	}

	fmt.Fprintf(w, "\nTotal: %d files\n", len(plan))
}

func printSummary(w io.Writer, p *profile.Profile, s *scaffold.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.StyleSummary.Render("Summary:"))
	fmt.Fprintf(w, "  Files created: %d\n", s.Created)
	fmt.Fprintf(w, "  Files skipped: %d\n", s.Skipped)
	fmt.Fprintf(w, "  Errors:        %d\n", s.Failed)
	fmt.Fprintf(w, "  Total files:   %d\n", s.Total)

	if s.Created > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, output.FormatCheckmark("Files created successfully"))
		if len(p.NextSteps) > 0 {
			fmt.Fprintln(w, "Next steps:")
			for i, step := range p.NextSteps {
				fmt.Fprintf(w, "  %d. %s\n", i+1, step)
			}
		}
	}

	if s.Failed > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, output.StyleWarning.Render("Some files failed to create. Check the error messages above."))
	}
}
