package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/awoplatform/mdxgen/internal/docpath"
	"github.com/awoplatform/mdxgen/internal/templates"
)

// profileNameRegex validates configured profile names.
var profileNameRegex = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks the configuration values and every configured profile.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if cfg.Extension != "" {
		if err := ValidateExtension(cfg.Extension); err != nil {
			errs = append(errs, *err)
		}
	}

	for field, value := range map[string]string{"dir": cfg.Dir, "templates": cfg.Templates, "profile": cfg.Profile} {
		if value != "" && strings.TrimSpace(value) == "" {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "must not be empty or whitespace only",
			})
		}
	}

	for name, pc := range cfg.Profiles {
		errs = append(errs, validateProfile(name, pc)...)
	}

	if len(errs) > 0 {
		sort.SliceStable(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
		return errs
	}

	return nil
}

func validateProfile(name string, pc ProfileConfig) ValidationErrors {
	var errs ValidationErrors
	field := "profiles." + name

	if !profileNameRegex.MatchString(name) {
		errs = append(errs, ValidationError{
			Field:   field,
			Message: "profile name must be lowercase alphanumeric with hyphens",
		})
	}

	if len(pc.Paths) == 0 {
		errs = append(errs, ValidationError{Field: field + ".paths", Message: "must list at least one page"})
	}
	for i, path := range pc.Paths {
		if err := docpath.Entry(path).Validate(); err != nil {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s.paths[%d]", field, i),
				Message: err.Error(),
			})
		}
	}

	if pc.Fallback == "" {
		errs = append(errs, ValidationError{Field: field + ".fallback", Message: "is required"})
	} else if err := templates.ValidateCategoryName(pc.Fallback); err != nil {
		errs = append(errs, ValidationError{Field: field + ".fallback", Message: err.Error()})
	}

	for section, c := range pc.Sections {
		if err := templates.ValidateCategoryName(c); err != nil {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s.sections.%s", field, section),
				Message: err.Error(),
			})
		}
	}

	if pc.Templates != "" && !templates.IsValidSet(pc.Templates) {
		errs = append(errs, ValidationError{
			Field:   field + ".templates",
			Message: fmt.Sprintf("unknown template set %q; valid sets: %s", pc.Templates, strings.Join(templates.ValidSets(), ", ")),
		})
	}

	return errs
}

// ValidateExtension checks a page file extension such as ".mdx".
func ValidateExtension(ext string) *ValidationError {
	if len(ext) < 2 || ext[0] != '.' {
		return &ValidationError{Field: "extension", Message: "must start with a dot, e.g. \".mdx\""}
	}
	if strings.ContainsAny(ext, `/\`) {
		return &ValidationError{Field: "extension", Message: "must not contain path separators"}
	}
	return nil
}
