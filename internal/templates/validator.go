package templates

import (
	"fmt"
	"regexp"
)

// Category keys are lower-case kebab-case words, e.g. "api-reference".
var categoryNameRegex = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// ValidateCategoryName checks if a string is a valid category key.
func ValidateCategoryName(name string) error {
	if name == "" {
		return fmt.Errorf("category name cannot be empty")
	}

	if !categoryNameRegex.MatchString(name) {
		return fmt.Errorf("invalid category name %q: must be lower-case words separated by single hyphens", name)
	}

	return nil
}
