// Package config provides configuration loading and management.
package config

import (
	"sort"

	"github.com/awoplatform/mdxgen/internal/docpath"
	"github.com/awoplatform/mdxgen/internal/profile"
)

// DefaultConfigFile is read from the working directory when no --config is given.
const DefaultConfigFile = ".mdxgen.yaml"

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps"`
}

// ProfileConfig is a user-defined profile from the config file.
type ProfileConfig struct {
	// Description is shown in help output.
	Description string `mapstructure:"description"`

	// Templates names the embedded template set (minimal or complete) the
	// profile renders with. Ignored when a template directory is given.
	Templates string `mapstructure:"templates"`

	// Paths is the ordered page list.
	Paths []string `mapstructure:"paths"`

	// Sections maps a leading path segment to a template category.
	Sections map[string]string `mapstructure:"sections"`

	// Fallback is the category for unmapped sections.
	Fallback string `mapstructure:"fallback"`

	// NextSteps are printed after a run that created files.
	NextSteps []string `mapstructure:"nextSteps"`
}

// Config represents the mdxgen configuration file.
type Config struct {
	// Profile selects the page list. Env: MDXGEN_PROFILE, Default: complete
	Profile string `mapstructure:"profile"`

	// Dir is the output root. Env: MDXGEN_DIR, Default: "."
	Dir string `mapstructure:"dir"`

	// Extension is appended to every page path. Default: ".mdx"
	Extension string `mapstructure:"extension"`

	// Templates is a directory of *.mdx.tmpl files replacing the embedded set.
	// Env: MDXGEN_TEMPLATES
	Templates string `mapstructure:"templates"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log"`

	// Profiles are additional named profiles. A name matching a built-in
	// profile replaces it.
	Profiles map[string]ProfileConfig `mapstructure:"profiles"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		Profile:   profile.DefaultProfileName,
		Dir:       ".",
		Extension: docpath.DefaultExtension,
	}
}

// ToProfile converts the configured profile into a profile.Profile.
func (pc ProfileConfig) ToProfile(name string) *profile.Profile {
	p := &profile.Profile{
		Name:        name,
		Description: pc.Description,
		Templates:   pc.Templates,
		Paths:       make([]docpath.Entry, 0, len(pc.Paths)),
		Sections:    make(map[string]profile.Category, len(pc.Sections)),
		Fallback:    profile.Category(pc.Fallback),
		NextSteps:   pc.NextSteps,
	}
	for _, path := range pc.Paths {
		p.Paths = append(p.Paths, docpath.Entry(path))
	}
	for section, c := range pc.Sections {
		p.Sections[section] = profile.Category(c)
	}
	return p
}

// ProfileSet returns the built-in profiles overlaid with the configured ones.
func (c *Config) ProfileSet() (*profile.Set, error) {
	set := profile.NewSet()
	if c == nil {
		return set, nil
	}

	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := set.Add(c.Profiles[name].ToProfile(name)); err != nil {
			return nil, err
		}
	}
	return set, nil
}
