package config

import (
	"os"
	"sort"

	"github.com/awoplatform/mdxgen/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// Environment variables read by the resolver.
const (
	EnvProfile   = envPrefix + "_PROFILE"
	EnvDir       = envPrefix + "_DIR"
	EnvTemplates = envPrefix + "_TEMPLATES"
	EnvConfig    = envPrefix + "_CONFIG"
)

// ResolvedValue is one configuration value with its origin.
type ResolvedValue struct {
	// Key is the configuration key, e.g. "profile".
	Key string
	// Value is the resolved value.
	Value string
	// Source indicates where the value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// resolve picks the first non-empty value in the order flag > env > config > default.
func resolve(key, flagValue, envVar, configValue, defaultValue string) ResolvedValue {
	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, os.Getenv(envVar)},
		{SourceConfig, configValue},
		{SourceDefault, defaultValue},
	}

	result := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}
	return result
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) MDXGEN_CONFIG env, (3) .mdxgen.yaml in the working directory.
func ResolveConfigPath(flagValue string) ResolvedValue {
	return resolve("config", flagValue, EnvConfig, "", DefaultConfigFile)
}

// ResolveOptions contains the flag values and loaded config to resolve.
type ResolveOptions struct {
	// ProfileFlag is the --profile flag value (empty if not set).
	ProfileFlag string
	// DirFlag is the --dir flag value (empty if not set).
	DirFlag string
	// TemplatesFlag is the --templates flag value (empty if not set).
	TemplatesFlag string
	// Config is the loaded config file, may be nil.
	Config *Config
}

// ResolvedConfig holds the effective settings of a run.
type ResolvedConfig struct {
	Profile   ResolvedValue
	Dir       ResolvedValue
	Templates ResolvedValue
	Extension ResolvedValue
}

// Resolve applies flag > env > config > default precedence to every setting.
// Paths have ~ expanded.
func Resolve(opts ResolveOptions) (*ResolvedConfig, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}
	defaults := DefaultConfig()

	r := &ResolvedConfig{
		Profile:   resolve("profile", opts.ProfileFlag, EnvProfile, cfg.Profile, defaults.Profile),
		Dir:       resolve("dir", opts.DirFlag, EnvDir, cfg.Dir, defaults.Dir),
		Templates: resolve("templates", opts.TemplatesFlag, EnvTemplates, cfg.Templates, ""),
		Extension: resolve("extension", "", "", cfg.Extension, defaults.Extension),
	}

	for _, v := range []*ResolvedValue{&r.Dir, &r.Templates} {
		expanded, err := ExpandPath(v.Value)
		if err != nil {
			return nil, err
		}
		v.Value = expanded
	}

	return r, nil
}

// Values returns the resolved values in a stable order.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{r.Profile, r.Dir, r.Templates, r.Extension}
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		if v.Source == "" {
			continue
		}
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)

		sources := make([]string, 0, len(v.Shadowed))
		for source := range v.Shadowed {
			sources = append(sources, string(source))
		}
		sort.Strings(sources)
		for _, source := range sources {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", v.Shadowed[ConfigSource(source)],
			)
		}
	}
}
