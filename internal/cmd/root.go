package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/awoplatform/mdxgen/internal/config"
	oerrors "github.com/awoplatform/mdxgen/internal/errors"
	"github.com/awoplatform/mdxgen/internal/output"
	"github.com/awoplatform/mdxgen/internal/profile"
	"github.com/awoplatform/mdxgen/internal/version"
)

var (
	// Flags
	profileFlag    string
	dirFlag        string
	templatesFlag  string
	configFlag     string
	dryRunFlag     bool
	verboseFlag    bool
	timestampsFlag bool

	// Loaded during PersistentPreRunE
	loadedConfig   *config.Config
	resolvedConfig *config.ResolvedConfig
)

// NewRootCmd creates the root command for the mdxgen CLI.
func NewRootCmd() *cobra.Command {
	info := version.Get()

	rootCmd := &cobra.Command{
		Use:   "mdxgen",
		Short: "Scaffold placeholder MDX pages for a documentation site",
		Long: fmt.Sprintf(`mdxgen creates the placeholder MDX pages of a documentation site from a
fixed page list, so a navigation config that references them builds.

Every page gets YAML front-matter (title and description) and a body chosen
by the page's top-level section. Existing files are never touched: run it as
often as you like.

Profiles:
  minimal   API, guide, SDK and resource stubs with minimal boilerplate
  complete  Every platform page with section-specific templates (default)

More profiles can be declared under "profiles:" in %s.

Examples:
  # Create every missing page of the complete profile in the current directory
  mdxgen

  # List what would be created, touching nothing
  mdxgen --dry-run

  # Scaffold the minimal profile into ./docs
  mdxgen --profile minimal --dir docs

  # Render with your own templates
  mdxgen --templates ./doc-templates`, config.DefaultConfigFile),
		Args:          cobra.NoArgs,
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return withExitCode(initializeGlobals(cmd))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withExitCode(runGenerate(cmd))
		},
	}
	rootCmd.SetVersionTemplate(info.String() + "\n")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &oerrors.ExitError{Code: ExitValidationError, Err: err}
	})

	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "List the pages that would be created without writing anything")
	rootCmd.Flags().StringVarP(&profileFlag, "profile", "p", "",
		fmt.Sprintf("Page list to scaffold: %s (default %q, env: %s)",
			strings.Join(profile.BuiltinNames(), ", "), profile.DefaultProfileName, config.EnvProfile))
	rootCmd.Flags().StringVarP(&dirFlag, "dir", "d", "",
		fmt.Sprintf("Output root the pages are created under (default \".\", env: %s)", config.EnvDir))
	rootCmd.Flags().StringVar(&templatesFlag, "templates", "",
		fmt.Sprintf("Directory of <category>.mdx.tmpl files replacing the built-in templates (env: %s)", config.EnvTemplates))
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		fmt.Sprintf("Path to config file (default %q, env: %s)", config.DefaultConfigFile, config.EnvConfig))
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	loadedConfig = nil
	resolvedConfig = nil

	configPath := config.ResolveConfigPath(configFlag)

	loader := config.NewLoader()
	cfg, err := loader.Load(configPath.Value)
	if err != nil {
		return &oerrors.DetailError{
			Type:     "invalid configuration",
			Message:  err.Error(),
			Location: configPath.Value,
			Cause:    oerrors.ErrValidation,
		}
	}
	if !loader.Found() && configPath.Source != config.SourceDefault {
		return oerrors.NewNotFoundError(
			fmt.Sprintf("config file %s does not exist", configPath.Value),
			configPath.Value,
			fmt.Sprintf("Remove --config/%s to run without a config file.", config.EnvConfig))
	}

	// Build LogConfig with precedence: flag > config > default(true)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if err := config.Validate(cfg); err != nil {
		return &oerrors.DetailError{
			Type:     "invalid configuration",
			Message:  strings.TrimSpace(err.Error()),
			Location: configPath.Value,
			Cause:    oerrors.ErrValidation,
		}
	}

	resolved, err := config.Resolve(config.ResolveOptions{
		ProfileFlag:   profileFlag,
		DirFlag:       dirFlag,
		TemplatesFlag: templatesFlag,
		Config:        cfg,
	})
	if err != nil {
		return err
	}

	loadedConfig = cfg
	resolvedConfig = resolved

	if loader.Found() {
		output.Debug("loaded config file", "path", loader.ConfigFileUsed())
	}
	config.LogResolvedValues(append([]config.ResolvedValue{configPath}, resolved.Values()...))

	return nil
}
