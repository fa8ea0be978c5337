package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// Environment variable prefix for mdxgen configuration.
const envPrefix = "MDXGEN"

// Loader reads the YAML configuration file.
type Loader struct {
	v     *viper.Viper
	found bool
}

// NewLoader creates a new configuration loader with defaults applied.
// Environment overrides are applied by Resolve so their source can be reported.
func NewLoader() *Loader {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("extension", defaults.Extension)

	return &Loader{v: v}
}

// Load loads configuration from the given file path. A missing file is not an
// error: the returned Config then only carries defaults.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		configFile = DefaultConfigFile
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", expandedPath, err)
		}
	} else {
		l.found = true
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Found reports whether the last Load read a file.
func (l *Loader) Found() bool {
	return l.found
}

// ConfigFileUsed returns the path of the file read by the last Load.
func (l *Loader) ConfigFileUsed() string {
	if !l.found {
		return ""
	}
	return l.v.ConfigFileUsed()
}
