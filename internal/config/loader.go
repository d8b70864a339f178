package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FlagKeys maps command-line flag names to configuration keys.
var FlagKeys = map[string]string{
	"parser":      "input.parser",
	"source-name": "input.source_name",
	"target":      "output.target",
	"package":     "output.package",
	"type-name":   "output.type_name",
	"raw-type":    "output.raw_type",
	"fallback":    "output.fallback_description",
	"output":      "output.path",
	"include":     "filter.include",
	"exclude":     "filter.exclude",
}

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file, environment variables and flags.
	// Priority: defaults → config file → environment variables → flags
	Load() (*Config, error)
}

type loader struct {
	rootDir    string
	configFile string
	flags      *pflag.FlagSet
}

// LoaderOption customises a Loader.
type LoaderOption func(*loader)

// WithConfigFile reads an explicit config file instead of searching rootDir.
func WithConfigFile(path string) LoaderOption {
	return func(l *loader) {
		l.configFile = path
	}
}

// WithFlags binds the flags named in FlagKeys; flags the user set win over
// every other source.
func WithFlags(flags *pflag.FlagSet) LoaderOption {
	return func(l *loader) {
		l.flags = flags
	}
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string, opts ...LoaderOption) Loader {
	l := &loader{
		rootDir: rootDir,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Flags that were set on the command line
// 2. Environment variables (OSSTATUS_*)
// 3. Config file (.osstatus/config.yml or .osstatus/config.yaml)
// 4. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(l.rootDir, ".osstatus"))
	}

	// Replace . with _ in env var names (e.g., OSSTATUS_OUTPUT_TARGET)
	v.SetEnvPrefix("OSSTATUS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	setDefaults(v)

	if l.flags != nil {
		for name, key := range FlagKeys {
			flag := l.flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - we'll use defaults + env vars
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

var envKeys = []string{
	"input.path",
	"input.parser",
	"input.source_name",
	"output.target",
	"output.package",
	"output.type_name",
	"output.raw_type",
	"output.fallback_description",
	"output.path",
	"filter.include",
	"filter.exclude",
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("input.path", defaults.Input.Path)
	v.SetDefault("input.parser", defaults.Input.Parser)
	v.SetDefault("input.source_name", defaults.Input.SourceName)

	v.SetDefault("output.target", defaults.Output.Target)
	v.SetDefault("output.package", defaults.Output.Package)
	v.SetDefault("output.type_name", defaults.Output.TypeName)
	v.SetDefault("output.raw_type", defaults.Output.RawType)
	v.SetDefault("output.fallback_description", defaults.Output.FallbackDescription)
	v.SetDefault("output.path", defaults.Output.Path)

	v.SetDefault("filter.include", defaults.Filter.Include)
	v.SetDefault("filter.exclude", defaults.Filter.Exclude)
}

// LoadConfig is a convenience function that creates a loader and loads config.
// It uses the current working directory as the root.
func LoadConfig(opts ...LoaderOption) (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd, opts...).Load()
}
