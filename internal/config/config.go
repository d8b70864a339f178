// Package config loads osstatus-generator settings.
//
// Configuration Hierarchy (highest to lowest priority):
//  1. Command-line flags
//  2. Environment variables (OSSTATUS_*, nested keys joined with _)
//  3. Project config (.osstatus/config.yml or .osstatus/config.yaml)
//  4. Built-in defaults
package config

import (
	"github.com/mvp-joe/osstatus-generator/internal/parsers"
	"github.com/mvp-joe/osstatus-generator/internal/render"
)

// DefaultInputPath is where Xcode installs SecBase.h on macOS.
const DefaultInputPath = "/Applications/Xcode.app/Contents/Developer/Platforms/MacOSX.platform/Developer/SDKs/MacOSX.sdk/System/Library/Frameworks/Security.framework/Versions/A/Headers/SecBase.h"

// Config represents the complete generator configuration.
type Config struct {
	Input  InputConfig  `yaml:"input" mapstructure:"input"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Filter FilterConfig `yaml:"filter" mapstructure:"filter"`
}

// InputConfig describes the header to read.
type InputConfig struct {
	Path       string `yaml:"path" mapstructure:"path"`               // header read when no path argument is given
	Parser     string `yaml:"parser" mapstructure:"parser"`           // "regex" or "treesitter"
	SourceName string `yaml:"source_name" mapstructure:"source_name"` // header name quoted in generated text
}

// OutputConfig describes the generated file.
type OutputConfig struct {
	Target              string `yaml:"target" mapstructure:"target"` // "go" or "swift"
	Package             string `yaml:"package" mapstructure:"package"`
	TypeName            string `yaml:"type_name" mapstructure:"type_name"`
	RawType             string `yaml:"raw_type" mapstructure:"raw_type"` // "int32", "int64" or "int"
	FallbackDescription string `yaml:"fallback_description" mapstructure:"fallback_description"`
	Path                string `yaml:"path" mapstructure:"path"` // empty writes to stdout
}

// FilterConfig selects statuses by name.
type FilterConfig struct {
	Include []string `yaml:"include" mapstructure:"include"` // glob patterns, empty means all
	Exclude []string `yaml:"exclude" mapstructure:"exclude"` // glob patterns, applied after include
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Path:       DefaultInputPath,
			Parser:     parsers.KindPattern,
			SourceName: render.DefaultSourceName,
		},
		Output: OutputConfig{
			Target:              "go",
			Package:             render.DefaultPackage,
			TypeName:            render.DefaultTypeName,
			RawType:             render.DefaultRawType,
			FallbackDescription: render.DefaultFallbackDescription,
		},
		Filter: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// RenderOptions converts the output settings into renderer options.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Package:             c.Output.Package,
		TypeName:            c.Output.TypeName,
		RawType:             c.Output.RawType,
		SourceName:          c.Input.SourceName,
		FallbackDescription: c.Output.FallbackDescription,
	}
}
