// Package config loads tabulate's YAML configuration file.
//
//	output:
//	  style: ascii   # ascii, single or double
//	  padding: true
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quou/tabulate/table"
)

// Config is the resolved configuration: style names are parsed and defaults
// applied by the time callers see it.
type Config struct {
	Style   table.Style
	Padding bool
}

// Default returns the configuration used when no file is given: ascii
// borders with padding enabled.
func Default() Config {
	return Config{Style: table.Ascii, Padding: true}
}

// file is the on-disk shape. Padding is a pointer so an absent key can be
// told apart from an explicit false.
type file struct {
	Output struct {
		Style   string `yaml:"style"`
		Padding *bool  `yaml:"padding"`
	} `yaml:"output"`
}

// Load reads and resolves the configuration file at path. Unset keys take
// their defaults. An unrecognized style name is a table.ConfigurationError;
// it surfaces here rather than at first render.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if f.Output.Style != "" {
		s, err := table.ParseStyle(f.Output.Style)
		if err != nil {
			return cfg, err
		}
		cfg.Style = s
	}
	if f.Output.Padding != nil {
		cfg.Padding = *f.Output.Padding
	}

	return cfg, nil
}
