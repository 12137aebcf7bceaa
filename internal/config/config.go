// Package config loads a [printer.Config] from an optional YAML file, the same shape the
// command-line driver also accepts as individual flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talonhub/talonfmt/printer"
)

// align mirrors [printer.Align]'s bool-or-int surface: "align_short_commands: true" and
// "align_short_commands: 12" are both valid, the latter additionally flooring the column width.
type align printer.Align

func (a *align) UnmarshalYAML(value *yaml.Node) error {
	var on bool
	if err := value.Decode(&on); err == nil {
		a.On = on
		a.MinWidth = 0
		return nil
	}

	var width int
	if err := value.Decode(&width); err == nil {
		a.On = width > 0
		a.MinWidth = width
		return nil
	}

	return fmt.Errorf("config: %q must be a bool or an int, got %q", value.Tag, value.Value)
}

// file is the on-disk shape of a .talonfmt.yaml, kept separate from [printer.Config] so the YAML
// field names can stay snake_case without tagging the core package's exported struct.
type file struct {
	IndentSize         *int   `yaml:"indent_size"`
	MaxLineWidth       *int   `yaml:"max_line_width"`
	AlignMatchContext  *align `yaml:"align_match_context"`
	AlignShortCommands *align `yaml:"align_short_commands"`
}

// Load reads the YAML config file at path and overlays it onto [printer.DefaultConfig]. A path
// that does not exist is not an error: it returns the defaults unchanged, since the config file
// is optional.
func Load(path string) (printer.Config, error) {
	cfg := printer.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if f.IndentSize != nil {
		cfg.IndentSize = *f.IndentSize
	}
	if f.MaxLineWidth != nil {
		cfg.MaxLineWidth = *f.MaxLineWidth
	}
	if f.AlignMatchContext != nil {
		cfg.AlignMatchContext = printer.Align(*f.AlignMatchContext)
	}
	if f.AlignShortCommands != nil {
		cfg.AlignShortCommands = printer.Align(*f.AlignShortCommands)
	}

	return cfg, nil
}
