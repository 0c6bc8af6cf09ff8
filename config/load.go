package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML file of option overrides into opts, starting from
// whatever values opts already holds (typically Default()), so a config
// file only needs to set the keys it wants to change. This is an
// ambient-stack addition beyond the original driver's pure-flags
// surface: it lets a frame be reproduced from a checked-in file instead
// of a long flag line.
func Load(path string, opts *Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, opts); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}
