package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// toolConfig holds optional defaults for the CLI, loaded from a TOML file
// passed with --config. Flags always win over config values.
type toolConfig struct {
	RecordSize   int    `toml:"record_size"`
	CleanPattern string `toml:"clean_pattern"`
}

func loadConfig(path string) (toolConfig, error) {
	var c toolConfig
	if path == "" {
		return c, nil
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return c, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, nil
}
