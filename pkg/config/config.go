// Package config loads the console's settings from a YAML file under the
// user's home directory. A missing file yields the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the home directory when
// no explicit path is given.
const DefaultFileName = ".daemon-console.yaml"

// Config holds the console settings.
type Config struct {
	// HistorySize caps the number of remembered lines.
	HistorySize int `yaml:"historySize"`
	// DefaultCommand, when set, wraps unmarked input lines on submit
	// (e.g. "say" turns plain chat text into `say "<text>"`).
	DefaultCommand string `yaml:"defaultCommand"`
	// Prompt is the input view title.
	Prompt string `yaml:"prompt"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		HistorySize: 50,
		Prompt:      "console",
	}
}

// Load reads the config at path, or at ~/.daemon-console.yaml when path is
// empty. A file that does not exist is not an error; the defaults are
// returned.
func Load(path string) (*Config, error) {
	if path == "" {
		home, err := homedir.Dir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, DefaultFileName)
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = Default().HistorySize
	}
	return cfg, nil
}
