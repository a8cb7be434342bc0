package config

import (
	"TriDiff/internal/logging"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds defaults for the ddd command. Flags given on the command line
// take precedence over anything loaded here.
type Config struct {
	Decimal   bool   `yaml:"decimal"`
	ChunkSize int64  `yaml:"chunkSize"`
	Progress  bool   `yaml:"progress"`
	Stats     bool   `yaml:"stats"`
	LogLevel  string `yaml:"logLevel"`

	source string
}

func Default() Config {
	return Config{
		LogLevel: "warn",
	}
}

// Load reads a YAML config file on top of Default. An empty path returns the
// defaults; a named file that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	cfg.source = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.ChunkSize < 0 {
		return fmt.Errorf("config: chunkSize must be >= 0, got %d", c.ChunkSize)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Source is the file the config was loaded from, empty for defaults.
func (c *Config) Source() string { return c.source }
