package utils

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for a simulation run
type Config struct {
	Generations int    `yaml:"generations"`
	LogLevel    string `yaml:"log_level"`
	InputPath   string `yaml:"input"`
	Quiet       bool   `yaml:"quiet"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Generations: 10, // the reference run length
		LogLevel:    "info",
	}
}

// LoadConfig loads configuration overrides from a YAML file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
