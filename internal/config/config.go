// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kpauljoseph/gestionpdf/internal/extract"
	"github.com/kpauljoseph/gestionpdf/internal/split"
)

const DefaultMaxSizeMB = 20

type Config struct {
	Split struct {
		MaxSizeMB float64 `yaml:"max_size_mb"`
		OutputDir string  `yaml:"output_dir"`
		Optimize  *bool   `yaml:"optimize"`
	} `yaml:"split"`
	Extract struct {
		Method     string `yaml:"method"`
		OutputFile string `yaml:"output_file"`
	} `yaml:"extract"`
	Log struct {
		Verbose bool `yaml:"verbose"`
		Debug   bool `yaml:"debug"`
	} `yaml:"log"`
}

func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads path when given and falls back to defaults otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) applyDefaults() {
	if c.Split.MaxSizeMB == 0 {
		c.Split.MaxSizeMB = DefaultMaxSizeMB
	}
	if c.Split.Optimize == nil {
		optimize := true
		c.Split.Optimize = &optimize
	}
	if c.Extract.Method == "" {
		c.Extract.Method = string(extract.MethodAuto)
	}
}

func (c *Config) Validate() error {
	if err := split.ValidateMaxSize(c.Split.MaxSizeMB); err != nil {
		return fmt.Errorf("split.max_size_mb: %w", err)
	}
	if _, err := extract.ParseMethod(c.Extract.Method); err != nil {
		return fmt.Errorf("extract.method: %w", err)
	}
	return nil
}

func (c *Config) OptimizeEnabled() bool {
	return c.Split.Optimize == nil || *c.Split.Optimize
}
