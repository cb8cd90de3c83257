// Package config loads the server configuration from a YAML file, falling
// back to compiled-in defaults when no file is present.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arvidh/chartstudio/pkg/models"
)

// ChartDefaults seeds the UI with a starter dataset and styling so a user
// sees a rendered chart before typing anything.
type ChartDefaults struct {
	Metrics     []models.Metric  `yaml:"metrics" json:"metrics"`
	Factor      float64          `yaml:"factor" json:"factor"`
	Color       string           `yaml:"color" json:"color"`
	FillOpacity float64          `yaml:"fill_opacity" json:"fill_opacity"`
	Kind        models.ChartKind `yaml:"kind" json:"kind"`
}

// Config is the full server configuration.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `yaml:"listen_addr"`
	// FontPath points at an optional TTF file used for all chart text so
	// non-Latin labels render correctly. A missing file is not an error;
	// the renderer falls back to its built-in font.
	FontPath string `yaml:"font_path"`
	// Defaults seeds the UI.
	Defaults ChartDefaults `yaml:"defaults"`
}

// Default returns the compiled-in configuration, used when no config file
// exists. The starter dataset mirrors a typical project-review scorecard.
func Default() *Config {
	return &Config{
		ListenAddr: "0.0.0.0:8080",
		FontPath:   "fonts/SourceHanSerifSC-Regular.ttf",
		Defaults: ChartDefaults{
			Metrics: []models.Metric{
				{Label: "创新性", Value: 85},
				{Label: "可行性", Value: 90},
				{Label: "商业价值", Value: 70},
				{Label: "团队基础", Value: 95},
				{Label: "技术壁垒", Value: 60},
			},
			Factor:      models.DefaultFactor,
			Color:       models.DefaultColor,
			FillOpacity: models.DefaultFillOpacity,
			Kind:        models.ChartKindRadar,
		},
	}
}

// Load reads the configuration from path. A missing file yields Default();
// a present but malformed file is an error. Fields left empty in the file
// keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr cannot be empty")
	}
	if len(c.Defaults.Metrics) == 0 {
		return fmt.Errorf("defaults.metrics cannot be empty")
	}
	if err := c.Defaults.Kind.Validate(); err != nil {
		return err
	}
	return nil
}
