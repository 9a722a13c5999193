package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the YAML shape vellum-inspect reads.
//
//	viewport:
//	  width: 1024
//	  height: 768
//	trace: true
//	demo: table
type Config struct {
	Viewport struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"viewport"`
	Trace bool   `yaml:"trace"`
	Demo  string `yaml:"demo"`
}

// loadConfig reads the config file, or returns defaults when path is
// empty.
func loadConfig(path string) (Config, error) {
	cfg := Config{Demo: "dashboard"}
	cfg.Viewport.Width = 800
	cfg.Viewport.Height = 600

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Viewport.Width <= 0 || cfg.Viewport.Height <= 0 {
		return cfg, fmt.Errorf("config %s: viewport must be positive", path)
	}
	return cfg, nil
}
