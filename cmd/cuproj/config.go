package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the cuproj configuration file (~/.config/cuproj/config.yaml).
type Config struct {
	SourceCRS string `yaml:"source_crs"`
	TargetCRS string `yaml:"target_crs"`

	// Backend
	Backend string `yaml:"backend"`

	// Output
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Server
	ServerAddress string `yaml:"server_address"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cuproj", "config.yaml")
}

// applyTransformConfig applies config file defaults to transform command
// variables when the corresponding CLI flag was not explicitly set.
func applyTransformConfig(c *cli.Command, cfg Config) {
	if cfg.SourceCRS != "" && !c.IsSet("src-crs") && !c.IsSet("s") {
		sourceCRS = cfg.SourceCRS
	}
	if cfg.TargetCRS != "" && !c.IsSet("dst-crs") && !c.IsSet("d") {
		targetCRS = cfg.TargetCRS
	}
	if cfg.Backend != "" && !c.IsSet("backend") {
		backendName = cfg.Backend
	}
}

// applyServeConfig applies config file defaults to serve command variables.
func applyServeConfig(c *cli.Command, cfg Config, addr *string) {
	if cfg.Backend != "" && !c.IsSet("backend") {
		backendName = cfg.Backend
	}
	if cfg.ServerAddress != "" && !c.IsSet("addr") {
		*addr = cfg.ServerAddress
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}

// LoadConfig reads the config file. Returns a zero Config if the file doesn't exist.
func LoadConfig() Config {
	path := configPath()
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}
