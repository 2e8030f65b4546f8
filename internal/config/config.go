// Package config loads the optional anno.toml project configuration,
// searched upward from the working directory.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the project configuration file searched for upward
// from the working directory.
const ConfigFileName = "anno.toml"

// SuiteFileExtensions are the recognized check-suite file extensions.
var SuiteFileExtensions = []string{".yaml", ".yml"}

// Config is the top-level anno.toml configuration.
type Config struct {
	Project ProjectConfig `toml:"project"`
}

type ProjectConfig struct {
	// Name is the project name, reported in check output headers.
	Name string `toml:"name"`

	// Color controls colored output: "auto" (default), "always" or "never".
	Color string `toml:"color"`

	// Suites lists directories searched for check-suite files when
	// `anno check` is run without arguments.
	Suites []string `toml:"suites"`
}

// DefaultConfig returns the configuration used when no anno.toml exists.
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			Color:  "auto",
			Suites: []string{"checks"},
		},
	}
}

// Load reads a configuration file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	if cfg.Project.Color == "" {
		cfg.Project.Color = "auto"
	}
	return cfg, nil
}

// FindAndLoad searches startDir and its parents for anno.toml. Without a
// configuration file it returns the defaults and an empty path.
func FindAndLoad(startDir string) (*Config, string, error) {
	path := findConfigFile(startDir)
	if path == "" {
		return DefaultConfig(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func findConfigFile(startDir string) string {
	dir := startDir
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
