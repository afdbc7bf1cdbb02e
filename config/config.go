// Package config loads the optional `eco.yaml` project file (SPEC_FULL.md
// [AMBIENT] Configuration), grounded on sambeau-basil's server/config
// package and davidkellis-able's yaml.v3-based manifest loaders.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is a bundler/CLI project's resolved configuration.
type Config struct {
	// RootDir is the directory import specifiers resolve against.
	// Defaults to the directory containing eco.yaml, or the current
	// directory when no file is found.
	RootDir string `yaml:"rootDir"`
	// EntryFile is the default entry module for `eco run`/`eco bundle`
	// when none is given on the command line.
	EntryFile string `yaml:"entryFile"`
	// Verbose turns on debug-level logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the zero-configuration fallback: the current working
// directory as root, no default entry file.
func Default() Config {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return Config{RootDir: wd}
}

// Load reads configFile (typically "eco.yaml") and merges it over
// Default(). A missing file is not an error; Load simply returns the
// default configuration.
func Load(configFile string) (Config, error) {
	cfg := Default()

	bytes, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	// A found file roots the project at its own directory unless it sets
	// rootDir itself, so the working-directory default does not apply.
	cfg.RootDir = ""
	if err := yaml.Unmarshal(bytes, &cfg); err != nil {
		return cfg, err
	}
	if cfg.RootDir == "" {
		cfg.RootDir = filepath.Dir(configFile)
	} else if !filepath.IsAbs(cfg.RootDir) {
		cfg.RootDir = filepath.Join(filepath.Dir(configFile), cfg.RootDir)
	}
	return cfg, nil
}
