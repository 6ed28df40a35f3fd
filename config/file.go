// Package config loads the .blhxfy.yaml configuration file.
//
// The file names the dictionaries and the display language the overlay
// runs with. Every value can be overridden from the environment
// (BLHXFY_* variables), and the CLI flags override both.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// YAML schema
// ---------------------------------------------------------------------------

// File is the top-level .blhxfy.yaml structure.
type File struct {
	// Lang is the game's display language (e.g. "en", "jp").
	Lang string `yaml:"lang,omitempty" env:"BLHXFY_LANG"`
	// Names lists the dictionary files per display language family.
	Names NameFiles `yaml:"names"`
	// Overrides is an optional YAML file of text overrides keyed by scene id.
	Overrides string `yaml:"overrides,omitempty" env:"BLHXFY_OVERRIDES"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty" env:"BLHXFY_LOG_LEVEL"`
}

// NameFiles lists dictionary files, merged in order (later wins).
type NameFiles struct {
	// Foreign dictionaries serve non-Japanese clients.
	Foreign []string `yaml:"foreign,omitempty" env:"BLHXFY_NAMES_FOREIGN" envSeparator:","`
	// Source dictionaries serve the Japanese client.
	Source []string `yaml:"source,omitempty" env:"BLHXFY_NAMES_SOURCE" envSeparator:","`
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// FileName is the default config file name.
const FileName = ".blhxfy.yaml"

// Load reads .blhxfy.yaml from rootDir and applies defaults.
// Returns nil if no file exists.
func Load(rootDir string) (*File, error) {
	path := filepath.Join(rootDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	f.applyDefaults()
	return &f, nil
}

// LoadWithEnv loads .blhxfy.yaml (or the defaults when it is absent) and
// applies BLHXFY_* environment overrides on top.
func LoadWithEnv(rootDir string) (*File, error) {
	f, err := Load(rootDir)
	if err != nil {
		return nil, err
	}
	if f == nil {
		f = Default()
	}
	if err := env.Parse(f); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	f.applyDefaults()
	return f, nil
}

// Default returns the configuration used when no file exists.
func Default() *File {
	f := &File{}
	f.applyDefaults()
	return f
}

func (f *File) applyDefaults() {
	if f.Lang == "" {
		f.Lang = "en"
	}
	if f.LogLevel == "" {
		f.LogLevel = "info"
	}
}
