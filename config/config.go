package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/sakurairsora/BLHXFY/langmeta"
)

// Validate checks that the configuration can drive an overlay.
func (f *File) Validate() error {
	if len(f.Names.Foreign) == 0 && len(f.Names.Source) == 0 {
		return fmt.Errorf("no name dictionaries configured (set names.foreign or names.source in %s)", FileName)
	}
	if langmeta.Canonicalize(f.Lang) == "" {
		return fmt.Errorf("lang is empty")
	}
	if _, err := f.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (f *File) Level() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(f.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log_level %q (valid: debug, info, warn, error)", f.LogLevel)
}

// Resolve returns a copy of f with relative file paths joined to rootDir.
func (f *File) Resolve(rootDir string) (*File, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, err
	}

	cp := *f
	cp.Names.Foreign = resolvePaths(absRoot, f.Names.Foreign)
	cp.Names.Source = resolvePaths(absRoot, f.Names.Source)
	if cp.Overrides != "" {
		cp.Overrides = resolvePath(absRoot, cp.Overrides)
	}
	return &cp, nil
}

func resolvePaths(root string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, resolvePath(root, p))
	}
	return out
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
