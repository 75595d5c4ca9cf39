// Copyright © 2025 TermView contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: JSON configuration store for TermView.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

const configName = "termview.json"

// Config holds the user-adjustable settings.
type Config struct {
	// ExportTheme is the chroma style used when exporting unstyled
	// transcripts with syntax highlighting.
	ExportTheme string `json:"export_theme"`
	// SearchDBPath locates the transcript search index. Empty means the
	// default under the user config directory.
	SearchDBPath string `json:"search_db_path"`
	// CaptureWidth and CaptureHeight are the PTY dimensions for capture
	// sessions.
	CaptureWidth  int `json:"capture_width"`
	CaptureHeight int `json:"capture_height"`
}

var (
	mu      sync.RWMutex
	once    sync.Once
	current Config
	loadErr error
)

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		ExportTheme:   "monokai",
		CaptureWidth:  80,
		CaptureHeight: 24,
	}
}

// Load returns the effective configuration: the config file merged over the
// defaults. The file is read once per process.
func Load() Config {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Err returns the most recent config load error, if any. A missing file is
// not an error; defaults apply.
func Err() error {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return loadErr
}

func initStore() {
	mu.Lock()
	defer mu.Unlock()
	current = Defaults()

	path, err := configPath()
	if err != nil {
		loadErr = err
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			loadErr = err
		}
		return
	}
	loadErr = applyFile(&current, data)
}

// applyFile merges the file's settings over cfg, leaving defaults in place
// for absent or empty fields.
func applyFile(cfg *Config, data []byte) error {
	var file Config
	if err := json.Unmarshal(data, &file); err != nil {
		return err
	}
	if file.ExportTheme != "" {
		cfg.ExportTheme = file.ExportTheme
	}
	if file.SearchDBPath != "" {
		cfg.SearchDBPath = file.SearchDBPath
	}
	if file.CaptureWidth > 0 {
		cfg.CaptureWidth = file.CaptureWidth
	}
	if file.CaptureHeight > 0 {
		cfg.CaptureHeight = file.CaptureHeight
	}
	return nil
}

// SearchDB resolves the search index path, applying the default location.
func (c Config) SearchDB() (string, error) {
	if c.SearchDBPath != "" {
		return c.SearchDBPath, nil
	}
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "search.db"), nil
}

func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "termview"), nil
}

func configPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, configName), nil
}
