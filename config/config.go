// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Configuration store for texelui (palette, text view and scroll settings).

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

const (
	jsonConfigName = "texelui.json"
	tomlConfigName = "texelui.toml"
)

// ErrUnknownFormat is returned for config files that are neither JSON nor TOML.
var ErrUnknownFormat = errors.New("config: unknown file format")

// Config stores configuration sections as JSON-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

var (
	mu      sync.RWMutex
	once    sync.Once
	system  Config
	path    string
	loadErr error
)

// Err returns the most recent system config load error.
func Err() error {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return loadErr
}

// System returns the system configuration, with defaults applied.
func System() Config {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return system
}

// Path returns the file the system config was loaded from, or the file it
// would be saved to when none exists yet.
func Path() string {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return path
}

// Reload refreshes the system config from disk.
func Reload() error {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	loadErr = loadSystemLocked()
	return loadErr
}

// SetSystem replaces the in-memory system config with the provided config.
func SetSystem(cfg Config) {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	if cfg == nil {
		cfg = make(Config)
	}
	system = Clone(cfg)
	applySystemDefaults(system)
}

// SaveSystem persists the current system config to disk.
func SaveSystem() error {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	if path == "" {
		return fmt.Errorf("config: no config path")
	}
	return writeConfig(path, system)
}

func initStore() {
	mu.Lock()
	defer mu.Unlock()
	system = make(Config)
	loadErr = loadSystemLocked()
}

// LoadFile reads a JSON or TOML config file, chosen by extension, and applies
// defaults. A missing file yields the defaults and no error.
func LoadFile(p string) (Config, error) {
	cfg, _, err := readConfig(p)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = make(Config)
	}
	applySystemDefaults(cfg)
	return cfg, nil
}

func readConfig(p string) (Config, bool, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		// The file is there but unreadable; callers report it.
		return nil, true, fmt.Errorf("read %s: %w", p, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(p)) {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return nil, true, fmt.Errorf("%w: %s", ErrUnknownFormat, p)
	}
	if err != nil {
		return nil, true, fmt.Errorf("parse %s: %w", p, err)
	}
	return cfg, true, nil
}

func writeConfig(p string, cfg Config) error {
	if cfg == nil {
		cfg = make(Config)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(p)) {
	case ".json":
		data, err = json.MarshalIndent(cfg, "", "  ")
	case ".toml":
		data, err = toml.Marshal(cfg)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, p)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0644)
}
