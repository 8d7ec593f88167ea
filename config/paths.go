// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for texelui configuration.

package config

import (
	"os"
	"path/filepath"
)

func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelui"), nil
}

// systemConfigPaths lists the candidate files in lookup order. JSON wins when
// both exist.
func systemConfigPaths() ([]string, error) {
	root, err := configRoot()
	if err != nil {
		return nil, err
	}
	return []string{
		filepath.Join(root, jsonConfigName),
		filepath.Join(root, tomlConfigName),
	}, nil
}
