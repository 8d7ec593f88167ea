// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load logic for the config store.

package config

import "log"

func loadSystemLocked() error {
	candidates, err := systemConfigPaths()
	if err != nil {
		log.Printf("Config: Failed to resolve system config path: %v", err)
		system = make(Config)
		applySystemDefaults(system)
		return err
	}

	// Default save target when no file exists yet.
	path = candidates[0]
	for _, p := range candidates {
		cfg, exists, readErr := readConfig(p)
		if !exists {
			continue
		}
		path = p
		if readErr != nil {
			log.Printf("Config: Failed to read system config %s: %v", p, readErr)
			system = make(Config)
			applySystemDefaults(system)
			return readErr
		}
		if cfg == nil {
			cfg = make(Config)
		}
		applySystemDefaults(cfg)
		system = cfg
		log.Printf("Config: Loaded system config from %s", p)
		return nil
	}

	system = make(Config)
	applySystemDefaults(system)
	return nil
}
