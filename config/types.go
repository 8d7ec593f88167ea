// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed lookups over decoded JSON or TOML values.

package config

import (
	"encoding/json"
	"strconv"
)

// Section returns the named section or nil if missing. The empty name
// addresses top-level keys.
func (c Config) Section(sectionName string) Section {
	if c == nil {
		return nil
	}
	if sectionName == "" {
		return Section(c)
	}
	return asSection(c[sectionName])
}

// RegisterDefaults adds the keys of defaults that the section lacks,
// creating the section when needed.
func (c Config) RegisterDefaults(sectionName string, defaults Section) {
	if c == nil || len(defaults) == 0 {
		return
	}
	section := c.Section(sectionName)
	if section == nil {
		section = make(Section, len(defaults))
		c[sectionName] = section
	}
	for key, value := range defaults {
		if _, ok := section[key]; !ok {
			section[key] = value
		}
	}
}

// lookup converts the value at section/key with conv, returning def when the
// key is missing or conv rejects it.
func lookup[T any](c Config, sectionName, key string, def T, conv func(interface{}) (T, bool)) T {
	raw, ok := c.Section(sectionName)[key]
	if !ok {
		return def
	}
	if v, ok := conv(raw); ok {
		return v
	}
	return def
}

// GetString retrieves a string value from the config.
func (c Config) GetString(sectionName, key, defaultValue string) string {
	return lookup(c, sectionName, key, defaultValue, func(raw interface{}) (string, bool) {
		s, ok := raw.(string)
		return s, ok
	})
}

// GetInt retrieves an integer value. JSON numbers arrive as float64 and TOML
// integers as int64; numeric strings are accepted too.
func (c Config) GetInt(sectionName, key string, defaultValue int) int {
	return lookup(c, sectionName, key, defaultValue, toInt)
}

// GetBool retrieves a boolean value. Numbers are true when non-zero.
func (c Config) GetBool(sectionName, key string, defaultValue bool) bool {
	return lookup(c, sectionName, key, defaultValue, func(raw interface{}) (bool, bool) {
		switch v := raw.(type) {
		case bool:
			return v, true
		case string:
			b, err := strconv.ParseBool(v)
			return b, err == nil
		}
		n, ok := toInt(raw)
		return n != 0, ok
	})
}

func toInt(raw interface{}) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	}
	return 0, false
}
