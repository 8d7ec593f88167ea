// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/clone.go
// Summary: Copying of config maps so callers cannot alias the system config.

package config

import "maps"

// Clone copies cfg one level deep: every section gets its own map, and
// sections decoded as plain maps come back as Section. Values inside a
// section are shared.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	out := make(Config, len(cfg))
	for name, raw := range cfg {
		if section := asSection(raw); section != nil {
			out[name] = maps.Clone(section)
			continue
		}
		out[name] = raw
	}
	return out
}

func asSection(raw interface{}) Section {
	switch v := raw.(type) {
	case Section:
		return v
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}
