// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the system configuration.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("ui", Section{
		"text_fg":         "white",
		"text_bg":         "black",
		"focus_fg":        "black",
		"focus_bg":        "silver",
		"scrollbar_thumb": "silver",
		"scrollbar_track": "gray",
	})
	cfg.RegisterDefaults("textview", Section{
		"page_size":  10,
		"scrollable": true,
	})
	cfg.RegisterDefaults("scroll", Section{
		"indicators": true,
	})
}
