// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core_test

import (
	"os"
	"testing"
)

// TestMain points the config store at an empty directory so user settings
// cannot change widget defaults under test.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "texelui-core-test")
	if err != nil {
		panic(err)
	}
	os.Setenv("XDG_CONFIG_HOME", dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}
