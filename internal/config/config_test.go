// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadFromPath_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
version = "1.0.0"

[ui]
theme = "light"
animations = false
typewriter_cps = 80

[history]
enabled = true
max_entries = 50

[convert]
default_base = 2
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.False(t, cfg.UI.Animations)
	assert.Equal(t, 80, cfg.UI.TypewriterCPS)
	assert.Equal(t, 50, cfg.History.MaxEntries)
	assert.Equal(t, 2, cfg.Convert.DefaultBase)
	// Unset fields get defaults.
	assert.Equal(t, " ", cfg.Convert.GroupSeparator)
}

func TestLoadFromPath_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"ui": {"theme": "dark", "animations": true, "typewriter_cps": 20}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, 20, cfg.UI.TypewriterCPS)
}

func TestLoadFromPath_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"neon\"\n"), 0600))

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.theme")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.UI.Theme = "neon"
	cfg.Convert.DefaultBase = 99
	cfg.History.MaxEntries = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.theme")
	assert.Contains(t, err.Error(), "convert.default_base")
	assert.Contains(t, err.Error(), "history.max_entries")
}

func TestSaveTOML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := Default()
	cfg.UI.Theme = "light"
	cfg.Convert.DefaultBase = 12
	require.NoError(t, SaveTOML(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "light", loaded.UI.Theme)
	assert.Equal(t, 12, loaded.Convert.DefaultBase)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("RADIX_THEME", "light")
	t.Setenv("RADIX_ANIMATIONS", "false")
	t.Setenv("RADIX_DEFAULT_BASE", "8")
	t.Setenv("RADIX_HISTORY_MAX", "10")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.False(t, cfg.UI.Animations)
	assert.Equal(t, 8, cfg.Convert.DefaultBase)
	assert.Equal(t, 10, cfg.History.MaxEntries)
}

func TestGetSet(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Set("ui.theme", "dark"))
	v, err := cfg.Get("ui.theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	require.NoError(t, cfg.Set("convert.default_base", "36"))
	assert.Equal(t, 36, cfg.Convert.DefaultBase)

	// Set validates the resulting config.
	assert.Error(t, cfg.Set("convert.default_base", "99"))
	assert.Error(t, cfg.Set("ui.animations", "maybe"))
	assert.Error(t, cfg.Set("bogus.key", "1"))

	_, err = cfg.Get("bogus.key")
	assert.Error(t, err)
}

func TestGet_CoversAllKeys(t *testing.T) {
	cfg := Default()
	for _, key := range Keys() {
		_, err := cfg.Get(key)
		assert.NoError(t, err, key)
	}
}

func TestConfig_ConcurrentGlobalAccess(t *testing.T) {
	ResetGlobalForTesting()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()
		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, SaveTOML(Default(), path))

	changes := make(chan *Config, 1)
	w, err := NewWatcher(path, 50*time.Millisecond, func(cfg *Config) {
		select {
		case changes <- cfg:
		default:
		}
	})
	require.NoError(t, err)
	require.NoError(t, w.Watch())
	defer w.Close()

	cfg := Default()
	cfg.UI.Theme = "light"
	require.NoError(t, SaveTOML(cfg, path))

	select {
	case got := <-changes:
		assert.Equal(t, "light", got.UI.Theme)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not report the config change")
	}
}
