// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rexi/internal/engine"
)

func TestLoadConfigMissingFileIsZeroConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
	assert.Equal(t, engine.DefaultTimeout, cfg.Timeout())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := Config{
		DefaultProfile: "jq",
		TimeoutSeconds: 10,
		AwkCommand:     "mawk",
		JqCommand:      "gojq",
	}
	require.NoError(t, SaveConfig(want))

	got, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 10*time.Second, got.Timeout())
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "rexi", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte("default_profile: [unclosed"), 0640))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestEngineOptionsMapping(t *testing.T) {
	cfg := Config{
		DefaultProfile: "awk",
		TimeoutSeconds: 2,
		AwkCommand:     "gawk",
		JqCommand:      "jq",
		GrepCommand:    "ggrep",
		SedCommand:     "gsed",
	}

	opts := cfg.EngineOptions()
	assert.Equal(t, 2*time.Second, opts.Timeout)
	assert.Equal(t, "awk", opts.DefaultProfile)
	assert.Equal(t, "gawk", opts.AwkBinary)
	assert.Equal(t, "jq", opts.JqBinary)
	assert.Equal(t, "ggrep", opts.GrepBinary)
	assert.Equal(t, "gsed", opts.SedBinary)
}
