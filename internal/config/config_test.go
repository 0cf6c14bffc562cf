package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile drops a .charta.yaml in the current (temp) directory.
func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(".charta.yaml", []byte(content), 0o644))
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)

	appCfg := LoadConfig()
	assert.Equal(t, DefaultFormat, appCfg.Format)
	assert.Equal(t, DefaultActiveThemeName, appCfg.ActiveThemeName)
	assert.False(t, appCfg.NoColor)
	assert.Empty(t, appCfg.Fragments)
}

func TestLoadConfig_ReadsLocalFile(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, `
format: json
active_theme: mono
no_color: true
fragments:
  poster.common:
    font.size: 18
`)

	appCfg := LoadConfig()
	assert.Equal(t, "json", appCfg.Format)
	assert.Equal(t, "mono", appCfg.ActiveThemeName)
	assert.True(t, appCfg.NoColor)
	require.Contains(t, appCfg.Fragments, "poster.common")
	assert.Equal(t, 18, appCfg.Fragments["poster.common"]["font.size"])
}

func TestLoadConfig_MalformedFileFallsBack(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, "format: [unclosed")

	appCfg := LoadConfig()
	assert.Equal(t, DefaultFormat, appCfg.Format)
}

func TestGetConfigPath_PrefersLocal(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, "", getConfigPath())

	writeConfigFile(t, "format: rc\n")
	assert.Equal(t, ".charta.yaml", getConfigPath())
}
