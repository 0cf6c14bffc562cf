// Package config loads and resolves the charta CLI configuration with an
// explicit priority order across flags, environment, and the .charta.yaml
// file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/charta/pkg/style"
)

// CliFlags holds the values of command-line flags, plus markers for whether
// the user set them explicitly.
type CliFlags struct {
	Format    string
	ThemeName string
	NoColor   bool
	CI        bool
	Debug     bool

	FormatSet  bool
	NoColorSet bool
	CISet      bool
	DebugSet   bool
}

// AppConfig is the on-disk configuration from .charta.yaml.
type AppConfig struct {
	Format          string                    `yaml:"format"`
	ActiveThemeName string                    `yaml:"active_theme"`
	NoColor         bool                      `yaml:"no_color"`
	CI              bool                      `yaml:"ci"`
	Debug           bool                      `yaml:"debug"`
	Fragments       map[string]style.Fragment `yaml:"fragments"`
}

// Defaults.
const (
	DefaultFormat          = "auto"
	DefaultActiveThemeName = "default"
)

// LoadConfig loads .charta.yaml, falling back to defaults when the file is
// absent or unreadable. A malformed file is reported as a warning, not an
// error: the CLI stays usable with defaults.
func LoadConfig() *AppConfig {
	appCfg := &AppConfig{
		Format:          DefaultFormat,
		ActiveThemeName: DefaultActiveThemeName,
	}

	configPath := getConfigPath()
	if configPath == "" {
		return appCfg
	}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v. Using defaults.\n", configPath, err)
		}
		return appCfg
	}

	var fileCfg AppConfig
	if err := yaml.Unmarshal(yamlFile, &fileCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error unmarshalling config file %s: %v. Using defaults.\n", configPath, err)
		return appCfg
	}

	if fileCfg.Format != "" {
		appCfg.Format = fileCfg.Format
	}
	if fileCfg.ActiveThemeName != "" {
		appCfg.ActiveThemeName = fileCfg.ActiveThemeName
	}
	appCfg.NoColor = fileCfg.NoColor
	appCfg.CI = fileCfg.CI
	appCfg.Debug = fileCfg.Debug
	appCfg.Fragments = fileCfg.Fragments

	if appCfg.Debug || os.Getenv("CHARTA_DEBUG") != "" {
		fmt.Fprintf(os.Stderr, "[DEBUG LoadConfig] Loaded config from %s (%d fragment overlays).\n",
			configPath, len(appCfg.Fragments))
	}
	return appCfg
}

// getConfigPath finds the .charta.yaml configuration file: local directory
// first, then the XDG user config dir.
func getConfigPath() string {
	localPath := ".charta.yaml"
	if _, err := os.Stat(localPath); err == nil {
		return localPath
	}

	configHome, err := os.UserConfigDir()
	if err == nil && configHome != "" && configHome != "/" {
		xdgPath := filepath.Join(configHome, "charta", ".charta.yaml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}
	return ""
}
