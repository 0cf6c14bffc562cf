package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dkoosis/charta/pkg/render"
	"github.com/dkoosis/charta/pkg/style"
)

// Configuration resolution priority, highest to lowest:
//
//	1. CLI flags (-format, -theme, -no-color, -ci, -debug)
//	2. Environment variables (CHARTA_FORMAT, CHARTA_NO_COLOR, NO_COLOR, CHARTA_CI, CI, CHARTA_DEBUG)
//	3. .charta.yaml configuration file
//	4. Defaults
//
// This keeps behavior predictable: user intent (CLI) > environment > file >
// defaults.

// ResolvedConfig holds the final configuration after applying all priority
// rules, plus the style registry with any file-defined fragment overlays.
type ResolvedConfig struct {
	Format   string
	Theme    render.Theme
	NoColor  bool
	CI       bool
	Debug    bool
	Registry *style.Registry

	// Resolution metadata, for debugging.
	FormatSource  string // "cli", "env", "file", "default"
	ThemeSource   string // "cli", "file", "default"
	NoColorSource string // "cli", "env", "file", "default"
	CISource      string // "cli", "env", "file", "default"
}

// ResolveConfig resolves the CLI configuration from all sources. It is the
// single source of truth for config resolution.
func ResolveConfig(cliFlags CliFlags) (*ResolvedConfig, error) {
	appCfg := LoadConfig()

	resolved := &ResolvedConfig{
		Format:        appCfg.Format,
		NoColor:       appCfg.NoColor,
		CI:            appCfg.CI,
		Debug:         appCfg.Debug,
		FormatSource:  "file",
		NoColorSource: "file",
		CISource:      "file",
	}

	if cliFlags.FormatSet {
		resolved.Format = cliFlags.Format
		resolved.FormatSource = "cli"
	} else if envFormat := os.Getenv("CHARTA_FORMAT"); envFormat != "" {
		resolved.Format = envFormat
		resolved.FormatSource = "env"
	}

	if cliFlags.NoColorSet {
		resolved.NoColor = cliFlags.NoColor
		resolved.NoColorSource = "cli"
	} else if envNoColor := getEnvBool("CHARTA_NO_COLOR", "NO_COLOR"); envNoColor != nil {
		resolved.NoColor = *envNoColor
		resolved.NoColorSource = "env"
	}

	if cliFlags.CISet {
		resolved.CI = cliFlags.CI
		resolved.CISource = "cli"
	} else if envCI := getEnvBool("CHARTA_CI", "CI"); envCI != nil {
		resolved.CI = *envCI
		resolved.CISource = "env"
	}

	if cliFlags.DebugSet {
		resolved.Debug = cliFlags.Debug
	} else if os.Getenv("CHARTA_DEBUG") != "" {
		resolved.Debug = true
	}

	resolved.Theme, resolved.ThemeSource = resolveTheme(cliFlags, appCfg)

	// CI mode implies monochrome output.
	if resolved.CI || resolved.NoColor {
		resolved.Theme = render.MonoTheme()
	}

	resolved.Registry = style.NewRegistry()
	if len(appCfg.Fragments) > 0 {
		resolved.Registry = resolved.Registry.WithFragments(appCfg.Fragments)
	}

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

// resolveTheme resolves the render theme: CLI flag > file active_theme > default.
func resolveTheme(cliFlags CliFlags, appCfg *AppConfig) (render.Theme, string) {
	if cliFlags.ThemeName != "" {
		if theme, ok := render.Themes()[cliFlags.ThemeName]; ok {
			return theme, "cli"
		}
		return render.DefaultTheme(), "default"
	}
	if theme, ok := render.Themes()[appCfg.ActiveThemeName]; ok {
		return theme, "file"
	}
	return render.DefaultTheme(), "default"
}

// getEnvBool reads a boolean from environment variables, trying keys in
// order. Returns nil when none are set.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

func validateResolvedConfig(cfg *ResolvedConfig) error {
	validFormat := map[string]bool{
		"auto":  true,
		"rc":    true,
		"json":  true,
		"table": true,
	}
	if !validFormat[cfg.Format] {
		return fmt.Errorf("invalid format value: %s (must be: auto, rc, json, table)", cfg.Format)
	}
	return nil
}
