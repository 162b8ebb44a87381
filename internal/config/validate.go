package config

import (
	"fmt"
	"strings"
)

var logLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate enforces config invariants and returns non-fatal warnings.
func Validate(cfg Config) ([]Warning, error) {
	warnings := make([]Warning, 0)

	if strings.TrimSpace(cfg.Audio.Dir) == "" {
		return nil, fmt.Errorf("audio.dir must not be empty")
	}
	if !strings.HasPrefix(cfg.Audio.Extension, ".") || len(cfg.Audio.Extension) < 2 {
		return nil, fmt.Errorf("audio.extension must start with '.' and name a type, got %q", cfg.Audio.Extension)
	}
	if strings.TrimSpace(cfg.Audio.PlayerCmd.Raw) != "" && len(cfg.Audio.PlayerCmd.Argv) == 0 {
		return nil, fmt.Errorf("audio.player_cmd is configured but empty")
	}
	if cfg.View.DisplaySize <= 0 {
		return nil, fmt.Errorf("view.display_size must be > 0")
	}
	if cfg.View.FallbackSize <= 0 {
		return nil, fmt.Errorf("view.fallback_size must be > 0")
	}
	if _, ok := logLevels[cfg.Log.Level]; !ok {
		return nil, fmt.Errorf("log.level must be one of: debug, info, warn, error")
	}

	if strings.TrimSpace(cfg.View.DisplayFont) == "" {
		warnings = append(warnings, Warning{Message: "view.display_font is empty; toolkit default font will be used"})
	}
	if strings.TrimSpace(cfg.View.FallbackFont) == "" {
		warnings = append(warnings, Warning{Message: "view.fallback_font is empty; toolkit default font will be used"})
	}
	if !cfg.Audio.Enable {
		warnings = append(warnings, Warning{Message: "audio.enable=false; pronunciation playback is off"})
	}

	return warnings, nil
}
