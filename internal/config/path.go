package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	appDir   = "learn-thai"
	fileName = "config.jsonc"
)

// ResolvePath returns explicit when set, otherwise learn-thai/config.jsonc under the user config dir
// ($XDG_CONFIG_HOME, then ~/.config).
func ResolvePath(explicit string) (string, error) {
	if strings.TrimSpace(explicit) != "" {
		return explicit, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}
