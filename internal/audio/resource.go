package audio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrResourceUnavailable reports a clip that is missing, unreadable, or undecodable.
var ErrResourceUnavailable = errors.New("audio resource unavailable")

// ResourcePath names the clip for key: dir/<key><ext>.
func ResourcePath(dir, key, ext string) string {
	return filepath.Join(expandUserPath(dir), key+ext)
}

func expandUserPath(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw != "~" && !strings.HasPrefix(raw, "~/") {
		return raw
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return raw
	}
	return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(raw, "~"), "/"))
}
