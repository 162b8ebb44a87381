// Package config resolves, parses, validates, and defaults learn-thai configuration.
package config

// Config is the fully materialized runtime configuration.
type Config struct {
	Audio AudioConfig
	View  ViewConfig
	Log   LogConfig
}

// AudioConfig locates pronunciation clips and selects how they are played.
type AudioConfig struct {
	Enable    bool
	Dir       string
	Extension string
	Output    string
	PlayerCmd CommandConfig
}

// ViewConfig names the two font treatments of the primary glyph.
type ViewConfig struct {
	DisplayFont  string
	DisplaySize  int
	FallbackFont string
	FallbackSize int
}

// LogConfig controls the JSONL runtime log.
type LogConfig struct {
	Level string
}

// CommandConfig stores a raw command string and its parsed argv form.
type CommandConfig struct {
	Raw  string
	Argv []string
}

// Warning is a non-fatal parse/validation message.
type Warning struct {
	Line    int
	Message string
}
