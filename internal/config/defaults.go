package config

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Audio: AudioConfig{
			Enable:    true,
			Dir:       "audio",
			Extension: ".mp3",
			Output:    "default",
		},
		View: ViewConfig{
			DisplayFont:  "Noto Looped Thai UI",
			DisplaySize:  40,
			FallbackFont: "Arial",
			FallbackSize: 30,
		},
		Log: LogConfig{Level: "info"},
	}
}
