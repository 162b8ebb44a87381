package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tailscale/hujson"
)

type jsoncConfig struct {
	Audio *jsoncAudio `json:"audio"`
	View  *jsoncView  `json:"view"`
	Log   *jsoncLog   `json:"log"`
}

type jsoncAudio struct {
	Enable    *bool   `json:"enable"`
	Dir       *string `json:"dir"`
	Extension *string `json:"extension"`
	Output    *string `json:"output"`
	PlayerCmd *string `json:"player_cmd"`
}

type jsoncView struct {
	DisplayFont  *string `json:"display_font"`
	DisplaySize  *int    `json:"display_size"`
	FallbackFont *string `json:"fallback_font"`
	FallbackSize *int    `json:"fallback_size"`
}

type jsoncLog struct {
	Level *string `json:"level"`
}

func parseJSONC(content string, base Config) (Config, []Warning, error) {
	standard, err := hujson.Standardize([]byte(content))
	if err != nil {
		return Config{}, nil, fmt.Errorf("invalid JSONC: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(standard))
	decoder.DisallowUnknownFields()

	var payload jsoncConfig
	if err := decoder.Decode(&payload); err != nil {
		return Config{}, nil, wrapJSONDecodeError(string(standard), err)
	}
	if err := ensureSingleJSONValue(decoder); err != nil {
		return Config{}, nil, wrapJSONDecodeError(string(standard), err)
	}

	cfg := base
	warnings, err := payload.applyTo(&cfg)
	if err != nil {
		return Config{}, nil, err
	}

	validatedWarnings, err := Validate(cfg)
	if err != nil {
		return Config{}, nil, err
	}
	warnings = append(warnings, validatedWarnings...)
	return cfg, warnings, nil
}

func (payload jsoncConfig) applyTo(cfg *Config) ([]Warning, error) {
	warnings := make([]Warning, 0)

	if a := payload.Audio; a != nil {
		if a.Enable != nil {
			cfg.Audio.Enable = *a.Enable
		}
		if a.Dir != nil {
			cfg.Audio.Dir = strings.TrimSpace(*a.Dir)
		}
		if a.Extension != nil {
			cfg.Audio.Extension = strings.TrimSpace(*a.Extension)
		}
		if a.Output != nil {
			cfg.Audio.Output = strings.TrimSpace(*a.Output)
		}
		if a.PlayerCmd != nil {
			cmd, err := parseCommand(*a.PlayerCmd)
			if err != nil {
				return nil, fmt.Errorf("invalid audio.player_cmd: %w", err)
			}
			cfg.Audio.PlayerCmd = cmd
			if len(cmd.Argv) > 0 && !cfg.Audio.Enable {
				warnings = append(warnings, Warning{Message: "audio.player_cmd is ignored while audio.enable=false"})
			}
		}
	}

	if v := payload.View; v != nil {
		if v.DisplayFont != nil {
			cfg.View.DisplayFont = strings.TrimSpace(*v.DisplayFont)
		}
		if v.DisplaySize != nil {
			cfg.View.DisplaySize = *v.DisplaySize
		}
		if v.FallbackFont != nil {
			cfg.View.FallbackFont = strings.TrimSpace(*v.FallbackFont)
		}
		if v.FallbackSize != nil {
			cfg.View.FallbackSize = *v.FallbackSize
		}
	}

	if payload.Log != nil && payload.Log.Level != nil {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(*payload.Log.Level))
	}

	return warnings, nil
}

func ensureSingleJSONValue(decoder *json.Decoder) error {
	var extra struct{}
	err := decoder.Decode(&extra)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err == nil {
		return fmt.Errorf("multiple JSON values are not allowed")
	}
	return err
}

func wrapJSONDecodeError(content string, err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := offsetToLineCol(content, syntaxErr.Offset)
		return fmt.Errorf("line %d column %d: %w", line, col, err)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		line, col := offsetToLineCol(content, typeErr.Offset)
		return fmt.Errorf("line %d column %d: %w", line, col, err)
	}

	return err
}

// offsetToLineCol maps a decoder byte offset to a 1-based line and column.
func offsetToLineCol(content string, offset int64) (int, int) {
	if offset <= 0 {
		return 1, 1
	}
	limit := min(int(offset), len(content))
	prefix := content[:max(limit-1, 0)]
	line := strings.Count(prefix, "\n") + 1
	col := len(prefix) - strings.LastIndex(prefix, "\n")
	return line, col
}
