package config

import (
	"fmt"
	"strings"
	"unicode"
)

// parseCommand splits a shell-like command string. Quotes group words, backslash escapes one rune.
func parseCommand(raw string) (CommandConfig, error) {
	input := strings.TrimSpace(raw)
	if input == "" || strings.HasPrefix(input, "#") {
		return CommandConfig{Raw: raw}, nil
	}

	var (
		argv    []string
		word    strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)

	for _, r := range input {
		switch {
		case escaped:
			word.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
			inWord = true
		case quote != 0 && r == quote:
			quote = 0
		case quote != 0:
			word.WriteRune(r)
		case r == '\'' || r == '"':
			quote = r
			inWord = true
		case unicode.IsSpace(r):
			if inWord {
				argv = append(argv, word.String())
				word.Reset()
				inWord = false
			}
		default:
			word.WriteRune(r)
			inWord = true
		}
	}

	if escaped {
		return CommandConfig{}, fmt.Errorf("unterminated escape sequence in command: %q", input)
	}
	if quote != 0 {
		return CommandConfig{}, fmt.Errorf("unterminated quote in command: %q", input)
	}
	if inWord {
		argv = append(argv, word.String())
	}
	return CommandConfig{Raw: raw, Argv: argv}, nil
}
