package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefaultsToStudy(t *testing.T) {
	parsed, err := Parse("learn-thai", nil)
	require.NoError(t, err)
	require.False(t, parsed.ShowHelp)
	require.Equal(t, CommandStudy, parsed.Command)
}

func TestParseCommandWithConfig(t *testing.T) {
	parsed, err := Parse("learn-thai", []string{"--config", "/tmp/learn-thai.jsonc", "doctor"})
	require.NoError(t, err)
	require.Equal(t, CommandDoctor, parsed.Command)
	require.Equal(t, "/tmp/learn-thai.jsonc", parsed.ConfigPath)
	require.False(t, parsed.ShowHelp)
}

func TestParseArgMatrix(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  string
		wantCmd  Command
		wantHelp bool
		wantPath string
	}{
		{
			name:     "help short flag",
			args:     []string{"-h"},
			wantCmd:  CommandHelp,
			wantHelp: true,
		},
		{
			name:     "help long flag",
			args:     []string{"--help"},
			wantCmd:  CommandHelp,
			wantHelp: true,
		},
		{
			name:     "help command",
			args:     []string{"help"},
			wantCmd:  CommandHelp,
			wantHelp: true,
		},
		{
			name:    "version flag",
			args:    []string{"--version"},
			wantCmd: CommandVersion,
		},
		{
			name:     "config after command",
			args:     []string{"random", "--config", "/tmp/cfg"},
			wantCmd:  CommandRandom,
			wantPath: "/tmp/cfg",
		},
		{
			name:    "missing config path",
			args:    []string{"--config"},
			wantErr: "flag needs an argument",
		},
		{
			name:    "unknown flag",
			args:    []string{"--bogus"},
			wantErr: "unknown flag",
		},
		{
			name:    "unknown command",
			args:    []string{"bogus"},
			wantErr: "unknown command",
		},
		{
			name:    "extra args after command",
			args:    []string{"doctor", "extra"},
			wantErr: "unknown command",
		},
		{
			name:    "explicit study",
			args:    []string{"study"},
			wantCmd: CommandStudy,
		},
		{
			name:     "list with config",
			args:     []string{"--config", "/tmp/cfg", "list"},
			wantCmd:  CommandList,
			wantPath: "/tmp/cfg",
		},
		{
			name:    "devices",
			args:    []string{"devices"},
			wantCmd: CommandDevices,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := Parse("learn-thai", tc.args)
			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.wantCmd, parsed.Command)
			require.Equal(t, tc.wantHelp, parsed.ShowHelp)
			require.Equal(t, tc.wantPath, parsed.ConfigPath)
		})
	}
}

func TestSubcommandHelpRendersThatCommand(t *testing.T) {
	parsed, err := Parse("learn-thai", []string{"random", "--help"})
	require.NoError(t, err)
	require.True(t, parsed.ShowHelp)
	require.Contains(t, parsed.Help, "learn-thai random")
	require.Contains(t, parsed.Help, "--config PATH")
}

func TestHelpTextIncludesCoreCommands(t *testing.T) {
	text := HelpText("learn-thai")
	require.Contains(t, text, "Usage:")
	for _, name := range []string{"study", "random", "list", "doctor", "devices", "version"} {
		require.Contains(t, text, name)
	}
	require.Contains(t, text, "--config PATH")
	require.NotContains(t, text, "completion")
}
