// Package cli maps process arguments onto a learn-thai command.
package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
)

type Command string

const (
	CommandStudy   Command = "study"
	CommandRandom  Command = "random"
	CommandList    Command = "list"
	CommandDoctor  Command = "doctor"
	CommandDevices Command = "devices"
	CommandVersion Command = "version"
	CommandHelp    Command = "help"
)

type Parsed struct {
	Command    Command
	ConfigPath string
	ShowHelp   bool
	// Help is the rendered help of the command that was asked about.
	Help string
}

// Parse runs args through the command tree without executing anything.
func Parse(binaryName string, args []string) (Parsed, error) {
	parsed := Parsed{}
	root := newRootCommand(binaryName, &parsed)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return Parsed{}, err
	}
	return parsed, nil
}

// HelpText renders top-level usage for binaryName.
func HelpText(binaryName string) string {
	root := newRootCommand(binaryName, &Parsed{})
	return renderHelp(root)
}

func newRootCommand(binaryName string, parsed *Parsed) *cobra.Command {
	var showVersion bool

	root := &cobra.Command{
		Use:   binaryName + " [command]",
		Short: "Thai alphabet flashcards",
		Long:  "Learn the Thai alphabet with flashcards: one letter at a time, details on demand, pronunciation clips.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed.Command = CommandStudy
			if showVersion {
				parsed.Command = CommandVersion
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	root.PersistentFlags().StringVar(&parsed.ConfigPath, "config", "",
		"`PATH` to the config file (default: $XDG_CONFIG_HOME/learn-thai/config.jsonc)")
	root.Flags().BoolVar(&showVersion, "version", false, "Show version")

	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		parsed.Command = CommandHelp
		parsed.ShowHelp = true
		parsed.Help = renderHelp(cmd)
	})

	subcommands := []struct {
		command Command
		short   string
	}{
		{CommandStudy, "Open the interactive flashcard shell (default)"},
		{CommandRandom, "Print a random letter and play its pronunciation"},
		{CommandList, "List every letter in the alphabet"},
		{CommandDoctor, "Run configuration and audio checks"},
		{CommandDevices, "List available audio output devices"},
		{CommandVersion, "Print version information"},
	}
	for _, sub := range subcommands {
		command := sub.command
		root.AddCommand(&cobra.Command{
			Use:   string(command),
			Short: sub.short,
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				parsed.Command = command
				return nil
			},
		})
	}

	return root
}

func renderHelp(cmd *cobra.Command) string {
	var b strings.Builder
	if cmd.Long != "" {
		b.WriteString(cmd.Long)
		b.WriteString("\n\n")
	} else if cmd.Short != "" {
		b.WriteString(cmd.Short)
		b.WriteString("\n\n")
	}
	b.WriteString(cmd.UsageString())
	return b.String()
}
