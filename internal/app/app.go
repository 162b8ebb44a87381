// Package app maps parsed commands onto the flashcard shells and diagnostics.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/jozefcuryllo/learn-thai/internal/audio"
	"github.com/jozefcuryllo/learn-thai/internal/catalog"
	"github.com/jozefcuryllo/learn-thai/internal/cli"
	"github.com/jozefcuryllo/learn-thai/internal/config"
	"github.com/jozefcuryllo/learn-thai/internal/doctor"
	"github.com/jozefcuryllo/learn-thai/internal/logging"
	"github.com/jozefcuryllo/learn-thai/internal/nav"
	"github.com/jozefcuryllo/learn-thai/internal/session"
	"github.com/jozefcuryllo/learn-thai/internal/tui"
	"github.com/jozefcuryllo/learn-thai/internal/version"
	"github.com/jozefcuryllo/learn-thai/internal/view"
)

const binaryName = "learn-thai"

type Runner struct {
	// Stdin feeds the interactive shell; nil reads the process terminal.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	// Source overrides the random letter source; nil uses math/rand/v2.
	Source nav.Source
}

func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := Runner{Stdout: stdout, Stderr: stderr}
	return r.Execute(ctx, args)
}

func (r Runner) Execute(ctx context.Context, args []string) int {
	parsed, err := cli.Parse(binaryName, args)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n\n", err)
		fmt.Fprint(r.Stderr, cli.HelpText(binaryName))
		return 2
	}

	if parsed.ShowHelp {
		fmt.Fprint(r.Stdout, parsed.Help)
		return 0
	}

	if parsed.Command == cli.CommandVersion {
		fmt.Fprintln(r.Stdout, version.String())
		return 0
	}

	logRuntime, err := logging.New()
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: setup logging: %v\n", err)
		return 1
	}
	defer func() { _ = logRuntime.Close() }()

	logger := r.Logger
	if logger == nil {
		logger = logRuntime.Logger
	}

	cfgLoaded, err := config.Load(parsed.ConfigPath)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("load config failed", "error", err.Error())
		return 1
	}
	for _, w := range cfgLoaded.Warnings {
		msg := w.Message
		if w.Line > 0 {
			msg = fmt.Sprintf("line %d: %s", w.Line, w.Message)
		}
		fmt.Fprintf(r.Stderr, "warning: %s\n", msg)
		logger.Warn("config warning", "line", w.Line, "message", w.Message)
	}
	if err := logRuntime.SetLevel(cfgLoaded.Config.Log.Level); err != nil {
		logger.Warn("log level ignored", "error", err.Error())
	}

	logger.Info("command start",
		"command", parsed.Command,
		"config", cfgLoaded.Path,
		"log", logRuntime.Path,
	)

	cat := catalog.Thai()

	switch parsed.Command {
	case cli.CommandDoctor:
		report := doctor.Run(ctx, cfgLoaded, cat)
		fmt.Fprintln(r.Stdout, report.String())
		if report.OK() {
			return 0
		}
		return 1
	case cli.CommandDevices:
		return r.commandDevices(ctx)
	case cli.CommandList:
		return r.commandList(cat)
	case cli.CommandRandom:
		return r.commandRandom(ctx, cfgLoaded.Config, cat, logger)
	case cli.CommandStudy:
		return r.commandStudy(ctx, cfgLoaded.Config, cat, logger)
	default:
		fmt.Fprintf(r.Stderr, "error: unsupported command %q\n", parsed.Command)
		return 2
	}
}

func (r Runner) commandDevices(ctx context.Context) int {
	devices, err := audio.ListSinks(ctx)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}
	if len(devices) == 0 {
		fmt.Fprintln(r.Stdout, "no audio output devices found")
		return 1
	}

	for _, device := range devices {
		defaultMark := " "
		if device.Default {
			defaultMark = "*"
		}
		availability := "yes"
		if !device.Available {
			availability = "no"
		}
		muted := "no"
		if device.Muted {
			muted = "yes"
		}
		fmt.Fprintf(
			r.Stdout,
			"%s id=%s | description=%q | state=%s | available=%s | muted=%s\n",
			defaultMark,
			device.ID,
			device.Description,
			device.State,
			availability,
			muted,
		)
	}

	return 0
}

func (r Runner) commandList(cat *catalog.Catalog) int {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Letter", Width: 6},
		{Title: "English", Width: 7},
		{Title: "Pronunciation", Width: 16},
		{Title: "Example", Width: 14},
		{Title: "Meaning", Width: 28},
		{Title: "Audio key", Width: 14},
	}

	letters := cat.Letters()
	rows := make([]table.Row, 0, len(letters))
	for i, letter := range letters {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			letter.Glyph,
			letter.Latin,
			letter.Pronunciation,
			letter.Example,
			letter.ExampleMeaning,
			letter.AudioKey(),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	fmt.Fprintf(r.Stdout, "Thai alphabet: %d letters (%d consonants, %d vowels)\n\n",
		cat.Len(), cat.Consonants(), cat.Vowels())
	fmt.Fprintln(r.Stdout, t.View())
	return 0
}

// commandRandom prints one random card and plays its clip before exiting.
func (r Runner) commandRandom(ctx context.Context, cfg config.Config, cat *catalog.Catalog, logger *slog.Logger) int {
	navigator, err := nav.New(cat.Len(), r.Source)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	if cfg.Audio.Enable && len(cfg.Audio.PlayerCmd.Argv) == 0 {
		device, err := audio.Probe(ctx, cfg.Audio.Output)
		if err != nil {
			fmt.Fprintf(r.Stderr, "error: no audio output: %v\n", err)
			logger.Error("audio output probe failed", "output", cfg.Audio.Output, "error", err.Error())
			return 1
		}
		logger.Debug("audio output selected", "sink", device.ID)
	}

	letter := cat.MustGet(navigator.JumpRandom())
	fmt.Fprint(r.Stdout, view.Text(letter))

	trigger := audio.NewTrigger(ctx, newPlayback(cfg.Audio), logger)
	trigger.Play(letter)
	trigger.Wait()
	return 0
}

// commandStudy runs the interactive shell until the user quits.
func (r Runner) commandStudy(ctx context.Context, cfg config.Config, cat *catalog.Catalog, logger *slog.Logger) int {
	navigator, err := nav.New(cat.Len(), r.Source)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	audioCtx, cancelAudio := context.WithCancel(ctx)
	trigger := audio.NewTrigger(audioCtx, newPlayback(cfg.Audio), logger)
	defer func() {
		cancelAudio()
		trigger.Wait()
	}()

	ctrl := session.NewController(cat, navigator, trigger, fontsFromConfig(cfg.View), logger)
	if err := tui.Run(ctx, ctrl, r.Stdin, r.Stdout); err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("interactive shell failed", "error", err.Error())
		return 1
	}
	return 0
}

// newPlayback returns nil when audio is disabled, which turns the trigger into a no-op.
func newPlayback(cfg config.AudioConfig) audio.Playback {
	if !cfg.Enable {
		return nil
	}
	return audio.NewPlayer(cfg)
}

func fontsFromConfig(cfg config.ViewConfig) view.Fonts {
	return view.Fonts{
		Display:      cfg.DisplayFont,
		DisplaySize:  cfg.DisplaySize,
		Fallback:     cfg.FallbackFont,
		FallbackSize: cfg.FallbackSize,
	}
}
