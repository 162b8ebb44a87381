// Package tui is the interactive flashcard shell.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jozefcuryllo/learn-thai/internal/session"
)

// WindowTitle is set on the hosting terminal when the shell starts.
const WindowTitle = "Learn Thai"

// Model is the root bubbletea model. It holds only presentation state; the
// session controller owns the cursor and reveal state.
type Model struct {
	session *session.Controller
	keys    keyMap
	help    help.Model
	card    session.Snapshot
	width   int
	height  int
}

// New builds a model showing the controller's current card.
func New(ctrl *session.Controller) Model {
	return Model{
		session: ctrl,
		keys:    defaultKeyMap(),
		help:    help.New(),
		card:    ctrl.Snapshot(),
	}
}

// Init sets the window title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(WindowTitle)
}

// Update routes key presses to the session controller.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.card = m.session.Next()
	case key.Matches(msg, m.keys.Previous):
		m.card = m.session.Previous()
	case key.Matches(msg, m.keys.Random):
		m.card = m.session.Random()
	case key.Matches(msg, m.keys.Show):
		m.card = m.session.Reveal()
	case key.Matches(msg, m.keys.Replay):
		m.card = m.session.Replay()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// View renders the card, revealing meta and detail only after Show.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(WindowTitle),
		"  ",
		positionStyle.Render(fmt.Sprintf("%d/%d", m.card.Index+1, m.card.Total)),
	)

	lines := []string{m.renderPrimary(), ""}
	if m.card.Revealed {
		lines = append(lines, metaStyle.Render(m.card.View.Meta))
		if m.card.View.Detail != "" {
			lines = append(lines, detailStyle.Render(m.card.View.Detail))
		}
	} else {
		lines = append(lines, hintStyle.Render("press s to show"))
	}
	card := cardStyle.Render(strings.Join(lines, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		card,
		"",
		m.help.View(m.keys),
	)
}

func (m Model) renderPrimary() string {
	styles := []lipgloss.Style{displayGlyphStyle, fallbackGlyphStyle}
	parts := make([]string, 0, len(m.card.View.Primary))
	for i, span := range m.card.View.Primary {
		parts = append(parts, styles[i%len(styles)].Render(span.Text))
	}
	return strings.Join(parts, "  ")
}

// Run drives the shell until the user quits or ctx is cancelled.
func Run(ctx context.Context, ctrl *session.Controller, in io.Reader, out io.Writer) error {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}

	_, err := tea.NewProgram(New(ctrl), opts...).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run interactive shell: %w", err)
	}
	return nil
}
