// Package session coordinates the flashcard cursor, card visibility, and audio dispatch.
package session

import (
	"log/slog"
	"sync"

	"github.com/jozefcuryllo/learn-thai/internal/catalog"
	"github.com/jozefcuryllo/learn-thai/internal/fsm"
	"github.com/jozefcuryllo/learn-thai/internal/logging"
	"github.com/jozefcuryllo/learn-thai/internal/nav"
	"github.com/jozefcuryllo/learn-thai/internal/view"
)

// Audio is the session-facing subset of audio dispatch. Play must not block.
type Audio interface {
	Play(catalog.Letter)
}

// noopAudio keeps the session usable when no audio is wired.
type noopAudio struct{}

func (noopAudio) Play(catalog.Letter) {}

// Snapshot is everything a shell needs to draw the current card.
type Snapshot struct {
	Index    int
	Total    int
	Letter   catalog.Letter
	View     view.Model
	Revealed bool
}

// Controller is the single writer of navigation and reveal state for one shell session.
type Controller struct {
	catalog *catalog.Catalog
	nav     *nav.Navigator
	audio   Audio
	fonts   view.Fonts
	logger  *slog.Logger

	mu     sync.Mutex
	reveal fsm.State
}

// NewController wires a session over cat. The navigator must have been built for cat.Len().
func NewController(
	cat *catalog.Catalog,
	navigator *nav.Navigator,
	audio Audio,
	fonts view.Fonts,
	logger *slog.Logger,
) *Controller {
	if audio == nil {
		audio = noopAudio{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Controller{
		catalog: cat,
		nav:     navigator,
		audio:   audio,
		fonts:   fonts,
		logger:  logger,
		reveal:  fsm.StateHidden,
	}
}

// Snapshot returns the current card without changing state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked(c.nav.Cursor())
}

// Next advances one letter and hides the card details.
func (c *Controller) Next() Snapshot {
	return c.navigate("next", c.nav.Advance)
}

// Previous steps back one letter and hides the card details.
func (c *Controller) Previous() Snapshot {
	return c.navigate("previous", c.nav.Retreat)
}

// Random jumps to a random letter and hides the card details.
func (c *Controller) Random() Snapshot {
	return c.navigate("random", c.nav.JumpRandom)
}

// Reveal shows the card details and plays the current letter.
func (c *Controller) Reveal() Snapshot {
	c.mu.Lock()
	c.apply(fsm.EventReveal)
	snap := c.snapshotLocked(c.nav.Cursor())
	c.mu.Unlock()

	c.audio.Play(snap.Letter)
	return snap
}

// Replay plays the current letter again without touching visibility.
func (c *Controller) Replay() Snapshot {
	snap := c.Snapshot()
	c.audio.Play(snap.Letter)
	return snap
}

func (c *Controller) navigate(command string, move func() int) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	index := move()
	c.apply(fsm.EventNavigate)
	c.logger.Debug("navigate", "command", command, "index", index)
	return c.snapshotLocked(index)
}

func (c *Controller) apply(event fsm.Event) {
	next, err := fsm.Transition(c.reveal, event)
	if err != nil {
		c.logger.Error("reveal transition failed", "state", c.reveal, "event", event, "error", err.Error())
		return
	}
	c.reveal = next
}

func (c *Controller) snapshotLocked(index int) Snapshot {
	letter := c.catalog.MustGet(index)
	return Snapshot{
		Index:    index,
		Total:    c.catalog.Len(),
		Letter:   letter,
		View:     view.Compose(letter, c.fonts),
		Revealed: c.reveal == fsm.StateRevealed,
	}
}
