package session

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/jozefcuryllo/learn-thai/internal/audio"
	"github.com/jozefcuryllo/learn-thai/internal/catalog"
	"github.com/jozefcuryllo/learn-thai/internal/config"
	"github.com/jozefcuryllo/learn-thai/internal/nav"
	"github.com/jozefcuryllo/learn-thai/internal/view"
	"github.com/stretchr/testify/require"
)

type recordedAudio struct {
	mu      sync.Mutex
	letters []catalog.Letter
}

func (r *recordedAudio) Play(l catalog.Letter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.letters = append(r.letters, l)
}

type fixedSource int

func (f fixedSource) IntN(int) int { return int(f) }

var (
	letterA = catalog.Letter{Glyph: "A", Latin: "a", Pronunciation: "aa", Example: "X", ExampleMeaning: "ex", Consonant: true}
	letterB = catalog.Letter{Glyph: "B", Latin: "b", Pronunciation: "bee"}
)

func newTwoLetterController(t *testing.T, a Audio, source nav.Source) *Controller {
	t.Helper()
	cat, err := catalog.New([]catalog.Letter{letterA, letterB})
	require.NoError(t, err)
	navigator, err := nav.New(cat.Len(), source)
	require.NoError(t, err)
	return NewController(cat, navigator, a, view.DefaultFonts(), nil)
}

func TestSnapshotStartsAtFirstLetterHidden(t *testing.T) {
	c := newTwoLetterController(t, nil, nil)

	snap := c.Snapshot()
	require.Equal(t, 0, snap.Index)
	require.Equal(t, 2, snap.Total)
	require.Equal(t, letterA, snap.Letter)
	require.False(t, snap.Revealed)
	require.Equal(t, "Example: X, aa, ex", snap.View.Detail)
}

func TestNavigationClampsAndRecomposes(t *testing.T) {
	c := newTwoLetterController(t, nil, nil)

	snap := c.Next()
	require.Equal(t, 1, snap.Index)
	require.Equal(t, letterB, snap.Letter)
	require.Empty(t, snap.View.Detail)

	snap = c.Next()
	require.Equal(t, 1, snap.Index)

	snap = c.Previous()
	require.Equal(t, 0, snap.Index)
	snap = c.Previous()
	require.Equal(t, 0, snap.Index)
}

func TestRevealPlaysCurrentLetter(t *testing.T) {
	rec := &recordedAudio{}
	c := newTwoLetterController(t, rec, nil)

	snap := c.Reveal()
	require.True(t, snap.Revealed)
	require.Equal(t, []catalog.Letter{letterA}, rec.letters)

	snap = c.Reveal()
	require.True(t, snap.Revealed)
	require.Len(t, rec.letters, 2)
}

func TestNavigationHidesEvenAtBoundary(t *testing.T) {
	c := newTwoLetterController(t, nil, nil)

	require.True(t, c.Reveal().Revealed)
	snap := c.Previous()
	require.Equal(t, 0, snap.Index)
	require.False(t, snap.Revealed)

	c.Reveal()
	require.False(t, c.Next().Revealed)
	c.Reveal()
	require.False(t, c.Random().Revealed)
}

func TestRandomUsesSource(t *testing.T) {
	c := newTwoLetterController(t, nil, fixedSource(1))
	snap := c.Random()
	require.Equal(t, 1, snap.Index)
	require.Equal(t, letterB, snap.Letter)
}

func TestReplayKeepsVisibility(t *testing.T) {
	rec := &recordedAudio{}
	c := newTwoLetterController(t, rec, nil)

	require.False(t, c.Replay().Revealed)
	c.Reveal()
	require.True(t, c.Replay().Revealed)
	require.Len(t, rec.letters, 3)
}

func TestPlayCapturesLetterAtRequestTime(t *testing.T) {
	rec := &recordedAudio{}
	c := newTwoLetterController(t, rec, nil)

	c.Reveal()
	c.Next()
	require.Equal(t, []catalog.Letter{letterA}, rec.letters)
}

func TestEndToEndMissingClipIsLoggedNotRaised(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	audioCfg := config.Default().Audio
	audioCfg.Dir = t.TempDir()
	trigger := audio.NewTrigger(context.Background(), audio.NewPlayer(audioCfg), logger)

	c := newTwoLetterController(t, trigger, nil)
	require.Equal(t, 0, c.Snapshot().Index)

	snap := c.Next()
	require.Equal(t, 1, snap.Index)
	require.Empty(t, snap.View.Detail)

	snap = c.Previous()
	require.Equal(t, 0, snap.Index)

	require.NotPanics(t, func() {
		c.Reveal()
		trigger.Wait()
	})
	require.Contains(t, logs.String(), "audio resource unavailable")
	require.Contains(t, logs.String(), `"key":"X"`)
}
