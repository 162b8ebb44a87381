package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jozefcuryllo/learn-thai/internal/catalog"
	"github.com/jozefcuryllo/learn-thai/internal/logging"
)

// Playback is the synchronous clip player a Trigger dispatches to.
type Playback interface {
	Play(ctx context.Context, key string) error
}

// Trigger dispatches playback off the caller's goroutine and never reports back.
type Trigger struct {
	ctx      context.Context
	playback Playback
	logger   *slog.Logger
	inflight sync.WaitGroup
}

// NewTrigger binds playback to ctx. A nil playback disables audio.
func NewTrigger(ctx context.Context, playback Playback, logger *slog.Logger) *Trigger {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Trigger{ctx: ctx, playback: playback, logger: logger}
}

// Play starts the clip for letter and returns immediately. Failures are logged, never returned.
func (t *Trigger) Play(letter catalog.Letter) {
	key := letter.AudioKey()
	if t.playback == nil {
		t.logger.Debug("audio disabled; skipping playback", "key", key)
		return
	}

	t.inflight.Add(1)
	go func() {
		defer t.inflight.Done()
		defer func() {
			if r := recover(); r != nil {
				t.logger.Error("audio playback panicked", "key", key, "panic", fmt.Sprint(r))
			}
		}()

		err := t.playback.Play(t.ctx, key)
		switch {
		case err == nil:
			t.logger.Debug("audio played", "key", key)
		case errors.Is(err, ErrResourceUnavailable):
			t.logger.Warn("audio resource unavailable", "key", key, "error", err.Error())
		case errors.Is(err, context.Canceled):
			t.logger.Debug("audio playback cancelled", "key", key)
		default:
			t.logger.Warn("audio playback failed", "key", key, "error", err.Error())
		}
	}()
}

// Wait blocks until every dispatched clip has finished. Shells never call it from the event loop.
func (t *Trigger) Wait() {
	t.inflight.Wait()
}
