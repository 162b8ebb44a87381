package audio

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jozefcuryllo/learn-thai/internal/catalog"
	"github.com/stretchr/testify/require"
)

type fakePlayback struct {
	mu      sync.Mutex
	keys    []string
	err     error
	release chan struct{}
	panics  bool
}

func (f *fakePlayback) Play(_ context.Context, key string) error {
	if f.release != nil {
		<-f.release
	}
	if f.panics {
		panic("device exploded")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, key)
	return f.err
}

func (f *fakePlayback) played() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.keys...)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestLogger() (*slog.Logger, *syncBuffer) {
	out := &syncBuffer{}
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug})), out
}

var (
	chicken = catalog.Letter{Glyph: "ก", Latin: "g", Pronunciation: "gɔɔ-gài", Example: "ก ไก่", ExampleMeaning: "chicken", Consonant: true}
	saraA   = catalog.Letter{Glyph: "อะ", Latin: "a", Pronunciation: "sara a"}
)

func TestTriggerPlaysAudioKey(t *testing.T) {
	playback := &fakePlayback{}
	trigger := NewTrigger(context.Background(), playback, nil)

	trigger.Play(chicken)
	trigger.Wait()
	trigger.Play(saraA)
	trigger.Wait()

	require.Equal(t, []string{"ก ไก่", "อะ"}, playback.played())
}

func TestTriggerDoesNotBlockCaller(t *testing.T) {
	playback := &fakePlayback{release: make(chan struct{})}
	trigger := NewTrigger(context.Background(), playback, nil)

	returned := make(chan struct{})
	go func() {
		trigger.Play(chicken)
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatal("Play blocked on an in-flight clip")
	}

	close(playback.release)
	trigger.Wait()
	require.Equal(t, []string{"ก ไก่"}, playback.played())
}

func TestTriggerLogsUnavailableResource(t *testing.T) {
	logger, out := newTestLogger()
	playback := &fakePlayback{err: fmt.Errorf("%w: open audio/X.mp3: no such file", ErrResourceUnavailable)}
	trigger := NewTrigger(context.Background(), playback, logger)

	trigger.Play(chicken)
	trigger.Wait()

	require.Contains(t, out.String(), `"msg":"audio resource unavailable"`)
	require.Contains(t, out.String(), `"level":"WARN"`)
	require.Contains(t, out.String(), "ก ไก่")
}

func TestTriggerLogsOtherFailures(t *testing.T) {
	logger, out := newTestLogger()
	trigger := NewTrigger(context.Background(), &fakePlayback{err: fmt.Errorf("connect pulse server: refused")}, logger)

	trigger.Play(saraA)
	trigger.Wait()

	require.Contains(t, out.String(), `"msg":"audio playback failed"`)
}

func TestTriggerRecoversPanics(t *testing.T) {
	logger, out := newTestLogger()
	trigger := NewTrigger(context.Background(), &fakePlayback{panics: true}, logger)

	require.NotPanics(t, func() {
		trigger.Play(saraA)
		trigger.Wait()
	})
	require.Contains(t, out.String(), "audio playback panicked")
	require.Contains(t, out.String(), "device exploded")
}

func TestTriggerDisabledIsNoop(t *testing.T) {
	logger, out := newTestLogger()
	trigger := NewTrigger(context.Background(), nil, logger)

	trigger.Play(chicken)
	trigger.Wait()

	require.Contains(t, out.String(), "audio disabled")
}

func TestTriggerWithRealPlayerMissingClip(t *testing.T) {
	logger, out := newTestLogger()
	player := NewPlayer(testAudioConfig(t.TempDir())).withOutput(&recordingOutput{})
	trigger := NewTrigger(context.Background(), player, logger)

	trigger.Play(chicken)
	trigger.Wait()

	require.Contains(t, out.String(), "audio resource unavailable")
}
