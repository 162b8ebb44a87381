package audio

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/pulse"
	"github.com/jozefcuryllo/learn-thai/internal/config"
)

// PCM is a decoded 16-bit little-endian stereo stream.
type PCM struct {
	Name       string
	SampleRate int
	Data       io.Reader
}

// Output renders decoded PCM on a device.
type Output interface {
	Play(ctx context.Context, pcm PCM) error
}

// Player plays one clip at a time, synchronously.
type Player struct {
	dir       string
	extension string
	command   []string
	output    Output
}

// NewPlayer builds a player for cfg. A configured player_cmd replaces the built-in decoder.
func NewPlayer(cfg config.AudioConfig) *Player {
	return &Player{
		dir:       cfg.Dir,
		extension: cfg.Extension,
		command:   cfg.PlayerCmd.Argv,
		output:    PulseOutput{Sink: cfg.Output},
	}
}

// withOutput swaps the PCM destination so tests can run without a Pulse server.
func (p *Player) withOutput(out Output) *Player {
	cp := *p
	cp.output = out
	return &cp
}

// Path returns the resolved clip location for key.
func (p *Player) Path(key string) string {
	return ResourcePath(p.dir, key, p.extension)
}

// Play resolves key to a clip and plays it to completion or until ctx ends.
func (p *Player) Play(ctx context.Context, key string) error {
	path := p.Path(key)

	if len(p.command) > 0 {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
		}
		args := append(append([]string(nil), p.command[1:]...), path)
		cmd := exec.CommandContext(ctx, p.command[0], args...)
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("run player %q for %q: %w", p.command[0], path, err)
		}
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	defer f.Close()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return fmt.Errorf("%w: decode %q: %w", ErrResourceUnavailable, path, err)
	}

	return p.output.Play(ctx, PCM{Name: key, SampleRate: decoder.SampleRate(), Data: decoder})
}

// PulseOutput streams PCM to a Pulse sink. Each Play opens and closes its own client.
type PulseOutput struct {
	Sink string
}

// Play blocks until the stream drains, ctx is cancelled, or the stream fails.
func (o PulseOutput) Play(ctx context.Context, pcm PCM) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	sink, err := resolveSink(client, o.Sink)
	if err != nil {
		return err
	}

	src := &sampleReader{ctx: ctx, r: pcm.Data}
	stream, err := client.NewPlayback(
		pulse.Int16Reader(src.read),
		pulse.PlaybackStereo,
		pulse.PlaybackSampleRate(pcm.SampleRate),
		pulse.PlaybackSink(sink),
		pulse.PlaybackLatency(0.05),
		pulse.PlaybackMediaName("learn-thai "+pcm.Name),
	)
	if err != nil {
		return fmt.Errorf("create pulse playback stream: %w", err)
	}
	defer stream.Close()

	stream.Start()
	stream.Drain()
	if err := stream.Error(); err != nil {
		return fmt.Errorf("play stream: %w", err)
	}
	if src.err != nil {
		return fmt.Errorf("%w: decode %q: %w", ErrResourceUnavailable, pcm.Name, src.err)
	}
	return ctx.Err()
}

// sampleReader converts little-endian bytes into samples for pulse.Int16Reader.
type sampleReader struct {
	ctx context.Context
	r   io.Reader
	raw []byte
	err error
}

func (s *sampleReader) read(buf []int16) (int, error) {
	if s.ctx.Err() != nil {
		return 0, pulse.EndOfData
	}
	need := len(buf) * 2
	if cap(s.raw) < need {
		s.raw = make([]byte, need)
	}
	s.raw = s.raw[:need]

	n, err := io.ReadFull(s.r, s.raw)
	samples := n / 2
	for i := 0; i < samples; i++ {
		buf[i] = int16(binary.LittleEndian.Uint16(s.raw[2*i:]))
	}
	if err != nil {
		if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			s.err = err
		}
		return samples, pulse.EndOfData
	}
	return samples, nil
}
