// Package audio resolves pronunciation clips and plays them on a PulseAudio sink.
package audio

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jfreymuth/pulse"
	pulseproto "github.com/jfreymuth/pulse/proto"
)

// Device describes one Pulse output sink.
type Device struct {
	ID          string
	Description string
	State       string
	Available   bool
	Muted       bool
	Default     bool
}

func newClient() (*pulse.Client, error) {
	client, err := pulse.NewClient(
		pulse.ClientApplicationName("learn-thai"),
		pulse.ClientApplicationIconName("accessories-dictionary"),
	)
	if err != nil {
		return nil, fmt.Errorf("connect pulse server: %w", err)
	}
	return client, nil
}

// ListSinks returns Pulse output sinks with default/availability metadata.
func ListSinks(_ context.Context) ([]Device, error) {
	client, err := newClient()
	if err != nil {
		return nil, err
	}
	defer client.Close()
	return listSinks(client)
}

func listSinks(client *pulse.Client) ([]Device, error) {
	defaultSink, err := client.DefaultSink()
	if err != nil {
		return nil, fmt.Errorf("read default sink: %w", err)
	}
	defaultID := defaultSink.ID()

	var sinkInfos pulseproto.GetSinkInfoListReply
	if err := client.RawRequest(&pulseproto.GetSinkInfoList{}, &sinkInfos); err != nil {
		return nil, fmt.Errorf("list sinks: %w", err)
	}

	devices := make([]Device, 0, len(sinkInfos))
	for _, sink := range sinkInfos {
		if sink == nil {
			continue
		}
		devices = append(devices, Device{
			ID:          sink.SinkName,
			Description: sink.Device,
			State:       sinkStateString(sink.State),
			Available:   sinkAvailable(sink),
			Muted:       sink.Mute,
			Default:     sink.SinkName == defaultID,
		})
	}
	return devices, nil
}

// Probe resolves the configured output against live sinks. It fails when no usable sink exists.
func Probe(ctx context.Context, output string) (Device, error) {
	devices, err := ListSinks(ctx)
	if err != nil {
		return Device{}, err
	}
	return selectSinkFromList(devices, output)
}

// selectSinkFromList picks the default sink or the first sink matching output.
func selectSinkFromList(devices []Device, output string) (Device, error) {
	if len(devices) == 0 {
		return Device{}, errors.New("no audio output devices found")
	}

	term := strings.TrimSpace(strings.ToLower(output))
	var chosen *Device
	for i := range devices {
		dev := &devices[i]
		if term == "" || term == "default" {
			if dev.Default {
				chosen = dev
				break
			}
			continue
		}
		if deviceMatches(*dev, term) {
			chosen = dev
			break
		}
	}

	if chosen == nil {
		if term == "" || term == "default" {
			return Device{}, errors.New("default audio sink is unavailable")
		}
		return Device{}, fmt.Errorf("audio.output %q did not match any device", output)
	}
	if !chosen.Available {
		return Device{}, fmt.Errorf("audio output %q is not available", chosen.ID)
	}
	return *chosen, nil
}

// resolveSink maps the configured output onto a live Pulse sink handle.
func resolveSink(client *pulse.Client, output string) (*pulse.Sink, error) {
	term := strings.TrimSpace(strings.ToLower(output))
	if term == "" || term == "default" {
		sink, err := client.DefaultSink()
		if err != nil {
			return nil, fmt.Errorf("read default sink: %w", err)
		}
		return sink, nil
	}

	devices, err := listSinks(client)
	if err != nil {
		return nil, err
	}
	selected, err := selectSinkFromList(devices, output)
	if err != nil {
		return nil, err
	}
	sink, err := client.SinkByID(selected.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve sink %q: %w", selected.ID, err)
	}
	return sink, nil
}

// deviceMatches reports whether a search term matches a device id or description.
func deviceMatches(device Device, term string) bool {
	if term == "" {
		return false
	}
	id := strings.ToLower(device.ID)
	desc := strings.ToLower(device.Description)
	return strings.Contains(id, term) || strings.Contains(desc, term)
}

// sinkStateString maps Pulse sink state constants to human-readable values.
func sinkStateString(state uint32) string {
	switch state {
	case 0:
		return "running"
	case 1:
		return "idle"
	case 2:
		return "suspended"
	default:
		return fmt.Sprintf("unknown(%d)", state)
	}
}

// sinkAvailable maps Pulse sink port availability to a simple boolean.
func sinkAvailable(sink *pulseproto.GetSinkInfoReply) bool {
	if sink == nil {
		return false
	}
	if len(sink.Ports) == 0 {
		return true
	}
	for _, port := range sink.Ports {
		if port.Name != sink.ActivePortName {
			continue
		}
		// PulseAudio values: unknown=0, no=1, yes=2.
		return port.Available == 0 || port.Available == 2
	}
	return true
}
