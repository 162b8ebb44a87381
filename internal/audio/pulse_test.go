package audio

import (
	"context"
	"testing"

	pulseproto "github.com/jfreymuth/pulse/proto"
	"github.com/stretchr/testify/require"
)

func TestSelectSinkFromListDefault(t *testing.T) {
	devices := []Device{
		{ID: "alsa_output.pci.analog-stereo", Description: "Built-in Audio", Available: true, Default: true},
		{ID: "bluez_output.headphones", Description: "Sony WH-1000XM6", Available: true},
	}

	selected, err := selectSinkFromList(devices, "default")
	require.NoError(t, err)
	require.Equal(t, "alsa_output.pci.analog-stereo", selected.ID)

	selected, err = selectSinkFromList(devices, "")
	require.NoError(t, err)
	require.Equal(t, "alsa_output.pci.analog-stereo", selected.ID)
}

func TestSelectSinkFromListMatchesDescription(t *testing.T) {
	devices := []Device{
		{ID: "alsa_output.pci.analog-stereo", Description: "Built-in Audio", Available: true, Default: true},
		{ID: "bluez_output.headphones", Description: "Sony WH-1000XM6", Available: true},
	}

	selected, err := selectSinkFromList(devices, "Sony")
	require.NoError(t, err)
	require.Equal(t, "bluez_output.headphones", selected.ID)
}

func TestSelectSinkFromListErrors(t *testing.T) {
	_, err := selectSinkFromList(nil, "default")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no audio output devices")

	noDefault := []Device{{ID: "a", Available: true}}
	_, err = selectSinkFromList(noDefault, "default")
	require.Error(t, err)
	require.Contains(t, err.Error(), "default audio sink")

	_, err = selectSinkFromList(noDefault, "missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "did not match")

	unplugged := []Device{{ID: "hdmi", Description: "HDMI", Default: true}}
	_, err = selectSinkFromList(unplugged, "default")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not available")
}

func TestDeviceMatchesByIDAndDescription(t *testing.T) {
	dev := Device{ID: "bluez_output.headphones", Description: "Sony WH-1000XM6"}
	require.True(t, deviceMatches(dev, "bluez"))
	require.True(t, deviceMatches(dev, "sony"))
	require.False(t, deviceMatches(dev, "missing"))
	require.False(t, deviceMatches(dev, ""))
}

func TestListSinksFailsWhenPulseUnavailable(t *testing.T) {
	t.Setenv("PULSE_SERVER", "unix:/tmp/definitely-missing-pulse-server")
	_, err := ListSinks(context.Background())
	require.Error(t, err)
}

func TestProbeFailsWhenPulseUnavailable(t *testing.T) {
	t.Setenv("PULSE_SERVER", "unix:/tmp/definitely-missing-pulse-server")
	_, err := Probe(context.Background(), "default")
	require.Error(t, err)
}

func TestSinkStateString(t *testing.T) {
	require.Equal(t, "running", sinkStateString(0))
	require.Equal(t, "idle", sinkStateString(1))
	require.Equal(t, "suspended", sinkStateString(2))
	require.Equal(t, "unknown(99)", sinkStateString(99))
}

func TestSinkAvailable(t *testing.T) {
	require.False(t, sinkAvailable(nil))
	require.True(t, sinkAvailable(&pulseproto.GetSinkInfoReply{}))
}
