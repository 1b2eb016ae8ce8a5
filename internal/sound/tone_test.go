package sound

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/a11ypanel/internal/config"
)

func TestDefaultTone(t *testing.T) {
	tone := DefaultTone()
	require.InDelta(t, 800.0, tone.FrequencyHz, 0.001)
	require.Equal(t, 100*time.Millisecond, tone.Duration)
	require.InDelta(t, 0.1, tone.StartGain, 1e-9)
	require.InDelta(t, 0.01, tone.EndGain, 1e-9)
}

func TestToneFromConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.SoundConfig
		want Tone
	}{
		{"zero config uses defaults", config.SoundConfig{}, DefaultTone()},
		{"defaults from config", config.Defaults().Sound, DefaultTone()},
		{
			"custom values",
			config.SoundConfig{FrequencyHz: 440, DurationMs: 250, Gain: 0.5},
			Tone{FrequencyHz: 440, Duration: 250 * time.Millisecond, StartGain: 0.5, EndGain: 0.01},
		},
		{
			"gain above 1 ignored",
			config.SoundConfig{Gain: 3},
			DefaultTone(),
		},
		{
			"tiny gain keeps decay",
			config.SoundConfig{Gain: 0.005},
			Tone{FrequencyHz: 800, Duration: 100 * time.Millisecond, StartGain: 0.005, EndGain: 0.0005},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToneFromConfig(tt.cfg)
			require.InDelta(t, tt.want.FrequencyHz, got.FrequencyHz, 1e-9)
			require.Equal(t, tt.want.Duration, got.Duration)
			require.InDelta(t, tt.want.StartGain, got.StartGain, 1e-9)
			require.InDelta(t, tt.want.EndGain, got.EndGain, 1e-9)
		})
	}
}

// TestTone_ValidWAV verifies the synthesized clip has a well-formed header.
func TestTone_ValidWAV(t *testing.T) {
	data := DefaultTone().WAV()

	require.GreaterOrEqual(t, len(data), 44, "file too small for valid WAV")
	require.Equal(t, "RIFF", string(data[0:4]), "missing RIFF header")
	require.Equal(t, "WAVE", string(data[8:12]), "missing WAVE marker")
	require.Equal(t, "fmt ", string(data[12:16]))
	require.Equal(t, "data", string(data[36:40]))

	require.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[20:22]), "PCM format")
	require.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[22:24]), "mono")
	require.Equal(t, uint32(sampleRate), binary.LittleEndian.Uint32(data[24:28]))

	dataSize := binary.LittleEndian.Uint32(data[40:44])
	require.Equal(t, uint32(len(data)-44), dataSize)
	require.Equal(t, uint32(len(data)-8), binary.LittleEndian.Uint32(data[4:8]))

	// 100ms at 44.1kHz, 2 bytes per sample
	require.Equal(t, uint32(4410*2), dataSize)
}

// TestTone_Decays verifies the envelope falls off over the tone.
func TestTone_Decays(t *testing.T) {
	pcm := DefaultTone().samples()
	require.Len(t, pcm, 4410)

	peak := func(from, to int) float64 {
		var m float64
		for _, s := range pcm[from:to] {
			m = math.Max(m, math.Abs(float64(s)))
		}
		return m
	}

	head := peak(0, 441)
	tail := peak(len(pcm)-441, len(pcm))
	require.Greater(t, head, 0.0)
	require.Less(t, tail, head/4, "tone should decay toward the end gain")
	require.LessOrEqual(t, head, 0.1*math.MaxInt16+1)
}

func TestTone_ZeroDuration(t *testing.T) {
	tone := DefaultTone()
	tone.Duration = 0

	data := tone.WAV()
	require.Len(t, data, 44)
	require.Equal(t, uint32(0), binary.LittleEndian.Uint32(data[40:44]))
}
