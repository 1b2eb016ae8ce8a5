package sound

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"

	"github.com/zjrosen/a11ypanel/internal/config"
)

const (
	sampleRate    = 44100
	bitsPerSample = 16
	numChannels   = 1

	// endGain is where the exponential decay lands at the end of the tone.
	endGain = 0.01
)

// Tone describes a single decaying sine beep.
type Tone struct {
	FrequencyHz float64
	Duration    time.Duration
	StartGain   float64
	EndGain     float64
}

// DefaultTone is the feedback cue: 800 Hz for 100 ms, gain 0.1 decaying
// exponentially to 0.01.
func DefaultTone() Tone {
	return Tone{
		FrequencyHz: 800,
		Duration:    100 * time.Millisecond,
		StartGain:   0.1,
		EndGain:     endGain,
	}
}

// ToneFromConfig builds a Tone from config, falling back to DefaultTone
// for unset or nonsensical values.
func ToneFromConfig(cfg config.SoundConfig) Tone {
	t := DefaultTone()
	if cfg.FrequencyHz > 0 {
		t.FrequencyHz = cfg.FrequencyHz
	}
	if cfg.DurationMs > 0 {
		t.Duration = time.Duration(cfg.DurationMs) * time.Millisecond
	}
	if cfg.Gain > 0 && cfg.Gain <= 1 {
		t.StartGain = cfg.Gain
	}
	if t.EndGain >= t.StartGain {
		t.EndGain = t.StartGain / 10
	}
	return t
}

// samples renders the tone as signed 16-bit PCM.
func (t Tone) samples() []int16 {
	n := int(t.Duration.Seconds() * sampleRate)
	if n <= 0 {
		return nil
	}
	out := make([]int16, n)

	ratio := t.EndGain / t.StartGain
	for i := range out {
		progress := float64(i) / float64(n)
		gain := t.StartGain * math.Pow(ratio, progress)
		v := gain * math.Sin(2*math.Pi*t.FrequencyHz*float64(i)/sampleRate)
		out[i] = int16(v * math.MaxInt16)
	}
	return out
}

// WAV encodes the tone as a RIFF/WAVE PCM file.
func (t Tone) WAV() []byte {
	pcm := t.samples()
	dataSize := uint32(len(pcm) * bitsPerSample / 8)
	byteRate := uint32(sampleRate * numChannels * bitsPerSample / 8)
	blockAlign := uint16(numChannels * bitsPerSample / 8)

	var buf bytes.Buffer
	buf.Grow(44 + int(dataSize))

	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(numChannels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, byteRate)
	_ = binary.Write(&buf, binary.LittleEndian, blockAlign)
	_ = binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, dataSize)
	_ = binary.Write(&buf, binary.LittleEndian, pcm)

	return buf.Bytes()
}
