// SPDX-License-Identifier: EPL-2.0

package fonttest

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// Source generates frames from a waveform function. It satisfies
// pcm.Source.
type Source struct {
	rate      int
	channels  int
	frames    int
	generated int
	wave      func(frame, channel int) float32
	closed    bool
}

func NewSource(rate, channels, frames int, wave func(frame, channel int) float32) *Source {
	return &Source{rate: rate, channels: channels, frames: frames, wave: wave}
}

func NewSineSource(rate, channels, frames int, freq float64) *Source {
	return NewSource(rate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(rate)
		return float32(math.Sin(2 * math.Pi * freq * t))
	})
}

func NewSilentSource(rate, channels, frames int) *Source {
	return NewConstantSource(rate, channels, frames, 0)
}

func NewConstantSource(rate, channels, frames int, v float32) *Source {
	return NewSource(rate, channels, frames, func(int, int) float32 { return v })
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Closed() bool    { return s.closed }

func (s *Source) Close() error {
	s.closed = true
	return nil
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.generated >= s.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/s.channels, s.frames-s.generated)
	for f := range n {
		for c := range s.channels {
			dst[f*s.channels+c] = s.wave(s.generated+f, c)
		}
	}
	s.generated += n

	return n * s.channels, nil
}

// WAV encodes samples as a canonical 44-byte-header 16-bit PCM WAV file.
func WAV(rate, channels int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	dataSize := uint32(len(samples) * 2)

	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(buf, binary.LittleEndian, uint32(rate))
	_ = binary.Write(buf, binary.LittleEndian, uint32(rate*channels*2))
	_ = binary.Write(buf, binary.LittleEndian, uint16(channels*2))
	_ = binary.Write(buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, dataSize)
	_ = binary.Write(buf, binary.LittleEndian, samples)

	return buf.Bytes()
}
