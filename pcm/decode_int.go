// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// intReader is the part of the go-audio wav and aiff decoders used here.
type intReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// intSource adapts a go-audio integer decoder to Source.
type intSource struct {
	dec      intReader
	rate     int
	channels int
	scale    float32
	buf      *goaudio.IntBuffer
}

func newIntSource(dec intReader, bitDepth int) (*intSource, error) {
	format := dec.Format()
	if format == nil || format.NumChannels == 0 {
		return nil, fmt.Errorf("%w: missing format", ErrUnsupportedEncoding)
	}

	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d-bit", ErrUnsupportedBitDepth, bitDepth)
	}

	return &intSource{
		dec:      dec,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		scale:    1 / float32(int64(1)<<(bitDepth-1)),
	}, nil
}

func (s *intSource) SampleRate() int { return s.rate }
func (s *intSource) Channels() int   { return s.channels }
func (s *intSource) Close() error    { return nil }

func (s *intSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v) * s.scale
	}

	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}

	return n, nil
}

// readSeeker returns r as an io.ReadSeeker, buffering it in memory when it
// cannot seek. go-audio needs to seek between chunks.
func readSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return bytes.NewReader(data), nil
}

// WAVDecoder decodes integer PCM WAV files.
type WAVDecoder struct{}

func (WAVDecoder) Decode(r io.Reader) (Source, error) {
	rs, err := readSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWAV
	}

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("reading wav header: %w", err)
	}

	if dec.WavAudioFormat != 1 {
		return nil, fmt.Errorf("%w: wav format %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	return newIntSource(dec, int(dec.BitDepth))
}

// AIFFDecoder decodes integer PCM AIFF files.
type AIFFDecoder struct{}

func (AIFFDecoder) Decode(r io.Reader) (Source, error) {
	rs, err := readSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAIFF
	}

	dec.ReadInfo()

	return newIntSource(dec, int(dec.BitDepth))
}
