// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"io"
	"path"
	"strings"
	"sync"
)

// Source is a stream of interleaved float32 samples.
type Source interface {
	// SampleRate in Hz.
	SampleRate() int
	// Channels per frame.
	Channels() int
	// ReadSamples fills dst and returns the number of float32 values written,
	// not frames. n == 0 with io.EOF means the stream is finished.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases the underlying decoder or renderer.
	Close() error
}

// Decoder opens a Source over an encoded stream.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps file extensions (without the dot, lower case) to decoders.
type Registry struct {
	mu       sync.RWMutex
	decoders map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]Decoder)}
}

// DefaultRegistry returns a registry with every decoder of this package.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("wav", WAVDecoder{})
	r.Register("aif", AIFFDecoder{})
	r.Register("aiff", AIFFDecoder{})
	r.Register("mp3", MP3Decoder{})
	r.Register("ogg", VorbisDecoder{})
	r.Register("oga", VorbisDecoder{})

	return r
}

func (r *Registry) Register(ext string, d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.decoders[strings.ToLower(ext)] = d
}

func (r *Registry) Get(ext string) (Decoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.decoders[strings.ToLower(ext)]
	return d, ok
}

// ForFile returns the decoder for the extension of name.
func (r *Registry) ForFile(name string) (Decoder, bool) {
	return r.Get(strings.TrimPrefix(path.Ext(name), "."))
}

// ReadAll drains src and returns its samples.
func ReadAll(src Source, bufSize int) ([]float32, error) {
	ch := max(src.Channels(), 1)
	bufSize = max(bufSize/ch*ch, ch)

	var out []float32
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}
