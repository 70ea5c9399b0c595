// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"cmp"
	"fmt"
	"io"
	"slices"
)

// Renderer produces stereo audio on demand. *synth.Synth implements it.
type Renderer interface {
	SampleRate() int
	Write(left, right []float32) error
}

// Event runs Fire once rendering reaches Frame.
type Event struct {
	Frame int
	Fire  func() error
}

// RenderSource reads a fixed number of stereo frames from a Renderer, firing
// events (note on, note off) at their frame.
type RenderSource struct {
	r      Renderer
	total  int
	done   int
	events []Event

	left, right []float32
}

func NewRenderSource(r Renderer, frames int, events ...Event) *RenderSource {
	events = slices.Clone(events)
	slices.SortStableFunc(events, func(a, b Event) int { return cmp.Compare(a.Frame, b.Frame) })

	return &RenderSource{r: r, total: frames, events: events}
}

func (s *RenderSource) SampleRate() int { return s.r.SampleRate() }
func (s *RenderSource) Channels() int   { return 2 }
func (s *RenderSource) Close() error    { return nil }

func (s *RenderSource) ReadSamples(dst []float32) (int, error) {
	for len(s.events) > 0 && s.events[0].Frame <= s.done {
		ev := s.events[0]
		s.events = s.events[1:]

		if err := ev.Fire(); err != nil {
			return 0, fmt.Errorf("event at frame %d: %w", ev.Frame, err)
		}
	}

	n := min(len(dst)/2, s.total-s.done)
	if len(s.events) > 0 {
		n = min(n, s.events[0].Frame-s.done)
	}

	if n <= 0 {
		if s.done >= s.total {
			return 0, io.EOF
		}
		return 0, nil
	}

	if cap(s.left) < n {
		s.left = make([]float32, n)
		s.right = make([]float32, n)
	}
	left, right := s.left[:n], s.right[:n]

	if err := s.r.Write(left, right); err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	for i := range n {
		dst[2*i] = left[i]
		dst[2*i+1] = right[i]
	}
	s.done += n

	return 2 * n, nil
}
