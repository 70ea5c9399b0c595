// SPDX-License-Identifier: EPL-2.0

package fluidfont

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ik5/fluidfont/pcm"
	"github.com/ik5/fluidfont/synth"
)

var ErrInvalidNote = errors.New("note options out of range")

// NoteOptions describes the note rendered by RenderNote.
type NoteOptions struct {
	Channel  int32
	Key      int32
	Velocity int32

	// Hold is how long the key stays down, Release how long rendering goes
	// on after the note off.
	Hold    time.Duration
	Release time.Duration

	// SampleRate of the WAV file. Zero keeps the synthesizer rate.
	SampleRate int
	Mono       bool
}

// DefaultNoteOptions plays middle C for one second plus half a second of
// release on channel 1.
func DefaultNoteOptions() NoteOptions {
	return NoteOptions{
		Key:      60,
		Velocity: 100,
		Hold:     time.Second,
		Release:  500 * time.Millisecond,
	}
}

func frames(d time.Duration, rate int) int {
	return int(d * time.Duration(rate) / time.Second)
}

// NoteSource returns a stereo source that plays the note on s. The caller
// selects the channel's program beforehand.
func NoteSource(s *synth.Synth, opts NoteOptions) (*pcm.RenderSource, error) {
	if opts.Key < 0 || opts.Key > 127 || opts.Velocity < 1 || opts.Velocity > 127 {
		return nil, fmt.Errorf("%w: key %d velocity %d", ErrInvalidNote, opts.Key, opts.Velocity)
	}
	if opts.Hold < 0 || opts.Release < 0 {
		return nil, fmt.Errorf("%w: negative duration", ErrInvalidNote)
	}

	rate := s.SampleRate()
	hold := frames(opts.Hold, rate)
	total := hold + frames(opts.Release, rate)

	return pcm.NewRenderSource(s, total,
		pcm.Event{Frame: 0, Fire: func() error { return s.NoteOn(opts.Channel, opts.Key, opts.Velocity) }},
		pcm.Event{Frame: hold, Fire: func() error { return s.NoteOff(opts.Channel, opts.Key) }},
	), nil
}

// RenderNote renders the note to w as a 16-bit WAV file and returns the
// number of frames written.
func RenderNote(w io.WriteSeeker, s *synth.Synth, opts NoteOptions) (int, error) {
	note, err := NoteSource(s, opts)
	if err != nil {
		return 0, err
	}

	var src pcm.Source = note
	if opts.SampleRate > 0 && opts.SampleRate != s.SampleRate() {
		src = pcm.NewResampler(src, opts.SampleRate)
	}
	if opts.Mono {
		src = pcm.NewMonoMixer(src)
	}

	n, err := pcm.WriteWAV(w, src, 4096)
	if err != nil {
		return n, fmt.Errorf("rendering note %d: %w", opts.Key, err)
	}

	return n, nil
}
