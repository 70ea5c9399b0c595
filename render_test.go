// SPDX-License-Identifier: EPL-2.0

package fluidfont

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/ik5/fluidfont/ffi"
	"github.com/ik5/fluidfont/internal/fonttest"
	"github.com/ik5/fluidfont/pcm"
	"github.com/ik5/fluidfont/synth"
)

func newSynth(t *testing.T) (*synth.Synth, *fonttest.Native, ffi.FontID) {
	t.Helper()

	n := fonttest.NewNative()
	n.AddFile("gm.sf2", func(id ffi.FontID) *ffi.SFont { return fonttest.GeneralMIDI(id, "gm.sf2") })

	s := synth.New(n)
	t.Cleanup(func() { _ = s.Close() })

	id, err := s.LoadFont("gm.sf2", true)
	if err != nil {
		t.Fatalf("LoadFont() error = %v", err)
	}

	return s, n, id
}

func renderToFile(t *testing.T, s *synth.Synth, opts NoteOptions) (string, int, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "note.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	n, err := RenderNote(f, s, opts)

	return path, n, err
}

func TestRenderNote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rate       int
		mono       bool
		wantFrames int
		wantRate   int
		wantCh     int
	}{
		{"native rate stereo", 0, false, 6615, 44100, 2},
		{"resampled mono", 22050, true, 3308, 22050, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, n, id := newSynth(t)
			if err := s.ProgramSelect(0, id, 0, 0); err != nil {
				t.Fatalf("ProgramSelect() error = %v", err)
			}

			opts := DefaultNoteOptions()
			opts.Hold = 100 * time.Millisecond
			opts.Release = 50 * time.Millisecond
			opts.SampleRate = tt.rate
			opts.Mono = tt.mono

			path, frames, err := renderToFile(t, s, opts)
			if err != nil {
				t.Fatalf("RenderNote() error = %v", err)
			}
			if frames != tt.wantFrames {
				t.Errorf("RenderNote() frames = %d, want %d", frames, tt.wantFrames)
			}

			calls := n.Calls()
			on := slices.Index(calls, "NoteOn")
			off := slices.Index(calls, "NoteOff")
			if on < 0 || off < on {
				t.Errorf("calls = %v, want NoteOn before NoteOff", calls)
			}

			in, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer in.Close()

			src, err := pcm.WAVDecoder{}.Decode(in)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if src.SampleRate() != tt.wantRate || src.Channels() != tt.wantCh {
				t.Errorf("wav = %d Hz / %d ch, want %d / %d", src.SampleRate(), src.Channels(), tt.wantRate, tt.wantCh)
			}
		})
	}
}

func TestRenderNote_NativeFailure(t *testing.T) {
	t.Parallel()

	s, _, _ := newSynth(t)

	// Channel 3 has no program selected.
	opts := DefaultNoteOptions()
	opts.Channel = 3

	_, _, err := renderToFile(t, s, opts)
	if !errors.Is(err, synth.ErrFluid) {
		t.Fatalf("RenderNote() error = %v, want a native error", err)
	}

	var nerr *synth.Error
	if !errors.As(err, &nerr) || nerr.Msg != "channel has no preset" {
		t.Errorf("native message = %v, want %q", nerr, "channel has no preset")
	}
}

func TestNoteSource_InvalidOptions(t *testing.T) {
	t.Parallel()

	s, _, _ := newSynth(t)

	for _, opts := range []NoteOptions{
		{Key: 128, Velocity: 100},
		{Key: 60, Velocity: 0},
		{Key: -1, Velocity: 100},
		{Key: 60, Velocity: 100, Hold: -time.Second},
	} {
		if _, err := NoteSource(s, opts); !errors.Is(err, ErrInvalidNote) {
			t.Errorf("NoteSource(%+v) error = %v, want %v", opts, err, ErrInvalidNote)
		}
	}
}
