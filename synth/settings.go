// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"strconv"
)

// Settings configures a native synthesizer instance.
type Settings struct {
	SampleRate   int     // output rate in Hz
	Polyphony    int     // maximum simultaneous voices
	MIDIChannels int     // multiple of 16
	Gain         float32 // master gain, 0.2 is the library default
	Effects      bool    // reverb and chorus
}

// DefaultSettings returns the native library defaults.
func DefaultSettings() Settings {
	return Settings{
		SampleRate:   44100,
		Polyphony:    256,
		MIDIChannels: 16,
		Gain:         0.2,
		Effects:      true,
	}
}

// Validate checks every field against the range the native library accepts.
func (s Settings) Validate() error {
	if s.SampleRate < 8000 || s.SampleRate > 96000 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, s.SampleRate)
	}

	if s.Polyphony < 1 || s.Polyphony > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPolyphony, s.Polyphony)
	}

	if s.MIDIChannels < 16 || s.MIDIChannels%16 != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMIDIChannels, s.MIDIChannels)
	}

	if s.Gain < 0 || s.Gain > 10 {
		return fmt.Errorf("%w: %g", ErrInvalidGain, s.Gain)
	}

	return nil
}

// Environment variables read by FromEnv.
const (
	EnvSampleRate   = "FLUIDFONT_SAMPLE_RATE"
	EnvPolyphony    = "FLUIDFONT_POLYPHONY"
	EnvMIDIChannels = "FLUIDFONT_MIDI_CHANNELS"
	EnvGain         = "FLUIDFONT_GAIN"
	EnvEffects      = "FLUIDFONT_EFFECTS"
)

// FromEnv overrides fields of s with the FLUIDFONT_* variables that lookup
// finds (os.LookupEnv in programs) and validates the result.
func (s Settings) FromEnv(lookup func(string) (string, bool)) (Settings, error) {
	s, err := s.WithEnv(lookup)
	if err != nil {
		return s, err
	}

	return s, s.Validate()
}

// WithEnv is FromEnv without validation, for callers that apply further
// overrides first.
func (s Settings) WithEnv(lookup func(string) (string, bool)) (Settings, error) {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvSampleRate, &s.SampleRate},
		{EnvPolyphony, &s.Polyphony},
		{EnvMIDIChannels, &s.MIDIChannels},
	}

	for _, v := range ints {
		raw, ok := lookup(v.key)
		if !ok {
			continue
		}

		n, err := strconv.Atoi(raw)
		if err != nil {
			return s, fmt.Errorf("%s: %w", v.key, err)
		}
		*v.dst = n
	}

	if raw, ok := lookup(EnvGain); ok {
		g, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return s, fmt.Errorf("%s: %w", EnvGain, err)
		}
		s.Gain = float32(g)
	}

	if raw, ok := lookup(EnvEffects); ok {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return s, fmt.Errorf("%s: %w", EnvEffects, err)
		}
		s.Effects = b
	}

	return s, nil
}
