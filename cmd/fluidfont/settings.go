// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"io"
	"log"

	"github.com/ik5/fluidfont/synth"
)

// synthFlags registers the synthesizer flags shared by every command.
type synthFlags struct {
	rate      int
	polyphony int
	gain      float64
	noEffects bool
	verbose   bool
}

func (f *synthFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&f.rate, "rate", 0, "synthesizer sample rate in Hz (default from "+synth.EnvSampleRate+" or 44100)")
	fs.IntVar(&f.polyphony, "polyphony", 0, "maximum voices")
	fs.Float64Var(&f.gain, "gain", -1, "master gain")
	fs.BoolVar(&f.noEffects, "no-effects", false, "disable reverb and chorus")
	fs.BoolVar(&f.verbose, "v", false, "log synthesizer activity to stderr")
}

// settings applies the environment, then the flags that were set.
func (f *synthFlags) settings(lookup func(string) (string, bool)) (synth.Settings, error) {
	s, err := synth.DefaultSettings().WithEnv(lookup)
	if err != nil {
		return s, err
	}

	if f.rate > 0 {
		s.SampleRate = f.rate
	}
	if f.polyphony > 0 {
		s.Polyphony = f.polyphony
	}
	if f.gain >= 0 {
		s.Gain = float32(f.gain)
	}
	if f.noEffects {
		s.Effects = false
	}

	return s, s.Validate()
}

func (f *synthFlags) logger(stderr io.Writer) *log.Logger {
	if !f.verbose {
		return log.New(io.Discard, "", 0)
	}

	return log.New(stderr, "fluidfont: ", log.Ltime)
}
