// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/ik5/fluidfont"
	"github.com/ik5/fluidfont/ffi"
	"github.com/ik5/fluidfont/font"
	"github.com/ik5/fluidfont/samplefont"
	"github.com/ik5/fluidfont/synth"
)

// openSynth creates a synthesizer and loads the font at path.
func openSynth(sf *synthFlags, env *environment, path string) (*synth.Synth, ffi.FontID, error) {
	settings, err := sf.settings(env.lookup)
	if err != nil {
		return nil, 0, err
	}

	logger := sf.logger(env.stderr)

	native, err := newNative(settings, logger)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", backendName, err)
	}

	s := synth.New(native, synth.WithLogger(logger))

	id, err := s.LoadFont(path, true)
	if err != nil {
		_ = s.Close()
		return nil, 0, err
	}

	return s, id, nil
}

func listCmd(args []string, env *environment) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(env.stderr)

	var sf synthFlags
	sf.register(fs)

	path, err := onePath(fs, args)
	if err != nil {
		return err
	}

	s, id, err := openSynth(&sf, env, path)
	if err != nil {
		return err
	}
	defer s.Close()

	f, ok := s.FontByID(id)
	if !ok {
		return fmt.Errorf("font %d vanished after loading", id)
	}

	printFont(env, f)

	return nil
}

func printFont(env *environment, f font.IsFont) {
	name, ok := f.Name()
	if !ok {
		name = "(unnamed)"
	}

	fmt.Fprintf(env.stdout, "font %d: %s\n", f.ID(), name)
	for _, p := range fluidfont.Inventory(f) {
		fmt.Fprintf(env.stdout, "  %s\n", p)
	}
}

func samplesCmd(args []string, env *environment) error {
	fs := flag.NewFlagSet("samples", flag.ContinueOnError)
	fs.SetOutput(env.stderr)

	bank := fs.Uint("bank", 0, "bank the samples are placed in")
	verbose := fs.Bool("v", false, "log skipped files to stderr")

	dir, err := onePath(fs, args)
	if err != nil {
		return err
	}

	if *bank > samplefont.MaxBank {
		return fmt.Errorf("samples: %w: %d", samplefont.ErrBankOutOfRange, *bank)
	}

	sf := synthFlags{verbose: *verbose}
	ld := samplefont.NewLoader(os.DirFS(dir), samplefont.WithLogger(sf.logger(env.stderr)))

	f, err := ld.Load(".", ffi.Bank(*bank))
	if err != nil {
		return err
	}

	fmt.Fprintf(env.stdout, "%s: %d samples in bank %d\n", filepath.Base(dir), f.Len(), f.Bank())
	for _, num := range f.Programs() {
		s, _ := f.Sample(f.Bank(), num)
		fmt.Fprintf(env.stdout, "  %03d %-24s %6d frames %6d Hz %d ch\n", num, s.Name, s.Frames, s.Rate, s.Channels)
	}

	return nil
}

// noteFlags are the flags of render and play.
type noteFlags struct {
	synthFlags

	bank    uint
	program uint
	channel int
	key     int
	vel     int
	hold    time.Duration
	release time.Duration
}

func (f *noteFlags) register(fs *flag.FlagSet) {
	f.synthFlags.register(fs)

	def := fluidfont.DefaultNoteOptions()

	fs.UintVar(&f.bank, "bank", 0, "preset bank")
	fs.UintVar(&f.program, "program", 0, "preset number")
	fs.IntVar(&f.channel, "channel", 0, "MIDI channel, 0 based")
	fs.IntVar(&f.key, "key", int(def.Key), "MIDI key")
	fs.IntVar(&f.vel, "vel", int(def.Velocity), "velocity")
	fs.DurationVar(&f.hold, "hold", def.Hold, "how long the key is held")
	fs.DurationVar(&f.release, "release", def.Release, "rendering time after the key is released")
}

func (f *noteFlags) options() fluidfont.NoteOptions {
	return fluidfont.NoteOptions{
		Channel:  int32(f.channel),
		Key:      int32(f.key),
		Velocity: int32(f.vel),
		Hold:     f.hold,
		Release:  f.release,
	}
}

// prepare loads the font and selects the program on the note's channel.
func (f *noteFlags) prepare(env *environment, path string) (*synth.Synth, error) {
	if f.bank > math.MaxUint32 || f.program > math.MaxUint32 {
		return nil, fmt.Errorf("bank %d or program %d out of range\n%w", f.bank, f.program, errUsage)
	}

	s, id, err := openSynth(&f.synthFlags, env, path)
	if err != nil {
		return nil, err
	}

	if err := s.ProgramSelect(int32(f.channel), id, ffi.Bank(f.bank), ffi.PresetID(f.program)); err != nil {
		_ = s.Close()
		return nil, err
	}

	return s, nil
}

func renderCmd(args []string, env *environment) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(env.stderr)

	var nf noteFlags
	nf.register(fs)

	out := fs.String("o", "note.wav", "output WAV file")
	outRate := fs.Int("out-rate", 0, "output sample rate (default: synthesizer rate)")
	mono := fs.Bool("mono", false, "mix the output down to mono")

	path, err := onePath(fs, args)
	if err != nil {
		return err
	}

	s, err := nf.prepare(env, path)
	if err != nil {
		return err
	}
	defer s.Close()

	w, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer w.Close()

	opts := nf.options()
	opts.SampleRate = *outRate
	opts.Mono = *mono

	frames, err := fluidfont.RenderNote(w, s, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.stdout, "wrote %d frames to %s\n", frames, *out)

	return w.Close()
}

func playCmd(args []string, env *environment) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	fs.SetOutput(env.stderr)

	var nf noteFlags
	nf.register(fs)

	path, err := onePath(fs, args)
	if err != nil {
		return err
	}

	s, err := nf.prepare(env, path)
	if err != nil {
		return err
	}
	defer s.Close()

	src, err := fluidfont.NoteSource(s, nf.options())
	if err != nil {
		return err
	}

	return play(src)
}
