// SPDX-License-Identifier: EPL-2.0

// Package fluidfont is a safe Go interface to the SoundFont object model of a
// native synthesizer: fonts, presets and the synthesizer's error reporting.
//
// # Layers
//
// The module is split by concern:
//   - ffi: the layout of the foreign font and preset structs, whose
//     operations are optional function pointers.
//   - font: FontRef and PresetRef, non-null references bounded by a Scope,
//     and the generic accessors every font-like handle gets through
//     font.AsFont and font.AsPreset.
//   - synth: the Synth control surface, which turns native return codes into
//     *synth.Error values carrying the library's own message.
//   - backend/melty: a pure Go native synthesizer built on go-meltysynth.
//   - backend/fluidlite: a cgo binding to the C fluidlite library, built with
//     the fluidlite tag.
//   - samplefont: custom fonts made from a directory of WAV, AIFF, MP3 and
//     Ogg Vorbis samples.
//   - pcm: sample sources, resampling, mono mixing and WAV output.
//
// # Quick Start
//
//	engine, err := melty.New(synth.DefaultSettings())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s := synth.New(engine)
//	defer s.Close()
//
//	id, err := s.LoadFont("FluidR3_GM.sf2", true)
//	if err != nil {
//	    log.Fatal(err) // e.g. Failed to load SoundFont "FluidR3_GM.sf2"
//	}
//
//	f, _ := s.FontByID(id)
//	for _, p := range fluidfont.Inventory(f) {
//	    fmt.Println(p)
//	}
//
// # Absence and Failure
//
// Accessors report absence with a boolean: a missing name, an unset function
// pointer, a negative bank or an unknown preset all give (zero, false).
// Operations that the native library can reject return an error whose text
// is exactly the library's message. Only contract breaches panic: a nil
// handle passed to a constructor, or an error slot that is not valid UTF-8.
//
// # Rendering
//
// RenderNote plays a single note through a Synth and writes the result as a
// 16-bit WAV file, optionally resampled and mixed down to mono.
package fluidfont
