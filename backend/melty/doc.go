// SPDX-License-Identifier: EPL-2.0

// Package melty is a pure Go native synthesizer for synth.Synth.
//
// SoundFont parsing and voice rendering are done by go-meltysynth. The
// engine adds what the synth package expects from a native library: a font
// stack with numeric ids, foreign font and preset tables, per-channel
// program state, C-style return codes and a last-error slot.
//
// Fonts registered with AddSFont are listed and selectable, but only fonts
// loaded from SF2 files can be rendered.
package melty
