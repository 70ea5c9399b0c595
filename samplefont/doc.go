// SPDX-License-Identifier: EPL-2.0

// Package samplefont builds custom fonts out of a directory of loose audio
// samples. Each file becomes one preset; a file named "NNN-name.ext" is
// placed at program NNN, other files take the next free program number.
//
// The resulting *Font carries a foreign font table, so it can be added to a
// synthesizer with synth.Synth.AddFont and inspected through font.AsFont
// like any font the native library loaded itself.
package samplefont
