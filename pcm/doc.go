// SPDX-License-Identifier: EPL-2.0

// Package pcm moves float32 PCM between files, the synthesizer and WAV output.
//
// # Sources
//
// Everything that produces audio implements Source: decoders for sample files,
// RenderSource (which pulls from a synthesizer), and the Resampler and
// MonoMixer stages that wrap another Source:
//
//	src := pcm.NewRenderSource(s, frames, events...)
//	out := pcm.NewMonoMixer(pcm.NewResampler(src, 22050))
//	n, err := pcm.WriteWAV(file, out, 4096)
//
// Samples are interleaved float32 in [-1, 1]. ReadSamples returns io.EOF once
// the stream is drained.
//
// # Decoders
//
// Registry maps file extensions to decoders. DefaultRegistry knows WAV and AIFF
// (PCM, 16/24/32-bit, through go-audio), MP3 (go-mp3) and Ogg Vorbis
// (oggvorbis).
package pcm
