// SPDX-License-Identifier: EPL-2.0

// Package font gives safe, read-only access to native SoundFont and preset
// objects.
//
// # Handles and capabilities
//
// Any type that can hand out a non-nil pointer to a native object satisfies
// HasHandle for that object kind. The accessor sets are derived from it once,
// generically:
//
//	f := font.AsFont(x)   // x implements HasHandle[ffi.SFont]
//	name, ok := f.Name()
//
//	p := font.AsPreset(y) // y implements HasHandle[ffi.Preset]
//	bank, ok := p.BankNum()
//
// FontRef and PresetRef are the wrappers handed out by the synthesizer. Their
// methods are the same derived accessors, so there is only one way to read a
// native font or preset regardless of which wrapper holds the handle.
//
// # Absence
//
// Native objects may leave function pointers unset, return null pointers,
// names that are not UTF-8, or negative bank and preset numbers. All of these
// are reported as a false second result, never as an error.
//
// # Lifetimes
//
// A ref does not own the native object and never frees it. Its validity is
// tied to a Scope: the synthesizer closes a font's scope when the font is
// unloaded, and every FontRef and PresetRef derived from that font becomes
// stale. Valid reports this. Building with the fontdebug tag makes every
// accessor panic with ErrStaleRef when called through a stale ref.
package font
