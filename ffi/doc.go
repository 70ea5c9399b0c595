// SPDX-License-Identifier: EPL-2.0

// Package ffi describes the memory layout of the native SoundFont objects.
//
// The native synthesizer represents every loaded SoundFont and every preset
// inside it as a small struct holding an id or payload plus a table of
// function pointers. Each loader (the built-in SF2 loader, or a custom one)
// fills the table with its own functions, and callers dispatch through it:
//
//	name := sf.GetName(sf) // only when sf.GetName != nil
//
// A nil func field means the loader did not provide that operation. Strings
// cross the boundary as NUL-terminated byte strings (*byte), and a nil
// pointer is the native null pointer.
//
// Values of these types are owned by the native side. Code outside the
// backends must treat them as read-only and must not call Free.
package ffi
