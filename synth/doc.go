// SPDX-License-Identifier: EPL-2.0

// Package synth controls a native SoundFont synthesizer and translates its
// C-style results into Go values.
//
// # Return codes
//
// Native calls report failure through their return code and leave a message
// in a single per-instance error slot. Synth reads that slot immediately after
// the failing call, before any other native call on the same instance, and
// returns it as an *Error:
//
//	id, err := s.LoadFont("FluidR3_GM.sf2", true)
//	if err != nil {
//	    var ferr *synth.Error
//	    errors.As(err, &ferr) // ferr.Msg is the native message, verbatim
//	}
//
// Calls whose code carries a value (font ids, offsets) fail only on a
// negative code. Calls that merely succeed or fail treat any non-zero code as
// failure.
//
// # Fonts
//
// Font and FontByID return font.FontRef values bound to the font's scope.
// UnloadFont, ReloadFont, RemoveFont and Close close that scope, after which
// the refs report Valid() == false and must not be used.
//
// # Backends
//
// Synth drives any Native implementation. See backend/melty for a pure Go one
// and backend/fluidlite for the cgo binding.
package synth
