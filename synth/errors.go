// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	// ErrFluid matches every *Error through errors.Is.
	ErrFluid = errors.New("fluid error")

	// ErrClosed is returned by every call on a closed Synth.
	ErrClosed = errors.New("synthesizer is closed")

	ErrInvalidBankOffset = errors.New("bank offset must not be negative")

	ErrInvalidSampleRate   = errors.New("sample rate must be between 8000 and 96000 Hz")
	ErrInvalidPolyphony    = errors.New("polyphony must be between 1 and 65535")
	ErrInvalidMIDIChannels = errors.New("MIDI channel count must be a positive multiple of 16")
	ErrInvalidGain         = errors.New("gain must be between 0 and 10")
)

// Error is a failure reported by the native synthesizer. Msg is the native
// error text, unchanged.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Is(target error) bool { return target == ErrFluid }
