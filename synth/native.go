// SPDX-License-Identifier: EPL-2.0

package synth

import "github.com/ik5/fluidfont/ffi"

// Native is the function set of a native synthesizer instance.
//
// Methods mirror the C API: int32 results are return codes, out-parameters
// are pointers, and strings are NUL-terminated. After a failing call, Error
// returns the message for that failure until the next call on the instance.
type Native interface {
	// Error returns the last error message. The memory belongs to the
	// instance and is only valid until the next call.
	Error() *byte

	SFLoad(filename string, resetPresets bool) int32
	SFReload(id ffi.FontID) int32
	SFUnload(id ffi.FontID, resetPresets bool) int32
	AddSFont(sf *ffi.SFont) int32
	RemoveSFont(sf *ffi.SFont) int32
	SFCount() int32
	GetSFont(num uint32) *ffi.SFont
	GetSFontByID(id ffi.FontID) *ffi.SFont
	SetBankOffset(id ffi.FontID, offset int32) int32
	GetBankOffset(id ffi.FontID) int32

	NoteOn(ch, key, vel int32) int32
	NoteOff(ch, key int32) int32
	CC(ch, ctrl, val int32) int32
	GetCC(ch, ctrl int32, pval *int32) int32
	PitchBend(ch, val int32) int32
	ProgramChange(ch, program int32) int32
	BankSelect(ch int32, bank ffi.Bank) int32
	SFontSelect(ch int32, id ffi.FontID) int32
	ProgramSelect(ch int32, id ffi.FontID, bank ffi.Bank, preset ffi.PresetID) int32
	GetProgram(ch int32, id *ffi.FontID, bank *ffi.Bank, preset *ffi.PresetID) int32
	GetChannelPreset(ch int32) *ffi.Preset
	ProgramReset() int32
	SystemReset() int32

	// WriteFloat renders len(left) frames into the two channel buffers.
	WriteFloat(left, right []float32) int32
	SampleRate() int

	// Delete releases the instance. No call may follow it.
	Delete()
}
