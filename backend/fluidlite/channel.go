// SPDX-License-Identifier: EPL-2.0

//go:build fluidlite

package fluidlite

/*
#include <fluidlite.h>
*/
import "C"

import "github.com/ik5/fluidfont/ffi"

func (e *Engine) NoteOn(ch, key, vel int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	return int32(C.fluid_synth_noteon(e.synth, C.int(ch), C.int(key), C.int(vel)))
}

func (e *Engine) NoteOff(ch, key int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	return int32(C.fluid_synth_noteoff(e.synth, C.int(ch), C.int(key)))
}

func (e *Engine) CC(ch, ctrl, val int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	return int32(C.fluid_synth_cc(e.synth, C.int(ch), C.int(ctrl), C.int(val)))
}

func (e *Engine) GetCC(ch, ctrl int32, pval *int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	var v C.int
	ret := int32(C.fluid_synth_get_cc(e.synth, C.int(ch), C.int(ctrl), &v))
	*pval = int32(v)

	return ret
}

func (e *Engine) PitchBend(ch, val int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	return int32(C.fluid_synth_pitch_bend(e.synth, C.int(ch), C.int(val)))
}

func (e *Engine) ProgramChange(ch, program int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	delete(e.presets, ch)

	return int32(C.fluid_synth_program_change(e.synth, C.int(ch), C.int(program)))
}

func (e *Engine) BankSelect(ch int32, bank ffi.Bank) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	return int32(C.fluid_synth_bank_select(e.synth, C.int(ch), C.uint(bank)))
}

func (e *Engine) SFontSelect(ch int32, id ffi.FontID) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	return int32(C.fluid_synth_sfont_select(e.synth, C.int(ch), C.uint(id)))
}

func (e *Engine) ProgramSelect(ch int32, id ffi.FontID, bank ffi.Bank, preset ffi.PresetID) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	delete(e.presets, ch)

	return int32(C.fluid_synth_program_select(e.synth, C.int(ch), C.uint(id), C.uint(bank), C.uint(preset)))
}

func (e *Engine) GetProgram(ch int32, id *ffi.FontID, bank *ffi.Bank, preset *ffi.PresetID) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	var cid, cbank, cpreset C.uint
	ret := int32(C.fluid_synth_get_program(e.synth, C.int(ch), &cid, &cbank, &cpreset))
	*id, *bank, *preset = ffi.FontID(cid), ffi.Bank(cbank), ffi.PresetID(cpreset)

	return ret
}

func (e *Engine) GetChannelPreset(ch int32) *ffi.Preset {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	return e.channelPreset(ch, C.fluid_synth_get_channel_preset(e.synth, C.int(ch)))
}

func (e *Engine) ProgramReset() int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	clear(e.presets)

	return int32(C.fluid_synth_program_reset(e.synth))
}

func (e *Engine) SystemReset() int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	clear(e.presets)

	return int32(C.fluid_synth_system_reset(e.synth))
}
