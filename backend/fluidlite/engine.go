// SPDX-License-Identifier: EPL-2.0

//go:build fluidlite

package fluidlite

/*
#include <stdlib.h>
#include <fluidlite.h>
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ik5/fluidfont/ffi"
	"github.com/ik5/fluidfont/synth"
)

// Engine implements synth.Native over a fluid_synth_t.
type Engine struct {
	mu sync.Mutex

	settings *C.fluid_settings_t
	synth    *C.fluid_synth_t
	rate     int

	// pending holds the text of failures detected on the Go side. It
	// shadows the library's error slot until the next call.
	pending *byte

	fonts map[*C.fluid_sfont_t]*ffi.SFont
	// presets caches channel preset mirrors by channel. The library frees
	// a channel's preset on every program change.
	presets map[int32]*ffi.Preset
}

func New(settings synth.Settings) (*Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	cs := C.new_fluid_settings()
	if cs == nil {
		return nil, ErrCreate
	}

	ok := setNum(cs, "synth.sample-rate", float64(settings.SampleRate)) &&
		setInt(cs, "synth.polyphony", settings.Polyphony) &&
		setInt(cs, "synth.midi-channels", settings.MIDIChannels) &&
		setNum(cs, "synth.gain", float64(settings.Gain)) &&
		setStr(cs, "synth.reverb.active", yesNo(settings.Effects)) &&
		setStr(cs, "synth.chorus.active", yesNo(settings.Effects))
	if !ok {
		C.delete_fluid_settings(cs)
		return nil, ErrSettings
	}

	s := C.new_fluid_synth(cs)
	if s == nil {
		C.delete_fluid_settings(cs)
		return nil, ErrCreate
	}

	return &Engine{
		settings: cs,
		synth:    s,
		rate:     settings.SampleRate,
		fonts:    make(map[*C.fluid_sfont_t]*ffi.SFont),
		presets:  make(map[int32]*ffi.Preset),
	}, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func setNum(cs *C.fluid_settings_t, name string, v float64) bool {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return C.fluid_settings_setnum(cs, cname, C.double(v)) != 0
}

func setInt(cs *C.fluid_settings_t, name string, v int) bool {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return C.fluid_settings_setint(cs, cname, C.int(v)) != 0
}

func setStr(cs *C.fluid_settings_t, name, v string) bool {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	cval := C.CString(v)
	defer C.free(unsafe.Pointer(cval))

	return C.fluid_settings_setstr(cs, cname, cval) != 0
}

// enter starts a call. Callers hold e.mu.
func (e *Engine) enter() {
	e.pending = nil
}

func (e *Engine) fail(format string, args ...any) int32 {
	e.pending = ffi.CString(fmt.Sprintf(format, args...))
	return -1
}

func (e *Engine) Error() *byte {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pending != nil {
		return e.pending
	}

	return cstr(C.fluid_synth_error(e.synth))
}

func (e *Engine) SampleRate() int { return e.rate }

func (e *Engine) SFLoad(filename string, resetPresets bool) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	cname := C.CString(filename)
	defer C.free(unsafe.Pointer(cname))

	ret := int32(C.fluid_synth_sfload(e.synth, cname, cbool(resetPresets)))
	if resetPresets {
		clear(e.presets)
	}

	return ret
}

func (e *Engine) SFReload(id ffi.FontID) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	ret := int32(C.fluid_synth_sfreload(e.synth, C.uint(id)))
	if ret >= 0 {
		e.forget(id)
	}

	return ret
}

func (e *Engine) SFUnload(id ffi.FontID, resetPresets bool) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	ret := int32(C.fluid_synth_sfunload(e.synth, C.uint(id), cbool(resetPresets)))
	if ret == 0 {
		e.forget(id)
	}

	return ret
}

func (e *Engine) AddSFont(sf *ffi.SFont) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	var n native
	if sf != nil {
		n, _ = sf.Data.(native)
	}
	if n.sfont == nil {
		return e.fail("fluidlite only accepts fonts it created")
	}

	ret := int32(C.fluid_synth_add_sfont(e.synth, n.sfont))
	clear(e.presets)
	if ret >= 0 {
		sf.ID = ffi.FontID(ret)
		e.fonts[n.sfont] = sf
	}

	return ret
}

func (e *Engine) RemoveSFont(sf *ffi.SFont) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	var n native
	if sf != nil {
		n, _ = sf.Data.(native)
	}
	if n.sfont == nil || e.fonts[n.sfont] != sf {
		return e.fail("SoundFont is not loaded")
	}

	C.fluid_synth_remove_sfont(e.synth, n.sfont)
	e.forget(sf.ID)

	return 0
}

func (e *Engine) SFCount() int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	return int32(C.fluid_synth_sfcount(e.synth))
}

func (e *Engine) GetSFont(num uint32) *ffi.SFont {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	return e.mirrorFont(C.fluid_synth_get_sfont(e.synth, C.uint(num)))
}

func (e *Engine) GetSFontByID(id ffi.FontID) *ffi.SFont {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	return e.mirrorFont(C.fluid_synth_get_sfont_by_id(e.synth, C.uint(id)))
}

func (e *Engine) SetBankOffset(id ffi.FontID, offset int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	return int32(C.fluid_synth_set_bank_offset(e.synth, C.int(id), C.int(offset)))
}

func (e *Engine) GetBankOffset(id ffi.FontID) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	return int32(C.fluid_synth_get_bank_offset(e.synth, C.int(id)))
}

func (e *Engine) WriteFloat(left, right []float32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enter()

	if len(left) != len(right) {
		return e.fail("Output buffers differ in length")
	}
	if len(left) == 0 {
		return 0
	}

	return int32(C.fluid_synth_write_float(e.synth, C.int(len(left)),
		unsafe.Pointer(&left[0]), 0, 1,
		unsafe.Pointer(&right[0]), 0, 1))
}

func (e *Engine) Delete() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.synth != nil {
		C.delete_fluid_synth(e.synth)
		e.synth = nil
	}
	if e.settings != nil {
		C.delete_fluid_settings(e.settings)
		e.settings = nil
	}

	clear(e.fonts)
	clear(e.presets)
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}
