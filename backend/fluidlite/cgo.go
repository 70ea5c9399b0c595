// SPDX-License-Identifier: EPL-2.0

//go:build fluidlite

package fluidlite

/*
#cgo pkg-config: fluidlite
#include <stdlib.h>
#include <fluidlite.h>

static int sfont_free(fluid_sfont_t* sf) {
	return sf->free ? sf->free(sf) : 0;
}
static char* sfont_get_name(fluid_sfont_t* sf) {
	return sf->get_name(sf);
}
static fluid_preset_t* sfont_get_preset(fluid_sfont_t* sf, unsigned int bank, unsigned int num) {
	return sf->get_preset(sf, bank, num);
}
static int preset_free(fluid_preset_t* p) {
	return p->free ? p->free(p) : 0;
}
static char* preset_get_name(fluid_preset_t* p) {
	return p->get_name(p);
}
static int preset_get_banknum(fluid_preset_t* p) {
	return p->get_banknum(p);
}
static int preset_get_num(fluid_preset_t* p) {
	return p->get_num(p);
}
*/
import "C"

import (
	"runtime"
	"unsafe"

	"github.com/ik5/fluidfont/ffi"
)

// native is stored in the Data field of mirrored tables.
type native struct {
	sfont  *C.fluid_sfont_t
	preset *C.fluid_preset_t
}

func cstr(p *C.char) *byte {
	return (*byte)(unsafe.Pointer(p))
}

// mirrorFont returns the cached table for sf, building it on first sight.
// Callers hold e.mu.
func (e *Engine) mirrorFont(sf *C.fluid_sfont_t) *ffi.SFont {
	if sf == nil {
		return nil
	}

	if m, ok := e.fonts[sf]; ok {
		m.ID = ffi.FontID(sf.id)
		return m
	}

	m := &ffi.SFont{
		Data: native{sfont: sf},
		ID:   ffi.FontID(sf.id),
		Free: func(*ffi.SFont) int32 { return int32(C.sfont_free(sf)) },
	}

	if sf.get_name != nil {
		m.GetName = func(*ffi.SFont) *byte { return cstr(C.sfont_get_name(sf)) }
	}

	if sf.get_preset != nil {
		m.GetPreset = func(_ *ffi.SFont, bank ffi.Bank, num ffi.PresetID) *ffi.Preset {
			p := C.sfont_get_preset(sf, C.uint(bank), C.uint(num))
			if p == nil {
				return nil
			}

			// The loader allocates a fresh preset per lookup; release it
			// with the mirror.
			mp := mirrorPreset(p, m)
			runtime.AddCleanup(mp, func(p *C.fluid_preset_t) { C.preset_free(p) }, p)

			return mp
		}
	}

	e.fonts[sf] = m

	return m
}

func mirrorPreset(p *C.fluid_preset_t, owner *ffi.SFont) *ffi.Preset {
	m := &ffi.Preset{
		Data:  native{preset: p},
		SFont: owner,
		Free:  func(*ffi.Preset) int32 { return int32(C.preset_free(p)) },
	}

	if p.get_name != nil {
		m.GetName = func(*ffi.Preset) *byte { return cstr(C.preset_get_name(p)) }
	}
	if p.get_banknum != nil {
		m.GetBankNum = func(*ffi.Preset) int32 { return int32(C.preset_get_banknum(p)) }
	}
	if p.get_num != nil {
		m.GetNum = func(*ffi.Preset) int32 { return int32(C.preset_get_num(p)) }
	}

	return m
}

// channelPreset mirrors the preset owned by channel ch. The mirror is cached
// per channel and only reused while the channel still holds the same preset of
// the same font. Callers hold e.mu.
func (e *Engine) channelPreset(ch int32, p *C.fluid_preset_t) *ffi.Preset {
	if p == nil {
		delete(e.presets, ch)
		return nil
	}

	owner := e.mirrorFont(p.sfont)
	if m, ok := e.presets[ch]; ok {
		if n, _ := m.Data.(native); n.preset == p && m.SFont == owner {
			return m
		}
	}

	m := mirrorPreset(p, owner)
	m.Free = nil
	e.presets[ch] = m

	return m
}

// forget drops the cached tables of the font with id. Channel presets may
// have been replaced by the library, so their mirrors go too.
func (e *Engine) forget(id ffi.FontID) {
	for sf, m := range e.fonts {
		if m.ID == id {
			delete(e.fonts, sf)
		}
	}

	clear(e.presets)
}
