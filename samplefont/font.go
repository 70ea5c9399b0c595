// SPDX-License-Identifier: EPL-2.0

package samplefont

import (
	"maps"
	"slices"

	"github.com/ik5/fluidfont/ffi"
	"github.com/ik5/fluidfont/font"
)

// Sample is one decoded sample file.
type Sample struct {
	Name     string
	Rate     int
	Channels int
	Frames   int
	// Data holds interleaved samples in [-1, 1].
	Data []float32
}

// Font is a custom font built by Loader. Its foreign tables stay valid until
// the font is freed through its Free function pointer.
type Font struct {
	name    string
	bank    ffi.Bank
	sfont   *ffi.SFont
	samples map[ffi.PresetID]*Sample
	presets map[ffi.PresetID]*ffi.Preset
}

func newFont(name string, bank ffi.Bank) *Font {
	f := &Font{
		name:    name,
		bank:    bank,
		samples: make(map[ffi.PresetID]*Sample),
		presets: make(map[ffi.PresetID]*ffi.Preset),
	}

	cname := ffi.CString(name)

	f.sfont = &ffi.SFont{
		Data:    f,
		GetName: func(*ffi.SFont) *byte { return cname },
		GetPreset: func(_ *ffi.SFont, bank ffi.Bank, num ffi.PresetID) *ffi.Preset {
			if bank != f.bank {
				return nil
			}
			return f.presets[num]
		},
		Free: func(*ffi.SFont) int32 {
			f.free()
			return 0
		},
	}

	return f
}

func (f *Font) add(num ffi.PresetID, s *Sample) {
	cname := ffi.CString(s.Name)
	bank := int32(f.bank)
	prog := int32(num)

	f.samples[num] = s
	f.presets[num] = &ffi.Preset{
		Data:       s,
		SFont:      f.sfont,
		GetName:    func(*ffi.Preset) *byte { return cname },
		GetBankNum: func(*ffi.Preset) int32 { return bank },
		GetNum:     func(*ffi.Preset) int32 { return prog },
		Free:       func(*ffi.Preset) int32 { return 0 },
	}
}

func (f *Font) free() {
	clear(f.samples)
	clear(f.presets)
}

// Handle returns the foreign font table.
func (f *Font) Handle() *ffi.SFont { return f.sfont }

// Lifetime is nil: the tables live as long as f does.
func (f *Font) Lifetime() *font.Scope { return nil }

func (f *Font) Bank() ffi.Bank { return f.bank }
func (f *Font) Len() int       { return len(f.samples) }

func (f *Font) Sample(bank ffi.Bank, num ffi.PresetID) (*Sample, bool) {
	if bank != f.bank {
		return nil, false
	}

	s, ok := f.samples[num]
	return s, ok
}

// Programs returns the occupied program numbers in ascending order.
func (f *Font) Programs() []ffi.PresetID {
	return slices.Sorted(maps.Keys(f.samples))
}
