// SPDX-License-Identifier: EPL-2.0

// Package fonttest provides native font tables and a scripted native
// synthesizer for tests.
package fonttest

import "github.com/ik5/fluidfont/ffi"

// NewPreset creates preset tables reporting the given name, bank and number.
// Negative bank or num are reported as is, which the wrappers treat as "none".
func NewPreset(name string, bank, num int32) *ffi.Preset {
	cname := ffi.CString(name)

	return &ffi.Preset{
		GetName:    func(*ffi.Preset) *byte { return cname },
		GetBankNum: func(*ffi.Preset) int32 { return bank },
		GetNum:     func(*ffi.Preset) int32 { return num },
	}
}

// BarePreset creates preset tables with every function pointer unset.
func BarePreset() *ffi.Preset {
	return &ffi.Preset{}
}

// NewFont creates font tables with a name and a preset lookup over presets.
// Lookup matches on the values the presets report through GetBankNum and
// GetNum.
func NewFont(id ffi.FontID, name string, presets ...*ffi.Preset) *ffi.SFont {
	cname := ffi.CString(name)
	sf := &ffi.SFont{ID: id}

	for _, p := range presets {
		p.SFont = sf
	}

	sf.GetName = func(*ffi.SFont) *byte { return cname }
	sf.GetPreset = func(_ *ffi.SFont, bank ffi.Bank, num ffi.PresetID) *ffi.Preset {
		for _, p := range presets {
			if p.GetBankNum == nil || p.GetNum == nil {
				continue
			}
			if p.GetBankNum(p) == int32(bank) && p.GetNum(p) == int32(num) {
				return p
			}
		}
		return nil
	}
	sf.Free = func(*ffi.SFont) int32 { return 0 }

	return sf
}

// BareFont creates font tables with only an id.
func BareFont(id ffi.FontID) *ffi.SFont {
	return &ffi.SFont{ID: id}
}

// GeneralMIDI returns a small font holding a piano, a string ensemble and a
// drum kit in bank 128.
func GeneralMIDI(id ffi.FontID, name string) *ffi.SFont {
	return NewFont(id, name,
		NewPreset("Acoustic Grand Piano", 0, 0),
		NewPreset("String Ensemble 1", 0, 48),
		NewPreset("Standard Kit", 128, 0),
	)
}
