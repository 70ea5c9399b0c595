// SPDX-License-Identifier: EPL-2.0

package melty

import (
	"github.com/sinshu/go-meltysynth/meltysynth"

	"github.com/ik5/fluidfont/ffi"
)

type presetKey struct {
	bank ffi.Bank
	num  ffi.PresetID
}

// buildTables creates the foreign font table for a parsed SoundFont. Every
// preset table is built once so lookups return stable pointers.
func buildTables(name string, presets []*meltysynth.Preset) *ffi.SFont {
	table := make(map[presetKey]*ffi.Preset, len(presets))
	cname := ffi.CString(name)

	sf := &ffi.SFont{
		GetName: func(*ffi.SFont) *byte { return cname },
		GetPreset: func(_ *ffi.SFont, bank ffi.Bank, num ffi.PresetID) *ffi.Preset {
			return table[presetKey{bank, num}]
		},
		Free: func(*ffi.SFont) int32 {
			clear(table)
			return 0
		},
	}

	for _, p := range presets {
		if p.BankNumber < 0 || p.PatchNumber < 0 {
			continue
		}

		key := presetKey{ffi.Bank(p.BankNumber), ffi.PresetID(p.PatchNumber)}
		if _, dup := table[key]; dup {
			continue
		}

		pname := ffi.CString(p.Name)
		bank, num := p.BankNumber, p.PatchNumber

		table[key] = &ffi.Preset{
			Data:       p,
			SFont:      sf,
			GetName:    func(*ffi.Preset) *byte { return pname },
			GetBankNum: func(*ffi.Preset) int32 { return bank },
			GetNum:     func(*ffi.Preset) int32 { return num },
			Free:       func(*ffi.Preset) int32 { return 0 },
		}
	}

	return sf
}
