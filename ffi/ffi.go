// SPDX-License-Identifier: EPL-2.0

package ffi

// FontID identifies a loaded SoundFont. It is assigned by the synthesizer and
// does not change while the font stays loaded.
type FontID uint32

// Bank is a MIDI bank number.
type Bank uint32

// PresetID is a preset (program) number inside a bank.
type PresetID uint32

// SFont is the native SoundFont object.
type SFont struct {
	// Data is private to the loader that created the font.
	Data any

	ID FontID

	Free      func(sf *SFont) int32
	GetName   func(sf *SFont) *byte
	GetPreset func(sf *SFont, bank Bank, prenum PresetID) *Preset
}

// Preset is the native preset object.
type Preset struct {
	// Data is private to the loader that created the preset.
	Data any

	// SFont is the font that owns the preset.
	SFont *SFont

	Free       func(p *Preset) int32
	GetName    func(p *Preset) *byte
	GetBankNum func(p *Preset) int32
	GetNum     func(p *Preset) int32
}

// Handle is the set of native object kinds a wrapper can point at.
type Handle interface {
	SFont | Preset
}
