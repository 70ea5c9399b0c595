// SPDX-License-Identifier: EPL-2.0

package font

import "github.com/ik5/fluidfont/ffi"

type (
	FontID   = ffi.FontID
	Bank     = ffi.Bank
	PresetID = ffi.PresetID
)

// IsFont is the SoundFont interface.
type IsFont interface {
	ID() FontID
	Name() (string, bool)
	Preset(bank Bank, num PresetID) (PresetRef, bool)
}

// IsPreset is the SoundFont preset interface.
type IsPreset interface {
	Name() (string, bool)
	BankNum() (Bank, bool)
	Num() (PresetID, bool)
}

// HasHandle is implemented by anything that holds a live native object of
// kind H. Handle must never return nil.
type HasHandle[H ffi.Handle] interface {
	Handle() *H
	// Lifetime returns the scope the handle is valid in. nil means the
	// handle outlives every use.
	Lifetime() *Scope
}

// FontRef refers to a SoundFont owned by the native library.
//
// Copies of a FontRef refer to the same font and share its scope. A FontRef
// must not be used once Valid reports false.
type FontRef struct {
	handle *ffi.SFont
	scope  *Scope
}

// NewFontRef wraps a handle already known to be non-nil. It panics with
// ErrNilHandle otherwise.
func NewFontRef(handle *ffi.SFont, scope *Scope) FontRef {
	if handle == nil {
		panic(ErrNilHandle)
	}

	return FontRef{handle: handle, scope: scope}
}

func (f FontRef) Handle() *ffi.SFont { return f.handle }
func (f FontRef) Lifetime() *Scope   { return f.scope }
func (f FontRef) Valid() bool        { return f.scope.Alive() }

func (f FontRef) ID() FontID           { return fontOps[FontRef]{f}.ID() }
func (f FontRef) Name() (string, bool) { return fontOps[FontRef]{f}.Name() }

func (f FontRef) Preset(bank Bank, num PresetID) (PresetRef, bool) {
	return fontOps[FontRef]{f}.Preset(bank, num)
}

// PresetRef refers to a preset owned by the native library. It shares the
// scope of the font it came from.
type PresetRef struct {
	handle *ffi.Preset
	scope  *Scope
}

// NewPresetRef wraps a handle already known to be non-nil. It panics with
// ErrNilHandle otherwise.
func NewPresetRef(handle *ffi.Preset, scope *Scope) PresetRef {
	if handle == nil {
		panic(ErrNilHandle)
	}

	return PresetRef{handle: handle, scope: scope}
}

func (p PresetRef) Handle() *ffi.Preset { return p.handle }
func (p PresetRef) Lifetime() *Scope    { return p.scope }
func (p PresetRef) Valid() bool         { return p.scope.Alive() }

func (p PresetRef) Name() (string, bool)  { return presetOps[PresetRef]{p}.Name() }
func (p PresetRef) BankNum() (Bank, bool) { return presetOps[PresetRef]{p}.BankNum() }
func (p PresetRef) Num() (PresetID, bool) { return presetOps[PresetRef]{p}.Num() }

var (
	_ IsFont   = FontRef{}
	_ IsPreset = PresetRef{}

	_ HasHandle[ffi.SFont]  = FontRef{}
	_ HasHandle[ffi.Preset] = PresetRef{}
)
