// SPDX-License-Identifier: EPL-2.0

package font

import "github.com/ik5/fluidfont/ffi"

// AsFont returns the font accessors for anything holding a native font.
func AsFont[X HasHandle[ffi.SFont]](x X) IsFont {
	return fontOps[X]{x}
}

// AsPreset returns the preset accessors for anything holding a native preset.
func AsPreset[X HasHandle[ffi.Preset]](x X) IsPreset {
	return presetOps[X]{x}
}

// fontOps is the only implementation of IsFont.
type fontOps[X HasHandle[ffi.SFont]] struct {
	x X
}

func (o fontOps[X]) native() *ffi.SFont {
	assertLive(o.x.Lifetime())

	return o.x.Handle()
}

func (o fontOps[X]) ID() FontID {
	return o.native().ID
}

func (o fontOps[X]) Name() (string, bool) {
	sf := o.native()
	if sf.GetName == nil {
		return "", false
	}

	return ffi.GoString(sf.GetName(sf))
}

func (o fontOps[X]) Preset(bank Bank, num PresetID) (PresetRef, bool) {
	sf := o.native()
	if sf.GetPreset == nil {
		return PresetRef{}, false
	}

	p := sf.GetPreset(sf, bank, num)
	if p == nil {
		return PresetRef{}, false
	}

	return NewPresetRef(p, o.x.Lifetime()), true
}

// presetOps is the only implementation of IsPreset.
type presetOps[X HasHandle[ffi.Preset]] struct {
	x X
}

func (o presetOps[X]) native() *ffi.Preset {
	assertLive(o.x.Lifetime())

	return o.x.Handle()
}

func (o presetOps[X]) Name() (string, bool) {
	p := o.native()
	if p.GetName == nil {
		return "", false
	}

	return ffi.GoString(p.GetName(p))
}

func (o presetOps[X]) BankNum() (Bank, bool) {
	p := o.native()
	if p.GetBankNum == nil {
		return 0, false
	}

	n, ok := nonNegative(p.GetBankNum(p))

	return Bank(n), ok
}

func (o presetOps[X]) Num() (PresetID, bool) {
	p := o.native()
	if p.GetNum == nil {
		return 0, false
	}

	n, ok := nonNegative(p.GetNum(p))

	return PresetID(n), ok
}

// nonNegative maps the native "negative means none" convention.
func nonNegative(n int32) (uint32, bool) {
	if n < 0 {
		return 0, false
	}

	return uint32(n), true
}
