// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"github.com/ik5/fluidfont/ffi"
	"github.com/ik5/fluidfont/font"
)

func (s *Synth) NoteOn(ch, key, vel int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return ErrClosed
	}

	return s.zeroOK(s.native.NoteOn(ch, key, vel))
}

func (s *Synth) NoteOff(ch, key int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return ErrClosed
	}

	return s.zeroOK(s.native.NoteOff(ch, key))
}

// CC sends a control change.
func (s *Synth) CC(ch, ctrl, val int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return ErrClosed
	}

	return s.zeroOK(s.native.CC(ch, ctrl, val))
}

// GetCC returns the current value of a controller.
func (s *Synth) GetCC(ch, ctrl int32) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return 0, ErrClosed
	}

	var val int32
	if err := s.zeroOK(s.native.GetCC(ch, ctrl, &val)); err != nil {
		return 0, err
	}

	return val, nil
}

// PitchBend sets the pitch wheel, 0..16383 with 8192 as center.
func (s *Synth) PitchBend(ch, val int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return ErrClosed
	}

	return s.zeroOK(s.native.PitchBend(ch, val))
}

// ProgramChange selects program on ch. Refs to the preset ch played before
// become stale, whether or not the change succeeds.
func (s *Synth) ProgramChange(ch, program int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return ErrClosed
	}

	defer s.dropChannel(ch)

	return s.zeroOK(s.native.ProgramChange(ch, program))
}

// BankSelect sets the bank used by the next program change on ch.
func (s *Synth) BankSelect(ch int32, bank ffi.Bank) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return ErrClosed
	}

	return s.zeroOK(s.native.BankSelect(ch, bank))
}

// SFontSelect sets the font used by the next program change on ch.
func (s *Synth) SFontSelect(ch int32, id ffi.FontID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return ErrClosed
	}

	return s.zeroOK(s.native.SFontSelect(ch, id))
}

// ProgramSelect sets font, bank and preset of ch in one step. Refs to the
// preset ch played before become stale.
func (s *Synth) ProgramSelect(ch int32, id ffi.FontID, bank ffi.Bank, preset ffi.PresetID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return ErrClosed
	}

	defer s.dropChannel(ch)

	return s.zeroOK(s.native.ProgramSelect(ch, id, bank, preset))
}

// GetProgram returns the font, bank and preset selected on ch.
func (s *Synth) GetProgram(ch int32) (ffi.FontID, ffi.Bank, ffi.PresetID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return 0, 0, 0, ErrClosed
	}

	var (
		id     ffi.FontID
		bank   ffi.Bank
		preset ffi.PresetID
	)

	if err := s.zeroOK(s.native.GetProgram(ch, &id, &bank, &preset)); err != nil {
		return 0, 0, 0, err
	}

	return id, bank, preset, nil
}

// ChannelPreset returns the preset playing on ch. The channel owns it: the
// ref goes stale on the next program change of ch, on a reset, and on any
// change to the font stack.
func (s *Synth) ChannelPreset(ch int32) (font.PresetRef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return font.PresetRef{}, false
	}

	p := s.native.GetChannelPreset(ch)
	if p == nil {
		return font.PresetRef{}, false
	}

	return font.NewPresetRef(p, s.channelScope(ch)), true
}

// ProgramReset looks up the preset of every channel again. Every channel
// preset ref becomes stale.
func (s *Synth) ProgramReset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return ErrClosed
	}

	defer s.dropChannels()

	return s.zeroOK(s.native.ProgramReset())
}

// SystemReset puts every channel back to its power-on state. Every channel
// preset ref becomes stale.
func (s *Synth) SystemReset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return ErrClosed
	}

	defer s.dropChannels()

	return s.zeroOK(s.native.SystemReset())
}
