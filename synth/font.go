// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"github.com/ik5/fluidfont/ffi"
	"github.com/ik5/fluidfont/font"
)

// LoadFont loads a SoundFont file and returns its id. With resetPresets the
// presets of every channel are looked up again and channel preset refs become
// stale.
func (s *Synth) LoadFont(filename string, resetPresets bool) (ffi.FontID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return 0, ErrClosed
	}

	id, err := s.negErr(s.native.SFLoad(filename, resetPresets))
	if err != nil {
		return 0, err
	}

	if resetPresets {
		s.dropChannels()
	}
	s.logger.Printf("loaded %q as font %d", filename, id)

	return ffi.FontID(id), nil
}

// ReloadFont reloads font id from its file. The font gets a new id and refs
// to the old one become stale.
func (s *Synth) ReloadFont(id ffi.FontID) (ffi.FontID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return 0, ErrClosed
	}

	newID, err := s.negErr(s.native.SFReload(id))
	if err != nil {
		return 0, err
	}

	s.dropScope(id)
	s.dropChannels()
	s.logger.Printf("reloaded font %d as font %d", id, newID)

	return ffi.FontID(newID), nil
}

// UnloadFont unloads font id. Refs to it, and to every channel preset, become
// stale.
func (s *Synth) UnloadFont(id ffi.FontID, resetPresets bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return ErrClosed
	}

	if err := s.zeroOK(s.native.SFUnload(id, resetPresets)); err != nil {
		return err
	}

	s.dropScope(id)
	s.dropChannels()
	s.logger.Printf("unloaded font %d", id)

	return nil
}

// AddFont puts font tables built by a custom loader on top of the font stack
// and returns the id the synthesizer assigned. The caller keeps ownership of
// sf and must keep it alive until RemoveFont.
func (s *Synth) AddFont(sf *ffi.SFont) (ffi.FontID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return 0, ErrClosed
	}

	id, err := s.negErr(s.native.AddSFont(sf))
	if err != nil {
		return 0, err
	}

	s.dropChannels()
	s.logger.Printf("added custom font %d", id)

	return ffi.FontID(id), nil
}

// RemoveFont takes a font off the stack without freeing it. f becomes stale.
func (s *Synth) RemoveFont(f font.FontRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return ErrClosed
	}

	sf := f.Handle()
	if err := s.zeroOK(s.native.RemoveSFont(sf)); err != nil {
		return err
	}

	s.dropScope(sf.ID)
	s.dropChannels()
	s.logger.Printf("removed font %d", sf.ID)

	return nil
}

// FontCount returns the number of fonts on the stack.
func (s *Synth) FontCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return 0
	}

	return int(s.native.SFCount())
}

// Font returns the font at position index of the stack; 0 is the font loaded
// last.
func (s *Synth) Font(index uint32) (font.FontRef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return font.FontRef{}, false
	}

	return s.fontRef(s.native.GetSFont(index))
}

// FontByID returns the font with the given id.
func (s *Synth) FontByID(id ffi.FontID) (font.FontRef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return font.FontRef{}, false
	}

	return s.fontRef(s.native.GetSFontByID(id))
}

func (s *Synth) fontRef(sf *ffi.SFont) (font.FontRef, bool) {
	if sf == nil {
		return font.FontRef{}, false
	}

	return font.NewFontRef(sf, s.scopeFor(sf.ID)), true
}

// SetBankOffset shifts every bank number of font id by offset. Negative
// offsets are rejected with ErrInvalidBankOffset.
func (s *Synth) SetBankOffset(id ffi.FontID, offset int32) error {
	if offset < 0 {
		return ErrInvalidBankOffset
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return ErrClosed
	}

	return s.zeroOK(s.native.SetBankOffset(id, offset))
}

// BankOffset returns the bank offset of font id.
func (s *Synth) BankOffset(id ffi.FontID) (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.native == nil {
		return 0, ErrClosed
	}

	return s.negErr(s.native.GetBankOffset(id))
}
