// SPDX-License-Identifier: EPL-2.0

package melty

import (
	"github.com/sinshu/go-meltysynth/meltysynth"

	"github.com/ik5/fluidfont/ffi"
)

// MIDI status bytes.
const (
	midiControl    = 0xB0
	midiProgram    = 0xC0
	midiPitchBend  = 0xE0
	ccBankSelect   = 0x00
	ccBankSelectLo = 0x20
)

// voices returns the renderer of f, creating it on first use.
func (e *Engine) voices(f *entry) (*meltysynth.Synthesizer, error) {
	if f.voice != nil {
		return f.voice, nil
	}

	settings := meltysynth.NewSynthesizerSettings(int32(e.settings.SampleRate))
	settings.MaximumPolyphony = int32(min(max(e.settings.Polyphony, minPolyphony), maxPolyphony))
	settings.EnableReverbAndChorus = e.settings.Effects

	v, err := meltysynth.NewSynthesizer(f.sound, settings)
	if err != nil {
		return nil, err
	}

	// Replay controller state so a late-created renderer matches the others.
	for ch := range e.channels {
		c := &e.channels[ch]
		for ctrl, val := range c.cc {
			if val != 0 && ctrl != ccBankSelect && ctrl != ccBankSelectLo {
				v.ProcessMidiMessage(int32(ch), midiControl, int32(ctrl), val)
			}
		}
		if c.bend != 0 {
			v.ProcessMidiMessage(int32(ch), midiPitchBend, c.bend&0x7f, c.bend>>7)
		}
	}

	f.voice = v

	return v, nil
}

// each calls fn for every renderer created so far.
func (e *Engine) each(fn func(v *meltysynth.Synthesizer)) {
	for _, f := range e.fonts {
		if f.voice != nil {
			fn(f.voice)
		}
	}
}

func (e *Engine) NoteOn(ch, key, vel int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.channel(ch)
	if !ok {
		return -1
	}

	if key < 0 || key > 127 {
		return e.fail("Invalid note (key=%d)", key)
	}
	if vel < 0 || vel > 127 {
		return e.fail("Invalid velocity (vel=%d)", vel)
	}

	if vel == 0 {
		e.each(func(v *meltysynth.Synthesizer) { v.NoteOff(ch, key) })
		return 0
	}

	if c.preset == nil {
		return e.fail("channel has no preset")
	}

	f := e.owner(c.preset)
	if f == nil || f.sound == nil {
		return e.fail("SoundFont %d cannot be rendered", c.sfont)
	}

	v, err := e.voices(f)
	if err != nil {
		e.logger.Printf("font %d: %v", f.sf.ID, err)
		return e.fail("Failed to create a synthesizer for SoundFont %d", f.sf.ID)
	}

	bank, num := c.preset.GetBankNum(c.preset), c.preset.GetNum(c.preset)

	// On channel 10 the renderer adds the drum bank itself.
	v.ProcessMidiMessage(ch, midiControl, ccBankSelect, bank%drumBank)
	v.ProcessMidiMessage(ch, midiProgram, num, 0)
	v.NoteOn(ch, key, vel)

	return 0
}

func (e *Engine) owner(p *ffi.Preset) *entry {
	if p.SFont == nil {
		return nil
	}

	for _, f := range e.fonts {
		if f.sf == p.SFont {
			return f
		}
	}

	return nil
}

func (e *Engine) NoteOff(ch, key int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.channel(ch); !ok {
		return -1
	}
	if key < 0 || key > 127 {
		return e.fail("Invalid note (key=%d)", key)
	}

	e.each(func(v *meltysynth.Synthesizer) { v.NoteOff(ch, key) })

	return 0
}

func (e *Engine) CC(ch, ctrl, val int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.channel(ch)
	if !ok {
		return -1
	}

	if ctrl < 0 || ctrl > 127 {
		return e.fail("Invalid control (ctrl=%d)", ctrl)
	}
	if val < 0 || val > 127 {
		return e.fail("Invalid value (val=%d)", val)
	}

	c.cc[ctrl] = val

	switch ctrl {
	case ccBankSelect:
		c.bank = ffi.Bank(val)
	case ccBankSelectLo:
	default:
		e.each(func(v *meltysynth.Synthesizer) { v.ProcessMidiMessage(ch, midiControl, ctrl, val) })
	}

	return 0
}

func (e *Engine) GetCC(ch, ctrl int32, pval *int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.channel(ch)
	if !ok {
		return -1
	}

	if ctrl < 0 || ctrl > 127 {
		return e.fail("Invalid control (ctrl=%d)", ctrl)
	}

	*pval = c.cc[ctrl]

	return 0
}

func (e *Engine) PitchBend(ch, val int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.channel(ch)
	if !ok {
		return -1
	}

	if val < 0 || val > 16383 {
		return e.fail("Invalid pitch bend (val=%d)", val)
	}

	c.bend = val
	e.each(func(v *meltysynth.Synthesizer) { v.ProcessMidiMessage(ch, midiPitchBend, val&0x7f, val>>7) })

	return 0
}

func (e *Engine) ProgramChange(ch, program int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.channel(ch)
	if !ok {
		return -1
	}

	if program < 0 || program > 127 {
		return e.fail("Invalid program (prog=%d)", program)
	}

	c.program = ffi.PresetID(program)
	c.preset = e.resolve(ch, c)

	return 0
}

// resolve finds the preset for the channel's program, falling back to bank 0
// (or the standard drum kit on drum banks) like General MIDI players do.
func (e *Engine) resolve(ch int32, c *channel) *ffi.Preset {
	if p := e.lookup(c.sfont, c.bank, c.program); p != nil {
		return p
	}

	fallback := presetKey{0, c.program}
	if c.bank == drumBank {
		fallback = presetKey{drumBank, 0}
	}

	p := e.lookup(c.sfont, fallback.bank, fallback.num)
	if p != nil {
		e.logger.Printf("chan %d: no preset %d-%d, using %d-%d", ch, c.bank, c.program, fallback.bank, fallback.num)
	}

	return p
}

func (e *Engine) BankSelect(ch int32, bank ffi.Bank) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.channel(ch)
	if !ok {
		return -1
	}

	c.bank = bank

	return 0
}

func (e *Engine) SFontSelect(ch int32, id ffi.FontID) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.channel(ch)
	if !ok {
		return -1
	}

	if e.find(id) < 0 {
		return e.fail("There is no loaded SoundFont with id = %d", id)
	}

	c.sfont = id

	return 0
}

func (e *Engine) ProgramSelect(ch int32, id ffi.FontID, bank ffi.Bank, preset ffi.PresetID) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.channel(ch)
	if !ok {
		return -1
	}

	if e.find(id) < 0 {
		return e.fail("There is no loaded SoundFont with id = %d", id)
	}

	p := e.lookup(id, bank, preset)
	if p == nil {
		return e.fail("There is no preset with bank number %d and preset number %d in SoundFont %d", bank, preset, id)
	}

	c.sfont, c.bank, c.program, c.preset = id, bank, preset, p

	return 0
}

func (e *Engine) GetProgram(ch int32, id *ffi.FontID, bank *ffi.Bank, preset *ffi.PresetID) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.channel(ch)
	if !ok {
		return -1
	}

	*id, *bank, *preset = c.sfont, c.bank, c.program
	if c.preset != nil && c.preset.SFont != nil {
		*id = c.preset.SFont.ID
	}

	return 0
}

func (e *Engine) GetChannelPreset(ch int32) *ffi.Preset {
	e.mu.Lock()
	defer e.mu.Unlock()

	if ch < 0 || ch >= channels {
		return nil
	}

	return e.channels[ch].preset
}

func (e *Engine) programReset() {
	for ch := range e.channels {
		c := &e.channels[ch]
		c.preset = e.resolve(int32(ch), c)
	}
}

func (e *Engine) ProgramReset() int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.programReset()

	return 0
}

func (e *Engine) SystemReset() int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.resetChannels()
	e.each(func(v *meltysynth.Synthesizer) { v.Reset() })
	e.programReset()

	return 0
}
