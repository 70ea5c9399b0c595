// SPDX-License-Identifier: EPL-2.0

package fonttest

import (
	"fmt"
	"slices"
	"sync"

	"github.com/ik5/fluidfont/ffi"
)

type forced struct {
	code int32
	msg  string
}

type channel struct {
	sfont   ffi.FontID
	bank    ffi.Bank
	program ffi.PresetID
	preset  *ffi.Preset
	cc      [128]int32
}

// Native is a scripted native synthesizer. It keeps a font stack and channel
// programs like the real library, and Fail forces the next call of an
// operation to return a chosen code and error text.
//
// It satisfies synth.Native without importing it.
type Native struct {
	mu sync.Mutex

	errText    *byte
	errorCalls int

	files  map[string]func(id ffi.FontID) *ffi.SFont
	fonts  []*ffi.SFont // index 0 is the top of the stack
	offset map[ffi.FontID]int32
	nextID ffi.FontID

	forced   map[string]forced
	channels []channel
	calls    []string
	rate     int
	deleted  bool
}

// NewNative creates a fake synthesizer with 16 channels at 44.1kHz.
func NewNative() *Native {
	return &Native{
		errText:  ffi.CString(""),
		files:    make(map[string]func(id ffi.FontID) *ffi.SFont),
		offset:   make(map[ffi.FontID]int32),
		forced:   make(map[string]forced),
		channels: make([]channel, 16),
		rate:     44100,
	}
}

// AddFile makes SFLoad(path) succeed with the tables built by mk.
func (n *Native) AddFile(path string, mk func(id ffi.FontID) *ffi.SFont) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.files[path] = mk
}

// Fail makes the next call to op return code and set the error text to msg.
func (n *Native) Fail(op string, code int32, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.forced[op] = forced{code: code, msg: msg}
}

// SetError overwrites the error slot.
func (n *Native) SetError(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.errText = ffi.CString(msg)
}

// SetRawError stores raw bytes in the error slot. A nil p stores a null
// pointer.
func (n *Native) SetRawError(p *byte) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.errText = p
}

// ErrorCalls returns how many times Error was called.
func (n *Native) ErrorCalls() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.errorCalls
}

// Calls returns the operations issued so far, in order. Error queries are not
// recorded.
func (n *Native) Calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return slices.Clone(n.calls)
}

// Deleted reports whether Delete was called.
func (n *Native) Deleted() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.deleted
}

// enter records op and reports a forced result, if any. Callers hold n.mu.
func (n *Native) enter(op string) (int32, bool) {
	n.calls = append(n.calls, op)

	f, ok := n.forced[op]
	if !ok {
		return 0, false
	}

	delete(n.forced, op)
	n.errText = ffi.CString(f.msg)

	return f.code, true
}

func (n *Native) fail(format string, args ...any) int32 {
	n.errText = ffi.CString(fmt.Sprintf(format, args...))
	return -1
}

func (n *Native) find(id ffi.FontID) int {
	return slices.IndexFunc(n.fonts, func(sf *ffi.SFont) bool { return sf.ID == id })
}

func (n *Native) channel(ch int32) (*channel, bool) {
	if ch < 0 || int(ch) >= len(n.channels) {
		n.fail("Channel number out of range (chan=%d)", ch)
		return nil, false
	}

	return &n.channels[ch], true
}

func (n *Native) Error() *byte {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.errorCalls++

	return n.errText
}

func (n *Native) SFLoad(filename string, resetPresets bool) int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if code, ok := n.enter("SFLoad"); ok {
		return code
	}

	mk, ok := n.files[filename]
	if !ok {
		return n.fail("Failed to load SoundFont \"%s\"", filename)
	}

	n.nextID++
	sf := mk(n.nextID)
	sf.ID = n.nextID
	n.fonts = slices.Insert(n.fonts, 0, sf)

	return int32(sf.ID)
}

func (n *Native) SFReload(id ffi.FontID) int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if code, ok := n.enter("SFReload"); ok {
		return code
	}

	i := n.find(id)
	if i < 0 {
		return n.fail("No SoundFont with id = %d", id)
	}

	n.nextID++
	n.fonts[i].ID = n.nextID

	return int32(n.nextID)
}

func (n *Native) SFUnload(id ffi.FontID, resetPresets bool) int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if code, ok := n.enter("SFUnload"); ok {
		return code
	}

	i := n.find(id)
	if i < 0 {
		return n.fail("No SoundFont with id = %d", id)
	}

	n.fonts = slices.Delete(n.fonts, i, i+1)

	return 0
}

func (n *Native) AddSFont(sf *ffi.SFont) int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if code, ok := n.enter("AddSFont"); ok {
		return code
	}

	n.nextID++
	sf.ID = n.nextID
	n.fonts = slices.Insert(n.fonts, 0, sf)

	return int32(sf.ID)
}

func (n *Native) RemoveSFont(sf *ffi.SFont) int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if code, ok := n.enter("RemoveSFont"); ok {
		return code
	}

	i := slices.Index(n.fonts, sf)
	if i < 0 {
		return n.fail("SoundFont is not loaded")
	}

	n.fonts = slices.Delete(n.fonts, i, i+1)

	return 0
}

func (n *Native) SFCount() int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.calls = append(n.calls, "SFCount")

	return int32(len(n.fonts))
}

func (n *Native) GetSFont(num uint32) *ffi.SFont {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.calls = append(n.calls, "GetSFont")

	if int(num) >= len(n.fonts) {
		return nil
	}

	return n.fonts[num]
}

func (n *Native) GetSFontByID(id ffi.FontID) *ffi.SFont {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.calls = append(n.calls, "GetSFontByID")

	if i := n.find(id); i >= 0 {
		return n.fonts[i]
	}

	return nil
}

func (n *Native) SetBankOffset(id ffi.FontID, offset int32) int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if code, ok := n.enter("SetBankOffset"); ok {
		return code
	}

	if n.find(id) < 0 {
		return n.fail("No SoundFont with id = %d", id)
	}

	n.offset[id] = offset

	return 0
}

func (n *Native) GetBankOffset(id ffi.FontID) int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if code, ok := n.enter("GetBankOffset"); ok {
		return code
	}

	if n.find(id) < 0 {
		return n.fail("No SoundFont with id = %d", id)
	}

	return n.offset[id]
}

func (n *Native) NoteOn(ch, key, vel int32) int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if code, ok := n.enter("NoteOn"); ok {
		return code
	}

	c, ok := n.channel(ch)
	if !ok {
		return -1
	}

	if c.preset == nil {
		return n.fail("channel has no preset")
	}

	return 0
}

func (n *Native) NoteOff(ch, key int32) int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if code, ok := n.enter("NoteOff"); ok {
		return code
	}

	if _, ok := n.channel(ch); !ok {
		return -1
	}

	return 0
}

func (n *Native) CC(ch, ctrl, val int32) int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if code, ok := n.enter("CC"); ok {
		return code
	}

	c, ok := n.channel(ch)
	if !ok {
		return -1
	}

	if ctrl < 0 || ctrl > 127 || val < 0 || val > 127 {
		return n.fail("Invalid control (ctrl=%d, val=%d)", ctrl, val)
	}

	c.cc[ctrl] = val

	return 0
}

func (n *Native) GetCC(ch, ctrl int32, pval *int32) int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if code, ok := n.enter("GetCC"); ok {
		return code
	}

	c, ok := n.channel(ch)
	if !ok {
		return -1
	}

	if ctrl < 0 || ctrl > 127 {
		return n.fail("Invalid control (ctrl=%d)", ctrl)
	}

	*pval = c.cc[ctrl]

	return 0
}

func (n *Native) PitchBend(ch, val int32) int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if code, ok := n.enter("PitchBend"); ok {
		return code
	}

	if _, ok := n.channel(ch); !ok {
		return -1
	}

	return 0
}

func (n *Native) ProgramChange(ch, program int32) int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if code, ok := n.enter("ProgramChange"); ok {
		return code
	}

	c, ok := n.channel(ch)
	if !ok {
		return -1
	}

	c.program = ffi.PresetID(program)
	c.preset = n.lookup(c.sfont, c.bank, c.program)

	return 0
}

func (n *Native) BankSelect(ch int32, bank ffi.Bank) int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if code, ok := n.enter("BankSelect"); ok {
		return code
	}

	c, ok := n.channel(ch)
	if !ok {
		return -1
	}

	c.bank = bank

	return 0
}

func (n *Native) SFontSelect(ch int32, id ffi.FontID) int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if code, ok := n.enter("SFontSelect"); ok {
		return code
	}

	c, ok := n.channel(ch)
	if !ok {
		return -1
	}

	c.sfont = id

	return 0
}

func (n *Native) ProgramSelect(ch int32, id ffi.FontID, bank ffi.Bank, preset ffi.PresetID) int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if code, ok := n.enter("ProgramSelect"); ok {
		return code
	}

	c, ok := n.channel(ch)
	if !ok {
		return -1
	}

	if n.find(id) < 0 {
		return n.fail("There is no loaded SoundFont with id = %d", id)
	}

	p := n.lookup(id, bank, preset)
	if p == nil {
		return n.fail("There is no preset with bank number %d and preset number %d in SoundFont %d", bank, preset, id)
	}

	c.sfont, c.bank, c.program, c.preset = id, bank, preset, p

	return 0
}

func (n *Native) GetProgram(ch int32, id *ffi.FontID, bank *ffi.Bank, preset *ffi.PresetID) int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if code, ok := n.enter("GetProgram"); ok {
		return code
	}

	c, ok := n.channel(ch)
	if !ok {
		return -1
	}

	*id, *bank, *preset = c.sfont, c.bank, c.program

	return 0
}

func (n *Native) GetChannelPreset(ch int32) *ffi.Preset {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.calls = append(n.calls, "GetChannelPreset")

	if ch < 0 || int(ch) >= len(n.channels) {
		return nil
	}

	return n.channels[ch].preset
}

func (n *Native) ProgramReset() int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if code, ok := n.enter("ProgramReset"); ok {
		return code
	}

	for i := range n.channels {
		c := &n.channels[i]
		c.preset = n.lookup(c.sfont, c.bank, c.program)
	}

	return 0
}

func (n *Native) SystemReset() int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if code, ok := n.enter("SystemReset"); ok {
		return code
	}

	for i := range n.channels {
		n.channels[i] = channel{}
	}

	return 0
}

func (n *Native) WriteFloat(left, right []float32) int32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if code, ok := n.enter("WriteFloat"); ok {
		return code
	}

	if len(left) != len(right) {
		return n.fail("Output buffers differ in length")
	}

	clear(left)
	clear(right)

	return 0
}

func (n *Native) SampleRate() int {
	return n.rate
}

func (n *Native) Delete() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.calls = append(n.calls, "Delete")
	n.deleted = true
	n.fonts = nil
}

// lookup finds a preset, in font id or, when id is zero, in the first font of
// the stack holding it. Callers hold n.mu.
func (n *Native) lookup(id ffi.FontID, bank ffi.Bank, num ffi.PresetID) *ffi.Preset {
	for _, sf := range n.fonts {
		if id != 0 && sf.ID != id {
			continue
		}
		if sf.GetPreset == nil {
			continue
		}
		if p := sf.GetPreset(sf, bank, num); p != nil {
			return p
		}
	}

	return nil
}
