// SPDX-License-Identifier: EPL-2.0

package melty

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"slices"
	"sync"

	"github.com/sinshu/go-meltysynth/meltysynth"

	"github.com/ik5/fluidfont/ffi"
	"github.com/ik5/fluidfont/synth"
)

const (
	channels = 16
	drumBank = 128

	minPolyphony = 8
	maxPolyphony = 256
)

// entry is one font on the stack.
type entry struct {
	sf     *ffi.SFont
	path   string
	offset int32

	// sound is nil for fonts added with AddSFont.
	sound *meltysynth.SoundFont
	voice *meltysynth.Synthesizer
}

type channel struct {
	sfont   ffi.FontID
	bank    ffi.Bank
	program ffi.PresetID
	preset  *ffi.Preset
	cc      [128]int32
	bend    int32
}

// Engine implements synth.Native on top of go-meltysynth.
type Engine struct {
	mu sync.Mutex

	settings synth.Settings
	fsys     fs.FS
	logger   *log.Logger

	lastErr  *byte
	fonts    []*entry // index 0 is the top of the stack
	nextID   ffi.FontID
	channels [channels]channel

	bufL, bufR []float32
}

type Option func(*Engine)

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithFS makes SFLoad read SoundFont files from fsys instead of the OS.
func WithFS(fsys fs.FS) Option {
	return func(e *Engine) {
		e.fsys = fsys
	}
}

func New(settings synth.Settings, opts ...Option) (*Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if settings.SampleRate < 16000 || settings.SampleRate > 192000 {
		return nil, fmt.Errorf("%w: %d", ErrSampleRate, settings.SampleRate)
	}

	if settings.MIDIChannels != channels {
		return nil, fmt.Errorf("%w: %d", ErrMIDIChannels, settings.MIDIChannels)
	}

	e := &Engine{
		settings: settings,
		logger:   log.New(io.Discard, "", 0),
		lastErr:  ffi.CString(""),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.resetChannels()

	return e, nil
}

func (e *Engine) resetChannels() {
	for i := range e.channels {
		e.channels[i] = channel{}
		if i == 9 {
			e.channels[i].bank = drumBank
		}
	}
}

// fail stores the error text and returns the generic failure code. Callers
// hold e.mu.
func (e *Engine) fail(format string, args ...any) int32 {
	e.lastErr = ffi.CString(fmt.Sprintf(format, args...))
	return -1
}

func (e *Engine) Error() *byte {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.lastErr
}

func (e *Engine) SampleRate() int {
	return e.settings.SampleRate
}

func (e *Engine) find(id ffi.FontID) int {
	return slices.IndexFunc(e.fonts, func(f *entry) bool { return f.sf.ID == id })
}

func (e *Engine) channel(ch int32) (*channel, bool) {
	if ch < 0 || ch >= channels {
		e.fail("Channel number out of range (chan=%d)", ch)
		return nil, false
	}

	return &e.channels[ch], true
}

// lookup searches the stack top-down, or only font id when it is non-zero.
func (e *Engine) lookup(id ffi.FontID, bank ffi.Bank, num ffi.PresetID) *ffi.Preset {
	for _, f := range e.fonts {
		if id != 0 && f.sf.ID != id {
			continue
		}
		if f.sf.GetPreset == nil {
			continue
		}

		b := int64(bank) - int64(f.offset)
		if b < 0 {
			continue
		}

		if p := f.sf.GetPreset(f.sf, ffi.Bank(b), num); p != nil {
			return p
		}
	}

	return nil
}

func (e *Engine) readFile(path string) ([]byte, error) {
	if e.fsys != nil {
		return fs.ReadFile(e.fsys, path)
	}

	return os.ReadFile(path)
}

func (e *Engine) parse(path string) (*meltysynth.SoundFont, error) {
	data, err := e.readFile(path)
	if err != nil {
		return nil, err
	}

	sound, err := meltysynth.NewSoundFont(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing: %w", err)
	}

	return sound, nil
}

func (e *Engine) open(path string) (*entry, bool) {
	sound, err := e.parse(path)
	if err != nil {
		e.logger.Printf("loading %s: %v", path, err)
		e.fail("Failed to load SoundFont \"%s\"", path)
		return nil, false
	}

	e.nextID++
	sf := buildTables(path, sound.Presets)
	sf.ID = e.nextID

	f := &entry{sf: sf, path: path, sound: sound}
	sf.Data = f

	return f, true
}

func (e *Engine) SFLoad(filename string, resetPresets bool) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	f, ok := e.open(filename)
	if !ok {
		return -1
	}

	e.fonts = slices.Insert(e.fonts, 0, f)
	if resetPresets {
		e.programReset()
	}

	e.logger.Printf("font %d: %s (%d presets)", f.sf.ID, filename, len(f.sound.Presets))

	return int32(f.sf.ID)
}

func (e *Engine) SFReload(id ffi.FontID) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.find(id)
	if i < 0 {
		return e.fail("No SoundFont with id = %d", id)
	}

	old := e.fonts[i]
	if old.sound == nil {
		return e.fail("SoundFont %d was not loaded from a file", id)
	}

	f, ok := e.open(old.path)
	if !ok {
		return -1
	}
	f.offset = old.offset

	e.fonts[i] = f
	old.sf.Free(old.sf)

	for c := range e.channels {
		if e.channels[c].sfont == id {
			e.channels[c].sfont = f.sf.ID
		}
	}
	e.programReset()

	return int32(f.sf.ID)
}

// unlink removes the font at index i and clears channels that played it.
func (e *Engine) unlink(i int, resetPresets bool) *entry {
	f := e.fonts[i]
	e.fonts = slices.Delete(e.fonts, i, i+1)

	for c := range e.channels {
		ch := &e.channels[c]
		if ch.preset != nil && ch.preset.SFont == f.sf {
			ch.preset = nil
		}
	}

	if resetPresets {
		e.programReset()
	}

	return f
}

func (e *Engine) SFUnload(id ffi.FontID, resetPresets bool) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.find(id)
	if i < 0 {
		return e.fail("No SoundFont with id = %d", id)
	}

	f := e.unlink(i, resetPresets)
	if f.sf.Free != nil {
		if code := f.sf.Free(f.sf); code != 0 {
			e.logger.Printf("font %d: free returned %d", id, code)
		}
	}

	return 0
}

func (e *Engine) AddSFont(sf *ffi.SFont) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if sf == nil {
		return e.fail("Invalid SoundFont")
	}
	if slices.ContainsFunc(e.fonts, func(f *entry) bool { return f.sf == sf }) {
		return e.fail("SoundFont %d is already loaded", sf.ID)
	}

	e.nextID++
	sf.ID = e.nextID
	e.fonts = slices.Insert(e.fonts, 0, &entry{sf: sf})

	return int32(sf.ID)
}

func (e *Engine) RemoveSFont(sf *ffi.SFont) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := slices.IndexFunc(e.fonts, func(f *entry) bool { return f.sf == sf })
	if i < 0 {
		return e.fail("SoundFont is not loaded")
	}

	e.unlink(i, false)

	return 0
}

func (e *Engine) SFCount() int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return int32(len(e.fonts))
}

func (e *Engine) GetSFont(num uint32) *ffi.SFont {
	e.mu.Lock()
	defer e.mu.Unlock()

	if int(num) >= len(e.fonts) {
		return nil
	}

	return e.fonts[num].sf
}

func (e *Engine) GetSFontByID(id ffi.FontID) *ffi.SFont {
	e.mu.Lock()
	defer e.mu.Unlock()

	if i := e.find(id); i >= 0 {
		return e.fonts[i].sf
	}

	return nil
}

func (e *Engine) SetBankOffset(id ffi.FontID, offset int32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.find(id)
	if i < 0 {
		return e.fail("No SoundFont with id = %d", id)
	}

	e.fonts[i].offset = offset

	return 0
}

func (e *Engine) GetBankOffset(id ffi.FontID) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.find(id)
	if i < 0 {
		return e.fail("No SoundFont with id = %d", id)
	}

	return e.fonts[i].offset
}

func (e *Engine) Delete() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, f := range e.fonts {
		if f.sound != nil {
			f.sf.Free(f.sf)
		}
	}

	e.fonts = nil
	e.resetChannels()
}
