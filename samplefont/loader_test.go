// SPDX-License-Identifier: EPL-2.0

package samplefont

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/ik5/fluidfont/ffi"
	"github.com/ik5/fluidfont/font"
	"github.com/ik5/fluidfont/internal/fonttest"
	"github.com/ik5/fluidfont/synth"
)

func wavFile(samples ...int16) *fstest.MapFile {
	return &fstest.MapFile{Data: fonttest.WAV(22050, 1, samples)}
}

func drumKit() fstest.MapFS {
	return fstest.MapFS{
		"kits/drums/036-kick.wav":  wavFile(100, 200, 300),
		"kits/drums/038-snare.wav": wavFile(1, 2),
		"kits/drums/clap.wav":      wavFile(5),
		"kits/drums/hat.wav":       wavFile(6, 7, 8, 9),
		"kits/drums/notes.txt":     &fstest.MapFile{Data: []byte("not audio")},
	}
}

func TestLoad_AssignsPrograms(t *testing.T) {
	t.Parallel()

	f, err := NewLoader(drumKit()).Load("kits/drums", 128)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if f.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", f.Len())
	}

	want := map[ffi.PresetID]string{0: "clap", 1: "hat", 36: "kick", 38: "snare"}
	for num, name := range want {
		s, ok := f.Sample(128, num)
		if !ok {
			t.Errorf("Sample(128, %d) missing", num)
			continue
		}
		if s.Name != name {
			t.Errorf("Sample(128, %d).Name = %q, want %q", num, s.Name, name)
		}
	}

	kick, _ := f.Sample(128, 36)
	if kick.Frames != 3 || kick.Rate != 22050 || kick.Channels != 1 {
		t.Errorf("kick = %d frames @ %d Hz / %d ch, want 3 @ 22050 / 1", kick.Frames, kick.Rate, kick.Channels)
	}

	if _, ok := f.Sample(0, 36); ok {
		t.Error("Sample(0, 36) found a preset outside the font's bank")
	}
}

func TestLoad_FontCapability(t *testing.T) {
	t.Parallel()

	f, err := NewLoader(drumKit()).Load("kits/drums", 128)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	sf := font.AsFont(f)

	if name, ok := sf.Name(); !ok || name != "drums" {
		t.Errorf("Name() = (%q, %v), want (drums, true)", name, ok)
	}

	p, ok := sf.Preset(128, 38)
	if !ok {
		t.Fatal("Preset(128, 38) not found")
	}

	if name, ok := p.Name(); !ok || name != "snare" {
		t.Errorf("preset Name() = (%q, %v), want (snare, true)", name, ok)
	}
	if bank, ok := p.BankNum(); !ok || bank != 128 {
		t.Errorf("BankNum() = (%d, %v), want (128, true)", bank, ok)
	}
	if num, ok := p.Num(); !ok || num != 38 {
		t.Errorf("Num() = (%d, %v), want (38, true)", num, ok)
	}

	if _, ok := sf.Preset(128, 99); ok {
		t.Error("Preset(128, 99) found an empty program")
	}
}

func TestLoad_AddToSynth(t *testing.T) {
	t.Parallel()

	f, err := NewLoader(drumKit()).Load("kits/drums", 128)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	s := synth.New(fonttest.NewNative())
	defer s.Close()

	id, err := s.AddFont(f.Handle())
	if err != nil {
		t.Fatalf("AddFont() error = %v", err)
	}

	ref, ok := s.FontByID(id)
	if !ok {
		t.Fatal("FontByID() did not find the added font")
	}
	if ref.Handle() != f.Handle() {
		t.Error("FontByID() returned a different table")
	}

	if err := s.ProgramSelect(9, id, 128, 36); err != nil {
		t.Fatalf("ProgramSelect() error = %v", err)
	}

	p, ok := s.ChannelPreset(9)
	if !ok {
		t.Fatal("ChannelPreset(9) empty")
	}
	if name, _ := p.Name(); name != "kick" {
		t.Errorf("channel preset = %q, want kick", name)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fsys    fstest.MapFS
		bank    ffi.Bank
		wantErr error
	}{
		{
			name: "duplicate program",
			fsys: fstest.MapFS{
				"d/001-a.wav": wavFile(1),
				"d/001-b.wav": wavFile(2),
			},
			wantErr: ErrDuplicatePreset,
		},
		{
			name:    "program out of range",
			fsys:    fstest.MapFS{"d/128-high.wav": wavFile(1)},
			wantErr: ErrPresetOutOfRange,
		},
		{
			name:    "no samples",
			fsys:    fstest.MapFS{"d/readme.md": &fstest.MapFile{Data: []byte("#")}},
			wantErr: ErrNoSamples,
		},
		{
			name:    "bank out of range",
			fsys:    drumKit(),
			bank:    20000,
			wantErr: ErrBankOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewLoader(tt.fsys).Load("d", tt.bank)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_BadSampleFails(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"d/broken.wav": &fstest.MapFile{Data: []byte("RIFF....")}}

	if _, err := NewLoader(fsys).Load("d", 0); err == nil {
		t.Error("Load() accepted a broken WAV file")
	}
}

func TestLoad_MissingDir(t *testing.T) {
	t.Parallel()

	if _, err := NewLoader(drumKit()).Load("nope", 0); err == nil {
		t.Error("Load() of a missing directory succeeded")
	}
}

func TestLoad_LogsSkippedFiles(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ld := NewLoader(drumKit(), WithLogger(log.New(&buf, "", 0)))

	if _, err := ld.Load("kits/drums", 0); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !strings.Contains(buf.String(), "skipping notes.txt") {
		t.Errorf("log = %q, want a line about notes.txt", buf.String())
	}
}

func TestFree_ReleasesSamples(t *testing.T) {
	t.Parallel()

	f, err := NewLoader(drumKit()).Load("kits/drums", 0)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if code := f.Handle().Free(f.Handle()); code != 0 {
		t.Fatalf("Free() = %d, want 0", code)
	}

	if f.Len() != 0 {
		t.Errorf("Len() after Free = %d, want 0", f.Len())
	}
	if _, ok := font.AsFont(f).Preset(0, 36); ok {
		t.Error("Preset() still found a program after Free")
	}
}

func TestParseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file     string
		num      ffi.PresetID
		name     string
		numbered bool
	}{
		{"000-piano.wav", 0, "piano", true},
		{"42-bass-guitar.ogg", 42, "bass-guitar", true},
		{"flute.aiff", 0, "flute", false},
		{"lead-synth.mp3", 0, "lead-synth", false},
		{"-x.wav", 0, "-x", false},
		{"7-.wav", 0, "7-", false},
	}

	for _, tt := range tests {
		num, name, numbered, err := parseName(tt.file)
		if err != nil {
			t.Errorf("parseName(%q) error = %v", tt.file, err)
			continue
		}
		if num != tt.num || name != tt.name || numbered != tt.numbered {
			t.Errorf("parseName(%q) = (%d, %q, %v), want (%d, %q, %v)",
				tt.file, num, name, numbered, tt.num, tt.name, tt.numbered)
		}
	}
}
