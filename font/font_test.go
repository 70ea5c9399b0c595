// SPDX-License-Identifier: EPL-2.0

package font

import (
	"errors"
	"testing"

	"github.com/ik5/fluidfont/ffi"
	"github.com/ik5/fluidfont/internal/fonttest"
)

func TestFontRef_ID(t *testing.T) {
	t.Parallel()

	ref := NewFontRef(fonttest.BareFont(7), nil)

	if got := ref.ID(); got != 7 {
		t.Errorf("ID() = %d, want 7", got)
	}
}

func TestFontRef_Name(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		sf     *ffi.SFont
		want   string
		wantOK bool
	}{
		{
			name:   "named font",
			sf:     fonttest.NewFont(1, "FluidR3_GM.sf2"),
			want:   "FluidR3_GM.sf2",
			wantOK: true,
		},
		{
			name:   "no name function",
			sf:     fonttest.BareFont(1),
			wantOK: false,
		},
		{
			name: "invalid utf8",
			sf: &ffi.SFont{
				GetName: func(*ffi.SFont) *byte { return ffi.CBytes([]byte{0xc3, 0x28}) },
			},
			wantOK: false,
		},
		{
			name: "null name",
			sf: &ffi.SFont{
				GetName: func(*ffi.SFont) *byte { return nil },
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := NewFontRef(tt.sf, nil).Name()
			if ok != tt.wantOK {
				t.Fatalf("Name() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFontRef_NameCalledWithOwnHandle(t *testing.T) {
	t.Parallel()

	var seen []*ffi.SFont
	sf := &ffi.SFont{
		GetName: func(h *ffi.SFont) *byte {
			seen = append(seen, h)
			return ffi.CString("Piano")
		},
	}

	NewFontRef(sf, nil).Name()

	if len(seen) != 1 || seen[0] != sf {
		t.Errorf("GetName called with %v, want exactly [%p]", seen, sf)
	}
}

func TestFontRef_PresetWithoutLookup(t *testing.T) {
	t.Parallel()

	ref := NewFontRef(fonttest.BareFont(1), nil)

	for bank := Bank(0); bank <= 128; bank += 16 {
		for num := PresetID(0); num < 128; num += 9 {
			if _, ok := ref.Preset(bank, num); ok {
				t.Fatalf("Preset(%d, %d) ok = true, want false", bank, num)
			}
		}
	}
}

func TestFontRef_Preset(t *testing.T) {
	t.Parallel()

	sf := fonttest.GeneralMIDI(3, "gm.sf2")
	scope := NewScope("gm.sf2")
	ref := NewFontRef(sf, scope)

	p, ok := ref.Preset(0, 48)
	if !ok {
		t.Fatal("Preset(0, 48) ok = false, want true")
	}

	if name, _ := p.Name(); name != "String Ensemble 1" {
		t.Errorf("Preset(0, 48).Name() = %q, want %q", name, "String Ensemble 1")
	}

	if p.Lifetime() != scope {
		t.Error("preset does not share the font scope")
	}

	if _, ok := ref.Preset(0, 49); ok {
		t.Error("Preset(0, 49) ok = true, want false for missing preset")
	}
}

func TestFontRef_PresetCalledWithArguments(t *testing.T) {
	t.Parallel()

	type call struct {
		h    *ffi.SFont
		bank ffi.Bank
		num  ffi.PresetID
	}

	var got call
	sf := &ffi.SFont{}
	sf.GetPreset = func(h *ffi.SFont, bank ffi.Bank, num ffi.PresetID) *ffi.Preset {
		got = call{h, bank, num}
		return nil
	}

	NewFontRef(sf, nil).Preset(128, 25)

	want := call{sf, 128, 25}
	if got != want {
		t.Errorf("GetPreset called with %+v, want %+v", got, want)
	}
}

func TestPresetRef_Name(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		p      *ffi.Preset
		want   string
		wantOK bool
	}{
		{"named", fonttest.NewPreset("Rock Organ", 0, 18), "Rock Organ", true},
		{"no name function", fonttest.BarePreset(), "", false},
		{
			"invalid utf8",
			&ffi.Preset{GetName: func(*ffi.Preset) *byte { return ffi.CBytes([]byte{0xff}) }},
			"",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := NewPresetRef(tt.p, nil).Name()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Name() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestPresetRef_Numbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      int32
		want     uint32
		wantSome bool
	}{
		{"minus one", -1, 0, false},
		{"most negative", -2147483648, 0, false},
		{"zero", 0, 0, true},
		{"positive", 42, 42, true},
		{"drum bank", 128, 128, true},
		{"largest", 2147483647, 2147483647, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ref := NewPresetRef(fonttest.NewPreset("x", tt.raw, tt.raw), nil)

			bank, ok := ref.BankNum()
			if ok != tt.wantSome || uint32(bank) != tt.want {
				t.Errorf("BankNum() = (%d, %v), want (%d, %v)", bank, ok, tt.want, tt.wantSome)
			}

			num, ok := ref.Num()
			if ok != tt.wantSome || uint32(num) != tt.want {
				t.Errorf("Num() = (%d, %v), want (%d, %v)", num, ok, tt.want, tt.wantSome)
			}
		})
	}
}

func TestPresetRef_NumbersWithoutFunctions(t *testing.T) {
	t.Parallel()

	ref := NewPresetRef(fonttest.BarePreset(), nil)

	if _, ok := ref.BankNum(); ok {
		t.Error("BankNum() ok = true, want false")
	}
	if _, ok := ref.Num(); ok {
		t.Error("Num() ok = true, want false")
	}
}

func TestPresetRef_HandleRoundTrip(t *testing.T) {
	t.Parallel()

	p := fonttest.NewPreset("Choir Aahs", 0, 52)

	if got := NewPresetRef(p, nil).Handle(); got != p {
		t.Errorf("Handle() = %p, want %p", got, p)
	}
}

func TestNewRef_NilHandlePanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"font", func() { NewFontRef(nil, nil) }},
		{"preset", func() { NewPresetRef(nil, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrNilHandle) {
					t.Errorf("recovered %v, want ErrNilHandle", r)
				}
			}()

			tt.fn()
		})
	}
}

func TestScope(t *testing.T) {
	t.Parallel()

	scope := NewScope("font 1")
	ref := NewFontRef(fonttest.BareFont(1), scope)

	if !ref.Valid() {
		t.Fatal("Valid() = false before Close")
	}

	scope.Close()
	scope.Close()

	if ref.Valid() {
		t.Error("Valid() = true after Close")
	}

	var static *Scope
	static.Close()
	if !static.Alive() {
		t.Error("nil scope reported closed")
	}
}

// ownedFont holds its native tables directly, like a custom loader would.
type ownedFont struct {
	sf ffi.SFont
}

func (o *ownedFont) Handle() *ffi.SFont { return &o.sf }
func (o *ownedFont) Lifetime() *Scope   { return nil }

func TestAsFont_CustomHandleType(t *testing.T) {
	t.Parallel()

	o := &ownedFont{sf: *fonttest.GeneralMIDI(9, "custom")}
	f := AsFont(o)

	if f.ID() != 9 {
		t.Errorf("ID() = %d, want 9", f.ID())
	}

	if name, ok := f.Name(); !ok || name != "custom" {
		t.Errorf("Name() = (%q, %v), want (%q, true)", name, ok, "custom")
	}

	p, ok := f.Preset(128, 0)
	if !ok {
		t.Fatal("Preset(128, 0) ok = false")
	}

	preset := AsPreset(p)
	if bank, _ := preset.BankNum(); bank != 128 {
		t.Errorf("BankNum() = %d, want 128", bank)
	}
}
