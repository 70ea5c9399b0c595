// SPDX-License-Identifier: EPL-2.0

package ffi

import (
	"bytes"
	"testing"
)

func TestGoString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ptr    *byte
		want   string
		wantOK bool
	}{
		{"nil pointer", nil, "", false},
		{"empty", CString(""), "", true},
		{"ascii", CString("Grand Piano"), "Grand Piano", true},
		{"utf8", CString("Flûte à bec"), "Flûte à bec", true},
		{"invalid utf8", CBytes([]byte{0xff, 0xfe, 0x41}), "", false},
		{"embedded nul", CBytes([]byte("Strings\x00Ensemble")), "Strings", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := GoString(tt.ptr)
			if ok != tt.wantOK {
				t.Fatalf("GoString() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("GoString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGoBytes_AliasesSource(t *testing.T) {
	t.Parallel()

	p := CString("Organ")
	b := GoBytes(p)

	if !bytes.Equal(b, []byte("Organ")) {
		t.Fatalf("GoBytes() = %q, want %q", b, "Organ")
	}

	if &b[0] != p {
		t.Error("GoBytes() copied the native string, want an alias")
	}
}

func TestGoBytes_Nil(t *testing.T) {
	t.Parallel()

	if b := GoBytes(nil); b != nil {
		t.Errorf("GoBytes(nil) = %v, want nil", b)
	}
}
