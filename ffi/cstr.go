// SPDX-License-Identifier: EPL-2.0

package ffi

import (
	"unicode/utf8"
	"unsafe"
)

// GoBytes returns the bytes of the NUL-terminated string starting at p,
// without the terminator. The result aliases the native memory.
func GoBytes(p *byte) []byte {
	if p == nil {
		return nil
	}

	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}

	return unsafe.Slice(p, n)
}

// GoString decodes the NUL-terminated string at p. It reports false for a nil
// pointer or when the bytes are not valid UTF-8.
func GoString(p *byte) (string, bool) {
	if p == nil {
		return "", false
	}

	b := GoBytes(p)
	if !utf8.Valid(b) {
		return "", false
	}

	return string(b), true
}

// CString returns a pointer to a NUL-terminated copy of s.
func CString(s string) *byte {
	buf := make([]byte, len(s)+1)
	copy(buf, s)

	return &buf[0]
}

// CBytes is CString for raw bytes. Bytes after an embedded NUL are not
// visible to GoBytes.
func CBytes(b []byte) *byte {
	buf := make([]byte, len(b)+1)
	copy(buf, b)

	return &buf[0]
}
