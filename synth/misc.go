// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"unicode/utf8"

	"github.com/ik5/fluidfont/ffi"
)

// error returns the native error text. The native side guarantees a valid
// string; anything else is a broken contract and panics.
func (s *Synth) error() string {
	p := s.native.Error()
	if p == nil {
		panic("synth: native error text is a null pointer")
	}

	b := ffi.GoBytes(p)
	if !utf8.Valid(b) {
		panic(fmt.Sprintf("synth: native error text is not UTF-8: %q", b))
	}

	return string(b)
}

// negErr treats a negative code as failure and passes anything else through.
func (s *Synth) negErr(ret int32) (int32, error) {
	if ret < 0 {
		return 0, &Error{Msg: s.error()}
	}

	return ret, nil
}

// zeroOK treats any code but zero as failure.
func (s *Synth) zeroOK(ret int32) error {
	if ret != 0 {
		return &Error{Msg: s.error()}
	}

	return nil
}
