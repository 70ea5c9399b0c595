// SPDX-License-Identifier: EPL-2.0

package font

import "errors"

var (
	// ErrNilHandle is the panic value when a ref is built from a nil handle.
	ErrNilHandle = errors.New("font: nil native handle")

	// ErrStaleRef is the panic value (fontdebug builds only) when a ref is
	// used after its scope was closed.
	ErrStaleRef = errors.New("font: reference used after its scope was closed")
)
