// SPDX-License-Identifier: EPL-2.0

//go:build fontdebug

package font

import "fmt"

// assertLive panics when s has been closed.
func assertLive(s *Scope) {
	if !s.Alive() {
		panic(fmt.Errorf("%w: %s", ErrStaleRef, s))
	}
}
