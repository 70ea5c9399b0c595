// SPDX-License-Identifier: EPL-2.0

package font

import "sync/atomic"

// Scope bounds the validity of the refs derived from one native object.
//
// A nil *Scope is never closed. It is used for tables whose owner outlives
// every ref, such as a custom font held by the caller.
type Scope struct {
	label  string
	closed atomic.Bool
}

// NewScope returns an open scope. label shows up in stale-ref panics.
func NewScope(label string) *Scope {
	return &Scope{label: label}
}

// Close marks the scope, and every ref bound to it, as stale. Closing twice is
// harmless.
func (s *Scope) Close() {
	if s == nil {
		return
	}

	s.closed.Store(true)
}

// Alive reports whether refs bound to s may still be used.
func (s *Scope) Alive() bool {
	return s == nil || !s.closed.Load()
}

func (s *Scope) String() string {
	if s == nil {
		return "static"
	}

	return s.label
}
