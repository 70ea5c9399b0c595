// SPDX-License-Identifier: EPL-2.0

//go:build !fontdebug

package font

// assertLive is a no-op when building without the fontdebug tag.
func assertLive(*Scope) {}
