// SPDX-License-Identifier: EPL-2.0

// Package fluidlite binds the C fluidlite library as a native synthesizer
// for synth.Synth. It is compiled only with the fluidlite build tag and
// needs the library and its pkg-config file installed:
//
//	go build -tags fluidlite ./...
//
// Font and preset structs returned by the library are mirrored into ffi
// tables whose function pointers call back into C. Mirrors are cached per C
// pointer so that the same native font always yields the same table.
package fluidlite
