// SPDX-License-Identifier: EPL-2.0

//go:build fluidlite

package main

import (
	"log"

	"github.com/ik5/fluidfont/backend/fluidlite"
	"github.com/ik5/fluidfont/synth"
)

const backendName = "fluidlite"

func newNative(s synth.Settings, _ *log.Logger) (synth.Native, error) {
	return fluidlite.New(s)
}
