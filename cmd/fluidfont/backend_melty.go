// SPDX-License-Identifier: EPL-2.0

//go:build !fluidlite

package main

import (
	"log"

	"github.com/ik5/fluidfont/backend/melty"
	"github.com/ik5/fluidfont/synth"
)

const backendName = "melty"

func newNative(s synth.Settings, logger *log.Logger) (synth.Native, error) {
	return melty.New(s, melty.WithLogger(logger))
}
