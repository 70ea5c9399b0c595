// SPDX-License-Identifier: EPL-2.0

//go:build headless

package main

import (
	"errors"

	"github.com/ik5/fluidfont/pcm"
)

func play(pcm.Source) error {
	return errors.New("play is not available in headless builds")
}
