// SPDX-License-Identifier: EPL-2.0

//go:build fluidlite

package fluidlite

import "errors"

var (
	ErrSettings = errors.New("fluidlite rejected a setting")
	ErrCreate   = errors.New("fluidlite could not create a synthesizer")
)
