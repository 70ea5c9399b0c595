// SPDX-License-Identifier: EPL-2.0

package samplefont

import "errors"

var (
	ErrNoSamples        = errors.New("directory has no decodable samples")
	ErrDuplicatePreset  = errors.New("two samples claim the same program number")
	ErrPresetOutOfRange = errors.New("program number must be between 0 and 127")
	ErrBankOutOfRange   = errors.New("bank number must be between 0 and 16383")
)
