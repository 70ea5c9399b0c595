// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	ErrInvalidDstSize      = errors.New("dst size must be multiple of channels")
	ErrUnknownFormat       = errors.New("no decoder registered for format")
	ErrNotWAV              = errors.New("not a WAV file")
	ErrNotAIFF             = errors.New("not an AIFF file")
	ErrUnsupportedEncoding = errors.New("only integer PCM is supported")
	ErrUnsupportedBitDepth = errors.New("only 16, 24 and 32-bit PCM are supported")
)
