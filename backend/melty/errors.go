// SPDX-License-Identifier: EPL-2.0

package melty

import "errors"

var (
	ErrSampleRate   = errors.New("melty renders between 16000 and 192000 Hz")
	ErrMIDIChannels = errors.New("melty supports exactly 16 MIDI channels")
)
