// SPDX-License-Identifier: EPL-2.0

package melty

import (
	"github.com/sinshu/go-meltysynth/meltysynth"

	"github.com/ik5/fluidfont/synth"
)

// WriteFloat mixes every font renderer into left and right. Gain is applied
// relative to the library default, which leaves go-meltysynth's own master
// volume untouched.
func (e *Engine) WriteFloat(left, right []float32) int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(left) != len(right) {
		return e.fail("Output buffers differ in length")
	}

	clear(left)
	clear(right)

	if len(left) == 0 {
		return 0
	}

	if cap(e.bufL) < len(left) {
		e.bufL = make([]float32, len(left))
		e.bufR = make([]float32, len(left))
	}
	bl, br := e.bufL[:len(left)], e.bufR[:len(left)]

	gain := e.settings.Gain / synth.DefaultSettings().Gain

	e.each(func(v *meltysynth.Synthesizer) {
		v.Render(bl, br)
		for i := range left {
			left[i] += bl[i] * gain
			right[i] += br[i] * gain
		}
	})

	return 0
}
