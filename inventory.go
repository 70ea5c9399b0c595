// SPDX-License-Identifier: EPL-2.0

package fluidfont

import (
	"fmt"

	"github.com/ik5/fluidfont/font"
)

// Highest bank and program probed by Inventory. Bank 128 is the General MIDI
// percussion bank.
const (
	MaxBank    font.Bank     = 128
	MaxProgram font.PresetID = 127
)

// PresetInfo describes one preset found in a font.
type PresetInfo struct {
	Bank font.Bank
	Num  font.PresetID
	Name string
}

func (p PresetInfo) String() string {
	return fmt.Sprintf("%03d-%03d %s", p.Bank, p.Num, p.Name)
}

// Inventory lists the presets of f ordered by bank and program. The font
// tables have no iteration entry, so every bank and program up to MaxBank
// and MaxProgram is probed.
func Inventory(f font.IsFont) []PresetInfo {
	var out []PresetInfo

	for bank := font.Bank(0); bank <= MaxBank; bank++ {
		for num := font.PresetID(0); num <= MaxProgram; num++ {
			p, ok := f.Preset(bank, num)
			if !ok {
				continue
			}

			name, ok := p.Name()
			if !ok {
				name = "?"
			}

			out = append(out, PresetInfo{Bank: bank, Num: num, Name: name})
		}
	}

	return out
}
