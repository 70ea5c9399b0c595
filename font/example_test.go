// SPDX-License-Identifier: EPL-2.0

package font_test

import (
	"fmt"

	"github.com/ik5/fluidfont/font"
	"github.com/ik5/fluidfont/internal/fonttest"
)

func ExampleFontRef() {
	ref := font.NewFontRef(fonttest.GeneralMIDI(1, "gm.sf2"), nil)

	name, _ := ref.Name()
	fmt.Printf("font %d: %s\n", ref.ID(), name)

	if p, ok := ref.Preset(128, 0); ok {
		pname, _ := p.Name()
		bank, _ := p.BankNum()
		num, _ := p.Num()
		fmt.Printf("%03d-%03d %s\n", bank, num, pname)
	}

	if _, ok := ref.Preset(5, 5); !ok {
		fmt.Println("no preset at 005-005")
	}
	// Output:
	// font 1: gm.sf2
	// 128-000 Standard Kit
	// no preset at 005-005
}
