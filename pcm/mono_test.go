// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"testing"

	"github.com/ik5/fluidfont/internal/fonttest"
)

func TestMonoMixer_AveragesChannels(t *testing.T) {
	t.Parallel()

	src := fonttest.NewSource(8000, 2, 100, func(_, ch int) float32 {
		if ch == 0 {
			return 1
		}
		return 0
	})
	m := NewMonoMixer(src)

	if m.Channels() != 1 {
		t.Fatalf("Channels() = %d, want 1", m.Channels())
	}

	out, err := ReadAll(m, 64)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if len(out) != 100 {
		t.Fatalf("got %d frames, want 100", len(out))
	}
	for i, v := range out {
		if v != 0.5 {
			t.Fatalf("out[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestMonoMixer_PassesMonoThrough(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(fonttest.NewConstantSource(8000, 1, 10, 0.75))

	out, err := ReadAll(m, 4)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if len(out) != 10 || out[9] != 0.75 {
		t.Errorf("ReadAll() = %v, want ten samples of 0.75", out)
	}
}
