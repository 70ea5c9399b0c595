// SPDX-License-Identifier: EPL-2.0

//go:build fluidlite

package fluidlite

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/fluidfont/ffi"
	"github.com/ik5/fluidfont/font"
	"github.com/ik5/fluidfont/synth"
)

// soundFont returns the SF2 file named by FLUIDFONT_TEST_SF2.
func soundFont(t *testing.T) string {
	t.Helper()

	path := os.Getenv("FLUIDFONT_TEST_SF2")
	if path == "" {
		t.Skip("FLUIDFONT_TEST_SF2 not set")
	}

	return path
}

func newSynth(t *testing.T) *synth.Synth {
	t.Helper()

	e, err := New(synth.DefaultSettings())
	require.NoError(t, err)

	s := synth.New(e)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestLoadFailureMessage(t *testing.T) {
	s := newSynth(t)

	_, err := s.LoadFont("/nonexistent/font.sf2", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, synth.ErrFluid)
	assert.NotEmpty(t, err.Error())
}

func TestAddForeignTablesFails(t *testing.T) {
	s := newSynth(t)

	_, err := s.AddFont(&ffi.SFont{})
	require.Error(t, err)
	assert.Equal(t, "fluidlite only accepts fonts it created", err.Error())
}

func TestWriteFloatMismatch(t *testing.T) {
	s := newSynth(t)

	err := s.Write(make([]float32, 4), make([]float32, 8))
	require.Error(t, err)
	assert.Equal(t, "Output buffers differ in length", err.Error())
}

func TestLoadedFont(t *testing.T) {
	path := soundFont(t)
	s := newSynth(t)

	id, err := s.LoadFont(path, true)
	require.NoError(t, err)

	ref, ok := s.FontByID(id)
	require.True(t, ok)
	assert.Equal(t, id, ref.ID())

	again, ok := s.Font(0)
	require.True(t, ok)
	assert.Same(t, ref.Handle(), again.Handle(), "mirrors are cached per native font")

	p, ok := ref.Preset(0, 0)
	require.True(t, ok)

	bank, ok := p.BankNum()
	assert.True(t, ok)
	assert.Equal(t, font.Bank(0), bank)

	require.NoError(t, s.ProgramSelect(0, id, 0, 0))
	require.NoError(t, s.NoteOn(0, 60, 100))

	left := make([]float32, 1024)
	right := make([]float32, 1024)
	require.NoError(t, s.Write(left, right))

	require.NoError(t, s.UnloadFont(id, true))
	assert.False(t, ref.Valid())
}

func TestChannelPresetMirrorDropped(t *testing.T) {
	path := soundFont(t)

	e, err := New(synth.DefaultSettings())
	require.NoError(t, err)
	t.Cleanup(e.Delete)

	id := e.SFLoad(path, true)
	require.GreaterOrEqual(t, id, int32(0))
	require.Equal(t, int32(0), e.ProgramSelect(0, ffi.FontID(id), 0, 0))

	first := e.GetChannelPreset(0)
	require.NotNil(t, first)
	assert.Same(t, first, e.GetChannelPreset(0))

	e.ProgramChange(0, 0)
	assert.NotContains(t, e.presets, int32(0))

	e.GetChannelPreset(0)
	e.SystemReset()
	assert.Empty(t, e.presets)
}
