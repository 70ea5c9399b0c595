// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/fluidfont/internal/fonttest"
	"github.com/ik5/fluidfont/samplefont"
	"github.com/ik5/fluidfont/synth"
)

func noEnv(string) (string, bool) { return "", false }

func runCmd(t *testing.T, lookup func(string) (string, bool), args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr, lookup)

	return stdout.String(), stderr.String(), err
}

func TestRun_Usage(t *testing.T) {
	t.Parallel()

	t.Run("no command", func(t *testing.T) {
		_, _, err := runCmd(t, noEnv)
		assert.ErrorIs(t, err, errUsage)
	})

	t.Run("unknown command", func(t *testing.T) {
		_, _, err := runCmd(t, noEnv, "dance")
		assert.ErrorIs(t, err, errUsage)
		assert.Contains(t, err.Error(), `unknown command "dance"`)
	})

	t.Run("missing path", func(t *testing.T) {
		_, _, err := runCmd(t, noEnv, "list")
		assert.ErrorIs(t, err, errUsage)
	})

	t.Run("help", func(t *testing.T) {
		_, stderr, err := runCmd(t, noEnv, "render", "-h")
		assert.ErrorIs(t, err, flag.ErrHelp)
		for _, f := range []string{"-bank", "-program", "-key", "-hold", "-mono", "-o"} {
			assert.Contains(t, stderr, f, "should document flag %s", f)
		}
	})
}

func TestList_MissingFont(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.sf2")

	_, _, err := runCmd(t, noEnv, "list", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, synth.ErrFluid)
	assert.Equal(t, `Failed to load SoundFont "`+path+`"`, err.Error())
}

func TestRender_InvalidSettings(t *testing.T) {
	t.Parallel()

	env := func(key string) (string, bool) {
		if key == synth.EnvGain {
			return "42", true
		}
		return "", false
	}

	_, _, err := runCmd(t, env, "render", "font.sf2")
	assert.ErrorIs(t, err, synth.ErrInvalidGain)

	// A flag overrides the environment.
	_, _, err = runCmd(t, env, "render", "-gain", "0.5", filepath.Join(t.TempDir(), "font.sf2"))
	assert.ErrorIs(t, err, synth.ErrFluid)
}

func TestSamples(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string][]int16{
		"000-kick.wav":  {1, 2, 3, 4},
		"005-snare.wav": {1, 2},
		"readme.txt":    nil,
	}
	for name, samples := range files {
		data := []byte("text")
		if samples != nil {
			data = fonttest.WAV(22050, 1, samples)
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o600))
	}

	stdout, _, err := runCmd(t, noEnv, "samples", "-bank", "3", dir)
	require.NoError(t, err)

	assert.Contains(t, stdout, "2 samples in bank 3")
	assert.Contains(t, stdout, "000 kick")
	assert.Contains(t, stdout, "005 snare")
	assert.NotContains(t, stdout, "readme")
}

func TestSamples_BankOutOfRange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000-kick.wav"), fonttest.WAV(22050, 1, []int16{1, 2}), 0o600))

	// 2^32+3 would wrap to bank 3 if narrowed before the range check.
	for _, bank := range []uint64{samplefont.MaxBank + 1, math.MaxUint32 + 4} {
		stdout, _, err := runCmd(t, noEnv, "samples", "-bank", strconv.FormatUint(bank, 10), dir)
		assert.ErrorIs(t, err, samplefont.ErrBankOutOfRange, "bank %d", bank)
		assert.Empty(t, stdout, "bank %d", bank)
	}
}

func TestRender_ProgramOutOfRange(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "font.sf2")
	_, _, err := runCmd(t, noEnv, "render", "-program", strconv.FormatUint(math.MaxUint32+1, 10), path)
	assert.ErrorIs(t, err, errUsage)
}

func TestSettingsFlags(t *testing.T) {
	t.Parallel()

	var sf synthFlags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	sf.register(fs)
	require.NoError(t, fs.Parse([]string{"-rate", "22050", "-polyphony", "64", "-no-effects"}))

	s, err := sf.settings(noEnv)
	require.NoError(t, err)

	want := synth.DefaultSettings()
	want.SampleRate = 22050
	want.Polyphony = 64
	want.Effects = false
	assert.Equal(t, want, s)
}

func TestSourceReader(t *testing.T) {
	t.Parallel()

	r := &sourceReader{src: fonttest.NewConstantSource(8000, 2, 3, 0.25)}

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Len(t, data, 3*2*4)

	for i := 0; i < len(data); i += 4 {
		v := math.Float32frombits(binary.LittleEndian.Uint32(data[i:]))
		assert.Equal(t, float32(0.25), v)
	}
}
