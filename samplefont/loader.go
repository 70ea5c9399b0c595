// SPDX-License-Identifier: EPL-2.0

package samplefont

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"
	"strconv"
	"strings"

	"github.com/ik5/fluidfont/ffi"
	"github.com/ik5/fluidfont/pcm"
)

const maxProgram = 127

// MaxBank is the highest bank Load accepts.
const MaxBank = 16383

type Loader struct {
	fsys     fs.FS
	registry *pcm.Registry
	logger   *log.Logger
}

type Option func(*Loader)

func WithLogger(l *log.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithRegistry replaces the decoders used to read sample files.
func WithRegistry(r *pcm.Registry) Option {
	return func(ld *Loader) {
		if r != nil {
			ld.registry = r
		}
	}
}

func NewLoader(fsys fs.FS, opts ...Option) *Loader {
	ld := &Loader{
		fsys:     fsys,
		registry: pcm.DefaultRegistry(),
		logger:   log.New(io.Discard, "", 0),
	}

	for _, opt := range opts {
		opt(ld)
	}

	return ld
}

// Load reads every sample in dir into a font whose presets all sit in bank.
// Files without a registered decoder are skipped.
func (ld *Loader) Load(dir string, bank ffi.Bank) (*Font, error) {
	if bank > MaxBank {
		return nil, fmt.Errorf("%w: %d", ErrBankOutOfRange, bank)
	}

	entries, err := fs.ReadDir(ld.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	f := newFont(path.Base(dir), bank)

	var loose []*Sample

	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}

		dec, ok := ld.registry.ForFile(e.Name())
		if !ok {
			ld.logger.Printf("skipping %s: %v", e.Name(), pcm.ErrUnknownFormat)
			continue
		}

		num, name, numbered, err := parseName(e.Name())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}

		s, err := ld.readSample(path.Join(dir, e.Name()), name, dec)
		if err != nil {
			return nil, err
		}

		if !numbered {
			loose = append(loose, s)
			continue
		}

		if _, taken := f.samples[num]; taken {
			return nil, fmt.Errorf("%w: %d (%s)", ErrDuplicatePreset, num, e.Name())
		}
		f.add(num, s)
	}

	// Unnumbered samples fill the gaps in directory order.
	next := ffi.PresetID(0)
	for _, s := range loose {
		for ; next <= maxProgram; next++ {
			if _, taken := f.samples[next]; !taken {
				break
			}
		}
		if next > maxProgram {
			return nil, fmt.Errorf("%w: no free program for %s", ErrPresetOutOfRange, s.Name)
		}

		f.add(next, s)
	}

	if f.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSamples, dir)
	}

	ld.logger.Printf("loaded %d samples from %s into bank %d", f.Len(), dir, bank)

	return f, nil
}

func (ld *Loader) readSample(name, presetName string, dec pcm.Decoder) (*Sample, error) {
	r, err := ld.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer r.Close()

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	defer src.Close()

	data, err := pcm.ReadAll(src, 4096)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	ch := max(src.Channels(), 1)

	return &Sample{
		Name:     presetName,
		Rate:     src.SampleRate(),
		Channels: ch,
		Frames:   len(data) / ch,
		Data:     data,
	}, nil
}

// parseName splits "012-flute.wav" into (12, "flute", true). Names without a
// numeric prefix keep their base name and report numbered = false.
func parseName(file string) (num ffi.PresetID, name string, numbered bool, err error) {
	base := strings.TrimSuffix(file, path.Ext(file))

	prefix, rest, found := strings.Cut(base, "-")
	if !found || prefix == "" || rest == "" {
		return 0, base, false, nil
	}

	n, convErr := strconv.Atoi(prefix)
	if convErr != nil {
		return 0, base, false, nil
	}

	if n < 0 || n > maxProgram {
		return 0, "", false, fmt.Errorf("%w: %d", ErrPresetOutOfRange, n)
	}

	return ffi.PresetID(n), rest, true, nil
}
