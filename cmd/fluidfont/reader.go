// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/ik5/fluidfont/pcm"
)

// sourceReader serves a Source as little-endian float32 bytes.
type sourceReader struct {
	src pcm.Source
	buf []float32
}

func (r *sourceReader) Read(p []byte) (int, error) {
	ch := max(r.src.Channels(), 1)
	n := len(p) / 4 / ch * ch
	if n == 0 {
		return 0, nil
	}

	if cap(r.buf) < n {
		r.buf = make([]float32, n)
	}

	got, err := r.src.ReadSamples(r.buf[:n])
	for i, v := range r.buf[:got] {
		binary.LittleEndian.PutUint32(p[4*i:], math.Float32bits(v))
	}

	if got == 0 && err == nil {
		return 0, io.ErrNoProgress
	}

	return 4 * got, err
}
