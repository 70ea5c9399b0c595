// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"io"
)

// Resampler converts a Source to another sample rate with cubic
// interpolation. N input frames become ceil(N * dstRate / srcRate) output
// frames.
type Resampler struct {
	src     Source
	ch      int
	rate    int
	srcRate int

	// hist holds the frames at cur-1, cur, cur+1 and cur+2.
	hist   [4][]float32
	cur    int
	out    int // output frames produced
	primed bool

	in     []float32
	inPos  int
	inLen  int
	read   int // input frames taken from in
	srcEOF bool
	total  int // input frame count, -1 until known
}

func NewResampler(src Source, dstRate int) *Resampler {
	ch := max(src.Channels(), 1)

	r := &Resampler{
		src:     src,
		ch:      ch,
		rate:    dstRate,
		srcRate: src.SampleRate(),
		in:      make([]float32, 1024*ch),
		total:   -1,
	}

	for i := range r.hist {
		r.hist[i] = make([]float32, ch)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.ch }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// nextFrame copies the next input frame into dst. It reports false once the
// input is exhausted.
func (r *Resampler) nextFrame(dst []float32) (bool, error) {
	for empty := 0; r.inPos >= r.inLen; empty++ {
		if r.srcEOF {
			if r.total < 0 {
				r.total = r.read
			}
			return false, nil
		}

		if empty > 100 {
			return false, io.ErrNoProgress
		}

		n, err := r.src.ReadSamples(r.in)
		r.inPos, r.inLen = 0, n-n%r.ch

		if err == io.EOF {
			r.srcEOF = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}
	}

	copy(dst, r.in[r.inPos:r.inPos+r.ch])
	r.inPos += r.ch
	r.read++

	return true, nil
}

// fill loads hist[i] from the input, repeating hist[i-1] past the end.
func (r *Resampler) fill(i int) error {
	ok, err := r.nextFrame(r.hist[i])
	if err != nil {
		return err
	}

	if !ok && i > 0 {
		copy(r.hist[i], r.hist[i-1])
	}

	return nil
}

func (r *Resampler) prime() error {
	r.primed = true

	if err := r.fill(1); err != nil {
		return err
	}
	copy(r.hist[0], r.hist[1])

	if err := r.fill(2); err != nil {
		return err
	}

	return r.fill(3)
}

func (r *Resampler) advance() error {
	r.hist[0], r.hist[1], r.hist[2], r.hist[3] = r.hist[1], r.hist[2], r.hist[3], r.hist[0]
	r.cur++

	return r.fill(3)
}

func (r *Resampler) done() bool {
	return r.total >= 0 && r.cur >= r.total
}

func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.ch != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.ch
	written := 0

	for written < frames {
		// Output frame out sits at input position out*srcRate/rate.
		at := int64(r.out) * int64(r.srcRate)
		for int64(r.cur) < at/int64(r.rate) {
			if err := r.advance(); err != nil {
				return written * r.ch, err
			}
		}

		if r.done() {
			break
		}

		x := float32(at%int64(r.rate)) / float32(r.rate)
		out := dst[written*r.ch : (written+1)*r.ch]
		for c := range out {
			out[c] = CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], x)
		}

		written++
		r.out++
	}

	if written == 0 && r.done() {
		return 0, io.EOF
	}

	return written * r.ch, nil
}
