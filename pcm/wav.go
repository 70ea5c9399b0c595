// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV drains src into w as 16-bit PCM WAV and returns the number of
// frames written. bufFrames sets how many frames are converted per write.
func WriteWAV(w io.WriteSeeker, src Source, bufFrames int) (int, error) {
	ch := max(src.Channels(), 1)
	bufFrames = max(bufFrames, 1)

	enc := wav.NewEncoder(w, src.SampleRate(), 16, ch, 1)

	in := make([]float32, bufFrames*ch)
	out := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: ch, SampleRate: src.SampleRate()},
		Data:           make([]int, len(in)),
		SourceBitDepth: 16,
	}

	frames := 0

	for {
		n, err := src.ReadSamples(in)
		if n > 0 {
			out.Data = out.Data[:n]
			for i, v := range in[:n] {
				out.Data[i] = int(Float32ToInt16(v))
			}

			if werr := enc.Write(out); werr != nil {
				return frames, fmt.Errorf("writing wav: %w", werr)
			}
			frames += n / ch
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return frames, fmt.Errorf("%w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return frames, fmt.Errorf("closing wav: %w", err)
	}

	return frames, nil
}
