// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/mmlwav/utils"
)

// maxEmptyReads bounds how often a source may return no data without an error.
const maxEmptyReads = 64

// Resampler streams from src to target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// A one-pole low-pass is applied to the input when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames per output frame
	channels int

	// window[1] and window[2] bracket the output position; window[0] and
	// window[3] are the outer spline points.
	window [4][]float32
	filled [4]bool
	primed bool
	eof    bool

	// fractional position between window[1] and window[2]
	pos float64

	lowPass  bool
	alpha    float32
	lpState  []float32
	lpPrimed bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		lowPass:  step > 1.0,
		alpha:    0.5,
		lpState:  make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// fetch reads one frame into dst. It reports false once the source is drained.
func (r *Resampler) fetch(dst []float32) (bool, error) {
	for range maxEmptyReads {
		if r.eof {
			return false, nil
		}

		n, err := r.src.ReadSamples(dst)
		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}

		if n < r.channels {
			continue
		}

		if r.lowPass {
			if !r.lpPrimed {
				// start from the first frame to avoid a warm-up transient
				copy(r.lpState, dst)
				r.lpPrimed = true
			}
			for c := range r.channels {
				dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.lpState[c]
				r.lpState[c] = dst[c]
			}
		}

		return true, nil
	}

	return false, io.ErrNoProgress
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.fetch(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}

	// duplicate the first frame as the leading edge
	copy(r.window[0], r.window[1])
	r.filled[0], r.filled[1] = true, true

	for i := 2; i < len(r.window); i++ {
		ok, err := r.fetch(r.window[i])
		if err != nil {
			return err
		}
		r.filled[i] = ok
		if !ok {
			copy(r.window[i], r.window[i-1])
		}
	}

	return nil
}

// advance shifts the window one source frame forward.
func (r *Resampler) advance() error {
	oldest := r.window[0]
	r.window[0], r.window[1], r.window[2] = r.window[1], r.window[2], r.window[3]
	r.filled[0], r.filled[1], r.filled[2] = r.filled[1], r.filled[2], r.filled[3]
	r.window[3] = oldest

	ok, err := r.fetch(r.window[3])
	if err != nil {
		return err
	}
	r.filled[3] = ok
	if !ok {
		// repeat the trailing edge
		copy(r.window[3], r.window[2])
	}

	return nil
}

// ReadSamples produces dst samples at the target rate.
// dst length should be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.dstRate <= 0 {
		return 0, ErrInvalidSampleRate
	}
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.filled[2] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
