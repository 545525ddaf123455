// SPDX-License-Identifier: EPL-2.0

package wav

import "fmt"

// pcmFormat is the WAVE_FORMAT_PCM format tag.
const pcmFormat = 1

// Params describes the layout of the PCM data handed to the writers.
type Params struct {
	Channels    int
	SampleWidth int // bytes per sample, only 2 is supported
	SampleRate  int
}

// Mono16 returns the parameters of a mono 16-bit stream at rate.
func Mono16(rate int) Params {
	return Params{Channels: 1, SampleWidth: 2, SampleRate: rate}
}

func (p Params) Validate() error {
	switch {
	case p.Channels < 1 || p.Channels > 0xffff:
		return fmt.Errorf("%w: %d channels", ErrUnsupportedParams, p.Channels)
	case p.SampleWidth != 2:
		return fmt.Errorf("%w: sample width %d bytes", ErrUnsupportedParams, p.SampleWidth)
	case p.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrUnsupportedParams, p.SampleRate)
	}
	return nil
}

// BlockAlign is the size in bytes of one frame.
func (p Params) BlockAlign() int { return p.Channels * p.SampleWidth }

func (p Params) BitDepth() int { return p.SampleWidth * 8 }
