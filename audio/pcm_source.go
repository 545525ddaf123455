// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
)

// PCM16Source serves an in-memory interleaved int16 buffer as a Source.
// Samples are scaled by 1/32767, the inverse of utils.Quantize, so a
// quantized buffer survives the trip through a Source unchanged.
type PCM16Source struct {
	samples    []int16
	sampleRate int
	channels   int
	pos        int
}

// NewPCM16Source wraps samples. channels below 1 is treated as mono.
func NewPCM16Source(samples []int16, sampleRate, channels int) *PCM16Source {
	if channels < 1 {
		channels = 1
	}
	return &PCM16Source{
		samples:    samples,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (s *PCM16Source) SampleRate() int { return s.sampleRate }
func (s *PCM16Source) Channels() int   { return s.channels }
func (s *PCM16Source) BufSize() int    { return 4096 }
func (s *PCM16Source) Close() error    { return nil }

// ReadSamples writes whole frames only. The read that reaches the end of the
// buffer returns io.EOF together with the final samples.
func (s *PCM16Source) ReadSamples(dst []float32) (int, error) {
	remaining := len(s.samples) - s.pos
	if remaining <= 0 {
		return 0, io.EOF
	}

	n := min(len(dst), remaining)
	n -= n % s.channels

	for i, v := range s.samples[s.pos : s.pos+n] {
		dst[i] = float32(v) / math.MaxInt16
	}
	s.pos += n

	if s.pos >= len(s.samples) {
		return n, io.EOF
	}
	return n, nil
}
