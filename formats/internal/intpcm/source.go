// SPDX-License-Identifier: EPL-2.0

// Package intpcm adapts the go-audio integer PCM decoders to audio.Source.
package intpcm

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// Reader is the part of the go-audio wav and aiff decoders used for streaming.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source streams integer PCM from a Reader as float32 in [-1, 1].
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	scale      float32
	buf        *goaudio.IntBuffer
	done       bool
}

// New wraps dec. bitDepth selects the normalisation; unknown depths are
// treated as 16-bit.
func New(dec Reader, sampleRate, channels, bitDepth int) *Source {
	return &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   max(channels, 1),
		scale:      1 / fullScale(bitDepth),
	}
}

func fullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.buf != nil {
		return cap(s.buf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	if err == io.EOF {
		s.done = true
	} else if err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	// go-audio signals the end with an empty read
	if n == 0 {
		s.done = true
		return 0, io.EOF
	}

	n = min(n, len(dst))
	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v) * s.scale
	}

	if s.done {
		return n, io.EOF
	}
	return n, nil
}

// Seekable returns r as an io.ReadSeeker, buffering it in memory when it
// cannot seek on its own.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}
