// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/mmlwav/audio"
)

// oggReader is the part of *oggvorbis.Reader the source needs. Read fills
// interleaved samples and reports how many it wrote.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	lastRead   int
}

func newSource(dec oggReader) *source {
	return &source{dec: dec, sampleRate: dec.SampleRate(), channels: max(dec.Channels(), 1)}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) BufSize() int {
	if s.lastRead > 0 {
		return s.lastRead
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	// whole frames only
	dst = dst[:len(dst)-len(dst)%s.channels]
	if len(dst) == 0 {
		return 0, nil
	}
	s.lastRead = len(dst)

	n, err := s.dec.Read(dst)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("decoding vorbis: %w", err)
	}
	if n == 0 && err == nil {
		return 0, io.ErrNoProgress
	}
	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotOggVorbisFile, err)
	}
	return newSource(dec), nil
}
