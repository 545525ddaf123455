// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/mmlwav/audio"
)

// go-mp3 always produces interleaved stereo, 16-bit little-endian.
const outputChannels = 2

// mp3Reader is the part of *gomp3.Decoder the source needs.
type mp3Reader interface {
	io.Reader
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	done       bool
}

func newSource(dec mp3Reader) *source {
	return &source{dec: dec, sampleRate: dec.SampleRate(), buf: make([]byte, 8192)}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return outputChannels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}

	n, err := io.ReadFull(s.dec, s.buf[:need])
	switch err {
	case nil:
	case io.EOF, io.ErrUnexpectedEOF:
		s.done = true
	default:
		return 0, fmt.Errorf("decoding mp3: %w", err)
	}

	// a dangling odd byte at the very end is dropped
	samples := n / 2
	for i := range samples {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))) / 32768.0
	}

	if s.done {
		return samples, io.EOF
	}
	return samples, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}
	return newSource(dec), nil
}
