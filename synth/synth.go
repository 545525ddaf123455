// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/ik5/mmlwav/pitch"
	"github.com/ik5/mmlwav/utils"
)

// Result is a finished mono PCM stream.
type Result struct {
	Samples    []int16
	SampleRate int
	Channels   int
	BitDepth   int
}

// Frames is the number of sample frames in r.
func (r *Result) Frames() int {
	if r.Channels <= 0 {
		return 0
	}
	return len(r.Samples) / r.Channels
}

// Duration is the playback length of r.
func (r *Result) Duration() time.Duration {
	if r.SampleRate <= 0 {
		return 0
	}
	return time.Duration(r.Frames()) * time.Second / time.Duration(r.SampleRate)
}

// Bytes serialises the samples as little-endian signed 16-bit frames.
func (r *Result) Bytes() []byte {
	out := make([]byte, len(r.Samples)*2)
	for i, s := range r.Samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

// Synthesizer renders note sequences against a pitch table. It holds no
// per-run state and may be shared between goroutines.
type Synthesizer struct {
	table *pitch.Table
}

// New returns a Synthesizer using table, or the standard table when nil.
func New(table *pitch.Table) *Synthesizer {
	if table == nil {
		table = pitch.Standard()
	}
	return &Synthesizer{table: table}
}

// Synthesize renders seq at bpm with shape. Every note occupies the same
// number of samples, round(44100 * 60/bpm). Input is fully validated before
// any sample is produced.
func (s *Synthesizer) Synthesize(seq string, bpm float64, shape Shape) (*Result, error) {
	if shape == nil {
		return nil, fmt.Errorf("%w: no shape given", ErrInvalidWaveformKind)
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	notes, err := pitch.Parse(seq)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	freqs := make([]float64, len(notes))
	for i, n := range notes {
		if freqs[i], err = s.table.FrequencyOf(string(n)); err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	t, err := TimeAxis(bpm, SampleRate)
	if err != nil {
		return nil, err
	}

	per := len(t)
	if len(notes) > MaxSamples/per {
		return nil, fmt.Errorf("%w: %d notes at %v bpm exceed %d samples", ErrInvalidTempo, len(notes), bpm, MaxSamples)
	}

	// One allocation for the whole run; segments are written in place.
	buf := make([]float64, len(notes)*per)
	for i, f := range freqs {
		shape.Fill(buf[i*per:(i+1)*per], f, t)
	}

	pcm := make([]int16, len(buf))
	utils.QuantizeAll(pcm, buf)

	return &Result{
		Samples:    pcm,
		SampleRate: SampleRate,
		Channels:   Channels,
		BitDepth:   BitDepth,
	}, nil
}

// Synthesize renders seq with the standard pitch table.
func Synthesize(seq string, bpm float64, shape Shape) (*Result, error) {
	return New(nil).Synthesize(seq, bpm, shape)
}
