// SPDX-License-Identifier: EPL-2.0

package mmlwav

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/ik5/mmlwav/audio"
	"github.com/ik5/mmlwav/formats/aiff"
	"github.com/ik5/mmlwav/formats/mp3"
	"github.com/ik5/mmlwav/formats/vorbis"
	"github.com/ik5/mmlwav/formats/wav"
	"github.com/ik5/mmlwav/pitch"
)

// maxStalls bounds consecutive empty reads while draining a source.
const maxStalls = 64

// Report summarises a decoded audio stream.
type Report struct {
	Format     string
	SampleRate int
	Channels   int
	Frames     int
	Duration   time.Duration

	// Peak and RMS are measured on the mono mix, full scale is 1.
	Peak float64
	RMS  float64

	// PitchHz is the zero-crossing estimate of the fundamental, 0 when the
	// signal never crosses zero. Note is the nearest pitch class.
	PitchHz float64
	Note    pitch.Symbol
}

// DefaultRegistry returns a registry holding every bundled decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

// Inspect decodes the file at path, picking the decoder by extension.
func Inspect(path string) (*Report, error) {
	format, dec, err := DefaultRegistry().Lookup(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return InspectSource(format, src)
}

// InspectSource drains src and closes it.
func InspectSource(format string, src audio.Source) (*Report, error) {
	defer src.Close()

	rep := &Report{
		Format:     format,
		SampleRate: src.SampleRate(),
		Channels:   src.Channels(),
	}
	if rep.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d Hz", audio.ErrInvalidSampleRate, rep.SampleRate)
	}

	mono, err := drainMono(audio.NewMonoMixer(src), max(src.BufSize(), 1))
	if err != nil {
		return nil, err
	}
	if len(mono) == 0 {
		return nil, ErrEmptyAudio
	}

	rep.Frames = len(mono)
	rep.Duration = time.Duration(len(mono)) * time.Second / time.Duration(rep.SampleRate)

	var sum float64
	for _, v := range mono {
		x := float64(v)
		rep.Peak = max(rep.Peak, math.Abs(x))
		sum += x * x
	}
	rep.RMS = math.Sqrt(sum / float64(len(mono)))

	rep.PitchHz = zeroCrossingHz(mono, rep.SampleRate)
	rep.Note = pitch.Standard().Nearest(rep.PitchHz)

	return rep, nil
}

func drainMono(src audio.Source, bufSize int) ([]float32, error) {
	out := make([]float32, 0, bufSize)
	buf := make([]float32, bufSize)

	stalls := 0
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n > 0 {
			stalls = 0
		} else if stalls++; stalls >= maxStalls {
			return nil, io.ErrNoProgress
		}
	}
}

// zeroCrossingHz estimates the fundamental from the spacing of rising zero
// crossings: the number of whole periods between the first and last one
// divided by the time they span.
func zeroCrossingHz(x []float32, rate int) float64 {
	first, last, count := -1, -1, 0
	for i := 1; i < len(x); i++ {
		if x[i-1] < 0 && x[i] >= 0 {
			if first < 0 {
				first = i
			}
			last = i
			count++
		}
	}

	if count < 2 || last == first {
		return 0
	}
	return float64(count-1) * float64(rate) / float64(last-first)
}
