// SPDX-License-Identifier: EPL-2.0

package mmlwav

import (
	"fmt"
	"io"

	"github.com/ik5/mmlwav/audio"
	"github.com/ik5/mmlwav/formats/wav"
	"github.com/ik5/mmlwav/synth"
)

const resampleBufSize = 4096

// Options control a render.
type Options struct {
	BPM   float64
	Shape synth.Shape
	// OutputRate is the rate of the written file. Zero means the synthesis
	// rate, 44100 Hz.
	OutputRate int
}

// DefaultOptions renders a sine at 120 BPM, 44100 Hz.
func DefaultOptions() Options {
	return Options{
		BPM:        120,
		Shape:      synth.Sine{},
		OutputRate: synth.SampleRate,
	}
}

// Render synthesizes seq and converts it to opts.OutputRate.
func Render(seq string, opts Options) (*synth.Result, error) {
	rate := opts.OutputRate
	if rate == 0 {
		rate = synth.SampleRate
	}
	if rate < 0 {
		return nil, fmt.Errorf("%w: %d Hz", ErrInvalidOutputRate, rate)
	}

	res, err := synth.Synthesize(seq, opts.BPM, opts.Shape)
	if err != nil {
		return nil, err
	}

	if rate == res.SampleRate {
		return res, nil
	}

	src := audio.NewPCM16Source(res.Samples, res.SampleRate, res.Channels)
	samples, _, err := ResampleToMono16(src, rate, resampleBufSize)
	if err != nil {
		return nil, err
	}

	return &synth.Result{
		Samples:    samples,
		SampleRate: rate,
		Channels:   1,
		BitDepth:   synth.BitDepth,
	}, nil
}

// RenderFile renders seq and writes it to path. Nothing is created at path
// when rendering fails.
func RenderFile(path, seq string, opts Options) (*synth.Result, error) {
	res, err := Render(seq, opts)
	if err != nil {
		return nil, err
	}

	if err := wav.WriteFile(path, params(res), res.Bytes()); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}

	return res, nil
}

// RenderTo renders seq and streams the WAV to w. The whole sequence is
// rendered before the first byte is written.
func RenderTo(w io.Writer, seq string, opts Options) (*synth.Result, error) {
	res, err := Render(seq, opts)
	if err != nil {
		return nil, err
	}

	if err := wav.WriteWAV16(w, params(res), res.Samples); err != nil {
		return nil, err
	}

	return res, nil
}

func params(res *synth.Result) wav.Params {
	return wav.Params{
		Channels:    res.Channels,
		SampleWidth: res.BitDepth / 8,
		SampleRate:  res.SampleRate,
	}
}
