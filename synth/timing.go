// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

const (
	// SampleRate of every rendered stream in Hz.
	SampleRate = 44100
	// Channels of every rendered stream (mono).
	Channels = 1
	// BitDepth of the quantized samples.
	BitDepth = 16

	// MaxNoteSeconds bounds the length of a single note (6 bpm).
	MaxNoteSeconds = 10
	// MaxSamples bounds a whole rendered stream to one hour of audio.
	MaxSamples = 60 * 60 * SampleRate
)

// NoteDuration returns the length of one note in seconds at bpm.
func NoteDuration(bpm float64) (float64, error) {
	if !(bpm > 0) || math.IsInf(bpm, 0) {
		return 0, fmt.Errorf("%w: %v bpm, must be positive", ErrInvalidTempo, bpm)
	}

	return 60.0 / bpm, nil
}

// TimeAxis returns round(sampleRate * 60/bpm) evenly spaced instants covering
// [0, 60/bpm], both endpoints included.
func TimeAxis(bpm float64, sampleRate int) ([]float64, error) {
	dur, err := NoteDuration(bpm)
	if err != nil {
		return nil, err
	}

	if dur > MaxNoteSeconds {
		return nil, fmt.Errorf("%w: %v bpm gives notes longer than %d s", ErrInvalidTempo, bpm, MaxNoteSeconds)
	}

	n := int(math.Round(float64(sampleRate) * dur))
	if n < 1 {
		return nil, fmt.Errorf("%w: %v bpm gives notes shorter than one sample", ErrInvalidTempo, bpm)
	}

	t := make([]float64, n)
	if n == 1 {
		return t, nil
	}

	step := dur / float64(n-1)
	for i := range n - 1 {
		t[i] = float64(i) * step
	}
	t[n-1] = dur

	return t, nil
}
