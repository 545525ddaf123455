// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds Source fakes shared by the package tests.
package audiotest

import (
	"errors"
	"io"
	"math"
)

// ErrInjected is returned by sources built with WithError.
var ErrInjected = errors.New("audiotest: injected read error")

// MockSource generates audio from a waveform function.
// It implements audio.Source without importing it.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	waveform     func(sample int, channel int) float32

	maxFrames int   // cap per read, 0 for unlimited
	failAt    int   // frame index at which reads fail, -1 never
	err       error // returned at failAt
	closed    bool
}

// NewMockSource creates a new mock audio source.
// totalSamples is the number of frames to generate.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
		failAt:       -1,
	}
}

// NewSilentSource generates zeros.
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewConstantSource(sampleRate, channels, totalSamples, 0)
}

// NewSineSource generates a full-scale sine at frequency Hz on every channel.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewSquareSource generates a 50% duty square wave at frequency Hz.
func NewSquareSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, _ int) float32 {
		p := float64(sample) * frequency / float64(sampleRate)
		if p-math.Floor(p) < 0.5 {
			return 1
		}
		return -1
	})
}

// NewConstantSource generates value on every sample.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

// NewChannelSource emits the channel index scaled by step, so channel c
// always reads c*step. Useful to check interleaving.
func NewChannelSource(sampleRate, channels, totalSamples int, step float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(_ int, channel int) float32 {
		return float32(channel) * step
	})
}

// WithMaxFrames caps every read at n frames to emulate short reads.
func (m *MockSource) WithMaxFrames(n int) *MockSource {
	m.maxFrames = n
	return m
}

// WithError makes reads fail with err once frame is reached. A nil err
// uses ErrInjected.
func (m *MockSource) WithError(frame int, err error) *MockSource {
	if err == nil {
		err = ErrInjected
	}
	m.failAt = frame
	m.err = err
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAt >= 0 && m.generated >= m.failAt {
		return 0, m.err
	}
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	if m.maxFrames > 0 {
		frames = min(frames, m.maxFrames)
	}
	if m.failAt >= 0 {
		frames = min(frames, m.failAt-m.generated)
	}

	for frame := range frames {
		idx := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(idx, ch)
		}
	}

	m.generated += frames
	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}
