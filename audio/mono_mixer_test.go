// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"

	"github.com/ik5/mmlwav/internal/audiotest"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(audiotest.NewConstantSource(8000, 1, 10, 0.75))
	buf := make([]float32, 10)

	n, err := m.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Fatalf("ReadSamples() n = %d, want 10", n)
	}
	for i := range n {
		if buf[i] != 0.75 {
			t.Errorf("buf[%d] = %v, want 0.75", i, buf[i])
		}
	}
}

func TestMonoMixer_AveragesChannels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		channels int
		step     float32
		want     float32
	}{
		{2, 0.5, 0.25},
		{3, 0.3, 0.3},
		{4, 0.25, 0.375},
		{6, 0.1, 0.25},
	}

	for _, tt := range tests {
		m := NewMonoMixer(audiotest.NewChannelSource(8000, tt.channels, 100, tt.step))
		got := drain(t, m, 32)

		if len(got) != 100 {
			t.Fatalf("%d channels: got %d frames, want 100", tt.channels, len(got))
		}
		for i, v := range got {
			if math.Abs(float64(v-tt.want)) > 1e-6 {
				t.Fatalf("%d channels: frame %d = %v, want %v", tt.channels, i, v, tt.want)
			}
		}
	}
}

func TestMonoMixer_Metadata(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(22050, 2, 10)
	m := NewMonoMixer(src)

	if m.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", m.SampleRate())
	}
	if m.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", m.Channels())
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the source")
	}
}

func TestMonoMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	n, err := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 10)).ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestMonoMixer_LargeBufferGrows(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(audiotest.NewConstantSource(8000, 2, 10000, 1))
	n, err := m.ReadSamples(make([]float32, 10000))
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 10000 {
		t.Errorf("ReadSamples() n = %d, want 10000", n)
	}
}

func BenchmarkMonoMixer_StereoToMono(b *testing.B) {
	src := audiotest.NewSineSource(44100, 2, math.MaxInt32, 440)
	m := NewMonoMixer(src)
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		_, _ = m.ReadSamples(buf)
	}
}
