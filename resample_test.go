// SPDX-License-Identifier: EPL-2.0

package mmlwav

import (
	"errors"
	"testing"

	"github.com/ik5/mmlwav/audio"
	"github.com/ik5/mmlwav/internal/audiotest"
)

func TestResampleToMono16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rate       int
		channels   int
		frames     int
		targetRate int
		want       int // expected output frames
	}{
		{"stereo 44100 to 8000", 44100, 2, 44100, 8000, 8000},
		{"mono 16000 to 8000", 16000, 1, 16000, 8000, 8000},
		{"mono 8000 to 16000", 8000, 1, 8000, 16000, 16000},
		{"same rate", 22050, 2, 1000, 22050, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSineSource(tt.rate, tt.channels, tt.frames, 440)
			pcm16, rate, err := ResampleToMono16(src, tt.targetRate, 4096)
			if err != nil {
				t.Fatalf("ResampleToMono16() error = %v", err)
			}
			if rate != tt.targetRate {
				t.Errorf("rate = %d, want %d", rate, tt.targetRate)
			}

			if d := len(pcm16) - tt.want; d < -3 || d > 3 {
				t.Errorf("got %d samples, want %d (±3)", len(pcm16), tt.want)
			}
		})
	}
}

func TestResampleToMono16_AveragesChannels(t *testing.T) {
	t.Parallel()

	// channels read 0 and 0.5, so the mix sits at 0.25
	src := audiotest.NewChannelSource(8000, 2, 800, 0.5)
	pcm16, _, err := ResampleToMono16(src, 8000, 256)
	if err != nil {
		t.Fatalf("ResampleToMono16() error = %v", err)
	}

	const want = 8192 // round(0.25 * 32767)
	for i, s := range pcm16 {
		if s < want-1 || s > want+1 {
			t.Fatalf("sample %d = %d, want %d", i, s, want)
		}
	}
}

func TestResampleToMono16_FullScale(t *testing.T) {
	t.Parallel()

	in := make([]int16, 2*500)
	for i := range in {
		in[i] = 32767
		if i%4 >= 2 {
			in[i] = -32767
		}
	}

	pcm16, _, err := ResampleToMono16(audio.NewPCM16Source(in, 8000, 2), 8000, 64)
	if err != nil {
		t.Fatalf("ResampleToMono16() error = %v", err)
	}
	if len(pcm16) != 500 {
		t.Fatalf("got %d samples, want 500", len(pcm16))
	}
	for i, s := range pcm16 {
		want := int16(32767)
		if i%2 == 1 {
			want = -32767
		}
		if s != want {
			t.Fatalf("sample %d = %d, want %d", i, s, want)
		}
	}
}

func TestResampleToMono16_Errors(t *testing.T) {
	t.Parallel()

	if _, _, err := ResampleToMono16(audiotest.NewSilentSource(8000, 1, 10), 0, 64); !errors.Is(err, ErrInvalidOutputRate) {
		t.Errorf("zero rate: error = %v, want ErrInvalidOutputRate", err)
	}

	src := audiotest.NewSilentSource(8000, 1, 1000).WithError(100, nil)
	if _, _, err := ResampleToMono16(src, 4000, 64); !errors.Is(err, audiotest.ErrInjected) {
		t.Errorf("source failure: error = %v, want ErrInjected", err)
	}
}

func BenchmarkResampleToMono16(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		src := audiotest.NewSineSource(44100, 2, 44100, 440)
		_, _, _ = ResampleToMono16(src, 8000, 4096)
	}
}
