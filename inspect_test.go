// SPDX-License-Identifier: EPL-2.0

package mmlwav

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/ik5/mmlwav/audio"
	"github.com/ik5/mmlwav/internal/audiotest"
	"github.com/ik5/mmlwav/pitch"
	"github.com/ik5/mmlwav/synth"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	want := []string{"aif", "aiff", "mp3", "ogg", "wav"}
	if got := DefaultRegistry().Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestInspect_RenderedNotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seq   string
		shape synth.Shape
		note  pitch.Symbol
	}{
		{"A", synth.Sine{}, "A"},
		{"C", synth.Pulse{Duty: 0.5}, "C"},
		{"F#", synth.Sawtooth{Width: 0.5}, "F#"},
	}

	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "note.wav")
			if _, err := RenderFile(path, tt.seq, Options{BPM: 120, Shape: tt.shape}); err != nil {
				t.Fatalf("RenderFile() error = %v", err)
			}

			rep, err := Inspect(path)
			if err != nil {
				t.Fatalf("Inspect() error = %v", err)
			}

			if rep.Format != "wav" || rep.SampleRate != 44100 || rep.Channels != 1 {
				t.Errorf("report format = %s %d Hz x %d", rep.Format, rep.SampleRate, rep.Channels)
			}
			if rep.Frames != 22050 || rep.Duration != 500*time.Millisecond {
				t.Errorf("frames = %d, duration = %v; want 22050, 500ms", rep.Frames, rep.Duration)
			}
			if rep.Note != tt.note {
				t.Errorf("Note = %s (%.2f Hz), want %s", rep.Note, rep.PitchHz, tt.note)
			}

			freq, _ := pitch.Standard().FrequencyOf(string(tt.note))
			if math.Abs(rep.PitchHz-freq) > 1 {
				t.Errorf("PitchHz = %.3f, want %.3f ±1", rep.PitchHz, freq)
			}
			if rep.Peak < 0.95 || rep.Peak > 1 {
				t.Errorf("Peak = %v, want full scale", rep.Peak)
			}
		})
	}
}

func TestInspect_RestIsSilent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rest.wav")
	if _, err := RenderFile(path, "RR", DefaultOptions()); err != nil {
		t.Fatal(err)
	}

	rep, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if rep.Peak != 0 || rep.RMS != 0 || rep.PitchHz != 0 || rep.Note != pitch.Rest {
		t.Errorf("rest report = %+v, want silence", rep)
	}
}

func TestInspect_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if _, err := Inspect(filepath.Join(dir, "song.flac")); !errors.Is(err, audio.ErrUnknownFormat) {
		t.Errorf("unknown extension: error = %v, want ErrUnknownFormat", err)
	}
	if _, err := Inspect(filepath.Join(dir, "missing.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: error = %v, want os.ErrNotExist", err)
	}

	bogus := filepath.Join(dir, "bogus.wav")
	if err := os.WriteFile(bogus, []byte("definitely not audio"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Inspect(bogus); err == nil {
		t.Error("bogus file: expected a decode error")
	}
}

func TestInspectSource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(8000, 2, 8000, 440)
	rep, err := InspectSource("mock", src)
	if err != nil {
		t.Fatalf("InspectSource() error = %v", err)
	}

	if rep.Channels != 2 || rep.Frames != 8000 || rep.Duration != time.Second {
		t.Errorf("report = %d channels, %d frames, %v", rep.Channels, rep.Frames, rep.Duration)
	}
	if math.Abs(rep.RMS-math.Sqrt2/2) > 0.01 {
		t.Errorf("RMS = %v, want %v", rep.RMS, math.Sqrt2/2)
	}
	if rep.Note != "A" {
		t.Errorf("Note = %s, want A", rep.Note)
	}
	if !src.Closed() {
		t.Error("InspectSource did not close the source")
	}
}

func TestInspectSource_Errors(t *testing.T) {
	t.Parallel()

	if _, err := InspectSource("mock", audiotest.NewSilentSource(8000, 1, 0)); !errors.Is(err, ErrEmptyAudio) {
		t.Errorf("empty source: error = %v, want ErrEmptyAudio", err)
	}

	failing := audiotest.NewSilentSource(8000, 1, 100).WithError(10, nil)
	if _, err := InspectSource("mock", failing); !errors.Is(err, audiotest.ErrInjected) {
		t.Errorf("failing source: error = %v, want ErrInjected", err)
	}

	if _, err := InspectSource("mock", audiotest.NewSilentSource(0, 1, 10)); !errors.Is(err, audio.ErrInvalidSampleRate) {
		t.Errorf("zero rate: error = %v, want ErrInvalidSampleRate", err)
	}
}

func TestZeroCrossingHz(t *testing.T) {
	t.Parallel()

	if got := zeroCrossingHz([]float32{1, 1, 1}, 8000); got != 0 {
		t.Errorf("no crossings = %v, want 0", got)
	}

	// one rising crossing every four samples
	x := []float32{-1, 1, 1, -1, -1, 1, 1, -1, -1, 1}
	if got := zeroCrossingHz(x, 8000); got != 2000 {
		t.Errorf("period-4 square = %v, want 2000", got)
	}
}
