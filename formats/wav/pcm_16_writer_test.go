// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestWriteWAV16_Header(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  Params
		samples []int16
	}{
		{"mono 44100", Mono16(44100), []int16{0, 100, -100, 200, -200}},
		{"stereo 8000", Params{Channels: 2, SampleWidth: 2, SampleRate: 8000}, []int16{1, 2, 3, 4}},
		{"empty", Mono16(22050), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := new(bytes.Buffer)
			if err := WriteWAV16(buf, tt.params, tt.samples); err != nil {
				t.Fatalf("WriteWAV16() error = %v", err)
			}

			data := buf.Bytes()
			dataSize := uint32(len(tt.samples) * 2)
			if len(data) != headerSize+int(dataSize) {
				t.Fatalf("file size = %d, want %d", len(data), headerSize+int(dataSize))
			}

			le := binary.LittleEndian
			checks := []struct {
				field string
				got   uint32
				want  uint32
			}{
				{"riff size", le.Uint32(data[4:8]), 36 + dataSize},
				{"fmt size", le.Uint32(data[16:20]), 16},
				{"format", uint32(le.Uint16(data[20:22])), pcmFormat},
				{"channels", uint32(le.Uint16(data[22:24])), uint32(tt.params.Channels)},
				{"rate", le.Uint32(data[24:28]), uint32(tt.params.SampleRate)},
				{"byte rate", le.Uint32(data[28:32]), uint32(tt.params.SampleRate * tt.params.Channels * 2)},
				{"block align", uint32(le.Uint16(data[32:34])), uint32(tt.params.Channels * 2)},
				{"bits", uint32(le.Uint16(data[34:36])), 16},
				{"data size", le.Uint32(data[40:44]), dataSize},
			}
			for _, c := range checks {
				if c.got != c.want {
					t.Errorf("%s = %d, want %d", c.field, c.got, c.want)
				}
			}

			for _, tag := range []struct {
				off  int
				want string
			}{{0, "RIFF"}, {8, "WAVE"}, {12, "fmt "}, {36, "data"}} {
				if got := string(data[tag.off : tag.off+4]); got != tag.want {
					t.Errorf("tag at %d = %q, want %q", tag.off, got, tag.want)
				}
			}
		})
	}
}

func TestWriteWAV16_SampleData(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 1, -1, 32767, -32768, 0x1234}
	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, Mono16(8000), samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	payload := buf.Bytes()[headerSize:]
	for i, want := range samples {
		if got := int16(binary.LittleEndian.Uint16(payload[i*2:])); got != want {
			t.Errorf("sample %d = %d, want %d", i, got, want)
		}
	}

	// 0x1234 is stored low byte first
	if payload[10] != 0x34 || payload[11] != 0x12 {
		t.Errorf("byte order = %#x %#x, want 0x34 0x12", payload[10], payload[11])
	}
}

func TestWriteWAV16_LargeInputSpansChunks(t *testing.T) {
	t.Parallel()

	samples := make([]int16, chunkSize*3+17)
	for i := range samples {
		samples[i] = int16(i)
	}

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, Mono16(44100), samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	payload := buf.Bytes()[headerSize:]
	if len(payload) != len(samples)*2 {
		t.Fatalf("payload = %d bytes, want %d", len(payload), len(samples)*2)
	}
	last := len(samples) - 1
	if got := int16(binary.LittleEndian.Uint16(payload[last*2:])); got != samples[last] {
		t.Errorf("last sample = %d, want %d", got, samples[last])
	}
}

func TestWriteWAV16_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  Params
		samples []int16
		want    error
	}{
		{"zero channels", Params{Channels: 0, SampleWidth: 2, SampleRate: 8000}, nil, ErrUnsupportedParams},
		{"8-bit", Params{Channels: 1, SampleWidth: 1, SampleRate: 8000}, nil, ErrUnsupportedParams},
		{"zero rate", Params{Channels: 1, SampleWidth: 2}, nil, ErrUnsupportedParams},
		{"half frame", Params{Channels: 2, SampleWidth: 2, SampleRate: 8000}, []int16{1, 2, 3}, ErrFrameAlignment},
	}

	for _, tt := range tests {
		buf := new(bytes.Buffer)
		err := WriteWAV16(buf, tt.params, tt.samples)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
		if buf.Len() != 0 {
			t.Errorf("%s: wrote %d bytes on error", tt.name, buf.Len())
		}
	}
}

type failWriter struct{ after int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("disk full")
	}
	w.after--
	return len(p), nil
}

func TestWriteWAV16_WriterError(t *testing.T) {
	t.Parallel()

	for after := range 2 {
		if err := WriteWAV16(&failWriter{after: after}, Mono16(8000), []int16{1, 2}); err == nil {
			t.Errorf("failing after %d writes: expected an error", after)
		}
	}
}

func BenchmarkWriteWAV16(b *testing.B) {
	samples := make([]int16, 44100)
	buf := new(bytes.Buffer)
	p := Mono16(44100)

	b.ReportAllocs()
	for b.Loop() {
		buf.Reset()
		_ = WriteWAV16(buf, p, samples)
	}
}
