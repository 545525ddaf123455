// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"slices"
)

const (
	headerSize = 44
	chunkSize  = 8192 // samples per Write call
)

// header builds the canonical 44-byte RIFF/WAVE header for dataSize bytes
// of PCM.
func header(p Params, dataSize uint32) []byte {
	h := make([]byte, headerSize)

	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], 36+dataSize)
	copy(h[8:12], "WAVE")

	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16)
	binary.LittleEndian.PutUint16(h[20:22], pcmFormat)
	binary.LittleEndian.PutUint16(h[22:24], uint16(p.Channels))
	binary.LittleEndian.PutUint32(h[24:28], uint32(p.SampleRate))
	binary.LittleEndian.PutUint32(h[28:32], uint32(p.SampleRate*p.BlockAlign()))
	binary.LittleEndian.PutUint16(h[32:34], uint16(p.BlockAlign()))
	binary.LittleEndian.PutUint16(h[34:36], uint16(p.BitDepth()))

	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], dataSize)

	return h
}

// WriteWAV16 streams samples as a 16-bit PCM WAV to w. samples are
// interleaved and must hold whole frames for p.Channels. Unlike Encode it
// never seeks, so it works on pipes and stdout.
func WriteWAV16(w io.Writer, p Params, samples []int16) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(samples)%p.Channels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", ErrFrameAlignment, len(samples), p.Channels)
	}

	if _, err := w.Write(header(p, uint32(len(samples)*p.SampleWidth))); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), chunkSize)*2)
	for chunk := range slices.Chunk(samples, chunkSize) {
		out := buf[:len(chunk)*2]
		for j, s := range chunk {
			binary.LittleEndian.PutUint16(out[j*2:], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	}

	return nil
}
