// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Encode writes frames, little-endian signed 16-bit PCM laid out as p
// describes, as a WAV stream to ws. The header sizes are patched on Close
// of the underlying encoder, which is why ws must seek.
func Encode(ws io.WriteSeeker, p Params, frames []byte) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(frames)%p.BlockAlign() != 0 {
		return fmt.Errorf("%w: %d bytes, block align %d", ErrFrameAlignment, len(frames), p.BlockAlign())
	}

	// the go-audio encoder only emits a header once data is written
	if len(frames) == 0 {
		return WriteWAV16(ws, p, nil)
	}

	enc := gowav.NewEncoder(ws, p.SampleRate, p.BitDepth(), p.Channels, pcmFormat)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: p.Channels, SampleRate: p.SampleRate},
		SourceBitDepth: p.BitDepth(),
	}

	// a chunk boundary must fall on a frame boundary
	step := chunkSize * p.SampleWidth
	step -= step % p.BlockAlign()

	data := make([]int, 0, min(len(frames), step)/p.SampleWidth)
	for off := 0; off < len(frames); off += step {
		end := min(off+step, len(frames))

		data = data[:0]
		for i := off; i < end; i += 2 {
			data = append(data, int(int16(binary.LittleEndian.Uint16(frames[i:]))))
		}
		buf.Data = data

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("encoding samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalising WAV: %w", err)
	}
	return nil
}

// WriteFile writes frames to path as a WAV file. The data goes to a
// temporary file in the same directory which is renamed over path only
// once it is complete, so path is never left partially written.
func WriteFile(path string, p Params, frames []byte) (err error) {
	if err := p.Validate(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".mmlwav-*.wav")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, p, frames); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", tmp.Name(), err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming into %s: %w", path, err)
	}

	return nil
}
