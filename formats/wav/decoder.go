// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/mmlwav/audio"
	"github.com/ik5/mmlwav/formats/internal/intpcm"
)

// Decoder reads 16-bit PCM WAV files. Chunks other than fmt and data are
// skipped, so files with LIST or fact chunks decode too.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := intpcm.Seekable(r)
	if err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != pcmFormat || dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: format tag %d, %d bits",
			ErrOnlyPCM16bitSupported, dec.WavAudioFormat, dec.BitDepth)
	}

	if dec.SampleRate == 0 {
		return nil, fmt.Errorf("%w: zero sample rate", ErrUnsupportedWavLayout)
	}

	return intpcm.New(dec, int(dec.SampleRate), int(dec.NumChans), int(dec.BitDepth)), nil
}
