// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"

	"github.com/ik5/mmlwav/audio"
	"github.com/ik5/mmlwav/formats/internal/intpcm"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := intpcm.Seekable(r)
	if err != nil {
		return nil, err
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: %d bits", ErrOnlyPCM16bitSupported, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.SampleRate <= 0 || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	return intpcm.New(dec, format.SampleRate, format.NumChannels, int(dec.BitDepth)), nil
}
