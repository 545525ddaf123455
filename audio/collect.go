// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/mmlwav/utils"
)

// Collect16 drains src into 16-bit PCM, reading bufSize samples at a time.
// Reaching io.EOF is the normal end and is not returned.
func Collect16(src Source, bufSize int) ([]int16, error) {
	if bufSize <= 0 {
		return nil, ErrInvalidBufferSize
	}
	if c := src.Channels(); c > 1 && bufSize%c != 0 {
		bufSize += c - bufSize%c
	}

	pcm16 := make([]int16, 0, bufSize)
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			start := len(pcm16)
			pcm16 = append(pcm16, make([]int16, n)...)
			utils.QuantizeAll(pcm16[start:], buf[:n])
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n == 0 {
			return nil, io.ErrNoProgress
		}
	}

	return pcm16, nil
}
