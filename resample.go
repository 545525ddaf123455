// SPDX-License-Identifier: EPL-2.0

package mmlwav

import (
	"fmt"

	"github.com/ik5/mmlwav/audio"
)

// ResampleToMono16 resamples src to targetRate, folds it to one channel and
// collects the result as 16-bit PCM. bufferSize is the read size used while
// draining the pipeline. The returned rate is always targetRate.
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	if targetRate <= 0 {
		return nil, 0, fmt.Errorf("%w: %d Hz", ErrInvalidOutputRate, targetRate)
	}

	var stage audio.Source = src
	if src.SampleRate() != targetRate {
		stage = audio.NewResampler(stage, targetRate)
	}
	mono := audio.NewMonoMixer(stage)

	pcm16, err := audio.Collect16(mono, bufferSize)
	if err != nil {
		return nil, targetRate, fmt.Errorf("resampling to %d Hz: %w", targetRate, err)
	}

	return pcm16, targetRate, nil
}
