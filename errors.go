// SPDX-License-Identifier: EPL-2.0

package mmlwav

import "errors"

var (
	ErrInvalidOutputRate = errors.New("invalid output sample rate")
	ErrEmptyAudio        = errors.New("audio stream holds no samples")
)
