// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float is a floating point sample type.
type Float interface {
	~float32 | ~float64
}

// Quantize converts a sample in [-1, 1] to signed 16-bit PCM.
// Input is clamped first so the result never wraps; -1 maps to -32767 and
// 1 to 32767. NaN maps to 0.
func Quantize[F Float](x F) int16 {
	v := float64(x)
	if v != v {
		return 0
	}

	// Clamp and scale
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}

	return int16(math.Round(v * math.MaxInt16))
}

// QuantizeAll converts src into dst. It writes min(len(dst), len(src)) samples
// and returns that count.
func QuantizeAll[F Float](dst []int16, src []F) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Quantize(src[i])
	}
	return n
}
