// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates the Catmull-Rom spline through four consecutive
// samples. x is the fractional position between y1 and y2 (0 <= x <= 1).
func CubicInterpolate[F Float](y0, y1, y2, y3, x F) F {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	// Horner form
	return ((a0*x+a1)*x+a2)*x + y1
}
