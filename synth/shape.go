// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
	"strings"
)

// Kind selects a waveform shape.
type Kind string

const (
	KindSine     Kind = "sin"
	KindPulse    Kind = "sq"
	KindSawtooth Kind = "saw"
)

const (
	// DefaultDuty is the pulse high fraction when none is given.
	DefaultDuty = 0.5
	// DefaultWidth is the sawtooth rising fraction when none is given.
	DefaultWidth = 0.5
)

// ParseKind resolves a shape selector. Both the short names (sin, sq, saw) and
// the long ones (sine, square, pulse, sawtooth) are accepted.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sin", "sine":
		return KindSine, nil
	case "sq", "square", "pulse":
		return KindPulse, nil
	case "saw", "sawtooth":
		return KindSawtooth, nil
	default:
		return "", fmt.Errorf("%w: %q (expected sin|sq|saw)", ErrInvalidWaveformKind, s)
	}
}

// Shape generates one periodic waveform.
type Shape interface {
	// Kind reports which variant this is.
	Kind() Kind
	// Validate checks the shape parameters.
	Validate() error
	// Fill writes one sample per instant of t into dst at freq Hz.
	// dst must be at least len(t) long.
	Fill(dst []float64, freq float64, t []float64)
}

// NewShape builds the variant for kind. duty is used by pulse and width by
// sawtooth; the other parameter is ignored.
func NewShape(kind Kind, duty, width float64) (Shape, error) {
	var s Shape
	switch kind {
	case KindSine:
		s = Sine{}
	case KindPulse:
		s = Pulse{Duty: duty}
	case KindSawtooth:
		s = Sawtooth{Width: width}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidWaveformKind, kind)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Sine is sin(2*pi*f*t).
type Sine struct{}

func (Sine) Kind() Kind      { return KindSine }
func (Sine) Validate() error { return nil }

func (Sine) Fill(dst []float64, freq float64, t []float64) {
	w := 2 * math.Pi * freq
	for i, ti := range t {
		dst[i] = math.Sin(w * ti)
	}
}

// Pulse is a square wave that is +1 for the first Duty of each period and -1
// for the rest.
type Pulse struct {
	Duty float64
}

func (Pulse) Kind() Kind { return KindPulse }

func (p Pulse) Validate() error {
	return checkFraction("duty", p.Duty)
}

func (p Pulse) Fill(dst []float64, freq float64, t []float64) {
	if freq == 0 {
		clear(dst[:len(t)])
		return
	}

	for i, ti := range t {
		if phase(freq, ti) < p.Duty {
			dst[i] = 1
		} else {
			dst[i] = -1
		}
	}
}

// Sawtooth ramps from -1 to +1 over the first Width of each period, then
// falls back to -1 over the remainder. Width 1 is a plain rising ramp and
// width 0 a falling one.
type Sawtooth struct {
	Width float64
}

func (Sawtooth) Kind() Kind { return KindSawtooth }

func (s Sawtooth) Validate() error {
	return checkFraction("width", s.Width)
}

func (s Sawtooth) Fill(dst []float64, freq float64, t []float64) {
	if freq == 0 {
		clear(dst[:len(t)])
		return
	}

	w := s.Width
	for i, ti := range t {
		p := phase(freq, ti)
		if p < w {
			dst[i] = -1 + 2*p/w
		} else {
			dst[i] = 1 - 2*(p-w)/(1-w)
		}
	}
}

// phase is the position of t within the current period, in [0, 1).
func phase(freq, t float64) float64 {
	x := freq * t
	return x - math.Floor(x)
}

func checkFraction(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: %s %v outside [0, 1]", ErrInvalidShapeParameter, name, v)
	}
	return nil
}
