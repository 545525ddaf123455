// SPDX-License-Identifier: EPL-2.0

// Package synth turns note sequences into 16-bit PCM.
//
// A run resolves every note through a pitch table, samples one waveform
// segment per note on a shared time axis and quantizes the concatenated
// buffer once:
//
//	shape, _ := synth.NewShape(synth.KindPulse, 0.25, 0)
//	res, err := synth.Synthesize("CDEFGAB", 120, shape)
//	// res.Samples is mono int16 at 44100 Hz
//
// # Timing
//
// Each symbol lasts 60/bpm seconds and is sampled at round(44100 * 60/bpm)
// instants spread evenly over [0, 60/bpm], endpoints included. The same axis is
// used for every note, so all notes have the same length regardless of pitch.
//
// # Shapes
//
//   - Sine: sin(2*pi*f*t)
//   - Pulse: +1 while the phase is below Duty, -1 otherwise
//   - Sawtooth: rising ramp for the first Width of the period, falling after
//
// Duty and width must lie in [0, 1]. A rest is silent for every shape.
//
// # Quantization
//
// Samples are clamped to [-1, 1] and scaled by 32767 with rounding, so full
// scale maps to +/-32767 and nothing wraps.
//
// # Errors
//
// Validation failures are reported before any synthesis work starts and wrap
// one of ErrInvalidNoteSymbol, ErrInvalidTempo, ErrInvalidWaveformKind or
// ErrInvalidShapeParameter.
package synth
