// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"errors"

	"github.com/ik5/mmlwav/pitch"
)

var (
	// ErrInvalidNoteSymbol is returned for characters outside the note alphabet.
	ErrInvalidNoteSymbol = pitch.ErrInvalidNoteSymbol

	// ErrEmptySequence is returned when there is nothing to render.
	ErrEmptySequence = pitch.ErrEmptySequence

	// ErrInvalidTempo is returned when the tempo is not a positive finite number
	// or yields notes outside [1 sample, MaxNoteSeconds]. It is also returned
	// when the whole stream would exceed MaxSamples.
	ErrInvalidTempo = errors.New("invalid tempo")

	// ErrInvalidWaveformKind is returned for an unrecognised shape selector.
	ErrInvalidWaveformKind = errors.New("invalid waveform kind")

	// ErrInvalidShapeParameter is returned for duty or width outside [0, 1].
	ErrInvalidShapeParameter = errors.New("invalid shape parameter")
)
