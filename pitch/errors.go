// SPDX-License-Identifier: EPL-2.0

package pitch

import "errors"

var (
	// ErrInvalidNoteSymbol indicates a symbol outside the note alphabet.
	ErrInvalidNoteSymbol = errors.New("invalid note symbol")

	// ErrEmptySequence indicates a note sequence without any notes.
	ErrEmptySequence = errors.New("empty note sequence")
)
