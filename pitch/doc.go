// SPDX-License-Identifier: EPL-2.0

// Package pitch maps note symbols to frequencies.
//
// The alphabet has 13 symbols: the rest "R" followed by the twelve chromatic
// pitch classes starting at C:
//
//	R C C# D D# E F F# G G# A A# B
//
// Frequencies use equal temperament referenced to A = 440 Hz. The i-th
// chromatic symbol (C is 1, A is 10) sounds at 440 * 2^((i-10)/12), so the
// table spans the octave from middle C (~261.63 Hz) to B (~493.88 Hz). The rest
// resolves to 0 Hz.
//
// # Lookup
//
//	hz, err := pitch.Standard().FrequencyOf("A") // 440
//
// # Parsing
//
// Parse splits a note sequence into symbols. Every letter is one note and a
// letter directly followed by '#' is its sharp:
//
//	notes, err := pitch.Parse("CC#DR")
//	// [C C# D R]
//
// Anything else fails with ErrInvalidNoteSymbol, naming the offending text and
// its byte offset.
package pitch
