// SPDX-License-Identifier: EPL-2.0

package pitch

import (
	"fmt"
	"math"
	"sync"
)

// Symbol is a single note of the alphabet.
type Symbol string

// Rest is the silent symbol.
const Rest Symbol = "R"

// ReferenceHz is the tuning reference for A.
const ReferenceHz = 440.0

// referenceIndex is the position of A in alphabet.
const referenceIndex = 10

// alphabet in table order, rest first then chromatic from C.
var alphabet = [...]Symbol{
	Rest, "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// Table is an immutable symbol to frequency mapping.
type Table struct {
	freqs map[Symbol]float64
}

// Standard returns the shared equal-tempered table. It is built on first use
// and never modified afterwards.
var Standard = sync.OnceValue(newTable)

func newTable() *Table {
	freqs := make(map[Symbol]float64, len(alphabet))
	for i, sym := range alphabet {
		if sym == Rest {
			freqs[sym] = 0
			continue
		}
		freqs[sym] = ReferenceHz * math.Pow(2, float64(i-referenceIndex)/12.0)
	}

	return &Table{freqs: freqs}
}

// FrequencyOf returns the frequency in Hz of sym. The rest is 0 Hz.
func (t *Table) FrequencyOf(sym string) (float64, error) {
	hz, ok := t.freqs[Symbol(sym)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteSymbol, sym)
	}

	return hz, nil
}

// Symbols returns the alphabet in table order.
func Symbols() []Symbol {
	out := make([]Symbol, len(alphabet))
	copy(out, alphabet[:])
	return out
}

// Nearest returns the pitch class closest to hz, ignoring the octave.
// Non-positive or non-finite input yields Rest.
func (t *Table) Nearest(hz float64) Symbol {
	if hz <= 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
		return Rest
	}

	// semitones above C of the table octave
	semis := int(math.Round(12*math.Log2(hz/ReferenceHz))) + referenceIndex - 1
	semis %= 12
	if semis < 0 {
		semis += 12
	}

	return alphabet[semis+1]
}
