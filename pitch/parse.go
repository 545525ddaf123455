// SPDX-License-Identifier: EPL-2.0

package pitch

import (
	"fmt"
	"unicode/utf8"
)

// Parse splits seq into symbols. A letter followed by '#' is read as one sharp
// symbol; every other letter is a natural or the rest.
func Parse(seq string) ([]Symbol, error) {
	if seq == "" {
		return nil, ErrEmptySequence
	}

	notes := make([]Symbol, 0, len(seq))
	for i := 0; i < len(seq); i++ {
		end := i + 1
		if end < len(seq) && seq[end] == '#' {
			end++
		}

		sym := Symbol(seq[i:end])
		if !known(sym) {
			bad := string(sym)
			if seq[i] >= utf8.RuneSelf {
				r, _ := utf8.DecodeRuneInString(seq[i:])
				bad = string(r)
			}
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidNoteSymbol, bad, i)
		}

		notes = append(notes, sym)
		i = end - 1
	}

	return notes, nil
}

func known(sym Symbol) bool {
	for _, s := range alphabet {
		if s == sym {
			return true
		}
	}
	return false
}
