// Package rowlabel converts between zero-based row indices and the
// alphabetic row labels used to address wells on SBS-footprint labware.
//
// Labels follow the bijective base-26 scheme familiar from spreadsheet
// columns: A..Z cover indices 0..25, then AA, AB, ... continue from 26.
// There is no symbol for zero, so "A" and "AA" are distinct labels. This
// allows plates with more than 26 rows (a 1536-well plate has 32, ending
// at "AF") without changing the addressing scheme for smaller formats.
package rowlabel

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeIndex is returned by [Encode] when the row index is
	// negative. Row indices are zero-based and never negative.
	ErrNegativeIndex = errors.New("row index must not be negative")

	// ErrEmptyLabel is returned by [Decode] when the label is empty.
	ErrEmptyLabel = errors.New("row label must not be empty")
)

// InvalidCharError is returned by [Decode] when a label contains a
// character outside A-Z.
type InvalidCharError struct {
	Label string // the full label being decoded
	Char  byte   // the offending character
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("row label %q contains invalid character %q", e.Label, e.Char)
}

// Encode converts a zero-based row index to its alphabetic label.
// Index 0 maps to "A", 25 to "Z", 26 to "AA", and so on with the most
// significant letter first.
func Encode(index int) (string, error) {
	if index < 0 {
		return "", ErrNegativeIndex
	}
	// Bijective base-26: shift to 1-based, peel off the least
	// significant letter each round.
	var label []byte
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		label = append([]byte{byte((n-1)%26 + 'A')}, label...)
	}
	return string(label), nil
}

// Decode converts an alphabetic row label back to its zero-based index.
// It is the inverse of [Encode]: Decode(Encode(i)) == i for all i >= 0.
// Labels must be one or more uppercase letters A-Z.
func Decode(label string) (int, error) {
	if label == "" {
		return 0, ErrEmptyLabel
	}
	index := 0
	for i := 0; i < len(label); i++ {
		c := label[i]
		if c < 'A' || c > 'Z' {
			return 0, &InvalidCharError{Label: label, Char: c}
		}
		index = index*26 + int(c-'A') + 1
	}
	return index - 1, nil
}
