package labware

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingA1Center is returned by [Definition.WellPosition] and
	// [Definition.TopOfWell] when the definition has no A1 center. Well
	// coordinates are anchored on the center of well A1, so nothing can
	// be computed without it.
	ErrMissingA1Center = errors.New("well coordinates require the center of A1")

	// ErrMissingRowSpacing is returned by [Definition.WellPosition] when a
	// row index greater than zero is requested but the definition has no
	// row center-to-center spacing. Row zero never needs the spacing.
	ErrMissingRowSpacing = errors.New("well coordinates require the row center-to-center spacing")

	// ErrMissingColumnSpacing is returned by [Definition.WellPosition] when
	// a column index greater than zero is requested but the definition has
	// no column center-to-center spacing. Column zero never needs the spacing.
	ErrMissingColumnSpacing = errors.New("well coordinates require the column center-to-center spacing")

	// ErrMissingPlateHeight is returned by [Definition.TopOfWell] when the
	// definition has no plate height. The z component of a top-of-well
	// vector is derived from the plate height.
	ErrMissingPlateHeight = errors.New("cartesian vectors require the plate height")
)

// PositionError is returned by [Definition.ValidatePosition] when a
// zero-based (row, column) position falls outside the plate bounds. It
// carries the offending coordinates and the definition for diagnostics.
type PositionError struct {
	Row        int
	Column     int
	Definition *Definition
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("position (row %d, column %d) is invalid for labware definition %s",
		e.Row, e.Column, e.Definition.describe())
}
