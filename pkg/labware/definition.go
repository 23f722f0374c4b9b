package labware

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/CuriBio/labware-domain-models/pkg/labware/rowlabel"
	"github.com/CuriBio/labware-domain-models/pkg/validation"
)

// Bounds for row and column counts. A 1536-well plate is 32x48, the
// densest supported SBS format, so nothing is larger than that.
const (
	MaxRowCount    = 32
	MaxColumnCount = 48

	maxNameLength = 255
)

// Definition is an abstract definition of a piece of labware.
//
// All measurements are in millimeters. The plate-local coordinate system
// starts at the rear-left edge of the plate at the bottom surface
// (0, 0, 0), near A1. Y increases moving down the rows.
//
// Every field other than the counts used by an operation is optional:
// nil means unset, and an operation that needs an unset field fails with
// a typed error naming exactly that field. Instances are treated as
// immutable once validated; the only mutation any method performs is
// identity autopopulation in [Definition.ValidateInternals].
type Definition struct {
	// UUID identifies the definition. The zero value means unset.
	UUID uuid.UUID

	// Name is a descriptive written name, at most 255 characters.
	Name string

	// RowCount and ColumnCount give the plate dimensions.
	RowCount    *int
	ColumnCount *int

	// CenterOfA1 anchors the well grid in the plate-local frame.
	CenterOfA1 *WellCoordinate

	// PlateHeight is the height of the plate, not including the lid.
	PlateHeight *float64

	// RowSpacing and ColumnSpacing are the center-to-center distances
	// between adjacent wells, e.g. 9 mm for a 96-well plate.
	RowSpacing    *float64
	ColumnSpacing *float64

	// DistanceToLiquid is measured from z=0 (the deck) up, including the
	// thickness of the plate bottom and any gap between bottom and deck.
	// Informational only; not used in any coordinate math here.
	DistanceToLiquid *float64
}

// describe renders a short diagnostic form of the definition for error
// messages.
func (d *Definition) describe() string {
	name := d.Name
	if name == "" {
		name = "<unnamed>"
	}
	rows, cols := "?", "?"
	if d.RowCount != nil {
		rows = strconv.Itoa(*d.RowCount)
	}
	if d.ColumnCount != nil {
		cols = strconv.Itoa(*d.ColumnCount)
	}
	return fmt.Sprintf("%s (%sx%s)", name, rows, cols)
}

// ValidateInternals validates the whole definition: identity, name, and
// the row/column counts. With autopopulate an unset UUID is replaced by a
// freshly generated one; this is the only mutation. Callers sharing a
// definition across goroutines must serialize autopopulating validation.
func (d *Definition) ValidateInternals(autopopulate bool) error {
	id, err := validation.UUID("uuid", d.UUID, autopopulate)
	if err != nil {
		return err
	}
	d.UUID = id
	if err := validation.String("name", d.Name, 0, maxNameLength, true); err != nil {
		return err
	}
	return d.ValidateCounts()
}

// ValidateCounts checks that the row and column counts are set and lie
// within [1, MaxRowCount] and [1, MaxColumnCount]. Failures are
// *validation.Error values naming "row_count" or "column_count".
func (d *Definition) ValidateCounts() error {
	if _, err := validation.Int("row_count", d.RowCount, 1, MaxRowCount); err != nil {
		return err
	}
	if _, err := validation.Int("column_count", d.ColumnCount, 1, MaxColumnCount); err != nil {
		return err
	}
	return nil
}

// ValidatePosition checks whether a zero-based (row, column) position
// exists on this plate. The definition's own counts are validated first,
// then the half-open ranges [0, RowCount) and [0, ColumnCount) apply.
// Out-of-bounds positions fail with a *PositionError.
func (d *Definition) ValidatePosition(row, column int) error {
	if err := d.ValidateCounts(); err != nil {
		return err
	}
	if column >= *d.ColumnCount || row >= *d.RowCount {
		return &PositionError{Row: row, Column: column, Definition: d}
	}
	return nil
}

// formatColumn renders a zero-based column as its 1-based display string.
// With padZeros, dense plates (more than 10 columns) left-pad single
// digits to width 2; the width stays 2 regardless of plate size, which
// covers every format up to 99 columns.
func (d *Definition) formatColumn(column int, padZeros bool) (string, error) {
	s := strconv.Itoa(column + 1)
	if padZeros {
		if err := d.ValidateCounts(); err != nil {
			return "", err
		}
		if *d.ColumnCount > 10 && len(s) < 2 {
			s = "0" + s
		}
	}
	return s, nil
}

// WellName renders the display name of a well from its zero-based row
// and column, e.g. (0, 0) is "A1" and, with padding on a 96-well plate,
// "A01". Rows beyond Z continue with two-letter labels (AA, AB, ...).
func (d *Definition) WellName(row, column int, padZeros bool) (string, error) {
	label, err := rowlabel.Encode(row)
	if err != nil {
		return "", err
	}
	columnStr, err := d.formatColumn(column, padZeros)
	if err != nil {
		return "", err
	}
	return label + columnStr, nil
}

// WellIndex computes the linear well index of a zero-based (row, column)
// position. Indexing is column-major: index = column*RowCount + row, so
// on a 96-well plate A1 is 0, B1 is 1, and A2 is 8. Requires RowCount to
// be set and valid.
func (d *Definition) WellIndex(row, column int) (int, error) {
	rows, err := validation.Int("row_count", d.RowCount, 1, MaxRowCount)
	if err != nil {
		return 0, err
	}
	return column*rows + row, nil
}

// RowColumnFromWellIndex recovers the zero-based (row, column) position
// from a column-major linear well index.
func (d *Definition) RowColumnFromWellIndex(index int) (row, column int, err error) {
	if err := d.ValidateCounts(); err != nil {
		return 0, 0, err
	}
	return index % *d.RowCount, index / *d.RowCount, nil
}

// WellNameFromIndex renders the display name of the well at a
// column-major linear index.
func (d *Definition) WellNameFromIndex(index int, padZeros bool) (string, error) {
	row, column, err := d.RowColumnFromWellIndex(index)
	if err != nil {
		return "", err
	}
	return d.WellName(row, column, padZeros)
}

// WellIndexFromName parses a well name like "B7" or "A02" and computes
// its column-major linear index on this plate.
func (d *Definition) WellIndexFromName(name string) (int, error) {
	row, column, err := ParseWellName(name)
	if err != nil {
		return 0, err
	}
	return d.WellIndex(row, column)
}

// ParseWellName splits a well name into its zero-based row and column.
// The leading run of uppercase letters is the row label, decoded with
// the rowlabel codec; the remaining characters are the 1-based column
// number, with zero padding tolerated ("A02" is row 0, column 1).
// Needs no plate dimensions, so it is a free function.
func ParseWellName(name string) (row, column int, err error) {
	split := len(name)
	for i := 0; i < len(name); i++ {
		if name[i] < 'A' || name[i] > 'Z' {
			split = i
			break
		}
	}
	label, digits := name[:split], name[split:]

	row, err = rowlabel.Decode(label)
	if err != nil {
		return 0, 0, err
	}
	if digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, 0, validation.New(validation.ErrCodeInvalidValue, "well_name",
			"%q does not end in a column number", name)
	}
	oneBased, err := strconv.Atoi(digits)
	if err != nil {
		return 0, 0, validation.New(validation.ErrCodeInvalidValue, "well_name",
			"cannot parse column number in %q", name)
	}
	return row, oneBased - 1, nil
}

// Portrait creates the portrait version of this labware by rotating it
// 90 degrees clockwise: counts and spacings swap, the A1 center swaps to
// (y, x), and plate height and distance to liquid carry over. A1 of the
// portrait definition still sits at the rear left, where the last well
// of column 1 sat before rotation.
//
// The result is a distinct, unnamed entity with an unset UUID; nothing
// is aliased with the source and the source is never mutated.
func (d *Definition) Portrait() *Definition {
	portrait := &Definition{
		RowCount:         copyOf(d.ColumnCount),
		ColumnCount:      copyOf(d.RowCount),
		RowSpacing:       copyOf(d.ColumnSpacing),
		ColumnSpacing:    copyOf(d.RowSpacing),
		PlateHeight:      copyOf(d.PlateHeight),
		DistanceToLiquid: copyOf(d.DistanceToLiquid),
	}
	if d.CenterOfA1 != nil {
		portrait.CenterOfA1 = &WellCoordinate{X: d.CenterOfA1.Y, Y: d.CenterOfA1.X}
	}
	return portrait
}

// Equal reports structural equality over all public attributes,
// including identity. Nil optionals only match nil optionals.
func (d *Definition) Equal(other *Definition) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.UUID == other.UUID &&
		d.Name == other.Name &&
		eqPtr(d.RowCount, other.RowCount) &&
		eqPtr(d.ColumnCount, other.ColumnCount) &&
		eqPtr(d.CenterOfA1, other.CenterOfA1) &&
		eqPtr(d.PlateHeight, other.PlateHeight) &&
		eqPtr(d.RowSpacing, other.RowSpacing) &&
		eqPtr(d.ColumnSpacing, other.ColumnSpacing) &&
		eqPtr(d.DistanceToLiquid, other.DistanceToLiquid)
}

func copyOf[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
