// Package labware models SBS-footprint laboratory labware (microplates
// and similar containers) as validated domain objects and computes well
// positions in physical millimeter space.
//
// The central type is [Definition], which owns the plate dimensions and
// optional geometry (A1 center, well spacings, plate height) and exposes
// the addressing and coordinate operations: well name, row/column, and
// column-major linear index conversions; (x, y) well centers in the
// plate-local frame; and full 3D vectors to the top of a well under a
// caller-supplied [CoordinateSystem]. [Definition.Portrait] derives the
// portrait-orientation definition from a landscape one.
//
// Geometry fields are validated lazily: a definition with no plate
// height is perfectly valid until a top-of-well vector is requested, at
// which point the operation fails with [ErrMissingPlateHeight]. Each
// missing-geometry case has its own sentinel error so callers can react
// per field. There is no catch-and-continue and no silent defaulting
// anywhere in the package.
//
// # Addressing conventions
//
// Rows and columns are zero-based everywhere in the API; display names
// render the column 1-based ("A1" is row 0, column 0). Row labels use
// bijective base-26 (A..Z, then AA, AB, ...), so a 1536-well plate's
// last row is "AF". Linear well indices are column-major:
//
//	index = column*RowCount + row
//
// Downstream callers depend on this ordering; it is part of the contract.
//
// # Example
//
//	rows, cols := 8, 12
//	def := &labware.Definition{
//	    Name:        "96-well plate",
//	    RowCount:    &rows,
//	    ColumnCount: &cols,
//	}
//	name, _ := def.WellName(7, 11, false) // "H12"
//
// The package performs no I/O and holds no shared mutable state; aside
// from identity autopopulation during validation, every operation is
// side-effect-free and safe for concurrent read-only use.
package labware
