package labware

// WellCoordinate is an (x, y) point in the plate-local frame, in
// millimeters. The origin sits at the rear-left edge of the plate near
// A1: y increases moving down the rows, x increases moving right across
// the columns.
type WellCoordinate struct {
	X float64
	Y float64
}

// CartesianVector is an (x, y, z) vector relative to the origin of an
// outer coordinate system, in millimeters.
type CartesianVector struct {
	X float64
	Y float64
	Z float64
}

// CoordinateSystem describes where a plate's local origin sits within an
// outer right-handed reference frame, and which way that frame's z-axis
// points. It is pure configuration with no identity; the zero value is a
// frame whose origin coincides with the plate origin and whose z-axis
// points down.
type CoordinateSystem struct {
	XOfPlateOrigin float64
	YOfPlateOrigin float64
	ZOfPlateOrigin float64
	ZPointsUp      bool
}

// WellPosition computes the (x, y) center of a well in the plate-local
// frame. Starting from the center of A1, each row beyond the first adds
// one row spacing to y and each column beyond the first adds one column
// spacing to x; xOffset and yOffset are applied last.
//
// Returns [ErrMissingA1Center] when the definition has no A1 center, and
// [ErrMissingRowSpacing] or [ErrMissingColumnSpacing] when a spacing is
// needed but unset. Row 0 and column 0 never need their spacing.
func (d *Definition) WellPosition(row, column int, xOffset, yOffset float64) (WellCoordinate, error) {
	if d.CenterOfA1 == nil {
		return WellCoordinate{}, ErrMissingA1Center
	}
	x, y := d.CenterOfA1.X, d.CenterOfA1.Y
	if row > 0 {
		if d.RowSpacing == nil {
			return WellCoordinate{}, ErrMissingRowSpacing
		}
		y += *d.RowSpacing * float64(row)
	}
	if column > 0 {
		if d.ColumnSpacing == nil {
			return WellCoordinate{}, ErrMissingColumnSpacing
		}
		x += *d.ColumnSpacing * float64(column)
	}
	x += xOffset
	y += yOffset
	return WellCoordinate{X: x, Y: y}, nil
}

// TopOfWell computes the cartesian vector from the origin of cs to the
// top of a well, accounting for both the well's position on the plate and
// the plate's position in the outer frame.
//
// The offset arguments are expressed as if z points up: towards the right
// plate edge (+x), towards the rear of the plate, and towards the lid.
// When cs.ZPointsUp is true the plate-local y (which increases moving
// down the rows) is negated to stay right-handed and z is positive; when
// it is false y is kept and z is negative.
//
// Returns [ErrMissingPlateHeight] when the definition has no plate
// height, plus any error from [Definition.WellPosition].
func (d *Definition) TopOfWell(row, column int, cs CoordinateSystem, offsetTowardsRightPlateEdge, offsetTowardsRearOfPlate, offsetTowardsLidOfPlate float64) (CartesianVector, error) {
	if d.PlateHeight == nil {
		return CartesianVector{}, ErrMissingPlateHeight
	}

	// Rear of the plate is the negative-y direction here.
	well, err := d.WellPosition(row, column, offsetTowardsRightPlateEdge, -offsetTowardsRearOfPlate)
	if err != nil {
		return CartesianVector{}, err
	}

	yTransform, zTransform := 1.0, -1.0
	if cs.ZPointsUp {
		yTransform, zTransform = -1.0, 1.0
	}

	x := well.X
	y := well.Y * yTransform
	z := (*d.PlateHeight + offsetTowardsLidOfPlate) * zTransform

	// Translate onto the plate origin's offset from the frame origin.
	x += cs.XOfPlateOrigin
	y += cs.YOfPlateOrigin
	z += cs.ZOfPlateOrigin

	return CartesianVector{X: x, Y: y, Z: z}, nil
}
