package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CuriBio/labware-domain-models/pkg/labware"
)

// coordsCommand creates the coords command computing well coordinates.
func (c *CLI) coordsCommand() *cobra.Command {
	var (
		plate  plateFlags
		cs     labware.CoordinateSystem
		right  float64
		rear   float64
		lid    float64
		xyOnly bool
	)

	cmd := &cobra.Command{
		Use:   "coords <well>",
		Short: "Compute the physical coordinates of a well",
		Long: `Compute the physical coordinates of a well.

Prints the (x, y) well center in the plate-local frame and, unless
--xy is given, the full cartesian vector to the top of the well under
the coordinate system described by the --origin-* and --z-up flags.
All values are millimeters.`,
		Example: `  labware coords B7
  labware coords A01 --plate 384-well
  labware coords H12 --origin-x 112.5 --origin-y 75.0 --z-up`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := plate.resolve()
			if err != nil {
				return err
			}
			return c.runCoords(def, args[0], cs, right, rear, lid, xyOnly)
		},
	}

	plate.register(cmd)
	cmd.Flags().Float64Var(&cs.XOfPlateOrigin, "origin-x", 0, "x of the plate origin in the outer frame")
	cmd.Flags().Float64Var(&cs.YOfPlateOrigin, "origin-y", 0, "y of the plate origin in the outer frame")
	cmd.Flags().Float64Var(&cs.ZOfPlateOrigin, "origin-z", 0, "z of the plate origin in the outer frame")
	cmd.Flags().BoolVar(&cs.ZPointsUp, "z-up", false, "outer frame z-axis points up")
	cmd.Flags().Float64Var(&right, "toward-right", 0, "offset towards the right plate edge")
	cmd.Flags().Float64Var(&rear, "toward-rear", 0, "offset towards the rear of the plate")
	cmd.Flags().Float64Var(&lid, "toward-lid", 0, "offset towards the lid of the plate")
	cmd.Flags().BoolVar(&xyOnly, "xy", false, "print only the plate-local well center")

	return cmd
}

func (c *CLI) runCoords(def *labware.Definition, well string, cs labware.CoordinateSystem, right, rear, lid float64, xyOnly bool) error {
	row, column, err := parseWell(well)
	if err != nil {
		return err
	}
	if err := def.ValidatePosition(row, column); err != nil {
		return err
	}
	index, err := def.WellIndex(row, column)
	if err != nil {
		return err
	}

	printKeyValue("well", well)
	printKeyValue("row/column", fmt.Sprintf("%d, %d (zero-based)", row, column))
	printKeyValue("index", fmt.Sprintf("%d (column-major)", index))

	center, err := def.WellPosition(row, column, 0, 0)
	if err != nil {
		return err
	}
	printKeyValue("center", fmt.Sprintf("(%g, %g) mm", center.X, center.Y))

	if xyOnly {
		return nil
	}

	vec, err := def.TopOfWell(row, column, cs, right, rear, lid)
	if err != nil {
		return err
	}
	printKeyValue("top of well", fmt.Sprintf("(%g, %g, %g) mm", vec.X, vec.Y, vec.Z))
	return nil
}
