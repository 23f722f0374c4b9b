package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CuriBio/labware-domain-models/pkg/catalog"
	"github.com/CuriBio/labware-domain-models/pkg/labware"
)

// validateCommand creates the validate command checking a definition file.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a labware definition TOML file",
		Long: `Validate a labware definition TOML file.

Row and column counts are checked against the supported bounds
(at most 32 rows and 48 columns, the 1536-well format). Optional
geometry fields are reported but their absence is not an error:
a definition only needs the fields the operations it is used for
require.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := catalog.Load(args[0])
			if err != nil {
				return err
			}

			if err := def.ValidateInternals(true); err != nil {
				printError("Definition is invalid")
				printDetail("%v", err)
				return err
			}

			printSuccess("Definition is valid")
			if def.Name != "" {
				printKeyValue("name", def.Name)
			}
			printKeyValue("wells", wellCount(def))

			for _, field := range []struct {
				name string
				set  bool
			}{
				{"a1_center", def.CenterOfA1 != nil},
				{"row_spacing", def.RowSpacing != nil},
				{"column_spacing", def.ColumnSpacing != nil},
				{"plate_height", def.PlateHeight != nil},
				{"distance_to_liquid", def.DistanceToLiquid != nil},
			} {
				if field.set {
					continue
				}
				printWarning("%s is unset; operations needing it will fail", field.name)
			}
			return nil
		},
	}
}

func wellCount(def *labware.Definition) string {
	rows, cols := *def.RowCount, *def.ColumnCount
	return fmt.Sprintf("%d (%dx%d)", rows*cols, rows, cols)
}
