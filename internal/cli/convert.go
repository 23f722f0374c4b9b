package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CuriBio/labware-domain-models/pkg/labware"
)

// convertCommand creates the convert command translating between well
// names and column-major linear indices.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		plate plateFlags
		pad   bool
	)

	cmd := &cobra.Command{
		Use:   "convert <well|index>",
		Short: "Convert between well names and linear well indices",
		Long: `Convert between well names and linear well indices.

A numeric argument is treated as a zero-based column-major index and
converted to a well name; anything else is parsed as a well name and
converted to its index. Indexing walks down each column before moving
to the next: on a 96-well plate A1 is 0, B1 is 1, and A2 is 8.`,
		Example: `  labware convert B7
  labware convert 42 --plate 384-well
  labware convert A02 --file myplate.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := plate.resolve()
			if err != nil {
				return err
			}

			arg := args[0]
			if index, err := strconv.Atoi(arg); err == nil {
				row, column, err := def.RowColumnFromWellIndex(index)
				if err != nil {
					return err
				}
				if err := def.ValidatePosition(row, column); err != nil {
					return err
				}
				name, err := def.WellName(row, column, pad)
				if err != nil {
					return err
				}
				fmt.Println(name)
				return nil
			}

			row, column, err := parseWell(arg)
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
			fmt.Println(index)
			return nil
		},
	}

	plate.register(cmd)
	cmd.Flags().BoolVar(&pad, "pad", false, "zero-pad single-digit columns on dense plates")

	return cmd
}

// parseWell wraps labware.ParseWellName, accepting lowercase input on
// the command line.
func parseWell(name string) (row, column int, err error) {
	return labware.ParseWellName(strings.ToUpper(name))
}
