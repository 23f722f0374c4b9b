package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CuriBio/labware-domain-models/pkg/catalog"
)

// platesCommand creates the plates command listing the built-in catalog.
func (c *CLI) platesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plates",
		Short: "List the built-in plate formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range catalog.Names() {
				def, _ := catalog.Get(name)
				dims := fmt.Sprintf("%2d x %2d", *def.RowCount, *def.ColumnCount)
				spacing := "unset"
				if def.RowSpacing != nil {
					spacing = fmt.Sprintf("%g mm pitch", *def.RowSpacing)
				}
				fmt.Println(StyleHighlight.Render(fmt.Sprintf("%-10s", name)) +
					StyleValue.Render(dims) + "  " + StyleDim.Render(spacing))
			}
			return nil
		},
	}
}
