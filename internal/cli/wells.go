package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CuriBio/labware-domain-models/pkg/labware"
)

// wellsCommand creates the wells command rendering a plate's well-name grid.
func (c *CLI) wellsCommand() *cobra.Command {
	var (
		plate plateFlags
		pad   bool
	)

	cmd := &cobra.Command{
		Use:   "wells",
		Short: "Print the well-name grid of a plate",
		Long: `Print the well-name grid of a plate.

Each cell shows the display name of the well at that row and column.
With --pad, single-digit columns on dense plates (more than 10 columns)
are zero-padded, e.g. A01 instead of A1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := plate.resolve()
			if err != nil {
				return err
			}
			grid, err := wellGrid(def, pad)
			if err != nil {
				return err
			}
			c.Logger.Debugf("rendering %dx%d grid", *def.RowCount, *def.ColumnCount)
			fmt.Print(grid)
			return nil
		},
	}

	plate.register(cmd)
	cmd.Flags().BoolVar(&pad, "pad", false, "zero-pad single-digit columns on dense plates")

	return cmd
}

// wellGrid renders the full grid of well names, one row per plate row,
// with a dim column header. Cells are right-aligned to the widest name.
func wellGrid(def *labware.Definition, pad bool) (string, error) {
	if err := def.ValidateCounts(); err != nil {
		return "", err
	}
	rows, cols := *def.RowCount, *def.ColumnCount

	names := make([][]string, rows)
	width := 0
	for r := 0; r < rows; r++ {
		names[r] = make([]string, cols)
		for col := 0; col < cols; col++ {
			name, err := def.WellName(r, col, pad)
			if err != nil {
				return "", err
			}
			names[r][col] = name
			if len(name) > width {
				width = len(name)
			}
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", 3))
	for col := 0; col < cols; col++ {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%*d", width+1, col+1)))
	}
	b.WriteString("\n")
	for r := 0; r < rows; r++ {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%-3s", rowLabelOf(names[r][0]))))
		for col := 0; col < cols; col++ {
			b.WriteString(fmt.Sprintf("%*s", width+1, names[r][col]))
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

// rowLabelOf extracts the leading alphabetic run of a well name.
func rowLabelOf(name string) string {
	for i := 0; i < len(name); i++ {
		if name[i] < 'A' || name[i] > 'Z' {
			return name[:i]
		}
	}
	return name
}
