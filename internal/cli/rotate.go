package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/CuriBio/labware-domain-models/pkg/catalog"
)

// rotateCommand creates the rotate command emitting a portrait definition.
func (c *CLI) rotateCommand() *cobra.Command {
	var (
		plate  plateFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Derive the portrait definition of a landscape plate",
		Long: `Derive the portrait definition of a landscape plate.

The plate is rotated 90 degrees clockwise: row and column counts swap,
the two spacings swap, and the A1 center coordinates swap. The result
is written as a definition TOML file (stdout by default). The portrait
definition is a new, unnamed entity without an identity of its own.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := plate.resolve()
			if err != nil {
				return err
			}

			portrait := def.Portrait()

			if output == "" {
				return catalog.Encode(os.Stdout, portrait)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := catalog.Encode(f, portrait); err != nil {
				return err
			}
			printSuccess("Portrait definition written")
			printFile(output)
			return nil
		},
	}

	plate.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
