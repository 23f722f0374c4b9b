// Package cli implements the labware command-line interface.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/CuriBio/labware-domain-models/pkg/buildinfo"
	"github.com/CuriBio/labware-domain-models/pkg/catalog"
	"github.com/CuriBio/labware-domain-models/pkg/labware"
)

// appName is the application name used for display.
const appName = "labware"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Labware models SBS plates and computes well coordinates",
		Long:         `Labware is a CLI for SBS-footprint labware definitions: it converts between well names, row/column positions, and linear indices, and computes physical millimeter coordinates of wells for robotic positioning.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.platesCommand())
	root.AddCommand(c.wellsCommand())
	root.AddCommand(c.coordsCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.rotateCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// plateFlags is the pair of flags every plate-consuming command shares:
// a built-in catalog format or a TOML definition file.
type plateFlags struct {
	plate string
	file  string
}

func (f *plateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.plate, "plate", "p", "96-well", "built-in plate format (see 'labware plates')")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "labware definition TOML file (overrides --plate)")
}

// resolve produces the definition the flags point at. A file takes
// precedence over the built-in catalog.
func (f *plateFlags) resolve() (*labware.Definition, error) {
	if f.file != "" {
		def, err := catalog.Load(f.file)
		if err != nil {
			return nil, fmt.Errorf("load definition %s: %w", f.file, err)
		}
		return def, nil
	}
	def, ok := catalog.Get(f.plate)
	if !ok {
		return nil, fmt.Errorf("unknown plate format %q (available: %s)",
			f.plate, strings.Join(catalog.Names(), ", "))
	}
	return def, nil
}
