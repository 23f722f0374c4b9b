// Package catalog provides labware definitions from TOML files and a
// built-in set of standard SBS plate formats.
//
// A definition file looks like:
//
//	name = "96-well standard"
//	rows = 8
//	columns = 12
//	plate_height = 14.35
//	row_spacing = 9.0
//	column_spacing = 9.0
//
//	[a1_center]
//	x = 14.38
//	y = 11.24
//
// Every key except rows and columns is optional, mirroring the optional
// geometry fields of [labware.Definition].
package catalog

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/CuriBio/labware-domain-models/pkg/labware"
)

// document is the on-disk TOML shape of a labware definition.
type document struct {
	Name             string   `toml:"name,omitempty"`
	Rows             *int     `toml:"rows,omitempty"`
	Columns          *int     `toml:"columns,omitempty"`
	PlateHeight      *float64 `toml:"plate_height,omitempty"`
	RowSpacing       *float64 `toml:"row_spacing,omitempty"`
	ColumnSpacing    *float64 `toml:"column_spacing,omitempty"`
	DistanceToLiquid *float64 `toml:"distance_to_liquid,omitempty"`
	A1Center         *point   `toml:"a1_center,omitempty"`
}

type point struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

func (doc *document) definition() *labware.Definition {
	def := &labware.Definition{
		Name:             doc.Name,
		RowCount:         doc.Rows,
		ColumnCount:      doc.Columns,
		PlateHeight:      doc.PlateHeight,
		RowSpacing:       doc.RowSpacing,
		ColumnSpacing:    doc.ColumnSpacing,
		DistanceToLiquid: doc.DistanceToLiquid,
	}
	if doc.A1Center != nil {
		def.CenterOfA1 = &labware.WellCoordinate{X: doc.A1Center.X, Y: doc.A1Center.Y}
	}
	return def
}

// Load reads a labware definition from a TOML file. The result is not
// validated; callers decide whether they need ValidateCounts or the full
// ValidateInternals.
func Load(path string) (*labware.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc.definition(), nil
}

// Encode writes a labware definition to w in the definition-file TOML
// schema, the inverse of [Load].
func Encode(w io.Writer, def *labware.Definition) error {
	doc := document{
		Name:             def.Name,
		Rows:             def.RowCount,
		Columns:          def.ColumnCount,
		PlateHeight:      def.PlateHeight,
		RowSpacing:       def.RowSpacing,
		ColumnSpacing:    def.ColumnSpacing,
		DistanceToLiquid: def.DistanceToLiquid,
	}
	if def.CenterOfA1 != nil {
		doc.A1Center = &point{X: def.CenterOfA1.X, Y: def.CenterOfA1.Y}
	}
	return toml.NewEncoder(w).Encode(doc)
}

// Names lists the built-in plate formats in ascending well-count order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := builtin[names[i]], builtin[names[j]]
		return *a.RowCount**a.ColumnCount < *b.RowCount**b.ColumnCount
	})
	return names
}

// Get returns a built-in plate format by name, e.g. "96-well". The
// returned definition is a fresh copy each call so validation can
// populate identities without touching the catalog.
func Get(name string) (*labware.Definition, bool) {
	def, ok := builtin[name]
	if !ok {
		return nil, false
	}
	return clone(def), true
}

func clone(def *labware.Definition) *labware.Definition {
	c := *def
	c.RowCount = copyInt(def.RowCount)
	c.ColumnCount = copyInt(def.ColumnCount)
	c.PlateHeight = copyFloat(def.PlateHeight)
	c.RowSpacing = copyFloat(def.RowSpacing)
	c.ColumnSpacing = copyFloat(def.ColumnSpacing)
	c.DistanceToLiquid = copyFloat(def.DistanceToLiquid)
	if def.CenterOfA1 != nil {
		center := *def.CenterOfA1
		c.CenterOfA1 = &center
	}
	return &c
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// builtin holds the standard SBS formats with typical ANSI/SLAS
// geometry, millimeters throughout.
var builtin = map[string]*labware.Definition{
	"6-well":    standard(2, 3, 39.12, 24.76, 23.16, 20.27),
	"24-well":   standard(4, 6, 19.3, 15.13, 13.84, 17.4),
	"96-well":   standard(8, 12, 9, 14.38, 11.24, 14.35),
	"384-well":  standard(16, 24, 4.5, 12.13, 8.99, 14.35),
	"1536-well": standard(32, 48, 2.25, 11.01, 7.87, 10.4),
}

func standard(rows, cols int, spacing, a1X, a1Y, height float64) *labware.Definition {
	rowSpacing, columnSpacing := spacing, spacing
	return &labware.Definition{
		Name:          fmt.Sprintf("%d-well standard", rows*cols),
		RowCount:      &rows,
		ColumnCount:   &cols,
		RowSpacing:    &rowSpacing,
		ColumnSpacing: &columnSpacing,
		PlateHeight:   &height,
		CenterOfA1:    &labware.WellCoordinate{X: a1X, Y: a1Y},
	}
}
