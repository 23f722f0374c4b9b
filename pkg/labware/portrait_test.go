package labware

import (
	"testing"

	"github.com/google/uuid"
)

func TestPortraitSwapsDimensions(t *testing.T) {
	def := plate(8, 12)
	def.Name = "96-well plate"
	def.UUID = uuid.New()
	def.RowSpacing = floatp(9)
	def.ColumnSpacing = floatp(9)
	def.PlateHeight = floatp(14.35)
	def.DistanceToLiquid = floatp(3.1)
	def.CenterOfA1 = &WellCoordinate{X: 14.38, Y: 11.24}

	portrait := def.Portrait()

	if *portrait.RowCount != 12 || *portrait.ColumnCount != 8 {
		t.Errorf("Portrait() counts = %dx%d, want 12x8", *portrait.RowCount, *portrait.ColumnCount)
	}
	if *portrait.RowSpacing != 9 || *portrait.ColumnSpacing != 9 {
		t.Errorf("Portrait() spacings = (%v, %v), want (9, 9)", *portrait.RowSpacing, *portrait.ColumnSpacing)
	}
	if *portrait.PlateHeight != 14.35 {
		t.Errorf("Portrait() plate height = %v, want 14.35", *portrait.PlateHeight)
	}
	if *portrait.DistanceToLiquid != 3.1 {
		t.Errorf("Portrait() distance to liquid = %v, want 3.1", *portrait.DistanceToLiquid)
	}
	if got := *portrait.CenterOfA1; got != (WellCoordinate{X: 11.24, Y: 14.38}) {
		t.Errorf("Portrait() A1 center = %+v, want swapped (11.24, 14.38)", got)
	}

	// The rotated definition is a distinct, unnamed entity.
	if portrait.UUID != uuid.Nil {
		t.Errorf("Portrait() carried over UUID %v", portrait.UUID)
	}
	if portrait.Name != "" {
		t.Errorf("Portrait() carried over name %q", portrait.Name)
	}
}

func TestPortraitAsymmetricAndPartial(t *testing.T) {
	def := &Definition{
		RowCount:   intp(8),
		RowSpacing: floatp(9.01),
	}

	portrait := def.Portrait()

	if portrait.RowCount != nil {
		t.Errorf("Portrait() row count = %v, want unset (source column count was unset)", *portrait.RowCount)
	}
	if portrait.ColumnCount == nil || *portrait.ColumnCount != 8 {
		t.Error("Portrait() column count not taken from source row count")
	}
	if portrait.ColumnSpacing == nil || *portrait.ColumnSpacing != 9.01 {
		t.Error("Portrait() column spacing not taken from source row spacing")
	}
	if portrait.RowSpacing != nil {
		t.Errorf("Portrait() row spacing = %v, want unset", *portrait.RowSpacing)
	}
	if portrait.CenterOfA1 != nil {
		t.Errorf("Portrait() A1 center = %+v, want unset", *portrait.CenterOfA1)
	}
}

func TestPortraitDoesNotAliasSource(t *testing.T) {
	def := plate(8, 12)
	def.RowSpacing = floatp(9)
	def.CenterOfA1 = &WellCoordinate{X: 14.38, Y: 11.24}

	portrait := def.Portrait()
	*portrait.RowCount = 1
	*portrait.ColumnSpacing = 99
	portrait.CenterOfA1.X = 0

	if *def.ColumnCount != 12 || *def.RowSpacing != 9 || def.CenterOfA1.X != 14.38 {
		t.Error("mutating the portrait definition changed the source")
	}
}
