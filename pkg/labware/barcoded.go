package labware

import (
	"github.com/google/uuid"

	"github.com/CuriBio/labware-domain-models/pkg/validation"
)

// Barcode length bounds. Lab barcodes shorter than five characters are
// scanner noise in practice.
const (
	minBarcodeLength = 5
	maxBarcodeLength = 255
)

// BarcodedLabware associates a barcode with a labware definition,
// representing one physical, barcoded piece of SBS labware.
type BarcodedLabware struct {
	// UUID identifies the physical item. The zero value means unset.
	UUID uuid.UUID

	// Definition describes the labware geometry.
	Definition *Definition

	// Barcode is the scanned label, 5 to 255 characters when present.
	// Empty means not yet barcoded.
	Barcode string
}

// ValidateInternals validates the item and its nested definition. With
// autopopulate, unset UUIDs on both the item and the definition are
// generated in place.
func (b *BarcodedLabware) ValidateInternals(autopopulate bool) error {
	id, err := validation.UUID("uuid", b.UUID, autopopulate)
	if err != nil {
		return err
	}
	b.UUID = id
	if b.Definition == nil {
		return validation.New(validation.ErrCodeNullValue, "labware_definition",
			"barcoded labware requires a definition")
	}
	if err := b.Definition.ValidateInternals(autopopulate); err != nil {
		return err
	}
	return b.ValidateBarcode(true)
}

// ValidateBarcode checks the barcode length bounds. With allowEmpty an
// unset barcode passes; without it, absence fails with a NULL_VALUE
// validation error naming "barcode".
func (b *BarcodedLabware) ValidateBarcode(allowEmpty bool) error {
	return validation.String("barcode", b.Barcode, minBarcodeLength, maxBarcodeLength, allowEmpty)
}

// Equal reports structural equality: identity, barcode, and the nested
// definition must all match.
func (b *BarcodedLabware) Equal(other *BarcodedLabware) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.UUID == other.UUID &&
		b.Barcode == other.Barcode &&
		b.Definition.Equal(other.Definition)
}
