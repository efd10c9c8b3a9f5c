package output

import "cabriolet/internal/domain/entities"

// TextCatalog exposes the loaded text tables, one per content variant.
type TextCatalog interface {
	// Variant returns the table for a variant name ("" selects the canonical one).
	Variant(name string) (*entities.Table, error)
	// Variants lists the available variant names, canonical first.
	Variants() []string
}
