package entities

import (
	"fmt"
	"slices"

	"cabriolet/internal/domain"
)

// CanonicalVariant names the canonical table. An empty variant name selects
// it as well.
const CanonicalVariant = "canonical"

// Catalog holds the canonical table and the named content variants that
// coexist with it (earlier revisions, A/B wording).
type Catalog struct {
	canonical *Table
	variants  map[string]*Table
	names     []string
}

// NewCatalog builds a catalog. Variant tables are keyed by their own
// Variant() name, which must be unique and differ from the canonical one.
func NewCatalog(canonical *Table, variants ...*Table) (*Catalog, error) {
	if canonical == nil {
		return nil, fmt.Errorf("catalog: canonical table is nil")
	}
	c := &Catalog{
		canonical: canonical,
		variants:  make(map[string]*Table, len(variants)),
	}
	for _, v := range variants {
		name := v.Variant()
		if name == "" || name == CanonicalVariant || name == canonical.Variant() {
			return nil, fmt.Errorf("catalog: invalid variant name %q", name)
		}
		if _, dup := c.variants[name]; dup {
			return nil, fmt.Errorf("catalog: duplicate variant %q", name)
		}
		c.variants[name] = v
		c.names = append(c.names, name)
	}
	slices.Sort(c.names)
	return c, nil
}

// Canonical returns the canonical table.
func (c *Catalog) Canonical() *Table { return c.canonical }

// Variant selects a table by name.
func (c *Catalog) Variant(name string) (*Table, error) {
	if name == "" || name == CanonicalVariant || name == c.canonical.Variant() {
		return c.canonical, nil
	}
	t, ok := c.variants[name]
	if !ok {
		return nil, &domain.UnknownVariantError{Variant: name}
	}
	return t, nil
}

// Variants lists the canonical variant first, then the others sorted.
func (c *Catalog) Variants() []string {
	return append([]string{c.canonical.Variant()}, c.names...)
}
