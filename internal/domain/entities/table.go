package entities

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"cabriolet/internal/domain"
)

// Table is an immutable, namespaced set of entries for one language and
// content variant. All methods are safe for concurrent use.
type Table struct {
	variant     string
	tag         language.Tag
	entries     map[Key]Entry
	keys        []Key
	namespaces  []string
	byNamespace map[string][]Key
}

// NewTable validates entries and builds a table. Every key needs a
// namespace and a name, keys are unique, and no key may also be the parent
// of another key.
func NewTable(variant string, tag language.Tag, entries []Entry) (*Table, error) {
	t := &Table{
		variant:     variant,
		tag:         tag,
		entries:     make(map[Key]Entry, len(entries)),
		keys:        make([]Key, 0, len(entries)),
		byNamespace: make(map[string][]Key),
	}

	parents := make(map[Key]bool)
	for _, e := range entries {
		if err := validateKey(e.Key()); err != nil {
			return nil, err
		}
		if e.Kind() < KindLiteral || e.Kind() > KindTemplate {
			return nil, fmt.Errorf("table: key %q: uninitialized entry", e.Key())
		}
		if _, dup := t.entries[e.Key()]; dup {
			return nil, fmt.Errorf("table: duplicate key %q", e.Key())
		}
		t.entries[e.Key()] = e
		t.keys = append(t.keys, e.Key())

		segs := e.Key().Segments()
		for i := 1; i < len(segs); i++ {
			parents[Key(strings.Join(segs[:i], "."))] = true
		}
	}

	for _, k := range t.keys {
		if parents[k] {
			return nil, fmt.Errorf("table: key %q is both a leaf and a namespace", k)
		}
	}

	slices.Sort(t.keys)
	for _, k := range t.keys {
		ns := k.Namespace()
		if _, ok := t.byNamespace[ns]; !ok {
			t.namespaces = append(t.namespaces, ns)
		}
		t.byNamespace[ns] = append(t.byNamespace[ns], k)
	}

	return t, nil
}

func validateKey(k Key) error {
	segs := k.Segments()
	if len(segs) < 2 {
		return fmt.Errorf("table: key %q has no namespace", k)
	}
	for _, s := range segs {
		if !isIdentifier(s) {
			return fmt.Errorf("table: key %q has an invalid segment %q", k, s)
		}
	}
	return nil
}

// Variant is the content variant name the table was built for.
func (t *Table) Variant() string { return t.variant }

// Tag is the language of the table.
func (t *Table) Tag() language.Tag { return t.tag }

// Len is the number of entries.
func (t *Table) Len() int { return len(t.keys) }

// Get returns the entry stored under key.
func (t *Table) Get(key Key) (Entry, error) {
	e, ok := t.entries[key]
	if !ok {
		return Entry{}, &domain.UnknownKeyError{Key: string(key)}
	}
	return e, nil
}

func (t *Table) Has(key Key) bool {
	_, ok := t.entries[key]
	return ok
}

// Keys returns every key, sorted.
func (t *Table) Keys() []Key { return slices.Clone(t.keys) }

// Namespaces returns the top-level namespaces, sorted.
func (t *Table) Namespaces() []string { return slices.Clone(t.namespaces) }

// KeysIn returns the sorted keys of a namespace, or nil for an unknown one.
func (t *Table) KeysIn(namespace string) []Key {
	return slices.Clone(t.byNamespace[namespace])
}
