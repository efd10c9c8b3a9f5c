package application

import (
	"cmp"
	"slices"

	"cabriolet/internal/domain/entities"
)

// MissingKey is a key requested by a caller but absent from the table.
type MissingKey struct {
	Key  entities.Key
	Refs []entities.Ref
}

// AuditReport cross-checks the keys callers request against the table.
type AuditReport struct {
	Missing  []MissingKey
	Orphaned []entities.Key
}

// OK reports whether every requested key exists. Orphaned entries are
// reported but do not fail the audit.
func (r AuditReport) OK() bool { return len(r.Missing) == 0 }

// Audit compares usage against table. Both result slices are sorted by key.
func Audit(table *entities.Table, usage entities.Usage) AuditReport {
	var report AuditReport

	for key, refs := range usage {
		if !table.Has(key) {
			report.Missing = append(report.Missing, MissingKey{Key: key, Refs: slices.Clone(refs)})
		}
	}
	slices.SortFunc(report.Missing, func(a, b MissingKey) int {
		return cmp.Compare(a.Key, b.Key)
	})

	for _, key := range table.Keys() {
		if _, used := usage[key]; !used {
			report.Orphaned = append(report.Orphaned, key)
		}
	}
	return report
}
