// Package record holds the per-cycle in-memory price record table.
package record

import (
	"time"

	"github.com/shopspring/decimal"

	"fund-nav-tracker/internal/domain"
)

// Table is an append-only, insertion-ordered collection of price records.
// A Table lives for one orchestration cycle: created empty, grown via
// Append, handed to persistence wholesale, then discarded. Rows are never
// deduplicated by (timestamp, label); repeated appends produce repeated rows.
//
// Table is not safe for concurrent use; the cycle that owns it is
// single-threaded.
type Table struct {
	rows   []domain.PriceRecord
	labels []string            // distinct labels in first-appearance order
	seen   map[string]struct{} // labels already in the table
}

// NewTable creates an empty price record table.
func NewTable() *Table {
	return &Table{seen: make(map[string]struct{})}
}

// Append adds a record to the end of the table. It always succeeds.
func (t *Table) Append(timestamp time.Time, label string, price decimal.Decimal) {
	t.rows = append(t.rows, domain.PriceRecord{
		Timestamp: timestamp,
		Label:     label,
		Price:     price,
	})
	if _, ok := t.seen[label]; !ok {
		t.seen[label] = struct{}{}
		t.labels = append(t.labels, label)
	}
}

// Latest returns the most recently appended price for a label.
// "Most recent" is table position, not timestamp comparison: within one
// cycle all timestamps typically share the same minute bucket.
func (t *Table) Latest(label string) (decimal.Decimal, bool) {
	for i := len(t.rows) - 1; i >= 0; i-- {
		if t.rows[i].Label == label {
			return t.rows[i].Price, true
		}
	}
	return decimal.Decimal{}, false
}

// Labels returns the distinct labels present, in first-appearance order.
func (t *Table) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// Records returns a copy of all rows in insertion order.
func (t *Table) Records() []domain.PriceRecord {
	out := make([]domain.PriceRecord, len(t.rows))
	copy(out, t.rows)
	return out
}
