// Package reporting renders the end-of-cycle price summary.
package reporting

import (
	"fmt"
	"io"
	"strings"

	"fund-nav-tracker/internal/record"
)

const rule = 60

// WriteSummary writes a tabular summary of the collected prices.
// Labels appear in first-appearance order with their latest price; a run
// with partial failures renders whatever was collected, with missing
// assets simply absent.
func WriteSummary(w io.Writer, table *record.Table) error {
	if table.Len() == 0 {
		_, err := fmt.Fprintln(w, "No data collected this cycle.")
		return err
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat("=", rule) + "\n")
	sb.WriteString("BENCHMARK PRICE SUMMARY\n")
	sb.WriteString(strings.Repeat("=", rule) + "\n")
	sb.WriteString(fmt.Sprintf("Total Records: %d\n", table.Len()))
	sb.WriteString("\nLatest Prices:\n")
	sb.WriteString(strings.Repeat("-", rule) + "\n")

	for _, label := range table.Labels() {
		price, ok := table.Latest(label)
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-20s: $%s\n", label, price.StringFixed(2)))
	}

	sb.WriteString(strings.Repeat("=", rule) + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
