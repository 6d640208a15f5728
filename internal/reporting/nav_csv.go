package reporting

import (
	"fmt"
	"io"
	"strings"
	"time"

	"fund-nav-tracker/internal/domain"
)

// WriteNavCSV renders NAV rows as CSV. Decimals keep their exact string
// form so the export round-trips without float rounding.
func WriteNavCSV(w io.Writer, records []domain.NavRecord) error {
	var sb strings.Builder

	sb.WriteString("timestamp,pm,balance,shares,nav\n")

	for _, r := range records {
		sb.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s\n",
			r.Timestamp.UTC().Format(time.RFC3339),
			r.Label,
			r.Price.String(),
			r.Shares.String(),
			r.Nav.String(),
		))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
