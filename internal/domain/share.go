package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShareRecord is an externally maintained share count for an asset.
// Corresponds to a row in the shares_table; read-only to this system.
type ShareRecord struct {
	Timestamp time.Time
	Label     string
	Shares    decimal.Decimal
}
