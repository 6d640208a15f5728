package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceRecord is one sampled spot price.
// Corresponds to a row in the balance_all_consolidated table.
type PriceRecord struct {
	Timestamp time.Time       // truncated to whole minutes
	Label     string          // canonical asset label ("pm" column)
	Price     decimal.Decimal // spot price ("balance" column)
}

// MinuteBucket truncates t to whole-minute resolution so repeated runs
// within the same minute align to the same bucket.
func MinuteBucket(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}
