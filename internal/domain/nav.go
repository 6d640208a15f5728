package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NavRecord is a derived net-asset-value row.
// Corresponds to a row in the nav_table; the table is replaced wholesale
// each cycle.
type NavRecord struct {
	Timestamp time.Time
	Label     string
	Price     decimal.Decimal
	Shares    decimal.Decimal
	Nav       decimal.Decimal // Price / Shares, or zero when shares are absent or zero
}

// FundBalanceRecord is a per-source fund balance row.
// Corresponds to a row in the fund_balance_data table, maintained via
// delete-then-append per source.
type FundBalanceRecord struct {
	Timestamp time.Time
	Source    string
	Balance   decimal.Decimal
}
