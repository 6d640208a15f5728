// Package nav derives per-asset net asset values from sampled prices and
// externally maintained share counts.
package nav

import (
	"github.com/shopspring/decimal"

	"fund-nav-tracker/internal/domain"
)

// LatestShares projects a share history down to the newest share count per
// label. When two rows carry the same maximum timestamp for a label, the
// row with the highest ingestion order (later in the input slice) wins;
// callers feeding rows in storage order get a deterministic result.
func LatestShares(shares []domain.ShareRecord) map[string]decimal.Decimal {
	type candidate struct {
		ts     int64
		shares decimal.Decimal
	}

	best := make(map[string]candidate)
	for _, r := range shares {
		ts := r.Timestamp.UnixNano()
		if cur, ok := best[r.Label]; !ok || ts >= cur.ts {
			best[r.Label] = candidate{ts: ts, shares: r.Shares}
		}
	}

	out := make(map[string]decimal.Decimal, len(best))
	for label, c := range best {
		out[label] = c.shares
	}
	return out
}

// Compute left-joins the cycle's price records against the latest share
// count per label and derives nav = price / shares. A price row with no
// matching share row, or with a zero share count, yields nav = 0 and still
// appears in the output. Input order is preserved: exactly one output row
// per input price row.
func Compute(records []domain.PriceRecord, shares []domain.ShareRecord) []domain.NavRecord {
	latest := LatestShares(shares)

	out := make([]domain.NavRecord, 0, len(records))
	for _, r := range records {
		nav := domain.NavRecord{
			Timestamp: r.Timestamp,
			Label:     r.Label,
			Price:     r.Price,
		}
		if s, ok := latest[r.Label]; ok {
			nav.Shares = s
			if !s.IsZero() {
				nav.Nav = r.Price.Div(s)
			}
		}
		out = append(out, nav)
	}
	return out
}
