// Package exchange provides spot price quotes from the exchange REST API.
package exchange

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrQuoteUnavailable is returned when a quote cannot be obtained for a
// symbol. It covers transport errors, non-200 responses (including
// rate-limit rejections) and malformed payloads; callers skip the asset
// and continue.
var ErrQuoteUnavailable = errors.New("quote unavailable")

// QuoteSource fetches the current spot price for a trading symbol.
type QuoteSource interface {
	FetchPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
}
