// Package stub provides a deterministic quote source for tests and dry runs.
package stub

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"fund-nav-tracker/internal/exchange"
)

// QuoteSource implements exchange.QuoteSource from a fixed price map.
type QuoteSource struct {
	Prices map[string]decimal.Decimal // keyed by trading symbol
	Fail   map[string]bool            // symbols that report quote failures
}

// NewQuoteSource creates a new stub quote source.
func NewQuoteSource() *QuoteSource {
	return &QuoteSource{
		Prices: make(map[string]decimal.Decimal),
		Fail:   make(map[string]bool),
	}
}

// Compile-time interface check.
var _ exchange.QuoteSource = (*QuoteSource)(nil)

// SetPrice sets the fixed price returned for a symbol.
func (s *QuoteSource) SetPrice(symbol string, price decimal.Decimal) {
	s.Prices[symbol] = price
}

// FailSymbol makes fetches for a symbol report ErrQuoteUnavailable.
func (s *QuoteSource) FailSymbol(symbol string) {
	s.Fail[symbol] = true
}

// FetchPrice returns the fixed price for a symbol, or ErrQuoteUnavailable
// for unknown or failed symbols.
func (s *QuoteSource) FetchPrice(_ context.Context, symbol string) (decimal.Decimal, error) {
	if s.Fail[symbol] {
		return decimal.Decimal{}, fmt.Errorf("%w: stub failure for %s", exchange.ErrQuoteUnavailable, symbol)
	}
	price, ok := s.Prices[symbol]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no stub price for %s", exchange.ErrQuoteUnavailable, symbol)
	}
	return price, nil
}
