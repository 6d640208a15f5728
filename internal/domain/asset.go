package domain

import "fmt"

// Asset maps an exchange trading symbol to the canonical label used
// across storage tables.
type Asset struct {
	Symbol string // exchange trading symbol, e.g. "BTCUSDT"
	Label  string // canonical storage identifier, e.g. "benchmark_btc"
}

// DefaultAssets is the benchmark mapping tracked by the fund.
var DefaultAssets = []Asset{
	{Symbol: "BTCUSDT", Label: "benchmark_btc"},
	{Symbol: "ETHUSDT", Label: "benchmark_eth"},
	{Symbol: "SOLUSDT", Label: "benchmark_sol"},
}

// ValidateAssets checks that the configured asset list is non-empty and
// that both symbols and labels are unique.
func ValidateAssets(assets []Asset) error {
	if len(assets) == 0 {
		return fmt.Errorf("asset list is empty")
	}

	symbols := make(map[string]struct{}, len(assets))
	labels := make(map[string]struct{}, len(assets))
	for _, a := range assets {
		if a.Symbol == "" || a.Label == "" {
			return fmt.Errorf("asset with empty symbol or label: %+v", a)
		}
		if _, ok := symbols[a.Symbol]; ok {
			return fmt.Errorf("duplicate symbol: %s", a.Symbol)
		}
		if _, ok := labels[a.Label]; ok {
			return fmt.Errorf("duplicate label: %s", a.Label)
		}
		symbols[a.Symbol] = struct{}{}
		labels[a.Label] = struct{}{}
	}

	return nil
}
