package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.binance.com"
	DefaultTimeout = 10 * time.Second
)

// BinanceClient implements QuoteSource against the Binance spot REST API.
// One synchronous HTTP call per FetchPrice invocation; no retries.
type BinanceClient struct {
	baseURL string
	client  *http.Client
}

// ClientOption configures BinanceClient.
type ClientOption func(*BinanceClient)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *BinanceClient) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *BinanceClient) {
		c.client.Timeout = d
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *BinanceClient) {
		c.client = client
	}
}

// NewBinanceClient creates a new Binance spot quote client.
func NewBinanceClient(opts ...ClientOption) *BinanceClient {
	c := &BinanceClient{
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile-time interface check.
var _ QuoteSource = (*BinanceClient)(nil)

// tickerResponse is the /api/v3/ticker/price payload.
// Binance serves the price as a decimal string.
type tickerResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// FetchPrice fetches the current spot price for one trading symbol.
// Every failure shape collapses to a wrapped ErrQuoteUnavailable.
func (c *BinanceClient) FetchPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/api/v3/ticker/price?symbol=%s", c.baseURL, url.QueryEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: build request for %s: %v", ErrQuoteUnavailable, symbol, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: fetch %s: %v", ErrQuoteUnavailable, symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return decimal.Decimal{}, fmt.Errorf("%w: fetch %s: status %d: %s", ErrQuoteUnavailable, symbol, resp.StatusCode, body)
	}

	var ticker tickerResponse
	if err := json.NewDecoder(resp.Body).Decode(&ticker); err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: decode %s response: %v", ErrQuoteUnavailable, symbol, err)
	}

	price, err := decimal.NewFromString(ticker.Price)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: parse %s price %q: %v", ErrQuoteUnavailable, symbol, ticker.Price, err)
	}

	return price, nil
}
