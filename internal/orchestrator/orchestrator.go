// Package orchestrator drives one fetch → persist → NAV cycle.
// Flow: FetchAll → PersistPrices → ComputeAndPersistNav → summary.
package orchestrator

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"fund-nav-tracker/internal/domain"
	"fund-nav-tracker/internal/exchange"
	"fund-nav-tracker/internal/nav"
	"fund-nav-tracker/internal/observability"
	"fund-nav-tracker/internal/record"
	"fund-nav-tracker/internal/reporting"
	"fund-nav-tracker/internal/storage"
)

// Orchestrator coordinates one cycle over the configured assets.
// Every component failure is caught and logged at the state boundary that
// produced it; a failed fetch skips one asset, a failed write skips one
// state, and the cycle always runs to completion. Only construction fails
// hard.
type Orchestrator struct {
	assets      []domain.Asset
	quotes      exchange.QuoteSource
	priceStore  storage.PriceStore
	priceMirror storage.PriceStore // optional analytics mirror, may be nil
	shareStore  storage.ShareStore
	navStore    storage.NavStore

	metrics  *observability.Metrics // optional, may be nil
	logger   *log.Logger
	summaryW io.Writer
	now      func() time.Time
}

// Options for creating an Orchestrator.
type Options struct {
	// Required
	Assets     []domain.Asset
	Quotes     exchange.QuoteSource
	PriceStore storage.PriceStore
	ShareStore storage.ShareStore
	NavStore   storage.NavStore

	// Optional
	PriceMirror storage.PriceStore
	Metrics     *observability.Metrics
	Logger      *log.Logger
	SummaryW    io.Writer
	Now         func() time.Time
}

// New creates a new Orchestrator. Misconfiguration is the one failure
// this system does not swallow: no partial run is possible without a
// working asset mapping and clients.
func New(opts Options) (*Orchestrator, error) {
	if err := domain.ValidateAssets(opts.Assets); err != nil {
		return nil, fmt.Errorf("validate assets: %w", err)
	}
	if opts.Quotes == nil {
		return nil, fmt.Errorf("quote source is required")
	}
	if opts.PriceStore == nil || opts.ShareStore == nil || opts.NavStore == nil {
		return nil, fmt.Errorf("price, share and nav stores are required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stdout, "[tracker] ", log.LstdFlags)
	}
	summaryW := opts.SummaryW
	if summaryW == nil {
		summaryW = os.Stdout
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Orchestrator{
		assets:      opts.Assets,
		quotes:      opts.Quotes,
		priceStore:  opts.PriceStore,
		priceMirror: opts.PriceMirror,
		shareStore:  opts.ShareStore,
		navStore:    opts.NavStore,
		metrics:     opts.Metrics,
		logger:      logger,
		summaryW:    summaryW,
		now:         now,
	}, nil
}

// RunResult contains the outcome of one cycle.
type RunResult struct {
	RunID           string
	PricesCollected int
	PricesPersisted bool
	NavRowsWritten  int
	Errors          []string
}

// Run executes one full cycle. The returned error is non-nil only when the
// context was cancelled; everything else surfaces through RunResult.Errors.
func (o *Orchestrator) Run(ctx context.Context) (*RunResult, error) {
	started := o.now()
	result := &RunResult{RunID: uuid.NewString()}

	o.logger.Printf("run %s: starting cycle (%d assets)", result.RunID, len(o.assets))

	table := o.fetchAll(ctx, result)
	if err := ctx.Err(); err != nil {
		return result, err
	}

	o.persistPrices(ctx, table, result)
	o.computeAndPersistNav(ctx, table, result)

	if err := reporting.WriteSummary(o.summaryW, table); err != nil {
		o.logger.Printf("run %s: write summary: %v", result.RunID, err)
	}

	o.finishMetrics(started, result)
	o.logger.Printf("run %s: cycle done: %d prices collected, %d nav rows, %d errors",
		result.RunID, result.PricesCollected, result.NavRowsWritten, len(result.Errors))

	return result, nil
}

// fetchAll samples every configured asset. A quote failure skips that
// asset and never aborts the cycle.
func (o *Orchestrator) fetchAll(ctx context.Context, result *RunResult) *record.Table {
	table := record.NewTable()

	for _, asset := range o.assets {
		if ctx.Err() != nil {
			return table
		}

		fetchStart := o.now()
		price, err := o.quotes.FetchPrice(ctx, asset.Symbol)
		o.observeFetch(o.now().Sub(fetchStart), err)
		if err != nil {
			o.logger.Printf("quote unavailable for %s: %v", asset.Symbol, err)
			result.Errors = append(result.Errors, fmt.Sprintf("fetch %s: %v", asset.Symbol, err))
			continue
		}

		ts := domain.MinuteBucket(o.now())
		table.Append(ts, asset.Label, price)
		o.logger.Printf("added record: %s | %s | %s", ts.Format(time.RFC3339), asset.Label, price)
	}

	result.PricesCollected = table.Len()
	o.logger.Printf("collected %d/%d records", table.Len(), len(o.assets))
	return table
}

// persistPrices appends the cycle's table to the price sink and, when
// configured, to the analytics mirror. Write failures are logged and the
// cycle continues with its in-memory table.
func (o *Orchestrator) persistPrices(ctx context.Context, table *record.Table, result *RunResult) {
	records := table.Records()

	if err := o.priceStore.AppendAll(ctx, records); err != nil {
		o.logger.Printf("storage write failed for price sink: %v", err)
		result.Errors = append(result.Errors, fmt.Sprintf("persist prices: %v", err))
		o.countStorageError("append_prices")
	} else {
		result.PricesPersisted = len(records) > 0
		if o.metrics != nil {
			o.metrics.PricesPersisted.Add(float64(len(records)))
		}
	}

	if o.priceMirror == nil {
		return
	}
	if err := o.priceMirror.AppendAll(ctx, records); err != nil {
		o.logger.Printf("storage write failed for price mirror: %v", err)
		result.Errors = append(result.Errors, fmt.Sprintf("mirror prices: %v", err))
		o.countStorageError("mirror_prices")
	}
}

// computeAndPersistNav reads the share table, derives NAV rows and
// replaces the NAV sink. A read failure degrades to "no share data"
// (every NAV zero); a write failure leaves the previous NAV table in
// place for this cycle.
func (o *Orchestrator) computeAndPersistNav(ctx context.Context, table *record.Table, result *RunResult) {
	shares, err := o.shareStore.GetAll(ctx)
	if err != nil {
		o.logger.Printf("storage read failed for shares table: %v", err)
		result.Errors = append(result.Errors, fmt.Sprintf("read shares: %v", err))
		o.countStorageError("read_shares")
		shares = nil
	}

	navRecords := nav.Compute(table.Records(), shares)

	if err := o.navStore.ReplaceAll(ctx, navRecords); err != nil {
		o.logger.Printf("storage write failed for nav table: %v", err)
		result.Errors = append(result.Errors, fmt.Sprintf("persist nav: %v", err))
		o.countStorageError("replace_nav")
		return
	}

	result.NavRowsWritten = len(navRecords)
	if o.metrics != nil {
		o.metrics.NavRowsWritten.Add(float64(len(navRecords)))
	}
}

func (o *Orchestrator) observeFetch(elapsed time.Duration, err error) {
	if o.metrics == nil {
		return
	}
	o.metrics.QuoteFetchLatency.Observe(elapsed.Seconds())
	if err != nil {
		o.metrics.QuoteFetchErrors.Inc()
	} else {
		o.metrics.QuotesFetched.Inc()
	}
}

func (o *Orchestrator) countStorageError(operation string) {
	if o.metrics != nil {
		o.metrics.StorageErrors.WithLabelValues(operation).Inc()
	}
}

func (o *Orchestrator) finishMetrics(started time.Time, result *RunResult) {
	if o.metrics == nil {
		return
	}
	o.metrics.CycleDuration.Observe(o.now().Sub(started).Seconds())
	if len(result.Errors) == 0 {
		o.metrics.CyclesTotal.WithLabelValues("ok").Inc()
		o.metrics.LastSuccessfulCycle.Set(float64(o.now().Unix()))
	} else {
		o.metrics.CyclesTotal.WithLabelValues("degraded").Inc()
	}
}
