package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fund-nav-tracker/internal/domain"
	"fund-nav-tracker/internal/storage"
)

func TestPriceStore_AppendAllKeepsOrder(t *testing.T) {
	store := NewPriceStore()
	ctx := context.Background()
	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	records := []domain.PriceRecord{
		{Timestamp: ts, Label: "benchmark_btc", Price: decimal.NewFromInt(100)},
		{Timestamp: ts, Label: "benchmark_eth", Price: decimal.NewFromInt(50)},
	}

	if err := store.AppendAll(ctx, records); err != nil {
		t.Fatalf("AppendAll failed: %v", err)
	}

	got, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Label != "benchmark_btc" || got[1].Label != "benchmark_eth" {
		t.Errorf("rows out of order: %v", got)
	}
}

func TestPriceStore_AppendAllNoDedup(t *testing.T) {
	store := NewPriceStore()
	ctx := context.Background()
	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	row := []domain.PriceRecord{{Timestamp: ts, Label: "benchmark_btc", Price: decimal.NewFromInt(100)}}

	if err := store.AppendAll(ctx, row); err != nil {
		t.Fatalf("first AppendAll failed: %v", err)
	}
	if err := store.AppendAll(ctx, row); err != nil {
		t.Fatalf("second AppendAll failed: %v", err)
	}

	got, _ := store.GetAll(ctx)
	if len(got) != 2 {
		t.Errorf("expected 2 duplicate rows, got %d", len(got))
	}
}

func TestPriceStore_EmptyInputIssuesNoWrite(t *testing.T) {
	store := NewPriceStore()
	ctx := context.Background()

	if err := store.AppendAll(ctx, nil); err != nil {
		t.Fatalf("empty AppendAll should succeed, got %v", err)
	}
	if store.AppendCalls() != 0 {
		t.Errorf("expected 0 write calls for empty input, got %d", store.AppendCalls())
	}
}

func TestPriceStore_InvalidInput(t *testing.T) {
	store := NewPriceStore()
	ctx := context.Background()

	err := store.AppendAll(ctx, []domain.PriceRecord{{Label: ""}})
	if !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty label, got %v", err)
	}
}
