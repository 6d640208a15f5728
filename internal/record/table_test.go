package record

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTable_LatestByPosition(t *testing.T) {
	table := NewTable()
	t1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 6, 1, 10, 1, 0, 0, time.UTC)

	table.Append(t1, "benchmark_btc", decimal.NewFromInt(10))
	table.Append(t2, "benchmark_btc", decimal.NewFromInt(12))
	table.Append(t1, "benchmark_eth", decimal.NewFromInt(5))

	price, ok := table.Latest("benchmark_btc")
	if !ok {
		t.Fatal("expected benchmark_btc to be present")
	}
	if !price.Equal(decimal.NewFromInt(12)) {
		t.Errorf("expected latest btc price 12, got %s", price)
	}

	price, ok = table.Latest("benchmark_eth")
	if !ok {
		t.Fatal("expected benchmark_eth to be present")
	}
	if !price.Equal(decimal.NewFromInt(5)) {
		t.Errorf("expected latest eth price 5, got %s", price)
	}
}

func TestTable_LatestMissing(t *testing.T) {
	table := NewTable()

	if _, ok := table.Latest("benchmark_btc"); ok {
		t.Error("expected missing label on empty table")
	}
}

func TestTable_NoDedup(t *testing.T) {
	table := NewTable()
	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	table.Append(ts, "benchmark_btc", decimal.NewFromInt(10))
	table.Append(ts, "benchmark_btc", decimal.NewFromInt(10))

	if table.Len() != 2 {
		t.Errorf("expected 2 rows after duplicate append, got %d", table.Len())
	}
}

func TestTable_LabelsFirstAppearanceOrder(t *testing.T) {
	table := NewTable()
	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	table.Append(ts, "benchmark_eth", decimal.NewFromInt(1))
	table.Append(ts, "benchmark_btc", decimal.NewFromInt(2))
	table.Append(ts, "benchmark_eth", decimal.NewFromInt(3))

	labels := table.Labels()
	if len(labels) != 2 {
		t.Fatalf("expected 2 distinct labels, got %d", len(labels))
	}
	if labels[0] != "benchmark_eth" || labels[1] != "benchmark_btc" {
		t.Errorf("expected first-appearance order [benchmark_eth benchmark_btc], got %v", labels)
	}
}

func TestTable_RecordsIsACopy(t *testing.T) {
	table := NewTable()
	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	table.Append(ts, "benchmark_btc", decimal.NewFromInt(10))

	rows := table.Records()
	rows[0].Label = "mutated"

	got := table.Records()
	if got[0].Label != "benchmark_btc" {
		t.Error("Records must return a defensive copy")
	}
}
