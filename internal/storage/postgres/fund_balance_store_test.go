package postgres_test

import (
	. "fund-nav-tracker/internal/storage/postgres"

	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"fund-nav-tracker/internal/domain"
	"fund-nav-tracker/internal/storage"
)

func TestFundBalanceStore_ReplaceSourceAndGetBySource(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewFundBalanceStore(pool)

	ts := minute(2025, 6, 1, 10, 30)
	require.NoError(t, store.ReplaceSource(ctx, "exchange_a", []domain.FundBalanceRecord{
		{Timestamp: ts, Balance: dec(t, "1234.5678")},
	}))

	got, err := store.GetBySource(ctx, "exchange_a")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "exchange_a", got[0].Source)
	require.True(t, got[0].Balance.Equal(dec(t, "1234.5678")))
}

func TestFundBalanceStore_ReplaceSource_IsolatesSources(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewFundBalanceStore(pool)

	ts := minute(2025, 6, 1, 10, 30)
	require.NoError(t, store.ReplaceSource(ctx, "exchange_a", []domain.FundBalanceRecord{
		{Timestamp: ts, Balance: dec(t, "100")},
	}))
	require.NoError(t, store.ReplaceSource(ctx, "exchange_b", []domain.FundBalanceRecord{
		{Timestamp: ts, Balance: dec(t, "200")},
	}))

	// Replacing one source leaves the other untouched.
	require.NoError(t, store.ReplaceSource(ctx, "exchange_a", []domain.FundBalanceRecord{
		{Timestamp: ts, Balance: dec(t, "150")},
	}))

	a, err := store.GetBySource(ctx, "exchange_a")
	require.NoError(t, err)
	require.Len(t, a, 1)
	require.True(t, a[0].Balance.Equal(dec(t, "150")))

	b, err := store.GetBySource(ctx, "exchange_b")
	require.NoError(t, err)
	require.Len(t, b, 1)
	require.True(t, b[0].Balance.Equal(dec(t, "200")))
}

func TestFundBalanceStore_ReplaceSource_EmptySetClearsSource(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewFundBalanceStore(pool)

	ts := minute(2025, 6, 1, 10, 30)
	require.NoError(t, store.ReplaceSource(ctx, "exchange_a", []domain.FundBalanceRecord{
		{Timestamp: ts, Balance: dec(t, "100")},
	}))

	require.NoError(t, store.ReplaceSource(ctx, "exchange_a", nil))

	got, err := store.GetBySource(ctx, "exchange_a")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestFundBalanceStore_ReplaceSource_RejectsEmptySource(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewFundBalanceStore(pool)

	err := store.ReplaceSource(context.Background(), "", nil)
	require.ErrorIs(t, err, storage.ErrInvalidInput)
}
