package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buyback-detector/internal/models"
)

func amount(v float64) *float64 { return &v }

func TestJournalRecordAndRecent(t *testing.T) {
	j, err := OpenJournal(filepath.Join(t.TempDir(), "buybacks.db"))
	require.NoError(t, err)
	defer j.Close()

	ctx := context.Background()

	require.NoError(t, j.RecordDetection(ctx, models.BuybackEvent{
		ID:                 "ACME__2024-03-01__1",
		Ticker:             "ACME",
		Date:               "2024-03-01",
		Description:        "repurchase of $50M",
		Amount:             amount(50_000_000),
		PercentOfMarketCap: amount(2.5),
	}, false))

	require.NoError(t, j.RecordDetection(ctx, models.BuybackEvent{
		ID:     "ACME__2024-03-01__1",
		Ticker: "ACME",
		Date:   "2024-03-01",
	}, true))

	entries, err := j.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.True(t, entries[0].Suppressed)
	assert.False(t, entries[1].Suppressed)
	assert.Equal(t, "ACME", entries[1].Ticker)
	require.NotNil(t, entries[1].Amount)
	assert.Equal(t, 50_000_000.0, *entries[1].Amount)
	require.NotNil(t, entries[1].Percent)
	assert.Equal(t, 2.5, *entries[1].Percent)
	assert.Nil(t, entries[0].Amount)
}

func TestJournalRecentLimit(t *testing.T) {
	j, err := OpenJournal(filepath.Join(t.TempDir(), "buybacks.db"))
	require.NoError(t, err)
	defer j.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, j.RecordDetection(ctx, models.BuybackEvent{
			ID: "id", Ticker: "ACME", Date: "2024-03-01",
		}, false))
	}

	entries, err := j.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}
