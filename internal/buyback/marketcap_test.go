package buyback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestPercentOfMarketCapNormalizesMillions(t *testing.T) {
	// Reported caps under 1e6 are read as millions of USD.
	got := PercentOfMarketCap(f(1_000_000), f(5))
	require.NotNil(t, got)
	assert.InDelta(t, 20.0, *got, 1e-9)

	got = PercentOfMarketCap(f(50_000_000), f(2000))
	require.NotNil(t, got)
	assert.InDelta(t, 2.5, *got, 1e-9)

	got = PercentOfMarketCap(f(1_000_000), f(500_000))
	require.NotNil(t, got)
	assert.InDelta(t, 0.0002, *got, 1e-12)
}

func TestPercentOfMarketCapAbsoluteValuesPassThrough(t *testing.T) {
	got := PercentOfMarketCap(f(50_000_000), f(2_000_000_000))
	require.NotNil(t, got)
	assert.InDelta(t, 2.5, *got, 1e-9)
}

func TestPercentOfMarketCapMissingInputs(t *testing.T) {
	assert.Nil(t, PercentOfMarketCap(nil, f(100)))
	assert.Nil(t, PercentOfMarketCap(f(100), nil))
	assert.Nil(t, PercentOfMarketCap(nil, nil))
	assert.Nil(t, PercentOfMarketCap(f(0), f(100)))
	assert.Nil(t, PercentOfMarketCap(f(100), f(0)))
}
