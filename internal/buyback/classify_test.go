package buyback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buyback-detector/internal/models"
)

const runDate = "2024-03-05"

func TestClassifyMatchesTaggedAction(t *testing.T) {
	rec := models.CorporateAction{
		Action:      "Share Buyback",
		Description: "program announced",
		Date:        "2024-03-01",
	}

	cls, ok := Classify(rec, runDate)
	require.True(t, ok)
	assert.Equal(t, "program announced", cls.Description)
	assert.Equal(t, "2024-03-01", cls.Date)
	assert.False(t, cls.HasAmount)
}

func TestClassifyMatchesDescriptionKeywords(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want bool
	}{
		{"buyback", "announced a BuyBack program", true},
		{"repurchase substring", "board approves share repurchases", true},
		{"recompra", "Programa de Recompra de acciones", true},
		{"unrelated", "quarterly dividend declared", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Classify(models.CorporateAction{Description: tt.desc}, runDate)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestClassifyFallbackChains(t *testing.T) {
	// description falls back to text, date falls back to exDate, then to
	// the run date.
	rec := models.CorporateAction{
		Text:   "share repurchase authorized",
		ExDate: "2024-02-28",
	}
	cls, ok := Classify(rec, runDate)
	require.True(t, ok)
	assert.Equal(t, "share repurchase authorized", cls.Description)
	assert.Equal(t, "2024-02-28", cls.Date)

	cls, ok = Classify(models.CorporateAction{Text: "buyback"}, runDate)
	require.True(t, ok)
	assert.Equal(t, runDate, cls.Date)
}

func TestClassifyAmountHint(t *testing.T) {
	rec := models.CorporateAction{
		Description: "buyback",
		Amount:      models.NewFlexFloat(25_000_000),
	}
	cls, ok := Classify(rec, runDate)
	require.True(t, ok)
	assert.True(t, cls.HasAmount)
	assert.Equal(t, 25_000_000.0, cls.AmountHint)

	// A zero structured amount defers to text parsing.
	rec.Amount = models.NewFlexFloat(0)
	cls, ok = Classify(rec, runDate)
	require.True(t, ok)
	assert.False(t, cls.HasAmount)
}
