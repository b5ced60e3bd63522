package buyback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"buyback-detector/internal/models"
)

func TestRenderEventFullFields(t *testing.T) {
	ev := models.BuybackEvent{
		Ticker:             "ACME",
		Date:               "2024-03-01",
		Description:        "ACME repurchase of $50M",
		Amount:             f(50_000_000),
		PercentOfMarketCap: f(2.5),
		URL:                "https://example.com/filing",
	}

	text := RenderEvent(ev)
	assert.True(t, strings.HasPrefix(text, "BUYBACK DETECTED\nACME\nDate: 2024-03-01\n"))
	assert.Contains(t, text, "Description: ACME repurchase of $50M\n")
	assert.Contains(t, text, "Estimated amount: 50,000,000 USD\n")
	assert.Contains(t, text, "≈ 2.50% of market cap\n")
	assert.Contains(t, text, "URL: https://example.com/filing\n")
}

func TestRenderEventOmitsAbsentFields(t *testing.T) {
	text := RenderEvent(models.BuybackEvent{Ticker: "ACME", Date: "2024-03-01"})
	assert.Equal(t, "BUYBACK DETECTED\nACME\nDate: 2024-03-01\n", text)
}

func TestRenderBodyAndSubject(t *testing.T) {
	events := []models.BuybackEvent{
		{Text: "first"},
		{Text: "second"},
	}
	assert.Equal(t, "first\n\n---\n\nsecond", RenderBody(events))
	assert.Equal(t, "[Buyback detector] 2 event(s) detected - 2024-03-05", RenderSubject(2, "2024-03-05"))
}
