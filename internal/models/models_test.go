package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloatUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  float64
		valid bool
	}{
		{"number", `{"amount": 2000000}`, 2_000_000, true},
		{"numeric string", `{"amount": "2000000"}`, 2_000_000, true},
		{"decimal string", `{"amount": "12.5"}`, 12.5, true},
		{"null", `{"amount": null}`, 0, false},
		{"absent", `{}`, 0, false},
		{"junk string", `{"amount": "n/a"}`, 0, false},
		{"empty string", `{"amount": ""}`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec CorporateAction
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &rec))

			v, ok := rec.Amount.Value()
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, v)
			}
		})
	}
}

func TestCorporateActionDecodesUpstreamShape(t *testing.T) {
	raw := `{
		"action": "Buyback",
		"description": "ACME repurchase of $50M",
		"date": "2024-03-01",
		"exDate": "2024-02-28",
		"amount": "50000000",
		"url": "https://example.com"
	}`

	var rec CorporateAction
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))
	assert.Equal(t, "Buyback", rec.Action)
	assert.Equal(t, "2024-03-01", rec.Date)
	assert.Equal(t, "2024-02-28", rec.ExDate)

	v, ok := rec.Amount.Value()
	require.True(t, ok)
	assert.Equal(t, 50_000_000.0, v)
}

func TestCompanyProfileMarketCap(t *testing.T) {
	var p CompanyProfile
	require.NoError(t, json.Unmarshal([]byte(`{"marketCapitalization": 2000}`), &p))
	v, ok := p.MarketCapitalization.Value()
	require.True(t, ok)
	assert.Equal(t, 2000.0, v)

	require.NoError(t, json.Unmarshal([]byte(`{"marketCapitalization": "unknown"}`), &p))
	_, ok = p.MarketCapitalization.Value()
	assert.False(t, ok)
}
