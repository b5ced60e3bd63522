// Package models provides domain models for the buyback detector.
package models

import (
	"bytes"
	"strconv"
)

// FlexFloat is a float field that tolerates the loose typing of upstream
// APIs: JSON numbers, numeric strings, null and non-numeric junk all
// unmarshal without error. Non-numeric content simply leaves the value
// unset.
type FlexFloat struct {
	value float64
	valid bool
}

// NewFlexFloat returns a set FlexFloat, mainly for tests.
func NewFlexFloat(v float64) FlexFloat {
	return FlexFloat{value: v, valid: true}
}

// Value returns the numeric value and whether it was present and numeric.
func (f FlexFloat) Value() (float64, bool) {
	return f.value, f.valid
}

// UnmarshalJSON accepts a number or a numeric string. Anything else is
// treated as absent rather than an error, so one junk field cannot sink a
// whole record.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = FlexFloat{}

	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}

	f.value = v
	f.valid = true
	return nil
}

// CorporateAction is a raw corporate-action record as returned by the
// upstream API. Field presence is inconsistent between record types, so
// everything is optional.
type CorporateAction struct {
	Description string    `json:"description"`
	Text        string    `json:"text"`
	Date        string    `json:"date"`
	ExDate      string    `json:"exDate"`
	Action      string    `json:"action"`
	Amount      FlexFloat `json:"amount"`
	URL         string    `json:"url"`
}

// CompanyProfile is the subset of the company-profile endpoint this
// system reads. MarketCapitalization is usually reported in millions of
// USD, but not always; see the estimator's normalization.
type CompanyProfile struct {
	Name                 string    `json:"name"`
	Ticker               string    `json:"ticker"`
	Currency             string    `json:"currency"`
	MarketCapitalization FlexFloat `json:"marketCapitalization"`
}

// BuybackEvent is one detected buyback, built during a poll pass and held
// in memory only for that pass.
type BuybackEvent struct {
	ID                 string
	Ticker             string
	Date               string
	Description        string
	Amount             *float64 // estimated USD, nil when unknown
	PercentOfMarketCap *float64 // nil when amount or market cap unknown
	URL                string
	Text               string // rendered notification block
}
