package buyback

import (
	"strings"

	"buyback-detector/internal/models"
)

// descriptionKeywords mark a record as a buyback when any of them occurs
// in its description. Substring match, not whole-word: "repurchases" and
// "recompras" count.
var descriptionKeywords = []string{"buyback", "repurchase", "recompra"}

// Classified is a corporate-action record recognized as a buyback, with
// its loosely-typed fields resolved through their fallback chains.
type Classified struct {
	Description string
	Date        string
	AmountHint  float64
	HasAmount   bool
}

// Classify decides whether a record represents a buyback. defaultDate is
// used when the record carries neither a date nor an ex-date, normally
// the run's to-date.
//
// A structured amount of zero is treated as absent, deferring to
// ParseMoney on the description.
func Classify(rec models.CorporateAction, defaultDate string) (Classified, bool) {
	desc := rec.Description
	if desc == "" {
		desc = rec.Text
	}

	if !isBuyback(rec.Action, desc) {
		return Classified{}, false
	}

	date := rec.Date
	if date == "" {
		date = rec.ExDate
	}
	if date == "" {
		date = defaultDate
	}

	c := Classified{Description: desc, Date: date}
	if v, ok := rec.Amount.Value(); ok && v != 0 {
		c.AmountHint = v
		c.HasAmount = true
	}

	return c, true
}

func isBuyback(action, description string) bool {
	if strings.Contains(strings.ToLower(action), "buyback") {
		return true
	}

	lower := strings.ToLower(description)
	for _, kw := range descriptionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
