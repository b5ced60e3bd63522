// Package buyback implements the detection pipeline: classifying
// corporate-action records, parsing monetary text, sizing events against
// market capitalization and fingerprinting them for deduplication.
package buyback

import (
	"regexp"
	"strconv"
	"strings"
)

// moneyRe matches an optional currency marker, a grouped numeric literal
// and an optional unit suffix, e.g. "$1.5M", "2,000,000", "3 bn".
var moneyRe = regexp.MustCompile(`(?i)(\$?\s?)([0-9]{1,3}(?:[,.\s][0-9]{3})*(?:\.[0-9]+)?)(\s?(B|M|K|bn|m|k)?)`)

var groupSeparators = strings.NewReplacer(",", "", " ", "")

// ParseMoney extracts a USD magnitude from free text. The first match in
// the text wins, even when a later figure is the intended one; that
// ambiguity is inherited deliberately from the upstream matching rules.
//
// Commas and spaces are stripped as group separators; the dot stays as
// the decimal separator, so dot-grouped literals ("3.000.000") fail the
// numeric conversion and yield no value.
func ParseMoney(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}

	// Upstream descriptions occasionally carry NBSP between figure and
	// suffix.
	text = strings.ReplaceAll(text, " ", " ")

	m := moneyRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}

	num, err := strconv.ParseFloat(groupSeparators.Replace(m[2]), 64)
	if err != nil {
		return 0, false
	}

	return num * suffixMultiplier(m[4]), true
}

func suffixMultiplier(suffix string) float64 {
	s := strings.ToUpper(strings.TrimSpace(suffix))
	switch {
	case strings.Contains(s, "B"):
		return 1e9
	case strings.Contains(s, "M"):
		return 1e6
	case strings.Contains(s, "K"):
		return 1e3
	default:
		return 1
	}
}
