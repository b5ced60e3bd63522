// Package utils provides shared utility functions.
package utils

import (
	"strconv"
	"strings"
)

// FormatAmount formats a dollar amount with thousands separators and no
// decimals, e.g. 50000000 -> "50,000,000".
func FormatAmount(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	formatted := groupThousands(strconv.FormatFloat(amount, 'f', 0, 64))
	if negative {
		return "-" + formatted
	}
	return formatted
}

func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
