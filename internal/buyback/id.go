package buyback

import (
	"fmt"
	"hash/fnv"
)

// descriptionIDLength is how many leading characters of the description
// participate in the fingerprint. Descriptions are often re-fetched with
// trailing boilerplate variations; the head is the stable part.
const descriptionIDLength = 120

// EventID derives a stable fingerprint for one event from its ticker,
// date and the head of its description. FNV-64a keeps the id identical
// across runs and hosts, which the dedup store depends on. A hash
// collision merges two events into one notification slot; accepted as a
// rare-case tradeoff.
func EventID(ticker, date, description string) string {
	head := description
	if r := []rune(description); len(r) > descriptionIDLength {
		head = string(r[:descriptionIDLength])
	}

	h := fnv.New64a()
	h.Write([]byte(head))

	return fmt.Sprintf("%s__%s__%d", ticker, date, h.Sum64())
}
