package buyback

// marketCapMillionsThreshold is the cutoff under which a reported market
// cap is assumed to be expressed in millions of USD. The upstream profile
// endpoint reports large caps in absolute dollars and most others in
// millions; values under 1e6 dollars would mean a sub-million-dollar
// listed company, which the heuristic reads as "millions" instead.
const marketCapMillionsThreshold = 1e6

// PercentOfMarketCap sizes a buyback against the issuer's market cap,
// in percent. Returns nil when either side is unknown or zero.
func PercentOfMarketCap(amount, marketCap *float64) *float64 {
	if amount == nil || *amount == 0 || marketCap == nil || *marketCap == 0 {
		return nil
	}

	mc := *marketCap
	if mc < marketCapMillionsThreshold {
		mc *= 1e6
	}

	pct := *amount / mc * 100.0
	return &pct
}
