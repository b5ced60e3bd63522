package buyback

import (
	"fmt"
	"strings"

	"buyback-detector/internal/models"
	"buyback-detector/pkg/utils"
)

// EventDelimiter separates rendered events in the aggregated
// notification body.
const EventDelimiter = "\n\n---\n\n"

// RenderEvent formats one detected buyback as the plain-text block used
// in notifications. Optional fields are omitted rather than rendered
// empty.
func RenderEvent(ev models.BuybackEvent) string {
	var b strings.Builder

	b.WriteString("BUYBACK DETECTED\n")
	b.WriteString(ev.Ticker + "\n")
	fmt.Fprintf(&b, "Date: %s\n", ev.Date)

	if ev.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", ev.Description)
	}
	if ev.Amount != nil {
		fmt.Fprintf(&b, "Estimated amount: %s USD\n", utils.FormatAmount(*ev.Amount))
	}
	if ev.PercentOfMarketCap != nil {
		fmt.Fprintf(&b, "≈ %.2f%% of market cap\n", *ev.PercentOfMarketCap)
	}
	if ev.URL != "" {
		fmt.Fprintf(&b, "URL: %s\n", ev.URL)
	}

	return b.String()
}

// RenderBody joins rendered events into the single aggregated
// notification body for a run.
func RenderBody(events []models.BuybackEvent) string {
	texts := make([]string, 0, len(events))
	for _, ev := range events {
		texts = append(texts, ev.Text)
	}
	return strings.Join(texts, EventDelimiter)
}

// RenderSubject builds the notification subject line for a run.
func RenderSubject(count int, runDate string) string {
	return fmt.Sprintf("[Buyback detector] %d event(s) detected - %s", count, runDate)
}
