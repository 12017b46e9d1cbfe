// Package pipeline reduces raw activity records into per-client summaries.
package pipeline

import (
	"math"

	"hubsum/internal/model"
)

// unknownClient is the bucket for activities with no client attribution.
const unknownClient = "unknown"

// SummarizeByClient reduces activities into per-client totals in a single
// pass, preserving first-seen client order. Every tracked/keyboard/mouse/
// input_tracked second in the input lands in exactly one summary, so totals
// are conserved.
func SummarizeByClient(activities []model.Activity) *model.Report {
	report := &model.Report{
		Clients: make(map[string]*model.ClientSummary),
	}

	for _, a := range activities {
		client := a.Client
		if client == "" {
			client = unknownClient
		}

		cs, ok := report.Clients[client]
		if !ok {
			cs = &model.ClientSummary{Client: client}
			report.Clients[client] = cs
			report.Order = append(report.Order, client)
		}

		cs.TrackedSecs += a.Tracked
		cs.Keyboard += a.Keyboard
		cs.Mouse += a.Mouse
		cs.InputTracked += a.InputTracked
	}

	// Second pass: derive display hours once the totals are final.
	for _, cs := range report.Clients {
		cs.TrackedHours = RoundHours(cs.TrackedSecs)
	}

	return report
}

// RoundHours converts tracked seconds to hours rounded to two decimals.
func RoundHours(secs int64) float64 {
	return math.Round(float64(secs)/3600*100) / 100
}
