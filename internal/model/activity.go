// Package model defines the activity and summary types shared across the pipeline.
package model

// Activity is one tracked time slot attributed to a client.
// A slot with no client attribution has an empty Client field.
type Activity struct {
	ID           int64  `json:"id"`
	Client       string `json:"client"`
	Tracked      int64  `json:"tracked"`
	Keyboard     int64  `json:"keyboard"`
	Mouse        int64  `json:"mouse"`
	InputTracked int64  `json:"input_tracked"`
}

// ClientSummary holds accumulated totals for a single client.
type ClientSummary struct {
	Client       string
	TrackedSecs  int64
	Keyboard     int64
	Mouse        int64
	InputTracked int64
	TrackedHours float64 // TrackedSecs / 3600, rounded to 2 decimals
}

// Report maps clients to their summaries, preserving first-seen order.
type Report struct {
	Order   []string
	Clients map[string]*ClientSummary
}

// Summaries returns the per-client summaries in first-seen order.
func (r *Report) Summaries() []*ClientSummary {
	out := make([]*ClientSummary, 0, len(r.Order))
	for _, c := range r.Order {
		out = append(out, r.Clients[c])
	}
	return out
}
