package reconcile

// SkippedRow records one parsed row that was not persisted, with the reason.
type SkippedRow struct {
	Row    string `json:"row"`
	Reason string `json:"reason"`
}

// Report summarizes one reconciliation run. Skipped rows are collected
// explicitly rather than only logged, so callers can surface per-row
// diagnostics.
type Report struct {
	Created int          `json:"created"`
	Updated int          `json:"updated"`
	Skipped []SkippedRow `json:"skipped,omitempty"`
}

func (r *Report) skip(row, reason string) {
	r.Skipped = append(r.Skipped, SkippedRow{Row: row, Reason: reason})
}
