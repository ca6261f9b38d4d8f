package dirnuke

import (
	"time"
)

// Summary holds the totals of a walk.
type Summary struct {
	// Bytes is the cumulative size of all successfully processed files.
	Bytes int64 `json:"bytes"`
	// Succeeded is the number of files scanned or removed.
	Succeeded int64 `json:"succeeded"`
	// Failed is the number of files or directories that failed.
	Failed int64 `json:"failed"`
}

// record accounts for one outcome.
func (s *Summary) record(o Outcome) {
	if o.Failed() {
		s.Failed++

		return
	}

	s.Succeeded++
	s.Bytes += o.Size
}

// Add merges another summary into s.
func (s *Summary) Add(other Summary) {
	s.Bytes += other.Bytes
	s.Succeeded += other.Succeeded
	s.Failed += other.Failed
}

// Processed is the number of handled entries, failures included.
func (s Summary) Processed() int64 {
	return s.Succeeded + s.Failed
}

// RootSummary is the tally a single worker kept for its root.
type RootSummary struct {
	// Root is the walked directory.
	Root string `json:"root"`
	Summary
}

// Report is the result of one phase over all roots.
type Report struct {
	// Phase is the action that was performed.
	Phase Phase `json:"phase"`
	// Total is the aggregated summary across all roots.
	Total Summary `json:"total"`
	// Processed is the number of outcomes the aggregator received.
	Processed int64 `json:"processed"`
	// Roots holds the per-root tallies in configuration order.
	Roots []RootSummary `json:"roots"`
	// Elapsed is the wall time of the phase.
	Elapsed time.Duration `json:"elapsed"`
}

// Combined sums the per-root tallies.
func (r *Report) Combined() Summary {
	var combined Summary
	for _, root := range r.Roots {
		combined.Add(root.Summary)
	}

	return combined
}

// Consistent reports whether the aggregated total matches the sum of the
// per-root tallies the workers kept on their own.
func (r *Report) Consistent() bool {
	return r.Combined() == r.Total
}
