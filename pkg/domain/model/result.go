package model

import "log/slog"

// ReclaimStatus is the outcome of reclaiming a single mannequin
type ReclaimStatus string

const (
	ReclaimStatusSuccess ReclaimStatus = "success"
	ReclaimStatusSkipped ReclaimStatus = "skipped"
	ReclaimStatusFailed  ReclaimStatus = "failed"
)

// ReclaimResult collects the outcome of every entry of a reclaim run
type ReclaimResult struct {
	Details []ReclaimDetail
}

// ReclaimDetail represents the outcome for one mannequin/target pair
type ReclaimDetail struct {
	Line          int    // CSV line number, 0 in single mode
	MannequinUser string // Mannequin login as given by the operator
	MannequinID   string // Resolved mannequin node ID
	TargetUser    string // Target login as given by the operator
	Status        ReclaimStatus
	Reason        string // Why the entry was skipped or failed
}

// Add appends a detail to the result
func (r *ReclaimResult) Add(d ReclaimDetail) {
	r.Details = append(r.Details, d)
}

// Count returns the number of details with the given status
func (r *ReclaimResult) Count(status ReclaimStatus) int {
	n := 0
	for _, d := range r.Details {
		if d.Status == status {
			n++
		}
	}
	return n
}

// HasFailure reports whether any entry failed
func (r *ReclaimResult) HasFailure() bool {
	return r.Count(ReclaimStatusFailed) > 0
}

// LogValue returns structured log value
func (r ReclaimResult) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("total", len(r.Details)),
		slog.Int("succeeded", r.Count(ReclaimStatusSuccess)),
		slog.Int("skipped", r.Count(ReclaimStatusSkipped)),
		slog.Int("failed", r.Count(ReclaimStatusFailed)),
	)
}
