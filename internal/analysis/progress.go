package analysis

import "sync"

// ProgressTracker turns per-task completion reports into a monotonic
// percentage. Workers finish in arbitrary order, so a later report can carry
// a smaller index than one already seen; the tracker only moves forward.
type ProgressTracker struct {
	mu      sync.Mutex
	percent int
}

// Report records that the task with 1-based position completed out of total
// and returns the current (possibly unchanged) percentage.
func (p *ProgressTracker) Report(completed, total int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if total > 0 {
		if percent := completed * 100 / total; percent > p.percent {
			p.percent = percent
		}
	}
	return p.percent
}

// Percent returns the last ratcheted value.
func (p *ProgressTracker) Percent() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.percent
}
