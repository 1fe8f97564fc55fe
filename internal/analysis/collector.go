package analysis

import "sync"

// Collector accumulates results as tasks complete. Appends and the completed
// counter move together under one lock so len(Results()) always equals
// Completed(), whichever goroutine looks.
type Collector struct {
	mu      sync.Mutex
	total   int
	results []Result
}

// NewCollector sizes a collector for a batch of total tasks.
func NewCollector(total int) *Collector {
	return &Collector{
		total:   total,
		results: make([]Result, 0, total),
	}
}

// Add appends a completed result and reports the new completed count and
// whether the batch is done.
func (c *Collector) Add(result Result) (completed int, allDone bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, result)
	completed = len(c.results)
	return completed, completed == c.total
}

// Completed returns how many results have been collected.
func (c *Collector) Completed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}

// Results returns a snapshot of the collected results in completion order.
func (c *Collector) Results() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Result, len(c.results))
	copy(out, c.results)
	return out
}
