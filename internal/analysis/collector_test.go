package analysis_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/wyh-alt/audio-analyzer/internal/analysis"
)

func TestCollectorCountMatchesResults(t *testing.T) {
	collector := analysis.NewCollector(3)

	completed, done := collector.Add(analysis.Result{Filename: "a.wav"})
	if completed != 1 || done {
		t.Fatalf("first Add = (%d, %v)", completed, done)
	}
	collector.Add(analysis.Result{Filename: "b.wav"})
	completed, done = collector.Add(analysis.Result{Filename: "c.wav"})
	if completed != 3 || !done {
		t.Fatalf("final Add = (%d, %v), want (3, true)", completed, done)
	}
	if got := collector.Results(); len(got) != collector.Completed() {
		t.Fatalf("len(results)=%d, completed=%d", len(got), collector.Completed())
	}
}

func TestCollectorConcurrentAdds(t *testing.T) {
	const total = 500
	collector := analysis.NewCollector(total)

	var doneCount int
	var doneMu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < total; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			completed, allDone := collector.Add(analysis.Result{Filename: fmt.Sprintf("%d.wav", i)})
			if completed < 1 || completed > total {
				t.Errorf("completed out of range: %d", completed)
			}
			if allDone {
				doneMu.Lock()
				doneCount++
				doneMu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	if collector.Completed() != total {
		t.Fatalf("completed = %d, want %d", collector.Completed(), total)
	}
	if len(collector.Results()) != total {
		t.Fatalf("results = %d, want %d", len(collector.Results()), total)
	}
	// Exactly one goroutine observes batch completion.
	if doneCount != 1 {
		t.Fatalf("allDone observed %d times, want once", doneCount)
	}
}
