// Package parallel provides chunked parallel execution for independent
// per-index work, such as transporting many tangent vectors along the
// same geodesic step.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // whether work may fan out to worker goroutines
	NumWorkers   int  // number of worker goroutines to use
	MinChunkSize int  // minimum items before fanning out
}

// DefaultConfig returns sensible defaults based on CPU count. The chunk
// threshold assumes matrix-sized work items, not per-element kernels.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 16,
	}
}

// For executes f(i) for i in [0, n). Small workloads run sequentially;
// larger ones are split into contiguous chunks across workers. f must be
// safe to call concurrently for distinct i.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
