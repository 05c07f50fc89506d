package compute

import (
	"fmt"
	"runtime"
	"sync"
)

type CPUBackend struct {
	workers int
}

// NewCPUBackend returns a goroutine backend with the given worker count.
// workers <= 0 selects runtime.NumCPU().
func NewCPUBackend(workers int) *CPUBackend {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &CPUBackend{workers: workers}
}

func (c *CPUBackend) Name() string    { return fmt.Sprintf("cpu (%d workers)", c.workers) }
func (c *CPUBackend) Available() bool { return true }
func (c *CPUBackend) Workers() int    { return c.workers }
func (c *CPUBackend) Cleanup()        {}

func (c *CPUBackend) Region(n int, fn func(worker int, s Span)) {
	spans := Partition(n, c.workers)

	if c.workers == 1 {
		fn(0, spans[0])
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(spans))

	for w, s := range spans {
		go func(worker int, s Span) {
			defer wg.Done()
			fn(worker, s)
		}(w, s)
	}

	wg.Wait()
}
