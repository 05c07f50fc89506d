package compute

// Backend runs one fork-join region at a time.
type Backend interface {
	Name() string
	Available() bool
	Workers() int
	// Region calls fn once per worker with that worker's span of [0, n)
	// and returns after every call has finished.
	Region(n int, fn func(worker int, s Span))
	Cleanup()
}

var activeBackend Backend

func init() {
	// GPU when available, else CPU
	activeBackend = AutoSelectBackend(0)
}

func SetBackend(b Backend) {
	if activeBackend != nil {
		activeBackend.Cleanup()
	}
	activeBackend = b
}

func GetBackend() Backend {
	return activeBackend
}

// AutoSelectBackend returns the best available backend. workers <= 0 means
// one worker per CPU.
func AutoSelectBackend(workers int) Backend {
	gpu := NewGPUBackend()
	if gpu.Available() {
		return gpu
	}
	return NewCPUBackend(workers)
}

// Backends lists every compiled-in backend, available or not.
func Backends() []Backend {
	return []Backend{NewCPUBackend(0), NewGPUBackend()}
}
