package compute

// ChargeSpreader is the offload contract of a grid-based long-range solver:
// assign per-atom charges onto a 3d mesh with a stencil of the given order.
// The pair engine never calls it; it marks where a device-resident solver
// plugs in.
type ChargeSpreader interface {
	SpreadCharges(x, q []float64, nlocal int, grid []float64, order int) error
}

// GPUBackend is the placeholder for a device backend. It is never available
// in this build and runs regions on the CPU.
type GPUBackend struct {
	cpu *CPUBackend
}

func NewGPUBackend() *GPUBackend {
	return &GPUBackend{cpu: NewCPUBackend(0)}
}

func (g *GPUBackend) Name() string    { return "gpu (not available)" }
func (g *GPUBackend) Available() bool { return false }
func (g *GPUBackend) Workers() int    { return g.cpu.Workers() }
func (g *GPUBackend) Cleanup()        {}

func (g *GPUBackend) Region(n int, fn func(worker int, s Span)) {
	g.cpu.Region(n, fn)
}
