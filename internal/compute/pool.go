package compute

import "sync"

// BufferPool hands out zeroed force buffers of a fixed width.
type BufferPool struct {
	pool sync.Pool
	size int
}

func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		size: size,
		pool: sync.Pool{
			New: func() interface{} {
				return make([]float64, size)
			},
		},
	}
}

func (p *BufferPool) Size() int { return p.size }

func (p *BufferPool) Get() []float64 {
	return p.pool.Get().([]float64)
}

// GetN returns n independent buffers, one per worker.
func (p *BufferPool) GetN(n int) [][]float64 {
	bufs := make([][]float64, n)
	for i := range bufs {
		bufs[i] = p.Get()
	}
	return bufs
}

// Put zeroes b and returns it to the pool. Buffers of the wrong width are
// dropped.
func (p *BufferPool) Put(b []float64) {
	if len(b) == p.size {
		for i := range b {
			b[i] = 0
		}
		p.pool.Put(b)
	}
}

func (p *BufferPool) PutN(bufs [][]float64) {
	for _, b := range bufs {
		p.Put(b)
	}
}
