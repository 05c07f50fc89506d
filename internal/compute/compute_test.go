package compute

import (
	"sync/atomic"
	"testing"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		workers int
	}{
		{"even", 100, 4},
		{"uneven", 10, 4},
		{"more workers than rows", 3, 8},
		{"empty", 0, 4},
		{"single", 17, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := Partition(tt.n, tt.workers)
			if len(spans) != tt.workers {
				t.Fatalf("expected %d spans, got %d", tt.workers, len(spans))
			}

			next := 0
			for w, s := range spans {
				if s.Lo != next && s.Len() > 0 {
					t.Errorf("span %d starts at %d, expected %d", w, s.Lo, next)
				}
				if s.Hi < s.Lo {
					t.Errorf("span %d is inverted: %+v", w, s)
				}
				if s.Len() > 0 {
					next = s.Hi
				}
			}
			if next != tt.n {
				t.Errorf("spans cover [0,%d), expected [0,%d)", next, tt.n)
			}
		})
	}
}

func TestRegionVisitsEveryRowOnce(t *testing.T) {
	const n = 1000
	var hits [n]int32

	for _, workers := range []int{1, 2, 3, 8} {
		for i := range hits {
			hits[i] = 0
		}
		NewCPUBackend(workers).Region(n, func(w int, s Span) {
			for i := s.Lo; i < s.Hi; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("workers=%d: row %d visited %d times", workers, i, h)
			}
		}
	}
}

func TestReduce(t *testing.T) {
	dst := []float64{1, 1, 1}
	bufs := [][]float64{
		{1, 2, 3},
		{0.5, 0, -1},
		{0, 0, 0},
	}
	Reduce(dst, bufs)

	want := []float64{2.5, 3, 3}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestBufferPool(t *testing.T) {
	pool := NewBufferPool(6)

	b := pool.Get()
	if len(b) != 6 {
		t.Fatalf("pool returned wrong size: %d", len(b))
	}
	b[0], b[5] = 3, 4
	pool.Put(b)

	for _, b := range pool.GetN(3) {
		for i, v := range b {
			if v != 0 {
				t.Fatalf("buffer not zeroed at %d: %v", i, v)
			}
		}
	}
}

func TestAutoSelectFallsBackToCPU(t *testing.T) {
	b := AutoSelectBackend(3)
	if !b.Available() {
		t.Fatal("selected backend must be available")
	}
	if b.Workers() != 3 {
		t.Errorf("expected 3 workers, got %d", b.Workers())
	}
	if NewGPUBackend().Available() {
		t.Error("gpu backend should not be available in this build")
	}
}
