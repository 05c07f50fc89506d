package compute

import "gonum.org/v1/gonum/floats"

// Span is a half-open range [Lo, Hi) of neighbor-list rows.
type Span struct {
	Lo, Hi int
}

func (s Span) Len() int { return s.Hi - s.Lo }

// Partition splits [0, n) into exactly workers contiguous spans of
// 1 + n/workers rows; trailing spans may be short or empty.
func Partition(n, workers int) []Span {
	if workers < 1 {
		workers = 1
	}
	delta := 1 + n/workers
	spans := make([]Span, workers)
	for w := range spans {
		lo := w * delta
		hi := lo + delta
		if lo > n {
			lo = n
		}
		if hi > n {
			hi = n
		}
		spans[w] = Span{Lo: lo, Hi: hi}
	}
	return spans
}

// Reduce adds every buffer into dst in worker order. It runs on the calling
// goroutine only, after the region has joined.
func Reduce(dst []float64, bufs [][]float64) {
	for _, b := range bufs {
		floats.Add(dst, b[:len(dst)])
	}
}
