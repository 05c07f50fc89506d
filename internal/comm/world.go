package comm

import "fmt"

// World is a set of in-process ranks. Rank r receives broadcasts on inbox[r];
// since all ranks issue collectives in the same order, per-rank FIFO order is
// enough to match every payload with its collective.
type World struct {
	inbox []chan []byte
}

// Rank is one member of a World.
type Rank struct {
	world *World
	rank  int
}

// NewWorld creates size in-process ranks. Each returned Rank must be driven
// from its own goroutine.
func NewWorld(size int) []*Rank {
	if size < 1 {
		size = 1
	}
	w := &World{inbox: make([]chan []byte, size)}
	for i := range w.inbox {
		w.inbox[i] = make(chan []byte, 64)
	}
	ranks := make([]*Rank, size)
	for i := range ranks {
		ranks[i] = &Rank{world: w, rank: i}
	}
	return ranks
}

func (r *Rank) Rank() int { return r.rank }
func (r *Rank) Size() int { return len(r.world.inbox) }

func (r *Rank) Bcast(buf []byte, root int) error {
	size := r.Size()
	if root < 0 || root >= size {
		return fmt.Errorf("%w: %d", ErrRoot, root)
	}

	if r.rank == root {
		for dst := 0; dst < size; dst++ {
			if dst == root {
				continue
			}
			msg := make([]byte, len(buf))
			copy(msg, buf)
			r.world.inbox[dst] <- msg
		}
		return nil
	}

	msg := <-r.world.inbox[r.rank]
	if len(msg) != len(buf) {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrLength, len(msg), len(buf))
	}
	copy(buf, msg)
	return nil
}
