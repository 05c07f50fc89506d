// Package comm provides the collective primitives the restart codec needs
// from a distributed run: a rank, a size, and a root-to-all broadcast.
//
// Two communicators are provided:
//
//   - [Serial]: a single-process world where every collective is a no-op
//   - [World]: N in-process ranks connected by channels, one goroutine each
//
// A transport backed by a real message-passing library only needs to
// satisfy [Communicator].
package comm

import (
	"errors"
	"fmt"
)

var (
	// ErrRoot indicates a collective was called with a root outside [0, size).
	ErrRoot = errors.New("comm: root rank out of range")

	// ErrLength indicates the receive buffer does not match the broadcast payload.
	ErrLength = errors.New("comm: broadcast length mismatch")
)

// Communicator is the collective contract. Every rank must call the same
// collectives in the same order with the same root.
type Communicator interface {
	Rank() int
	Size() int
	// Bcast copies buf on root into buf on every other rank.
	Bcast(buf []byte, root int) error
}

// Serial is the communicator of a single-process run.
type Serial struct{}

func (Serial) Rank() int { return 0 }
func (Serial) Size() int { return 1 }

func (Serial) Bcast(buf []byte, root int) error {
	if root != 0 {
		return fmt.Errorf("%w: %d", ErrRoot, root)
	}
	return nil
}

// IsRoot reports whether c is the rank that performs physical I/O.
func IsRoot(c Communicator) bool {
	return c.Rank() == 0
}
