package restart

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/san-kum/pairsim/internal/comm"
)

// ErrRestartFormat indicates a truncated or malformed restart stream.
var ErrRestartFormat = errors.New("restart: malformed or truncated stream")

const root = 0

var order = binary.LittleEndian

// Writer serializes fields on the root rank. Errors are sticky: after the
// first failure every call is a no-op and Err reports it.
type Writer struct {
	w   io.Writer
	c   comm.Communicator
	buf [8]byte
	n   int64
	err error
}

// NewWriter wraps w. On non-root ranks w may be nil.
func NewWriter(w io.Writer, c comm.Communicator) *Writer {
	if c == nil {
		c = comm.Serial{}
	}
	return &Writer{w: w, c: c}
}

func (w *Writer) write(b []byte) {
	if w.err != nil || !comm.IsRoot(w.c) {
		return
	}
	if w.w == nil {
		w.err = errors.New("restart: root rank has no output stream")
		return
	}
	n, err := w.w.Write(b)
	w.n += int64(n)
	if err != nil {
		w.err = fmt.Errorf("restart: write: %w", err)
	}
}

func (w *Writer) Float64(v float64) {
	order.PutUint64(w.buf[:8], math.Float64bits(v))
	w.write(w.buf[:8])
}

func (w *Writer) Int32(v int32) {
	order.PutUint32(w.buf[:4], uint32(v))
	w.write(w.buf[:4])
}

func (w *Writer) Bool32(v bool) {
	var i int32
	if v {
		i = 1
	}
	w.Int32(i)
}

func (w *Writer) Byte(v byte) {
	w.buf[0] = v
	w.write(w.buf[:1])
}

func (w *Writer) String(s string) {
	w.Int32(int32(len(s)))
	w.write([]byte(s))
}

// Len is the number of bytes written so far on the root rank.
func (w *Writer) Len() int64 { return w.n }
func (w *Writer) Err() error { return w.err }

// Reader deserializes fields collectively. Every rank must make the same
// sequence of calls.
type Reader struct {
	r   io.Reader
	c   comm.Communicator
	err error
}

// NewReader wraps r. On non-root ranks r may be nil.
func NewReader(r io.Reader, c comm.Communicator) *Reader {
	if c == nil {
		c = comm.Serial{}
	}
	return &Reader{r: r, c: c}
}

// field reads n payload bytes on root and broadcasts [status | payload].
// A failed read on root is delivered as a non-zero status so that every rank
// records the same error at the same field.
func (r *Reader) field(n int) []byte {
	if r.err != nil {
		return nil
	}
	msg := make([]byte, 1+n)

	if comm.IsRoot(r.c) {
		if r.r == nil {
			msg[0] = 1
		} else if _, err := io.ReadFull(r.r, msg[1:]); err != nil {
			msg[0] = 1
		}
	}

	if err := r.c.Bcast(msg, root); err != nil {
		r.err = fmt.Errorf("restart: broadcast: %w", err)
		return nil
	}
	if msg[0] != 0 {
		r.err = fmt.Errorf("%w: short read of %d-byte field", ErrRestartFormat, n)
		return nil
	}
	return msg[1:]
}

func (r *Reader) Float64() float64 {
	b := r.field(8)
	if b == nil {
		return 0
	}
	return math.Float64frombits(order.Uint64(b))
}

func (r *Reader) Int32() int32 {
	b := r.field(4)
	if b == nil {
		return 0
	}
	return int32(order.Uint32(b))
}

// Bool32 reads an int32 flag; anything but 0 or 1 is malformed.
func (r *Reader) Bool32() bool {
	v := r.Int32()
	if r.err == nil && v != 0 && v != 1 {
		r.err = fmt.Errorf("%w: flag value %d", ErrRestartFormat, v)
	}
	return v == 1
}

func (r *Reader) Byte() byte {
	b := r.field(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// Flag reads a one-byte set flag; anything but 0 or 1 is malformed.
func (r *Reader) Flag() bool {
	v := r.Byte()
	if r.err == nil && v > 1 {
		r.err = fmt.Errorf("%w: set flag %d", ErrRestartFormat, v)
	}
	return v == 1
}

// maxString bounds String so a corrupt length cannot allocate unbounded memory.
const maxString = 1 << 16

func (r *Reader) String() string {
	n := r.Int32()
	if r.err != nil {
		return ""
	}
	if n < 0 || n > maxString {
		r.err = fmt.Errorf("%w: string length %d", ErrRestartFormat, n)
		return ""
	}
	b := r.field(int(n))
	return string(b)
}

// Fail records err unless an earlier error is already recorded. Callers
// use it for semantic checks; the value must be identical on every rank.
func (r *Reader) Fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *Reader) Err() error { return r.err }
