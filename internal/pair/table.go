package pair

import "unsafe"

// Table is a symmetric per type-pair parameter store indexed by 1-based
// types. Records are kept for both (i,j) and (j,i); the explicit flag is
// kept for i <= j only.
type Table[P any] struct {
	n      int
	stride int
	data   []P
	set    []bool
}

func NewTable[P any](ntypes int) *Table[P] {
	stride := ntypes + 1
	return &Table[P]{
		n:      ntypes,
		stride: stride,
		data:   make([]P, stride*stride),
		set:    make([]bool, stride*stride),
	}
}

func (t *Table[P]) NTypes() int { return t.n }

func (t *Table[P]) check(i, j int) error {
	if i < 1 || j < 1 || i > t.n || j > t.n {
		return rangeError(i, j, t.n)
	}
	return nil
}

func canonical(i, j int) (int, int) {
	if i > j {
		return j, i
	}
	return i, j
}

// Set stores an explicitly configured record and mirrors it.
func (t *Table[P]) Set(i, j int, p P) error {
	if err := t.check(i, j); err != nil {
		return err
	}
	i, j = canonical(i, j)
	t.set[i*t.stride+j] = true
	t.data[i*t.stride+j] = p
	t.data[j*t.stride+i] = p
	return nil
}

// Store writes a mixed or derived record without touching the explicit flag.
func (t *Table[P]) Store(i, j int, p P) error {
	if err := t.check(i, j); err != nil {
		return err
	}
	t.data[i*t.stride+j] = p
	t.data[j*t.stride+i] = p
	return nil
}

func (t *Table[P]) Get(i, j int) (P, error) {
	if err := t.check(i, j); err != nil {
		var zero P
		return zero, err
	}
	return t.data[i*t.stride+j], nil
}

// IsSet reports whether (i,j) was explicitly configured.
func (t *Table[P]) IsSet(i, j int) bool {
	if t.check(i, j) != nil {
		return false
	}
	i, j = canonical(i, j)
	return t.set[i*t.stride+j]
}

// at is the unchecked accessor for the force loop; types were validated
// before the region started.
func (t *Table[P]) at(i, j int) *P {
	return &t.data[i*t.stride+j]
}

func (t *Table[P]) bytes() int {
	var p P
	return len(t.data)*int(unsafe.Sizeof(p)) + len(t.set)
}
