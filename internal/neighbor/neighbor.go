// Package neighbor is the read-only view the pair engine takes of a
// neighbor list.
//
// Producers usually pack the bonded-exclusion class of a pair into the high
// part of the neighbor id (id = class*nall + index). [Decode] unpacks that
// once, when the list is handed over, into explicit [Entry] records so the
// force loop never divides or takes a modulus.
package neighbor

import (
	"errors"
	"fmt"
)

// NumSpecial is the number of exclusion classes: 0 for a normal pair, then
// 1-2, 1-3 and 1-4 bonded neighbors.
const NumSpecial = 4

// ErrSpecialClass indicates a packed id whose exclusion class is not in [0, NumSpecial).
var ErrSpecialClass = errors.New("neighbor: exclusion class out of range")

// Entry is one neighbor of a local atom.
type Entry struct {
	J       int
	Special uint8
}

// List is a half or full neighbor list over local atoms. Row ii belongs to
// atom IList[ii]; Neigh[ii] holds its neighbors. Rows may be walked any
// number of times.
type List struct {
	IList []int
	Neigh [][]Entry
}

func (l *List) Inum() int { return len(l.IList) }

// Neighbors returns the atom index of row ii and its neighbors.
func (l *List) Neighbors(ii int) (int, []Entry) {
	return l.IList[ii], l.Neigh[ii]
}

// Pairs counts the entries over every row.
func (l *List) Pairs() int {
	n := 0
	for _, row := range l.Neigh {
		n += len(row)
	}
	return n
}

// Decode converts packed neighbor ids into entries. firstneigh[ii] holds the
// raw ids of atom ilist[ii]; nall is the local plus ghost atom count.
func Decode(ilist []int, firstneigh [][]int, nall int) (*List, error) {
	if len(ilist) != len(firstneigh) {
		return nil, fmt.Errorf("neighbor: %d rows for %d atoms", len(firstneigh), len(ilist))
	}
	if nall <= 0 {
		return nil, fmt.Errorf("neighbor: atom count must be positive, got %d", nall)
	}

	l := &List{
		IList: append([]int(nil), ilist...),
		Neigh: make([][]Entry, len(ilist)),
	}
	for ii, raw := range firstneigh {
		row := make([]Entry, len(raw))
		for jj, id := range raw {
			class := id / nall
			if id < 0 || class >= NumSpecial {
				return nil, fmt.Errorf("%w: id %d in row %d", ErrSpecialClass, id, ii)
			}
			row[jj] = Entry{J: id % nall, Special: uint8(class)}
		}
		l.Neigh[ii] = row
	}
	return l, nil
}

// Encode packs a list back into raw ids, the inverse of Decode.
func Encode(l *List, nall int) [][]int {
	out := make([][]int, len(l.Neigh))
	for ii, row := range l.Neigh {
		raw := make([]int, len(row))
		for jj, e := range row {
			raw[jj] = int(e.Special)*nall + e.J
		}
		out[ii] = raw
	}
	return out
}
