package neighbor

// BuildOptions controls Build.
type BuildOptions struct {
	// Newton selects the half-list convention. With Newton, a local-ghost
	// pair is stored once across all processes (on the side whose ghost lies
	// above the local atom in z, then y, then x). Without it, every
	// local-ghost pair is stored and each process keeps only its own half.
	Newton bool

	// Special returns the exclusion class of a pair; nil means no bonds.
	Special func(i, j int) uint8
}

// Build constructs a half neighbor list by testing every pair within
// cutoff. x holds 3*nall coordinates, local atoms first. It is meant for
// tests and small drivers; production lists come from a binned builder.
func Build(x []float64, nlocal, nall int, cutoff float64, opts BuildOptions) *List {
	cutsq := cutoff * cutoff
	l := &List{
		IList: make([]int, nlocal),
		Neigh: make([][]Entry, nlocal),
	}

	for i := 0; i < nlocal; i++ {
		l.IList[i] = i
		xi, yi, zi := x[3*i], x[3*i+1], x[3*i+2]
		var row []Entry

		for j := i + 1; j < nall; j++ {
			xj, yj, zj := x[3*j], x[3*j+1], x[3*j+2]

			if j >= nlocal && opts.Newton && !above(xi, yi, zi, xj, yj, zj) {
				continue
			}

			dx, dy, dz := xi-xj, yi-yj, zi-zj
			if dx*dx+dy*dy+dz*dz >= cutsq {
				continue
			}

			e := Entry{J: j}
			if opts.Special != nil {
				e.Special = opts.Special(i, j)
			}
			row = append(row, e)
		}
		l.Neigh[i] = row
	}
	return l
}

func above(xi, yi, zi, xj, yj, zj float64) bool {
	if zj != zi {
		return zj > zi
	}
	if yj != yi {
		return yj > yi
	}
	return xj >= xi
}
