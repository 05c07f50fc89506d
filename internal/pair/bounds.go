package pair

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBounds reads a type argument: "n", "*", "*n", "n*" or "m*n", with
// open ends meaning 1 and ntypes.
func ParseBounds(arg string, ntypes int) (lo, hi int, err error) {
	star := strings.IndexByte(arg, '*')
	if star < 0 {
		lo, err = strconv.Atoi(arg)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: bad type %q", ErrConfig, arg)
		}
		hi = lo
	} else {
		lo, hi = 1, ntypes
		if left := arg[:star]; left != "" {
			if lo, err = strconv.Atoi(left); err != nil {
				return 0, 0, fmt.Errorf("%w: bad type range %q", ErrConfig, arg)
			}
		}
		if right := arg[star+1:]; right != "" {
			if hi, err = strconv.Atoi(right); err != nil {
				return 0, 0, fmt.Errorf("%w: bad type range %q", ErrConfig, arg)
			}
		}
	}
	if lo < 1 || hi > ntypes {
		return 0, 0, fmt.Errorf("%w: %q not in [1,%d]", ErrTypeRange, arg, ntypes)
	}
	return lo, hi, nil
}

func numeric(style, op, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, configError(style, op, "expected floating point parameter, got %q", s)
	}
	return v, nil
}

func numerics(style, op string, args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for k, s := range args {
		v, err := numeric(style, op, s)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}
