package pair

import (
	"errors"
	"testing"
)

func TestTableMirror(t *testing.T) {
	tab := NewTable[float64](3)
	if err := tab.Set(1, 3, 2.5); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := tab.Get(3, 1)
	if err != nil || v != 2.5 {
		t.Errorf("expected mirrored 2.5, got %v (%v)", v, err)
	}
	if !tab.IsSet(3, 1) || !tab.IsSet(1, 3) {
		t.Error("expected (1,3) explicit from both orders")
	}
	if tab.IsSet(1, 2) {
		t.Error("expected (1,2) unset")
	}

	if err := tab.Store(2, 1, 7); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if tab.IsSet(1, 2) {
		t.Error("Store must not mark a pair explicit")
	}
	if v, _ := tab.Get(1, 2); v != 7 {
		t.Errorf("expected 7, got %v", v)
	}
}

func TestTableRange(t *testing.T) {
	tab := NewTable[float64](2)
	cases := [][2]int{{0, 1}, {1, 0}, {3, 1}, {1, 3}, {-1, 2}}
	for _, c := range cases {
		if err := tab.Set(c[0], c[1], 1); !errors.Is(err, ErrTypeRange) {
			t.Errorf("Set%v: expected ErrTypeRange, got %v", c, err)
		}
		if _, err := tab.Get(c[0], c[1]); !errors.Is(err, ErrTypeRange) {
			t.Errorf("Get%v: expected ErrTypeRange, got %v", c, err)
		}
		if tab.IsSet(c[0], c[1]) {
			t.Errorf("IsSet%v: expected false", c)
		}
	}
}

func TestParseBounds(t *testing.T) {
	tests := []struct {
		arg    string
		lo, hi int
	}{
		{"2", 2, 2},
		{"*", 1, 4},
		{"*3", 1, 3},
		{"2*", 2, 4},
		{"2*3", 2, 3},
		{"3*2", 3, 2},
	}
	for _, tt := range tests {
		lo, hi, err := ParseBounds(tt.arg, 4)
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.arg, err)
			continue
		}
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("%q: expected [%d,%d], got [%d,%d]", tt.arg, tt.lo, tt.hi, lo, hi)
		}
	}

	for _, arg := range []string{"0", "5", "0*2", "*5", "x", "1*y", ""} {
		if _, _, err := ParseBounds(arg, 4); err == nil {
			t.Errorf("%q: expected error", arg)
		}
	}
}

func TestCoeffRangeMatchesNothing(t *testing.T) {
	s := NewLJCut(3)
	// i range above j range: no pair with i <= j
	err := s.Coeff([]string{"3", "1*2", "1.0", "1.0"})
	if !errors.Is(err, ErrConfig) {
		t.Errorf("expected ErrConfig, got %v", err)
	}
}

func TestCoeffWildcard(t *testing.T) {
	s := NewLJCut(3)
	if err := s.Settings([]string{"2.5"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Coeff([]string{"*", "*", "1.0", "1.0"}); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 3; i++ {
		for j := 1; j <= 3; j++ {
			if !s.tab.IsSet(i, j) {
				t.Errorf("expected (%d,%d) set", i, j)
			}
		}
	}
}
