package pair

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/san-kum/pairsim/internal/comm"
	"github.com/san-kum/pairsim/internal/restart"
)

func writeRestart(t *testing.T, e *Engine) []byte {
	t.Helper()
	var buf bytes.Buffer
	must(t, e.WriteRestart(restart.NewWriter(&buf, nil)))
	return buf.Bytes()
}

func TestRestartRoundTrip(t *testing.T) {
	for _, c := range styleCases {
		t.Run(c.style, func(t *testing.T) {
			orig := c.engine(t, WithThreads(2))
			data := writeRestart(t, orig)

			back, err := New(c.style, 2, WithThreads(2))
			must(t, err)
			must(t, back.ReadRestart(restart.NewReader(bytes.NewReader(data), nil)))
			if c.style == "lj/charmm/coul/long" {
				must(t, back.SetEwald(0.9))
			}
			must(t, back.Init(nil))

			if !sameTable(snapshot(orig.style), snapshot(back.style)) {
				t.Error("parameter table differs after restart")
			}
			if back.Mix() != orig.Mix() || back.Offset() != orig.Offset() {
				t.Errorf("modify state differs: %v/%v vs %v/%v", back.Mix(), back.Offset(), orig.Mix(), orig.Offset())
			}
			if back.CutForce() != orig.CutForce() {
				t.Errorf("cutforce %v, want %v", back.CutForce(), orig.CutForce())
			}

			a := newFixture(t, c.charged, orig.CutForce(), true, 5)
			b := newFixture(t, c.charged, back.CutForce(), true, 5)
			must(t, orig.Compute(a.atoms, a.list, true, true))
			must(t, back.Compute(b.atoms, b.list, true, true))
			for i := range a.atoms.F {
				if a.atoms.F[i] != b.atoms.F[i] {
					t.Fatalf("force %d differs after restart", i)
				}
			}
		})
	}
}

func TestRestartSkipsMixedPairs(t *testing.T) {
	e := newEngine(t, "lj/cut/coul/cut", 3, []string{"2.5"},
		[][]string{{"1", "1", "1", "1"}, {"2", "2", "1", "1"}, {"3", "3", "1", "1"}})
	data := writeRestart(t, e)
	// name, type count, two cutoffs, offset, mix, six flags, three records
	// of four values
	if want := 4 + len("lj/cut/coul/cut") + 4 + 2*8 + 4 + 4 + 6 + 3*4*8; len(data) != want {
		t.Errorf("expected %d bytes, got %d", want, len(data))
	}
}

func TestRestartTruncated(t *testing.T) {
	c := styleCases[0]
	orig := c.engine(t)
	data := writeRestart(t, orig)

	for _, n := range []int{0, 5, 20, len(data) - 1} {
		e := c.engine(t)
		before := snapshot(e.style)
		err := e.ReadRestart(restart.NewReader(bytes.NewReader(data[:n]), nil))
		if !errors.Is(err, restart.ErrRestartFormat) {
			t.Errorf("%d bytes: expected ErrRestartFormat, got %v", n, err)
		}
		if !sameTable(before, snapshot(e.style)) {
			t.Errorf("%d bytes: failed read modified the engine", n)
		}
	}
}

func TestRestartBadMixRule(t *testing.T) {
	e := styleCases[4].engine(t)
	data := writeRestart(t, e)
	// after the header, buck settings are one float64 and the mix rule
	// follows the offset flag
	header := 4 + len("buck") + 4
	data[header+12] = 9
	back, err := New("buck", 2)
	must(t, err)
	if err := back.ReadRestart(restart.NewReader(bytes.NewReader(data), nil)); !errors.Is(err, restart.ErrRestartFormat) {
		t.Errorf("expected ErrRestartFormat, got %v", err)
	}
}

func TestRestartWrongEngine(t *testing.T) {
	buck := writeRestart(t, styleCases[4].engine(t))
	lj := writeRestart(t, styleCases[0].engine(t))

	tests := []struct {
		name   string
		data   []byte
		style  string
		ntypes int
	}{
		{"other style", buck, "lj/cut/coul/cut", 2},
		{"other type count", lj, "lj/cut/coul/cut", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, tt.style, tt.ntypes, []string{"3.0"}, [][]string{{"*", "*", "0.7", "1.1"}})
			before := snapshot(e.style)
			err := e.ReadRestart(restart.NewReader(bytes.NewReader(tt.data), nil))
			if !errors.Is(err, restart.ErrRestartFormat) {
				t.Errorf("expected ErrRestartFormat, got %v", err)
			}
			if !sameTable(before, snapshot(e.style)) {
				t.Error("failed read modified the engine")
			}
			if e.CutForce() != 3.0 {
				t.Errorf("cutforce %v after a rejected read", e.CutForce())
			}
		})
	}
}

func TestRestartBroadcast(t *testing.T) {
	c := styleCases[1]
	orig := c.engine(t)
	data := writeRestart(t, orig)
	want := snapshot(orig.style)

	for _, n := range []int{len(data), len(data) / 2} {
		ranks := comm.NewWorld(4)
		errs := make([]error, len(ranks))
		tables := make([]any, len(ranks))

		var wg sync.WaitGroup
		for k, rank := range ranks {
			wg.Add(1)
			go func(k int, rank *comm.Rank) {
				defer wg.Done()
				var src io.Reader
				if k == 0 {
					src = bytes.NewReader(data[:n])
				}
				e, err := New(c.style, 2)
				if err != nil {
					errs[k] = err
					return
				}
				if err := e.ReadRestart(restart.NewReader(src, rank)); err != nil {
					errs[k] = err
					return
				}
				errs[k] = e.Init(nil)
				tables[k] = snapshot(e.style)
			}(k, rank)
		}
		wg.Wait()

		for k := range ranks {
			if n < len(data) {
				if !errors.Is(errs[k], restart.ErrRestartFormat) {
					t.Errorf("rank %d: expected ErrRestartFormat, got %v", k, errs[k])
				}
				continue
			}
			if errs[k] != nil {
				t.Errorf("rank %d: %v", k, errs[k])
			} else if !sameTable(tables[k], want) {
				t.Errorf("rank %d: table differs from the writer's", k)
			}
		}
	}
}

func TestRestartFileCompressed(t *testing.T) {
	c := styleCases[3]
	orig := c.engine(t)
	path := t.TempDir() + "/pair.restart.zst"

	f, err := restart.Create(path, nil)
	must(t, err)
	must(t, orig.WriteRestart(restart.NewWriter(f, nil)))
	must(t, f.Close())

	in, err := restart.Open(path, nil)
	must(t, err)
	defer in.Close()
	back, err := New(c.style, 2)
	must(t, err)
	must(t, back.ReadRestart(restart.NewReader(in, nil)))
	must(t, back.Init(nil))
	if !sameTable(snapshot(orig.style), snapshot(back.style)) {
		t.Error("table differs after compressed round trip")
	}
}
