package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/san-kum/pairsim/internal/comm"
	"github.com/san-kum/pairsim/internal/config"
	"github.com/san-kum/pairsim/internal/pair"
	"github.com/san-kum/pairsim/internal/restart"
	"github.com/spf13/cobra"
)

// saveRestart writes the coefficients of e to path on the root rank of c.
func saveRestart(e *pair.Engine, path string, c comm.Communicator) (int64, error) {
	f, err := restart.Create(path, c)
	if err != nil {
		return 0, err
	}
	var out io.Writer
	if f != nil {
		out = f
	}
	w := restart.NewWriter(out, c)
	if err := e.WriteRestart(w); err != nil {
		if f != nil {
			f.Close()
		}
		return 0, err
	}
	if f != nil {
		if err := f.Close(); err != nil {
			return 0, err
		}
	}
	return w.Len(), nil
}

// loadRestart creates an engine of the configured style and reads path into
// it. Every rank of c must call it.
func loadRestart(cfg *config.Config, path string, c comm.Communicator) (*pair.Engine, error) {
	e, err := cfg.NewEngine()
	if err != nil {
		return nil, err
	}

	f, err := restart.Open(path, c)
	if err != nil {
		// the other ranks see the failure as a short read
		f = nil
	}
	var src io.Reader
	if f != nil {
		src = f
		defer f.Close()
	}
	if rerr := e.ReadRestart(restart.NewReader(src, c)); rerr != nil {
		if err != nil {
			return nil, err
		}
		return nil, rerr
	}

	if cfg.GEwald > 0 {
		if err := e.SetEwald(cfg.GEwald); err != nil {
			return nil, err
		}
	}
	if err := e.Init(nil); err != nil {
		return nil, err
	}
	return e, nil
}

// fingerprint summarizes an initialized engine: its modify state, every
// cutoff and the energy of each type pair at a few distances.
func fingerprint(e *pair.Engine) ([]float64, error) {
	fp := []float64{e.CutForce()}
	if e.Offset() {
		fp = append(fp, 1)
	} else {
		fp = append(fp, 0)
	}
	fp = append(fp, float64(e.Mix()))

	for i := 1; i <= e.NTypes(); i++ {
		for j := i; j <= e.NTypes(); j++ {
			cut, err := e.Cutoff(i, j)
			if err != nil {
				return nil, err
			}
			fp = append(fp, cut)
			for _, frac := range []float64{0.4, 0.7, 0.95} {
				r := frac * cut
				eng, fforce, err := e.Single(nil, 0, 0, i, j, r*r, 1, 1)
				if err != nil {
					return nil, err
				}
				fp = append(fp, eng, fforce)
			}
		}
	}
	return fp, nil
}

func writeRestart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	e, err := initEngine(cfg)
	if err != nil {
		return err
	}
	n, err := saveRestart(e, args[0], nil)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s: %s, %d types, %d bytes before compression\n", args[0], e.Name(), e.NTypes(), n)
	return nil
}

func readRestart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	e, err := loadRestart(cfg, args[0], nil)
	if err != nil {
		return err
	}

	fmt.Printf("style: %s  types: %d  mix: %v  shift: %v  cutforce: %g\n",
		e.Name(), e.NTypes(), e.Mix(), e.Offset(), e.CutForce())
	for i := 1; i <= e.NTypes(); i++ {
		for j := i; j <= e.NTypes(); j++ {
			cut, err := e.Cutoff(i, j)
			if err != nil {
				return err
			}
			fmt.Printf("  %d %d  cutoff %g\n", i, j, cut)
		}
	}
	if eps14, ok := e.Extract("lj14_1"); ok {
		fmt.Println("1-4 tables:")
		for i := 1; i <= e.NTypes(); i++ {
			fmt.Printf("  lj14_1[%d] = %.6g\n", i, eps14[i][1:])
		}
	}
	return nil
}

func verifyRestart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	world := comm.NewWorld(ranks)
	fps := make([][]float64, len(world))
	errs := make([]error, len(world))

	var wg sync.WaitGroup
	for k, rank := range world {
		wg.Add(1)
		go func(k int, rank *comm.Rank) {
			defer wg.Done()
			e, err := loadRestart(cfg, args[0], rank)
			if err != nil {
				errs[k] = err
				return
			}
			fps[k], errs[k] = fingerprint(e)
		}(k, rank)
	}
	wg.Wait()

	for k, err := range errs {
		if err != nil {
			return fmt.Errorf("rank %d: %w", k, err)
		}
	}
	for k := 1; k < len(fps); k++ {
		if len(fps[k]) != len(fps[0]) {
			return fmt.Errorf("rank %d: fingerprint length %d, root has %d", k, len(fps[k]), len(fps[0]))
		}
		for n := range fps[k] {
			if fps[k][n] != fps[0][n] {
				return fmt.Errorf("rank %d: value %d is %g, root has %g", k, n, fps[k][n], fps[0][n])
			}
		}
	}
	fmt.Printf("%s: %d ranks agree on %d values\n", args[0], len(world), len(fps[0]))
	return nil
}
