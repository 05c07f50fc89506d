package sim

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/pairsim/internal/integrators"
	"github.com/san-kum/pairsim/internal/pair"
	"github.com/san-kum/pairsim/internal/system"
)

func argon(tb testing.TB, seed int64, opts ...pair.Option) *Simulator {
	tb.Helper()
	sys, err := system.NewLattice(system.LatticeConfig{
		Cells:       [3]int{5, 5, 5},
		Spacing:     1.1,
		NTypes:      1,
		Charges:     []float64{0},
		Jitter:      0.05,
		Temperature: 0.5,
		Seed:        seed,
	})
	if err != nil {
		tb.Fatalf("lattice: %v", err)
	}
	e, err := pair.New("lj/cut/coul/cut", 1, opts...)
	if err != nil {
		tb.Fatal(err)
	}
	for _, step := range []error{
		e.Settings([]string{"2.5"}),
		e.Coeff([]string{"1", "1", "1.0", "1.0"}),
		e.Modify([]string{"shift", "yes"}),
	} {
		if step != nil {
			tb.Fatal(step)
		}
	}
	field, err := NewPairField(e, sys)
	if err != nil {
		tb.Fatalf("pair field: %v", err)
	}
	return New(sys, field, integrators.NewVerlet())
}

func closeTo(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol*math.Max(1, math.Abs(b))
}

func TestSimulatorRun(t *testing.T) {
	s := argon(t, 7)
	cfg := Config{Steps: 100, Dt: 0.005, ThermoEvery: 10}

	result, err := s.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Thermo) != 11 {
		t.Errorf("expected 11 samples, got %d", len(result.Thermo))
	}
	if result.StepsTaken != 100 {
		t.Errorf("expected 100 steps, got %d", result.StepsTaken)
	}
	if last := result.Last(); last.Step != 100 || !closeTo(last.Time, 0.5, 1e-12) {
		t.Errorf("last sample at step %d, t=%f", last.Step, last.Time)
	}
	if s.Field().Builds() != 101 {
		t.Errorf("expected 101 neighbor builds, got %d", s.Field().Builds())
	}

	e0 := result.Thermo[0].ETotal
	e1 := result.Last().ETotal
	if math.Abs(e1-e0)/math.Abs(e0) > 1e-3 {
		t.Errorf("energy not conserved: %.6f -> %.6f", e0, e1)
	}
	if result.Thermo[0].PE >= 0 {
		t.Errorf("expected a bound lattice, PE = %f", result.Thermo[0].PE)
	}
	for _, th := range result.Thermo {
		if !th.IsValid() {
			t.Fatalf("non-finite sample at step %d", th.Step)
		}
	}
}

func TestSimulatorSampleConsistency(t *testing.T) {
	s := argon(t, 7)
	th, err := s.Prime()
	if err != nil {
		t.Fatal(err)
	}

	ke, _ := s.System().Kinetic()
	if !closeTo(th.KE, ke, 1e-12) || !closeTo(th.ETotal, th.KE+th.PE, 1e-12) {
		t.Errorf("inconsistent energies: %+v", th)
	}
	if !closeTo(th.PE, th.EVdwl+th.ECoul, 1e-12) {
		t.Errorf("PE %f != evdwl %f + ecoul %f", th.PE, th.EVdwl, th.ECoul)
	}
	if th.ECoul != 0 {
		t.Errorf("expected no coulomb energy from zero charges, got %g", th.ECoul)
	}
	if !closeTo(th.Temp, 0.5, 1e-9) {
		t.Errorf("expected initial temperature 0.5, got %f", th.Temp)
	}

	// Forces on a periodic system sum to zero once ghosts are folded.
	var net [3]float64
	sys := s.System()
	for i := 0; i < sys.NLocal; i++ {
		for d := 0; d < 3; d++ {
			net[d] += sys.F[3*i+d]
		}
	}
	for d, f := range net {
		if math.Abs(f) > 1e-9 {
			t.Errorf("net force[%d] = %g", d, f)
		}
	}
}

func runThermo(t *testing.T, s *Simulator, steps int) []Thermo {
	t.Helper()
	result, err := s.Run(context.Background(), Config{Steps: steps, Dt: 0.005, ThermoEvery: 5})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return result.Thermo
}

func TestSimulatorAgreesAcrossSettings(t *testing.T) {
	ref := runThermo(t, argon(t, 11), 20)

	tests := []struct {
		name string
		opts []pair.Option
	}{
		{"newton off", []pair.Option{pair.WithNewton(false)}},
		{"four threads", []pair.Option{pair.WithThreads(4)}},
		{"fdotr", []pair.Option{pair.WithFdotr(true)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runThermo(t, argon(t, 11, tt.opts...), 20)
			if len(got) != len(ref) {
				t.Fatalf("expected %d samples, got %d", len(ref), len(got))
			}
			for k := range ref {
				if !closeTo(got[k].PE, ref[k].PE, 1e-9) {
					t.Errorf("step %d: PE %.12f vs %.12f", ref[k].Step, got[k].PE, ref[k].PE)
				}
				if !closeTo(got[k].Press, ref[k].Press, 1e-9) {
					t.Errorf("step %d: press %.12f vs %.12f", ref[k].Step, got[k].Press, ref[k].Press)
				}
			}
		})
	}
}

func TestSimulatorInvalidConfig(t *testing.T) {
	s := argon(t, 1)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Steps: 10}},
		{"negative dt", Config{Dt: -0.1, Steps: 10}},
		{"negative steps", Config{Dt: 0.1, Steps: -1}},
		{"negative thermo", Config{Dt: 0.1, Steps: 10, ThermoEvery: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Run(context.Background(), tt.cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

type testMetric struct {
	count int
	sum   float64
}

func (m *testMetric) Name() string { return "test" }
func (m *testMetric) Observe(th Thermo) {
	m.count++
	m.sum += th.Temp
}
func (m *testMetric) Value() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sum / float64(m.count)
}
func (m *testMetric) Reset() {
	m.count = 0
	m.sum = 0
}

type testObserver struct{ steps []int }

func (o *testObserver) OnStep(th Thermo) { o.steps = append(o.steps, th.Step) }

func TestSimulatorMetrics(t *testing.T) {
	s := argon(t, 3)
	metric := &testMetric{}
	obs := &testObserver{}
	s.AddMetric(metric)
	s.AddObserver(obs)

	result, err := s.Run(context.Background(), Config{Steps: 10, Dt: 0.005, ThermoEvery: 1})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if _, ok := result.Metrics["test"]; !ok {
		t.Error("metric not found in result")
	}
	if metric.count != 11 {
		t.Errorf("expected 11 observations, got %d", metric.count)
	}
	if len(obs.steps) != 11 || obs.steps[10] != 10 {
		t.Errorf("unexpected observed steps %v", obs.steps)
	}
}

func TestSimulatorSparseThermo(t *testing.T) {
	s := argon(t, 3)
	result, err := s.Run(context.Background(), Config{Steps: 7, Dt: 0.005})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Thermo) != 2 || result.Thermo[1].Step != 7 {
		t.Errorf("expected samples at steps 0 and 7, got %d samples", len(result.Thermo))
	}
}

func TestSimulatorCanceled(t *testing.T) {
	s := argon(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := s.Run(ctx, Config{Steps: 50, Dt: 0.005, ThermoEvery: 1})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result.StepsTaken != 0 {
		t.Errorf("expected no steps after cancel, got %d", result.StepsTaken)
	}
}

func TestRunWithCallbackStops(t *testing.T) {
	s := argon(t, 5)
	seen := 0
	err := s.RunWithCallback(context.Background(), Config{Steps: 50, Dt: 0.005, ThermoEvery: 1}, func(th Thermo) bool {
		seen++
		return seen < 4
	})
	if err != nil {
		t.Fatal(err)
	}
	if seen != 4 || s.Step() != 3 {
		t.Errorf("expected to stop after 4 samples at step 3, got %d samples at step %d", seen, s.Step())
	}
}

func TestSimulatorDetectsInstability(t *testing.T) {
	s := argon(t, 5)
	sys := s.System()
	copy(sys.X[3:6], sys.X[0:3])

	_, err := s.Run(context.Background(), Config{Steps: 5, Dt: 0.005, ValidateState: true})
	if !errors.Is(err, ErrUnstable) {
		t.Fatalf("expected ErrUnstable, got %v", err)
	}
	var simErr *SimError
	if !errors.As(err, &simErr) || simErr.Step != 0 {
		t.Errorf("expected a SimError at step 0, got %v", err)
	}
}

func TestPairFieldRequiresCharges(t *testing.T) {
	sys, err := system.NewLattice(system.LatticeConfig{Cells: [3]int{5, 5, 5}, Spacing: 1.1, NTypes: 1})
	if err != nil {
		t.Fatal(err)
	}
	e, err := pair.New("lj/cut/coul/cut", 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Settings([]string{"2.5"}); err != nil {
		t.Fatal(err)
	}
	if err := e.Coeff([]string{"1", "1", "1.0", "1.0"}); err != nil {
		t.Fatal(err)
	}
	if _, err := NewPairField(e, sys); !errors.Is(err, pair.ErrConfig) {
		t.Errorf("expected ErrConfig for missing charges, got %v", err)
	}
}

func TestEnsemble(t *testing.T) {
	build := func(seed int64) (*Simulator, error) {
		return argon(t, seed), nil
	}
	results, err := NewEnsemble(build, 3, 100).Run(context.Background(), Config{Steps: 5, Dt: 0.005})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Thermo[0].PE == results[1].Thermo[0].PE {
		t.Error("replicas with different seeds produced identical energies")
	}
}
