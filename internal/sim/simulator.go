package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/pairsim/internal/integrators"
	"github.com/san-kum/pairsim/internal/system"
)

type Simulator struct {
	sys        *system.System
	field      *PairField
	integrator integrators.Integrator
	metrics    []Metric
	observers  []Observer

	step   int
	time   float64
	primed bool
}

func New(sys *system.System, field *PairField, integrator integrators.Integrator) *Simulator {
	return &Simulator{
		sys:        sys,
		field:      field,
		integrator: integrator,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) System() *system.System { return s.sys }
func (s *Simulator) Field() *PairField      { return s.field }
func (s *Simulator) Step() int              { return s.step }

// Prime computes the forces, energies and virial at the current
// positions and returns the resulting sample.
func (s *Simulator) Prime() (Thermo, error) {
	if err := s.field.Forces(s.sys, true, true); err != nil {
		return Thermo{}, err
	}
	s.primed = true
	return s.sample(), nil
}

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Thermo:  make([]Thermo, 0, cfg.Steps/max(cfg.ThermoEvery, 1)+2),
		Metrics: make(map[string]float64),
	}
	for _, m := range s.metrics {
		m.Reset()
	}

	err := s.loop(ctx, cfg, func(th Thermo) bool {
		result.Thermo = append(result.Thermo, th)
		for _, m := range s.metrics {
			m.Observe(th)
		}
		for _, obs := range s.observers {
			obs.OnStep(th)
		}
		return true
	}, &result.StepsTaken)

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, err
}

// RunWithCallback steps like Run but hands each sample to callback instead
// of recording it. Returning false from callback stops the run.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, callback func(Thermo) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}
	var taken int
	return s.loop(ctx, cfg, callback, &taken)
}

func (s *Simulator) loop(ctx context.Context, cfg Config, emit func(Thermo) bool, taken *int) error {
	if !s.primed {
		if _, err := s.Prime(); err != nil {
			return &SimError{Step: s.step, Time: s.time, Wrapped: err}
		}
	}
	if ok, err := s.emit(cfg, emit); !ok {
		return err
	}

	first := s.step
	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		last := i == cfg.Steps-1
		tally := last || (cfg.ThermoEvery > 0 && (s.step+1-first)%cfg.ThermoEvery == 0)
		if err := s.integrator.Step(s.sys, s.field, cfg.Dt, tally, tally); err != nil {
			return &SimError{Step: s.step, Time: s.time, Wrapped: err}
		}
		s.step++
		s.time += cfg.Dt
		*taken++

		if !tally {
			continue
		}
		if ok, err := s.emit(cfg, emit); !ok {
			return err
		}
	}
	return nil
}

func (s *Simulator) emit(cfg Config, fn func(Thermo) bool) (bool, error) {
	th := s.sample()
	if cfg.ValidateState && !th.IsValid() {
		return false, &SimError{Step: s.step, Time: s.time, Wrapped: ErrUnstable}
	}
	return fn(th), nil
}

// sample builds a thermo record from the latest tally. The pressure is
// (2 KE + tr W) / 3V.
func (s *Simulator) sample() Thermo {
	tally := s.field.Tally()
	ke, _ := s.sys.Kinetic()
	w := tally.Virial
	th := Thermo{
		Step:   s.step,
		Time:   s.time,
		Temp:   s.sys.Temperature(),
		KE:     ke,
		EVdwl:  tally.EVdwl,
		ECoul:  tally.ECoul,
		PE:     tally.Energy(),
		Virial: w,
	}
	th.ETotal = th.KE + th.PE
	th.Press = (2*ke + w[0] + w[1] + w[2]) / (3 * s.sys.Volume())
	return th
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Steps < 0 {
		return fmt.Errorf("%w: steps must be non-negative, got %d", ErrInvalidConfig, cfg.Steps)
	}
	if cfg.ThermoEvery < 0 {
		return fmt.Errorf("%w: thermo interval must be non-negative, got %d", ErrInvalidConfig, cfg.ThermoEvery)
	}
	return nil
}
