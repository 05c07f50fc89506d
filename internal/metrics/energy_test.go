package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/pairsim/internal/sim"
)

func TestEnergyMean(t *testing.T) {
	m := NewEnergy()

	m.Observe(sim.Thermo{ETotal: -10})
	m.Observe(sim.Thermo{ETotal: -12})

	if math.Abs(m.Value()+11) > 1e-12 {
		t.Errorf("expected mean energy -11, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero energy after reset")
	}
}

func TestEnergyDrift(t *testing.T) {
	m := NewEnergyDrift()

	for _, e := range []float64{-100, -100.5, -99, -100.2} {
		m.Observe(sim.Thermo{ETotal: e})
	}

	if math.Abs(m.Value()-0.01) > 1e-12 {
		t.Errorf("expected max drift 0.01, got %f", m.Value())
	}

	m.Reset()
	m.Observe(sim.Thermo{ETotal: 5})
	if m.Value() != 0 {
		t.Errorf("expected zero drift after reset, got %f", m.Value())
	}
}

func TestDriftRate(t *testing.T) {
	m := NewDriftRate()
	if m.Value() != 0 {
		t.Errorf("expected zero rate with no samples, got %f", m.Value())
	}

	for k := 0; k < 5; k++ {
		tm := 0.1 * float64(k)
		// a linear leak plus an alternating wobble that averages out
		wobble := 0.01 * math.Pow(-1, float64(k))
		if k == 4 {
			wobble = 0
		}
		m.Observe(sim.Thermo{Time: tm, ETotal: -10 + 0.5*tm + wobble})
	}
	if math.Abs(m.Value()-0.5) > 0.05 {
		t.Errorf("expected slope near 0.5, got %f", m.Value())
	}

	m.Reset()
	m.Observe(sim.Thermo{Time: 1, ETotal: 3})
	if m.Value() != 0 {
		t.Errorf("expected zero rate after reset, got %f", m.Value())
	}
}

type statMetric interface {
	sim.Metric
	StdDev() float64
}

func TestSeriesMetrics(t *testing.T) {
	samples := []sim.Thermo{
		{Temp: 1.0, Press: 0.2, PE: -3},
		{Temp: 1.2, Press: 0.4, PE: -5},
		{Temp: 1.4, Press: 0.6, PE: -4},
	}

	tests := []struct {
		name   string
		metric statMetric
		mean   float64
		sd     float64
	}{
		{"temperature", NewTemperature(), 1.2, 0.2},
		{"pressure", NewPressure(), 0.4, 0.2},
		{"pe", NewPotentialEnergy(), -4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric.Name() != tt.name {
				t.Errorf("expected name %q, got %q", tt.name, tt.metric.Name())
			}
			for _, th := range samples {
				tt.metric.Observe(th)
			}
			if math.Abs(tt.metric.Value()-tt.mean) > 1e-12 {
				t.Errorf("expected mean %f, got %f", tt.mean, tt.metric.Value())
			}
			if math.Abs(tt.metric.StdDev()-tt.sd) > 1e-12 {
				t.Errorf("expected sd %f, got %f", tt.sd, tt.metric.StdDev())
			}
			tt.metric.Reset()
			if tt.metric.Value() != 0 || tt.metric.StdDev() != 0 {
				t.Error("expected empty series after reset")
			}
		})
	}
}

func TestStability(t *testing.T) {
	m := NewStability(0.5)
	if m.Value() != 1.0 {
		t.Errorf("expected 1 with no samples, got %f", m.Value())
	}

	m.Observe(sim.Thermo{Temp: 1.0})
	m.Observe(sim.Thermo{Temp: 1.4})
	m.Observe(sim.Thermo{Temp: 1.6})
	m.Observe(sim.Thermo{Temp: 1.0, PE: math.NaN()})

	if math.Abs(m.Value()-0.5) > 1e-12 {
		t.Errorf("expected stability 0.5, got %f", m.Value())
	}
}

func TestDefaultsHaveUniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Defaults() {
		if seen[m.Name()] {
			t.Errorf("duplicate metric %q", m.Name())
		}
		seen[m.Name()] = true
	}
}
