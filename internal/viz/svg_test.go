package viz

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestCanvasSVG(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(0, 0)
	c.Set(5, 7)
	c.Set(5, 7)

	var buf bytes.Buffer
	if err := CanvasSVG(&buf, c, 2); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, "<circle"); n != 2 {
		t.Errorf("expected 2 dots, got %d", n)
	}
	if !strings.Contains(out, `width="12" height="16"`) {
		t.Errorf("unexpected size in header: %s", out[:120])
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("svg not closed")
	}
}

func TestCurveSVG(t *testing.T) {
	e := ljEngine(t)
	r, energy, _, err := Curve(e, 1, 1, nil, 0.95, 2.5, 30, 1, 1)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := CurveSVG(&buf, r, energy, 400, 200, "#ff8800"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, " L"); n != len(r)-1 {
		t.Errorf("expected %d segments, got %d", len(r)-1, n)
	}
	// the well dips below zero
	if !strings.Contains(out, "stroke-dasharray") {
		t.Error("expected a zero line")
	}
}

func TestCurveSVGSkipsNonFinite(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{math.Inf(1), 1, math.NaN(), 2}
	var buf bytes.Buffer
	if err := CurveSVG(&buf, x, y, 100, 100, "red"); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), " L"); n != 1 {
		t.Errorf("expected 1 segment, got %d", n)
	}

	if err := CurveSVG(&buf, x[:1], y[:1], 100, 100, "red"); err == nil {
		t.Error("expected error for a single point")
	}
	if err := CurveSVG(&buf, x, y[:2], 100, 100, "red"); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}
