package viz

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

const svgBackground = "#0a0a0a"

func svgHeader(w io.Writer, width, height float64) {
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, svgBackground)
}

// CanvasSVG writes every lit dot of c as a circle, scale pixels apart.
func CanvasSVG(w io.Writer, c *Canvas, scale float64) error {
	if c == nil {
		return fmt.Errorf("viz: nil canvas")
	}
	bw := bufio.NewWriter(w)
	pw, ph := c.PixelSize()
	svgHeader(bw, float64(pw)*scale, float64(ph)*scale)
	fmt.Fprintf(bw, "<g fill=%q>\n", "#00ff00")

	radius := scale * 0.4
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			pattern := int(c.Grid[row][col] - brailleBlank)
			if pattern <= 0 {
				continue
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					cx := float64(2*col+dx)*scale + scale/2
					cy := float64(4*row+dy)*scale + scale/2
					fmt.Fprintf(bw, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, radius)
				}
			}
		}
	}

	bw.WriteString("</g>\n</svg>\n")
	return bw.Flush()
}

// CurveSVG draws y against x as a polyline, with a dashed line at y = 0
// when zero is in range. Non-finite points are skipped.
func CurveSVG(w io.Writer, x, y []float64, width, height int, stroke string) error {
	if len(x) != len(y) {
		return fmt.Errorf("viz: %d x values for %d y values", len(x), len(y))
	}
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	n := 0
	for k := range x {
		if !finite(x[k]) || !finite(y[k]) {
			continue
		}
		minX, maxX = math.Min(minX, x[k]), math.Max(maxX, x[k])
		minY, maxY = math.Min(minY, y[k]), math.Max(maxY, y[k])
		n++
	}
	if n < 2 {
		return fmt.Errorf("viz: need at least 2 finite points, got %d", n)
	}

	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	rangeY *= 1.2

	px := func(v float64) float64 { return (v - minX) / rangeX * float64(width) }
	py := func(v float64) float64 { return float64(height) - (v-minY)/rangeY*float64(height) }

	bw := bufio.NewWriter(w)
	svgHeader(bw, float64(width), float64(height))
	if minY < 0 && minY+rangeY > 0 {
		fmt.Fprintf(bw, "<line x1=\"0\" y1=\"%.1f\" x2=\"%d\" y2=\"%.1f\" stroke=\"#555555\" stroke-dasharray=\"4 4\"/>\n",
			py(0), width, py(0))
	}
	fmt.Fprintf(bw, "<path fill=\"none\" stroke=%q stroke-width=\"1.5\" d=\"", stroke)
	cmd := "M"
	for k := range x {
		if !finite(x[k]) || !finite(y[k]) {
			continue
		}
		fmt.Fprintf(bw, "%s%.1f,%.1f ", cmd, px(x[k]), py(y[k]))
		cmd = "L"
	}
	bw.WriteString("\"/>\n</svg>\n")
	return bw.Flush()
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
