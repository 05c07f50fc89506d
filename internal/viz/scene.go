package viz

import (
	"math"
	"sort"

	"github.com/san-kum/pairsim/internal/system"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Camera looks down -z at the origin with a simple perspective divide.
type Camera struct {
	Distance   float64
	RotX, RotY float64
	Zoom       float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 4, RotX: 0.4, RotY: 0.6, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

func (c *Camera) rotate(p Vec3) Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	return p
}

// Project maps a point of the unit cube centered on the origin to canvas
// dots, returning the depth and whether the dot is on screen.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.rotate(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-0.1 {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot.Z)
	unit := float64(min(sw, sh)) / 1.8
	sx := int(rot.X*scale*unit) + sw/2
	sy := int(-rot.Y*scale*unit) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

var cubeCorners = [8][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}

var cubeEdges = [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}}

type dot struct {
	x, y  int
	depth float64
	size  int
}

// DrawSystem renders the periodic box and its local atoms, far atoms
// first. Types above 1 are drawn larger.
func DrawSystem(c *Canvas, cam *Camera, s *system.System) {
	sw, sh := c.PixelSize()
	l := math.Max(s.Box[0], math.Max(s.Box[1], s.Box[2]))
	norm := func(x, y, z float64) Vec3 {
		return Vec3{x/l - s.Box[0]/(2*l), y/l - s.Box[1]/(2*l), z/l - s.Box[2]/(2*l)}
	}

	var corners [8]Vec3
	for k, f := range cubeCorners {
		corners[k] = norm(f[0]*s.Box[0], f[1]*s.Box[1], f[2]*s.Box[2])
	}
	for _, e := range cubeEdges {
		x1, y1, _, v1 := cam.Project(corners[e[0]], sw, sh)
		x2, y2, _, v2 := cam.Project(corners[e[1]], sw, sh)
		if v1 || v2 {
			c.DrawLine(x1, y1, x2, y2)
		}
	}

	dots := make([]dot, 0, s.NLocal)
	for i := 0; i < s.NLocal; i++ {
		p := norm(s.X[3*i], s.X[3*i+1], s.X[3*i+2])
		x, y, d, ok := cam.Project(p, sw, sh)
		if !ok {
			continue
		}
		size := 0
		if s.Type[i] > 1 {
			size = 1
		}
		dots = append(dots, dot{x, y, d, size})
	}
	sort.Slice(dots, func(i, j int) bool { return dots[i].depth < dots[j].depth })
	for _, d := range dots {
		c.Blob(d.x, d.y, d.size)
	}
}
