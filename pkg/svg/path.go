package svg

import "strings"

// Point is a coordinate in the 100x100 viewBox.
type Point struct {
	X, Y float64
}

// PathData accumulates SVG path commands. It exists so generators compose
// geometry from typed calls instead of hand-formatting "d" strings.
type PathData struct {
	parts []string
}

// MoveTo starts a new subpath at (x, y).
func (p *PathData) MoveTo(x, y float64) *PathData {
	return p.cmd("M", x, y)
}

// LineTo draws a straight segment to (x, y).
func (p *PathData) LineTo(x, y float64) *PathData {
	return p.cmd("L", x, y)
}

// QuadTo draws a quadratic Bezier through control (cx, cy) to (x, y).
func (p *PathData) QuadTo(cx, cy, x, y float64) *PathData {
	return p.cmd("Q", cx, cy, x, y)
}

// CubicTo draws a cubic Bezier with controls (c1x, c1y) and (c2x, c2y).
func (p *PathData) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathData {
	return p.cmd("C", c1x, c1y, c2x, c2y, x, y)
}

// ArcTo draws an elliptical arc to (x, y).
func (p *PathData) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, x, y float64) *PathData {
	p.parts = append(p.parts,
		"A", Num(rx), Num(ry), Num(rotation), flag(largeArc), flag(sweep), Num(x), Num(y))
	return p
}

// Close closes the current subpath.
func (p *PathData) Close() *PathData {
	p.parts = append(p.parts, "Z")
	return p
}

// String renders the accumulated path data.
func (p *PathData) String() string {
	return strings.Join(p.parts, " ")
}

func (p *PathData) cmd(op string, coords ...float64) *PathData {
	p.parts = append(p.parts, op)
	for _, c := range coords {
		p.parts = append(p.parts, Num(c))
	}
	return p
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
