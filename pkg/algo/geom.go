package algo

import (
	"math"

	"github.com/logomark/logomark/pkg/svg"
)

// Coordinate bounds for emitted geometry. The canonical viewBox is 100x100;
// a small overshoot is allowed for stroke overflow.
const (
	CoordMin = -10.0
	CoordMax = 110.0
)

// Canvas center and working radius shared by radial generators.
const (
	centerX = 50.0
	centerY = 50.0
)

// clampCoord pins a single coordinate to the documented [-10, 110] range.
func clampCoord(v float64) float64 {
	return math.Max(CoordMin, math.Min(CoordMax, v))
}

// pt builds a clamped point.
func pt(x, y float64) svg.Point {
	return svg.Point{X: clampCoord(x), Y: clampCoord(y)}
}

// polar converts a polar offset from (cx, cy) into a clamped point.
// Angles are in degrees, measured clockwise from the positive x axis
// (screen coordinates).
func polar(cx, cy, radius, deg float64) svg.Point {
	rad := deg * math.Pi / 180
	return pt(cx+radius*math.Cos(rad), cy+radius*math.Sin(rad))
}

// lerp interpolates between a and b by t in [0, 1].
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
