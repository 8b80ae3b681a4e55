package algo

import (
	"github.com/logomark/logomark/pkg/seed"
	"github.com/logomark/logomark/pkg/svg"
)

// genInterlockingGeometry weaves two regular polygons. The second polygon is
// rotated by half a step and occluded along a seed-positioned band so the
// pair reads as linked rather than stacked.
func genInterlockingGeometry(in Input) string {
	p := in.Seed.Params
	b := svg.New()

	sides := p.GeometrySides
	r := 22 + p.InterlockDepth*0.8
	offset := p.OverlapAmount * 0.5
	step := 360.0 / float64(sides)

	poly := func(cx, cy, rot float64) []svg.Point {
		out := make([]svg.Point, sides)
		for i := 0; i < sides; i++ {
			out[i] = polar(cx, cy, r, rot+float64(i)*step)
		}
		return out
	}

	b.Mask("link", func(m *svg.Builder) {
		m.Rect(0, 0, 100, 100, svg.Attrs{"fill": "white"})
		band := 6 + p.InterlockDepth*0.5
		y := lerp(30, 70, p.CutoutPosition)
		m.Rect(0, clampCoord(y-band/2), 100, band, svg.Attrs{"fill": "black"})
	})

	first := poly(centerX-offset, centerY, p.Rotation)
	second := poly(centerX+offset, centerY, p.Rotation+step/2)

	b.Group(svg.Attrs{"mask": "url(#link)"}, func(b *svg.Builder) {
		b.Polygon(second, svg.Attrs{
			"stroke":          in.Accent(),
			"stroke-width":    svg.Num(p.StrokeWidth),
			"stroke-linejoin": string(p.StrokeJoin),
		})
	})
	b.Polygon(first, svg.Attrs{
		"stroke":          in.Primary(),
		"stroke-width":    svg.Num(p.StrokeWidth),
		"stroke-linejoin": string(p.StrokeJoin),
	})
	return b.Build()
}

// genCloverRadialV2 extends the fixed clover with gradient petals and
// per-petal length modulation drawn from the seed RNG.
func genCloverRadialV2(in Input) string {
	p := in.Seed.Params
	rng := in.Seed.RNG()
	b := svg.New()

	b.LinearGradient("petal", p.GradientAngle, []svg.Stop{
		{Offset: 0, Color: in.Primary()},
		{Offset: 1, Color: in.Accent()},
	})

	petals := p.PetalCount
	base := min(p.PetalLength, 36.0)
	half := lerp(14, 26, p.CurveTension)

	for i := 0; i < petals; i++ {
		angle := p.Rotation + float64(i)*360/float64(petals)
		length := base * (1 - p.ScaleVariance*rng.Float64())
		tip := polar(centerX, centerY, length, angle)
		side1 := polar(centerX, centerY, length*0.5, angle-half)
		side2 := polar(centerX, centerY, length*0.5, angle+half)

		d := new(svg.PathData).
			MoveTo(centerX, centerY).
			QuadTo(side1.X, side1.Y, tip.X, tip.Y).
			QuadTo(side2.X, side2.Y, centerX, centerY).
			Close().
			String()
		b.Path(d, svg.Attrs{
			"fill":    "url(#petal)",
			"opacity": svg.Num(lerp(p.SecondaryOpacity, 1, float64(i)/float64(petals))),
		})
	}

	inner := base * p.InnerRadiusRatio * 0.6
	b.Circle(centerX, centerY, inner, svg.Attrs{
		"fill": in.Accent(),
	})
	return b.Build()
}

// genSingleStroke walks one continuous curve through seed-driven waypoints.
// Bilateral symmetry mirrors the walk; radial symmetry closes it into a
// loop around the center.
func genSingleStroke(in Input) string {
	p := in.Seed.Params
	rng := in.Seed.RNG()
	b := svg.New()

	count := max(4, min(p.ElementCount, 9))
	points := make([]svg.Point, count)
	switch p.SymmetryType {
	case seed.SymmetryRadial:
		for i := range points {
			angle := float64(i) * 360 / float64(count)
			radius := 20 + rng.Float64()*p.WaveAmplitude*1.5
			points[i] = polar(centerX, centerY, radius, p.Rotation+angle)
		}
	case seed.SymmetryBilateral:
		half := (count + 1) / 2
		for i := 0; i < half; i++ {
			x := lerp(50, 20, float64(i)/float64(half-1))
			y := 30 + rng.Float64()*40
			points[i] = pt(x, y)
		}
		for i := half; i < count; i++ {
			m := points[count-1-i]
			points[i] = pt(100-m.X, m.Y)
		}
	default:
		for i := range points {
			x := lerp(18, 82, float64(i)/float64(count-1))
			y := 30 + rng.Float64()*40
			points[i] = pt(x, y)
		}
	}

	d := new(svg.PathData).MoveTo(points[0].X, points[0].Y)
	for i := 1; i < count; i++ {
		prev, cur := points[i-1], points[i]
		cx := lerp(prev.X, cur.X, p.CurveTension)
		cy := lerp(prev.Y, cur.Y, 1-p.CurveTension)
		d.QuadTo(clampCoord(cx), clampCoord(cy), cur.X, cur.Y)
	}
	if p.SymmetryType == seed.SymmetryRadial {
		d.Close()
	}
	b.Path(d.String(), svg.Attrs{
		"stroke":          in.Primary(),
		"stroke-width":    svg.Num(p.StrokeWidth * (1 - p.StrokeTaper*0.3)),
		"stroke-linecap":  "round",
		"stroke-linejoin": "round",
	})
	return b.Build()
}

// genGradientGlow sets a soft blurred echo behind a crisp central form.
// The form is a circle, ring, or polygon depending on ShapeComplexity.
func genGradientGlow(in Input) string {
	p := in.Seed.Params
	b := svg.New()

	b.BlurFilter("glow", 1+p.GlowRadius*0.6)
	if p.GradientType == seed.GradientRadial {
		b.RadialGradient("core", p.GradientSpread, []svg.Stop{
			{Offset: 0, Color: in.Accent()},
			{Offset: 1, Color: in.Primary()},
		})
	} else {
		b.LinearGradient("core", p.GradientAngle, []svg.Stop{
			{Offset: 0, Color: in.Primary()},
			{Offset: 1, Color: in.Accent()},
		})
	}

	r := 18 + p.NegativeSpaceSize*0.4
	glow := svg.Attrs{
		"fill":    in.Accent(),
		"filter":  "url(#glow)",
		"opacity": svg.Num(p.GlowOpacity),
	}
	core := svg.Attrs{"fill": "url(#core)"}

	switch {
	case p.ShapeComplexity <= 2:
		b.Circle(centerX, centerY, r*1.15, glow)
		b.Circle(centerX, centerY, r, core)
	case p.ShapeComplexity <= 4:
		// Ring: a masked disc reads as a ring without even-odd fill rules.
		b.Mask("ring", func(m *svg.Builder) {
			m.Rect(0, 0, 100, 100, svg.Attrs{"fill": "white"})
			m.Circle(centerX, centerY, r*p.InnerRadiusRatio, svg.Attrs{"fill": "black"})
		})
		b.Circle(centerX, centerY, r*1.15, glow)
		b.Circle(centerX, centerY, r, mergeAttrs(core, svg.Attrs{"mask": "url(#ring)"}))
	default:
		sides := p.GeometrySides
		step := 360.0 / float64(sides)
		shape := make([]svg.Point, sides)
		for i := 0; i < sides; i++ {
			shape[i] = polar(centerX, centerY, r, p.Rotation+float64(i)*step)
		}
		b.Polygon(shape, mergeAttrs(glow, nil))
		b.Polygon(shape, core)
	}
	return b.Build()
}
