package algo

import (
	"github.com/logomark/logomark/pkg/svg"
)

// genInterlockingLoops draws LoopCount open rings woven along the
// horizontal axis. Ring overlap follows OverlapAmount; alternating rings
// take the accent color.
func genInterlockingLoops(in Input) string {
	p := in.Seed.Params
	b := svg.New()

	count := p.LoopCount
	r := min(p.LoopRadius, 22.0)
	overlap := min(p.OverlapAmount*0.6, r)
	pitch := 2*r - overlap
	start := centerX - pitch*float64(count-1)/2

	for i := 0; i < count; i++ {
		cx := start + float64(i)*pitch
		stroke := in.Primary()
		if i%2 == 1 {
			stroke = in.Accent()
		}
		b.Circle(clampCoord(cx), centerY, r, svg.Attrs{
			"stroke":       stroke,
			"stroke-width": svg.Num(p.StrokeWidth),
			"opacity":      svg.Num(lerp(1, p.SecondaryOpacity, float64(i%2))),
		})
	}
	return b.Build()
}

// genMonogramMerge overlays the brand's first two initials as anatomy
// skeletons, the second offset by MergeOffset and drawn in the accent color.
func genMonogramMerge(in Input) string {
	p := in.Seed.Params
	b := svg.New()

	r1, r2 := initials(in.BrandName)
	a1 := anatomyFor(r1)
	a2 := anatomyFor(r2)
	off := p.MergeOffset * 0.7

	drawSkeleton(b, a1, svg.Attrs{
		"stroke":          in.Primary(),
		"stroke-width":    svg.Num(p.StrokeWidth),
		"stroke-linecap":  string(p.StrokeCap),
		"stroke-linejoin": string(p.StrokeJoin),
	}, 0, 0)
	drawSkeleton(b, a2, svg.Attrs{
		"stroke":          in.Accent(),
		"stroke-width":    svg.Num(p.StrokeWidth * (1 - p.StrokeTaper*0.4)),
		"stroke-linecap":  string(p.StrokeCap),
		"stroke-linejoin": string(p.StrokeJoin),
		"opacity":         svg.Num(p.SecondaryOpacity),
	}, off, p.OffsetY*0.4)
	return b.Build()
}

// drawSkeleton emits a letter anatomy as stem + crossbar + bowl strokes,
// shifted by (dx, dy).
func drawSkeleton(b *svg.Builder, a Anatomy, attrs svg.Attrs, dx, dy float64) {
	b.Line(clampCoord(a.Stem[0].X+dx), clampCoord(a.Stem[0].Y+dy),
		clampCoord(a.Stem[1].X+dx), clampCoord(a.Stem[1].Y+dy), attrs)
	b.Line(clampCoord(a.Crossbar[0].X+dx), clampCoord(a.Crossbar[0].Y+dy),
		clampCoord(a.Crossbar[1].X+dx), clampCoord(a.Crossbar[1].Y+dy), attrs)
	bowl := new(svg.PathData).
		MoveTo(clampCoord(a.Bowl[0].X+dx), clampCoord(a.Bowl[0].Y+dy)).
		QuadTo(clampCoord(a.Bowl[1].X+dx), clampCoord(a.Bowl[1].Y+dy),
			clampCoord(a.Bowl[2].X+dx), clampCoord(a.Bowl[2].Y+dy)).
		String()
	b.Path(bowl, attrs)
}

// genContinuousStroke traces one unbroken curve through points placed by
// the brand's rune values, a signature-like single line.
func genContinuousStroke(in Input) string {
	p := in.Seed.Params
	rng := in.Seed.RNG()
	b := svg.New()

	count := max(4, min(p.ElementCount, 8))
	step := 64.0 / float64(count-1)

	runes := []rune(in.BrandName)
	points := make([]svg.Point, count)
	for i := range points {
		var code int
		if i < len(runes) {
			code = int(runes[i])
		} else {
			code = int(rng.Float64() * 96)
		}
		y := 34 + float64(code%5)*8 + (rng.Float64()-0.5)*p.WaveAmplitude
		points[i] = pt(18+float64(i)*step, y)
	}

	d := new(svg.PathData).MoveTo(points[0].X, points[0].Y)
	for i := 1; i < count; i++ {
		prev := points[i-1]
		cur := points[i]
		cx := lerp(prev.X, cur.X, p.CurveTension)
		d.QuadTo(clampCoord(cx), prev.Y, cur.X, cur.Y)
	}
	b.Path(d.String(), svg.Attrs{
		"stroke":         in.Primary(),
		"stroke-width":   svg.Num(p.StrokeWidth),
		"stroke-linecap": "round",
	})
	b.Circle(points[count-1].X, points[count-1].Y, p.StrokeWidth*0.9, svg.Attrs{
		"fill": in.Accent(),
	})
	return b.Build()
}

// genCloverRadial repeats a petal around the canvas center. Petal count and
// length are parameter driven; a radial symmetry transform keeps the mark
// balanced for any count.
func genCloverRadial(in Input) string {
	p := in.Seed.Params
	b := svg.New()

	petals := p.PetalCount
	length := min(p.PetalLength, 38.0)
	width := length * lerp(0.35, 0.6, p.CurveTension)

	for i := 0; i < petals; i++ {
		angle := p.Rotation + float64(i)*360/float64(petals)
		tip := polar(centerX, centerY, length, angle)
		side1 := polar(centerX, centerY, length*0.55, angle-width)
		side2 := polar(centerX, centerY, length*0.55, angle+width)

		fill := in.Primary()
		if i%2 == 1 && p.AccentMix > 0.5 {
			fill = in.Accent()
		}
		d := new(svg.PathData).
			MoveTo(centerX, centerY).
			QuadTo(side1.X, side1.Y, tip.X, tip.Y).
			QuadTo(side2.X, side2.Y, centerX, centerY).
			Close().
			String()
		b.Path(d, svg.Attrs{
			"fill":    fill,
			"opacity": svg.Num(p.FillOpacity),
		})
	}
	b.Circle(centerX, centerY, 3+p.InnerRadiusRatio*5, svg.Attrs{
		"fill": in.Accent(),
	})
	return b.Build()
}
