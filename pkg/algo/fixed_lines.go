package algo

import (
	"github.com/logomark/logomark/pkg/svg"
)

// genLineFragmentation slices a stack of horizontal strokes into offset
// fragments. Gap positions come from PRNG draws, so the fragmentation
// pattern is unique per brand while the stroke stack itself is parameter
// driven.
func genLineFragmentation(in Input) string {
	p := in.Seed.Params
	rng := in.Seed.RNG()
	b := svg.New()

	count := p.FragmentCount
	top := 30.0
	bottom := 70.0
	step := (bottom - top) / float64(count-1)

	b.GroupTransform(rotation(p.Rotation/8), func(b *svg.Builder) {
		for i := 0; i < count; i++ {
			y := top + float64(i)*step
			gap := 20 + rng.Float64()*40          // gap center in [20, 60]
			width := 6 + rng.Float64()*p.BarGap*2 // gap width
			jitter := (rng.Float64() - 0.5) * p.FragmentJitter

			stroke := in.Primary()
			if i%3 == 2 {
				stroke = in.Accent()
			}
			attrs := svg.Attrs{
				"stroke":          stroke,
				"stroke-width":    svg.Num(p.StrokeWidth * 0.6),
				"stroke-linecap":  string(p.StrokeCap),
			}
			left := pt(18+jitter, y)
			gapL := pt(gap-width/2, y)
			gapR := pt(gap+width/2, y)
			right := pt(82+jitter, y)
			if gapL.X > left.X {
				b.Line(left.X, left.Y, gapL.X, gapL.Y, attrs)
			}
			if right.X > gapR.X {
				b.Line(gapR.X, gapR.Y, right.X, right.Y, attrs)
			}
		}
	})
	return b.Build()
}

// genStaggeredBars renders vertical bars with stepped heights taken from the
// brand's rune values, a skyline read of the name itself.
func genStaggeredBars(in Input) string {
	p := in.Seed.Params
	b := svg.New()

	count := p.BarCount
	gap := p.BarGap
	totalGap := gap * float64(count-1)
	barW := (64 - totalGap) / float64(count)
	baseline := 78.0

	runes := []rune(in.BrandName)
	for i := 0; i < count; i++ {
		// Height follows the i-th rune of the brand; missing runes reuse
		// the seed hash so short names still fill every bar.
		var code int
		if i < len(runes) {
			code = int(runes[i])
		} else {
			code = int(in.Seed.HashHex[i%len(in.Seed.HashHex)])
		}
		h := 18 + float64(code%5)*9 + p.ScaleVariance*10
		x := 18 + float64(i)*(barW+gap)

		fill := in.Primary()
		if i == count-1 {
			fill = in.Accent()
		}
		b.Rect(x, baseline-h, barW, h, svg.Attrs{
			"fill": fill,
			"rx":   svg.Num(min(p.CornerRadius*0.4, barW/2)),
		})
	}
	return b.Build()
}

// genMotionChevrons layers chevrons with decaying opacity to imply forward
// motion. Chevron pitch comes from ChevronAngle; the trail length from
// ElementCount.
func genMotionChevrons(in Input) string {
	p := in.Seed.Params
	b := svg.New()

	count := max(3, min(p.ElementCount/2, 5))
	spread := p.ChevronAngle // degrees of chevron opening
	depth := 18 + p.InterlockDepth
	spacing := 10 * p.SpacingRatio

	for i := 0; i < count; i++ {
		x := 30 + float64(i)*spacing
		opacity := 1 - float64(i)*(0.8/float64(count))
		stroke := in.Primary()
		if i == count-1 {
			stroke = in.Accent()
		}

		topEnd := polar(x, centerY, depth, -spread)
		bottomEnd := polar(x, centerY, depth, spread)
		d := new(svg.PathData).
			MoveTo(topEnd.X, topEnd.Y).
			LineTo(clampCoord(x+depth*0.35), centerY).
			LineTo(bottomEnd.X, bottomEnd.Y).
			String()
		b.Path(d, svg.Attrs{
			"stroke":          stroke,
			"stroke-width":    svg.Num(p.StrokeWidth),
			"stroke-linecap":  string(p.StrokeCap),
			"stroke-linejoin": string(p.StrokeJoin),
			"opacity":         svg.Num(opacity),
		})
	}
	return b.Build()
}

// rotation formats a transform rotating about the canvas center.
func rotation(deg float64) string {
	return "rotate(" + svg.Num(deg) + " 50 50)"
}
