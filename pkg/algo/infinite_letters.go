package algo

import (
	"github.com/logomark/logomark/pkg/seed"
	"github.com/logomark/logomark/pkg/svg"
)

// genLetterFusion interpolates between the skeletons of the brand's first
// two initials. FusionBlend picks the mix point, so neighboring seeds slide
// smoothly between the two letterforms.
func genLetterFusion(in Input) string {
	p := in.Seed.Params
	b := svg.New()

	r1, r2 := initials(in.BrandName)
	a1 := anatomyFor(r1)
	a2 := anatomyFor(r2)
	t := p.FusionBlend

	fused := Anatomy{
		Stem:     [2]svg.Point{mix(a1.Stem[0], a2.Stem[0], t), mix(a1.Stem[1], a2.Stem[1], t)},
		Crossbar: [2]svg.Point{mix(a1.Crossbar[0], a2.Crossbar[0], t), mix(a1.Crossbar[1], a2.Crossbar[1], t)},
		Bowl: [3]svg.Point{
			mix(a1.Bowl[0], a2.Bowl[0], t),
			mix(a1.Bowl[1], a2.Bowl[1], t),
			mix(a1.Bowl[2], a2.Bowl[2], t),
		},
		Apex:     mix(a1.Apex, a2.Apex, t),
		Terminal: mix(a1.Terminal, a2.Terminal, t),
	}

	b.GroupTransform(rotation(p.TiltAngle*0.5), func(b *svg.Builder) {
		drawSkeleton(b, fused, svg.Attrs{
			"stroke":          in.Primary(),
			"stroke-width":    svg.Num(weightWidth(p)),
			"stroke-linecap":  string(p.StrokeCap),
			"stroke-linejoin": string(p.StrokeJoin),
		}, 0, 0)
		b.Circle(fused.Apex.X, fused.Apex.Y, 2.4+p.StrokeWidth*0.3, svg.Attrs{
			"fill": in.Accent(),
		})
	})
	return b.Build()
}

// genNegativeSpaceLetter cuts a single anatomical part out of a gradient
// medallion. Which part is cut, and where along it, are both seed driven.
func genNegativeSpaceLetter(in Input) string {
	p := in.Seed.Params
	b := svg.New()

	a := anatomyFor(firstRune(in.BrandName))
	seg := a.segment(p.LetterPart)
	cutW := 5 + p.NegativeSpaceSize*0.3

	b.LinearGradient("fill", p.GradientAngle, []svg.Stop{
		{Offset: 0, Color: in.Primary()},
		{Offset: 1, Color: in.Accent()},
	})
	b.Mask("part", func(m *svg.Builder) {
		m.Rect(0, 0, 100, 100, svg.Attrs{"fill": "white"})
		cut := svg.Attrs{
			"stroke":         "black",
			"stroke-width":   svg.Num(cutW),
			"stroke-linecap": string(p.StrokeCap),
		}
		switch len(seg) {
		case 3:
			d := new(svg.PathData).
				MoveTo(seg[0].X, seg[0].Y).
				QuadTo(seg[1].X, seg[1].Y, seg[2].X, seg[2].Y).
				String()
			m.Path(d, cut)
		case 2:
			m.Line(seg[0].X, seg[0].Y, seg[1].X, seg[1].Y, cut)
		default:
			// Point parts become a circular cutout slid along the stem by
			// CutoutPosition.
			y := lerp(a.Stem[0].Y, a.Stem[1].Y, p.CutoutPosition)
			m.Circle(seg[0].X, y, cutW*0.8, svg.Attrs{"fill": "black"})
		}
	})
	b.Circle(centerX, centerY, 34, svg.Attrs{
		"fill": "url(#fill)",
		"mask": "url(#part)",
	})
	return b.Build()
}

// genMonogramMergeV2 reworks the fixed monogram with seed-driven rotation,
// gradient strokes, and an interlock: the second initial passes behind the
// first where they overlap.
func genMonogramMergeV2(in Input) string {
	p := in.Seed.Params
	b := svg.New()

	r1, r2 := initials(in.BrandName)
	a1 := anatomyFor(r1)
	a2 := anatomyFor(r2)
	off := p.MergeOffset

	b.LinearGradient("stroke1", p.GradientAngle, []svg.Stop{
		{Offset: 0, Color: in.Primary()},
		{Offset: 1, Color: in.Accent()},
	})
	// The occlusion band hides the second skeleton inside the interlock
	// region, faking an over-under weave without boolean geometry.
	b.Mask("weave", func(m *svg.Builder) {
		m.Rect(0, 0, 100, 100, svg.Attrs{"fill": "white"})
		m.Rect(clampCoord(centerX-p.InterlockDepth/2+off/2), 20,
			p.InterlockDepth, 60, svg.Attrs{"fill": "black"})
	})

	b.GroupTransform(rotation(p.Rotation/6), func(b *svg.Builder) {
		b.Group(svg.Attrs{"mask": "url(#weave)"}, func(b *svg.Builder) {
			drawSkeleton(b, a2, svg.Attrs{
				"stroke":          in.Accent(),
				"stroke-width":    svg.Num(weightWidth(p) * 0.9),
				"stroke-linecap":  string(p.StrokeCap),
				"stroke-linejoin": string(p.StrokeJoin),
			}, off, p.OffsetY*0.5)
		})
		drawSkeleton(b, a1, svg.Attrs{
			"stroke":          "url(#stroke1)",
			"stroke-width":    svg.Num(weightWidth(p)),
			"stroke-linecap":  string(p.StrokeCap),
			"stroke-linejoin": string(p.StrokeJoin),
		}, 0, 0)
	})
	return b.Build()
}

// genLetterExtract isolates one anatomical part of the initial and scales it
// into the whole mark, with an echo stroke behind it.
func genLetterExtract(in Input) string {
	p := in.Seed.Params
	b := svg.New()

	parts := []seed.LetterPart{
		seed.PartApex, seed.PartBowl, seed.PartCrossbar, seed.PartStem, seed.PartTerminal,
	}
	part := parts[p.ExtractIndex%len(parts)]
	a := anatomyFor(firstRune(in.BrandName))
	seg := a.segment(part)

	scale := 1.4 + p.ScaleVariance
	grow := func(q svg.Point) svg.Point {
		return pt(centerX+(q.X-centerX)*scale, centerY+(q.Y-centerY)*scale)
	}

	stroke := svg.Attrs{
		"stroke":         in.Primary(),
		"stroke-width":   svg.Num(weightWidth(p) * 1.3),
		"stroke-linecap": string(p.StrokeCap),
	}
	echo := svg.Attrs{
		"stroke":         in.Accent(),
		"stroke-width":   svg.Num(weightWidth(p) * 2.2),
		"stroke-linecap": string(p.StrokeCap),
		"opacity":        svg.Num(p.GlowOpacity * 0.6),
	}

	switch len(seg) {
	case 3:
		p0, p1, p2 := grow(seg[0]), grow(seg[1]), grow(seg[2])
		d := new(svg.PathData).MoveTo(p0.X, p0.Y).QuadTo(p1.X, p1.Y, p2.X, p2.Y).String()
		b.Path(d, echo)
		b.Path(d, stroke)
	case 2:
		p0, p1 := grow(seg[0]), grow(seg[1])
		b.Line(p0.X, p0.Y, p1.X, p1.Y, echo)
		b.Line(p0.X, p0.Y, p1.X, p1.Y, stroke)
	default:
		c := grow(seg[0])
		b.Circle(c.X, c.Y, 10+p.StrokeWidth, svg.Attrs{
			"stroke":       in.Primary(),
			"stroke-width": svg.Num(weightWidth(p)),
		})
		b.Circle(c.X, c.Y, 3+p.StrokeWidth*0.4, svg.Attrs{"fill": in.Accent()})
	}
	return b.Build()
}

// mix interpolates two points, clamped.
func mix(a, b svg.Point, t float64) svg.Point {
	return pt(lerp(a.X, b.X, t), lerp(a.Y, b.Y, t))
}

// weightWidth converts the LetterWeight enum plus StrokeWidth into an
// effective stroke width.
func weightWidth(p seed.Parameters) float64 {
	switch p.LetterWeight {
	case seed.WeightLight:
		return p.StrokeWidth * 0.7
	case seed.WeightBold:
		return p.StrokeWidth * 1.3
	case seed.WeightHeavy:
		return p.StrokeWidth * 1.6
	default:
		return p.StrokeWidth
	}
}
