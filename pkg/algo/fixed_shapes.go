package algo

import (
	"github.com/logomark/logomark/pkg/seed"
	"github.com/logomark/logomark/pkg/svg"
)

// genBlockAssembly composes a compact grid of rounded blocks with one
// displaced accent block. Grid density follows ShapeComplexity; the split
// point of uneven rows follows BlockRatio.
func genBlockAssembly(in Input) string {
	p := in.Seed.Params
	rng := in.Seed.RNG()
	b := svg.New()

	side := max(2, min(p.ShapeComplexity, 4)) // grid side, 2..4
	cell := 44.0 / float64(side)
	gap := 2 + p.BarGap*0.4
	origin := 50 - (cell*float64(side)+gap*float64(side-1))/2

	accentIdx := int(rngIndex(rng, side*side))
	idx := 0
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			x := origin + float64(col)*(cell+gap)
			y := origin + float64(row)*(cell+gap)
			w := cell
			if col == side-1 {
				w = cell * (0.6 + p.BlockRatio*0.8)
			}

			fill := in.Primary()
			attrs := svg.Attrs{"rx": svg.Num(p.CornerRadius * 0.3)}
			if idx == accentIdx {
				fill = in.Accent()
				y = clampCoord(y + p.OffsetY*0.5)
			}
			attrs["fill"] = fill
			b.Rect(clampCoord(x), clampCoord(y), w, cell, attrs)
			idx++
		}
	}
	return b.Build()
}

// genNegativeSpace carves the brand's initial out of a solid medallion with
// a mask. The cutout is built from the letter's stem and bowl strokes so it
// reads as the letter without embedding a font.
func genNegativeSpace(in Input) string {
	p := in.Seed.Params
	b := svg.New()

	a := anatomyFor(firstRune(in.BrandName))
	cutW := 4 + p.NegativeSpaceSize*0.25

	b.Mask("cutout", func(m *svg.Builder) {
		m.Rect(0, 0, 100, 100, svg.Attrs{"fill": "white"})
		m.Line(a.Stem[0].X, a.Stem[0].Y, a.Stem[1].X, a.Stem[1].Y, svg.Attrs{
			"stroke":         "black",
			"stroke-width":   svg.Num(cutW),
			"stroke-linecap": string(p.StrokeCap),
		})
		bowl := new(svg.PathData).
			MoveTo(a.Bowl[0].X, a.Bowl[0].Y).
			QuadTo(a.Bowl[1].X, a.Bowl[1].Y, a.Bowl[2].X, a.Bowl[2].Y).
			String()
		m.Path(bowl, svg.Attrs{
			"stroke":         "black",
			"stroke-width":   svg.Num(cutW),
			"stroke-linecap": string(p.StrokeCap),
		})
	})

	medallion := svg.Attrs{"fill": in.Primary(), "mask": "url(#cutout)"}
	if p.SymmetryType == seed.SymmetryRadial {
		b.Circle(centerX, centerY, 34, medallion)
	} else {
		b.Rect(18, 18, 64, 64, mergeAttrs(medallion, svg.Attrs{
			"rx": svg.Num(p.CornerRadius),
		}))
	}
	return b.Build()
}

// genGeometricExtract reduces the initial's anatomy to primitive shapes: a
// disc at the apex, a bar along the stem, and the bowl as an open curve.
// The result abstracts the letter rather than drawing it.
func genGeometricExtract(in Input) string {
	p := in.Seed.Params
	b := svg.New()

	a := anatomyFor(firstRune(in.BrandName))
	barW := 3 + p.StrokeWidth*0.8

	b.GroupTransform(rotation(p.TiltAngle), func(b *svg.Builder) {
		b.Line(a.Stem[0].X, a.Stem[0].Y, a.Stem[1].X, a.Stem[1].Y, svg.Attrs{
			"stroke":         in.Primary(),
			"stroke-width":   svg.Num(barW),
			"stroke-linecap": string(p.StrokeCap),
		})
		bowl := new(svg.PathData).
			MoveTo(a.Bowl[0].X, a.Bowl[0].Y).
			QuadTo(a.Bowl[1].X, a.Bowl[1].Y, a.Bowl[2].X, a.Bowl[2].Y).
			String()
		b.Path(bowl, svg.Attrs{
			"stroke":         in.Primary(),
			"stroke-width":   svg.Num(barW * (1 - p.StrokeTaper*0.5)),
			"stroke-linecap": string(p.StrokeCap),
			"opacity":        svg.Num(p.SecondaryOpacity),
		})
		b.Circle(a.Apex.X, a.Apex.Y, 3+p.StrokeWidth*0.5, svg.Attrs{
			"fill": in.Accent(),
		})
		b.Circle(a.Terminal.X, a.Terminal.Y, 2+p.StrokeWidth*0.3, svg.Attrs{
			"fill":    in.Accent(),
			"opacity": svg.Num(p.FillOpacity),
		})
	})
	return b.Build()
}

func mergeAttrs(base, extra svg.Attrs) svg.Attrs {
	out := svg.Attrs{}
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// rngIndex draws a uniform index in [0, n) from the seed RNG.
func rngIndex(rng interface{ Float64() float64 }, n int) int {
	return int(rng.Float64() * float64(n))
}
