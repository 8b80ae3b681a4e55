package seed

import (
	"math"
	"strconv"
)

// fieldSpec describes how one parameter is carved out of the entropy pool:
// the number of hex characters it consumes and the mapping from the parsed
// value into its documented domain. The specs table is the single source of
// truth for parameter derivation; deriveParams walks it once, handing each
// spec its disjoint slice in declaration order.
type fieldSpec struct {
	name  string
	width int
	apply func(p *Parameters, v uint64, width int)
}

// floatField maps the slice value uniformly into [lo, hi].
func floatField(name string, set func(*Parameters, float64), lo, hi float64) fieldSpec {
	return fieldSpec{name: name, width: 2, apply: func(p *Parameters, v uint64, width int) {
		set(p, lo+frac(v, width)*(hi-lo))
	}}
}

// angleField maps a wider slice into [0, deg) for finer angular resolution.
func angleField(name string, set func(*Parameters, float64), deg float64) fieldSpec {
	return fieldSpec{name: name, width: 3, apply: func(p *Parameters, v uint64, width int) {
		set(p, frac(v, width)*deg)
	}}
}

// intField maps the slice value into the inclusive range [lo, hi].
func intField(name string, set func(*Parameters, int), lo, hi int) fieldSpec {
	return fieldSpec{name: name, width: 2, apply: func(p *Parameters, v uint64, width int) {
		set(p, lo+int(v%uint64(hi-lo+1)))
	}}
}

// enumField picks one of the given choices by modulo.
func enumField[T ~string](name string, set func(*Parameters, T), choices ...T) fieldSpec {
	return fieldSpec{name: name, width: 2, apply: func(p *Parameters, v uint64, width int) {
		set(p, choices[v%uint64(len(choices))])
	}}
}

// frac converts a parsed slice value into [0, 1).
func frac(v uint64, width int) float64 {
	return float64(v) / math.Pow(16, float64(width))
}

// specs assigns every parameter its disjoint slice of the entropy pool.
// Order matters: offsets accumulate in declaration order, so inserting a
// field changes every derivation after it. Append new fields at the end.
var specs = []fieldSpec{
	floatField("strokeWidth", func(p *Parameters, v float64) { p.StrokeWidth = v }, 2, 8),
	floatField("curveTension", func(p *Parameters, v float64) { p.CurveTension = v }, 0, 1),
	floatField("cornerRadius", func(p *Parameters, v float64) { p.CornerRadius = v }, 0, 12),
	intField("elementCount", func(p *Parameters, v int) { p.ElementCount = v }, 3, 12),
	angleField("rotation", func(p *Parameters, v float64) { p.Rotation = v }, 360),
	floatField("aspectRatio", func(p *Parameters, v float64) { p.AspectRatio = v }, 0.6, 1.6),
	floatField("scaleVariance", func(p *Parameters, v float64) { p.ScaleVariance = v }, 0, 0.5),
	enumField("symmetryType", func(p *Parameters, v SymmetryType) { p.SymmetryType = v },
		SymmetryRadial, SymmetryBilateral, SymmetryNone),
	enumField("letterPart", func(p *Parameters, v LetterPart) { p.LetterPart = v },
		PartApex, PartBowl, PartCrossbar, PartStem, PartTerminal),
	enumField("letterWeight", func(p *Parameters, v LetterWeight) { p.LetterWeight = v },
		WeightLight, WeightRegular, WeightBold, WeightHeavy),
	floatField("overlapAmount", func(p *Parameters, v float64) { p.OverlapAmount = v }, 0, 20),
	floatField("interlockDepth", func(p *Parameters, v float64) { p.InterlockDepth = v }, 2, 14),
	floatField("spacingRatio", func(p *Parameters, v float64) { p.SpacingRatio = v }, 0.8, 2.0),
	angleField("gradientAngle", func(p *Parameters, v float64) { p.GradientAngle = v }, 360),
	enumField("gradientType", func(p *Parameters, v GradientType) { p.GradientType = v },
		GradientLinear, GradientRadial),
	floatField("gradientSpread", func(p *Parameters, v float64) { p.GradientSpread = v }, 0.2, 1),
	floatField("edgeSoftness", func(p *Parameters, v float64) { p.EdgeSoftness = v }, 0, 4),
	intField("shapeComplexity", func(p *Parameters, v int) { p.ShapeComplexity = v }, 1, 6),
	floatField("strokeTaper", func(p *Parameters, v float64) { p.StrokeTaper = v }, 0, 0.8),
	enumField("strokeCap", func(p *Parameters, v StrokeCap) { p.StrokeCap = v },
		CapButt, CapRound, CapSquare),
	enumField("strokeJoin", func(p *Parameters, v StrokeJoin) { p.StrokeJoin = v },
		JoinMiter, JoinRound, JoinBevel),
	floatField("cutoutPosition", func(p *Parameters, v float64) { p.CutoutPosition = v }, 0, 1),
	floatField("offsetY", func(p *Parameters, v float64) { p.OffsetY = v }, -8, 8),
	floatField("fillOpacity", func(p *Parameters, v float64) { p.FillOpacity = v }, 0.35, 1),
	floatField("secondaryOpacity", func(p *Parameters, v float64) { p.SecondaryOpacity = v }, 0.2, 0.9),
	intField("barCount", func(p *Parameters, v int) { p.BarCount = v }, 3, 9),
	floatField("barGap", func(p *Parameters, v float64) { p.BarGap = v }, 1, 6),
	floatField("chevronAngle", func(p *Parameters, v float64) { p.ChevronAngle = v }, 15, 75),
	floatField("loopRadius", func(p *Parameters, v float64) { p.LoopRadius = v }, 12, 30),
	intField("loopCount", func(p *Parameters, v int) { p.LoopCount = v }, 2, 5),
	intField("petalCount", func(p *Parameters, v int) { p.PetalCount = v }, 3, 8),
	floatField("petalLength", func(p *Parameters, v float64) { p.PetalLength = v }, 18, 40),
	floatField("radialSpread", func(p *Parameters, v float64) { p.RadialSpread = v }, 0.5, 1),
	floatField("fragmentJitter", func(p *Parameters, v float64) { p.FragmentJitter = v }, 0, 6),
	intField("fragmentCount", func(p *Parameters, v int) { p.FragmentCount = v }, 4, 14),
	floatField("blockRatio", func(p *Parameters, v float64) { p.BlockRatio = v }, 0.3, 0.7),
	angleField("blockRotation", func(p *Parameters, v float64) { p.BlockRotation = v }, 90),
	floatField("negativeSpaceSize", func(p *Parameters, v float64) { p.NegativeSpaceSize = v }, 10, 40),
	floatField("mergeOffset", func(p *Parameters, v float64) { p.MergeOffset = v }, 4, 18),
	floatField("strokeContrast", func(p *Parameters, v float64) { p.StrokeContrast = v }, 0, 1),
	floatField("glowRadius", func(p *Parameters, v float64) { p.GlowRadius = v }, 1, 8),
	floatField("glowOpacity", func(p *Parameters, v float64) { p.GlowOpacity = v }, 0.2, 0.8),
	intField("extractIndex", func(p *Parameters, v int) { p.ExtractIndex = v }, 0, 4),
	floatField("fusionBlend", func(p *Parameters, v float64) { p.FusionBlend = v }, 0, 1),
	intField("geometrySides", func(p *Parameters, v int) { p.GeometrySides = v }, 3, 8),
	floatField("waveAmplitude", func(p *Parameters, v float64) { p.WaveAmplitude = v }, 2, 12),
	floatField("waveFrequency", func(p *Parameters, v float64) { p.WaveFrequency = v }, 0.5, 3),
	floatField("tiltAngle", func(p *Parameters, v float64) { p.TiltAngle = v }, -20, 20),
	floatField("innerRadiusRatio", func(p *Parameters, v float64) { p.InnerRadiusRatio = v }, 0.2, 0.7),
	floatField("accentMix", func(p *Parameters, v float64) { p.AccentMix = v }, 0, 1),
}

// deriveParams walks the specs table over the entropy pool, handing each
// field its slice. The pool must be at least PoolSize hex characters.
func deriveParams(pool string) Parameters {
	var p Parameters
	offset := 0
	for _, s := range specs {
		slice := pool[offset : offset+s.width]
		v, err := strconv.ParseUint(slice, 16, 64)
		if err != nil {
			// The pool is produced by hex.EncodeToString; a parse failure
			// means derivation itself is broken.
			panic("seed: non-hex entropy pool slice " + strconv.Quote(slice))
		}
		s.apply(&p, v, s.width)
		offset += s.width
	}
	return p
}

// PoolSize is the number of hex characters the specs table consumes.
var PoolSize = func() int {
	n := 0
	for _, s := range specs {
		n += s.width
	}
	return n
}()
