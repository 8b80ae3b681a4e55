// Package algo implements the generative logo algorithms.
//
// Eighteen independent generators share one contract: given an Input they
// return a complete SVG document, as a pure function. Identical input means
// byte-identical output. Generators derive geometry from their parameter
// subset plus optional PRNG draws; nothing here does I/O.
//
// Two families exist. The fixed family is driven by brand name and colors:
// the same brand always yields the same mark. The infinite family consumes a
// full master seed, so every salt opens a new point in the parameter space.
package algo

import (
	"unicode"

	"github.com/logomark/logomark/pkg/color"
	"github.com/logomark/logomark/pkg/errors"
	"github.com/logomark/logomark/pkg/seed"
)

// Name identifies one generator.
type Name string

// Fixed-family algorithms (brand/color driven).
const (
	LineFragmentation Name = "line-fragmentation"
	StaggeredBars     Name = "staggered-bars"
	BlockAssembly     Name = "block-assembly"
	MotionChevrons    Name = "motion-chevrons"
	NegativeSpace     Name = "negative-space"
	InterlockingLoops Name = "interlocking-loops"
	MonogramMerge     Name = "monogram-merge"
	ContinuousStroke  Name = "continuous-stroke"
	GeometricExtract  Name = "geometric-extract"
	CloverRadial      Name = "clover-radial"
)

// Infinite-family algorithms (full-seed driven).
const (
	LetterFusion         Name = "letter-fusion"
	InterlockingGeometry Name = "interlocking-geometry"
	NegativeSpaceLetter  Name = "negative-space-letter"
	MonogramMergeV2      Name = "monogram-merge-v2"
	CloverRadialV2       Name = "clover-radial-v2"
	SingleStroke         Name = "single-stroke"
	LetterExtract        Name = "letter-extract"
	GradientGlow         Name = "gradient-glow"
)

// Family groups algorithms by the input they consume.
type Family string

// Families.
const (
	FamilyFixed    Family = "fixed"
	FamilyInfinite Family = "infinite"
)

// Input carries everything a generator may consume. Fixed-family generators
// read brand and colors; infinite-family generators additionally require
// Seed. When Seed is nil it is derived from the brand and algorithm name
// with an empty salt, which keeps fixed-family output stable per brand.
type Input struct {
	BrandName    string
	PrimaryColor string
	AccentColor  string
	Seed         *seed.MasterSeed
}

// Primary returns the primary color, defaulted.
func (in Input) Primary() string {
	if in.PrimaryColor == "" {
		return color.DefaultPrimary
	}
	return in.PrimaryColor
}

// Accent returns the accent color, defaulted to a hue rotation of primary so
// single-color input still produces a two-tone mark.
func (in Input) Accent() string {
	if in.AccentColor != "" {
		return in.AccentColor
	}
	if in.PrimaryColor != "" {
		return color.Rotate(in.PrimaryColor, 40)
	}
	return color.DefaultAccent
}

type generator func(Input) string

type registration struct {
	family Family
	gen    generator
}

// registry maps every algorithm name to its family and generator. All
// dispatch goes through Generate; an unknown name is the caller's bug, not
// a panic.
var registry = map[Name]registration{
	LineFragmentation: {FamilyFixed, genLineFragmentation},
	StaggeredBars:     {FamilyFixed, genStaggeredBars},
	BlockAssembly:     {FamilyFixed, genBlockAssembly},
	MotionChevrons:    {FamilyFixed, genMotionChevrons},
	NegativeSpace:     {FamilyFixed, genNegativeSpace},
	InterlockingLoops: {FamilyFixed, genInterlockingLoops},
	MonogramMerge:     {FamilyFixed, genMonogramMerge},
	ContinuousStroke:  {FamilyFixed, genContinuousStroke},
	GeometricExtract:  {FamilyFixed, genGeometricExtract},
	CloverRadial:      {FamilyFixed, genCloverRadial},

	LetterFusion:         {FamilyInfinite, genLetterFusion},
	InterlockingGeometry: {FamilyInfinite, genInterlockingGeometry},
	NegativeSpaceLetter:  {FamilyInfinite, genNegativeSpaceLetter},
	MonogramMergeV2:      {FamilyInfinite, genMonogramMergeV2},
	CloverRadialV2:       {FamilyInfinite, genCloverRadialV2},
	SingleStroke:         {FamilyInfinite, genSingleStroke},
	LetterExtract:        {FamilyInfinite, genLetterExtract},
	GradientGlow:         {FamilyInfinite, genGradientGlow},
}

// names is the stable iteration order for Names and deterministic
// brand-based selection.
var names = []Name{
	LineFragmentation, StaggeredBars, BlockAssembly, MotionChevrons,
	NegativeSpace, InterlockingLoops, MonogramMerge, ContinuousStroke,
	GeometricExtract, CloverRadial,
	LetterFusion, InterlockingGeometry, NegativeSpaceLetter, MonogramMergeV2,
	CloverRadialV2, SingleStroke, LetterExtract, GradientGlow,
}

// Names returns every registered algorithm in stable order, fixed family
// first.
func Names() []Name {
	out := make([]Name, len(names))
	copy(out, names)
	return out
}

// InfiniteNames returns the full-seed-driven algorithms in stable order.
func InfiniteNames() []Name {
	var out []Name
	for _, n := range names {
		if registry[n].family == FamilyInfinite {
			out = append(out, n)
		}
	}
	return out
}

// Valid reports whether name is a registered algorithm.
func Valid(name Name) bool {
	_, ok := registry[name]
	return ok
}

// FamilyOf returns the family of a registered algorithm, or "" if unknown.
func FamilyOf(name Name) Family {
	return registry[name].family
}

// Generate runs the named algorithm over in and returns the SVG document.
// A nil Seed is derived from (brand, name, "") so fixed-family calls without
// an orchestrator still work.
func Generate(name Name, in Input) (string, error) {
	reg, ok := registry[name]
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidAlgorithm, "unknown algorithm %q", name)
	}
	if in.Seed == nil {
		in.Seed = seed.Derive(in.BrandName, string(name), "")
	}
	return reg.gen(in), nil
}

// firstRune returns the first letter-or-digit rune of the brand uppercased,
// falling back to 'A'. Empty, symbolic, and non-ASCII brands all resolve to
// a usable letter this way; generators never fail on odd input.
func firstRune(brand string) rune {
	for _, r := range brand {
		if r > unicode.MaxASCII {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToUpper(r)
		}
	}
	return 'A'
}

// initials returns the first two usable runes of the brand. One-letter
// brands double their initial so monogram algorithms always have a pair.
func initials(brand string) (rune, rune) {
	var got []rune
	for _, r := range brand {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			continue
		}
		got = append(got, unicode.ToUpper(r))
		if len(got) == 2 {
			return got[0], got[1]
		}
	}
	if len(got) == 1 {
		return got[0], got[0]
	}
	return 'A', 'A'
}
