// Package guidelines derives brand-usage documentation from a generated
// logo. The derivation is a pure function of the logo's algorithm and SVG
// structure: no randomness, so regenerating guidelines for the same logo
// always yields the same document.
package guidelines

import (
	"strings"

	"github.com/logomark/logomark/pkg/algo"
	"github.com/logomark/logomark/pkg/color"
	"github.com/logomark/logomark/pkg/engine"
	"github.com/logomark/logomark/pkg/quality"
)

// Options tweaks guideline derivation.
type Options struct {
	// CompanyName overrides the logo's brand name in prose.
	CompanyName string
}

// ClearSpace expresses protected space around the mark as a multiple of the
// logo's height.
type ClearSpace struct {
	Multiplier float64 `json:"multiplier"`
	Rationale  string  `json:"rationale"`
}

// MinSizes are the smallest reproductions that keep the mark legible.
type MinSizes struct {
	PrintMM   float64 `json:"print_mm"`
	DigitalPX int     `json:"digital_px"`
	FaviconPX int     `json:"favicon_px"`
}

// ColorVariation is one sanctioned rendition of the mark.
type ColorVariation struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	LogoColor  string `json:"logo_color"`
	Usage      string `json:"usage"`
}

// Rule is a single do or don't.
type Rule struct {
	Allowed bool   `json:"allowed"`
	Text    string `json:"text"`
}

// Typography is the suggested type pairing.
type Typography struct {
	Personality   string `json:"personality"`
	PrimaryFont   string `json:"primary_font"`
	SecondaryFont string `json:"secondary_font"`
	Notes         string `json:"notes"`
}

// BrandGuidelines is the complete derived document.
type BrandGuidelines struct {
	BrandName       string           `json:"brand_name"`
	Algorithm       algo.Name        `json:"algorithm"`
	ClearSpace      ClearSpace       `json:"clear_space"`
	MinSizes        MinSizes         `json:"min_sizes"`
	ColorVariations []ColorVariation `json:"color_variations"`
	UsageRules      []Rule           `json:"usage_rules"`
	Typography      Typography       `json:"typography"`
}

// Generate derives guidelines from a logo.
func Generate(logo *engine.GeneratedLogo, opts Options) *BrandGuidelines {
	name := logo.Meta.BrandName
	if opts.CompanyName != "" {
		name = opts.CompanyName
	}

	elements := quality.ElementCount(logo.SVG)
	complexity := quality.Complexity(logo.SVG)
	hasText := strings.Contains(logo.SVG, "<text")

	return &BrandGuidelines{
		BrandName:       name,
		Algorithm:       logo.Algorithm,
		ClearSpace:      clearSpace(elements, complexity),
		MinSizes:        minSizes(elements, hasText),
		ColorVariations: colorVariations(logo.Meta.Colors),
		UsageRules:      usageRules(logo.Algorithm),
		Typography:      typographyFor(logo.Algorithm),
	}
}

// clearSpace widens the protected zone for busy marks: dense structure
// needs more breathing room to stay readable.
func clearSpace(elements int, complexity float64) ClearSpace {
	multiplier := 0.25
	rationale := "Standard clear space of one quarter logo height on all sides."
	if elements > 12 || complexity > 40 {
		multiplier = 0.5
		rationale = "This mark is visually dense; keep half a logo height clear on all sides."
	}
	return ClearSpace{Multiplier: multiplier, Rationale: rationale}
}

// minSizes scales minimum reproduction sizes with structural density.
// Marks with embedded text need roughly double the floor to stay legible.
func minSizes(elements int, hasText bool) MinSizes {
	sizes := MinSizes{PrintMM: 10, DigitalPX: 24, FaviconPX: 16}
	if elements > 12 {
		sizes = MinSizes{PrintMM: 15, DigitalPX: 32, FaviconPX: 24}
	}
	if hasText {
		sizes.PrintMM *= 2
		sizes.DigitalPX *= 2
		sizes.FaviconPX = 32
	}
	return sizes
}

// colorVariations is the fixed five-entry catalog every brand receives.
func colorVariations(c engine.Colors) []ColorVariation {
	return []ColorVariation{
		{
			Name:       "full-color",
			Background: "#ffffff",
			LogoColor:  c.Primary,
			Usage:      "Primary usage on light backgrounds.",
		},
		{
			Name:       "full-color-on-dark",
			Background: "#111111",
			LogoColor:  color.Lighten(c.Primary, 0.15),
			Usage:      "Primary usage on dark backgrounds.",
		},
		{
			Name:       "monochrome-black",
			Background: "#ffffff",
			LogoColor:  "#000000",
			Usage:      "Single-color print, stamps, engraving.",
		},
		{
			Name:       "reversed-white",
			Background: c.Primary,
			LogoColor:  "#ffffff",
			Usage:      "Over brand-color fields and photography.",
		},
		{
			Name:       "grayscale",
			Background: "#ffffff",
			LogoColor:  color.Grayscale(c.Primary),
			Usage:      "Newsprint and low-color reproduction.",
		},
	}
}

// staticRules apply to every mark regardless of algorithm.
var staticRules = []Rule{
	{Allowed: true, Text: "Use the provided SVG files without modification."},
	{Allowed: true, Text: "Scale proportionally from the viewBox."},
	{Allowed: false, Text: "Do not stretch, skew, or rotate the mark."},
	{Allowed: false, Text: "Do not recolor outside the approved variations."},
	{Allowed: false, Text: "Do not add drop shadows or outlines."},
}

// algorithmRules adds cautions specific to how each family of marks is
// constructed.
var algorithmRules = map[algo.Name]Rule{
	algo.NegativeSpace:       {Allowed: false, Text: "Do not place over busy imagery; the cutout needs a quiet background."},
	algo.NegativeSpaceLetter: {Allowed: false, Text: "Do not place over busy imagery; the cutout needs a quiet background."},
	algo.GradientGlow:        {Allowed: false, Text: "Do not reproduce in single-color print; use the monochrome variation instead."},
	algo.LineFragmentation:   {Allowed: false, Text: "Do not scale below the minimum size; fragments merge at small sizes."},
	algo.ContinuousStroke:    {Allowed: true, Text: "The stroke may be animated as a draw-on effect in digital contexts."},
	algo.SingleStroke:        {Allowed: true, Text: "The stroke may be animated as a draw-on effect in digital contexts."},
}

func usageRules(name algo.Name) []Rule {
	rules := make([]Rule, len(staticRules))
	copy(rules, staticRules)
	if extra, ok := algorithmRules[name]; ok {
		rules = append(rules, extra)
	}
	return rules
}

// personalities maps the construction style of each algorithm to a
// typographic voice.
var personalities = map[algo.Name]string{
	algo.LineFragmentation:    "technical",
	algo.StaggeredBars:        "structured",
	algo.BlockAssembly:        "structured",
	algo.MotionChevrons:       "dynamic",
	algo.NegativeSpace:        "minimal",
	algo.InterlockingLoops:    "friendly",
	algo.MonogramMerge:        "classic",
	algo.ContinuousStroke:     "expressive",
	algo.GeometricExtract:     "minimal",
	algo.CloverRadial:         "friendly",
	algo.LetterFusion:         "expressive",
	algo.InterlockingGeometry: "technical",
	algo.NegativeSpaceLetter:  "minimal",
	algo.MonogramMergeV2:      "classic",
	algo.CloverRadialV2:       "friendly",
	algo.SingleStroke:         "expressive",
	algo.LetterExtract:        "minimal",
	algo.GradientGlow:         "dynamic",
}

// typePairings maps each personality to a suggested pairing. Fonts are
// suggestions, not bundled assets.
var typePairings = map[string]Typography{
	"technical":  {PrimaryFont: "IBM Plex Mono", SecondaryFont: "IBM Plex Sans", Notes: "Monospace headlines reinforce the engineered construction."},
	"structured": {PrimaryFont: "Archivo", SecondaryFont: "Inter", Notes: "Grid-friendly grotesques echo the modular mark."},
	"dynamic":    {PrimaryFont: "Space Grotesk", SecondaryFont: "Inter", Notes: "Slightly condensed forms keep pace with the mark's motion."},
	"minimal":    {PrimaryFont: "Inter", SecondaryFont: "Inter", Notes: "A single quiet family keeps focus on the mark."},
	"friendly":   {PrimaryFont: "Nunito Sans", SecondaryFont: "Source Sans 3", Notes: "Rounded terminals match the mark's soft geometry."},
	"classic":    {PrimaryFont: "Libre Baskerville", SecondaryFont: "Source Sans 3", Notes: "A serif headline face suits the monogram tradition."},
	"expressive": {PrimaryFont: "Fraunces", SecondaryFont: "Inter", Notes: "A display face with personality complements the drawn line."},
}

func typographyFor(name algo.Name) Typography {
	personality, ok := personalities[name]
	if !ok {
		personality = "minimal"
	}
	t := typePairings[personality]
	t.Personality = personality
	return t
}
