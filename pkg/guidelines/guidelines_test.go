package guidelines

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/logomark/logomark/pkg/algo"
	"github.com/logomark/logomark/pkg/engine"
)

func testLogo(t *testing.T, name algo.Name) *engine.GeneratedLogo {
	t.Helper()
	r := engine.NewRunner(nil, nil)
	logo, err := r.Regenerate(context.Background(), engine.Options{
		BrandName: "Acme",
		Algorithm: name,
	})
	if err != nil {
		t.Fatalf("generate test logo: %v", err)
	}
	return logo
}

func TestGenerateDeterministic(t *testing.T) {
	logo := testLogo(t, algo.MonogramMerge)

	a := Generate(logo, Options{})
	b := Generate(logo, Options{})
	if a.ClearSpace != b.ClearSpace || a.MinSizes != b.MinSizes || a.Typography != b.Typography {
		t.Error("guidelines for the same logo should be identical")
	}
}

func TestColorVariationCatalog(t *testing.T) {
	g := Generate(testLogo(t, algo.CloverRadial), Options{})

	if len(g.ColorVariations) != 5 {
		t.Fatalf("expected 5 color variations, got %d", len(g.ColorVariations))
	}
	want := []string{"full-color", "full-color-on-dark", "monochrome-black", "reversed-white", "grayscale"}
	for i, name := range want {
		if g.ColorVariations[i].Name != name {
			t.Errorf("variation %d = %q, want %q", i, g.ColorVariations[i].Name, name)
		}
		if g.ColorVariations[i].LogoColor == "" || g.ColorVariations[i].Background == "" {
			t.Errorf("variation %q is missing colors", name)
		}
	}
}

func TestCompanyNameOverride(t *testing.T) {
	logo := testLogo(t, algo.MonogramMerge)

	g := Generate(logo, Options{CompanyName: "Acme Holdings"})
	if g.BrandName != "Acme Holdings" {
		t.Errorf("BrandName = %q, want override", g.BrandName)
	}
	if !strings.Contains(g.Markdown(), "# Acme Holdings Brand Guidelines") {
		t.Error("markdown heading should use the override")
	}
}

func TestUsageRulesPerAlgorithm(t *testing.T) {
	base := Generate(testLogo(t, algo.MonogramMerge), Options{})
	cutout := Generate(testLogo(t, algo.NegativeSpaceLetter), Options{})

	if len(cutout.UsageRules) != len(base.UsageRules)+1 {
		t.Errorf("cutout mark should add one rule: %d vs %d",
			len(cutout.UsageRules), len(base.UsageRules))
	}
}

func TestTypographyCoversAllAlgorithms(t *testing.T) {
	for _, name := range algo.Names() {
		ty := typographyFor(name)
		if ty.Personality == "" || ty.PrimaryFont == "" || ty.SecondaryFont == "" {
			t.Errorf("%s: incomplete typography %+v", name, ty)
		}
	}
}

func TestMarkdownSections(t *testing.T) {
	md := Generate(testLogo(t, algo.GradientGlow), Options{}).Markdown()

	for _, section := range []string{
		"# Acme Brand Guidelines",
		"## Clear Space",
		"## Minimum Sizes",
		"## Color Variations",
		"## Usage Rules",
		"## Typography",
	} {
		if !strings.Contains(md, section) {
			t.Errorf("markdown missing section %q", section)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g := Generate(testLogo(t, algo.SingleStroke), Options{})

	data, err := g.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var back BrandGuidelines
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.BrandName != g.BrandName || len(back.ColorVariations) != 5 {
		t.Error("JSON round trip lost data")
	}
}

func TestClearSpaceGrowsWithDensity(t *testing.T) {
	sparse := clearSpace(5, 10)
	dense := clearSpace(20, 80)
	if dense.Multiplier <= sparse.Multiplier {
		t.Error("dense marks should get more clear space")
	}
}

func TestMinSizesGrowWithDensity(t *testing.T) {
	small := minSizes(5, false)
	big := minSizes(20, false)
	if big.DigitalPX <= small.DigitalPX {
		t.Error("dense marks should get a larger minimum size")
	}
}
