package quality

import (
	"testing"

	"github.com/logomark/logomark/pkg/seed"
	"github.com/logomark/logomark/pkg/svg"
)

// buildDoc returns a well-formed document with n circles.
func buildDoc(n int) string {
	b := svg.New()
	for i := 0; i < n; i++ {
		b.Circle(50, 50, float64(5+i), svg.Attrs{"stroke": "#2563eb"})
	}
	return b.Build()
}

func okParams() seed.Parameters {
	return seed.Derive("Acme", "clover-radial", "").Params
}

func TestScoreIdealBand(t *testing.T) {
	for _, n := range []int{IdealMinElements, 10, IdealMaxElements} {
		r := Score(buildDoc(n), okParams())
		if r.Subscores.Complexity != 100 {
			t.Errorf("%d elements: complexity = %v, want 100", n, r.Subscores.Complexity)
		}
		if r.Score < 0 || r.Score > 100 {
			t.Errorf("%d elements: score %v outside [0, 100]", n, r.Score)
		}
	}
}

func TestScoreSparse(t *testing.T) {
	empty := Score("<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 100 100\"></svg>", okParams())
	if empty.Subscores.Complexity != 0 {
		t.Errorf("empty document complexity = %v, want 0", empty.Subscores.Complexity)
	}

	one := Score(buildDoc(1), okParams())
	two := Score(buildDoc(2), okParams())
	three := Score(buildDoc(3), okParams())
	if !(one.Subscores.Complexity < two.Subscores.Complexity && two.Subscores.Complexity < three.Subscores.Complexity) {
		t.Error("complexity should rise toward the ideal band")
	}
}

// Adding elements past the ideal band lowers the score monotonically.
func TestScoreDensePenalty(t *testing.T) {
	ideal := Score(buildDoc(IdealMaxElements), okParams())
	crowded := Score(buildDoc(IdealMaxElements+200), okParams())

	if crowded.Score >= ideal.Score {
		t.Errorf("crowded score %v should be below ideal score %v", crowded.Score, ideal.Score)
	}
	if crowded.Subscores.Complexity != 0 {
		t.Errorf("200 elements past the band should floor complexity, got %v", crowded.Subscores.Complexity)
	}
}

func TestScoreDegenerateShapes(t *testing.T) {
	clean := Score(buildDoc(5), okParams())

	b := svg.New()
	for i := 0; i < 4; i++ {
		b.Circle(50, 50, 10, nil)
	}
	b.Circle(50, 50, 0, nil) // zero radius
	dirty := Score(b.Build(), okParams())

	if dirty.Subscores.Geometry >= clean.Subscores.Geometry {
		t.Errorf("zero-size shape should lower geometry: %v vs %v",
			dirty.Subscores.Geometry, clean.Subscores.Geometry)
	}
}

func TestScoreHairlineStroke(t *testing.T) {
	p := okParams()
	p.StrokeWidth = 1
	thin := Score(buildDoc(5), p)
	p.StrokeWidth = 4
	thick := Score(buildDoc(5), p)

	if thin.Subscores.Geometry >= thick.Subscores.Geometry {
		t.Error("hairline stroke width should lower geometry score")
	}
}

func TestScoreConformance(t *testing.T) {
	good := Score(buildDoc(5), okParams())
	if good.Subscores.Conformance != 100 {
		t.Errorf("builder output conformance = %v, want 100", good.Subscores.Conformance)
	}

	tests := []struct {
		name string
		doc  string
	}{
		{"missing namespace", `<svg viewBox="0 0 100 100"><circle cx="50" cy="50" r="10"/></svg>`},
		{"missing viewBox", `<svg xmlns="http://www.w3.org/2000/svg"><circle cx="50" cy="50" r="10"/></svg>`},
		{"malformed", `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><circle`},
		{"external ref", `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><image href="http://x/y.png"/></svg>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Score(tt.doc, okParams())
			if r.Subscores.Conformance >= 100 {
				t.Errorf("conformance should be penalized, got %v", r.Subscores.Conformance)
			}
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	doc := buildDoc(7)
	p := okParams()
	if Score(doc, p) != Score(doc, p) {
		t.Error("scoring should be deterministic")
	}
}

func TestElementCount(t *testing.T) {
	doc := buildDoc(6)
	if got := ElementCount(doc); got != 6 {
		t.Errorf("ElementCount = %d, want 6", got)
	}
	if got := ElementCount("<svg></svg>"); got != 0 {
		t.Errorf("ElementCount of empty doc = %d, want 0", got)
	}
}

func TestComplexity(t *testing.T) {
	// M(1) L(1) Q(2) Z(0.5) = 4.5
	doc := `<svg><path d="M 0 0 L 10 10 Q 5 5 20 20 Z"/></svg>`
	if got := Complexity(doc); got != 4.5 {
		t.Errorf("Complexity = %v, want 4.5", got)
	}

	// Each primitive counts as 2.
	if got := Complexity(buildDoc(3)); got != 6 {
		t.Errorf("Complexity of 3 circles = %v, want 6", got)
	}

	// Arcs weigh the most.
	arc := Complexity(`<svg><path d="M 0 0 A 5 5 0 0 1 10 10"/></svg>`)
	line := Complexity(`<svg><path d="M 0 0 L 10 10"/></svg>`)
	if arc <= line {
		t.Error("arc commands should weigh more than line commands")
	}
}
