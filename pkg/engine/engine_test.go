package engine

import (
	"strings"
	"testing"

	"github.com/logomark/logomark/pkg/algo"
	"github.com/logomark/logomark/pkg/errors"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{BrandName: "Acme"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.Variations != DefaultVariations {
		t.Errorf("Variations = %d, want %d", opts.Variations, DefaultVariations)
	}
	if opts.MinQualityScore != DefaultMinQualityScore {
		t.Errorf("MinQualityScore = %v, want %v", opts.MinQualityScore, DefaultMinQualityScore)
	}
	if opts.CandidatesPerVariation != DefaultCandidatesPerVariation {
		t.Errorf("CandidatesPerVariation = %d, want %d", opts.CandidatesPerVariation, DefaultCandidatesPerVariation)
	}
	if opts.Salter == nil || opts.Logger == nil {
		t.Error("Salter and Logger should be defaulted")
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"bad brand", Options{BrandName: "x\x00"}, errors.ErrCodeInvalidBrand},
		{"long brand", Options{BrandName: strings.Repeat("a", 200)}, errors.ErrCodeInvalidBrand},
		{"bad primary", Options{BrandName: "Acme", PrimaryColor: "red"}, errors.ErrCodeInvalidColor},
		{"bad accent", Options{BrandName: "Acme", AccentColor: "#12"}, errors.ErrCodeInvalidColor},
		{"bad algorithm", Options{BrandName: "Acme", Algorithm: "nope"}, errors.ErrCodeInvalidAlgorithm},
		{"bad score", Options{BrandName: "Acme", MinQualityScore: 150}, errors.ErrCodeInvalidOptions},
		{"negative score", Options{BrandName: "Acme", MinQualityScore: -1}, errors.ErrCodeInvalidOptions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("expected code %s, got %v", tt.code, err)
			}
		})
	}
}

func TestSelectAlgorithm(t *testing.T) {
	// Stable across calls.
	if SelectAlgorithm("Acme") != SelectAlgorithm("Acme") {
		t.Error("selection should be deterministic")
	}
	// Always a registered algorithm.
	for _, brand := range []string{"Acme", "", "Globex", "初音"} {
		if !algo.Valid(SelectAlgorithm(brand)) {
			t.Errorf("selection for %q is not registered", brand)
		}
	}
	// Different brands spread across algorithms.
	seen := map[algo.Name]bool{}
	for _, brand := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		seen[SelectAlgorithm(brand)] = true
	}
	if len(seen) < 2 {
		t.Error("selection should vary across brands")
	}
}

func TestSelectInfiniteAlgorithm(t *testing.T) {
	if SelectInfiniteAlgorithm("Acme") != SelectInfiniteAlgorithm("Acme") {
		t.Error("selection should be deterministic")
	}
	name := SelectInfiniteAlgorithm("Acme")
	if algo.FamilyOf(name) != algo.FamilyInfinite {
		t.Errorf("selected %q is not infinite-family", name)
	}
}

func TestRandomSalter(t *testing.T) {
	a := RandomSalter(0, 0)
	b := RandomSalter(0, 0)
	if len(a) != 16 {
		t.Errorf("salt length = %d, want 16", len(a))
	}
	if a == b {
		t.Error("consecutive salts should differ")
	}
}
