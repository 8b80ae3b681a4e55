package seed

import (
	"fmt"
	"testing"
)

func TestDeriveDeterministic(t *testing.T) {
	a := Derive("Acme", "monogram-merge", "s1")
	b := Derive("Acme", "monogram-merge", "s1")

	if a.HashHex != b.HashHex {
		t.Error("same tuple should produce the same hash")
	}
	if a.Params != b.Params {
		t.Error("same tuple should produce identical parameters")
	}
	if len(a.HashHex) != 64 {
		t.Errorf("hash length should be 64, got %d", len(a.HashHex))
	}
}

func TestDeriveDistinguishesTuple(t *testing.T) {
	base := Derive("Acme", "monogram-merge", "s1")

	tests := []struct {
		name  string
		brand string
		algo  string
		salt  string
	}{
		{"brand", "Acme2", "monogram-merge", "s1"},
		{"algorithm", "Acme", "clover-radial", "s1"},
		{"salt", "Acme", "monogram-merge", "s2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := Derive(tt.brand, tt.algo, tt.salt)
			if other.HashHex == base.HashHex {
				t.Errorf("changing %s should change the hash", tt.name)
			}
		})
	}
}

// The delimiter prevents ("ab", "c") and ("a", "bc") from colliding.
func TestDeriveDelimited(t *testing.T) {
	a := Derive("ab", "c", "")
	b := Derive("a", "bc", "")
	if a.HashHex == b.HashHex {
		t.Error("brand/algorithm boundary should be part of the hash")
	}
}

func TestPoolSize(t *testing.T) {
	// The pool is two SHA-256 digests, 128 hex characters.
	if PoolSize > 128 {
		t.Fatalf("field table consumes %d hex chars, pool only has 128", PoolSize)
	}
}

// TestParameterDomains derives many seeds and checks every field stays in
// its documented range.
func TestParameterDomains(t *testing.T) {
	for i := 0; i < 10000; i++ {
		p := Derive(fmt.Sprintf("brand-%d", i), "letter-fusion", fmt.Sprintf("salt-%d", i%7)).Params

		inRange := func(name string, v, lo, hi float64) {
			if v < lo || v > hi {
				t.Fatalf("seed %d: %s = %v outside [%v, %v]", i, name, v, lo, hi)
			}
		}
		inRange("StrokeWidth", p.StrokeWidth, 2, 8)
		inRange("CurveTension", p.CurveTension, 0, 1)
		inRange("CornerRadius", p.CornerRadius, 0, 12)
		inRange("ElementCount", float64(p.ElementCount), 3, 12)
		inRange("Rotation", p.Rotation, 0, 360)
		inRange("AspectRatio", p.AspectRatio, 0.6, 1.6)
		inRange("OverlapAmount", p.OverlapAmount, 0, 20)
		inRange("InterlockDepth", p.InterlockDepth, 2, 14)
		inRange("GradientAngle", p.GradientAngle, 0, 360)
		inRange("ShapeComplexity", float64(p.ShapeComplexity), 1, 6)
		inRange("OffsetY", p.OffsetY, -8, 8)
		inRange("FillOpacity", p.FillOpacity, 0.35, 1)
		inRange("BarCount", float64(p.BarCount), 3, 9)
		inRange("ChevronAngle", p.ChevronAngle, 15, 75)
		inRange("LoopCount", float64(p.LoopCount), 2, 5)
		inRange("PetalCount", float64(p.PetalCount), 3, 8)
		inRange("FragmentCount", float64(p.FragmentCount), 4, 14)
		inRange("BlockRotation", p.BlockRotation, 0, 90)
		inRange("ExtractIndex", float64(p.ExtractIndex), 0, 4)
		inRange("GeometrySides", float64(p.GeometrySides), 3, 8)
		inRange("TiltAngle", p.TiltAngle, -20, 20)
		inRange("InnerRadiusRatio", p.InnerRadiusRatio, 0.2, 0.7)

		switch p.SymmetryType {
		case SymmetryRadial, SymmetryBilateral, SymmetryNone:
		default:
			t.Fatalf("seed %d: invalid symmetry %q", i, p.SymmetryType)
		}
		switch p.LetterPart {
		case PartApex, PartBowl, PartCrossbar, PartStem, PartTerminal:
		default:
			t.Fatalf("seed %d: invalid letter part %q", i, p.LetterPart)
		}
		switch p.GradientType {
		case GradientLinear, GradientRadial:
		default:
			t.Fatalf("seed %d: invalid gradient type %q", i, p.GradientType)
		}
	}
}

func TestRNGDeterministic(t *testing.T) {
	s := Derive("Acme", "single-stroke", "")

	r1 := s.RNG()
	r2 := s.RNG()
	for i := 0; i < 100; i++ {
		if r1.Float64() != r2.Float64() {
			t.Fatal("RNG from the same hash should produce the same sequence")
		}
	}
}

func TestRNGVariesWithHash(t *testing.T) {
	r1 := Derive("Acme", "single-stroke", "a").RNG()
	r2 := Derive("Acme", "single-stroke", "b").RNG()

	same := true
	for i := 0; i < 10; i++ {
		if r1.Float64() != r2.Float64() {
			same = false
			break
		}
	}
	if same {
		t.Error("different hashes should seed different draw sequences")
	}
}

func TestNewRNGShortInput(t *testing.T) {
	// Degenerate inputs must not panic.
	NewRNG("")
	NewRNG("ab")
	NewRNG("zz-not-hex")
}
