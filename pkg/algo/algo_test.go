package algo

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/logomark/logomark/pkg/seed"
)

func TestNames(t *testing.T) {
	all := Names()
	if len(all) != 18 {
		t.Fatalf("expected 18 algorithms, got %d", len(all))
	}
	seen := map[Name]bool{}
	fixed, infinite := 0, 0
	for _, n := range all {
		if seen[n] {
			t.Errorf("duplicate algorithm %q", n)
		}
		seen[n] = true
		if !Valid(n) {
			t.Errorf("Names returned unregistered algorithm %q", n)
		}
		switch FamilyOf(n) {
		case FamilyFixed:
			fixed++
		case FamilyInfinite:
			infinite++
		default:
			t.Errorf("algorithm %q has no family", n)
		}
	}
	if fixed != 10 || infinite != 8 {
		t.Errorf("expected 10 fixed and 8 infinite, got %d and %d", fixed, infinite)
	}
}

func TestInfiniteNames(t *testing.T) {
	for _, n := range InfiniteNames() {
		if FamilyOf(n) != FamilyInfinite {
			t.Errorf("%q is not infinite-family", n)
		}
	}
	if len(InfiniteNames()) != 8 {
		t.Errorf("expected 8 infinite algorithms, got %d", len(InfiniteNames()))
	}
}

func TestGenerateUnknown(t *testing.T) {
	if _, err := Generate("no-such-algorithm", Input{BrandName: "Acme"}); err == nil {
		t.Error("unknown algorithm should error")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, name := range Names() {
		in := Input{BrandName: "Acme", Seed: seed.Derive("Acme", string(name), "salt-x")}
		a, err := Generate(name, in)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		b, err := Generate(name, in)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if a != b {
			t.Errorf("%s: identical input should produce byte-identical SVG", name)
		}
	}
}

func TestGenerateSaltVariesInfinite(t *testing.T) {
	for _, name := range InfiniteNames() {
		a, _ := Generate(name, Input{BrandName: "Acme", Seed: seed.Derive("Acme", string(name), "s1")})
		b, _ := Generate(name, Input{BrandName: "Acme", Seed: seed.Derive("Acme", string(name), "s2")})
		if a == b {
			t.Errorf("%s: different salts should produce different marks", name)
		}
	}
}

// Degenerate brand names resolve to a fallback letter instead of failing.
func TestGenerateFallbackBrands(t *testing.T) {
	brands := []string{"", "æøå", "!!!", "株式会社", " ", "123"}
	for _, name := range Names() {
		for _, brand := range brands {
			doc, err := Generate(name, Input{BrandName: brand})
			if err != nil {
				t.Fatalf("%s(%q): %v", name, brand, err)
			}
			assertWellFormed(t, string(name), brand, doc)
		}
	}
}

func TestGenerateWellFormed(t *testing.T) {
	for _, name := range Names() {
		for i := 0; i < 25; i++ {
			in := Input{
				BrandName: fmt.Sprintf("Brand%d", i),
				Seed:      seed.Derive(fmt.Sprintf("Brand%d", i), string(name), fmt.Sprintf("s%d", i)),
			}
			doc, err := Generate(name, in)
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			assertWellFormed(t, string(name), in.BrandName, doc)
			assertCoordsBounded(t, string(name), doc)
		}
	}
}

func assertWellFormed(t *testing.T, algo, brand, doc string) {
	t.Helper()
	var node struct {
		XMLName xml.Name `xml:"svg"`
	}
	if err := xml.Unmarshal([]byte(doc), &node); err != nil {
		t.Fatalf("%s(%q): output is not well-formed XML: %v", algo, brand, err)
	}
	if !strings.Contains(doc, `viewBox="0 0 100 100"`) {
		t.Fatalf("%s(%q): missing canonical viewBox", algo, brand)
	}
}

var (
	coordAttrPattern = regexp.MustCompile(`\b(x|y|cx|cy|x1|y1|x2|y2)="(-?[0-9.]+)"`)
	pathDataPattern  = regexp.MustCompile(`\bd="([^"]+)"`)
	pathNumPattern   = regexp.MustCompile(`-?[0-9]+(?:\.[0-9]+)?`)
)

// assertCoordsBounded checks every positional coordinate stays within the
// clamped drawing area around the viewBox.
func assertCoordsBounded(t *testing.T, algo, doc string) {
	t.Helper()
	const lo, hi = -10, 110

	for _, m := range coordAttrPattern.FindAllStringSubmatch(doc, -1) {
		v, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			t.Fatalf("%s: unparseable coordinate %q", algo, m[2])
		}
		if v < lo || v > hi {
			t.Fatalf("%s: coordinate %s=%v outside [%v, %v]", algo, m[1], v, float64(lo), float64(hi))
		}
	}
	for _, m := range pathDataPattern.FindAllStringSubmatch(doc, -1) {
		for _, num := range pathNumPattern.FindAllString(m[1], -1) {
			v, _ := strconv.ParseFloat(num, 64)
			if v < lo || v > hi {
				t.Fatalf("%s: path coordinate %v outside [%v, %v] in %q", algo, v, float64(lo), float64(hi), m[1])
			}
		}
	}
}

func TestInputColorDefaults(t *testing.T) {
	var in Input
	if in.Primary() == "" || in.Accent() == "" {
		t.Error("empty input should default both colors")
	}
	if in.Primary() == in.Accent() {
		t.Error("default primary and accent should differ")
	}

	// Accent derives from primary when only primary is given.
	in = Input{PrimaryColor: "#ff0000"}
	if in.Accent() == "" || in.Accent() == "#ff0000" {
		t.Errorf("derived accent should differ from primary, got %s", in.Accent())
	}
}

func TestFirstRune(t *testing.T) {
	tests := []struct {
		brand string
		want  rune
	}{
		{"acme", 'A'},
		{"Zulu", 'Z'},
		{"42nd", '4'},
		{"  beta", 'B'},
		{"æøå", 'A'},
		{"", 'A'},
		{"!!!x", 'X'},
	}
	for _, tt := range tests {
		if got := firstRune(tt.brand); got != tt.want {
			t.Errorf("firstRune(%q) = %q, want %q", tt.brand, got, tt.want)
		}
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		brand string
		a, b  rune
	}{
		{"acme", 'A', 'C'},
		{"x", 'X', 'X'},
		{"a b", 'A', 'B'},
		{"", 'A', 'A'},
	}
	for _, tt := range tests {
		a, b := initials(tt.brand)
		if a != tt.a || b != tt.b {
			t.Errorf("initials(%q) = %q,%q want %q,%q", tt.brand, a, b, tt.a, tt.b)
		}
	}
}

func TestAnatomyCoversAlphabet(t *testing.T) {
	for r := 'A'; r <= 'Z'; r++ {
		a := anatomyFor(r)
		for _, part := range []seed.LetterPart{seed.PartApex, seed.PartBowl, seed.PartCrossbar, seed.PartStem, seed.PartTerminal} {
			pts := a.segment(part)
			if len(pts) == 0 {
				t.Errorf("anatomy for %q has no points for part %s", r, part)
			}
		}
	}
	// Lowercase resolves to the uppercase entry.
	if anatomyFor('a') != anatomyFor('A') {
		t.Error("anatomy lookup should be case-insensitive")
	}
}
