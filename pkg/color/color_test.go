package color

import (
	"testing"

	"github.com/logomark/logomark/pkg/errors"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#2563EB", "#2563eb", true},
		{"#abc", "#aabbcc", true},
		{"#000", "#000000", true},
		{"", "", false},
		{"2563eb", "", false},
		{"#12345", "", false},
		{"#gggggg", "", false},
	}
	for _, tt := range tests {
		got, err := Normalize(tt.in)
		if tt.ok != (err == nil) {
			t.Errorf("Normalize(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if err != nil {
			if !errors.Is(err, errors.ErrCodeInvalidColor) && !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Normalize(%q) unexpected error code: %v", tt.in, err)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHexRGBRoundTrip(t *testing.T) {
	rgb, err := HexToRGB("#2563eb")
	if err != nil {
		t.Fatalf("HexToRGB error: %v", err)
	}
	if rgb != (RGB{R: 0x25, G: 0x63, B: 0xeb}) {
		t.Errorf("unexpected channels: %+v", rgb)
	}
	if RGBToHex(rgb) != "#2563eb" {
		t.Errorf("round trip changed the color: %s", RGBToHex(rgb))
	}
}

func TestLightenDarken(t *testing.T) {
	// Lighten toward white, darken toward black, both clamped.
	if got := Lighten("#000000", 1); got != "#ffffff" {
		t.Errorf("full lighten should reach white, got %s", got)
	}
	if got := Darken("#ffffff", 1); got != "#000000" {
		t.Errorf("full darken should reach black, got %s", got)
	}
	// Zero amount is identity.
	if got := Lighten("#2563eb", 0); got != "#2563eb" {
		t.Errorf("zero lighten changed the color: %s", got)
	}
	// Invalid input passes through unchanged.
	if got := Lighten("nope", 0.2); got != "nope" {
		t.Errorf("invalid input should pass through, got %s", got)
	}
}

func TestRotate(t *testing.T) {
	// A full rotation is identity.
	if got := Rotate("#2563eb", 360); got != "#2563eb" {
		t.Errorf("360 degree rotation changed the color: %s", got)
	}
	// Equal rotations from either direction agree.
	if Rotate("#2563eb", 40) != Rotate("#2563eb", -320) {
		t.Error("rotation should wrap at 360")
	}
	// Gray has no hue; rotation is identity.
	if got := Rotate("#808080", 120); got != "#808080" {
		t.Errorf("rotating gray changed the color: %s", got)
	}
}

func TestContrast(t *testing.T) {
	// Black on white is the WCAG maximum.
	c := Contrast("#000000", "#ffffff")
	if c < 20.9 || c > 21.1 {
		t.Errorf("black/white contrast should be 21, got %v", c)
	}
	// Symmetric.
	if Contrast("#2563eb", "#ffffff") != Contrast("#ffffff", "#2563eb") {
		t.Error("contrast should be symmetric")
	}
	// Same color is 1.
	if got := Contrast("#123456", "#123456"); got != 1 {
		t.Errorf("self contrast should be 1, got %v", got)
	}
	// Unparseable input is the worst case, not an error.
	if got := Contrast("bogus", "#ffffff"); got != 1 {
		t.Errorf("invalid input should yield 1, got %v", got)
	}
}

func TestGrayscale(t *testing.T) {
	got := Grayscale("#2563eb")
	rgb, err := HexToRGB(got)
	if err != nil {
		t.Fatalf("grayscale output not parseable: %v", err)
	}
	if rgb.R != rgb.G || rgb.G != rgb.B {
		t.Errorf("grayscale channels should be equal, got %+v", rgb)
	}
	// White and black map to themselves.
	if Grayscale("#ffffff") != "#ffffff" {
		t.Error("white should stay white")
	}
	if Grayscale("#000000") != "#000000" {
		t.Error("black should stay black")
	}
}

func TestPalette(t *testing.T) {
	p := Palette(DefaultPrimary, DefaultAccent)
	if len(p) != 5 {
		t.Fatalf("palette should have 5 entries, got %d", len(p))
	}
	if p[0] != DefaultPrimary || p[1] != DefaultAccent {
		t.Error("palette should start with primary and accent")
	}
	for i, hex := range p {
		if _, err := Normalize(hex); err != nil {
			t.Errorf("palette[%d] = %q is not a valid color: %v", i, hex, err)
		}
	}
}
