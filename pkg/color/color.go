// Package color provides the color math used by the logo generators.
//
// All functions operate on hex strings ("#rrggbb" or "#rgb") and return
// normalized lowercase "#rrggbb" values. Lighten/darken work in HSL space so
// perceived hue is preserved; contrast follows the WCAG 2.1 definition.
package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/logomark/logomark/pkg/errors"
)

// Default brand colors used when callers supply none.
const (
	DefaultPrimary = "#2563eb"
	DefaultAccent  = "#7c3aed"
)

// Normalize expands #rgb to #rrggbb and lowercases the result.
// Invalid input returns an ErrCodeInvalidColor error.
func Normalize(hex string) (string, error) {
	if err := errors.ValidateHexColor(hex); err != nil {
		return "", err
	}
	if hex == "" {
		return "", errors.New(errors.ErrCodeInvalidColor, "empty color")
	}
	hex = strings.ToLower(hex)
	if len(hex) == 4 {
		hex = fmt.Sprintf("#%c%c%c%c%c%c", hex[1], hex[1], hex[2], hex[2], hex[3], hex[3])
	}
	return hex, nil
}

// RGB holds one 8-bit channel triple.
type RGB struct {
	R, G, B uint8
}

// HexToRGB parses a hex color into 8-bit channels.
func HexToRGB(hex string) (RGB, error) {
	c, err := parse(hex)
	if err != nil {
		return RGB{}, err
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// RGBToHex formats 8-bit channels as "#rrggbb".
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lighten raises HSL lightness by amount (0..1), clamped to white.
func Lighten(hex string, amount float64) string {
	c, err := parse(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	return colorful.Hsl(h, s, clamp01(l+amount)).Hex()
}

// Darken lowers HSL lightness by amount (0..1), clamped to black.
func Darken(hex string, amount float64) string {
	c, err := parse(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	return colorful.Hsl(h, s, clamp01(l-amount)).Hex()
}

// Rotate shifts the HSL hue by deg degrees, wrapping at 360.
func Rotate(hex string, deg float64) string {
	c, err := parse(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	h += deg
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return colorful.Hsl(h, s, l).Hex()
}

// Contrast returns the WCAG 2.1 contrast ratio between two colors, in [1, 21].
// Unparseable input yields 1 (no contrast), never an error, so scoring
// heuristics can treat it as a worst case.
func Contrast(a, b string) float64 {
	ca, errA := parse(a)
	cb, errB := parse(b)
	if errA != nil || errB != nil {
		return 1
	}
	la := relativeLuminance(ca)
	lb := relativeLuminance(cb)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Grayscale converts a color to its luminance-matched gray.
func Grayscale(hex string) string {
	c, err := parse(hex)
	if err != nil {
		return hex
	}
	y := relativeLuminance(c)
	g := uint8(clamp01(gammaCompress(y)) * 255)
	return RGBToHex(RGB{R: g, G: g, B: g})
}

// Palette derives the color set recorded in generated-logo metadata:
// primary, accent, a light tint, a dark shade, and a neutral gray.
func Palette(primary, accent string) []string {
	return []string{
		primary,
		accent,
		Lighten(primary, 0.30),
		Darken(primary, 0.25),
		Grayscale(primary),
	}
}

func parse(hex string) (colorful.Color, error) {
	n, err := Normalize(hex)
	if err != nil {
		return colorful.Color{}, err
	}
	c, err := colorful.Hex(n)
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "parse %q", hex)
	}
	return c, nil
}

// relativeLuminance computes WCAG relative luminance from linearized channels.
func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCompress converts linear luminance back to sRGB space.
func gammaCompress(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
