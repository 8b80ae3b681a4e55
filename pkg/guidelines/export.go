package guidelines

import (
	"encoding/json"
	"fmt"
	"strings"
)

// JSON renders the guidelines as indented JSON.
func (g *BrandGuidelines) JSON() ([]byte, error) {
	return json.MarshalIndent(g, "", "  ")
}

// Markdown renders the guidelines as a standalone document.
func (g *BrandGuidelines) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Brand Guidelines\n\n", g.BrandName)
	fmt.Fprintf(&b, "Mark style: `%s`\n\n", g.Algorithm)

	b.WriteString("## Clear Space\n\n")
	fmt.Fprintf(&b, "Keep %.2g× the logo height clear on all sides. %s\n\n",
		g.ClearSpace.Multiplier, g.ClearSpace.Rationale)

	b.WriteString("## Minimum Sizes\n\n")
	fmt.Fprintf(&b, "| Context | Minimum |\n|---|---|\n")
	fmt.Fprintf(&b, "| Print | %g mm |\n", g.MinSizes.PrintMM)
	fmt.Fprintf(&b, "| Digital | %d px |\n", g.MinSizes.DigitalPX)
	fmt.Fprintf(&b, "| Favicon | %d px |\n\n", g.MinSizes.FaviconPX)

	b.WriteString("## Color Variations\n\n")
	b.WriteString("| Variation | Background | Logo | Usage |\n|---|---|---|---|\n")
	for _, v := range g.ColorVariations {
		fmt.Fprintf(&b, "| %s | `%s` | `%s` | %s |\n",
			v.Name, v.Background, v.LogoColor, v.Usage)
	}
	b.WriteString("\n")

	b.WriteString("## Usage Rules\n\n")
	for _, r := range g.UsageRules {
		mark := "✗"
		if r.Allowed {
			mark = "✓"
		}
		fmt.Fprintf(&b, "- %s %s\n", mark, r.Text)
	}
	b.WriteString("\n")

	b.WriteString("## Typography\n\n")
	fmt.Fprintf(&b, "Voice: %s\n\n", g.Typography.Personality)
	fmt.Fprintf(&b, "- Headlines: %s\n", g.Typography.PrimaryFont)
	fmt.Fprintf(&b, "- Body: %s\n\n", g.Typography.SecondaryFont)
	fmt.Fprintf(&b, "%s\n", g.Typography.Notes)

	return b.String()
}
